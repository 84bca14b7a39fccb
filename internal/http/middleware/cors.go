package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/davidbz/ratecard/internal/config"
)

// CORS handles cross-origin requests with github.com/rs/cors. The trace and
// request id headers are exposed so browser clients can correlate quotes.
func CORS(cfg *config.CORSConfig) Middleware {
	if cfg == nil {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	// Credentials cannot be combined with a wildcard origin.
	allowCredentials := cfg.AllowCredentials
	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   append([]string{RequestIDHeader}, cfg.AllowedHeaders...),
		ExposedHeaders:   []string{RequestIDHeader, "X-Trace-Id"},
		AllowCredentials: allowCredentials,
		MaxAge:           cfg.MaxAge,
	})

	return c.Handler
}
