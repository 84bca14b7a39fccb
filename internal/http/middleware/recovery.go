package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/davidbz/ratecard/internal/observability"
)

// Recovery turns a panicking handler into a 500 response.
func Recovery() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				p := recover()
				if p == nil {
					return
				}
				if p == http.ErrAbortHandler {
					panic(p)
				}

				observability.FromContext(r.Context()).Error("handler panicked",
					observability.String("panic", fmt.Sprint(p)),
					observability.String("path", r.URL.Path))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
