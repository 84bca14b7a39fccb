package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/davidbz/ratecard/internal/domain"
	"github.com/davidbz/ratecard/internal/observability"
	"github.com/davidbz/ratecard/internal/pricing"
)

const maxBodyBytes = 1 << 20

// Handler handles HTTP requests.
type Handler struct {
	quotes *domain.QuoteService
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(quotes *domain.QuoteService) *Handler {
	return &Handler{
		quotes: quotes,
	}
}

type pricingRequest struct {
	Model       string                   `json:"model"`
	PricingData pricing.PricingData      `json:"pricingData"`
	Input       pricing.CalculationInput `json:"input"`
}

type inlineBatchRequest struct {
	Items []pricing.BatchRequest `json:"items"`
}

type rateCardBatchRequest struct {
	Items []domain.BatchItem `json:"items"`
}

type errorResponse struct {
	Error  string                    `json:"error"`
	Issues []pricing.ValidationIssue `json:"issues,omitempty"`
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// HandleListModels lists the supported pricing models.
func (h *Handler) HandleListModels(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]any{
		"models": h.quotes.Models(),
	})
}

// HandleValidate runs the pre-flight check on a pricing payload.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req pricingRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, h.quotes.ValidatePricing(ctx, req.Model, req.PricingData))
}

// HandleCalculate prices an input against inline pricing data.
func (h *Handler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req pricingRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.quotes.QuoteInline(ctx, req.Model, req.PricingData, req.Input)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, result)
}

// HandleCalculateBatch prices a batch of self-contained requests.
func (h *Handler) HandleCalculateBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req inlineBatchRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.quotes.QuoteBatchInline(ctx, req.Items)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, result)
}

// HandleListRateCards lists stored rate cards.
func (h *Handler) HandleListRateCards(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cards, err := h.quotes.ListRateCards(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]any{
		"rateCards": cards,
	})
}

// HandleCreateRateCard stores a new rate card under a generated id.
func (h *Handler) HandleCreateRateCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var card domain.RateCard
	if err := decodeBody(w, r, &card); err != nil {
		writeError(ctx, w, err)
		return
	}
	card.ID = ""

	saved, err := h.quotes.SaveRateCard(ctx, &card)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Location", "/v1/ratecards/"+saved.ID)
	writeJSON(ctx, w, http.StatusCreated, saved)
}

// HandleGetRateCard returns one rate card.
func (h *Handler) HandleGetRateCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	card, err := h.quotes.GetRateCard(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, card)
}

// HandlePutRateCard creates or replaces the rate card at the path id.
func (h *Handler) HandlePutRateCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var card domain.RateCard
	if err := decodeBody(w, r, &card); err != nil {
		writeError(ctx, w, err)
		return
	}
	card.ID = chi.URLParam(r, "id")

	saved, err := h.quotes.SaveRateCard(ctx, &card)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, saved)
}

// HandleDeleteRateCard removes a rate card.
func (h *Handler) HandleDeleteRateCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.quotes.DeleteRateCard(ctx, chi.URLParam(r, "id")); err != nil {
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleQuote prices an input against a stored rate card.
func (h *Handler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input pricing.CalculationInput
	if err := decodeBody(w, r, &input); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.quotes.Quote(ctx, chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, result)
}

// HandleQuoteBatch prices a batch of inputs against a stored rate card.
func (h *Handler) HandleQuoteBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req rateCardBatchRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.quotes.QuoteBatch(ctx, chi.URLParam(r, "id"), req.Items)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, result)
}

var errBadRequestBody = errors.New("invalid request body")

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", errBadRequestBody, err)
	}
	return nil
}

// statusFor maps domain and pricing errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequestBody),
		errors.Is(err, pricing.ErrUnsupportedModel),
		errors.Is(err, pricing.ErrInvalidInput),
		errors.Is(err, pricing.ErrEmptyBatch),
		errors.Is(err, pricing.ErrBatchTooLarge),
		errors.Is(err, domain.ErrInvalidRateCard):
		return http.StatusBadRequest
	case errors.Is(err, pricing.ErrMalformedPricingData):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrRateCardNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrModelImmutable):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := statusFor(err)
	logger := observability.FromContext(ctx)

	body := errorResponse{Error: err.Error()}
	if status == http.StatusInternalServerError {
		logger.Error("request failed", observability.Error(err))
		body.Error = "internal server error"
	} else {
		logger.Info("request rejected",
			observability.Int("status", status),
			observability.Error(err))
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		body.Issues = validationErr.Issues
	}

	writeJSON(ctx, w, status, body)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Already written status, can't change it, just log.
		observability.FromContext(ctx).Error("failed to encode response", observability.Error(err))
	}
}
