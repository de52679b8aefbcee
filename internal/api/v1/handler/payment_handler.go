package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"transportpro/internal/api/v1/dto"
	"transportpro/internal/service"
)

type PaymentHandler struct {
	paymentService service.PaymentService
	authService    service.AuthService
	validate       *validator.Validate
	logger         zerolog.Logger
}

func NewPaymentHandler(paymentService service.PaymentService, authService service.AuthService, v *validator.Validate, logger zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, authService: authService, validate: v, logger: logger}
}

// RegisterRoutes mounts the payment endpoints. The webhook is unauthenticated:
// the gateway authenticates its callbacks with its own signature mechanism.
func (h *PaymentHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("POST /payments/create", authMw(http.HandlerFunc(h.create)))
	mux.Handle("POST /payments/webhook", http.HandlerFunc(h.webhook))
	mux.Handle("POST /demo/activate-subscription", authMw(http.HandlerFunc(h.demoActivate)))
}

func (h *PaymentHandler) create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, h.authService)
	if !ok {
		return
	}

	var req dto.PaymentCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	checkout, err := h.paymentService.CreateCheckout(r.Context(), user, req.PackageID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPackageNotFound):
			http.Error(w, "Package not found", http.StatusNotFound)
		case errors.Is(err, service.ErrPaymentInitFailed):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrGatewayUnavailable):
			http.Error(w, "Payment service unavailable", http.StatusInternalServerError)
		default:
			h.logger.Error().Err(err).Msg("Failed to create payment")
			http.Error(w, "Failed to create payment", http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, dto.PaymentResponse{CheckoutURL: checkout.CheckoutURL, OrderID: checkout.OrderID})
}

// webhook acknowledges every delivery with HTTP 200. Logical mismatches are
// reported in the body only, so the gateway does not retry them.
func (h *PaymentHandler) webhook(w http.ResponseWriter, r *http.Request) {
	var req dto.WebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusOK, dto.WebhookAck{Status: "error", Message: "Invalid payload"})
		return
	}

	err := h.paymentService.ProcessCallback(r.Context(), req.Response.OrderID, req.Response.OrderStatus)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, dto.WebhookAck{Status: "success"})
	case errors.Is(err, service.ErrMissingOrderID):
		writeJSON(w, http.StatusOK, dto.WebhookAck{Status: "error", Message: "Missing order_id"})
	case errors.Is(err, service.ErrOrderNotFound):
		writeJSON(w, http.StatusOK, dto.WebhookAck{Status: "error", Message: "Order not found"})
	default:
		h.logger.Error().Err(err).Str("order_id", req.Response.OrderID).Msg("Failed to process payment callback")
		http.Error(w, "Failed to process callback", http.StatusInternalServerError)
	}
}

func (h *PaymentHandler) demoActivate(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, h.authService)
	if !ok {
		return
	}

	expires, err := h.paymentService.ActivateDemo(r.Context(), user.ID)
	if err != nil {
		h.logger.Error().Err(err).Str("user_id", user.ID).Msg("Failed to activate demo subscription")
		http.Error(w, "Failed to activate subscription", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dto.DemoActivationResponse{
		Message: "Demo subscription activated",
		Expires: expires.Format(time.RFC3339),
	})
}
