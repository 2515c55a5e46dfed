package settingshandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"staffpay/internal/domain/settings"
	"staffpay/internal/transport/http/api"
	"staffpay/internal/transport/http/middleware"
	"staffpay/internal/transport/http/shared"
)

type Handler struct {
	Store *settings.Store
}

func NewHandler(store *settings.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/settings", func(r chi.Router) {
		r.Get("/", h.handleGet)
		r.Put("/", h.handleUpdate)
	})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	cs, err := h.Store.Get(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "settings_get_failed", "failed to load company settings", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, cs, middleware.GetRequestID(r.Context()))
}

// handleUpdate replaces the editable settings fields. The invoice counter
// only moves through invoice generation, never through this endpoint.
func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var payload settings.CompanySettings
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("companyName", payload.CompanyName, "companyName is required")
	v.Required("currency", payload.Currency, "currency is required")
	v.Required("invoicePrefix", payload.InvoicePrefix, "invoicePrefix is required")
	v.NonNegative("vatRate", payload.VATRate)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	if err := h.Store.Update(r.Context(), payload); err != nil {
		api.Fail(w, http.StatusInternalServerError, "settings_update_failed", "failed to update company settings", middleware.GetRequestID(r.Context()))
		return
	}

	cs, err := h.Store.Get(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "settings_get_failed", "failed to load company settings", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, cs, middleware.GetRequestID(r.Context()))
}
