package payrollhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"staffpay/internal/domain/finance"
	"staffpay/internal/domain/payroll"
	"staffpay/internal/transport/http/api"
	"staffpay/internal/transport/http/middleware"
	"staffpay/internal/transport/http/shared"
)

type Handler struct {
	Store   *payroll.Store
	Service *payroll.Service
}

func NewHandler(store *payroll.Store, service *payroll.Service) *Handler {
	return &Handler{Store: store, Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Get("/records", h.handleListRecords)
		r.Post("/records", h.handleCreateRecord)
		r.Get("/records/calculated", h.handleCalculatedRecords)
		r.Get("/records/{recordID}", h.handleGetRecord)
		r.Put("/records/{recordID}", h.handleUpdateRecord)
		r.Delete("/records/{recordID}", h.handleDeleteRecord)
	})
}

// recordPayload carries dates as strings so callers can send plain
// YYYY-MM-DD values.
type recordPayload struct {
	NurseID        string  `json:"nurseId"`
	ClientID       string  `json:"clientId"`
	ContractAmount float64 `json:"contractAmount"`
	Salary         float64 `json:"salary"`
	Transportation float64 `json:"transportation"`
	OvertimeDays   float64 `json:"overtimeDays"`
	Fines          float64 `json:"fines"`
	StartDate      string  `json:"startDate"`
	EndDate        string  `json:"endDate"`
	FullMonth      bool    `json:"fullMonth"`
}

func (p recordPayload) validate(v *shared.Validator) finance.PayrollRecord {
	v.Required("nurseId", p.NurseID, "nurseId is required")
	v.Required("clientId", p.ClientID, "clientId is required")
	v.NonNegative("contractAmount", p.ContractAmount)
	v.NonNegative("salary", p.Salary)
	v.NonNegative("transportation", p.Transportation)
	v.NonNegative("overtimeDays", p.OvertimeDays)
	v.NonNegative("fines", p.Fines)

	start, startOK := v.Date("startDate", p.StartDate)
	end, endOK := v.Date("endDate", p.EndDate)
	if startOK && endOK {
		v.DateOrder("startDate", start, "endDate", end)
	}

	return finance.PayrollRecord{
		NurseID:        p.NurseID,
		ClientID:       p.ClientID,
		ContractAmount: p.ContractAmount,
		Salary:         p.Salary,
		Transportation: p.Transportation,
		OvertimeDays:   p.OvertimeDays,
		Fines:          p.Fines,
		StartDate:      start,
		EndDate:        end,
		FullMonth:      p.FullMonth,
	}
}

func (h *Handler) handleListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.Store.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "records_list_failed", "failed to list payroll records", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, records, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateRecord(w http.ResponseWriter, r *http.Request) {
	var payload recordPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	record := payload.validate(v)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Store.Create(r.Context(), record)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "record_create_failed", "failed to create payroll record", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	record, err := h.Store.Get(r.Context(), chi.URLParam(r, "recordID"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			api.Fail(w, http.StatusNotFound, "record_not_found", "payroll record not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "record_get_failed", "failed to load payroll record", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, record, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateRecord(w http.ResponseWriter, r *http.Request) {
	var payload recordPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	record := payload.validate(v)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}
	record.ID = chi.URLParam(r, "recordID")

	if err := h.Store.Update(r.Context(), record); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			api.Fail(w, http.StatusNotFound, "record_not_found", "payroll record not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "record_update_failed", "failed to update payroll record", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, record, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Delete(r.Context(), chi.URLParam(r, "recordID")); err != nil {
		api.Fail(w, http.StatusInternalServerError, "record_delete_failed", "failed to delete payroll record", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCalculatedRecords(w http.ResponseWriter, r *http.Request) {
	month, err := finance.ParseMonth(r.URL.Query().Get("month"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_month", "month must be in YYYY-MM format", middleware.GetRequestID(r.Context()))
		return
	}

	calculated, err := h.Service.CalculatedForMonth(r.Context(), month)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "records_calculate_failed", "failed to calculate payroll records", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, calculated, middleware.GetRequestID(r.Context()))
}
