package rosterhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"staffpay/internal/domain/roster"
	"staffpay/internal/transport/http/api"
	"staffpay/internal/transport/http/middleware"
	"staffpay/internal/transport/http/shared"
)

type Handler struct {
	Store *roster.Store
}

func NewHandler(store *roster.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/nurses", func(r chi.Router) {
		r.Get("/", h.handleListNurses)
		r.Post("/", h.handleCreateNurse)
		r.Get("/{nurseID}", h.handleGetNurse)
		r.Put("/{nurseID}", h.handleUpdateNurse)
		r.Delete("/{nurseID}", h.handleDeleteNurse)
	})
	r.Route("/staff", func(r chi.Router) {
		r.Get("/", h.handleListStaff)
		r.Post("/", h.handleCreateStaff)
		r.Put("/{staffID}", h.handleUpdateStaff)
		r.Delete("/{staffID}", h.handleDeleteStaff)
	})
	r.Route("/clients", func(r chi.Router) {
		r.Get("/", h.handleListClients)
		r.Post("/", h.handleCreateClient)
		r.Get("/{clientID}", h.handleGetClient)
		r.Put("/{clientID}", h.handleUpdateClient)
		r.Delete("/{clientID}", h.handleDeleteClient)
	})
}

func (h *Handler) handleListNurses(w http.ResponseWriter, r *http.Request) {
	nurses, err := h.Store.ListNurses(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "nurses_list_failed", "failed to list nurses", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, nurses, middleware.GetRequestID(r.Context()))
}

func validateNurse(v *shared.Validator, nurse roster.Nurse) {
	v.Required("name", nurse.Name, "name is required")
	v.NonNegative("defaultSalary", nurse.DefaultSalary)
	v.NonNegative("defaultTransportation", nurse.DefaultTransportation)
}

func (h *Handler) handleCreateNurse(w http.ResponseWriter, r *http.Request) {
	var payload roster.Nurse
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	validateNurse(v, payload)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Store.CreateNurse(r.Context(), payload)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "nurse_create_failed", "failed to create nurse", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetNurse(w http.ResponseWriter, r *http.Request) {
	nurse, err := h.Store.GetNurse(r.Context(), chi.URLParam(r, "nurseID"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			api.Fail(w, http.StatusNotFound, "nurse_not_found", "nurse not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "nurse_get_failed", "failed to load nurse", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, nurse, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateNurse(w http.ResponseWriter, r *http.Request) {
	var payload roster.Nurse
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	payload.ID = chi.URLParam(r, "nurseID")

	v := shared.NewValidator()
	validateNurse(v, payload)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	if err := h.Store.UpdateNurse(r.Context(), payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			api.Fail(w, http.StatusNotFound, "nurse_not_found", "nurse not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "nurse_update_failed", "failed to update nurse", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, payload, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteNurse(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteNurse(r.Context(), chi.URLParam(r, "nurseID")); err != nil {
		api.Fail(w, http.StatusInternalServerError, "nurse_delete_failed", "failed to delete nurse", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.Store.ListStaff(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "staff_list_failed", "failed to list staff", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, staff, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateStaff(w http.ResponseWriter, r *http.Request) {
	var payload roster.StaffMember
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	v.NonNegative("monthlySalary", payload.MonthlySalary)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Store.CreateStaff(r.Context(), payload)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "staff_create_failed", "failed to create staff member", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateStaff(w http.ResponseWriter, r *http.Request) {
	var payload roster.StaffMember
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	payload.ID = chi.URLParam(r, "staffID")

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	v.NonNegative("monthlySalary", payload.MonthlySalary)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	if err := h.Store.UpdateStaff(r.Context(), payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			api.Fail(w, http.StatusNotFound, "staff_not_found", "staff member not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "staff_update_failed", "failed to update staff member", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, payload, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteStaff(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteStaff(r.Context(), chi.URLParam(r, "staffID")); err != nil {
		api.Fail(w, http.StatusInternalServerError, "staff_delete_failed", "failed to delete staff member", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Store.ListClients(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "clients_list_failed", "failed to list clients", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, clients, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateClient(w http.ResponseWriter, r *http.Request) {
	var payload roster.ClientCompany
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Store.CreateClient(r.Context(), payload)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "client_create_failed", "failed to create client", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetClient(w http.ResponseWriter, r *http.Request) {
	client, err := h.Store.GetClient(r.Context(), chi.URLParam(r, "clientID"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			api.Fail(w, http.StatusNotFound, "client_not_found", "client not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "client_get_failed", "failed to load client", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, client, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateClient(w http.ResponseWriter, r *http.Request) {
	var payload roster.ClientCompany
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	payload.ID = chi.URLParam(r, "clientID")

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	if err := h.Store.UpdateClient(r.Context(), payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			api.Fail(w, http.StatusNotFound, "client_not_found", "client not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "client_update_failed", "failed to update client", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, payload, middleware.GetRequestID(r.Context()))
}

// Deleting a client never touches payroll records; rows keep the stale
// client reference and fall out of the client breakdown instead.
func (h *Handler) handleDeleteClient(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteClient(r.Context(), chi.URLParam(r, "clientID")); err != nil {
		api.Fail(w, http.StatusInternalServerError, "client_delete_failed", "failed to delete client", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, middleware.GetRequestID(r.Context()))
}
