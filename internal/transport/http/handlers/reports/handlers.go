package reportshandler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"staffpay/internal/documents"
	"staffpay/internal/domain/finance"
	"staffpay/internal/domain/payroll"
	"staffpay/internal/domain/roster"
	"staffpay/internal/domain/settings"
	"staffpay/internal/platform/metrics"
	"staffpay/internal/transport/http/api"
	"staffpay/internal/transport/http/middleware"
)

type Handler struct {
	Service  *payroll.Service
	Roster   *roster.Store
	Settings *settings.Store
}

func NewHandler(service *payroll.Service, rosterStore *roster.Store, settingsStore *settings.Store) *Handler {
	return &Handler{Service: service, Roster: rosterStore, Settings: settingsStore}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/summary", h.handleSummary)
		r.Get("/clients", h.handleClientBreakdown)
		r.Get("/export/csv", h.handleExportCSV)
		r.Get("/export/xlsx", h.handleExportXLSX)
		r.Get("/invoice/{clientID}", h.handleInvoice)
		r.Get("/statement", h.handleStatement)
	})
}

func monthParam(w http.ResponseWriter, r *http.Request) (finance.Month, bool) {
	month, err := finance.ParseMonth(r.URL.Query().Get("month"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_month", "month must be in YYYY-MM format", middleware.GetRequestID(r.Context()))
		return finance.Month{}, false
	}
	return month, true
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	month, ok := monthParam(w, r)
	if !ok {
		return
	}

	summary, err := h.Service.MonthlySummary(r.Context(), month)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "summary_failed", "failed to build monthly summary", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, summary, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleClientBreakdown(w http.ResponseWriter, r *http.Request) {
	month, ok := monthParam(w, r)
	if !ok {
		return
	}

	breakdown, err := h.Service.ClientBreakdown(r.Context(), month)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "breakdown_failed", "failed to build client breakdown", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, breakdown, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	month, ok := monthParam(w, r)
	if !ok {
		return
	}

	start := time.Now()
	var buf bytes.Buffer
	if err := h.Service.ExportCSV(r.Context(), &buf, month); err != nil {
		metrics.ObserveExport("csv", metrics.ResultError, time.Since(start))
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to export payroll records", middleware.GetRequestID(r.Context()))
		return
	}
	metrics.ObserveExport("csv", metrics.ResultSuccess, time.Since(start))

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=payroll-%s.csv", month))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	month, ok := monthParam(w, r)
	if !ok {
		return
	}

	start := time.Now()
	payload, err := h.Service.ExportXLSX(r.Context(), month)
	if err != nil {
		metrics.ObserveExport("xlsx", metrics.ResultError, time.Since(start))
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to export payroll workbook", middleware.GetRequestID(r.Context()))
		return
	}
	metrics.ObserveExport("xlsx", metrics.ResultSuccess, time.Since(start))

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=payroll-%s.xlsx", month))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

func (h *Handler) handleInvoice(w http.ResponseWriter, r *http.Request) {
	month, ok := monthParam(w, r)
	if !ok {
		return
	}
	clientID := chi.URLParam(r, "clientID")

	client, err := h.Roster.GetClient(r.Context(), clientID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			api.Fail(w, http.StatusNotFound, "client_not_found", "client not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "invoice_failed", "failed to load client", middleware.GetRequestID(r.Context()))
		return
	}

	lines, nurseNames, err := h.Service.InvoiceLines(r.Context(), clientID, month)
	if err != nil {
		if errors.Is(err, payroll.ErrNoRecords) {
			api.Fail(w, http.StatusNotFound, "no_records", "no payroll records for client and month", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "invoice_failed", "failed to collect invoice lines", middleware.GetRequestID(r.Context()))
		return
	}

	company, err := h.Settings.Get(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "invoice_failed", "failed to load company settings", middleware.GetRequestID(r.Context()))
		return
	}

	count, err := h.Settings.IncrementInvoiceCount(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "invoice_failed", "failed to advance invoice counter", middleware.GetRequestID(r.Context()))
		return
	}

	start := time.Now()
	payload, err := documents.BuildInvoicePDF(documents.Invoice{
		Number:     finance.NextInvoiceNumber(count, company.InvoicePrefix),
		Month:      month,
		Client:     *client,
		Company:    *company,
		Lines:      lines,
		NurseNames: nurseNames,
	})
	if err != nil {
		metrics.ObserveDocument("invoice", metrics.ResultError, time.Since(start))
		api.Fail(w, http.StatusInternalServerError, "invoice_failed", "failed to render invoice", middleware.GetRequestID(r.Context()))
		return
	}
	metrics.ObserveDocument("invoice", metrics.ResultSuccess, time.Since(start))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", month))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

func (h *Handler) handleStatement(w http.ResponseWriter, r *http.Request) {
	month, ok := monthParam(w, r)
	if !ok {
		return
	}

	summary, err := h.Service.MonthlySummary(r.Context(), month)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "statement_failed", "failed to build monthly summary", middleware.GetRequestID(r.Context()))
		return
	}
	breakdown, err := h.Service.ClientBreakdown(r.Context(), month)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "statement_failed", "failed to build client breakdown", middleware.GetRequestID(r.Context()))
		return
	}
	company, err := h.Settings.Get(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "statement_failed", "failed to load company settings", middleware.GetRequestID(r.Context()))
		return
	}

	start := time.Now()
	payload, err := documents.BuildStatementPDF(*company, summary, breakdown)
	if err != nil {
		metrics.ObserveDocument("statement", metrics.ResultError, time.Since(start))
		api.Fail(w, http.StatusInternalServerError, "statement_failed", "failed to render statement", middleware.GetRequestID(r.Context()))
		return
	}
	metrics.ObserveDocument("statement", metrics.ResultSuccess, time.Since(start))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=statement-%s.pdf", month))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}
