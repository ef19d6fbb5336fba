package interfaces

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"swimclub/internal/invoicing/application"
	invoicing "swimclub/internal/invoicing/domain"
	"swimclub/internal/observability/metrics"
	roster "swimclub/internal/roster/domain"
)

// InvoiceHandler serves the monthly invoice APIs under /api/v1/invoices.
type InvoiceHandler struct {
	service *application.InvoiceService
}

// NewInvoiceHandler constructs a handler.
func NewInvoiceHandler(service *application.InvoiceService) (*InvoiceHandler, error) {
	if service == nil {
		return nil, errors.New("invoice handler: nil service")
	}
	return &InvoiceHandler{service: service}, nil
}

// ServeHTTP routes invoice requests.
func (h *InvoiceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	switch r.URL.Path {
	case "/api/v1/invoices":
		h.handleInvoice(w, r)
	case "/api/v1/invoices/months":
		h.handleMonths(w, r)
	case "/api/v1/invoices/export.pdf":
		h.handleExport(w, r, "pdf")
	case "/api/v1/invoices/export.xlsx":
		h.handleExport(w, r, "xlsx")
	case "/api/v1/invoices/export.csv":
		h.handleExport(w, r, "csv")
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *InvoiceHandler) handleInvoice(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.loadInvoice(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(inv)
}

func (h *InvoiceHandler) handleMonths(w http.ResponseWriter, r *http.Request) {
	coachID := r.URL.Query().Get("coach_id")
	if coachID == "" {
		http.Error(w, "coach_id is required", http.StatusBadRequest)
		return
	}
	months, err := h.service.AvailableMonths(r.Context(), coachID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	// An empty list is a valid answer: a new coach simply has no history yet.
	if months == nil {
		months = []invoicing.YearMonth{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(months)
}

func (h *InvoiceHandler) handleExport(w http.ResponseWriter, r *http.Request, format string) {
	start := time.Now()
	result := metrics.ResultSuccess
	defer func() {
		metrics.ObserveInvoiceExport(format, result, time.Since(start))
	}()

	inv, ok := h.loadInvoice(w, r)
	if !ok {
		result = metrics.ResultError
		return
	}

	switch format {
	case "pdf":
		data, err := BuildInvoicePDF(inv)
		if err != nil {
			result = metrics.ResultError
			http.Error(w, "export pdf error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	case "xlsx":
		data, err := BuildInvoiceXLSX(inv)
		if err != nil {
			result = metrics.ResultError
			http.Error(w, "export xlsx error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	case "csv":
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if err := WriteInvoiceCSV(w, inv); err != nil {
			result = metrics.ResultError
		}
	}
}

func (h *InvoiceHandler) loadInvoice(w http.ResponseWriter, r *http.Request) (*invoicing.Invoice, bool) {
	coachID := r.URL.Query().Get("coach_id")
	if coachID == "" {
		http.Error(w, "coach_id is required", http.StatusBadRequest)
		return nil, false
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		http.Error(w, "year must be a four-digit number", http.StatusBadRequest)
		return nil, false
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		http.Error(w, "month must be a number from 1 to 12", http.StatusBadRequest)
		return nil, false
	}
	inv, err := h.service.MonthlyInvoice(r.Context(), coachID, year, month)
	if err != nil {
		respondServiceError(w, err)
		return nil, false
	}
	return inv, true
}

// respondServiceError maps engine errors onto HTTP statuses. A zero-activity
// month never lands here: it is a valid invoice, not an error, so callers can
// always tell "nothing this month" apart from "computation failed".
func respondServiceError(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, roster.ErrCoachNotFound):
		http.Error(w, "coach not found", http.StatusNotFound)
	case errors.Is(err, invoicing.ErrInvalidPeriod):
		http.Error(w, "invalid invoice period", http.StatusBadRequest)
	case errors.Is(err, invoicing.ErrUnknownTier):
		http.Error(w, "no billing rate for the coach's qualification tier", http.StatusUnprocessableEntity)
	default:
		http.Error(w, "invoice computation failed", http.StatusInternalServerError)
	}
}
