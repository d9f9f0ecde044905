package adaptor

import (
	"encoding/json"
	"net/http"

	"photodesk/internal/dto/request"
	"photodesk/internal/usecase"
	"photodesk/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type InvoiceHandler struct {
	service usecase.InvoiceService
	log     *zap.Logger
}

func NewInvoiceHandler(service usecase.InvoiceService, log *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/admin/invoices
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create invoice")
		return
	}

	utils.ResponseCreated(w, "Invoice created", resp)
}

// GetByID handles GET /api/admin/invoices/{id}
func (h *InvoiceHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get invoice")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// GetAll handles GET /api/admin/invoices
func (h *InvoiceHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	resp, err := h.service.GetAll(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "list invoices")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// UpdateStatus handles PATCH /api/admin/invoices/{id}/status
func (h *InvoiceHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateInvoiceStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update invoice status")
		return
	}

	utils.ResponseSuccess(w, "Invoice status updated", resp)
}
