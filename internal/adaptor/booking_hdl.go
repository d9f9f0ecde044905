package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"photodesk/internal/dto/request"
	"photodesk/internal/usecase"
	"photodesk/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/bookings (protected)
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Create(r.Context(), userID, role, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "Booking created", resp)
}

// GetByID handles GET /api/bookings/{id} (protected)
func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// GetCalendar handles GET /api/bookings/calendar?from=...&to=... (protected)
func (h *BookingHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	from, err := time.Parse(time.RFC3339, query.Get("from"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid from parameter, expected RFC3339", nil)
		return
	}
	to, err := time.Parse(time.RFC3339, query.Get("to"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid to parameter, expected RFC3339", nil)
		return
	}

	resp, err := h.service.GetCalendar(r.Context(), from, to)
	if err != nil {
		handleServiceError(h.log, w, err, "get calendar")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// GetAvailability handles GET /api/bookings/availability?date=YYYY-MM-DD&service_ids=a,b
func (h *BookingHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var serviceIDs []string
	if raw := query.Get("service_ids"); raw != "" {
		serviceIDs = strings.Split(raw, ",")
	}

	resp, err := h.service.GetAvailability(r.Context(), query.Get("date"), serviceIDs)
	if err != nil {
		handleServiceError(h.log, w, err, "get availability")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// GetMine handles GET /api/bookings/mine (protected)
func (h *BookingHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	resp, err := h.service.GetMine(r.Context(), userID, req)
	if err != nil {
		handleServiceError(h.log, w, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// Update handles PUT /api/bookings/{id} (protected)
func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request) {
	role, _ := utils.GetRoleFromContext(r.Context())

	var req request.UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), role, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update booking")
		return
	}

	utils.ResponseSuccess(w, "Booking updated", resp)
}

// UpdateStatus handles PATCH /api/admin/bookings/{id}/status
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update booking status")
		return
	}

	utils.ResponseSuccess(w, "Booking status updated", resp)
}

// Delete handles DELETE /api/admin/bookings/{id}
func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(h.log, w, err, "delete booking")
		return
	}

	utils.ResponseSuccess(w, "Booking deleted", nil)
}
