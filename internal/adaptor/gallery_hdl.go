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

type GalleryHandler struct {
	service usecase.GalleryService
	log     *zap.Logger
}

func NewGalleryHandler(service usecase.GalleryService, log *zap.Logger) *GalleryHandler {
	return &GalleryHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/admin/galleries
func (h *GalleryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGalleryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create gallery")
		return
	}

	utils.ResponseCreated(w, "Gallery created", resp)
}

// GetByID handles GET /api/admin/galleries/{id}
func (h *GalleryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get gallery")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// GetAll handles GET /api/admin/galleries
func (h *GalleryHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	resp, err := h.service.GetAll(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "list galleries")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// Update handles PUT /api/admin/galleries/{id}
func (h *GalleryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateGalleryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update gallery")
		return
	}

	utils.ResponseSuccess(w, "Gallery updated", resp)
}

// Delete handles DELETE /api/admin/galleries/{id}
func (h *GalleryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(h.log, w, err, "delete gallery")
		return
	}

	utils.ResponseSuccess(w, "Gallery deleted", nil)
}

// AddImage handles POST /api/admin/galleries/{id}/images
func (h *GalleryHandler) AddImage(w http.ResponseWriter, r *http.Request) {
	var req request.AddGalleryImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.AddImage(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "add gallery image")
		return
	}

	utils.ResponseCreated(w, "Image added", resp)
}

// RemoveImage handles DELETE /api/admin/galleries/{id}/images/{imageID}
func (h *GalleryHandler) RemoveImage(w http.ResponseWriter, r *http.Request) {
	err := h.service.RemoveImage(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "imageID"))
	if err != nil {
		handleServiceError(h.log, w, err, "remove gallery image")
		return
	}

	utils.ResponseSuccess(w, "Image removed", nil)
}

// Share handles POST /api/admin/galleries/{id}/share
func (h *GalleryHandler) Share(w http.ResponseWriter, r *http.Request) {
	token, err := h.service.Share(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "share gallery")
		return
	}

	utils.ResponseSuccess(w, "Share link created", map[string]string{
		"token": token,
		"url":   "/api/shared/" + token,
	})
}

// ResolveShare handles GET /api/shared/{token} (public)
func (h *GalleryHandler) ResolveShare(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ResolveShare(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		handleServiceError(h.log, w, err, "resolve share link")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}
