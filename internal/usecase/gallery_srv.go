package usecase

import (
	"context"
	"fmt"
	"time"

	"photodesk/internal/bus"
	"photodesk/internal/data/entity"
	"photodesk/internal/data/repository"
	"photodesk/internal/dto/request"
	"photodesk/internal/dto/response"
	"photodesk/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GalleryService interface {
	Create(ctx context.Context, req *request.CreateGalleryRequest) (*response.GalleryResponse, error)
	GetByID(ctx context.Context, galleryID string) (*response.GalleryResponse, error)
	GetAll(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.GalleryResponse], error)
	Update(ctx context.Context, galleryID string, req *request.UpdateGalleryRequest) (*response.GalleryResponse, error)
	Delete(ctx context.Context, galleryID string) error

	AddImage(ctx context.Context, galleryID string, req *request.AddGalleryImageRequest) (*response.GalleryResponse, error)
	RemoveImage(ctx context.Context, galleryID, imageID string) error

	// Share issues a signed link token; ResolveShare serves the gallery to
	// whoever holds one.
	Share(ctx context.Context, galleryID string) (string, error)
	ResolveShare(ctx context.Context, token string) (*response.GalleryResponse, error)
}

type galleryService struct {
	repo     *repository.Repository
	config   *utils.Config
	eventBus *bus.Bus
	log      *zap.Logger
}

func NewGalleryService(
	repo *repository.Repository,
	config *utils.Config,
	eventBus *bus.Bus,
	log *zap.Logger,
) GalleryService {
	return &galleryService{
		repo:     repo,
		config:   config,
		eventBus: eventBus,
		log:      log.With(zap.String("service", "gallery")),
	}
}

func (s *galleryService) Create(ctx context.Context, req *request.CreateGalleryRequest) (*response.GalleryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create gallery validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	gallery := &entity.Gallery{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:    req.Title,
		IsPublic: req.IsPublic,
	}

	if req.BookingID != nil {
		bookingID, err := uuid.Parse(*req.BookingID)
		if err != nil {
			return nil, fmt.Errorf("invalid booking ID format %s", *req.BookingID)
		}

		booking, err := s.repo.Booking.FindByID(ctx, bookingID)
		if err != nil {
			return nil, fmt.Errorf("failed to check booking")
		}
		if booking == nil {
			return nil, fmt.Errorf("booking %s not found", *req.BookingID)
		}
		gallery.BookingID = &bookingID
	}

	if err := s.repo.Gallery.Create(ctx, gallery); err != nil {
		s.log.Error("Failed to create gallery", zap.Error(err))
		return nil, fmt.Errorf("failed to create gallery")
	}

	resp := response.GalleryToResponse(gallery, nil)
	return &resp, nil
}

func (s *galleryService) GetByID(ctx context.Context, galleryID string) (*response.GalleryResponse, error) {
	id, err := uuid.Parse(galleryID)
	if err != nil {
		return nil, fmt.Errorf("invalid gallery ID format %s", galleryID)
	}
	return s.load(ctx, id)
}

func (s *galleryService) GetAll(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.GalleryResponse], error) {
	galleries, err := s.repo.Gallery.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list galleries", zap.Error(err))
		return nil, fmt.Errorf("failed to list galleries")
	}

	total, err := s.repo.Gallery.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count galleries", zap.Error(err))
		return nil, fmt.Errorf("failed to list galleries")
	}

	items := make([]response.GalleryResponse, 0, len(galleries))
	for _, gallery := range galleries {
		items = append(items, response.GalleryToResponse(gallery, nil))
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *galleryService) Update(ctx context.Context, galleryID string, req *request.UpdateGalleryRequest) (*response.GalleryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update gallery validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(galleryID)
	if err != nil {
		return nil, fmt.Errorf("invalid gallery ID format %s", galleryID)
	}

	gallery, err := s.repo.Gallery.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find gallery", zap.Error(err), zap.String("gallery_id", galleryID))
		return nil, fmt.Errorf("failed to load gallery")
	}
	if gallery == nil {
		return nil, fmt.Errorf("gallery %s not found", galleryID)
	}

	gallery.Title = req.Title
	gallery.IsPublic = req.IsPublic
	gallery.UpdatedAt = time.Now()

	if err := s.repo.Gallery.Update(ctx, gallery); err != nil {
		s.log.Error("Failed to update gallery", zap.Error(err), zap.String("gallery_id", galleryID))
		return nil, fmt.Errorf("failed to update gallery")
	}

	return s.load(ctx, id)
}

func (s *galleryService) Delete(ctx context.Context, galleryID string) error {
	id, err := uuid.Parse(galleryID)
	if err != nil {
		return fmt.Errorf("invalid gallery ID format %s", galleryID)
	}
	return s.repo.Gallery.Delete(ctx, id)
}

func (s *galleryService) AddImage(ctx context.Context, galleryID string, req *request.AddGalleryImageRequest) (*response.GalleryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add gallery image validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(galleryID)
	if err != nil {
		return nil, fmt.Errorf("invalid gallery ID format %s", galleryID)
	}

	gallery, err := s.repo.Gallery.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load gallery")
	}
	if gallery == nil {
		return nil, fmt.Errorf("gallery %s not found", galleryID)
	}

	image := &entity.GalleryImage{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		GalleryID: id,
		URL:       req.URL,
		Caption:   req.Caption,
		Position:  req.Position,
	}

	if err := s.repo.Gallery.AddImage(ctx, image); err != nil {
		s.log.Error("Failed to add gallery image", zap.Error(err), zap.String("gallery_id", galleryID))
		return nil, fmt.Errorf("failed to add image")
	}

	return s.load(ctx, id)
}

func (s *galleryService) RemoveImage(ctx context.Context, galleryID, imageID string) error {
	if _, err := uuid.Parse(galleryID); err != nil {
		return fmt.Errorf("invalid gallery ID format %s", galleryID)
	}

	id, err := uuid.Parse(imageID)
	if err != nil {
		return fmt.Errorf("invalid image ID format %s", imageID)
	}

	return s.repo.Gallery.RemoveImage(ctx, id)
}

func (s *galleryService) Share(ctx context.Context, galleryID string) (string, error) {
	id, err := uuid.Parse(galleryID)
	if err != nil {
		return "", fmt.Errorf("invalid gallery ID format %s", galleryID)
	}

	gallery, err := s.repo.Gallery.FindByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("failed to load gallery")
	}
	if gallery == nil {
		return "", fmt.Errorf("gallery %s not found", galleryID)
	}

	expiry := time.Duration(s.config.Share.ExpiryHours) * time.Hour
	claims := jwt.RegisteredClaims{
		Subject:   gallery.ID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.Share.Secret))
	if err != nil {
		s.log.Error("Failed to sign share token", zap.Error(err), zap.String("gallery_id", galleryID))
		return "", fmt.Errorf("failed to create share link")
	}

	s.eventBus.Publish(bus.GalleryShared{
		GalleryID: gallery.ID,
		Title:     gallery.Title,
	})

	s.log.Info("Gallery share link issued", zap.String("gallery_id", galleryID))
	return token, nil
}

func (s *galleryService) ResolveShare(ctx context.Context, token string) (*response.GalleryResponse, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.config.Share.Secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("invalid or expired share link")
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil, fmt.Errorf("invalid or expired share link")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("invalid or expired share link")
	}

	return s.load(ctx, id)
}

func (s *galleryService) load(ctx context.Context, id uuid.UUID) (*response.GalleryResponse, error) {
	gallery, err := s.repo.Gallery.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find gallery", zap.Error(err), zap.String("gallery_id", id.String()))
		return nil, fmt.Errorf("failed to load gallery")
	}
	if gallery == nil {
		return nil, fmt.Errorf("gallery %s not found", id.String())
	}

	images, err := s.repo.Gallery.FindImages(ctx, id)
	if err != nil {
		s.log.Error("Failed to load gallery images", zap.Error(err), zap.String("gallery_id", id.String()))
		return nil, fmt.Errorf("failed to load gallery")
	}

	resp := response.GalleryToResponse(gallery, images)
	return &resp, nil
}
