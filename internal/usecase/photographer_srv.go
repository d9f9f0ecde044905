package usecase

import (
	"context"
	"fmt"
	"time"

	"photodesk/internal/catalog"
	"photodesk/internal/data/entity"
	"photodesk/internal/data/repository"
	"photodesk/internal/dto/request"
	"photodesk/internal/dto/response"
	"photodesk/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PhotographerService interface {
	Create(ctx context.Context, req *request.CreatePhotographerRequest) (*response.PhotographerResponse, error)
	GetByID(ctx context.Context, photographerID string) (*response.PhotographerResponse, error)
	GetAll(ctx context.Context, activeOnly bool) ([]response.PhotographerResponse, error)
	Update(ctx context.Context, photographerID string, req *request.UpdatePhotographerRequest) (*response.PhotographerResponse, error)
	Delete(ctx context.Context, photographerID string) error
}

type photographerService struct {
	repo  *repository.Repository
	store *catalog.Store
	log   *zap.Logger
}

func NewPhotographerService(repo *repository.Repository, store *catalog.Store, log *zap.Logger) PhotographerService {
	return &photographerService{
		repo:  repo,
		store: store,
		log:   log.With(zap.String("service", "photographer")),
	}
}

func (s *photographerService) Create(ctx context.Context, req *request.CreatePhotographerRequest) (*response.PhotographerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create photographer validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	photographer := &entity.Photographer{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		IsActive: true,
	}

	if err := s.repo.Photographer.Create(ctx, photographer); err != nil {
		s.log.Error("Failed to create photographer", zap.Error(err))
		return nil, fmt.Errorf("failed to create photographer")
	}

	s.refreshCatalog(ctx)

	resp := response.PhotographerToResponse(photographer)
	return &resp, nil
}

func (s *photographerService) GetByID(ctx context.Context, photographerID string) (*response.PhotographerResponse, error) {
	id, err := uuid.Parse(photographerID)
	if err != nil {
		return nil, fmt.Errorf("invalid photographer ID format %s", photographerID)
	}

	photographer, err := s.repo.Photographer.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find photographer", zap.Error(err), zap.String("photographer_id", photographerID))
		return nil, fmt.Errorf("failed to load photographer")
	}
	if photographer == nil {
		return nil, fmt.Errorf("photographer %s not found", photographerID)
	}

	resp := response.PhotographerToResponse(photographer)
	return &resp, nil
}

func (s *photographerService) GetAll(ctx context.Context, activeOnly bool) ([]response.PhotographerResponse, error) {
	photographers, err := s.repo.Photographer.FindAll(ctx, activeOnly)
	if err != nil {
		s.log.Error("Failed to list photographers", zap.Error(err))
		return nil, fmt.Errorf("failed to list photographers")
	}

	out := make([]response.PhotographerResponse, 0, len(photographers))
	for _, photographer := range photographers {
		out = append(out, response.PhotographerToResponse(photographer))
	}
	return out, nil
}

func (s *photographerService) Update(ctx context.Context, photographerID string, req *request.UpdatePhotographerRequest) (*response.PhotographerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update photographer validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(photographerID)
	if err != nil {
		return nil, fmt.Errorf("invalid photographer ID format %s", photographerID)
	}

	photographer, err := s.repo.Photographer.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find photographer", zap.Error(err), zap.String("photographer_id", photographerID))
		return nil, fmt.Errorf("failed to load photographer")
	}
	if photographer == nil {
		return nil, fmt.Errorf("photographer %s not found", photographerID)
	}

	photographer.Name = req.Name
	photographer.Email = req.Email
	photographer.Phone = req.Phone
	if req.IsActive != nil {
		photographer.IsActive = *req.IsActive
	}
	photographer.UpdatedAt = time.Now()

	if err := s.repo.Photographer.Update(ctx, photographer); err != nil {
		s.log.Error("Failed to update photographer", zap.Error(err), zap.String("photographer_id", photographerID))
		return nil, fmt.Errorf("failed to update photographer")
	}

	s.refreshCatalog(ctx)

	resp := response.PhotographerToResponse(photographer)
	return &resp, nil
}

func (s *photographerService) Delete(ctx context.Context, photographerID string) error {
	id, err := uuid.Parse(photographerID)
	if err != nil {
		return fmt.Errorf("invalid photographer ID format %s", photographerID)
	}

	if err := s.repo.Photographer.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete photographer", zap.Error(err), zap.String("photographer_id", photographerID))
		return err
	}

	s.refreshCatalog(ctx)
	return nil
}

// Only active photographers show up in the booking form picker.
func (s *photographerService) refreshCatalog(ctx context.Context) {
	photographers, err := s.repo.Photographer.FindAll(ctx, true)
	if err != nil {
		s.log.Warn("Failed to refresh photographer catalog", zap.Error(err))
		return
	}

	infos := make([]catalog.PhotographerInfo, 0, len(photographers))
	for _, photographer := range photographers {
		infos = append(infos, catalog.PhotographerInfo{ID: photographer.ID, Name: photographer.Name})
	}
	s.store.ReplacePhotographers(infos)
}
