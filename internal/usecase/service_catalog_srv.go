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

// ServiceCatalogService manages the bookable offerings. Duration changes here
// change how long new bookings run, so every mutation refreshes the shared
// catalog store.
type ServiceCatalogService interface {
	Create(ctx context.Context, req *request.CreateServiceRequest) (*response.ServiceResponse, error)
	GetByID(ctx context.Context, serviceID string) (*response.ServiceResponse, error)
	GetAll(ctx context.Context, activeOnly bool) ([]response.ServiceResponse, error)
	Update(ctx context.Context, serviceID string, req *request.UpdateServiceRequest) (*response.ServiceResponse, error)
	Delete(ctx context.Context, serviceID string) error
}

type serviceCatalogService struct {
	repo  *repository.Repository
	store *catalog.Store
	log   *zap.Logger
}

func NewServiceCatalogService(repo *repository.Repository, store *catalog.Store, log *zap.Logger) ServiceCatalogService {
	return &serviceCatalogService{
		repo:  repo,
		store: store,
		log:   log.With(zap.String("service", "service_catalog")),
	}
}

func (s *serviceCatalogService) Create(ctx context.Context, req *request.CreateServiceRequest) (*response.ServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create service validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	service := &entity.Service{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		PriceCents:      req.PriceCents,
		IsActive:        true,
	}

	if err := s.repo.Service.Create(ctx, service); err != nil {
		s.log.Error("Failed to create service", zap.Error(err))
		return nil, fmt.Errorf("failed to create service")
	}

	s.store.UpsertService(catalog.ServiceInfo{
		ID:              service.ID,
		Name:            service.Name,
		DurationMinutes: service.DurationMinutes,
		PriceCents:      service.PriceCents,
	})

	resp := response.ServiceToResponse(service)
	return &resp, nil
}

func (s *serviceCatalogService) GetByID(ctx context.Context, serviceID string) (*response.ServiceResponse, error) {
	id, err := uuid.Parse(serviceID)
	if err != nil {
		return nil, fmt.Errorf("invalid service ID format %s", serviceID)
	}

	service, err := s.repo.Service.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find service", zap.Error(err), zap.String("service_id", serviceID))
		return nil, fmt.Errorf("failed to load service")
	}
	if service == nil {
		return nil, fmt.Errorf("service %s not found", serviceID)
	}

	resp := response.ServiceToResponse(service)
	return &resp, nil
}

func (s *serviceCatalogService) GetAll(ctx context.Context, activeOnly bool) ([]response.ServiceResponse, error) {
	services, err := s.repo.Service.FindAll(ctx, activeOnly)
	if err != nil {
		s.log.Error("Failed to list services", zap.Error(err))
		return nil, fmt.Errorf("failed to list services")
	}

	out := make([]response.ServiceResponse, 0, len(services))
	for _, service := range services {
		out = append(out, response.ServiceToResponse(service))
	}
	return out, nil
}

func (s *serviceCatalogService) Update(ctx context.Context, serviceID string, req *request.UpdateServiceRequest) (*response.ServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update service validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(serviceID)
	if err != nil {
		return nil, fmt.Errorf("invalid service ID format %s", serviceID)
	}

	service, err := s.repo.Service.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find service", zap.Error(err), zap.String("service_id", serviceID))
		return nil, fmt.Errorf("failed to load service")
	}
	if service == nil {
		return nil, fmt.Errorf("service %s not found", serviceID)
	}

	service.Name = req.Name
	service.DurationMinutes = req.DurationMinutes
	service.PriceCents = req.PriceCents
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}
	service.UpdatedAt = time.Now()

	if err := s.repo.Service.Update(ctx, service); err != nil {
		s.log.Error("Failed to update service", zap.Error(err), zap.String("service_id", serviceID))
		return nil, fmt.Errorf("failed to update service")
	}

	if service.IsActive {
		s.store.UpsertService(catalog.ServiceInfo{
			ID:              service.ID,
			Name:            service.Name,
			DurationMinutes: service.DurationMinutes,
			PriceCents:      service.PriceCents,
		})
	} else {
		s.store.RemoveService(service.ID)
	}

	resp := response.ServiceToResponse(service)
	return &resp, nil
}

func (s *serviceCatalogService) Delete(ctx context.Context, serviceID string) error {
	id, err := uuid.Parse(serviceID)
	if err != nil {
		return fmt.Errorf("invalid service ID format %s", serviceID)
	}

	if err := s.repo.Service.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete service", zap.Error(err), zap.String("service_id", serviceID))
		return err
	}

	s.store.RemoveService(id)
	return nil
}
