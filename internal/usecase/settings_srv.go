package usecase

import (
	"context"
	"fmt"
	"time"

	"photodesk/internal/catalog"
	"photodesk/internal/data/entity"
	"photodesk/internal/data/repository"
	"photodesk/internal/draft"
	"photodesk/internal/dto/request"
	"photodesk/internal/dto/response"
	"photodesk/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SettingsService interface {
	Get(ctx context.Context) (*response.SettingsResponse, error)
	Update(ctx context.Context, req *request.UpdateSettingsRequest) (*response.SettingsResponse, error)

	// Load fetches the settings row, creating it from config defaults on first
	// boot, and pushes it into the catalog store.
	Load(ctx context.Context) (*entity.Settings, error)
}

type settingsService struct {
	repo   *repository.Repository
	config *utils.Config
	store  *catalog.Store
	log    *zap.Logger
}

func NewSettingsService(
	repo *repository.Repository,
	config *utils.Config,
	store *catalog.Store,
	log *zap.Logger,
) SettingsService {
	return &settingsService{
		repo:   repo,
		config: config,
		store:  store,
		log:    log.With(zap.String("service", "settings")),
	}
}

func (s *settingsService) Get(ctx context.Context) (*response.SettingsResponse, error) {
	settings, err := s.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings")
	}

	resp := response.SettingsToResponse(settings)
	return &resp, nil
}

func (s *settingsService) Update(ctx context.Context, req *request.UpdateSettingsRequest) (*response.SettingsResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update settings validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	settings, err := s.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings")
	}

	settings.BusinessName = req.BusinessName
	settings.BusinessAddress = req.BusinessAddress
	settings.BusinessLat = req.BusinessLat
	settings.BusinessLng = req.BusinessLng
	settings.TravelSpeedKmh = req.TravelSpeedKmh
	settings.DefaultDurationMin = req.DefaultDurationMin
	settings.UpdatedAt = time.Now()

	if err := s.repo.Settings.Upsert(ctx, settings); err != nil {
		s.log.Error("Failed to save settings", zap.Error(err))
		return nil, fmt.Errorf("failed to save settings")
	}

	s.pushToCatalog(settings)
	s.log.Info("Settings updated", zap.Float64("travel_speed_kmh", settings.TravelSpeedKmh))

	resp := response.SettingsToResponse(settings)
	return &resp, nil
}

func (s *settingsService) Load(ctx context.Context) (*entity.Settings, error) {
	settings, err := s.repo.Settings.Find(ctx)
	if err != nil {
		s.log.Error("Failed to load settings", zap.Error(err))
		return nil, err
	}

	if settings == nil {
		now := time.Now()
		settings = &entity.Settings{
			BaseNoDelete: entity.BaseNoDelete{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			BusinessName:       s.config.App.Name,
			TravelSpeedKmh:     s.config.Booking.TravelSpeedKmh,
			DefaultDurationMin: s.config.Booking.DefaultDurationMin,
		}

		if err := s.repo.Settings.Upsert(ctx, settings); err != nil {
			s.log.Error("Failed to seed settings", zap.Error(err))
			return nil, err
		}
		s.log.Info("Seeded default business settings")
	}

	s.pushToCatalog(settings)
	return settings, nil
}

func (s *settingsService) pushToCatalog(settings *entity.Settings) {
	catalogSettings := catalog.Settings{
		TravelSpeedKmh:     settings.TravelSpeedKmh,
		DefaultDurationMin: settings.DefaultDurationMin,
	}
	if settings.BusinessLat != nil && settings.BusinessLng != nil {
		catalogSettings.BusinessCoordinates = &draft.Coordinates{
			Lat: *settings.BusinessLat,
			Lng: *settings.BusinessLng,
		}
	}
	s.store.UpdateSettings(catalogSettings)
}
