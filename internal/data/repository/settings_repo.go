package repository

import (
	"context"
	"fmt"

	"photodesk/internal/data/entity"
	"photodesk/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SettingsRepository interface {
	Find(ctx context.Context) (*entity.Settings, error)
	Upsert(ctx context.Context, settings *entity.Settings) error
}

type settingsRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSettingsRepository(db database.PgxIface, log *zap.Logger) SettingsRepository {
	return &settingsRepository{
		db:  db,
		log: log.With(zap.String("repository", "settings")),
	}
}

// Find returns the single business-settings row, nil when none was saved yet.
func (r *settingsRepository) Find(ctx context.Context) (*entity.Settings, error) {
	query := `
		SELECT id, business_name, business_address, business_lat, business_lng,
		       travel_speed_kmh, default_duration_min, created_at, updated_at
		FROM settings
		ORDER BY created_at
		LIMIT 1
	`

	var settings entity.Settings
	err := r.db.QueryRow(ctx, query).Scan(
		&settings.ID,
		&settings.BusinessName,
		&settings.BusinessAddress,
		&settings.BusinessLat,
		&settings.BusinessLng,
		&settings.TravelSpeedKmh,
		&settings.DefaultDurationMin,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find settings", zap.Error(err))
		return nil, fmt.Errorf("find settings: %w", err)
	}

	return &settings, nil
}

func (r *settingsRepository) Upsert(ctx context.Context, settings *entity.Settings) error {
	query := `
		INSERT INTO settings (id, business_name, business_address, business_lat, business_lng,
		                      travel_speed_kmh, default_duration_min, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE
		SET business_name = EXCLUDED.business_name,
		    business_address = EXCLUDED.business_address,
		    business_lat = EXCLUDED.business_lat,
		    business_lng = EXCLUDED.business_lng,
		    travel_speed_kmh = EXCLUDED.travel_speed_kmh,
		    default_duration_min = EXCLUDED.default_duration_min,
		    updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query,
		settings.ID,
		settings.BusinessName,
		settings.BusinessAddress,
		settings.BusinessLat,
		settings.BusinessLng,
		settings.TravelSpeedKmh,
		settings.DefaultDurationMin,
		settings.CreatedAt,
		settings.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to upsert settings", zap.Error(err))
		return fmt.Errorf("upsert settings: %w", err)
	}

	return nil
}
