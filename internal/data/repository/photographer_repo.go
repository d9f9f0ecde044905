package repository

import (
	"context"
	"fmt"

	"photodesk/internal/data/entity"
	"photodesk/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PhotographerRepository interface {
	Create(ctx context.Context, photographer *entity.Photographer) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Photographer, error)
	FindAll(ctx context.Context, activeOnly bool) ([]*entity.Photographer, error)
	Update(ctx context.Context, photographer *entity.Photographer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type photographerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPhotographerRepository(db database.PgxIface, log *zap.Logger) PhotographerRepository {
	return &photographerRepository{
		db:  db,
		log: log.With(zap.String("repository", "photographer")),
	}
}

func (r *photographerRepository) Create(ctx context.Context, photographer *entity.Photographer) error {
	query := `
		INSERT INTO photographers (id, name, email, phone, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		photographer.ID,
		photographer.Name,
		photographer.Email,
		photographer.Phone,
		photographer.IsActive,
		photographer.CreatedAt,
		photographer.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create photographer",
			zap.Error(err),
			zap.String("email", photographer.Email),
		)
		return fmt.Errorf("create photographer %s: %w", photographer.Email, err)
	}

	return nil
}

func (r *photographerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Photographer, error) {
	query := `
		SELECT id, name, email, phone, is_active, created_at, updated_at
		FROM photographers
		WHERE id = $1 AND deleted_at IS NULL
	`

	var photographer entity.Photographer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&photographer.ID,
		&photographer.Name,
		&photographer.Email,
		&photographer.Phone,
		&photographer.IsActive,
		&photographer.CreatedAt,
		&photographer.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find photographer by ID",
			zap.Error(err),
			zap.String("photographer_id", id.String()),
		)
		return nil, fmt.Errorf("find photographer by ID %s: %w", id.String(), err)
	}

	return &photographer, nil
}

func (r *photographerRepository) FindAll(ctx context.Context, activeOnly bool) ([]*entity.Photographer, error) {
	query := `
		SELECT id, name, email, phone, is_active, created_at, updated_at
		FROM photographers
		WHERE deleted_at IS NULL
	`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find photographers", zap.Error(err))
		return nil, fmt.Errorf("find photographers: %w", err)
	}
	defer rows.Close()

	var photographers []*entity.Photographer
	for rows.Next() {
		var photographer entity.Photographer
		err := rows.Scan(
			&photographer.ID,
			&photographer.Name,
			&photographer.Email,
			&photographer.Phone,
			&photographer.IsActive,
			&photographer.CreatedAt,
			&photographer.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan photographer row", zap.Error(err))
			return nil, fmt.Errorf("scan photographer row: %w", err)
		}
		photographers = append(photographers, &photographer)
	}

	return photographers, nil
}

func (r *photographerRepository) Update(ctx context.Context, photographer *entity.Photographer) error {
	query := `
		UPDATE photographers
		SET name = $2, email = $3, phone = $4, is_active = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		photographer.ID,
		photographer.Name,
		photographer.Email,
		photographer.Phone,
		photographer.IsActive,
		photographer.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update photographer",
			zap.Error(err),
			zap.String("photographer_id", photographer.ID.String()),
		)
		return fmt.Errorf("update photographer %s: %w", photographer.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("photographer %s not found", photographer.ID.String())
	}

	return nil
}

func (r *photographerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE photographers SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete photographer",
			zap.Error(err),
			zap.String("photographer_id", id.String()),
		)
		return fmt.Errorf("delete photographer %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("photographer %s not found", id.String())
	}

	return nil
}
