package repository

import (
	"context"
	"fmt"

	"photodesk/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingLinkRepository manages the ordered join rows between a booking and its
// selected agents, photographers and services. Selections are replaced
// wholesale on every save, so each kind only needs replace + read.
type BookingLinkRepository interface {
	ReplaceAgents(ctx context.Context, bookingID uuid.UUID, agentIDs []uuid.UUID) error
	ReplacePhotographers(ctx context.Context, bookingID uuid.UUID, photographerIDs []uuid.UUID) error
	ReplaceServices(ctx context.Context, bookingID uuid.UUID, serviceIDs []uuid.UUID) error
	FindAgentIDs(ctx context.Context, bookingID uuid.UUID) ([]uuid.UUID, error)
	FindPhotographerIDs(ctx context.Context, bookingID uuid.UUID) ([]uuid.UUID, error)
	FindServiceIDs(ctx context.Context, bookingID uuid.UUID) ([]uuid.UUID, error)
}

type bookingLinkRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingLinkRepository(db database.PgxIface, log *zap.Logger) BookingLinkRepository {
	return &bookingLinkRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking_link")),
	}
}

func (r *bookingLinkRepository) ReplaceAgents(ctx context.Context, bookingID uuid.UUID, agentIDs []uuid.UUID) error {
	return r.replace(ctx, "booking_agents", "agent_id", bookingID, agentIDs)
}

func (r *bookingLinkRepository) ReplacePhotographers(ctx context.Context, bookingID uuid.UUID, photographerIDs []uuid.UUID) error {
	return r.replace(ctx, "booking_photographers", "photographer_id", bookingID, photographerIDs)
}

func (r *bookingLinkRepository) ReplaceServices(ctx context.Context, bookingID uuid.UUID, serviceIDs []uuid.UUID) error {
	return r.replace(ctx, "booking_services", "service_id", bookingID, serviceIDs)
}

func (r *bookingLinkRepository) FindAgentIDs(ctx context.Context, bookingID uuid.UUID) ([]uuid.UUID, error) {
	return r.find(ctx, "booking_agents", "agent_id", bookingID)
}

func (r *bookingLinkRepository) FindPhotographerIDs(ctx context.Context, bookingID uuid.UUID) ([]uuid.UUID, error) {
	return r.find(ctx, "booking_photographers", "photographer_id", bookingID)
}

func (r *bookingLinkRepository) FindServiceIDs(ctx context.Context, bookingID uuid.UUID) ([]uuid.UUID, error) {
	return r.find(ctx, "booking_services", "service_id", bookingID)
}

// replace swaps all link rows for one booking inside a transaction so a failed
// save never leaves a half-replaced selection.
func (r *bookingLinkRepository) replace(ctx context.Context, table, column string, bookingID uuid.UUID, ids []uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin replace %s: %w", table, err)
	}
	defer tx.Rollback(ctx)

	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE booking_id = $1`, table)
	if _, err := tx.Exec(ctx, deleteQuery, bookingID); err != nil {
		r.log.Error("Failed to clear booking links",
			zap.Error(err),
			zap.String("table", table),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("clear %s for booking %s: %w", table, bookingID.String(), err)
	}

	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (id, booking_id, %s, position, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`, table, column)

	for position, id := range ids {
		if _, err := tx.Exec(ctx, insertQuery, uuid.New(), bookingID, id, position); err != nil {
			r.log.Error("Failed to insert booking link",
				zap.Error(err),
				zap.String("table", table),
				zap.String("booking_id", bookingID.String()),
			)
			return fmt.Errorf("insert %s for booking %s: %w", table, bookingID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit replace %s: %w", table, err)
	}

	return nil
}

func (r *bookingLinkRepository) find(ctx context.Context, table, column string, bookingID uuid.UUID) ([]uuid.UUID, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE booking_id = $1 ORDER BY position
	`, column, table)

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find booking links",
			zap.Error(err),
			zap.String("table", table),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find %s for booking %s: %w", table, bookingID.String(), err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", table, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
