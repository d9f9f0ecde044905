package repository

import (
	"context"
	"fmt"

	"photodesk/internal/data/entity"
	"photodesk/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	FindRecent(ctx context.Context, userID *uuid.UUID, limit int) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID *uuid.UUID) error
}

type notificationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewNotificationRepository(db database.PgxIface, log *zap.Logger) NotificationRepository {
	return &notificationRepository{
		db:  db,
		log: log.With(zap.String("repository", "notification")),
	}
}

func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, kind, message, ref_id, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		notification.ID,
		notification.UserID,
		notification.Kind,
		notification.Message,
		notification.RefID,
		notification.IsRead,
		notification.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create notification",
			zap.Error(err),
			zap.String("kind", string(notification.Kind)),
		)
		return fmt.Errorf("create notification: %w", err)
	}

	return nil
}

// FindRecent returns broadcast notifications (user_id NULL) plus, when userID
// is set, that user's own.
func (r *notificationRepository) FindRecent(ctx context.Context, userID *uuid.UUID, limit int) ([]*entity.Notification, error) {
	query := `
		SELECT id, user_id, kind, message, ref_id, is_read, created_at
		FROM notifications
		WHERE user_id IS NULL OR user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		r.log.Error("Failed to find notifications", zap.Error(err))
		return nil, fmt.Errorf("find notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*entity.Notification
	for rows.Next() {
		var notification entity.Notification
		err := rows.Scan(
			&notification.ID,
			&notification.UserID,
			&notification.Kind,
			&notification.Message,
			&notification.RefID,
			&notification.IsRead,
			&notification.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan notification row", zap.Error(err))
			return nil, fmt.Errorf("scan notification row: %w", err)
		}
		notifications = append(notifications, &notification)
	}

	return notifications, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to mark notification read",
			zap.Error(err),
			zap.String("notification_id", id.String()),
		)
		return fmt.Errorf("mark notification %s read: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("notification %s not found", id.String())
	}

	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID *uuid.UUID) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE is_read = FALSE AND (user_id IS NULL OR user_id = $1)`

	_, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to mark all notifications read", zap.Error(err))
		return fmt.Errorf("mark all notifications read: %w", err)
	}

	return nil
}
