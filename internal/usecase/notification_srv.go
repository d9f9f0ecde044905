package usecase

import (
	"context"
	"fmt"
	"time"

	"photodesk/internal/bus"
	"photodesk/internal/data/entity"
	"photodesk/internal/data/repository"
	"photodesk/internal/dto/response"
	"photodesk/internal/ws"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type NotificationService interface {
	// Start subscribes to the event bus. The returned func unsubscribes.
	Start() func()

	GetRecent(ctx context.Context, userID *uuid.UUID, limit int) ([]response.NotificationResponse, error)
	MarkRead(ctx context.Context, notificationID string) error
	MarkAllRead(ctx context.Context, userID *uuid.UUID) error
}

type notificationService struct {
	repo     *repository.Repository
	eventBus *bus.Bus
	hub      *ws.Hub
	log      *zap.Logger
}

func NewNotificationService(
	repo *repository.Repository,
	eventBus *bus.Bus,
	hub *ws.Hub,
	log *zap.Logger,
) NotificationService {
	return &notificationService{
		repo:     repo,
		eventBus: eventBus,
		hub:      hub,
		log:      log.With(zap.String("service", "notification")),
	}
}

func (s *notificationService) Start() func() {
	return s.eventBus.Subscribe(s.handle)
}

// handle turns a bus event into a persisted notification row and a websocket
// push. Events run on the bus dispatch goroutine, so persistence uses a fresh
// context.
func (s *notificationService) handle(event bus.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var (
		kind    entity.NotificationKind
		message string
		refID   uuid.UUID
	)

	switch e := event.(type) {
	case bus.BookingCreated:
		kind = entity.NotificationBookingCreated
		message = fmt.Sprintf("New booking %q on %s", e.Title, e.Start.Format("Mon 2 Jan 15:04"))
		refID = e.BookingID
	case bus.BookingUpdated:
		kind = entity.NotificationBookingUpdated
		message = fmt.Sprintf("Booking %q updated (%s)", e.Title, e.Status)
		refID = e.BookingID
	case bus.BookingCancelled:
		kind = entity.NotificationBookingCancelled
		message = fmt.Sprintf("Booking %q cancelled", e.Title)
		refID = e.BookingID
	case bus.BookingReminder:
		kind = entity.NotificationBookingReminder
		message = fmt.Sprintf("Reminder: booking %q starts %s", e.Title, e.Start.Format("Mon 2 Jan 15:04"))
		refID = e.BookingID
	case bus.GalleryShared:
		kind = entity.NotificationGalleryShared
		message = fmt.Sprintf("Gallery %q was shared", e.Title)
		refID = e.GalleryID
	default:
		return
	}

	notification := &entity.Notification{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Kind:    kind,
		Message: message,
		RefID:   &refID,
	}

	if err := s.repo.Notification.Create(ctx, notification); err != nil {
		s.log.Error("Failed to persist notification",
			zap.Error(err),
			zap.String("kind", string(kind)))
	}

	s.hub.Broadcast(string(kind), response.NotificationToResponse(notification))
}

func (s *notificationService) GetRecent(ctx context.Context, userID *uuid.UUID, limit int) ([]response.NotificationResponse, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}

	notifications, err := s.repo.Notification.FindRecent(ctx, userID, limit)
	if err != nil {
		s.log.Error("Failed to list notifications", zap.Error(err))
		return nil, fmt.Errorf("failed to list notifications")
	}

	out := make([]response.NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		out = append(out, response.NotificationToResponse(notification))
	}
	return out, nil
}

func (s *notificationService) MarkRead(ctx context.Context, notificationID string) error {
	id, err := uuid.Parse(notificationID)
	if err != nil {
		return fmt.Errorf("invalid notification ID format %s", notificationID)
	}
	return s.repo.Notification.MarkRead(ctx, id)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID *uuid.UUID) error {
	return s.repo.Notification.MarkAllRead(ctx, userID)
}
