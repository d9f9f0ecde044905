package entity

import "github.com/google/uuid"

type NotificationKind string

const (
	NotificationBookingCreated   NotificationKind = "booking_created"
	NotificationBookingUpdated   NotificationKind = "booking_updated"
	NotificationBookingCancelled NotificationKind = "booking_cancelled"
	NotificationBookingReminder  NotificationKind = "booking_reminder"
	NotificationGalleryShared    NotificationKind = "gallery_shared"
)

type Notification struct {
	BaseSimple
	UserID  *uuid.UUID       `db:"user_id"`
	Kind    NotificationKind `db:"kind"`
	Message string           `db:"message"`
	RefID   *uuid.UUID       `db:"ref_id"`
	IsRead  bool             `db:"is_read"`
}
