package entity

import "github.com/google/uuid"

type Gallery struct {
	Base
	BookingID *uuid.UUID `db:"booking_id"`
	Title     string     `db:"title"`
	IsPublic  bool       `db:"is_public"`
}

type GalleryImage struct {
	BaseSimple
	GalleryID uuid.UUID `db:"gallery_id"`
	URL       string    `db:"url"`
	Caption   *string   `db:"caption"`
	Position  int       `db:"position"`
}
