package entity

import "github.com/google/uuid"

// Join rows tying a booking to its selected agents, photographers and services.
// Position preserves the selection order from the booking form.

type BookingAgent struct {
	BaseSimple
	BookingID uuid.UUID `db:"booking_id"`
	AgentID   uuid.UUID `db:"agent_id"`
	Position  int       `db:"position"`
}

type BookingPhotographer struct {
	BaseSimple
	BookingID      uuid.UUID `db:"booking_id"`
	PhotographerID uuid.UUID `db:"photographer_id"`
	Position       int       `db:"position"`
}

type BookingService struct {
	BaseSimple
	BookingID uuid.UUID `db:"booking_id"`
	ServiceID uuid.UUID `db:"service_id"`
	Position  int       `db:"position"`
}
