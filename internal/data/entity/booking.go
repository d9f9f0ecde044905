package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusTentative BookingStatus = "TENTATIVE"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusPenciled  BookingStatus = "PENCILED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

type Booking struct {
	Base
	Title         string        `db:"title"`
	StartTime     time.Time     `db:"start_time"`
	EndTime       time.Time     `db:"end_time"`
	Status        BookingStatus `db:"status"`
	Address       *string       `db:"address"`
	AddressLat    *float64      `db:"address_lat"`
	AddressLng    *float64      `db:"address_lng"`
	DistanceKm    *float64      `db:"distance_km"`
	TravelMinutes *int          `db:"travel_minutes"`
	Notes         *string       `db:"notes"`
	CreatedBy     uuid.UUID     `db:"created_by"`
}
