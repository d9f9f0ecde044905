package response

import (
	"time"

	"photodesk/internal/data/entity"
)

type BookingResponse struct {
	ID              string               `json:"id"`
	Title           string               `json:"title"`
	Start           time.Time            `json:"start"`
	End             time.Time            `json:"end"`
	Status          entity.BookingStatus `json:"status"`
	AgentIDs        []string             `json:"agent_ids"`
	PhotographerIDs []string             `json:"photographer_ids"`
	ServiceIDs      []string             `json:"service_ids"`
	Address         *string              `json:"address,omitempty"`
	AddressLat      *float64             `json:"address_lat,omitempty"`
	AddressLng      *float64             `json:"address_lng,omitempty"`
	DistanceKm      *float64             `json:"distance_km,omitempty"`
	TravelMinutes   *int                 `json:"travel_minutes,omitempty"`
	Notes           *string              `json:"notes,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// TimeSlot is one free interval offered by the availability endpoint.
type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type AvailabilityResponse struct {
	Date            string     `json:"date"`
	DurationMinutes int        `json:"duration_minutes"`
	Slots           []TimeSlot `json:"slots"`
}

func BookingToResponse(booking *entity.Booking, agentIDs, photographerIDs, serviceIDs []string) BookingResponse {
	return BookingResponse{
		ID:              booking.ID.String(),
		Title:           booking.Title,
		Start:           booking.StartTime,
		End:             booking.EndTime,
		Status:          booking.Status,
		AgentIDs:        agentIDs,
		PhotographerIDs: photographerIDs,
		ServiceIDs:      serviceIDs,
		Address:         booking.Address,
		AddressLat:      booking.AddressLat,
		AddressLng:      booking.AddressLng,
		DistanceKm:      booking.DistanceKm,
		TravelMinutes:   booking.TravelMinutes,
		Notes:           booking.Notes,
		CreatedAt:       booking.CreatedAt,
		UpdatedAt:       booking.UpdatedAt,
	}
}
