package request

// Booking requests carry the editable fields of the booking form. The end
// time is derived from the services selection, so it is never accepted from
// the client.

type CreateBookingRequest struct {
	Title           string   `json:"title" validate:"required,min=1,max=200"`
	Start           *string  `json:"start,omitempty"`
	Status          *string  `json:"status,omitempty" validate:"omitempty,oneof=TENTATIVE CONFIRMED PENCILED CANCELLED"`
	AgentIDs        []string `json:"agent_ids,omitempty" validate:"omitempty,dive,uuid4"`
	PhotographerIDs []string `json:"photographer_ids,omitempty" validate:"omitempty,dive,uuid4"`
	ServiceIDs      []string `json:"service_ids,omitempty" validate:"omitempty,dive,uuid4"`
	Address         *string  `json:"address,omitempty" validate:"omitempty,max=300"`
	AddressLat      *float64 `json:"address_lat,omitempty" validate:"omitempty,latitude"`
	AddressLng      *float64 `json:"address_lng,omitempty" validate:"omitempty,longitude"`
	Notes           *string  `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// UpdateBookingRequest is a partial patch: nil fields are left untouched.
type UpdateBookingRequest struct {
	Title           *string   `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Start           *string   `json:"start,omitempty"`
	Status          *string   `json:"status,omitempty" validate:"omitempty,oneof=TENTATIVE CONFIRMED PENCILED CANCELLED"`
	AgentIDs        *[]string `json:"agent_ids,omitempty" validate:"omitempty,dive,uuid4"`
	PhotographerIDs *[]string `json:"photographer_ids,omitempty" validate:"omitempty,dive,uuid4"`
	ServiceIDs      *[]string `json:"service_ids,omitempty" validate:"omitempty,dive,uuid4"`
	Address         *string   `json:"address,omitempty" validate:"omitempty,max=300"`
	AddressLat      *float64  `json:"address_lat,omitempty" validate:"omitempty,latitude"`
	AddressLng      *float64  `json:"address_lng,omitempty" validate:"omitempty,longitude"`
	Notes           *string   `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=TENTATIVE CONFIRMED PENCILED CANCELLED"`
}
