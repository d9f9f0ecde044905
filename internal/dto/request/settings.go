package request

type UpdateSettingsRequest struct {
	BusinessName       string   `json:"business_name" validate:"required,min=1,max=200"`
	BusinessAddress    *string  `json:"business_address,omitempty" validate:"omitempty,max=300"`
	BusinessLat        *float64 `json:"business_lat,omitempty" validate:"omitempty,latitude"`
	BusinessLng        *float64 `json:"business_lng,omitempty" validate:"omitempty,longitude"`
	TravelSpeedKmh     float64  `json:"travel_speed_kmh" validate:"required,gt=0,lte=200"`
	DefaultDurationMin int      `json:"default_duration_min" validate:"required,min=5,max=1440"`
}
