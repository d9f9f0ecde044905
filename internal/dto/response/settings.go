package response

import (
	"time"

	"photodesk/internal/data/entity"
)

type SettingsResponse struct {
	BusinessName       string    `json:"business_name"`
	BusinessAddress    *string   `json:"business_address,omitempty"`
	BusinessLat        *float64  `json:"business_lat,omitempty"`
	BusinessLng        *float64  `json:"business_lng,omitempty"`
	TravelSpeedKmh     float64   `json:"travel_speed_kmh"`
	DefaultDurationMin int       `json:"default_duration_min"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func SettingsToResponse(settings *entity.Settings) SettingsResponse {
	return SettingsResponse{
		BusinessName:       settings.BusinessName,
		BusinessAddress:    settings.BusinessAddress,
		BusinessLat:        settings.BusinessLat,
		BusinessLng:        settings.BusinessLng,
		TravelSpeedKmh:     settings.TravelSpeedKmh,
		DefaultDurationMin: settings.DefaultDurationMin,
		UpdatedAt:          settings.UpdatedAt,
	}
}
