package entity

// Settings is the single business-profile row. Base coordinates feed the
// travel-distance calculation on bookings.
type Settings struct {
	BaseNoDelete
	BusinessName       string   `db:"business_name"`
	BusinessAddress    *string  `db:"business_address"`
	BusinessLat        *float64 `db:"business_lat"`
	BusinessLng        *float64 `db:"business_lng"`
	TravelSpeedKmh     float64  `db:"travel_speed_kmh"`
	DefaultDurationMin int      `db:"default_duration_min"`
}
