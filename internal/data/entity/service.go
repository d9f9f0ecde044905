package entity

// Service is a bookable offering, e.g. "Daytime photos" or "Drone video".
type Service struct {
	Base
	Name            string `db:"name"`
	DurationMinutes int    `db:"duration_minutes"`
	PriceCents      int64  `db:"price_cents"`
	IsActive        bool   `db:"is_active"`
}
