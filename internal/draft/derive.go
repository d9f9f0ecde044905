package draft

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Env supplies the external lookups the derived-field calculations need: the
// service catalog and the business settings. Implemented by catalog.Store.
type Env interface {
	ServiceDuration(id uuid.UUID) (int, bool)
	BusinessCoordinates() (Coordinates, bool)
	DefaultDurationMinutes() int
	TravelSpeedKmh() float64
}

// TotalDurationMinutes sums the durations of the selected services, clamped to
// the minimum. Unknown ids contribute nothing; an empty or fully unresolvable
// selection falls back to the flat minimum.
func TotalDurationMinutes(d *Draft, env Env) int {
	min := env.DefaultDurationMinutes()
	if min <= 0 {
		min = 60
	}

	total := 0
	for _, id := range d.ServiceIDs {
		if minutes, ok := env.ServiceDuration(id); ok {
			total += minutes
		}
	}

	if total < min {
		return min
	}
	return total
}

// RecomputeEnd makes the services selection authoritative for the booking
// duration, overriding any previously set end time.
func RecomputeEnd(d *Draft, env Env) {
	d.End = d.Start.Add(time.Duration(TotalDurationMinutes(d, env)) * time.Minute)
}

// RecomputeTravel derives distance and travel time from the business and job
// coordinates. Either pair missing clears both derived fields.
func RecomputeTravel(d *Draft, env Env) {
	d.DistanceKm = nil
	d.TravelMinutes = nil

	base, ok := env.BusinessCoordinates()
	if !ok {
		return
	}
	if d.Components == nil || d.Components.Lat == nil || d.Components.Lng == nil {
		return
	}

	km := Haversine(base.Lat, base.Lng, *d.Components.Lat, *d.Components.Lng)
	minutes := TravelMinutes(km, env.TravelSpeedKmh())

	d.DistanceKm = &km
	d.TravelMinutes = &minutes
}

// Haversine returns the great-circle distance in kilometers.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371
	dLat := (lat2 - lat1) * (math.Pi / 180)
	dLon := (lon2 - lon1) * (math.Pi / 180)
	lat1Rad := lat1 * (math.Pi / 180)
	lat2Rad := lat2 * (math.Pi / 180)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}

// TravelMinutes estimates drive time at a flat average speed. Deliberately
// crude; routing APIs are out of scope.
func TravelMinutes(distanceKm, speedKmh float64) int {
	if speedKmh <= 0 {
		speedKmh = 50
	}
	return int(math.Round(distanceKm / speedKmh * 60))
}
