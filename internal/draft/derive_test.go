package draft_test

import (
	"math"
	"testing"
	"time"

	"photodesk/internal/draft"

	"github.com/google/uuid"
)

func TestTotalDurationSumsKnownServices(t *testing.T) {
	env := newEnv(t)
	a, b := uuid.New(), uuid.New()
	env.durations[a] = 60
	env.durations[b] = 45

	d := &draft.Draft{ServiceIDs: []uuid.UUID{a, b}}
	if got := draft.TotalDurationMinutes(d, env); got != 105 {
		t.Fatalf("total duration = %d, want 105", got)
	}
}

func TestTotalDurationFallsBackToMinimum(t *testing.T) {
	env := newEnv(t)

	empty := &draft.Draft{}
	if got := draft.TotalDurationMinutes(empty, env); got != 60 {
		t.Fatalf("empty selection duration = %d, want 60", got)
	}

	// Unknown ids contribute nothing.
	unknown := &draft.Draft{ServiceIDs: []uuid.UUID{uuid.New(), uuid.New()}}
	if got := draft.TotalDurationMinutes(unknown, env); got != 60 {
		t.Fatalf("unresolvable selection duration = %d, want 60", got)
	}

	// A short selection is clamped up to the minimum.
	short := uuid.New()
	env.durations[short] = 15
	clamped := &draft.Draft{ServiceIDs: []uuid.UUID{short}}
	if got := draft.TotalDurationMinutes(clamped, env); got != 60 {
		t.Fatalf("clamped duration = %d, want 60", got)
	}
}

func TestRecomputeEndUsesSelection(t *testing.T) {
	env := newEnv(t)
	a := uuid.New()
	env.durations[a] = 90

	d := draft.New(draft.RoleAdmin)
	d.ServiceIDs = []uuid.UUID{a}
	draft.RecomputeEnd(d, env)

	if got := d.End.Sub(d.Start); got != 90*time.Minute {
		t.Fatalf("recomputed duration = %v, want 90m", got)
	}
}

func TestHaversineSydneyBrisbane(t *testing.T) {
	km := draft.Haversine(-33.8688, 151.2093, -27.4698, 153.0251)
	if math.Abs(km-732) > 5 {
		t.Fatalf("Sydney-Brisbane distance = %.1f km, want 732 +-5", km)
	}

	minutes := draft.TravelMinutes(km, 50)
	if minutes < 872 || minutes > 884 {
		t.Fatalf("travel minutes = %d, want ~878", minutes)
	}
}

func TestTravelMinutesDefaultsSpeed(t *testing.T) {
	if got := draft.TravelMinutes(100, 0); got != 120 {
		t.Fatalf("travel minutes at default speed = %d, want 120", got)
	}
}

func TestRecomputeTravelSetsBothFields(t *testing.T) {
	env := newEnv(t)
	env.base = &draft.Coordinates{Lat: -33.8688, Lng: 151.2093}

	lat, lng := -27.4698, 153.0251
	d := &draft.Draft{
		Components: &draft.AddressComponents{Formatted: "Brisbane QLD", Lat: &lat, Lng: &lng},
	}
	draft.RecomputeTravel(d, env)

	if d.DistanceKm == nil || d.TravelMinutes == nil {
		t.Fatal("derived fields not set with both coordinate pairs present")
	}
}

func TestRecomputeTravelClearsWhenCoordsAbsent(t *testing.T) {
	env := newEnv(t)
	env.base = &draft.Coordinates{Lat: -33.8688, Lng: 151.2093}

	stale := 10.0
	staleMin := 12
	d := &draft.Draft{
		DistanceKm:    &stale,
		TravelMinutes: &staleMin,
		Components:    &draft.AddressComponents{Formatted: "no coords"},
	}
	draft.RecomputeTravel(d, env)

	if d.DistanceKm != nil || d.TravelMinutes != nil {
		t.Fatal("derived fields should clear when the job address has no coordinates")
	}

	// Same when the business base is unset.
	lat, lng := -27.4698, 153.0251
	env.base = nil
	d.Components = &draft.AddressComponents{Lat: &lat, Lng: &lng}
	draft.RecomputeTravel(d, env)

	if d.DistanceKm != nil || d.TravelMinutes != nil {
		t.Fatal("derived fields should stay unset without a business base")
	}
}
