package draft_test

import (
	"reflect"
	"testing"
	"time"

	"photodesk/internal/draft"

	"github.com/google/uuid"
)

type fakeEnv struct {
	durations  map[uuid.UUID]int
	base       *draft.Coordinates
	defaultMin int
	speed      float64
}

func (e *fakeEnv) ServiceDuration(id uuid.UUID) (int, bool) {
	minutes, ok := e.durations[id]
	return minutes, ok
}

func (e *fakeEnv) BusinessCoordinates() (draft.Coordinates, bool) {
	if e.base == nil {
		return draft.Coordinates{}, false
	}
	return *e.base, true
}

func (e *fakeEnv) DefaultDurationMinutes() int { return e.defaultMin }
func (e *fakeEnv) TravelSpeedKmh() float64     { return e.speed }

func newEnv(t *testing.T) *fakeEnv {
	t.Helper()
	return &fakeEnv{
		durations:  make(map[uuid.UUID]int),
		defaultMin: 60,
		speed:      50,
	}
}

func TestNewDraftDefaults(t *testing.T) {
	client := draft.New(draft.RoleClient)
	if client.Status != draft.StatusTentative {
		t.Fatalf("client draft status = %s, want TENTATIVE", client.Status)
	}
	if got := client.End.Sub(client.Start); got != time.Hour {
		t.Fatalf("fresh draft duration = %v, want 1h", got)
	}

	admin := draft.New(draft.RoleAdmin)
	if admin.Status != draft.StatusConfirmed {
		t.Fatalf("admin draft status = %s, want CONFIRMED", admin.Status)
	}
}

func TestFromSeedStatusByRole(t *testing.T) {
	seed := draft.Seed{
		ID:     uuid.New(),
		Title:  "Open home shoot",
		Status: draft.StatusPenciled,
	}

	client := draft.FromSeed(draft.RoleClient, seed)
	if client.Status != draft.StatusTentative {
		t.Fatalf("client seeded status = %s, want TENTATIVE", client.Status)
	}

	admin := draft.FromSeed(draft.RoleAdmin, seed)
	if admin.Status != draft.StatusPenciled {
		t.Fatalf("admin seeded status = %s, want PENCILED", admin.Status)
	}

	adminNoStatus := draft.FromSeed(draft.RoleAdmin, draft.Seed{ID: uuid.New()})
	if adminNoStatus.Status != draft.StatusConfirmed {
		t.Fatalf("admin unseeded status = %s, want CONFIRMED", adminNoStatus.Status)
	}
}

func TestFromSeedDefaultsMissingTimes(t *testing.T) {
	d := draft.FromSeed(draft.RoleAdmin, draft.Seed{ID: uuid.New(), Title: "x"})

	if d.Start.IsZero() || d.End.IsZero() {
		t.Fatal("seeded draft has zero timestamps")
	}
	if got := d.End.Sub(d.Start); got != time.Hour {
		t.Fatalf("defaulted duration = %v, want 1h", got)
	}
}

func TestApplyStartShiftPreservesDuration(t *testing.T) {
	d := draft.New(draft.RoleAdmin)
	d.End = d.Start.Add(105 * time.Minute)

	newStart := d.Start.Add(48 * time.Hour)
	d.Apply(draft.Patch{Start: &newStart})

	if !d.Start.Equal(newStart) {
		t.Fatalf("start = %v, want %v", d.Start, newStart)
	}
	if got := d.End.Sub(d.Start); got != 105*time.Minute {
		t.Fatalf("duration after shift = %v, want 105m", got)
	}
}

func TestApplyExplicitEndWins(t *testing.T) {
	d := draft.New(draft.RoleAdmin)

	newStart := d.Start.Add(2 * time.Hour)
	newEnd := newStart.Add(30 * time.Minute)
	d.Apply(draft.Patch{Start: &newStart, End: &newEnd})

	if !d.End.Equal(newEnd) {
		t.Fatalf("end = %v, want %v", d.End, newEnd)
	}
}

func TestApplyDedupesSelections(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	d := draft.New(draft.RoleAdmin)
	d.Apply(draft.Patch{AgentIDs: []uuid.UUID{a, b, a, b, a}})

	want := []uuid.UUID{a, b}
	if !reflect.DeepEqual(d.AgentIDs, want) {
		t.Fatalf("agent ids = %v, want %v", d.AgentIDs, want)
	}
}

func TestSnapshotIsIsolated(t *testing.T) {
	d := draft.New(draft.RoleAdmin)
	d.Apply(draft.Patch{ServiceIDs: []uuid.UUID{uuid.New()}})

	snap := d.Snapshot()
	d.Apply(draft.Patch{ServiceIDs: []uuid.UUID{uuid.New(), uuid.New()}})

	if len(snap.ServiceIDs) != 1 {
		t.Fatalf("snapshot service ids = %d, want 1", len(snap.ServiceIDs))
	}
}
