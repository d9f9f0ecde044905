package draft_test

import (
	"reflect"
	"testing"
	"time"

	"photodesk/internal/draft"

	"github.com/google/uuid"
)

func TestOpenAppliesDefaultDuration(t *testing.T) {
	sessions := draft.NewSessions(newEnv(t))

	d := sessions.Open(draft.RoleClient, nil)
	if got := d.End.Sub(d.Start); got != 60*time.Minute {
		t.Fatalf("fresh draft duration = %v, want 60m", got)
	}
}

func TestApplyServicesRecomputesEnd(t *testing.T) {
	env := newEnv(t)
	a, b := uuid.New(), uuid.New()
	env.durations[a] = 60
	env.durations[b] = 45

	sessions := draft.NewSessions(env)
	d := sessions.Open(draft.RoleAdmin, nil)

	got, err := sessions.Apply(d.ID, draft.Patch{ServiceIDs: []uuid.UUID{a, b}})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if duration := got.End.Sub(got.Start); duration != 105*time.Minute {
		t.Fatalf("duration = %v, want 105m", duration)
	}

	// Deselect down to one service.
	got, err = sessions.Apply(d.ID, draft.Patch{ServiceIDs: []uuid.UUID{b}})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if duration := got.End.Sub(got.Start); duration != 60*time.Minute {
		t.Fatalf("duration after deselect = %v, want 60m (clamped)", duration)
	}
}

func TestApplyComponentsRecomputesTravel(t *testing.T) {
	env := newEnv(t)
	env.base = &draft.Coordinates{Lat: -33.8688, Lng: 151.2093}

	sessions := draft.NewSessions(env)
	d := sessions.Open(draft.RoleAdmin, nil)

	lat, lng := -27.4698, 153.0251
	got, err := sessions.Apply(d.ID, draft.Patch{
		Components: &draft.AddressComponents{Formatted: "Brisbane QLD", Lat: &lat, Lng: &lng},
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got.DistanceKm == nil || got.TravelMinutes == nil {
		t.Fatal("derived travel fields not set")
	}

	// Dropping the coordinates clears them again.
	got, err = sessions.Apply(d.ID, draft.Patch{
		Components: &draft.AddressComponents{Formatted: "somewhere"},
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got.DistanceKm != nil || got.TravelMinutes != nil {
		t.Fatal("derived travel fields should clear")
	}
}

func TestSeedAppliedExactlyOnce(t *testing.T) {
	sessions := draft.NewSessions(newEnv(t))

	seed := draft.Seed{ID: uuid.New(), Title: "Seeded title", Notes: "seed notes"}
	d := sessions.OpenForEdit(draft.RoleAdmin, seed, nil, nil)

	if d.Title != "Seeded title" {
		t.Fatalf("title = %q, want seeded", d.Title)
	}

	title := "Edited title"
	if _, err := sessions.Apply(d.ID, draft.Patch{Title: &title}); err != nil {
		t.Fatalf("apply: %v", err)
	}

	got, err := sessions.Get(d.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Edited title" {
		t.Fatalf("title = %q, seed must not clobber edits", got.Title)
	}
	if got.Notes != "seed notes" {
		t.Fatalf("notes = %q, untouched fields keep the seed", got.Notes)
	}
}

func TestSaveIdempotentWithoutEdits(t *testing.T) {
	sessions := draft.NewSessions(newEnv(t))

	var payloads []draft.Draft
	onSave := func(snapshot draft.Draft) error {
		payloads = append(payloads, snapshot)
		return nil
	}

	d := sessions.Open(draft.RoleAdmin, onSave)
	title := "Twilight shoot"
	if _, err := sessions.Apply(d.ID, draft.Patch{Title: &title}); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if _, err := sessions.Save(d.ID); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if _, err := sessions.Save(d.ID); err != nil {
		t.Fatalf("second save: %v", err)
	}

	if len(payloads) != 2 {
		t.Fatalf("save callback fired %d times, want 2", len(payloads))
	}
	if !reflect.DeepEqual(payloads[0], payloads[1]) {
		t.Fatal("save payloads differ without intervening edits")
	}
}

func TestSaveKeepsSessionOpen(t *testing.T) {
	sessions := draft.NewSessions(newEnv(t))

	d := sessions.Open(draft.RoleAdmin, func(draft.Draft) error { return nil })
	if _, err := sessions.Save(d.ID); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := sessions.Get(d.ID); err != nil {
		t.Fatalf("session closed after save: %v", err)
	}
}

func TestDeleteOnlyForEditMode(t *testing.T) {
	sessions := draft.NewSessions(newEnv(t))

	created := sessions.Open(draft.RoleAdmin, nil)
	if err := sessions.Delete(created.ID); err == nil {
		t.Fatal("delete on a never-persisted draft must fail")
	}

	deleted := false
	seed := draft.Seed{ID: uuid.New(), Title: "existing"}
	edited := sessions.OpenForEdit(draft.RoleAdmin, seed, nil, func(id uuid.UUID) error {
		if id != seed.ID {
			t.Fatalf("delete callback id = %s, want %s", id, seed.ID)
		}
		deleted = true
		return nil
	})

	if err := sessions.Delete(edited.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !deleted {
		t.Fatal("delete callback not invoked")
	}
	if _, err := sessions.Get(edited.ID); err == nil {
		t.Fatal("session should close after delete")
	}
}

func TestDiscardDropsDraft(t *testing.T) {
	sessions := draft.NewSessions(newEnv(t))

	d := sessions.Open(draft.RoleClient, nil)
	sessions.Discard(d.ID)

	if _, err := sessions.Get(d.ID); err == nil {
		t.Fatal("discarded draft still open")
	}
}
