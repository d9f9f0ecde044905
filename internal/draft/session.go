package draft

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// SaveFunc receives the final snapshot of a draft. Persistence, server-side
// validation and rejection are the callback's problem.
type SaveFunc func(snapshot Draft) error

// DeleteFunc receives the booking id of a discarded edit-mode draft.
type DeleteFunc func(bookingID uuid.UUID) error

// Sessions tracks the open editing sessions. Each Open is one closed→open
// transition: the seed is applied exactly once, and later patches are never
// clobbered by it. The modal lifecycle is
// closed → open(create|edit) → {saved | cancelled | deleted} → closed.
type Sessions struct {
	mu   sync.Mutex
	open map[uuid.UUID]*session
	env  Env
}

type session struct {
	draft    *Draft
	editMode bool
	onSave   SaveFunc
	onDelete DeleteFunc
}

func NewSessions(env Env) *Sessions {
	return &Sessions{
		open: make(map[uuid.UUID]*session),
		env:  env,
	}
}

// Open starts a create-mode session. The fresh draft gets the role's default
// status and the configured default duration.
func (s *Sessions) Open(role Role, onSave SaveFunc) Draft {
	d := New(role)
	RecomputeEnd(d, s.env)

	s.mu.Lock()
	s.open[d.ID] = &session{draft: d, onSave: onSave}
	s.mu.Unlock()

	return d.Snapshot()
}

// OpenForEdit starts an edit-mode session seeded from an existing booking.
// Reseeding happens here and only here.
func (s *Sessions) OpenForEdit(role Role, seed Seed, onSave SaveFunc, onDelete DeleteFunc) Draft {
	d := FromSeed(role, seed)
	RecomputeTravel(d, s.env)

	s.mu.Lock()
	s.open[d.ID] = &session{draft: d, editMode: true, onSave: onSave, onDelete: onDelete}
	s.mu.Unlock()

	return d.Snapshot()
}

// Apply merges a patch into an open draft and recomputes whatever derived
// fields the patch touched: services drive the end time, address components
// drive distance and travel time.
func (s *Sessions) Apply(id uuid.UUID, p Patch) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.open[id]
	if !ok {
		return Draft{}, fmt.Errorf("draft %s not found", id)
	}

	sess.draft.Apply(p)

	if p.ServiceIDs != nil || p.Start != nil {
		RecomputeEnd(sess.draft, s.env)
	}
	if p.Components != nil {
		RecomputeTravel(sess.draft, s.env)
	}

	return sess.draft.Snapshot(), nil
}

// Get returns a snapshot of an open draft.
func (s *Sessions) Get(id uuid.UUID) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.open[id]
	if !ok {
		return Draft{}, fmt.Errorf("draft %s not found", id)
	}
	return sess.draft.Snapshot(), nil
}

// Save hands the current snapshot to the save callback. The session stays open
// so the caller decides when the modal closes; saving twice without edits in
// between sends identical payloads.
func (s *Sessions) Save(id uuid.UUID) (Draft, error) {
	s.mu.Lock()
	sess, ok := s.open[id]
	s.mu.Unlock()

	if !ok {
		return Draft{}, fmt.Errorf("draft %s not found", id)
	}

	snapshot := sess.draft.Snapshot()
	if sess.onSave != nil {
		if err := sess.onSave(snapshot); err != nil {
			return Draft{}, fmt.Errorf("save draft %s: %w", id, err)
		}
	}
	return snapshot, nil
}

// Delete invokes the delete callback and closes the session. Only valid for
// edit-mode drafts.
func (s *Sessions) Delete(id uuid.UUID) error {
	s.mu.Lock()
	sess, ok := s.open[id]
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("draft %s not found", id)
	}
	if !sess.editMode {
		return fmt.Errorf("draft %s was never persisted", id)
	}

	if sess.onDelete != nil {
		if err := sess.onDelete(id); err != nil {
			return fmt.Errorf("delete booking %s: %w", id, err)
		}
	}

	s.Discard(id)
	return nil
}

// Discard drops the draft without saving. Nothing was persisted, so there is
// nothing to clean up.
func (s *Sessions) Discard(id uuid.UUID) {
	s.mu.Lock()
	delete(s.open, id)
	s.mu.Unlock()
}
