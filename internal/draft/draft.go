// Package draft holds the in-memory state of a booking being edited in the
// admin or client portal: the draft itself, its derived fields, and the open
// editing sessions. Nothing here is persisted; a finished draft is handed to a
// save callback as a snapshot.
package draft

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusTentative Status = "TENTATIVE"
	StatusConfirmed Status = "CONFIRMED"
	StatusPenciled  Status = "PENCILED"
	StatusCancelled Status = "CANCELLED"
)

// Role decides the default status of a fresh draft. Client drafts are always
// tentative until an admin confirms them.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
)

// AddressComponents is what the geocoding autocomplete hands back.
type AddressComponents struct {
	Formatted string
	Lat       *float64
	Lng       *float64
}

// Coordinates is a resolved lat/lng pair.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Draft is one in-progress booking.
type Draft struct {
	ID              uuid.UUID
	Title           string
	Start           time.Time
	End             time.Time
	Status          Status
	AgentIDs        []uuid.UUID
	PhotographerIDs []uuid.UUID
	ServiceIDs      []uuid.UUID
	Address         string
	Components      *AddressComponents
	DistanceKm      *float64
	TravelMinutes   *int
	Notes           string
}

// Patch is a partial booking. Nil fields are left untouched.
type Patch struct {
	Title           *string
	Start           *time.Time
	End             *time.Time
	Status          *Status
	AgentIDs        []uuid.UUID
	PhotographerIDs []uuid.UUID
	ServiceIDs      []uuid.UUID
	Address         *string
	Components      *AddressComponents
	Notes           *string
}

// Seed initializes a draft for edit mode. Absent fields fall back to defaults.
type Seed struct {
	ID              uuid.UUID
	Title           string
	Start           time.Time
	End             time.Time
	Status          Status
	AgentIDs        []uuid.UUID
	PhotographerIDs []uuid.UUID
	ServiceIDs      []uuid.UUID
	Address         string
	Components      *AddressComponents
	Notes           string
}

// New creates a fresh draft: new id, one hour starting now, empty selections.
func New(role Role) *Draft {
	return newAt(role, time.Now())
}

func newAt(role Role, now time.Time) *Draft {
	status := StatusTentative
	if role == RoleAdmin {
		status = StatusConfirmed
	}

	return &Draft{
		ID:     uuid.New(),
		Start:  now,
		End:    now.Add(time.Hour),
		Status: status,
	}
}

// FromSeed builds a draft from an existing booking. A client open forces
// tentative status regardless of the seed; missing timestamps default to a
// one-hour slot starting now.
func FromSeed(role Role, seed Seed) *Draft {
	d := newAt(role, time.Now())

	if seed.ID != uuid.Nil {
		d.ID = seed.ID
	}
	d.Title = seed.Title
	if !seed.Start.IsZero() {
		d.Start = seed.Start
	}
	if !seed.End.IsZero() && seed.End.After(d.Start) {
		d.End = seed.End
	} else {
		d.End = d.Start.Add(time.Hour)
	}
	if role == RoleAdmin && seed.Status != "" {
		d.Status = seed.Status
	}
	d.AgentIDs = cloneIDs(seed.AgentIDs)
	d.PhotographerIDs = cloneIDs(seed.PhotographerIDs)
	d.ServiceIDs = cloneIDs(seed.ServiceIDs)
	d.Address = seed.Address
	d.Components = seed.Components.clone()
	d.Notes = seed.Notes

	return d
}

// Apply shallow-merges a patch into the draft. Last write wins; no validation
// happens here. Derived fields are recomputed by the session, not by Apply.
func (d *Draft) Apply(p Patch) {
	if p.Title != nil {
		d.Title = *p.Title
	}
	if p.Start != nil {
		// Shifting the start keeps the current duration unless the patch also
		// carries an explicit end.
		duration := d.End.Sub(d.Start)
		d.Start = *p.Start
		if p.End == nil {
			d.End = d.Start.Add(duration)
		}
	}
	if p.End != nil {
		d.End = *p.End
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
	if p.AgentIDs != nil {
		d.AgentIDs = dedupeIDs(p.AgentIDs)
	}
	if p.PhotographerIDs != nil {
		d.PhotographerIDs = dedupeIDs(p.PhotographerIDs)
	}
	if p.ServiceIDs != nil {
		d.ServiceIDs = dedupeIDs(p.ServiceIDs)
	}
	if p.Address != nil {
		d.Address = *p.Address
	}
	if p.Components != nil {
		d.Components = p.Components.clone()
	}
	if p.Notes != nil {
		d.Notes = *p.Notes
	}
}

// Snapshot returns a deep copy safe to hand to a save callback.
func (d *Draft) Snapshot() Draft {
	out := *d
	out.AgentIDs = cloneIDs(d.AgentIDs)
	out.PhotographerIDs = cloneIDs(d.PhotographerIDs)
	out.ServiceIDs = cloneIDs(d.ServiceIDs)
	out.Components = d.Components.clone()
	if d.DistanceKm != nil {
		v := *d.DistanceKm
		out.DistanceKm = &v
	}
	if d.TravelMinutes != nil {
		v := *d.TravelMinutes
		out.TravelMinutes = &v
	}
	return out
}

func (c *AddressComponents) clone() *AddressComponents {
	if c == nil {
		return nil
	}
	out := *c
	if c.Lat != nil {
		v := *c.Lat
		out.Lat = &v
	}
	if c.Lng != nil {
		v := *c.Lng
		out.Lng = &v
	}
	return &out
}

func cloneIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return nil
	}
	out := make([]uuid.UUID, len(ids))
	copy(out, ids)
	return out
}

// dedupeIDs keeps first occurrence order.
func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
