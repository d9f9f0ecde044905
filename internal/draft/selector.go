package draft

import (
	"strings"

	"github.com/google/uuid"
)

// Option is one selectable catalog entry. Company is only set for agents and
// participates in search.
type Option struct {
	ID      uuid.UUID
	Label   string
	Company string
}

// Selector is the shared contract of the multi-select pickers (agents,
// photographers, services): an ordered selection over a pre-loaded catalog,
// with client-side substring filtering. Toggling fires OnChange with the new
// sequence; the catalog itself is never fetched from here.
type Selector struct {
	options  []Option
	selected []uuid.UUID
	OnChange func(ids []uuid.UUID)
}

func NewSelector(options []Option) *Selector {
	return &Selector{options: options}
}

// Value returns the selected ids in selection order.
func (s *Selector) Value() []uuid.UUID {
	return cloneIDs(s.selected)
}

// SetValue replaces the selection without firing OnChange.
func (s *Selector) SetValue(ids []uuid.UUID) {
	s.selected = dedupeIDs(ids)
}

// Toggle selects or deselects one option and fires OnChange.
func (s *Selector) Toggle(id uuid.UUID) {
	found := false
	next := make([]uuid.UUID, 0, len(s.selected)+1)
	for _, sel := range s.selected {
		if sel == id {
			found = true
			continue
		}
		next = append(next, sel)
	}
	if !found {
		next = append(next, id)
	}

	s.selected = next
	if s.OnChange != nil {
		s.OnChange(cloneIDs(next))
	}
}

// Filter returns the options whose label or company contains the query,
// case-insensitive. An empty query returns everything.
func (s *Selector) Filter(query string) []Option {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		out := make([]Option, len(s.options))
		copy(out, s.options)
		return out
	}

	var out []Option
	for _, opt := range s.options {
		if strings.Contains(strings.ToLower(opt.Label), query) ||
			(opt.Company != "" && strings.Contains(strings.ToLower(opt.Company), query)) {
			out = append(out, opt)
		}
	}
	return out
}
