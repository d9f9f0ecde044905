// Package catalog keeps the pre-loaded pickers' data (services, agents,
// photographers) and the business settings in memory behind an explicit,
// injectable store with a typed subscribe/notify contract. Reads are
// synchronous; writers go through the repositories first and then update the
// store, which notifies subscribers.
package catalog

import (
	"sync"

	"photodesk/internal/draft"

	"github.com/google/uuid"
)

type ServiceInfo struct {
	ID              uuid.UUID
	Name            string
	DurationMinutes int
	PriceCents      int64
}

type AgentInfo struct {
	ID      uuid.UUID
	Name    string
	Company string
}

type PhotographerInfo struct {
	ID   uuid.UUID
	Name string
}

type Settings struct {
	BusinessCoordinates *draft.Coordinates
	TravelSpeedKmh      float64
	DefaultDurationMin  int
}

type EventKind string

const (
	EventServicesChanged      EventKind = "services_changed"
	EventAgentsChanged        EventKind = "agents_changed"
	EventPhotographersChanged EventKind = "photographers_changed"
	EventSettingsChanged      EventKind = "settings_changed"
)

type Event struct {
	Kind EventKind
}

// Store implements draft.Env.
type Store struct {
	mu            sync.RWMutex
	services      map[uuid.UUID]ServiceInfo
	serviceOrder  []uuid.UUID
	agents        []AgentInfo
	photographers []PhotographerInfo
	settings      Settings

	subMu   sync.Mutex
	subs    map[int]func(Event)
	nextSub int
}

func NewStore(settings Settings) *Store {
	return &Store{
		services: make(map[uuid.UUID]ServiceInfo),
		settings: settings,
		subs:     make(map[int]func(Event)),
	}
}

// Subscribe registers a typed listener. The returned func unsubscribes.
func (s *Store) Subscribe(fn func(Event)) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notify(kind EventKind) {
	s.subMu.Lock()
	listeners := make([]func(Event), 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.subMu.Unlock()

	for _, fn := range listeners {
		fn(Event{Kind: kind})
	}
}

// ReplaceServices swaps the whole service catalog, preserving the given order.
func (s *Store) ReplaceServices(services []ServiceInfo) {
	s.mu.Lock()
	s.services = make(map[uuid.UUID]ServiceInfo, len(services))
	s.serviceOrder = s.serviceOrder[:0]
	for _, svc := range services {
		s.services[svc.ID] = svc
		s.serviceOrder = append(s.serviceOrder, svc.ID)
	}
	s.mu.Unlock()

	s.notify(EventServicesChanged)
}

func (s *Store) UpsertService(svc ServiceInfo) {
	s.mu.Lock()
	if _, ok := s.services[svc.ID]; !ok {
		s.serviceOrder = append(s.serviceOrder, svc.ID)
	}
	s.services[svc.ID] = svc
	s.mu.Unlock()

	s.notify(EventServicesChanged)
}

func (s *Store) RemoveService(id uuid.UUID) {
	s.mu.Lock()
	delete(s.services, id)
	for i, existing := range s.serviceOrder {
		if existing == id {
			s.serviceOrder = append(s.serviceOrder[:i], s.serviceOrder[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.notify(EventServicesChanged)
}

func (s *Store) ReplaceAgents(agents []AgentInfo) {
	s.mu.Lock()
	s.agents = append(s.agents[:0:0], agents...)
	s.mu.Unlock()

	s.notify(EventAgentsChanged)
}

func (s *Store) ReplacePhotographers(photographers []PhotographerInfo) {
	s.mu.Lock()
	s.photographers = append(s.photographers[:0:0], photographers...)
	s.mu.Unlock()

	s.notify(EventPhotographersChanged)
}

func (s *Store) UpdateSettings(settings Settings) {
	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()

	s.notify(EventSettingsChanged)
}

// ---- draft.Env ----

func (s *Store) ServiceDuration(id uuid.UUID) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	svc, ok := s.services[id]
	if !ok {
		return 0, false
	}
	return svc.DurationMinutes, true
}

func (s *Store) BusinessCoordinates() (draft.Coordinates, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.settings.BusinessCoordinates == nil {
		return draft.Coordinates{}, false
	}
	return *s.settings.BusinessCoordinates, true
}

func (s *Store) DefaultDurationMinutes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.DefaultDurationMin
}

func (s *Store) TravelSpeedKmh() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.TravelSpeedKmh
}

// ---- picker options ----

func (s *Store) Service(id uuid.UUID) (ServiceInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	svc, ok := s.services[id]
	return svc, ok
}

func (s *Store) ServiceOptions() []draft.Option {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]draft.Option, 0, len(s.serviceOrder))
	for _, id := range s.serviceOrder {
		svc := s.services[id]
		out = append(out, draft.Option{ID: svc.ID, Label: svc.Name})
	}
	return out
}

func (s *Store) AgentOptions() []draft.Option {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]draft.Option, 0, len(s.agents))
	for _, a := range s.agents {
		out = append(out, draft.Option{ID: a.ID, Label: a.Name, Company: a.Company})
	}
	return out
}

func (s *Store) PhotographerOptions() []draft.Option {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]draft.Option, 0, len(s.photographers))
	for _, p := range s.photographers {
		out = append(out, draft.Option{ID: p.ID, Label: p.Name})
	}
	return out
}
