// Package bus is the typed in-process notification bus. It replaces the
// string-keyed ad hoc events of the old portal with concrete payload types
// handed to explicitly registered subscribers.
package bus

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Event is implemented by every payload published on the bus.
type Event interface {
	Kind() string
}

type BookingCreated struct {
	BookingID uuid.UUID
	Title     string
	Start     time.Time
	ByUserID  uuid.UUID
}

func (BookingCreated) Kind() string { return "booking_created" }

type BookingUpdated struct {
	BookingID uuid.UUID
	Title     string
	Status    string
}

func (BookingUpdated) Kind() string { return "booking_updated" }

type BookingCancelled struct {
	BookingID uuid.UUID
	Title     string
}

func (BookingCancelled) Kind() string { return "booking_cancelled" }

type BookingReminder struct {
	BookingID uuid.UUID
	Title     string
	Start     time.Time
}

func (BookingReminder) Kind() string { return "booking_reminder" }

type GalleryShared struct {
	GalleryID uuid.UUID
	Title     string
}

func (GalleryShared) Kind() string { return "gallery_shared" }

// Bus fans events out to subscribers from a single dispatch goroutine, so
// subscribers never block publishers.
type Bus struct {
	mu      sync.Mutex
	subs    map[int]func(Event)
	nextSub int

	events chan Event
	done   chan struct{}
	log    *zap.Logger
}

func New(log *zap.Logger) *Bus {
	return &Bus{
		subs:   make(map[int]func(Event)),
		events: make(chan Event, 256),
		done:   make(chan struct{}),
		log:    log.With(zap.String("component", "bus")),
	}
}

// Run dispatches published events. Call in a goroutine; Stop ends it.
func (b *Bus) Run() {
	for {
		select {
		case event := <-b.events:
			b.mu.Lock()
			listeners := make([]func(Event), 0, len(b.subs))
			for _, fn := range b.subs {
				listeners = append(listeners, fn)
			}
			b.mu.Unlock()

			for _, fn := range listeners {
				fn(event)
			}

		case <-b.done:
			return
		}
	}
}

func (b *Bus) Stop() {
	close(b.done)
}

// Subscribe registers a listener. The returned func unsubscribes.
func (b *Bus) Subscribe(fn func(Event)) func() {
	b.mu.Lock()
	id := b.nextSub
	b.nextSub++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Publish enqueues an event. Drops the event if the buffer is full rather than
// blocking a request handler.
func (b *Bus) Publish(event Event) {
	select {
	case b.events <- event:
	default:
		b.log.Warn("Event buffer full, dropping event", zap.String("kind", event.Kind()))
	}
}
