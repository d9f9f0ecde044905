package bus_test

import (
	"testing"
	"time"

	"photodesk/internal/bus"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestPublishReachesSubscriber(t *testing.T) {
	b := bus.New(zap.NewNop())
	go b.Run()
	defer b.Stop()

	received := make(chan bus.Event, 1)
	unsubscribe := b.Subscribe(func(e bus.Event) {
		received <- e
	})
	defer unsubscribe()

	want := bus.BookingCreated{
		BookingID: uuid.New(),
		Title:     "Open home shoot",
		Start:     time.Now(),
	}
	b.Publish(want)

	select {
	case got := <-received:
		created, ok := got.(bus.BookingCreated)
		if !ok {
			t.Fatalf("event type = %T, want BookingCreated", got)
		}
		if created.BookingID != want.BookingID {
			t.Fatalf("booking id = %s, want %s", created.BookingID, want.BookingID)
		}
		if got.Kind() != "booking_created" {
			t.Fatalf("kind = %s, want booking_created", got.Kind())
		}
	case <-time.After(2 * time.Second):
		t.Fatal("event never dispatched")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := bus.New(zap.NewNop())
	go b.Run()
	defer b.Stop()

	received := make(chan bus.Event, 2)
	unsubscribe := b.Subscribe(func(e bus.Event) {
		received <- e
	})

	b.Publish(bus.BookingCancelled{BookingID: uuid.New(), Title: "first"})

	select {
	case <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("first event never dispatched")
	}

	unsubscribe()
	b.Publish(bus.BookingCancelled{BookingID: uuid.New(), Title: "second"})

	select {
	case got := <-received:
		t.Fatalf("received %v after unsubscribe", got)
	case <-time.After(100 * time.Millisecond):
	}
}
