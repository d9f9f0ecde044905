package catalog_test

import (
	"testing"

	"photodesk/internal/catalog"
	"photodesk/internal/draft"

	"github.com/google/uuid"
)

func newStore(t *testing.T) *catalog.Store {
	t.Helper()
	return catalog.NewStore(catalog.Settings{
		TravelSpeedKmh:     50,
		DefaultDurationMin: 60,
	})
}

func TestServiceDurationLookup(t *testing.T) {
	store := newStore(t)
	id := uuid.New()
	store.ReplaceServices([]catalog.ServiceInfo{
		{ID: id, Name: "Drone video", DurationMinutes: 45, PriceCents: 25000},
	})

	minutes, ok := store.ServiceDuration(id)
	if !ok || minutes != 45 {
		t.Fatalf("ServiceDuration = %d, %v; want 45, true", minutes, ok)
	}

	if _, ok := store.ServiceDuration(uuid.New()); ok {
		t.Fatal("unknown service reported as known")
	}
}

func TestBusinessCoordinates(t *testing.T) {
	store := newStore(t)

	if _, ok := store.BusinessCoordinates(); ok {
		t.Fatal("coordinates reported before settings carry them")
	}

	store.UpdateSettings(catalog.Settings{
		BusinessCoordinates: &draft.Coordinates{Lat: -33.8688, Lng: 151.2093},
		TravelSpeedKmh:      60,
		DefaultDurationMin:  90,
	})

	coords, ok := store.BusinessCoordinates()
	if !ok || coords.Lat != -33.8688 {
		t.Fatalf("BusinessCoordinates = %v, %v", coords, ok)
	}
	if store.TravelSpeedKmh() != 60 {
		t.Fatalf("TravelSpeedKmh = %v, want 60", store.TravelSpeedKmh())
	}
	if store.DefaultDurationMinutes() != 90 {
		t.Fatalf("DefaultDurationMinutes = %v, want 90", store.DefaultDurationMinutes())
	}
}

func TestServiceOptionsPreserveOrder(t *testing.T) {
	store := newStore(t)
	first, second, third := uuid.New(), uuid.New(), uuid.New()

	store.ReplaceServices([]catalog.ServiceInfo{
		{ID: first, Name: "Daytime photos"},
		{ID: second, Name: "Twilight photos"},
	})
	store.UpsertService(catalog.ServiceInfo{ID: third, Name: "Floor plan"})

	options := store.ServiceOptions()
	if len(options) != 3 {
		t.Fatalf("options = %d, want 3", len(options))
	}
	if options[0].ID != first || options[1].ID != second || options[2].ID != third {
		t.Fatal("option order not preserved")
	}

	store.RemoveService(second)
	options = store.ServiceOptions()
	if len(options) != 2 || options[1].ID != third {
		t.Fatalf("options after remove = %v", options)
	}
}

func TestSubscribeNotify(t *testing.T) {
	store := newStore(t)

	var events []catalog.Event
	unsubscribe := store.Subscribe(func(e catalog.Event) {
		events = append(events, e)
	})

	store.ReplaceAgents([]catalog.AgentInfo{{ID: uuid.New(), Name: "Jane", Company: "Ray White"}})
	store.UpdateSettings(catalog.Settings{TravelSpeedKmh: 50, DefaultDurationMin: 60})

	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Kind != catalog.EventAgentsChanged || events[1].Kind != catalog.EventSettingsChanged {
		t.Fatalf("event kinds = %v, %v", events[0].Kind, events[1].Kind)
	}

	unsubscribe()
	store.ReplacePhotographers(nil)
	if len(events) != 2 {
		t.Fatal("listener still fired after unsubscribe")
	}
}

func TestAgentOptionsCarryCompany(t *testing.T) {
	store := newStore(t)
	store.ReplaceAgents([]catalog.AgentInfo{{ID: uuid.New(), Name: "Jane", Company: "Ray White"}})

	options := store.AgentOptions()
	if len(options) != 1 || options[0].Company != "Ray White" {
		t.Fatalf("agent options = %v", options)
	}
}
