package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"photodesk/internal/bus"
	"photodesk/internal/catalog"
	"photodesk/internal/data/entity"
	"photodesk/internal/data/repository"
	"photodesk/internal/draft"
	"photodesk/internal/dto/request"
	"photodesk/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) FindInRange(_ context.Context, from, to time.Time) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.StartTime.Before(to) && b.EndTime.After(from) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindConfirmedInRange(_ context.Context, from, to time.Time) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.Status != entity.BookingStatusConfirmed && b.Status != entity.BookingStatusPenciled {
			continue
		}
		if b.StartTime.Before(to) && b.EndTime.After(from) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindByCreator(_ context.Context, userID uuid.UUID, _, _ int) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.CreatedBy == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountByCreator(_ context.Context, userID uuid.UUID) (int64, error) {
	bookings, _ := f.FindByCreator(context.Background(), userID, 0, 0)
	return int64(len(bookings)), nil
}

func (f *fakeBookingRepo) Update(_ context.Context, booking *entity.Booking) error {
	if _, ok := f.bookings[booking.ID]; !ok {
		return fmt.Errorf("booking %s not found", booking.ID)
	}
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return fmt.Errorf("booking %s not found", id)
	}
	b.Status = status
	return nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.bookings[id]; !ok {
		return fmt.Errorf("booking %s not found", id)
	}
	delete(f.bookings, id)
	return nil
}

type fakeLinkRepo struct {
	agents        map[uuid.UUID][]uuid.UUID
	photographers map[uuid.UUID][]uuid.UUID
	services      map[uuid.UUID][]uuid.UUID
}

func (f *fakeLinkRepo) ReplaceAgents(_ context.Context, bookingID uuid.UUID, ids []uuid.UUID) error {
	f.agents[bookingID] = ids
	return nil
}

func (f *fakeLinkRepo) ReplacePhotographers(_ context.Context, bookingID uuid.UUID, ids []uuid.UUID) error {
	f.photographers[bookingID] = ids
	return nil
}

func (f *fakeLinkRepo) ReplaceServices(_ context.Context, bookingID uuid.UUID, ids []uuid.UUID) error {
	f.services[bookingID] = ids
	return nil
}

func (f *fakeLinkRepo) FindAgentIDs(_ context.Context, bookingID uuid.UUID) ([]uuid.UUID, error) {
	return f.agents[bookingID], nil
}

func (f *fakeLinkRepo) FindPhotographerIDs(_ context.Context, bookingID uuid.UUID) ([]uuid.UUID, error) {
	return f.photographers[bookingID], nil
}

func (f *fakeLinkRepo) FindServiceIDs(_ context.Context, bookingID uuid.UUID) ([]uuid.UUID, error) {
	return f.services[bookingID], nil
}

func setupBookingService(t *testing.T) (usecase.BookingService, *fakeBookingRepo, *catalog.Store, uuid.UUID, uuid.UUID) {
	t.Helper()

	repo := &repository.Repository{
		Booking: &fakeBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)},
		BookingLink: &fakeLinkRepo{
			agents:        make(map[uuid.UUID][]uuid.UUID),
			photographers: make(map[uuid.UUID][]uuid.UUID),
			services:      make(map[uuid.UUID][]uuid.UUID),
		},
	}

	store := catalog.NewStore(catalog.Settings{
		BusinessCoordinates: &draft.Coordinates{Lat: -33.8688, Lng: 151.2093},
		TravelSpeedKmh:      50,
		DefaultDurationMin:  60,
	})

	svcA, svcB := uuid.New(), uuid.New()
	store.ReplaceServices([]catalog.ServiceInfo{
		{ID: svcA, Name: "Daytime photos", DurationMinutes: 60, PriceCents: 20000},
		{ID: svcB, Name: "Drone video", DurationMinutes: 45, PriceCents: 25000},
	})

	eventBus := bus.New(zap.NewNop())
	service := usecase.NewBookingService(repo, store, eventBus, zap.NewNop())

	return service, repo.Booking.(*fakeBookingRepo), store, svcA, svcB
}

func TestCreateBookingDerivesEndAndTravel(t *testing.T) {
	service, bookings, _, svcA, svcB := setupBookingService(t)

	start := time.Now().Add(24 * time.Hour).Truncate(time.Minute).Format(time.RFC3339)
	lat, lng := -27.4698, 153.0251
	address := "Brisbane QLD"

	resp, err := service.Create(context.Background(), uuid.New(), "admin", &request.CreateBookingRequest{
		Title:      "Open home shoot",
		Start:      &start,
		ServiceIDs: []string{svcA.String(), svcB.String()},
		Address:    &address,
		AddressLat: &lat,
		AddressLng: &lng,
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	if got := resp.End.Sub(resp.Start); got != 105*time.Minute {
		t.Fatalf("derived duration = %v, want 105m", got)
	}
	if resp.Status != entity.BookingStatusConfirmed {
		t.Fatalf("admin booking status = %s, want CONFIRMED", resp.Status)
	}
	if resp.DistanceKm == nil || *resp.DistanceKm < 727 || *resp.DistanceKm > 737 {
		t.Fatalf("distance = %v, want ~732", resp.DistanceKm)
	}
	if resp.TravelMinutes == nil {
		t.Fatal("travel minutes not derived")
	}
	if len(resp.ServiceIDs) != 2 {
		t.Fatalf("persisted service ids = %d, want 2", len(resp.ServiceIDs))
	}
	if len(bookings.bookings) != 1 {
		t.Fatalf("persisted bookings = %d, want 1", len(bookings.bookings))
	}
}

func TestCreateBookingClientAlwaysTentative(t *testing.T) {
	service, _, _, _, _ := setupBookingService(t)

	status := "CONFIRMED"
	resp, err := service.Create(context.Background(), uuid.New(), "client", &request.CreateBookingRequest{
		Title:  "Client request",
		Status: &status,
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	// A client can ask for CONFIRMED; the booking still lands tentative and
	// only an admin edit can promote it.
	if resp.Status != entity.BookingStatusTentative {
		t.Fatalf("client booking status = %s, want TENTATIVE", resp.Status)
	}
}

func TestCreateBookingEmptySelectionFallsBack(t *testing.T) {
	service, _, _, _, _ := setupBookingService(t)

	resp, err := service.Create(context.Background(), uuid.New(), "admin", &request.CreateBookingRequest{
		Title: "Quick shoot",
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	if got := resp.End.Sub(resp.Start); got != 60*time.Minute {
		t.Fatalf("fallback duration = %v, want 60m", got)
	}
	if resp.DistanceKm != nil || resp.TravelMinutes != nil {
		t.Fatal("derived travel fields set without coordinates")
	}
}

func TestUpdateBookingRecomputesFromSeed(t *testing.T) {
	service, _, _, svcA, svcB := setupBookingService(t)

	resp, err := service.Create(context.Background(), uuid.New(), "admin", &request.CreateBookingRequest{
		Title:      "Original",
		ServiceIDs: []string{svcA.String()},
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if got := resp.End.Sub(resp.Start); got != 60*time.Minute {
		t.Fatalf("initial duration = %v, want 60m", got)
	}

	services := []string{svcA.String(), svcB.String()}
	title := "Extended"
	updated, err := service.Update(context.Background(), resp.ID, "admin", &request.UpdateBookingRequest{
		Title:      &title,
		ServiceIDs: &services,
	})
	if err != nil {
		t.Fatalf("update booking: %v", err)
	}

	if updated.Title != "Extended" {
		t.Fatalf("title = %q", updated.Title)
	}
	if got := updated.End.Sub(updated.Start); got != 105*time.Minute {
		t.Fatalf("recomputed duration = %v, want 105m", got)
	}
}

func TestGetAvailabilitySkipsBusySlots(t *testing.T) {
	service, bookings, _, _, _ := setupBookingService(t)

	day := time.Now().AddDate(0, 0, 7)
	date := day.Format("2006-01-02")
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local)

	busy := &entity.Booking{
		Base:      entity.Base{ID: uuid.New()},
		Title:     "Existing shoot",
		StartTime: dayStart.Add(9 * time.Hour),
		EndTime:   dayStart.Add(10 * time.Hour),
		Status:    entity.BookingStatusConfirmed,
	}
	bookings.bookings[busy.ID] = busy

	resp, err := service.GetAvailability(context.Background(), date, nil)
	if err != nil {
		t.Fatalf("get availability: %v", err)
	}
	if resp.DurationMinutes != 60 {
		t.Fatalf("slot duration = %d, want 60", resp.DurationMinutes)
	}

	for _, slot := range resp.Slots {
		if slot.Start.Before(busy.EndTime) && slot.End.After(busy.StartTime) {
			t.Fatalf("offered slot %v-%v overlaps busy booking", slot.Start, slot.End)
		}
	}

	// 08:00 is clear and must be offered.
	first := dayStart.Add(8 * time.Hour)
	found := false
	for _, slot := range resp.Slots {
		if slot.Start.Equal(first) {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("free 08:00 slot not offered")
	}
}

func TestDeleteBookingRemovesIt(t *testing.T) {
	service, _, _, svcA, _ := setupBookingService(t)

	resp, err := service.Create(context.Background(), uuid.New(), "admin", &request.CreateBookingRequest{
		Title:      "Doomed",
		ServiceIDs: []string{svcA.String()},
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	if err := service.Delete(context.Background(), resp.ID); err != nil {
		t.Fatalf("delete booking: %v", err)
	}
	if _, err := service.GetByID(context.Background(), resp.ID); err == nil {
		t.Fatal("deleted booking still loads")
	}
}
