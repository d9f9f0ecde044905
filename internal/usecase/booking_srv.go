package usecase

import (
	"context"
	"fmt"
	"time"

	"photodesk/internal/bus"
	"photodesk/internal/catalog"
	"photodesk/internal/data/entity"
	"photodesk/internal/data/repository"
	"photodesk/internal/draft"
	"photodesk/internal/dto/request"
	"photodesk/internal/dto/response"
	"photodesk/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Availability slots are offered inside business hours on a half-hour grid.
const (
	businessDayStartHour = 8
	businessDayEndHour   = 18
	slotStepMinutes      = 30
)

type BookingService interface {
	Create(ctx context.Context, userID uuid.UUID, role string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	GetCalendar(ctx context.Context, from, to time.Time) ([]response.BookingResponse, error)
	GetAvailability(ctx context.Context, date string, serviceIDs []string) (*response.AvailabilityResponse, error)
	GetMine(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	Update(ctx context.Context, bookingID, role string, req *request.UpdateBookingRequest) (*response.BookingResponse, error)
	UpdateStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
	Delete(ctx context.Context, bookingID string) error
}

type bookingService struct {
	repo     *repository.Repository
	store    *catalog.Store
	sessions *draft.Sessions
	eventBus *bus.Bus
	log      *zap.Logger
}

func NewBookingService(
	repo *repository.Repository,
	store *catalog.Store,
	eventBus *bus.Bus,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		repo:     repo,
		store:    store,
		sessions: draft.NewSessions(store),
		eventBus: eventBus,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) Create(ctx context.Context, userID uuid.UUID, role string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	patch, err := patchFromCreate(req)
	if err != nil {
		return nil, err
	}
	if draftRole(role) == draft.RoleClient {
		// Only admins pick a status; client requests stay tentative.
		patch.Status = nil
	}

	d := s.sessions.Open(draftRole(role), s.persistCreate(ctx, userID))
	defer s.sessions.Discard(d.ID)

	if _, err := s.sessions.Apply(d.ID, patch); err != nil {
		return nil, err
	}

	snapshot, err := s.sessions.Save(d.ID)
	if err != nil {
		s.log.Error("Failed to save booking", zap.Error(err))
		return nil, fmt.Errorf("failed to create booking")
	}

	s.eventBus.Publish(bus.BookingCreated{
		BookingID: snapshot.ID,
		Title:     snapshot.Title,
		Start:     snapshot.Start,
		ByUserID:  userID,
	})

	s.log.Info("Booking created",
		zap.String("booking_id", snapshot.ID.String()),
		zap.String("user_id", userID.String()))

	return s.GetByID(ctx, snapshot.ID.String())
}

func (s *bookingService) GetByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s", bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to load booking")
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	return s.toResponse(ctx, booking)
}

func (s *bookingService) GetCalendar(ctx context.Context, from, to time.Time) ([]response.BookingResponse, error) {
	if !to.After(from) {
		return nil, fmt.Errorf("invalid range: end must be after start")
	}

	bookings, err := s.repo.Booking.FindInRange(ctx, from, to)
	if err != nil {
		s.log.Error("Failed to load calendar", zap.Error(err))
		return nil, fmt.Errorf("failed to load calendar")
	}

	out := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		resp, err := s.toResponse(ctx, booking)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// GetAvailability enumerates the free slots of one day that fit the duration
// of the requested services. Confirmed and penciled bookings block a slot.
func (s *bookingService) GetAvailability(ctx context.Context, date string, serviceIDs []string) (*response.AvailabilityResponse, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %s, expected YYYY-MM-DD", date)
	}

	ids, err := parseUUIDs(serviceIDs)
	if err != nil {
		return nil, err
	}

	probe := draft.Draft{ServiceIDs: ids}
	duration := time.Duration(draft.TotalDurationMinutes(&probe, s.store)) * time.Minute

	dayStart := day.Add(businessDayStartHour * time.Hour)
	dayEnd := day.Add(businessDayEndHour * time.Hour)

	busy, err := s.repo.Booking.FindConfirmedInRange(ctx, dayStart, dayEnd)
	if err != nil {
		s.log.Error("Failed to load busy bookings", zap.Error(err), zap.String("date", date))
		return nil, fmt.Errorf("failed to check availability")
	}

	resp := &response.AvailabilityResponse{
		Date:            date,
		DurationMinutes: int(duration.Minutes()),
	}

	for start := dayStart; !start.Add(duration).After(dayEnd); start = start.Add(slotStepMinutes * time.Minute) {
		end := start.Add(duration)
		if slotFree(busy, start, end) {
			resp.Slots = append(resp.Slots, response.TimeSlot{Start: start, End: end})
		}
	}

	return resp, nil
}

func (s *bookingService) GetMine(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindByCreator(ctx, userID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to list bookings")
	}

	total, err := s.repo.Booking.CountByCreator(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to list bookings")
	}

	items := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		resp, err := s.toResponse(ctx, booking)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *bookingService) Update(ctx context.Context, bookingID, role string, req *request.UpdateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s", bookingID)
	}

	seed, err := s.seedFromBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	patch, err := patchFromUpdate(req)
	if err != nil {
		return nil, err
	}
	if draftRole(role) == draft.RoleClient {
		patch.Status = nil
	}

	d := s.sessions.OpenForEdit(draftRole(role), *seed, s.persistUpdate(ctx), nil)
	defer s.sessions.Discard(d.ID)

	if _, err := s.sessions.Apply(d.ID, patch); err != nil {
		return nil, err
	}

	snapshot, err := s.sessions.Save(d.ID)
	if err != nil {
		s.log.Error("Failed to save booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to update booking")
	}

	s.eventBus.Publish(bus.BookingUpdated{
		BookingID: snapshot.ID,
		Title:     snapshot.Title,
		Status:    string(snapshot.Status),
	})

	return s.GetByID(ctx, bookingID)
}

func (s *bookingService) UpdateStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s", bookingID)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, id, entity.BookingStatus(req.Status)); err != nil {
		return nil, err
	}

	resp, err := s.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	s.eventBus.Publish(bus.BookingUpdated{
		BookingID: id,
		Title:     resp.Title,
		Status:    req.Status,
	})

	return resp, nil
}

func (s *bookingService) Delete(ctx context.Context, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s", bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load booking")
	}
	if booking == nil {
		return fmt.Errorf("booking %s not found", bookingID)
	}

	if err := s.repo.Booking.Delete(ctx, id); err != nil {
		return err
	}

	s.eventBus.Publish(bus.BookingCancelled{
		BookingID: id,
		Title:     booking.Title,
	})

	return nil
}

// persistCreate returns the save callback for a create-mode draft: insert the
// booking row, then replace the three selection lists.
func (s *bookingService) persistCreate(ctx context.Context, userID uuid.UUID) draft.SaveFunc {
	return func(snapshot draft.Draft) error {
		now := time.Now()
		booking := bookingFromDraft(snapshot, now)
		booking.CreatedAt = now
		booking.CreatedBy = userID

		if err := s.repo.Booking.Create(ctx, booking); err != nil {
			return err
		}
		return s.persistLinks(ctx, snapshot)
	}
}

func (s *bookingService) persistUpdate(ctx context.Context) draft.SaveFunc {
	return func(snapshot draft.Draft) error {
		booking := bookingFromDraft(snapshot, time.Now())
		if err := s.repo.Booking.Update(ctx, booking); err != nil {
			return err
		}
		return s.persistLinks(ctx, snapshot)
	}
}

func (s *bookingService) persistLinks(ctx context.Context, snapshot draft.Draft) error {
	if err := s.repo.BookingLink.ReplaceAgents(ctx, snapshot.ID, snapshot.AgentIDs); err != nil {
		return err
	}
	if err := s.repo.BookingLink.ReplacePhotographers(ctx, snapshot.ID, snapshot.PhotographerIDs); err != nil {
		return err
	}
	return s.repo.BookingLink.ReplaceServices(ctx, snapshot.ID, snapshot.ServiceIDs)
}

func (s *bookingService) seedFromBooking(ctx context.Context, id uuid.UUID) (*draft.Seed, error) {
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", id.String()))
		return nil, fmt.Errorf("failed to load booking")
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", id.String())
	}

	agentIDs, err := s.repo.BookingLink.FindAgentIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	photographerIDs, err := s.repo.BookingLink.FindPhotographerIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	serviceIDs, err := s.repo.BookingLink.FindServiceIDs(ctx, id)
	if err != nil {
		return nil, err
	}

	seed := &draft.Seed{
		ID:              booking.ID,
		Title:           booking.Title,
		Start:           booking.StartTime,
		End:             booking.EndTime,
		Status:          draft.Status(booking.Status),
		AgentIDs:        agentIDs,
		PhotographerIDs: photographerIDs,
		ServiceIDs:      serviceIDs,
	}
	if booking.Address != nil {
		seed.Address = *booking.Address
		seed.Components = &draft.AddressComponents{
			Formatted: *booking.Address,
			Lat:       booking.AddressLat,
			Lng:       booking.AddressLng,
		}
	}
	if booking.Notes != nil {
		seed.Notes = *booking.Notes
	}

	return seed, nil
}

func (s *bookingService) toResponse(ctx context.Context, booking *entity.Booking) (*response.BookingResponse, error) {
	agentIDs, err := s.repo.BookingLink.FindAgentIDs(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	photographerIDs, err := s.repo.BookingLink.FindPhotographerIDs(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	serviceIDs, err := s.repo.BookingLink.FindServiceIDs(ctx, booking.ID)
	if err != nil {
		return nil, err
	}

	resp := response.BookingToResponse(booking, formatUUIDs(agentIDs), formatUUIDs(photographerIDs), formatUUIDs(serviceIDs))
	return &resp, nil
}

func bookingFromDraft(snapshot draft.Draft, updatedAt time.Time) *entity.Booking {
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        snapshot.ID,
			UpdatedAt: updatedAt,
		},
		Title:         snapshot.Title,
		StartTime:     snapshot.Start,
		EndTime:       snapshot.End,
		Status:        entity.BookingStatus(snapshot.Status),
		DistanceKm:    snapshot.DistanceKm,
		TravelMinutes: snapshot.TravelMinutes,
	}

	if snapshot.Address != "" {
		addr := snapshot.Address
		booking.Address = &addr
	}
	if snapshot.Components != nil {
		booking.AddressLat = snapshot.Components.Lat
		booking.AddressLng = snapshot.Components.Lng
	}
	if snapshot.Notes != "" {
		notes := snapshot.Notes
		booking.Notes = &notes
	}

	return booking
}

func patchFromCreate(req *request.CreateBookingRequest) (draft.Patch, error) {
	patch := draft.Patch{
		Title:   &req.Title,
		Address: req.Address,
		Notes:   req.Notes,
	}

	if req.Start != nil {
		start, err := time.Parse(time.RFC3339, *req.Start)
		if err != nil {
			return draft.Patch{}, fmt.Errorf("invalid start time %s, expected RFC3339", *req.Start)
		}
		patch.Start = &start
	}
	if req.Status != nil {
		status := draft.Status(*req.Status)
		patch.Status = &status
	}

	var err error
	if patch.AgentIDs, err = parseUUIDs(req.AgentIDs); err != nil {
		return draft.Patch{}, err
	}
	if patch.PhotographerIDs, err = parseUUIDs(req.PhotographerIDs); err != nil {
		return draft.Patch{}, err
	}
	if patch.ServiceIDs, err = parseUUIDs(req.ServiceIDs); err != nil {
		return draft.Patch{}, err
	}

	patch.Components = componentsFrom(req.Address, req.AddressLat, req.AddressLng)

	return patch, nil
}

func patchFromUpdate(req *request.UpdateBookingRequest) (draft.Patch, error) {
	patch := draft.Patch{
		Title:   req.Title,
		Address: req.Address,
		Notes:   req.Notes,
	}

	if req.Start != nil {
		start, err := time.Parse(time.RFC3339, *req.Start)
		if err != nil {
			return draft.Patch{}, fmt.Errorf("invalid start time %s, expected RFC3339", *req.Start)
		}
		patch.Start = &start
	}
	if req.Status != nil {
		status := draft.Status(*req.Status)
		patch.Status = &status
	}

	var err error
	if req.AgentIDs != nil {
		if patch.AgentIDs, err = parseUUIDs(*req.AgentIDs); err != nil {
			return draft.Patch{}, err
		}
	}
	if req.PhotographerIDs != nil {
		if patch.PhotographerIDs, err = parseUUIDs(*req.PhotographerIDs); err != nil {
			return draft.Patch{}, err
		}
	}
	if req.ServiceIDs != nil {
		if patch.ServiceIDs, err = parseUUIDs(*req.ServiceIDs); err != nil {
			return draft.Patch{}, err
		}
	}

	if req.Address != nil || req.AddressLat != nil || req.AddressLng != nil {
		patch.Components = componentsFrom(req.Address, req.AddressLat, req.AddressLng)
	}

	return patch, nil
}

func componentsFrom(address *string, lat, lng *float64) *draft.AddressComponents {
	if address == nil && lat == nil && lng == nil {
		return nil
	}

	components := &draft.AddressComponents{Lat: lat, Lng: lng}
	if address != nil {
		components.Formatted = *address
	}
	return components
}

func draftRole(role string) draft.Role {
	if role == string(entity.RoleAdmin) {
		return draft.RoleAdmin
	}
	return draft.RoleClient
}

func slotFree(busy []*entity.Booking, start, end time.Time) bool {
	for _, booking := range busy {
		if booking.StartTime.Before(end) && booking.EndTime.After(start) {
			return false
		}
	}
	return true
}

func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	out := make([]uuid.UUID, 0, len(raw))
	for _, value := range raw {
		id, err := uuid.Parse(value)
		if err != nil {
			return nil, fmt.Errorf("invalid ID format %s: %w", value, err)
		}
		out = append(out, id)
	}
	return out, nil
}

func formatUUIDs(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
