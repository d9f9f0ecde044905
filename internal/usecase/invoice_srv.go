package usecase

import (
	"context"
	"fmt"
	"time"

	"photodesk/internal/catalog"
	"photodesk/internal/data/entity"
	"photodesk/internal/data/repository"
	"photodesk/internal/dto/request"
	"photodesk/internal/dto/response"
	"photodesk/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InvoiceService interface {
	Create(ctx context.Context, req *request.CreateInvoiceRequest) (*response.InvoiceResponse, error)
	GetByID(ctx context.Context, invoiceID string) (*response.InvoiceResponse, error)
	GetAll(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.InvoiceResponse], error)
	UpdateStatus(ctx context.Context, invoiceID string, req *request.UpdateInvoiceStatusRequest) (*response.InvoiceResponse, error)
}

type invoiceService struct {
	repo  *repository.Repository
	store *catalog.Store
	log   *zap.Logger
}

func NewInvoiceService(repo *repository.Repository, store *catalog.Store, log *zap.Logger) InvoiceService {
	return &invoiceService{
		repo:  repo,
		store: store,
		log:   log.With(zap.String("service", "invoice")),
	}
}

// Create builds an invoice from a booking: one line per selected service at
// the current catalog price.
func (s *invoiceService) Create(ctx context.Context, req *request.CreateInvoiceRequest) (*response.InvoiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create invoice validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s", req.BookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking")
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", req.BookingID)
	}

	serviceIDs, err := s.repo.BookingLink.FindServiceIDs(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking services")
	}
	if len(serviceIDs) == 0 {
		return nil, fmt.Errorf("invalid booking: no services selected")
	}

	now := time.Now()
	invoice := &entity.Invoice{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Number:    utils.GenerateInvoiceNumber(),
		BookingID: bookingID,
		Status:    entity.InvoiceStatusDraft,
	}

	if req.AgentID != nil {
		agentID, err := uuid.Parse(*req.AgentID)
		if err != nil {
			return nil, fmt.Errorf("invalid agent ID format %s", *req.AgentID)
		}
		invoice.AgentID = &agentID
	}

	var items []*entity.InvoiceItem
	for _, serviceID := range serviceIDs {
		info, ok := s.store.Service(serviceID)
		if !ok {
			// Service removed from the catalog since the booking was made.
			service, err := s.repo.Service.FindByID(ctx, serviceID)
			if err != nil || service == nil {
				s.log.Warn("Skipping unknown service on invoice",
					zap.String("service_id", serviceID.String()),
					zap.String("booking_id", req.BookingID))
				continue
			}
			info = catalog.ServiceInfo{
				ID:         service.ID,
				Name:       service.Name,
				PriceCents: service.PriceCents,
			}
		}

		id := info.ID
		items = append(items, &entity.InvoiceItem{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			InvoiceID:   invoice.ID,
			ServiceID:   &id,
			Description: info.Name,
			AmountCents: info.PriceCents,
		})
		invoice.TotalCents += info.PriceCents
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("invalid booking: no billable services")
	}

	if err := s.repo.Invoice.CreateWithItems(ctx, invoice, items); err != nil {
		s.log.Error("Failed to create invoice", zap.Error(err), zap.String("booking_id", req.BookingID))
		return nil, fmt.Errorf("failed to create invoice")
	}

	s.log.Info("Invoice created",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("number", invoice.Number),
		zap.Int64("total_cents", invoice.TotalCents))

	resp := response.InvoiceToResponse(invoice, items)
	return &resp, nil
}

func (s *invoiceService) GetByID(ctx context.Context, invoiceID string) (*response.InvoiceResponse, error) {
	id, err := uuid.Parse(invoiceID)
	if err != nil {
		return nil, fmt.Errorf("invalid invoice ID format %s", invoiceID)
	}

	invoice, err := s.repo.Invoice.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find invoice", zap.Error(err), zap.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to load invoice")
	}
	if invoice == nil {
		return nil, fmt.Errorf("invoice %s not found", invoiceID)
	}

	items, err := s.repo.Invoice.FindItems(ctx, id)
	if err != nil {
		s.log.Error("Failed to load invoice items", zap.Error(err), zap.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to load invoice")
	}

	resp := response.InvoiceToResponse(invoice, items)
	return &resp, nil
}

func (s *invoiceService) GetAll(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.InvoiceResponse], error) {
	invoices, err := s.repo.Invoice.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list invoices", zap.Error(err))
		return nil, fmt.Errorf("failed to list invoices")
	}

	total, err := s.repo.Invoice.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count invoices", zap.Error(err))
		return nil, fmt.Errorf("failed to list invoices")
	}

	items := make([]response.InvoiceResponse, 0, len(invoices))
	for _, invoice := range invoices {
		items = append(items, response.InvoiceToResponse(invoice, nil))
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *invoiceService) UpdateStatus(ctx context.Context, invoiceID string, req *request.UpdateInvoiceStatusRequest) (*response.InvoiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(invoiceID)
	if err != nil {
		return nil, fmt.Errorf("invalid invoice ID format %s", invoiceID)
	}

	if err := s.repo.Invoice.UpdateStatus(ctx, id, entity.InvoiceStatus(req.Status)); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, invoiceID)
}
