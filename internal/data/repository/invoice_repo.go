package repository

import (
	"context"
	"fmt"

	"photodesk/internal/data/entity"
	"photodesk/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type InvoiceRepository interface {
	CreateWithItems(ctx context.Context, invoice *entity.Invoice, items []*entity.InvoiceItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Invoice, error)
	Count(ctx context.Context) (int64, error)
	FindItems(ctx context.Context, invoiceID uuid.UUID) ([]*entity.InvoiceItem, error)
	UpdateStatus(ctx context.Context, invoiceID uuid.UUID, status entity.InvoiceStatus) error
}

type invoiceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewInvoiceRepository(db database.PgxIface, log *zap.Logger) InvoiceRepository {
	return &invoiceRepository{
		db:  db,
		log: log.With(zap.String("repository", "invoice")),
	}
}

// CreateWithItems writes the invoice and its line items in one transaction.
func (r *invoiceRepository) CreateWithItems(ctx context.Context, invoice *entity.Invoice, items []*entity.InvoiceItem) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create invoice: %w", err)
	}
	defer tx.Rollback(ctx)

	invoiceQuery := `
		INSERT INTO invoices (id, number, booking_id, agent_id, total_cents, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = tx.Exec(ctx, invoiceQuery,
		invoice.ID,
		invoice.Number,
		invoice.BookingID,
		invoice.AgentID,
		invoice.TotalCents,
		invoice.Status,
		invoice.CreatedAt,
		invoice.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create invoice",
			zap.Error(err),
			zap.String("number", invoice.Number),
		)
		return fmt.Errorf("create invoice %s: %w", invoice.Number, err)
	}

	itemQuery := `
		INSERT INTO invoice_items (id, invoice_id, service_id, description, amount_cents, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, item := range items {
		_, err = tx.Exec(ctx, itemQuery,
			item.ID,
			item.InvoiceID,
			item.ServiceID,
			item.Description,
			item.AmountCents,
			item.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to create invoice item",
				zap.Error(err),
				zap.String("invoice_id", invoice.ID.String()),
			)
			return fmt.Errorf("create item for invoice %s: %w", invoice.Number, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create invoice: %w", err)
	}

	return nil
}

func (r *invoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	query := `
		SELECT id, number, booking_id, agent_id, total_cents, status, created_at, updated_at
		FROM invoices
		WHERE id = $1 AND deleted_at IS NULL
	`

	var invoice entity.Invoice
	err := r.db.QueryRow(ctx, query, id).Scan(
		&invoice.ID,
		&invoice.Number,
		&invoice.BookingID,
		&invoice.AgentID,
		&invoice.TotalCents,
		&invoice.Status,
		&invoice.CreatedAt,
		&invoice.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find invoice by ID",
			zap.Error(err),
			zap.String("invoice_id", id.String()),
		)
		return nil, fmt.Errorf("find invoice by ID %s: %w", id.String(), err)
	}

	return &invoice, nil
}

func (r *invoiceRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Invoice, error) {
	query := `
		SELECT id, number, booking_id, agent_id, total_cents, status, created_at, updated_at
		FROM invoices
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find invoices", zap.Error(err))
		return nil, fmt.Errorf("find invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*entity.Invoice
	for rows.Next() {
		var invoice entity.Invoice
		err := rows.Scan(
			&invoice.ID,
			&invoice.Number,
			&invoice.BookingID,
			&invoice.AgentID,
			&invoice.TotalCents,
			&invoice.Status,
			&invoice.CreatedAt,
			&invoice.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan invoice row", zap.Error(err))
			return nil, fmt.Errorf("scan invoice row: %w", err)
		}
		invoices = append(invoices, &invoice)
	}

	return invoices, nil
}

func (r *invoiceRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM invoices WHERE deleted_at IS NULL`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count invoices", zap.Error(err))
		return 0, fmt.Errorf("count invoices: %w", err)
	}

	return count, nil
}

func (r *invoiceRepository) FindItems(ctx context.Context, invoiceID uuid.UUID) ([]*entity.InvoiceItem, error) {
	query := `
		SELECT id, invoice_id, service_id, description, amount_cents, created_at
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, invoiceID)
	if err != nil {
		r.log.Error("Failed to find invoice items",
			zap.Error(err),
			zap.String("invoice_id", invoiceID.String()),
		)
		return nil, fmt.Errorf("find items for invoice %s: %w", invoiceID.String(), err)
	}
	defer rows.Close()

	var items []*entity.InvoiceItem
	for rows.Next() {
		var item entity.InvoiceItem
		err := rows.Scan(
			&item.ID,
			&item.InvoiceID,
			&item.ServiceID,
			&item.Description,
			&item.AmountCents,
			&item.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan invoice item row", zap.Error(err))
			return nil, fmt.Errorf("scan invoice item row: %w", err)
		}
		items = append(items, &item)
	}

	return items, nil
}

func (r *invoiceRepository) UpdateStatus(ctx context.Context, invoiceID uuid.UUID, status entity.InvoiceStatus) error {
	query := `UPDATE invoices SET status = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, invoiceID, status)
	if err != nil {
		r.log.Error("Failed to update invoice status",
			zap.Error(err),
			zap.String("invoice_id", invoiceID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update invoice %s status to %s: %w", invoiceID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("invoice %s not found", invoiceID.String())
	}

	return nil
}
