package entity

import "github.com/google/uuid"

type InvoiceStatus string

const (
	InvoiceStatusDraft InvoiceStatus = "draft"
	InvoiceStatusSent  InvoiceStatus = "sent"
	InvoiceStatusPaid  InvoiceStatus = "paid"
)

type Invoice struct {
	Base
	Number     string        `db:"number"`
	BookingID  uuid.UUID     `db:"booking_id"`
	AgentID    *uuid.UUID    `db:"agent_id"`
	TotalCents int64         `db:"total_cents"`
	Status     InvoiceStatus `db:"status"`
}

type InvoiceItem struct {
	BaseSimple
	InvoiceID   uuid.UUID  `db:"invoice_id"`
	ServiceID   *uuid.UUID `db:"service_id"`
	Description string     `db:"description"`
	AmountCents int64      `db:"amount_cents"`
}
