package response

import (
	"time"

	"photodesk/internal/data/entity"
)

type InvoiceResponse struct {
	ID         string                `json:"id"`
	Number     string                `json:"number"`
	BookingID  string                `json:"booking_id"`
	AgentID    *string               `json:"agent_id,omitempty"`
	TotalCents int64                 `json:"total_cents"`
	Status     entity.InvoiceStatus  `json:"status"`
	Items      []InvoiceItemResponse `json:"items,omitempty"`
	CreatedAt  time.Time             `json:"created_at"`
}

type InvoiceItemResponse struct {
	ID          string  `json:"id"`
	ServiceID   *string `json:"service_id,omitempty"`
	Description string  `json:"description"`
	AmountCents int64   `json:"amount_cents"`
}

func InvoiceToResponse(invoice *entity.Invoice, items []*entity.InvoiceItem) InvoiceResponse {
	resp := InvoiceResponse{
		ID:         invoice.ID.String(),
		Number:     invoice.Number,
		BookingID:  invoice.BookingID.String(),
		TotalCents: invoice.TotalCents,
		Status:     invoice.Status,
		CreatedAt:  invoice.CreatedAt,
	}

	if invoice.AgentID != nil {
		id := invoice.AgentID.String()
		resp.AgentID = &id
	}

	for _, item := range items {
		itemResp := InvoiceItemResponse{
			ID:          item.ID.String(),
			Description: item.Description,
			AmountCents: item.AmountCents,
		}
		if item.ServiceID != nil {
			id := item.ServiceID.String()
			itemResp.ServiceID = &id
		}
		resp.Items = append(resp.Items, itemResp)
	}

	return resp
}
