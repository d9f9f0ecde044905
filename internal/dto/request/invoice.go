package request

type CreateInvoiceRequest struct {
	BookingID string  `json:"booking_id" validate:"required,uuid4"`
	AgentID   *string `json:"agent_id,omitempty" validate:"omitempty,uuid4"`
}

type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft sent paid"`
}
