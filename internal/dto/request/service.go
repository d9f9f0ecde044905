package request

type CreateServiceRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=100"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,min=5,max=1440"`
	PriceCents      int64  `json:"price_cents" validate:"min=0"`
}

type UpdateServiceRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=100"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,min=5,max=1440"`
	PriceCents      int64  `json:"price_cents" validate:"min=0"`
	IsActive        *bool  `json:"is_active,omitempty"`
}
