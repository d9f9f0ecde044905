package request

type CreateAgentRequest struct {
	Name    string  `json:"name" validate:"required,min=2,max=100"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	Company *string `json:"company,omitempty" validate:"omitempty,max=100"`
}

type UpdateAgentRequest struct {
	Name    string  `json:"name" validate:"required,min=2,max=100"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	Company *string `json:"company,omitempty" validate:"omitempty,max=100"`
}
