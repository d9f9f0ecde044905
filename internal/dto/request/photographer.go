package request

type CreatePhotographerRequest struct {
	Name  string  `json:"name" validate:"required,min=2,max=100"`
	Email string  `json:"email" validate:"required,email"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
}

type UpdatePhotographerRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	IsActive *bool   `json:"is_active,omitempty"`
}
