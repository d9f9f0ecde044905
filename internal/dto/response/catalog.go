package response

import (
	"time"

	"photodesk/internal/data/entity"
)

type AgentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Company   *string   `json:"company,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type PhotographerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type ServiceResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"duration_minutes"`
	PriceCents      int64     `json:"price_cents"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

func AgentToResponse(agent *entity.Agent) AgentResponse {
	return AgentResponse{
		ID:        agent.ID.String(),
		Name:      agent.Name,
		Email:     agent.Email,
		Phone:     agent.Phone,
		Company:   agent.Company,
		CreatedAt: agent.CreatedAt,
	}
}

func PhotographerToResponse(photographer *entity.Photographer) PhotographerResponse {
	return PhotographerResponse{
		ID:        photographer.ID.String(),
		Name:      photographer.Name,
		Email:     photographer.Email,
		Phone:     photographer.Phone,
		IsActive:  photographer.IsActive,
		CreatedAt: photographer.CreatedAt,
	}
}

func ServiceToResponse(service *entity.Service) ServiceResponse {
	return ServiceResponse{
		ID:              service.ID.String(),
		Name:            service.Name,
		DurationMinutes: service.DurationMinutes,
		PriceCents:      service.PriceCents,
		IsActive:        service.IsActive,
		CreatedAt:       service.CreatedAt,
	}
}
