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

type AgentService interface {
	Create(ctx context.Context, req *request.CreateAgentRequest) (*response.AgentResponse, error)
	GetByID(ctx context.Context, agentID string) (*response.AgentResponse, error)
	GetAll(ctx context.Context) ([]response.AgentResponse, error)
	Update(ctx context.Context, agentID string, req *request.UpdateAgentRequest) (*response.AgentResponse, error)
	Delete(ctx context.Context, agentID string) error
}

type agentService struct {
	repo  *repository.Repository
	store *catalog.Store
	log   *zap.Logger
}

func NewAgentService(repo *repository.Repository, store *catalog.Store, log *zap.Logger) AgentService {
	return &agentService{
		repo:  repo,
		store: store,
		log:   log.With(zap.String("service", "agent")),
	}
}

func (s *agentService) Create(ctx context.Context, req *request.CreateAgentRequest) (*response.AgentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create agent validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	agent := &entity.Agent{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
	}

	if err := s.repo.Agent.Create(ctx, agent); err != nil {
		s.log.Error("Failed to create agent", zap.Error(err))
		return nil, fmt.Errorf("failed to create agent")
	}

	s.refreshCatalog(ctx)

	resp := response.AgentToResponse(agent)
	return &resp, nil
}

func (s *agentService) GetByID(ctx context.Context, agentID string) (*response.AgentResponse, error) {
	id, err := uuid.Parse(agentID)
	if err != nil {
		return nil, fmt.Errorf("invalid agent ID format %s", agentID)
	}

	agent, err := s.repo.Agent.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find agent", zap.Error(err), zap.String("agent_id", agentID))
		return nil, fmt.Errorf("failed to load agent")
	}
	if agent == nil {
		return nil, fmt.Errorf("agent %s not found", agentID)
	}

	resp := response.AgentToResponse(agent)
	return &resp, nil
}

func (s *agentService) GetAll(ctx context.Context) ([]response.AgentResponse, error) {
	agents, err := s.repo.Agent.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list agents", zap.Error(err))
		return nil, fmt.Errorf("failed to list agents")
	}

	out := make([]response.AgentResponse, 0, len(agents))
	for _, agent := range agents {
		out = append(out, response.AgentToResponse(agent))
	}
	return out, nil
}

func (s *agentService) Update(ctx context.Context, agentID string, req *request.UpdateAgentRequest) (*response.AgentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update agent validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(agentID)
	if err != nil {
		return nil, fmt.Errorf("invalid agent ID format %s", agentID)
	}

	agent, err := s.repo.Agent.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find agent", zap.Error(err), zap.String("agent_id", agentID))
		return nil, fmt.Errorf("failed to load agent")
	}
	if agent == nil {
		return nil, fmt.Errorf("agent %s not found", agentID)
	}

	agent.Name = req.Name
	agent.Email = req.Email
	agent.Phone = req.Phone
	agent.Company = req.Company
	agent.UpdatedAt = time.Now()

	if err := s.repo.Agent.Update(ctx, agent); err != nil {
		s.log.Error("Failed to update agent", zap.Error(err), zap.String("agent_id", agentID))
		return nil, fmt.Errorf("failed to update agent")
	}

	s.refreshCatalog(ctx)

	resp := response.AgentToResponse(agent)
	return &resp, nil
}

func (s *agentService) Delete(ctx context.Context, agentID string) error {
	id, err := uuid.Parse(agentID)
	if err != nil {
		return fmt.Errorf("invalid agent ID format %s", agentID)
	}

	if err := s.repo.Agent.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete agent", zap.Error(err), zap.String("agent_id", agentID))
		return err
	}

	s.refreshCatalog(ctx)
	return nil
}

// refreshCatalog reloads the agent picker after a mutation. Failures only
// leave the picker stale until the next refresh, so they are logged, not
// propagated.
func (s *agentService) refreshCatalog(ctx context.Context) {
	agents, err := s.repo.Agent.FindAll(ctx)
	if err != nil {
		s.log.Warn("Failed to refresh agent catalog", zap.Error(err))
		return
	}

	infos := make([]catalog.AgentInfo, 0, len(agents))
	for _, agent := range agents {
		info := catalog.AgentInfo{ID: agent.ID, Name: agent.Name}
		if agent.Company != nil {
			info.Company = *agent.Company
		}
		infos = append(infos, info)
	}
	s.store.ReplaceAgents(infos)
}
