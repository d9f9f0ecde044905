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

type AgentRepository interface {
	Create(ctx context.Context, agent *entity.Agent) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Agent, error)
	FindAll(ctx context.Context) ([]*entity.Agent, error)
	Update(ctx context.Context, agent *entity.Agent) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type agentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAgentRepository(db database.PgxIface, log *zap.Logger) AgentRepository {
	return &agentRepository{
		db:  db,
		log: log.With(zap.String("repository", "agent")),
	}
}

func (r *agentRepository) Create(ctx context.Context, agent *entity.Agent) error {
	query := `
		INSERT INTO agents (id, name, email, phone, company, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		agent.ID,
		agent.Name,
		agent.Email,
		agent.Phone,
		agent.Company,
		agent.CreatedAt,
		agent.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create agent",
			zap.Error(err),
			zap.String("email", agent.Email),
		)
		return fmt.Errorf("create agent %s: %w", agent.Email, err)
	}

	return nil
}

func (r *agentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Agent, error) {
	query := `
		SELECT id, name, email, phone, company, created_at, updated_at
		FROM agents
		WHERE id = $1 AND deleted_at IS NULL
	`

	var agent entity.Agent
	err := r.db.QueryRow(ctx, query, id).Scan(
		&agent.ID,
		&agent.Name,
		&agent.Email,
		&agent.Phone,
		&agent.Company,
		&agent.CreatedAt,
		&agent.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find agent by ID",
			zap.Error(err),
			zap.String("agent_id", id.String()),
		)
		return nil, fmt.Errorf("find agent by ID %s: %w", id.String(), err)
	}

	return &agent, nil
}

func (r *agentRepository) FindAll(ctx context.Context) ([]*entity.Agent, error) {
	query := `
		SELECT id, name, email, phone, company, created_at, updated_at
		FROM agents
		WHERE deleted_at IS NULL
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find agents", zap.Error(err))
		return nil, fmt.Errorf("find agents: %w", err)
	}
	defer rows.Close()

	var agents []*entity.Agent
	for rows.Next() {
		var agent entity.Agent
		err := rows.Scan(
			&agent.ID,
			&agent.Name,
			&agent.Email,
			&agent.Phone,
			&agent.Company,
			&agent.CreatedAt,
			&agent.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan agent row", zap.Error(err))
			return nil, fmt.Errorf("scan agent row: %w", err)
		}
		agents = append(agents, &agent)
	}

	return agents, nil
}

func (r *agentRepository) Update(ctx context.Context, agent *entity.Agent) error {
	query := `
		UPDATE agents
		SET name = $2, email = $3, phone = $4, company = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		agent.ID,
		agent.Name,
		agent.Email,
		agent.Phone,
		agent.Company,
		agent.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update agent",
			zap.Error(err),
			zap.String("agent_id", agent.ID.String()),
		)
		return fmt.Errorf("update agent %s: %w", agent.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("agent %s not found", agent.ID.String())
	}

	return nil
}

func (r *agentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE agents SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete agent",
			zap.Error(err),
			zap.String("agent_id", id.String()),
		)
		return fmt.Errorf("delete agent %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("agent %s not found", id.String())
	}

	return nil
}
