package repository

import (
	"context"

	"inventario/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AgentRepository defines data access for agents (staff responsible for assets)
type AgentRepository interface {
	Create(ctx context.Context, agent *model.Agent) error
	Update(ctx context.Context, agent *model.Agent) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Agent, error)
	FindByDNI(ctx context.Context, dni string) (*model.Agent, error)
	List(ctx context.Context) ([]model.Agent, error)
	CountByRole(ctx context.Context, roleID uuid.UUID) (int64, error)
}

type agentRepository struct {
	db *gorm.DB
}

func NewAgentRepository(db *gorm.DB) AgentRepository {
	return &agentRepository{db: db}
}

func (r *agentRepository) Create(ctx context.Context, agent *model.Agent) error {
	return GetDB(ctx, r.db).Create(agent).Error
}

func (r *agentRepository) Update(ctx context.Context, agent *model.Agent) error {
	return GetDB(ctx, r.db).Save(agent).Error
}

func (r *agentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Agent{}).Error
}

func (r *agentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Agent, error) {
	var agent model.Agent
	if err := GetDB(ctx, r.db).Preload("Role").First(&agent, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &agent, nil
}

func (r *agentRepository) FindByDNI(ctx context.Context, dni string) (*model.Agent, error) {
	var agent model.Agent
	if err := GetDB(ctx, r.db).First(&agent, "dni = ?", dni).Error; err != nil {
		return nil, err
	}
	return &agent, nil
}

func (r *agentRepository) List(ctx context.Context) ([]model.Agent, error) {
	var agents []model.Agent
	if err := GetDB(ctx, r.db).Preload("Role").Order("lastname ASC, name ASC").Find(&agents).Error; err != nil {
		return nil, err
	}
	return agents, nil
}

// CountByRole counts agents holding the given role, for the role delete guard
func (r *agentRepository) CountByRole(ctx context.Context, roleID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.Agent{}).Where("role_id = ?", roleID).Count(&count).Error
	return count, err
}
