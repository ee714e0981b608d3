package service

import (
	"context"
	"errors"

	"inventario/internal/model"
	"inventario/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateAgentRequest struct {
	Name     string  `json:"name" binding:"required"`
	Lastname string  `json:"lastname" binding:"required"`
	DNI      *string `json:"dni"`
	RoleID   string  `json:"role_id" binding:"required,uuid"`
}

type UpdateAgentRequest struct {
	Name     *string `json:"name"`
	Lastname *string `json:"lastname"`
	DNI      *string `json:"dni"`
	RoleID   *string `json:"role_id" binding:"omitempty,uuid"`
}

// AgentService defines business operations for staff members
type AgentService interface {
	Create(ctx context.Context, req CreateAgentRequest) (*model.Agent, error)
	Update(ctx context.Context, id string, req UpdateAgentRequest) (*model.Agent, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*model.Agent, error)
	List(ctx context.Context) ([]model.Agent, error)
}

type agentService struct {
	agents repository.AgentRepository
	roles  repository.RoleRepository
	assets repository.AssetRepository
}

func NewAgentService(agents repository.AgentRepository, roles repository.RoleRepository, assets repository.AssetRepository) AgentService {
	return &agentService{agents: agents, roles: roles, assets: assets}
}

// parseID maps a bad path parameter to the entity's NotFound message, so a
// malformed uuid behaves like a missing row rather than a 500.
func parseID(id, notFoundMsg string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, NotFound(notFoundMsg)
	}
	return parsed, nil
}

const agentNotFoundMsg = "Agente no encontrado"

func (s *agentService) checkDNI(ctx context.Context, dni string, selfID uuid.UUID) error {
	existing, err := s.agents.FindByDNI(ctx, dni)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return BadRequest("El DNI ya está en uso")
	}
	return nil
}

func (s *agentService) checkRole(ctx context.Context, roleID uuid.UUID) error {
	if _, err := s.roles.FindByID(ctx, roleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BadRequest("El rol especificado no existe")
		}
		return err
	}
	return nil
}

func (s *agentService) Create(ctx context.Context, req CreateAgentRequest) (*model.Agent, error) {
	roleID, err := uuid.Parse(req.RoleID)
	if err != nil {
		return nil, BadRequest("El rol especificado no existe")
	}
	if err := s.checkRole(ctx, roleID); err != nil {
		return nil, err
	}
	if req.DNI != nil && *req.DNI != "" {
		if err := s.checkDNI(ctx, *req.DNI, uuid.Nil); err != nil {
			return nil, err
		}
	}

	agent := &model.Agent{
		Name:     req.Name,
		Lastname: req.Lastname,
		DNI:      req.DNI,
		RoleID:   roleID,
	}
	if err := s.agents.Create(ctx, agent); err != nil {
		return nil, err
	}
	return s.agents.FindByID(ctx, agent.ID)
}

func (s *agentService) Update(ctx context.Context, id string, req UpdateAgentRequest) (*model.Agent, error) {
	agentID, err := parseID(id, agentNotFoundMsg)
	if err != nil {
		return nil, err
	}
	agent, err := s.agents.FindByID(ctx, agentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound(agentNotFoundMsg)
		}
		return nil, err
	}

	if req.RoleID != nil {
		roleID, err := uuid.Parse(*req.RoleID)
		if err != nil {
			return nil, BadRequest("El rol especificado no existe")
		}
		if err := s.checkRole(ctx, roleID); err != nil {
			return nil, err
		}
		agent.RoleID = roleID
	}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, BadRequest("El nombre no puede estar vacío")
		}
		agent.Name = *req.Name
	}
	if req.Lastname != nil {
		if *req.Lastname == "" {
			return nil, BadRequest("El apellido no puede estar vacío")
		}
		agent.Lastname = *req.Lastname
	}
	if req.DNI != nil {
		if *req.DNI != "" {
			if err := s.checkDNI(ctx, *req.DNI, agent.ID); err != nil {
				return nil, err
			}
			agent.DNI = req.DNI
		} else {
			agent.DNI = nil
		}
	}

	if err := s.agents.Update(ctx, agent); err != nil {
		return nil, err
	}
	return s.agents.FindByID(ctx, agent.ID)
}

// Delete refuses to remove an agent that still has assets assigned
func (s *agentService) Delete(ctx context.Context, id string) error {
	agentID, err := parseID(id, agentNotFoundMsg)
	if err != nil {
		return err
	}
	if _, err := s.agents.FindByID(ctx, agentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound(agentNotFoundMsg)
		}
		return err
	}

	count, err := s.assets.CountByAgent(ctx, agentID)
	if err != nil {
		return err
	}
	if count > 0 {
		return BadRequest("No se puede eliminar un agente con activos asignados")
	}

	return s.agents.Delete(ctx, agentID)
}

func (s *agentService) GetByID(ctx context.Context, id string) (*model.Agent, error) {
	agentID, err := parseID(id, agentNotFoundMsg)
	if err != nil {
		return nil, err
	}
	agent, err := s.agents.FindByID(ctx, agentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound(agentNotFoundMsg)
		}
		return nil, err
	}
	return agent, nil
}

func (s *agentService) List(ctx context.Context) ([]model.Agent, error) {
	return s.agents.List(ctx)
}
