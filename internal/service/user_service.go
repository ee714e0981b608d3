package service

import (
	"context"
	"errors"

	"inventario/internal/model"
	"inventario/internal/repository"

	"gorm.io/gorm"
)

type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// UserService covers admin-only account management. Account creation happens
// through AuthService.Register.
type UserService interface {
	List(ctx context.Context) ([]UserResponse, error)
	GetByID(ctx context.Context, id string) (*UserResponse, error)
	UpdateRole(ctx context.Context, id string, req UpdateUserRoleRequest) (*UserResponse, error)
	Delete(ctx context.Context, id string) error
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

const userNotFoundMsg = "Usuario no encontrado"

func (s *userService) List(ctx context.Context) ([]UserResponse, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]UserResponse, 0, len(users))
	for i := range users {
		result = append(result, mapUser(&users[i]))
	}
	return result, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*UserResponse, error) {
	userID, err := parseID(id, userNotFoundMsg)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound(userNotFoundMsg)
		}
		return nil, err
	}
	resp := mapUser(user)
	return &resp, nil
}

func (s *userService) UpdateRole(ctx context.Context, id string, req UpdateUserRoleRequest) (*UserResponse, error) {
	if req.Role != model.UserRoleAdmin && req.Role != model.UserRoleOperador {
		return nil, BadRequest("El rol debe ser admin u operador")
	}
	userID, err := parseID(id, userNotFoundMsg)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound(userNotFoundMsg)
		}
		return nil, err
	}
	user.Role = req.Role
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	resp := mapUser(user)
	return &resp, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	userID, err := parseID(id, userNotFoundMsg)
	if err != nil {
		return err
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound(userNotFoundMsg)
		}
		return err
	}
	return s.users.Delete(ctx, userID)
}
