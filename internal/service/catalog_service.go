package service

import (
	"context"
	"errors"

	"inventario/internal/model"
	"inventario/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reference-catalog services. All four follow the same contract: plain CRUD
// with a dependent-row count guarding every delete.

type CatalogRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type NomenclatureRequest struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type RoleRequest struct {
	Name string `json:"name" binding:"required"`
}

// --- Role ---

type RoleService interface {
	Create(ctx context.Context, req RoleRequest) (*model.Role, error)
	Update(ctx context.Context, id string, req RoleRequest) (*model.Role, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*model.Role, error)
	List(ctx context.Context) ([]model.Role, error)
}

type roleService struct {
	roles  repository.RoleRepository
	agents repository.AgentRepository
}

func NewRoleService(roles repository.RoleRepository, agents repository.AgentRepository) RoleService {
	return &roleService{roles: roles, agents: agents}
}

const roleNotFoundMsg = "Rol no encontrado"

func (s *roleService) checkName(ctx context.Context, name string, selfID uuid.UUID) error {
	existing, err := s.roles.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return BadRequest("Ya existe un rol con ese nombre")
	}
	return nil
}

func (s *roleService) Create(ctx context.Context, req RoleRequest) (*model.Role, error) {
	if err := s.checkName(ctx, req.Name, uuid.Nil); err != nil {
		return nil, err
	}
	role := &model.Role{Name: req.Name}
	if err := s.roles.Create(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *roleService) Update(ctx context.Context, id string, req RoleRequest) (*model.Role, error) {
	roleID, err := parseID(id, roleNotFoundMsg)
	if err != nil {
		return nil, err
	}
	role, err := s.roles.FindByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound(roleNotFoundMsg)
		}
		return nil, err
	}
	if err := s.checkName(ctx, req.Name, role.ID); err != nil {
		return nil, err
	}
	role.Name = req.Name
	if err := s.roles.Update(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *roleService) Delete(ctx context.Context, id string) error {
	roleID, err := parseID(id, roleNotFoundMsg)
	if err != nil {
		return err
	}
	if _, err := s.roles.FindByID(ctx, roleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound(roleNotFoundMsg)
		}
		return err
	}
	count, err := s.agents.CountByRole(ctx, roleID)
	if err != nil {
		return err
	}
	if count > 0 {
		return BadRequest("No se puede eliminar un rol con agentes asignados")
	}
	return s.roles.Delete(ctx, roleID)
}

func (s *roleService) GetByID(ctx context.Context, id string) (*model.Role, error) {
	roleID, err := parseID(id, roleNotFoundMsg)
	if err != nil {
		return nil, err
	}
	role, err := s.roles.FindByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound(roleNotFoundMsg)
		}
		return nil, err
	}
	return role, nil
}

func (s *roleService) List(ctx context.Context) ([]model.Role, error) {
	return s.roles.List(ctx)
}

// --- Location ---

type LocationService interface {
	Create(ctx context.Context, req CatalogRequest) (*model.Location, error)
	Update(ctx context.Context, id string, req CatalogRequest) (*model.Location, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*model.Location, error)
	List(ctx context.Context) ([]model.Location, error)
}

type locationService struct {
	locations repository.LocationRepository
	assets    repository.AssetRepository
}

func NewLocationService(locations repository.LocationRepository, assets repository.AssetRepository) LocationService {
	return &locationService{locations: locations, assets: assets}
}

const locationNotFoundMsg = "Ubicación no encontrada"

func (s *locationService) Create(ctx context.Context, req CatalogRequest) (*model.Location, error) {
	location := &model.Location{Name: req.Name, Description: req.Description}
	if err := s.locations.Create(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

func (s *locationService) Update(ctx context.Context, id string, req CatalogRequest) (*model.Location, error) {
	locationID, err := parseID(id, locationNotFoundMsg)
	if err != nil {
		return nil, err
	}
	location, err := s.locations.FindByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound(locationNotFoundMsg)
		}
		return nil, err
	}
	location.Name = req.Name
	location.Description = req.Description
	if err := s.locations.Update(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

func (s *locationService) Delete(ctx context.Context, id string) error {
	locationID, err := parseID(id, locationNotFoundMsg)
	if err != nil {
		return err
	}
	if _, err := s.locations.FindByID(ctx, locationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound(locationNotFoundMsg)
		}
		return err
	}
	count, err := s.assets.CountByLocation(ctx, locationID)
	if err != nil {
		return err
	}
	if count > 0 {
		return BadRequest("No se puede eliminar una ubicación con activos asignados")
	}
	return s.locations.Delete(ctx, locationID)
}

func (s *locationService) GetByID(ctx context.Context, id string) (*model.Location, error) {
	locationID, err := parseID(id, locationNotFoundMsg)
	if err != nil {
		return nil, err
	}
	location, err := s.locations.FindByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound(locationNotFoundMsg)
		}
		return nil, err
	}
	return location, nil
}

func (s *locationService) List(ctx context.Context) ([]model.Location, error) {
	return s.locations.List(ctx)
}

// --- Category ---

type CategoryService interface {
	Create(ctx context.Context, req CatalogRequest) (*model.Category, error)
	Update(ctx context.Context, id string, req CatalogRequest) (*model.Category, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
}

type categoryService struct {
	categories repository.CategoryRepository
	assets     repository.AssetRepository
}

func NewCategoryService(categories repository.CategoryRepository, assets repository.AssetRepository) CategoryService {
	return &categoryService{categories: categories, assets: assets}
}

const categoryNotFoundMsg = "Categoría no encontrada"

func (s *categoryService) Create(ctx context.Context, req CatalogRequest) (*model.Category, error) {
	category := &model.Category{Name: req.Name, Description: req.Description}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, id string, req CatalogRequest) (*model.Category, error) {
	categoryID, err := parseID(id, categoryNotFoundMsg)
	if err != nil {
		return nil, err
	}
	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound(categoryNotFoundMsg)
		}
		return nil, err
	}
	category.Name = req.Name
	category.Description = req.Description
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	categoryID, err := parseID(id, categoryNotFoundMsg)
	if err != nil {
		return err
	}
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound(categoryNotFoundMsg)
		}
		return err
	}
	count, err := s.assets.CountByCategory(ctx, categoryID)
	if err != nil {
		return err
	}
	if count > 0 {
		return BadRequest("No se puede eliminar una categoría con activos asignados")
	}
	return s.categories.Delete(ctx, categoryID)
}

func (s *categoryService) GetByID(ctx context.Context, id string) (*model.Category, error) {
	categoryID, err := parseID(id, categoryNotFoundMsg)
	if err != nil {
		return nil, err
	}
	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound(categoryNotFoundMsg)
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.categories.List(ctx)
}

// --- Nomenclature ---

type NomenclatureService interface {
	Create(ctx context.Context, req NomenclatureRequest) (*model.Nomenclature, error)
	Update(ctx context.Context, id string, req NomenclatureRequest) (*model.Nomenclature, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*model.Nomenclature, error)
	List(ctx context.Context) ([]model.Nomenclature, error)
}

type nomenclatureService struct {
	nomenclatures repository.NomenclatureRepository
	assets        repository.AssetRepository
}

func NewNomenclatureService(nomenclatures repository.NomenclatureRepository, assets repository.AssetRepository) NomenclatureService {
	return &nomenclatureService{nomenclatures: nomenclatures, assets: assets}
}

const nomenclatureNotFoundMsg = "Nomenclatura no encontrada"

func (s *nomenclatureService) checkCode(ctx context.Context, code string, selfID uuid.UUID) error {
	existing, err := s.nomenclatures.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return BadRequest("El código ya está en uso")
	}
	return nil
}

func (s *nomenclatureService) Create(ctx context.Context, req NomenclatureRequest) (*model.Nomenclature, error) {
	if err := s.checkCode(ctx, req.Code, uuid.Nil); err != nil {
		return nil, err
	}
	nomenclature := &model.Nomenclature{Code: req.Code, Name: req.Name, Description: req.Description}
	if err := s.nomenclatures.Create(ctx, nomenclature); err != nil {
		return nil, err
	}
	return nomenclature, nil
}

func (s *nomenclatureService) Update(ctx context.Context, id string, req NomenclatureRequest) (*model.Nomenclature, error) {
	nomenclatureID, err := parseID(id, nomenclatureNotFoundMsg)
	if err != nil {
		return nil, err
	}
	nomenclature, err := s.nomenclatures.FindByID(ctx, nomenclatureID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound(nomenclatureNotFoundMsg)
		}
		return nil, err
	}
	if err := s.checkCode(ctx, req.Code, nomenclature.ID); err != nil {
		return nil, err
	}
	nomenclature.Code = req.Code
	nomenclature.Name = req.Name
	nomenclature.Description = req.Description
	if err := s.nomenclatures.Update(ctx, nomenclature); err != nil {
		return nil, err
	}
	return nomenclature, nil
}

func (s *nomenclatureService) Delete(ctx context.Context, id string) error {
	nomenclatureID, err := parseID(id, nomenclatureNotFoundMsg)
	if err != nil {
		return err
	}
	if _, err := s.nomenclatures.FindByID(ctx, nomenclatureID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound(nomenclatureNotFoundMsg)
		}
		return err
	}
	count, err := s.assets.CountByNomenclature(ctx, nomenclatureID)
	if err != nil {
		return err
	}
	if count > 0 {
		return BadRequest("No se puede eliminar una nomenclatura con activos asignados")
	}
	return s.nomenclatures.Delete(ctx, nomenclatureID)
}

func (s *nomenclatureService) GetByID(ctx context.Context, id string) (*model.Nomenclature, error) {
	nomenclatureID, err := parseID(id, nomenclatureNotFoundMsg)
	if err != nil {
		return nil, err
	}
	nomenclature, err := s.nomenclatures.FindByID(ctx, nomenclatureID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound(nomenclatureNotFoundMsg)
		}
		return nil, err
	}
	return nomenclature, nil
}

func (s *nomenclatureService) List(ctx context.Context) ([]model.Nomenclature, error) {
	return s.nomenclatures.List(ctx)
}
