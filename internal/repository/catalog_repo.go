package repository

import (
	"context"

	"inventario/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// The reference catalogs (Role, Location, Category, Nomenclature) share the
// same access pattern, so each gets a small repository built on gorm directly.

type RoleRepository interface {
	Create(ctx context.Context, role *model.Role) error
	Update(ctx context.Context, role *model.Role) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Role, error)
	FindByName(ctx context.Context, name string) (*model.Role, error)
	List(ctx context.Context) ([]model.Role, error)
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) Create(ctx context.Context, role *model.Role) error {
	return GetDB(ctx, r.db).Create(role).Error
}

func (r *roleRepository) Update(ctx context.Context, role *model.Role) error {
	return GetDB(ctx, r.db).Save(role).Error
}

func (r *roleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Role{}).Error
}

func (r *roleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	var role model.Role
	if err := GetDB(ctx, r.db).First(&role, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) FindByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	if err := GetDB(ctx, r.db).First(&role, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) List(ctx context.Context) ([]model.Role, error) {
	var roles []model.Role
	if err := GetDB(ctx, r.db).Order("name ASC").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

type LocationRepository interface {
	Create(ctx context.Context, location *model.Location) error
	Update(ctx context.Context, location *model.Location) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Location, error)
	List(ctx context.Context) ([]model.Location, error)
}

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Create(ctx context.Context, location *model.Location) error {
	return GetDB(ctx, r.db).Create(location).Error
}

func (r *locationRepository) Update(ctx context.Context, location *model.Location) error {
	return GetDB(ctx, r.db).Save(location).Error
}

func (r *locationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Location{}).Error
}

func (r *locationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Location, error) {
	var location model.Location
	if err := GetDB(ctx, r.db).First(&location, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) List(ctx context.Context) ([]model.Location, error) {
	var locations []model.Location
	if err := GetDB(ctx, r.db).Order("name ASC").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	Update(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	return GetDB(ctx, r.db).Create(category).Error
}

func (r *categoryRepository) Update(ctx context.Context, category *model.Category) error {
	return GetDB(ctx, r.db).Save(category).Error
}

func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Category{}).Error
}

func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	var category model.Category
	if err := GetDB(ctx, r.db).First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := GetDB(ctx, r.db).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

type NomenclatureRepository interface {
	Create(ctx context.Context, nomenclature *model.Nomenclature) error
	Update(ctx context.Context, nomenclature *model.Nomenclature) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Nomenclature, error)
	FindByCode(ctx context.Context, code string) (*model.Nomenclature, error)
	List(ctx context.Context) ([]model.Nomenclature, error)
}

type nomenclatureRepository struct {
	db *gorm.DB
}

func NewNomenclatureRepository(db *gorm.DB) NomenclatureRepository {
	return &nomenclatureRepository{db: db}
}

func (r *nomenclatureRepository) Create(ctx context.Context, nomenclature *model.Nomenclature) error {
	return GetDB(ctx, r.db).Create(nomenclature).Error
}

func (r *nomenclatureRepository) Update(ctx context.Context, nomenclature *model.Nomenclature) error {
	return GetDB(ctx, r.db).Save(nomenclature).Error
}

func (r *nomenclatureRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Nomenclature{}).Error
}

func (r *nomenclatureRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Nomenclature, error) {
	var nomenclature model.Nomenclature
	if err := GetDB(ctx, r.db).First(&nomenclature, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &nomenclature, nil
}

func (r *nomenclatureRepository) FindByCode(ctx context.Context, code string) (*model.Nomenclature, error) {
	var nomenclature model.Nomenclature
	if err := GetDB(ctx, r.db).First(&nomenclature, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &nomenclature, nil
}

func (r *nomenclatureRepository) List(ctx context.Context) ([]model.Nomenclature, error) {
	var nomenclatures []model.Nomenclature
	if err := GetDB(ctx, r.db).Order("code ASC").Find(&nomenclatures).Error; err != nil {
		return nil, err
	}
	return nomenclatures, nil
}
