package repository

import (
	"context"

	"inventario/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssetFilter holds the equality predicates supported by the asset list endpoint
type AssetFilter struct {
	Status  string
	AgentID *uuid.UUID
}

// AssetRepository defines data access for assets and their check-in history
type AssetRepository interface {
	Create(ctx context.Context, asset *model.Asset) error
	Update(ctx context.Context, asset *model.Asset) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Asset, error)
	FindBySerial(ctx context.Context, serial string) (*model.Asset, error)
	List(ctx context.Context, filter AssetFilter, offset, limit int) ([]model.Asset, int64, error)
	ListByAgent(ctx context.Context, agentID *uuid.UUID) ([]model.Asset, error)
	CountByAgent(ctx context.Context, agentID uuid.UUID) (int64, error)
	CountByLocation(ctx context.Context, locationID uuid.UUID) (int64, error)
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
	CountByNomenclature(ctx context.Context, nomenclatureID uuid.UUID) (int64, error)
	CreateHistory(ctx context.Context, record *model.InventoryHistory) error
	ListHistory(ctx context.Context, assetID uuid.UUID) ([]model.InventoryHistory, error)
}

type assetRepository struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) AssetRepository {
	return &assetRepository{db: db}
}

func (r *assetRepository) preloads(db *gorm.DB) *gorm.DB {
	return db.Preload("Agent").Preload("Agent.Role").
		Preload("Location").Preload("Category").Preload("Nomenclature")
}

func (r *assetRepository) Create(ctx context.Context, asset *model.Asset) error {
	return GetDB(ctx, r.db).Create(asset).Error
}

func (r *assetRepository) Update(ctx context.Context, asset *model.Asset) error {
	return GetDB(ctx, r.db).Save(asset).Error
}

func (r *assetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Asset{}).Error
}

func (r *assetRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Asset, error) {
	var asset model.Asset
	if err := r.preloads(GetDB(ctx, r.db)).First(&asset, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *assetRepository) FindBySerial(ctx context.Context, serial string) (*model.Asset, error) {
	var asset model.Asset
	if err := r.preloads(GetDB(ctx, r.db)).First(&asset, "serial_number = ?", serial).Error; err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *assetRepository) applyFilter(db *gorm.DB, filter AssetFilter) *gorm.DB {
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.AgentID != nil {
		db = db.Where("agent_id = ?", *filter.AgentID)
	}
	return db
}

func (r *assetRepository) List(ctx context.Context, filter AssetFilter, offset, limit int) ([]model.Asset, int64, error) {
	var assets []model.Asset
	var total int64

	db := GetDB(ctx, r.db)
	if err := r.applyFilter(db.Model(&model.Asset{}), filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.preloads(r.applyFilter(db.Model(&model.Asset{}), filter))
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&assets).Error; err != nil {
		return nil, 0, err
	}
	return assets, total, nil
}

// ListByAgent returns the assets assigned to agentID, or the unassigned ones
// when agentID is nil. Used by the assets-by-agent report.
func (r *assetRepository) ListByAgent(ctx context.Context, agentID *uuid.UUID) ([]model.Asset, error) {
	var assets []model.Asset
	db := GetDB(ctx, r.db)
	if agentID == nil {
		db = db.Where("agent_id IS NULL")
	} else {
		db = db.Where("agent_id = ?", *agentID)
	}
	if err := db.Order("name ASC").Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

func (r *assetRepository) CountByAgent(ctx context.Context, agentID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.Asset{}).Where("agent_id = ?", agentID).Count(&count).Error
	return count, err
}

func (r *assetRepository) CountByLocation(ctx context.Context, locationID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.Asset{}).Where("location_id = ?", locationID).Count(&count).Error
	return count, err
}

func (r *assetRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.Asset{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

func (r *assetRepository) CountByNomenclature(ctx context.Context, nomenclatureID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.Asset{}).Where("nomenclature_id = ?", nomenclatureID).Count(&count).Error
	return count, err
}

func (r *assetRepository) CreateHistory(ctx context.Context, record *model.InventoryHistory) error {
	return GetDB(ctx, r.db).Create(record).Error
}

func (r *assetRepository) ListHistory(ctx context.Context, assetID uuid.UUID) ([]model.InventoryHistory, error) {
	var records []model.InventoryHistory
	err := GetDB(ctx, r.db).Where("asset_id = ?", assetID).Order("date DESC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
