package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Canonical asset statuses. The UI maps these to display labels.
const (
	AssetStatusActive         = "active"
	AssetStatusInRepair       = "in_repair"
	AssetStatusDecommissioned = "decommissioned"
)

// ValidAssetStatus reports whether s belongs to the status enumeration
func ValidAssetStatus(s string) bool {
	return s == AssetStatusActive || s == AssetStatusInRepair || s == AssetStatusDecommissioned
}

// Asset is a tracked physical item. Every report and client view pivots
// around this entity.
type Asset struct {
	ID           uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name         string          `gorm:"type:varchar(255);not null" json:"name"`
	Description  string          `gorm:"type:text" json:"description"`
	SerialNumber string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"serial_number"`
	Value        decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"value"`
	PurchaseDate time.Time       `gorm:"not null" json:"purchase_date"`
	Status       string          `gorm:"type:varchar(30);not null;index" json:"status"`
	ImageURL     string          `gorm:"type:varchar(512)" json:"image_url"`

	AgentID        *uuid.UUID    `gorm:"type:uuid;index" json:"agent_id,omitempty"`
	Agent          *Agent        `gorm:"foreignKey:AgentID" json:"agent,omitempty"`
	LocationID     *uuid.UUID    `gorm:"type:uuid;index" json:"location_id,omitempty"`
	Location       *Location     `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	CategoryID     *uuid.UUID    `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Category       *Category     `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	NomenclatureID *uuid.UUID    `gorm:"type:uuid;index" json:"nomenclature_id,omitempty"`
	Nomenclature   *Nomenclature `gorm:"foreignKey:NomenclatureID" json:"nomenclature,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// InventoryHistory is an append-only record of a field check-in on an asset.
// Written in the same transaction as the asset update it describes.
type InventoryHistory struct {
	ID           uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AssetID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"asset_id"`
	Year         int             `gorm:"not null" json:"year"`
	Date         time.Time       `gorm:"not null" json:"date"`
	Status       string          `gorm:"type:varchar(30);not null" json:"status"`
	Value        decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"value"`
	LocationID   *uuid.UUID      `gorm:"type:uuid" json:"location_id,omitempty"`
	RecordedBy   string          `gorm:"type:varchar(255);not null" json:"recorded_by"`
	Observations string          `gorm:"type:text" json:"observations"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
}
