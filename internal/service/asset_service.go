package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"inventario/internal/model"
	"inventario/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Asset lifecycle events published to the websocket hub.
const (
	EventAssetCreated = "asset.created"
	EventAssetUpdated = "asset.updated"
	EventAssetDeleted = "asset.deleted"
)

const scanCacheTTL = 5 * time.Minute

// Notifier publishes domain events to connected dashboard clients
type Notifier interface {
	Publish(event string, data interface{})
}

type CreateAssetRequest struct {
	Name           string          `json:"name" binding:"required"`
	Description    string          `json:"description"`
	SerialNumber   string          `json:"serial_number" binding:"required"`
	Value          decimal.Decimal `json:"value" binding:"required"`
	PurchaseDate   time.Time       `json:"purchase_date" binding:"required"`
	Status         string          `json:"status" binding:"required"`
	ImageURL       string          `json:"image_url"`
	AgentID        *string         `json:"agent_id" binding:"omitempty,uuid"`
	LocationID     *string         `json:"location_id" binding:"omitempty,uuid"`
	CategoryID     *string         `json:"category_id" binding:"omitempty,uuid"`
	NomenclatureID *string         `json:"nomenclature_id" binding:"omitempty,uuid"`
}

type UpdateAssetRequest struct {
	Name           *string          `json:"name"`
	Description    *string          `json:"description"`
	SerialNumber   *string          `json:"serial_number"`
	Value          *decimal.Decimal `json:"value"`
	PurchaseDate   *time.Time       `json:"purchase_date"`
	Status         *string          `json:"status"`
	ImageURL       *string          `json:"image_url"`
	AgentID        *string          `json:"agent_id" binding:"omitempty,uuid"`
	LocationID     *string          `json:"location_id" binding:"omitempty,uuid"`
	CategoryID     *string          `json:"category_id" binding:"omitempty,uuid"`
	NomenclatureID *string          `json:"nomenclature_id" binding:"omitempty,uuid"`
}

// CheckInRequest is one field inventory record, submitted from the mobile scan flow
type CheckInRequest struct {
	Status       string          `json:"status" binding:"required"`
	Value        decimal.Decimal `json:"value" binding:"required"`
	LocationID   *string         `json:"location_id" binding:"omitempty,uuid"`
	Observations string          `json:"observations"`
}

type ListAssetsQuery struct {
	Status  string
	AgentID string
	Page    int
	Limit   int
}

// AssetService defines business operations for tracked assets
type AssetService interface {
	Create(ctx context.Context, req CreateAssetRequest) (*model.Asset, error)
	Update(ctx context.Context, id string, req UpdateAssetRequest) (*model.Asset, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*model.Asset, error)
	GetBySerial(ctx context.Context, serial string) (*model.Asset, error)
	List(ctx context.Context, query ListAssetsQuery) ([]model.Asset, int64, error)
	CheckIn(ctx context.Context, id string, recordedBy string, req CheckInRequest) (*model.Asset, error)
	History(ctx context.Context, id string) ([]model.InventoryHistory, error)
}

type assetService struct {
	assets        repository.AssetRepository
	agents        repository.AgentRepository
	locations     repository.LocationRepository
	categories    repository.CategoryRepository
	nomenclatures repository.NomenclatureRepository
	txManager     repository.TransactionManager
	rdb           *redis.Client
	notifier      Notifier
}

// NewAssetService wires the asset business logic. rdb and notifier may be nil
// (caching and event publishing are then disabled).
func NewAssetService(
	assets repository.AssetRepository,
	agents repository.AgentRepository,
	locations repository.LocationRepository,
	categories repository.CategoryRepository,
	nomenclatures repository.NomenclatureRepository,
	txManager repository.TransactionManager,
	rdb *redis.Client,
	notifier Notifier,
) AssetService {
	return &assetService{
		assets:        assets,
		agents:        agents,
		locations:     locations,
		categories:    categories,
		nomenclatures: nomenclatures,
		txManager:     txManager,
		rdb:           rdb,
		notifier:      notifier,
	}
}

const assetNotFoundMsg = "Activo no encontrado"

func scanCacheKey(serial string) string { return "scan:" + serial }

func (s *assetService) publish(event string, asset *model.Asset) {
	if s.notifier != nil {
		s.notifier.Publish(event, asset)
	}
}

func (s *assetService) invalidateScan(ctx context.Context, serial string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, scanCacheKey(serial)).Err(); err != nil {
		log.Warn().Err(err).Str("serial", serial).Msg("scan cache invalidation failed")
	}
}

// checkRelations verifies every referenced row exists, naming the missing
// relation in the error. Runs before any insert or update.
func (s *assetService) checkRelations(ctx context.Context, asset *model.Asset) error {
	if asset.AgentID != nil {
		if _, err := s.agents.FindByID(ctx, *asset.AgentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return BadRequest("El agente especificado no existe")
			}
			return err
		}
	}
	if asset.LocationID != nil {
		if _, err := s.locations.FindByID(ctx, *asset.LocationID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return BadRequest("La ubicación especificada no existe")
			}
			return err
		}
	}
	if asset.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, *asset.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return BadRequest("La categoría especificada no existe")
			}
			return err
		}
	}
	if asset.NomenclatureID != nil {
		if _, err := s.nomenclatures.FindByID(ctx, *asset.NomenclatureID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return BadRequest("La nomenclatura especificada no existe")
			}
			return err
		}
	}
	return nil
}

func (s *assetService) checkSerial(ctx context.Context, serial string, selfID uuid.UUID) error {
	existing, err := s.assets.FindBySerial(ctx, serial)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return BadRequest("El número de serie ya está en uso")
	}
	return nil
}

func parseOptionalID(raw *string, badMsg string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, BadRequest(badMsg)
	}
	return &id, nil
}

func (s *assetService) Create(ctx context.Context, req CreateAssetRequest) (*model.Asset, error) {
	if !model.ValidAssetStatus(req.Status) {
		return nil, BadRequest("El estado debe ser uno de: active, in_repair, decommissioned")
	}
	if req.Value.IsNegative() {
		return nil, BadRequest("El valor debe ser positivo")
	}

	agentID, err := parseOptionalID(req.AgentID, "El agente especificado no existe")
	if err != nil {
		return nil, err
	}
	locationID, err := parseOptionalID(req.LocationID, "La ubicación especificada no existe")
	if err != nil {
		return nil, err
	}
	categoryID, err := parseOptionalID(req.CategoryID, "La categoría especificada no existe")
	if err != nil {
		return nil, err
	}
	nomenclatureID, err := parseOptionalID(req.NomenclatureID, "La nomenclatura especificada no existe")
	if err != nil {
		return nil, err
	}

	asset := &model.Asset{
		Name:           req.Name,
		Description:    req.Description,
		SerialNumber:   req.SerialNumber,
		Value:          req.Value,
		PurchaseDate:   req.PurchaseDate,
		Status:         req.Status,
		ImageURL:       req.ImageURL,
		AgentID:        agentID,
		LocationID:     locationID,
		CategoryID:     categoryID,
		NomenclatureID: nomenclatureID,
	}

	if err := s.checkRelations(ctx, asset); err != nil {
		return nil, err
	}
	if err := s.checkSerial(ctx, req.SerialNumber, uuid.Nil); err != nil {
		return nil, err
	}

	if err := s.assets.Create(ctx, asset); err != nil {
		return nil, err
	}

	created, err := s.assets.FindByID(ctx, asset.ID)
	if err != nil {
		return nil, err
	}
	s.publish(EventAssetCreated, created)
	return created, nil
}

func (s *assetService) Update(ctx context.Context, id string, req UpdateAssetRequest) (*model.Asset, error) {
	assetID, err := parseID(id, assetNotFoundMsg)
	if err != nil {
		return nil, err
	}
	asset, err := s.assets.FindByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound(assetNotFoundMsg)
		}
		return nil, err
	}
	oldSerial := asset.SerialNumber

	if req.Status != nil {
		if !model.ValidAssetStatus(*req.Status) {
			return nil, BadRequest("El estado debe ser uno de: active, in_repair, decommissioned")
		}
		asset.Status = *req.Status
	}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, BadRequest("El nombre no puede estar vacío")
		}
		asset.Name = *req.Name
	}
	if req.Description != nil {
		asset.Description = *req.Description
	}
	if req.SerialNumber != nil {
		if *req.SerialNumber == "" {
			return nil, BadRequest("El número de serie no puede estar vacío")
		}
		if err := s.checkSerial(ctx, *req.SerialNumber, asset.ID); err != nil {
			return nil, err
		}
		asset.SerialNumber = *req.SerialNumber
	}
	if req.Value != nil {
		if req.Value.IsNegative() {
			return nil, BadRequest("El valor debe ser positivo")
		}
		asset.Value = *req.Value
	}
	if req.PurchaseDate != nil {
		asset.PurchaseDate = *req.PurchaseDate
	}
	if req.ImageURL != nil {
		asset.ImageURL = *req.ImageURL
	}
	if req.AgentID != nil {
		asset.AgentID, err = parseOptionalID(req.AgentID, "El agente especificado no existe")
		if err != nil {
			return nil, err
		}
	}
	if req.LocationID != nil {
		asset.LocationID, err = parseOptionalID(req.LocationID, "La ubicación especificada no existe")
		if err != nil {
			return nil, err
		}
	}
	if req.CategoryID != nil {
		asset.CategoryID, err = parseOptionalID(req.CategoryID, "La categoría especificada no existe")
		if err != nil {
			return nil, err
		}
	}
	if req.NomenclatureID != nil {
		asset.NomenclatureID, err = parseOptionalID(req.NomenclatureID, "La nomenclatura especificada no existe")
		if err != nil {
			return nil, err
		}
	}

	if err := s.checkRelations(ctx, asset); err != nil {
		return nil, err
	}

	// Clear stale joined rows so Save does not resurrect old associations
	asset.Agent, asset.Location, asset.Category, asset.Nomenclature = nil, nil, nil, nil

	if err := s.assets.Update(ctx, asset); err != nil {
		return nil, err
	}

	s.invalidateScan(ctx, oldSerial)
	updated, err := s.assets.FindByID(ctx, asset.ID)
	if err != nil {
		return nil, err
	}
	s.publish(EventAssetUpdated, updated)
	return updated, nil
}

func (s *assetService) Delete(ctx context.Context, id string) error {
	assetID, err := parseID(id, assetNotFoundMsg)
	if err != nil {
		return err
	}
	asset, err := s.assets.FindByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound(assetNotFoundMsg)
		}
		return err
	}

	if err := s.assets.Delete(ctx, assetID); err != nil {
		return err
	}

	s.invalidateScan(ctx, asset.SerialNumber)
	s.publish(EventAssetDeleted, asset)
	return nil
}

func (s *assetService) GetByID(ctx context.Context, id string) (*model.Asset, error) {
	assetID, err := parseID(id, assetNotFoundMsg)
	if err != nil {
		return nil, err
	}
	asset, err := s.assets.FindByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound(assetNotFoundMsg)
		}
		return nil, err
	}
	return asset, nil
}

// GetBySerial serves the scan flow with a Redis read-through cache keyed by
// serial number. Cache entries are dropped whenever the asset changes.
func (s *assetService) GetBySerial(ctx context.Context, serial string) (*model.Asset, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, scanCacheKey(serial)).Bytes(); err == nil {
			var asset model.Asset
			if jsonErr := json.Unmarshal(cached, &asset); jsonErr == nil {
				return &asset, nil
			}
		}
	}

	asset, err := s.assets.FindBySerial(ctx, serial)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound(assetNotFoundMsg)
		}
		return nil, err
	}

	if s.rdb != nil {
		if payload, err := json.Marshal(asset); err == nil {
			if err := s.rdb.Set(ctx, scanCacheKey(serial), payload, scanCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Str("serial", serial).Msg("scan cache write failed")
			}
		}
	}
	return asset, nil
}

func (s *assetService) List(ctx context.Context, query ListAssetsQuery) ([]model.Asset, int64, error) {
	filter := repository.AssetFilter{}
	if query.Status != "" {
		if !model.ValidAssetStatus(query.Status) {
			return nil, 0, BadRequest("El estado debe ser uno de: active, in_repair, decommissioned")
		}
		filter.Status = query.Status
	}
	if query.AgentID != "" {
		agentID, err := uuid.Parse(query.AgentID)
		if err != nil {
			return nil, 0, BadRequest("El agente especificado no existe")
		}
		filter.AgentID = &agentID
	}

	offset := (query.Page - 1) * query.Limit
	return s.assets.List(ctx, filter, offset, query.Limit)
}

// CheckIn appends an inventory-history record and applies the reported
// status/value/location to the asset, both inside one transaction.
func (s *assetService) CheckIn(ctx context.Context, id string, recordedBy string, req CheckInRequest) (*model.Asset, error) {
	assetID, err := parseID(id, assetNotFoundMsg)
	if err != nil {
		return nil, err
	}
	if !model.ValidAssetStatus(req.Status) {
		return nil, BadRequest("El estado debe ser uno de: active, in_repair, decommissioned")
	}
	if req.Value.IsNegative() {
		return nil, BadRequest("El valor debe ser positivo")
	}
	locationID, err := parseOptionalID(req.LocationID, "La ubicación especificada no existe")
	if err != nil {
		return nil, err
	}

	var serial string
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		asset, err := s.assets.FindByID(txCtx, assetID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound(assetNotFoundMsg)
			}
			return err
		}

		if locationID != nil {
			if _, err := s.locations.FindByID(txCtx, *locationID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return BadRequest("La ubicación especificada no existe")
				}
				return err
			}
		}

		now := time.Now()
		record := &model.InventoryHistory{
			AssetID:      asset.ID,
			Year:         now.Year(),
			Date:         now,
			Status:       req.Status,
			Value:        req.Value,
			LocationID:   locationID,
			RecordedBy:   recordedBy,
			Observations: req.Observations,
		}
		if err := s.assets.CreateHistory(txCtx, record); err != nil {
			return err
		}

		asset.Status = req.Status
		asset.Value = req.Value
		if locationID != nil {
			asset.LocationID = locationID
		}
		asset.Agent, asset.Location, asset.Category, asset.Nomenclature = nil, nil, nil, nil
		serial = asset.SerialNumber
		return s.assets.Update(txCtx, asset)
	})
	if err != nil {
		return nil, err
	}

	s.invalidateScan(ctx, serial)
	updated, err := s.assets.FindByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	s.publish(EventAssetUpdated, updated)
	return updated, nil
}

func (s *assetService) History(ctx context.Context, id string) ([]model.InventoryHistory, error) {
	assetID, err := parseID(id, assetNotFoundMsg)
	if err != nil {
		return nil, err
	}
	if _, err := s.assets.FindByID(ctx, assetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound(assetNotFoundMsg)
		}
		return nil, err
	}
	return s.assets.ListHistory(ctx, assetID)
}
