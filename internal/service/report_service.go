package service

import (
	"context"

	"inventario/internal/export"
	"inventario/internal/model"
	"inventario/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReportAsset struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	SerialNumber string          `json:"serial_number"`
	Status       string          `json:"status"`
	Value        decimal.Decimal `json:"value"`
}

// AgentAssetsGroup is one row group of the assets-by-agent report. A nil
// AgentID marks the bucket of assets without a responsible agent.
type AgentAssetsGroup struct {
	AgentID  *uuid.UUID    `json:"agent_id"`
	Name     string        `json:"name"`
	Lastname string        `json:"lastname"`
	Role     string        `json:"role"`
	Assets   []ReportAsset `json:"assets"`
}

// ReportService builds the assets-by-agent report and its exports
type ReportService interface {
	AssetsByAgent(ctx context.Context) ([]AgentAssetsGroup, error)
	AssetsByAgentPDF(ctx context.Context) ([]byte, error)
	AssetsByAgentCSV(ctx context.Context) ([]byte, error)
}

type reportService struct {
	agents repository.AgentRepository
	assets repository.AssetRepository
}

func NewReportService(agents repository.AgentRepository, assets repository.AssetRepository) ReportService {
	return &reportService{agents: agents, assets: assets}
}

func mapReportAssets(assets []model.Asset) []ReportAsset {
	result := make([]ReportAsset, 0, len(assets))
	for _, a := range assets {
		result = append(result, ReportAsset{
			ID:           a.ID,
			Name:         a.Name,
			SerialNumber: a.SerialNumber,
			Status:       a.Status,
			Value:        a.Value,
		})
	}
	return result
}

func (s *reportService) AssetsByAgent(ctx context.Context) ([]AgentAssetsGroup, error) {
	agents, err := s.agents.List(ctx)
	if err != nil {
		return nil, err
	}

	groups := make([]AgentAssetsGroup, 0, len(agents)+1)
	for _, agent := range agents {
		assets, err := s.assets.ListByAgent(ctx, &agent.ID)
		if err != nil {
			return nil, err
		}
		agentID := agent.ID
		groups = append(groups, AgentAssetsGroup{
			AgentID:  &agentID,
			Name:     agent.Name,
			Lastname: agent.Lastname,
			Role:     agent.Role.Name,
			Assets:   mapReportAssets(assets),
		})
	}

	unassigned, err := s.assets.ListByAgent(ctx, nil)
	if err != nil {
		return nil, err
	}
	if len(unassigned) > 0 {
		groups = append(groups, AgentAssetsGroup{
			Name:   "Sin asignar",
			Assets: mapReportAssets(unassigned),
		})
	}

	return groups, nil
}

func (s *reportService) flatten(groups []AgentAssetsGroup) []export.ReportRow {
	var rows []export.ReportRow
	for _, g := range groups {
		agent := g.Name
		if g.Lastname != "" {
			agent = g.Lastname + ", " + g.Name
		}
		for _, a := range g.Assets {
			rows = append(rows, export.ReportRow{
				Agent:        agent,
				Role:         g.Role,
				AssetName:    a.Name,
				SerialNumber: a.SerialNumber,
				Status:       a.Status,
				Value:        a.Value.StringFixed(2),
			})
		}
	}
	return rows
}

func (s *reportService) AssetsByAgentPDF(ctx context.Context) ([]byte, error) {
	groups, err := s.AssetsByAgent(ctx)
	if err != nil {
		return nil, err
	}
	return export.AssetsByAgentPDF(s.flatten(groups))
}

func (s *reportService) AssetsByAgentCSV(ctx context.Context) ([]byte, error) {
	groups, err := s.AssetsByAgent(ctx)
	if err != nil {
		return nil, err
	}
	return export.AssetsByAgentCSV(s.flatten(groups))
}
