package handler

import (
	"context"
	"net/http"
	"testing"

	"inventario/internal/middleware"
	"inventario/internal/model"
	"inventario/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type stubAssetService struct {
	asset      *model.Asset
	err        error
	recordedBy string
	lastQuery  service.ListAssetsQuery
}

func (s *stubAssetService) Create(_ context.Context, _ service.CreateAssetRequest) (*model.Asset, error) {
	return s.asset, s.err
}

func (s *stubAssetService) Update(_ context.Context, _ string, _ service.UpdateAssetRequest) (*model.Asset, error) {
	return s.asset, s.err
}

func (s *stubAssetService) Delete(_ context.Context, _ string) error {
	return s.err
}

func (s *stubAssetService) GetByID(_ context.Context, _ string) (*model.Asset, error) {
	return s.asset, s.err
}

func (s *stubAssetService) GetBySerial(_ context.Context, _ string) (*model.Asset, error) {
	return s.asset, s.err
}

func (s *stubAssetService) List(_ context.Context, query service.ListAssetsQuery) ([]model.Asset, int64, error) {
	s.lastQuery = query
	if s.err != nil {
		return nil, 0, s.err
	}
	return []model.Asset{*s.asset}, 1, nil
}

func (s *stubAssetService) CheckIn(_ context.Context, _ string, recordedBy string, _ service.CheckInRequest) (*model.Asset, error) {
	s.recordedBy = recordedBy
	return s.asset, s.err
}

func (s *stubAssetService) History(_ context.Context, _ string) ([]model.InventoryHistory, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []model.InventoryHistory{}, nil
}

func sampleAsset() *model.Asset {
	return &model.Asset{
		ID:           uuid.New(),
		Name:         "Proyector",
		SerialNumber: "SN-400",
		Status:       model.AssetStatusActive,
		Value:        decimal.NewFromInt(1500),
	}
}

func newAssetRouter(svc service.AssetService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewAssetHandler(svc).RegisterRoutes(router.Group(""), middleware.RequireAuth(testSecret))
	return router
}

func TestScanReturnsAssetBySerial(t *testing.T) {
	svc := &stubAssetService{asset: sampleAsset()}
	router := newAssetRouter(svc)

	w := doRequest(router, http.MethodGet, "/api/scan/SN-400", "", authToken(t, "Ana"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "SN-400")
}

func TestScanUnknownSerialEnvelope(t *testing.T) {
	svc := &stubAssetService{err: service.NotFound("Activo no encontrado")}
	router := newAssetRouter(svc)

	w := doRequest(router, http.MethodGet, "/api/scan/SN-999", "", authToken(t, "Ana"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Activo no encontrado")
}

func TestCheckInTakesRecorderFromToken(t *testing.T) {
	svc := &stubAssetService{asset: sampleAsset()}
	router := newAssetRouter(svc)

	body := `{"status":"active","value":"1500","observations":"Sin novedades"}`
	w := doRequest(router, http.MethodPost, "/api/assets/"+uuid.NewString()+"/checkin", body, authToken(t, "Laura Ruiz"))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Laura Ruiz", svc.recordedBy)
}

func TestCheckInRejectsInvalidBody(t *testing.T) {
	svc := &stubAssetService{asset: sampleAsset()}
	router := newAssetRouter(svc)

	w := doRequest(router, http.MethodPost, "/api/assets/"+uuid.NewString()+"/checkin", `{}`, authToken(t, "Ana"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Cuerpo de la petición inválido")
	assert.Empty(t, svc.recordedBy)
}

func TestListAssetsForwardsFiltersAndPagination(t *testing.T) {
	svc := &stubAssetService{asset: sampleAsset()}
	router := newAssetRouter(svc)

	w := doRequest(router, http.MethodGet, "/api/assets?status=active&page=2&limit=5", "", authToken(t, "Ana"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "active", svc.lastQuery.Status)
	assert.Equal(t, 2, svc.lastQuery.Page)
	assert.Equal(t, 5, svc.lastQuery.Limit)
	assert.Contains(t, w.Body.String(), `"meta"`)
}
