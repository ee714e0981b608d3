package handler

import (
	"net/http"

	"inventario/internal/middleware"
	"inventario/internal/service"
	"inventario/pkg/pagination"
	"inventario/pkg/response"

	"github.com/gin-gonic/gin"
)

type AssetHandler struct {
	assetService service.AssetService
}

func NewAssetHandler(assetService service.AssetService) *AssetHandler {
	return &AssetHandler{assetService: assetService}
}

// RegisterRoutes binds asset CRUD, the scan lookup and the check-in flow
func (h *AssetHandler) RegisterRoutes(router *gin.RouterGroup, auth gin.HandlerFunc) {
	assets := router.Group("/api/assets", auth)
	{
		assets.GET("", h.List)
		assets.GET("/:id", h.GetByID)
		assets.POST("", h.Create)
		assets.PUT("/:id", h.Update)
		assets.DELETE("/:id", h.Delete)
		assets.POST("/:id/checkin", h.CheckIn)
		assets.GET("/:id/history", h.History)
	}
	router.GET("/api/scan/:serial", auth, h.Scan)
}

// List returns assets filtered by status and agent, paginated
// @Summary      List assets
// @Tags         assets
// @Security     BearerAuth
// @Produce      json
// @Param        status    query     string  false  "Filter by status: active, in_repair, decommissioned"
// @Param        agent_id  query     string  false  "Filter by responsible agent"
// @Param        page      query     int     false  "Page number (default: 1)"
// @Param        limit     query     int     false  "Items per page (default: 20)"
// @Success      200       {object}  response.PaginatedResponse
// @Router       /api/assets [get]
func (h *AssetHandler) List(c *gin.Context) {
	params := pagination.Parse(c)
	query := service.ListAssetsQuery{
		Status:  c.Query("status"),
		AgentID: c.Query("agent_id"),
		Page:    params.Page,
		Limit:   params.Limit,
	}

	assets, total, err := h.assetService.List(c.Request.Context(), query)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, assets, params.Page, params.Limit, total))
}

// GetByID returns one asset with all relations joined
// @Summary      Get asset
// @Tags         assets
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Asset ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/assets/{id} [get]
func (h *AssetHandler) GetByID(c *gin.Context) {
	asset, err := h.assetService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, asset))
}

// Scan looks an asset up by serial number for the mobile QR flow
// @Summary      Scan asset by serial number
// @Tags         assets
// @Security     BearerAuth
// @Produce      json
// @Param        serial  path      string  true  "Serial number"
// @Success      200     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /api/scan/{serial} [get]
func (h *AssetHandler) Scan(c *gin.Context) {
	asset, err := h.assetService.GetBySerial(c.Request.Context(), c.Param("serial"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, asset))
}

// Create registers a new asset
// @Summary      Create asset
// @Tags         assets
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateAssetRequest  true  "Asset payload"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /api/assets [post]
func (h *AssetHandler) Create(c *gin.Context) {
	var req service.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	asset, err := h.assetService.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, asset))
}

// Update applies a partial update to an asset
// @Summary      Update asset
// @Tags         assets
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Asset ID"
// @Param        payload  body      service.UpdateAssetRequest  true  "Update payload"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/assets/{id} [put]
func (h *AssetHandler) Update(c *gin.Context) {
	var req service.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	asset, err := h.assetService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, asset))
}

// Delete removes an asset
// @Summary      Delete asset
// @Tags         assets
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Asset ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/assets/{id} [delete]
func (h *AssetHandler) Delete(c *gin.Context) {
	if err := h.assetService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Activo eliminado exitosamente"}))
}

// CheckIn records a field inventory check-in from the mobile flow
// @Summary      Check in asset
// @Tags         assets
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Asset ID"
// @Param        payload  body      service.CheckInRequest  true  "Check-in payload"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/assets/{id}/checkin [post]
func (h *AssetHandler) CheckIn(c *gin.Context) {
	var req service.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	recordedBy, _ := c.Get(middleware.CtxUserName)
	name, _ := recordedBy.(string)

	asset, err := h.assetService.CheckIn(c.Request.Context(), c.Param("id"), name, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, asset))
}

// History lists the check-in records of an asset, newest first
// @Summary      Asset check-in history
// @Tags         assets
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Asset ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/assets/{id}/history [get]
func (h *AssetHandler) History(c *gin.Context) {
	records, err := h.assetService.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, records))
}
