package handler

import (
	"net/http"

	"inventario/internal/service"
	"inventario/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handlers for the reference catalogs. Same route shape for all four:
// GET /, GET /:id, POST /, PUT /:id, DELETE /:id under /api/<catalog>.

type LocationHandler struct {
	locationService service.LocationService
}

func NewLocationHandler(locationService service.LocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

func (h *LocationHandler) RegisterRoutes(router *gin.RouterGroup, auth gin.HandlerFunc) {
	locations := router.Group("/api/locations", auth)
	{
		locations.GET("", h.List)
		locations.GET("/:id", h.GetByID)
		locations.POST("", h.Create)
		locations.PUT("/:id", h.Update)
		locations.DELETE("/:id", h.Delete)
	}
}

// List returns every location
// @Summary      List locations
// @Tags         catalogs
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/locations [get]
func (h *LocationHandler) List(c *gin.Context) {
	locations, err := h.locationService.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, locations))
}

// GetByID returns one location
// @Summary      Get location
// @Tags         catalogs
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Location ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/locations/{id} [get]
func (h *LocationHandler) GetByID(c *gin.Context) {
	location, err := h.locationService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, location))
}

// Create adds a location
// @Summary      Create location
// @Tags         catalogs
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.CatalogRequest  true  "Location payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/locations [post]
func (h *LocationHandler) Create(c *gin.Context) {
	var req service.CatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	location, err := h.locationService.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, location))
}

// Update replaces a location's fields
// @Summary      Update location
// @Tags         catalogs
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string                  true  "Location ID"
// @Param        payload  body  service.CatalogRequest  true  "Location payload"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/locations/{id} [put]
func (h *LocationHandler) Update(c *gin.Context) {
	var req service.CatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	location, err := h.locationService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, location))
}

// Delete removes a location with no assets in it
// @Summary      Delete location
// @Tags         catalogs
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Location ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/locations/{id} [delete]
func (h *LocationHandler) Delete(c *gin.Context) {
	if err := h.locationService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Ubicación eliminada exitosamente"}))
}

type CategoryHandler struct {
	categoryService service.CategoryService
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) RegisterRoutes(router *gin.RouterGroup, auth gin.HandlerFunc) {
	categories := router.Group("/api/categories", auth)
	{
		categories.GET("", h.List)
		categories.GET("/:id", h.GetByID)
		categories.POST("", h.Create)
		categories.PUT("/:id", h.Update)
		categories.DELETE("/:id", h.Delete)
	}
}

// List returns every category
// @Summary      List categories
// @Tags         catalogs
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, categories))
}

// GetByID returns one category
// @Summary      Get category
// @Tags         catalogs
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Category ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *gin.Context) {
	category, err := h.categoryService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, category))
}

// Create adds a category
// @Summary      Create category
// @Tags         catalogs
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.CatalogRequest  true  "Category payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req service.CatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	category, err := h.categoryService.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, category))
}

// Update replaces a category's fields
// @Summary      Update category
// @Tags         catalogs
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string                  true  "Category ID"
// @Param        payload  body  service.CatalogRequest  true  "Category payload"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	var req service.CatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	category, err := h.categoryService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, category))
}

// Delete removes a category no asset references
// @Summary      Delete category
// @Tags         catalogs
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Category ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.categoryService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Categoría eliminada exitosamente"}))
}

type NomenclatureHandler struct {
	nomenclatureService service.NomenclatureService
}

func NewNomenclatureHandler(nomenclatureService service.NomenclatureService) *NomenclatureHandler {
	return &NomenclatureHandler{nomenclatureService: nomenclatureService}
}

func (h *NomenclatureHandler) RegisterRoutes(router *gin.RouterGroup, auth gin.HandlerFunc) {
	nomenclatures := router.Group("/api/nomenclatures", auth)
	{
		nomenclatures.GET("", h.List)
		nomenclatures.GET("/:id", h.GetByID)
		nomenclatures.POST("", h.Create)
		nomenclatures.PUT("/:id", h.Update)
		nomenclatures.DELETE("/:id", h.Delete)
	}
}

// List returns every nomenclature ordered by code
// @Summary      List nomenclatures
// @Tags         catalogs
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/nomenclatures [get]
func (h *NomenclatureHandler) List(c *gin.Context) {
	nomenclatures, err := h.nomenclatureService.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, nomenclatures))
}

// GetByID returns one nomenclature
// @Summary      Get nomenclature
// @Tags         catalogs
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Nomenclature ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/nomenclatures/{id} [get]
func (h *NomenclatureHandler) GetByID(c *gin.Context) {
	nomenclature, err := h.nomenclatureService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, nomenclature))
}

// Create adds a nomenclature with a unique code
// @Summary      Create nomenclature
// @Tags         catalogs
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.NomenclatureRequest  true  "Nomenclature payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/nomenclatures [post]
func (h *NomenclatureHandler) Create(c *gin.Context) {
	var req service.NomenclatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	nomenclature, err := h.nomenclatureService.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, nomenclature))
}

// Update replaces a nomenclature's fields
// @Summary      Update nomenclature
// @Tags         catalogs
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string                       true  "Nomenclature ID"
// @Param        payload  body  service.NomenclatureRequest  true  "Nomenclature payload"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/nomenclatures/{id} [put]
func (h *NomenclatureHandler) Update(c *gin.Context) {
	var req service.NomenclatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	nomenclature, err := h.nomenclatureService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, nomenclature))
}

// Delete removes a nomenclature no asset references
// @Summary      Delete nomenclature
// @Tags         catalogs
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Nomenclature ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/nomenclatures/{id} [delete]
func (h *NomenclatureHandler) Delete(c *gin.Context) {
	if err := h.nomenclatureService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Nomenclatura eliminada exitosamente"}))
}

type RoleHandler struct {
	roleService service.RoleService
}

func NewRoleHandler(roleService service.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

func (h *RoleHandler) RegisterRoutes(router *gin.RouterGroup, auth gin.HandlerFunc) {
	roles := router.Group("/api/roles", auth)
	{
		roles.GET("", h.List)
		roles.GET("/:id", h.GetByID)
		roles.POST("", h.Create)
		roles.PUT("/:id", h.Update)
		roles.DELETE("/:id", h.Delete)
	}
}

// List returns every agent role
// @Summary      List roles
// @Tags         catalogs
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/roles [get]
func (h *RoleHandler) List(c *gin.Context) {
	roles, err := h.roleService.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, roles))
}

// GetByID returns one role
// @Summary      Get role
// @Tags         catalogs
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Role ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/roles/{id} [get]
func (h *RoleHandler) GetByID(c *gin.Context) {
	role, err := h.roleService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, role))
}

// Create adds an agent role
// @Summary      Create role
// @Tags         catalogs
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.RoleRequest  true  "Role payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/roles [post]
func (h *RoleHandler) Create(c *gin.Context) {
	var req service.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	role, err := h.roleService.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, role))
}

// Update renames a role
// @Summary      Update role
// @Tags         catalogs
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string               true  "Role ID"
// @Param        payload  body  service.RoleRequest  true  "Role payload"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/roles/{id} [put]
func (h *RoleHandler) Update(c *gin.Context) {
	var req service.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	role, err := h.roleService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, role))
}

// Delete removes a role no agent holds
// @Summary      Delete role
// @Tags         catalogs
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Role ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/roles/{id} [delete]
func (h *RoleHandler) Delete(c *gin.Context) {
	if err := h.roleService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Rol eliminado exitosamente"}))
}
