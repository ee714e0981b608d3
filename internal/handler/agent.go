package handler

import (
	"net/http"

	"inventario/internal/service"
	"inventario/pkg/response"

	"github.com/gin-gonic/gin"
)

type AgentHandler struct {
	agentService service.AgentService
}

func NewAgentHandler(agentService service.AgentService) *AgentHandler {
	return &AgentHandler{agentService: agentService}
}

// RegisterRoutes binds the agent endpoints behind the auth middleware
func (h *AgentHandler) RegisterRoutes(router *gin.RouterGroup, auth gin.HandlerFunc) {
	agents := router.Group("/api/agents", auth)
	{
		agents.GET("", h.List)
		agents.GET("/:id", h.GetByID)
		agents.POST("", h.Create)
		agents.PUT("/:id", h.Update)
		agents.DELETE("/:id", h.Delete)
	}
}

// List returns every agent with its role joined
// @Summary      List agents
// @Tags         agents
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/agents [get]
func (h *AgentHandler) List(c *gin.Context) {
	agents, err := h.agentService.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, agents))
}

// GetByID returns one agent
// @Summary      Get agent
// @Tags         agents
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Agent ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/agents/{id} [get]
func (h *AgentHandler) GetByID(c *gin.Context) {
	agent, err := h.agentService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, agent))
}

// Create registers a new agent
// @Summary      Create agent
// @Tags         agents
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateAgentRequest  true  "Agent payload"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /api/agents [post]
func (h *AgentHandler) Create(c *gin.Context) {
	var req service.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	agent, err := h.agentService.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, agent))
}

// Update applies a partial update to an agent
// @Summary      Update agent
// @Tags         agents
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Agent ID"
// @Param        payload  body      service.UpdateAgentRequest  true  "Update payload"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/agents/{id} [put]
func (h *AgentHandler) Update(c *gin.Context) {
	var req service.UpdateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	agent, err := h.agentService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, agent))
}

// Delete removes an agent without assigned assets
// @Summary      Delete agent
// @Tags         agents
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Agent ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/agents/{id} [delete]
func (h *AgentHandler) Delete(c *gin.Context) {
	if err := h.agentService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Agente eliminado exitosamente"}))
}
