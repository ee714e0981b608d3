package handler

import (
	"errors"
	"net/http"

	"inventario/internal/service"
	"inventario/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// fail maps service errors to their HTTP status. Anything that is not a
// typed *service.APIError is logged and answered as a generic 500.
func fail(c *gin.Context, err error) {
	var apiErr *service.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, response.Error(apiErr.Status, apiErr.Message))
		return
	}
	log.Error().
		Str("path", c.FullPath()).
		Str("method", c.Request.Method).
		Err(err).
		Msg("unhandled error")
	c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Error interno del servidor"))
}

// badRequest answers a binding/validation failure
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Cuerpo de la petición inválido: "+err.Error()))
}
