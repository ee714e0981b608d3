package handler

import (
	"net/http"
	"time"

	"inventario/internal/service"
	"inventario/pkg/response"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) RegisterRoutes(router *gin.RouterGroup, auth gin.HandlerFunc) {
	reports := router.Group("/api/reports", auth)
	{
		reports.GET("/assets-by-agent", h.AssetsByAgent)
		reports.GET("/assets-by-agent/pdf", h.AssetsByAgentPDF)
		reports.GET("/assets-by-agent/csv", h.AssetsByAgentCSV)
	}
}

// AssetsByAgent returns every agent with its assigned assets, plus an
// unassigned bucket
// @Summary      Assets grouped by agent
// @Tags         reports
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/reports/assets-by-agent [get]
func (h *ReportHandler) AssetsByAgent(c *gin.Context) {
	report, err := h.reportService.AssetsByAgent(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, report))
}

// AssetsByAgentPDF downloads the report as PDF
// @Summary      Assets-by-agent report as PDF
// @Tags         reports
// @Security     BearerAuth
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/assets-by-agent/pdf [get]
func (h *ReportHandler) AssetsByAgentPDF(c *gin.Context) {
	pdf, err := h.reportService.AssetsByAgentPDF(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	filename := "activos_por_agente_" + time.Now().Format("2006-01-02") + ".pdf"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// AssetsByAgentCSV downloads the report as CSV
// @Summary      Assets-by-agent report as CSV
// @Tags         reports
// @Security     BearerAuth
// @Produce      text/csv
// @Success      200  {file}  binary
// @Router       /api/reports/assets-by-agent/csv [get]
func (h *ReportHandler) AssetsByAgentCSV(c *gin.Context) {
	csvData, err := h.reportService.AssetsByAgentCSV(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	filename := "activos_por_agente_" + time.Now().Format("2006-01-02") + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", csvData)
}
