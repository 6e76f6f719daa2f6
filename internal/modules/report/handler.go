package report

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"radioreg/internal/database"
	"radioreg/internal/middleware"
	"radioreg/internal/pkg/response"
	"radioreg/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the reporting endpoints. Dashboards are open to
// every authenticated role; file exports are admin-only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reports/summary", h.Summary)
	rg.GET("/reports/stations", h.Stations)

	admin := rg.Group("/", middleware.AdminOnly())
	{
		admin.GET("/reports/stations/export", h.ExportStations)
		admin.GET("/reports/maintenance/export", h.ExportMaintenance)
	}
}

func (h *Handler) Summary(c *gin.Context) {
	sum, err := h.service.Summary(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sum)
}

func (h *Handler) Stations(c *gin.Context) {
	rows, err := h.service.Stations(c.Request.Context(), c.Query("region"), c.Query("status"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"stations": rows, "total": len(rows)})
}

// ExportStations streams the filtered listing as a file. The format
// query selects csv (default) or xlsx.
func (h *Handler) ExportStations(c *gin.Context) {
	region := c.Query("region")
	status := c.Query("status")
	stamp := time.Now().Format("2006-01-02")

	switch c.DefaultQuery("format", "csv") {
	case "csv":
		data, err := h.service.ExportStationsCSV(c.Request.Context(), region, status)
		if err != nil {
			handleError(c, err)
			return
		}
		sendFile(c, fmt.Sprintf("stations_%s.csv", stamp), "text/csv; charset=utf-8", data)
	case "xlsx":
		data, err := h.service.ExportStationsXLSX(c.Request.Context(), region, status)
		if err != nil {
			handleError(c, err)
			return
		}
		sendFile(c, fmt.Sprintf("stations_%s.xlsx", stamp),
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	default:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unsupported export format")
	}
}

func (h *Handler) ExportMaintenance(c *gin.Context) {
	f := repository.MaintenanceFilters{
		Date:   c.Query("date"),
		Region: c.Query("region"),
	}
	if raw := c.Query("station_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid station ID")
			return
		}
		f.StationID = id
	}

	data, err := h.service.ExportMaintenancePDF(c.Request.Context(), f)
	if err != nil {
		handleError(c, err)
		return
	}
	sendFile(c, fmt.Sprintf("maintenance_%s.pdf", time.Now().Format("2006-01-02")), "application/pdf", data)
}

func sendFile(c *gin.Context, name, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, contentType, data)
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, database.ErrStoreUnavailable):
		response.Error(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Database unavailable, try again")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
