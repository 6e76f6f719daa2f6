package maintenance

import (
	"errors"
	"net/http"
	"strconv"

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/maintenance", h.List)
	rg.GET("/maintenance/stats/daily", h.DailyStats)
	rg.GET("/maintenance/stats/regions", h.StatsByRegion)

	admin := rg.Group("/", middleware.AdminOnly())
	{
		admin.POST("/maintenance", h.RecordEvent)
	}
}

func (h *Handler) RecordEvent(c *gin.Context) {
	var req RecordEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Станция и тип работ обязательны")
		return
	}
	userLabel := c.GetString("user_label")
	if err := h.service.RecordEvent(c.Request.Context(), req, userLabel); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"recorded": len(req.Types)})
}

func (h *Handler) List(c *gin.Context) {
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
	rows, err := h.service.RecordsFor(c.Request.Context(), f)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"records": rows, "total": len(rows)})
}

func (h *Handler) DailyStats(c *gin.Context) {
	stats, err := h.service.DailyStats(c.Request.Context(), c.Query("date"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) StatsByRegion(c *gin.Context) {
	stats, err := h.service.StatsByRegion(c.Request.Context(), c.Query("date"), c.Query("region"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"regions": stats})
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrUnknownType):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Station not found")
	case errors.Is(err, database.ErrStoreUnavailable):
		response.Error(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Database unavailable, try again")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
