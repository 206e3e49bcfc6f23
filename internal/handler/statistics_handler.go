package handler

import (
	"net/http"
	"time"

	"contracting-cms/internal/middleware"
	"contracting-cms/internal/permission"
	"contracting-cms/internal/service"
	"contracting-cms/pkg/response"

	"github.com/gin-gonic/gin"
)

type StatisticsHandler struct {
	statisticsService service.StatisticsService
	gate              middleware.PermissionChecker
}

func NewStatisticsHandler(statisticsService service.StatisticsService, gate middleware.PermissionChecker) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService, gate: gate}
}

func (h *StatisticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	view := permission.Key(permission.Settings, permission.ActionView)
	router.GET("/api/statistics", middleware.RequirePermission(h.gate, view), h.GetStatistics)
}

// @Summary      Get Dashboard Statistics
// @Description  Content totals per type plus audit activity bounded by time
// @Tags         statistics
// @Produce      json
// @Param        start_date query string false "Start Date (RFC3339), defaults to the first of the month"
// @Param        end_date   query string false "End Date (RFC3339), defaults to now"
// @Success      200 {object} response.Response{data=model.StatisticsResponse}
// @Failure      400 {object} response.Response "Invalid date format"
// @Failure      403 {object} response.Response
// @Security     BearerAuth
// @Router       /api/statistics [get]
func (h *StatisticsHandler) GetStatistics(c *gin.Context) {
	now := time.Now()
	startDate := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	endDate := now

	if v := c.Query("start_date"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "invalid start_date format, expected RFC3339"))
			return
		}
		startDate = t
	}
	if v := c.Query("end_date"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "invalid end_date format, expected RFC3339"))
			return
		}
		endDate = t
	}

	stats, err := h.statisticsService.GetStatistics(c.Request.Context(), startDate, endDate)
	if err != nil {
		writeQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, stats))
}
