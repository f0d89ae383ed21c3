package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"campusdesk/internal/application/analytics/usecases"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

type AnalyticsHandler struct {
	dashboardUC *usecases.GetDashboardStatsUseCase
	trendsUC    *usecases.GetIssueTrendsUseCase
	activityUC  *usecases.GetUserActivityUseCase
	logger      logger.Interface
}

func NewAnalyticsHandler(
	dashboardUC *usecases.GetDashboardStatsUseCase,
	trendsUC *usecases.GetIssueTrendsUseCase,
	activityUC *usecases.GetUserActivityUseCase,
	logger logger.Interface,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		dashboardUC: dashboardUC,
		trendsUC:    trendsUC,
		activityUC:  activityUC,
		logger:      logger,
	}
}

// Dashboard handles GET /admin/analytics/dashboard
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	snapshot, err := h.dashboardUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", snapshot)
}

// IssueTrends handles GET /admin/analytics/trends
func (h *AnalyticsHandler) IssueTrends(c *gin.Context) {
	points, err := h.trendsUC.Execute(c.Request.Context(), usecases.GetIssueTrendsQuery{
		Days: parseDays(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", points)
}

// UserActivity handles GET /admin/analytics/activity
func (h *AnalyticsHandler) UserActivity(c *gin.Context) {
	points, err := h.activityUC.Execute(c.Request.Context(), usecases.GetUserActivityQuery{
		Days: parseDays(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", points)
}

func parseDays(c *gin.Context) int {
	if raw := c.Query("days"); raw != "" {
		if days, err := strconv.Atoi(raw); err == nil && days > 0 {
			return days
		}
	}
	return 0
}
