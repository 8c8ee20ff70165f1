package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"memberclub/internal/services"
	"memberclub/pkg/utils"
)

type AnalyticsController struct {
	analyticsService services.AnalyticsServiceInterface
	logger           *zap.SugaredLogger
}

func NewAnalyticsController(analyticsService services.AnalyticsServiceInterface, logger *zap.SugaredLogger) *AnalyticsController {
	return &AnalyticsController{
		analyticsService: analyticsService,
		logger:           logger,
	}
}

func (a *AnalyticsController) GetAnalytics(c *gin.Context) {
	analytics, err := a.analyticsService.GetAnalytics(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, a.logger, err)
		return
	}

	utils.RespondSuccess(c, analytics, "Analytics generated successfully")
}

func (a *AnalyticsController) GetHealth(c *gin.Context) {
	health, err := a.analyticsService.GetHealth(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, a.logger, err)
		return
	}

	utils.RespondSuccess(c, health, "System health retrieved")
}
