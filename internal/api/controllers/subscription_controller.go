package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"memberclub/internal/models/request_models"
	"memberclub/internal/services"
	"memberclub/pkg/utils"
)

type SubscriptionController struct {
	subscriptionService services.SubscriptionServiceInterface
	logger              *zap.SugaredLogger
}

func NewSubscriptionController(subscriptionService services.SubscriptionServiceInterface, logger *zap.SugaredLogger) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
		logger:              logger,
	}
}

func (s *SubscriptionController) CreateSubscription(c *gin.Context) {
	var req request_models.SubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	sub, err := s.subscriptionService.CreateSubscription(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, s.logger, err)
		return
	}

	utils.RespondCreated(c, sub, "Subscription created successfully")
}

func (s *SubscriptionController) GetAllSubscriptions(c *gin.Context) {
	subs, err := s.subscriptionService.GetAllSubscriptions(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, s.logger, err)
		return
	}

	utils.RespondSuccess(c, subs, "Subscriptions fetched successfully")
}

func (s *SubscriptionController) GetSubscriptionByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sub, err := s.subscriptionService.GetSubscriptionByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, s.logger, err)
		return
	}

	utils.RespondSuccess(c, sub, "Subscription fetched successfully")
}

func (s *SubscriptionController) UpdateSubscription(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request_models.SubscriptionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	sub, err := s.subscriptionService.UpdateSubscription(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, s.logger, err)
		return
	}

	utils.RespondSuccess(c, sub, "Subscription updated successfully")
}

func (s *SubscriptionController) CancelSubscription(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request_models.CancelSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	sub, err := s.subscriptionService.CancelSubscription(c.Request.Context(), id, req.Reason)
	if err != nil {
		utils.HandleServiceError(c, s.logger, err)
		return
	}

	utils.RespondSuccess(c, sub, "Subscription cancelled successfully")
}

func (s *SubscriptionController) RenewSubscription(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sub, err := s.subscriptionService.RenewSubscription(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, s.logger, err)
		return
	}

	utils.RespondSuccess(c, sub, "Subscription renewed successfully")
}

func (s *SubscriptionController) UpgradeSubscription(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request_models.PlanChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	sub, err := s.subscriptionService.UpgradeSubscription(c.Request.Context(), id, req.NewPlanID)
	if err != nil {
		utils.HandleServiceError(c, s.logger, err)
		return
	}

	utils.RespondSuccess(c, sub, "Subscription upgraded successfully")
}

func (s *SubscriptionController) DowngradeSubscription(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request_models.PlanChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	sub, err := s.subscriptionService.DowngradeSubscription(c.Request.Context(), id, req.NewPlanID)
	if err != nil {
		utils.HandleServiceError(c, s.logger, err)
		return
	}

	utils.RespondSuccess(c, sub, "Subscription downgraded successfully")
}

func (s *SubscriptionController) GetUserSubscriptions(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	subs, err := s.subscriptionService.GetUserSubscriptions(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, s.logger, err)
		return
	}

	utils.RespondSuccess(c, subs, "User subscriptions fetched successfully")
}

func (s *SubscriptionController) GetActiveSubscription(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	sub, err := s.subscriptionService.GetActiveSubscription(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, s.logger, err)
		return
	}

	utils.RespondSuccess(c, sub, "Active subscription fetched successfully")
}

// ProcessExpired and ProcessRenewals trigger the batch sweeps; scheduling
// them (cron, external trigger) is deliberately left outside the service.
func (s *SubscriptionController) ProcessExpired(c *gin.Context) {
	count, err := s.subscriptionService.ProcessExpiredSubscriptions(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, s.logger, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"processed": count}, "Expired subscriptions processed")
}

func (s *SubscriptionController) ProcessRenewals(c *gin.Context) {
	count, err := s.subscriptionService.ProcessRenewals(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, s.logger, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"processed": count}, "Subscription renewals processed")
}
