package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"memberclub/internal/services"
	"memberclub/pkg/utils"
)

// MembershipController serves the tier and plan catalogs.
type MembershipController struct {
	catalogService services.CatalogServiceInterface
	logger         *zap.SugaredLogger
}

func NewMembershipController(catalogService services.CatalogServiceInterface, logger *zap.SugaredLogger) *MembershipController {
	return &MembershipController{
		catalogService: catalogService,
		logger:         logger,
	}
}

func (m *MembershipController) GetAllTiers(c *gin.Context) {
	tiers, err := m.catalogService.GetAllTiers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, m.logger, err)
		return
	}

	utils.RespondSuccess(c, tiers, "Tiers fetched successfully")
}

func (m *MembershipController) GetTierByName(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		utils.RespondError(c, http.StatusBadRequest, "Tier name is required")
		return
	}

	tier, err := m.catalogService.GetTierByName(c.Request.Context(), name)
	if err != nil {
		utils.HandleServiceError(c, m.logger, err)
		return
	}

	utils.RespondSuccess(c, tier, "Tier fetched successfully")
}

func (m *MembershipController) GetAllPlans(c *gin.Context) {
	plans, err := m.catalogService.GetAllPlans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, m.logger, err)
		return
	}

	utils.RespondSuccess(c, plans, "Plans fetched successfully")
}

func (m *MembershipController) GetActivePlans(c *gin.Context) {
	plans, err := m.catalogService.GetActivePlans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, m.logger, err)
		return
	}

	utils.RespondSuccess(c, plans, "Active plans fetched successfully")
}

func (m *MembershipController) GetGroupedPlans(c *gin.Context) {
	grouped, err := m.catalogService.GetGroupedPlans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, m.logger, err)
		return
	}

	utils.RespondSuccess(c, grouped, "Plans grouped by tier fetched successfully")
}

func (m *MembershipController) GetPlansByTier(c *gin.Context) {
	tierName := c.Param("tierName")
	if tierName == "" {
		utils.RespondError(c, http.StatusBadRequest, "Tier name is required")
		return
	}

	plans, err := m.catalogService.GetPlansByTier(c.Request.Context(), tierName)
	if err != nil {
		utils.HandleServiceError(c, m.logger, err)
		return
	}

	utils.RespondSuccess(c, plans, "Plans fetched successfully")
}

func (m *MembershipController) GetPlansByType(c *gin.Context) {
	planType := c.Param("type")
	if planType == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plan type is required")
		return
	}

	plans, err := m.catalogService.GetPlansByType(c.Request.Context(), planType)
	if err != nil {
		utils.HandleServiceError(c, m.logger, err)
		return
	}

	utils.RespondSuccess(c, plans, "Plans fetched successfully")
}

func (m *MembershipController) GetPlanByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	plan, err := m.catalogService.GetPlanByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, m.logger, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan fetched successfully")
}

// ComparePlans expects ?ids=1,2,3 and returns the selected plans side by side.
func (m *MembershipController) ComparePlans(c *gin.Context) {
	raw := c.Query("ids")
	if raw == "" {
		utils.RespondError(c, http.StatusBadRequest, "ids query parameter is required")
		return
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil || id < 1 {
			utils.RespondError(c, http.StatusBadRequest, "Invalid plan id: "+part)
			return
		}
		ids = append(ids, id)
	}

	plans, err := m.catalogService.ComparePlans(c.Request.Context(), ids)
	if err != nil {
		utils.HandleServiceError(c, m.logger, err)
		return
	}

	utils.RespondSuccess(c, plans, "Plans compared successfully")
}
