package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	ErrCode string      `json:"errorCode,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// serviceErrorMapping pins each sentinel error to an HTTP status and a
// stable error code clients can branch on.
var serviceErrorMapping = []struct {
	err    error
	status int
	code   string
}{
	{ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
	{ErrTierNotFound, http.StatusNotFound, "TIER_NOT_FOUND"},
	{ErrPlanNotFound, http.StatusNotFound, "PLAN_NOT_FOUND"},
	{ErrSubscriptionNotFound, http.StatusNotFound, "SUBSCRIPTION_NOT_FOUND"},
	{ErrEmailExists, http.StatusConflict, "EMAIL_EXISTS"},
	{ErrActiveSubscriptionExists, http.StatusConflict, "ACTIVE_SUBSCRIPTION_EXISTS"},
	{ErrUserHasActiveSubscription, http.StatusConflict, "USER_HAS_ACTIVE_SUBSCRIPTION"},
	{ErrInvalidStatusTransition, http.StatusUnprocessableEntity, "INVALID_STATUS_TRANSITION"},
	{ErrInvalidSubscriptionStatus, http.StatusUnprocessableEntity, "INVALID_SUBSCRIPTION_STATUS"},
	{ErrInvalidUpgrade, http.StatusUnprocessableEntity, "INVALID_UPGRADE"},
	{ErrInvalidDowngrade, http.StatusUnprocessableEntity, "INVALID_DOWNGRADE"},
	{ErrInvalidUserID, http.StatusBadRequest, "INVALID_USER_ID"},
	{ErrInvalidPlanID, http.StatusBadRequest, "INVALID_PLAN_ID"},
	{ErrInvalidPlanType, http.StatusBadRequest, "INVALID_PLAN_TYPE"},
	{ErrInvalidUserStatus, http.StatusBadRequest, "INVALID_USER_STATUS"},
	{ErrInactivePlan, http.StatusBadRequest, "INACTIVE_PLAN"},
	{ErrInvalidPhone, http.StatusBadRequest, "INVALID_PHONE"},
	{ErrInvalidPincode, http.StatusBadRequest, "INVALID_PINCODE"},
}

func HandleServiceError(c *gin.Context, logger *zap.SugaredLogger, err error) {
	for _, m := range serviceErrorMapping {
		if errors.Is(err, m.err) {
			c.JSON(m.status, APIResponse{
				Status:  "error",
				Code:    m.status,
				Message: err.Error(),
				ErrCode: m.code,
				TraceID: traceID(c),
			})
			return
		}
	}

	logger.Errorw("unhandled service error", "error", err, "trace_id", traceID(c))
	c.JSON(http.StatusInternalServerError, APIResponse{
		Status:  "error",
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
		ErrCode: "INTERNAL_ERROR",
		TraceID: traceID(c),
	})
}
