package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"memberclub/internal/models/request_models"
	"memberclub/internal/services"
	"memberclub/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
	logger      *zap.SugaredLogger
}

func NewUserController(userService services.UserServiceInterface, logger *zap.SugaredLogger) *UserController {
	return &UserController{
		userService: userService,
		logger:      logger,
	}
}

func (u *UserController) CreateUser(c *gin.Context) {
	var req request_models.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := u.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, u.logger, err)
		return
	}

	utils.RespondCreated(c, user, "User created successfully")
}

func (u *UserController) GetUserByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := u.userService.GetUserByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, u.logger, err)
		return
	}

	utils.RespondSuccess(c, user, "User fetched successfully")
}

func (u *UserController) GetUserByEmail(c *gin.Context) {
	email := c.Param("email")
	if email == "" {
		utils.RespondError(c, http.StatusBadRequest, "Email is required")
		return
	}

	user, err := u.userService.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		utils.HandleServiceError(c, u.logger, err)
		return
	}

	utils.RespondSuccess(c, user, "User fetched successfully")
}

func (u *UserController) GetAllUsers(c *gin.Context) {
	users, err := u.userService.GetAllUsers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, u.logger, err)
		return
	}

	utils.RespondSuccess(c, users, "Users fetched successfully")
}

func (u *UserController) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request_models.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := u.userService.UpdateUser(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, u.logger, err)
		return
	}

	utils.RespondSuccess(c, user, "User updated successfully")
}

func (u *UserController) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := u.userService.DeleteUser(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, u.logger, err)
		return
	}

	utils.RespondSuccess(c, nil, "User deleted successfully")
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid "+name+" parameter")
		return 0, false
	}
	return id, true
}
