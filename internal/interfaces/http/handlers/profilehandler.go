package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusdesk/internal/application/user/usecases"
	"campusdesk/internal/shared/constants"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

type ProfileHandler struct {
	getProfileUC     usecases.GetProfileExecutor
	updateProfileUC  usecases.UpdateProfileExecutor
	changePasswordUC usecases.ChangePasswordExecutor
	logger           logger.Interface
}

func NewProfileHandler(
	getProfileUC usecases.GetProfileExecutor,
	updateProfileUC usecases.UpdateProfileExecutor,
	changePasswordUC usecases.ChangePasswordExecutor,
	logger logger.Interface,
) *ProfileHandler {
	return &ProfileHandler{
		getProfileUC:     getProfileUC,
		updateProfileUC:  updateProfileUC,
		changePasswordUC: changePasswordUC,
		logger:           logger,
	}
}

// GetProfile handles GET /profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	result, err := h.getProfileUC.Execute(c.Request.Context(), usecases.GetProfileQuery{
		UserID: c.GetUint(constants.ContextKeyUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

type UpdateProfileRequest struct {
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Department string `json:"department"`
}

// UpdateProfile handles PUT /profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateProfileUC.Execute(c.Request.Context(), usecases.UpdateProfileCommand{
		UserID:     c.GetUint(constants.ContextKeyUserID),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Department: req.Department,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", result)
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// ChangePassword handles POST /profile/password
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.changePasswordUC.Execute(c.Request.Context(), usecases.ChangePasswordCommand{
		UserID:          c.GetUint(constants.ContextKeyUserID),
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password changed successfully", nil)
}
