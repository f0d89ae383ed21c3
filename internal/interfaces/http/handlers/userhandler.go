package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusdesk/internal/application/user/usecases"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

type UserHandler struct {
	listUsersUC   usecases.ListUsersExecutor
	listFacultyUC usecases.ListFacultyExecutor
	logger        logger.Interface
}

func NewUserHandler(
	listUsersUC usecases.ListUsersExecutor,
	listFacultyUC usecases.ListFacultyExecutor,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		listUsersUC:   listUsersUC,
		listFacultyUC: listFacultyUC,
		logger:        logger,
	}
}

// ListUsers handles GET /admin/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	users, total, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersQuery{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, users, total, page, pageSize)
}

// ListFaculty handles GET /users/faculty
func (h *UserHandler) ListFaculty(c *gin.Context) {
	faculty, err := h.listFacultyUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", faculty)
}
