package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusdesk/internal/application/realtime/usecases"
	"campusdesk/internal/shared/constants"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

// RealtimeHandler serves the REST view of presence data. The write
// path for presence and typing lives on the WebSocket surface.
type RealtimeHandler struct {
	onlineUsersUC *usecases.ListOnlineUsersUseCase
	viewersUC     *usecases.ListViewersUseCase
	typingUC      *usecases.ListTypingUseCase
	setTypingUC   *usecases.SetTypingUseCase
	logger        logger.Interface
}

func NewRealtimeHandler(
	onlineUsersUC *usecases.ListOnlineUsersUseCase,
	viewersUC *usecases.ListViewersUseCase,
	typingUC *usecases.ListTypingUseCase,
	setTypingUC *usecases.SetTypingUseCase,
	logger logger.Interface,
) *RealtimeHandler {
	return &RealtimeHandler{
		onlineUsersUC: onlineUsersUC,
		viewersUC:     viewersUC,
		typingUC:      typingUC,
		setTypingUC:   setTypingUC,
		logger:        logger,
	}
}

// OnlineUsers handles GET /realtime/online-users
func (h *RealtimeHandler) OnlineUsers(c *gin.Context) {
	users, err := h.onlineUsersUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", users)
}

// Viewers handles GET /realtime/issues/:id/viewers
func (h *RealtimeHandler) Viewers(c *gin.Context) {
	issueID, err := utils.ParseUintParam(c, "id", "issue")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	viewers, err := h.viewersUC.Execute(c.Request.Context(), issueID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", viewers)
}

// Typing handles GET /realtime/issues/:id/typing
func (h *RealtimeHandler) Typing(c *gin.Context) {
	issueID, err := utils.ParseUintParam(c, "id", "issue")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	users, err := h.typingUC.Execute(c.Request.Context(), usecases.ListTypingQuery{
		IssueID:       issueID,
		ExcludeUserID: c.GetUint(constants.ContextKeyUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", users)
}

type SetTypingRequest struct {
	IsTyping bool `json:"is_typing"`
}

// SetTyping handles POST /realtime/issues/:id/typing as a fallback for
// clients without a WebSocket connection.
func (h *RealtimeHandler) SetTyping(c *gin.Context) {
	issueID, err := utils.ParseUintParam(c, "id", "issue")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetTypingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	err = h.setTypingUC.Execute(c.Request.Context(), usecases.SetTypingCommand{
		IssueID:  issueID,
		UserID:   c.GetUint(constants.ContextKeyUserID),
		IsTyping: req.IsTyping,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", nil)
}
