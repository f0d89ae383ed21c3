package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"campusdesk/internal/application/notification/usecases"
	"campusdesk/internal/shared/constants"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

type NotificationHandler struct {
	listUC        *usecases.ListNotificationsUseCase
	recentUC      *usecases.GetRecentUseCase
	unreadCountUC *usecases.GetUnreadCountUseCase
	markReadUC    *usecases.MarkAsReadUseCase
	markAllUC     *usecases.MarkAllAsReadUseCase
	logger        logger.Interface
}

func NewNotificationHandler(
	listUC *usecases.ListNotificationsUseCase,
	recentUC *usecases.GetRecentUseCase,
	unreadCountUC *usecases.GetUnreadCountUseCase,
	markReadUC *usecases.MarkAsReadUseCase,
	markAllUC *usecases.MarkAllAsReadUseCase,
	logger logger.Interface,
) *NotificationHandler {
	return &NotificationHandler{
		listUC:        listUC,
		recentUC:      recentUC,
		unreadCountUC: unreadCountUC,
		markReadUC:    markReadUC,
		markAllUC:     markAllUC,
		logger:        logger,
	}
}

// List handles GET /notifications
func (h *NotificationHandler) List(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	items, total, err := h.listUC.Execute(c.Request.Context(), usecases.ListNotificationsQuery{
		RecipientID: c.GetUint(constants.ContextKeyUserID),
		Page:        page,
		PageSize:    pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, page, pageSize)
}

// Recent handles GET /notifications/recent
func (h *NotificationHandler) Recent(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	items, err := h.recentUC.Execute(c.Request.Context(), usecases.GetRecentQuery{
		RecipientID: c.GetUint(constants.ContextKeyUserID),
		Limit:       limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// UnreadCount handles GET /notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.unreadCountUC.Execute(c.Request.Context(), c.GetUint(constants.ContextKeyUserID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"unread_count": count})
}

// MarkAsRead handles POST /notifications/:id/read
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	notificationID, err := utils.ParseUintParam(c, "id", "notification")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.markReadUC.Execute(c.Request.Context(), usecases.MarkAsReadCommand{
		NotificationID: notificationID,
		RecipientID:    c.GetUint(constants.ContextKeyUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", nil)
}

// MarkAllAsRead handles POST /notifications/read-all
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	if err := h.markAllUC.Execute(c.Request.Context(), c.GetUint(constants.ContextKeyUserID)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "All notifications marked as read", nil)
}
