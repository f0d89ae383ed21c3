package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"campusdesk/internal/application/audit/usecases"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

type AuditHandler struct {
	listUC *usecases.ListEntriesUseCase
	logger logger.Interface
}

func NewAuditHandler(listUC *usecases.ListEntriesUseCase, logger logger.Interface) *AuditHandler {
	return &AuditHandler{
		listUC: listUC,
		logger: logger,
	}
}

// List handles GET /admin/audit-logs
func (h *AuditHandler) List(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	query := usecases.ListEntriesQuery{
		Action:     c.Query("action"),
		TargetKind: c.Query("target_kind"),
		Search:     c.Query("search"),
		Page:       page,
		PageSize:   pageSize,
	}

	if raw := c.Query("actor_id"); raw != "" {
		if actorID, err := strconv.ParseUint(raw, 10, 64); err == nil && actorID > 0 {
			id := uint(actorID)
			query.ActorID = &id
		}
	}
	if raw := c.Query("from"); raw != "" {
		if from, err := time.Parse(time.RFC3339, raw); err == nil {
			query.From = &from
		}
	}
	if raw := c.Query("to"); raw != "" {
		if to, err := time.Parse(time.RFC3339, raw); err == nil {
			query.To = &to
		}
	}

	items, total, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, page, pageSize)
}
