package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusdesk/internal/application/issue/usecases"
	"campusdesk/internal/shared/constants"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

type IssueHandler struct {
	createUC     usecases.CreateIssueExecutor
	getUC        usecases.GetIssueExecutor
	listUC       usecases.ListIssuesExecutor
	updateUC     usecases.UpdateIssueExecutor
	deleteUC     usecases.DeleteIssueExecutor
	assignUC     usecases.AssignIssueExecutor
	changeUC     usecases.ChangeStatusExecutor
	resolveUC    usecases.ResolveIssueExecutor
	escalateUC   usecases.EscalateIssueExecutor
	historyUC    usecases.GetStatusHistoryExecutor
	addCommentUC usecases.AddCommentExecutor
	commentsUC   usecases.ListCommentsExecutor
	logger       logger.Interface
}

func NewIssueHandler(
	createUC usecases.CreateIssueExecutor,
	getUC usecases.GetIssueExecutor,
	listUC usecases.ListIssuesExecutor,
	updateUC usecases.UpdateIssueExecutor,
	deleteUC usecases.DeleteIssueExecutor,
	assignUC usecases.AssignIssueExecutor,
	changeUC usecases.ChangeStatusExecutor,
	resolveUC usecases.ResolveIssueExecutor,
	escalateUC usecases.EscalateIssueExecutor,
	historyUC usecases.GetStatusHistoryExecutor,
	addCommentUC usecases.AddCommentExecutor,
	commentsUC usecases.ListCommentsExecutor,
	logger logger.Interface,
) *IssueHandler {
	return &IssueHandler{
		createUC:     createUC,
		getUC:        getUC,
		listUC:       listUC,
		updateUC:     updateUC,
		deleteUC:     deleteUC,
		assignUC:     assignUC,
		changeUC:     changeUC,
		resolveUC:    resolveUC,
		escalateUC:   escalateUC,
		historyUC:    historyUC,
		addCommentUC: addCommentUC,
		commentsUC:   commentsUC,
		logger:       logger,
	}
}

// actorFrom builds the caller identity placed by the auth middleware.
func actorFrom(c *gin.Context) usecases.Actor {
	return usecases.Actor{
		ID:   c.GetUint(constants.ContextKeyUserID),
		Role: c.GetString(constants.ContextKeyUserRole),
		IP:   c.ClientIP(),
	}
}

type CreateIssueRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Priority    string `json:"priority"`
}

// Create handles POST /issues
func (h *IssueHandler) Create(c *gin.Context) {
	var req CreateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create issue request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateIssueCommand{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		SubmitterID: c.GetUint(constants.ContextKeyUserID),
		SubmitterIP: c.ClientIP(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Issue submitted successfully")
}

// Get handles GET /issues/:id
func (h *IssueHandler) Get(c *gin.Context) {
	issueID, err := utils.ParseUintParam(c, "id", "issue")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetIssueQuery{
		IssueID: issueID,
		Actor:   actorFrom(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List handles GET /issues
func (h *IssueHandler) List(c *gin.Context) {
	h.list(c, usecases.ScopeVisible)
}

// ListMine handles GET /issues/mine
func (h *IssueHandler) ListMine(c *gin.Context) {
	h.list(c, usecases.ScopeMine)
}

// ListAssigned handles GET /issues/assigned
func (h *IssueHandler) ListAssigned(c *gin.Context) {
	h.list(c, usecases.ScopeAssigned)
}

func (h *IssueHandler) list(c *gin.Context, scope usecases.ListScope) {
	page, pageSize := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListIssuesQuery{
		Actor:    actorFrom(c),
		Scope:    scope,
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

type UpdateIssueRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Priority    string `json:"priority" binding:"required"`
}

// Update handles PUT /issues/:id
func (h *IssueHandler) Update(c *gin.Context) {
	issueID, err := utils.ParseUintParam(c, "id", "issue")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateIssueCommand{
		IssueID:     issueID,
		Actor:       actorFrom(c),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Issue updated successfully", result)
}

// Delete handles DELETE /issues/:id
func (h *IssueHandler) Delete(c *gin.Context) {
	issueID, err := utils.ParseUintParam(c, "id", "issue")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.deleteUC.Execute(c.Request.Context(), usecases.DeleteIssueCommand{
		IssueID: issueID,
		Actor:   actorFrom(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

type AssignIssueRequest struct {
	// AssigneeID null clears the current assignment.
	AssigneeID *uint  `json:"assignee_id"`
	Notes      string `json:"notes"`
}

// Assign handles POST /issues/:id/assign
func (h *IssueHandler) Assign(c *gin.Context) {
	issueID, err := utils.ParseUintParam(c, "id", "issue")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.assignUC.Execute(c.Request.Context(), usecases.AssignIssueCommand{
		IssueID:    issueID,
		Actor:      actorFrom(c),
		AssigneeID: req.AssigneeID,
		Notes:      req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Issue assignment updated", result)
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

// ChangeStatus handles PATCH /issues/:id/status
func (h *IssueHandler) ChangeStatus(c *gin.Context) {
	issueID, err := utils.ParseUintParam(c, "id", "issue")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.changeUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		IssueID: issueID,
		Actor:   actorFrom(c),
		Status:  req.Status,
		Notes:   req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Status updated", result)
}

type ResolutionRequest struct {
	Notes string `json:"notes"`
}

// Resolve handles POST /issues/:id/resolve
func (h *IssueHandler) Resolve(c *gin.Context) {
	issueID, err := utils.ParseUintParam(c, "id", "issue")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ResolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.resolveUC.Execute(c.Request.Context(), usecases.ResolveIssueCommand{
		IssueID: issueID,
		Actor:   actorFrom(c),
		Notes:   req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Issue resolved", result)
}

// Escalate handles POST /issues/:id/escalate
func (h *IssueHandler) Escalate(c *gin.Context) {
	issueID, err := utils.ParseUintParam(c, "id", "issue")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ResolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.escalateUC.Execute(c.Request.Context(), usecases.EscalateIssueCommand{
		IssueID: issueID,
		Actor:   actorFrom(c),
		Notes:   req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Issue escalated", result)
}

// StatusHistory handles GET /issues/:id/statuses
func (h *IssueHandler) StatusHistory(c *gin.Context) {
	issueID, err := utils.ParseUintParam(c, "id", "issue")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.historyUC.Execute(c.Request.Context(), usecases.GetStatusHistoryQuery{
		IssueID: issueID,
		Actor:   actorFrom(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// AddComment handles POST /issues/:id/comments
func (h *IssueHandler) AddComment(c *gin.Context) {
	issueID, err := utils.ParseUintParam(c, "id", "issue")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		IssueID: issueID,
		Actor:   actorFrom(c),
		Content: req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added")
}

// ListComments handles GET /issues/:id/comments
func (h *IssueHandler) ListComments(c *gin.Context) {
	issueID, err := utils.ParseUintParam(c, "id", "issue")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.commentsUC.Execute(c.Request.Context(), usecases.ListCommentsQuery{
		IssueID: issueID,
		Actor:   actorFrom(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
