package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusdesk/internal/application/callback/usecases"
	"campusdesk/internal/domain/callback"
	"campusdesk/internal/shared/constants"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

type CallbackHandler struct {
	createEndpointUC *usecases.CreateEndpointUseCase
	updateEndpointUC *usecases.UpdateEndpointUseCase
	deleteEndpointUC *usecases.DeleteEndpointUseCase
	listEndpointsUC  *usecases.ListEndpointsUseCase
	triggerUC        *usecases.TriggerCallbackUseCase
	listCallsUC      *usecases.ListCallsUseCase
	logger           logger.Interface
}

func NewCallbackHandler(
	createEndpointUC *usecases.CreateEndpointUseCase,
	updateEndpointUC *usecases.UpdateEndpointUseCase,
	deleteEndpointUC *usecases.DeleteEndpointUseCase,
	listEndpointsUC *usecases.ListEndpointsUseCase,
	triggerUC *usecases.TriggerCallbackUseCase,
	listCallsUC *usecases.ListCallsUseCase,
	logger logger.Interface,
) *CallbackHandler {
	return &CallbackHandler{
		createEndpointUC: createEndpointUC,
		updateEndpointUC: updateEndpointUC,
		deleteEndpointUC: deleteEndpointUC,
		listEndpointsUC:  listEndpointsUC,
		triggerUC:        triggerUC,
		listCallsUC:      listCallsUC,
		logger:           logger,
	}
}

type CreateEndpointRequest struct {
	Name         string `json:"name" binding:"required"`
	URL          string `json:"url" binding:"required"`
	RequiresAuth bool   `json:"requires_auth"`
}

// CreateEndpoint handles POST /admin/callbacks/endpoints
func (h *CallbackHandler) CreateEndpoint(c *gin.Context) {
	var req CreateEndpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateCallbackURL(req.URL); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createEndpointUC.Execute(c.Request.Context(), usecases.CreateEndpointCommand{
		Name:         req.Name,
		URL:          req.URL,
		RequiresAuth: req.RequiresAuth,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Endpoint registered")
}

type UpdateEndpointRequest struct {
	Name         string `json:"name" binding:"required"`
	URL          string `json:"url" binding:"required"`
	RequiresAuth bool   `json:"requires_auth"`
	IsActive     bool   `json:"is_active"`
}

// UpdateEndpoint handles PUT /admin/callbacks/endpoints/:id
func (h *CallbackHandler) UpdateEndpoint(c *gin.Context) {
	endpointID, err := utils.ParseUintParam(c, "id", "endpoint")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateEndpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateCallbackURL(req.URL); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateEndpointUC.Execute(c.Request.Context(), usecases.UpdateEndpointCommand{
		EndpointID:   endpointID,
		Name:         req.Name,
		URL:          req.URL,
		RequiresAuth: req.RequiresAuth,
		IsActive:     req.IsActive,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Endpoint updated", result)
}

// DeleteEndpoint handles DELETE /admin/callbacks/endpoints/:id
func (h *CallbackHandler) DeleteEndpoint(c *gin.Context) {
	endpointID, err := utils.ParseUintParam(c, "id", "endpoint")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteEndpointUC.Execute(c.Request.Context(), endpointID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListEndpoints handles GET /admin/callbacks/endpoints
func (h *CallbackHandler) ListEndpoints(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	items, total, err := h.listEndpointsUC.Execute(c.Request.Context(), usecases.ListEndpointsQuery{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, page, pageSize)
}

type TriggerCallbackRequest struct {
	CallType     string                 `json:"call_type" validate:"required,oneof=NOTIFICATION DATA_UPDATE USER_ACTION SYSTEM_EVENT"`
	EndpointName string                 `json:"endpoint_name" validate:"required"`
	Payload      map[string]interface{} `json:"payload"`
}

// Trigger handles POST /admin/callbacks/trigger
func (h *CallbackHandler) Trigger(c *gin.Context) {
	var req TriggerCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	initiatedBy := c.GetUint(constants.ContextKeyUserID)

	result, err := h.triggerUC.Execute(c.Request.Context(), usecases.TriggerCallbackCommand{
		CallType:      callback.CallType(req.CallType),
		EndpointName:  req.EndpointName,
		Payload:       req.Payload,
		InitiatedByID: &initiatedBy,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Callback triggered")
}

// ListCalls handles GET /admin/callbacks/calls
func (h *CallbackHandler) ListCalls(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	items, total, err := h.listCallsUC.Execute(c.Request.Context(), usecases.ListCallsQuery{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, page, pageSize)
}
