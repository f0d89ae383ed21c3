package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"campusdesk/internal/application/issue/usecases"
	"campusdesk/internal/shared/config"
	"campusdesk/internal/shared/id"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

const storedNameLength = 20

// AttachmentHandler stores uploads on local disk under a generated
// name. The original filename is only metadata and never touches the
// filesystem.
type AttachmentHandler struct {
	addUC  usecases.AddAttachmentExecutor
	listUC usecases.ListAttachmentsExecutor
	cfg    config.UploadConfig
	logger logger.Interface
}

func NewAttachmentHandler(
	addUC usecases.AddAttachmentExecutor,
	listUC usecases.ListAttachmentsExecutor,
	cfg config.UploadConfig,
	logger logger.Interface,
) *AttachmentHandler {
	return &AttachmentHandler{
		addUC:  addUC,
		listUC: listUC,
		cfg:    cfg,
		logger: logger,
	}
}

// Upload handles POST /issues/:id/attachments
func (h *AttachmentHandler) Upload(c *gin.Context) {
	issueID, err := utils.ParseUintParam(c, "id", "issue")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "file is required")
		return
	}
	if h.cfg.MaxSizeBytes > 0 && file.Size > h.cfg.MaxSizeBytes {
		utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "file exceeds the upload size limit")
		return
	}

	storedName := id.MustGenerate(storedNameLength) + filepath.Ext(file.Filename)

	if err := os.MkdirAll(h.cfg.Dir, 0755); err != nil {
		h.logger.Errorw("failed to create upload directory", "error", err, "dir", h.cfg.Dir)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to store file")
		return
	}
	if err := c.SaveUploadedFile(file, filepath.Join(h.cfg.Dir, storedName)); err != nil {
		h.logger.Errorw("failed to save upload", "error", err, "issue_id", issueID)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to store file")
		return
	}

	result, err := h.addUC.Execute(c.Request.Context(), usecases.AddAttachmentCommand{
		IssueID:      issueID,
		Actor:        actorFrom(c),
		StoredName:   storedName,
		OriginalName: filepath.Base(file.Filename),
		SizeBytes:    file.Size,
	})
	if err != nil {
		// The metadata write failed, do not leave the blob behind.
		if rmErr := os.Remove(filepath.Join(h.cfg.Dir, storedName)); rmErr != nil {
			h.logger.Warnw("failed to remove orphaned upload", "error", rmErr, "stored_name", storedName)
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Attachment uploaded")
}

// List handles GET /issues/:id/attachments
func (h *AttachmentHandler) List(c *gin.Context) {
	issueID, err := utils.ParseUintParam(c, "id", "issue")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListAttachmentsQuery{
		IssueID: issueID,
		Actor:   actorFrom(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Download handles GET /issues/:id/attachments/:attachmentID
func (h *AttachmentHandler) Download(c *gin.Context) {
	issueID, err := utils.ParseUintParam(c, "id", "issue")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	attachmentID, err := utils.ParseUintParam(c, "attachmentID", "attachment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Listing applies the issue visibility rules for the caller.
	attachments, err := h.listUC.Execute(c.Request.Context(), usecases.ListAttachmentsQuery{
		IssueID: issueID,
		Actor:   actorFrom(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	for _, a := range attachments {
		if a.ID == attachmentID {
			c.FileAttachment(filepath.Join(h.cfg.Dir, a.StoredName), a.OriginalName)
			return
		}
	}

	utils.ErrorResponse(c, http.StatusNotFound, "attachment not found")
}
