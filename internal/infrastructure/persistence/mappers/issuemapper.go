package mappers

import (
	"fmt"

	"campusdesk/internal/domain/issue"
	vo "campusdesk/internal/domain/issue/valueobjects"
	"campusdesk/internal/infrastructure/persistence/models"
)

// IssueMapper handles the conversion between issue domain entities and
// persistence models.
type IssueMapper interface {
	ToModel(entity *issue.Issue) *models.IssueModel
	ToDomain(model *models.IssueModel) (*issue.Issue, error)
	StatusRecordToModel(record *issue.StatusRecord) *models.StatusRecordModel
	StatusRecordToDomain(model *models.StatusRecordModel) *issue.StatusRecord
	CommentToModel(comment *issue.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) *issue.Comment
	AttachmentToModel(attachment *issue.Attachment) *models.AttachmentModel
	AttachmentToDomain(model *models.AttachmentModel) *issue.Attachment
}

type IssueMapperImpl struct{}

func NewIssueMapper() IssueMapper {
	return &IssueMapperImpl{}
}

func (m *IssueMapperImpl) ToModel(entity *issue.Issue) *models.IssueModel {
	return &models.IssueModel{
		ID:          entity.ID(),
		Title:       entity.Title(),
		Description: entity.Description(),
		Category:    entity.Category().String(),
		Priority:    entity.Priority().String(),
		Status:      entity.Status().String(),
		SubmitterID: entity.SubmitterID(),
		AssigneeID:  entity.AssigneeID(),
		ExternalRef: entity.ExternalRef(),
		CreatedAt:   timeToMillis(entity.CreatedAt()),
		UpdatedAt:   timeToMillis(entity.UpdatedAt()),
	}
}

func (m *IssueMapperImpl) ToDomain(model *models.IssueModel) (*issue.Issue, error) {
	entity, err := issue.ReconstructIssue(
		model.ID,
		model.Title,
		model.Description,
		vo.Category(model.Category),
		vo.Priority(model.Priority),
		vo.Status(model.Status),
		model.SubmitterID,
		model.AssigneeID,
		model.ExternalRef,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct issue (id=%d): %w", model.ID, err)
	}
	return entity, nil
}

func (m *IssueMapperImpl) StatusRecordToModel(record *issue.StatusRecord) *models.StatusRecordModel {
	return &models.StatusRecordModel{
		ID:        record.ID(),
		IssueID:   record.IssueID(),
		Status:    record.Status().String(),
		Notes:     record.Notes(),
		ActorID:   record.ActorID(),
		CreatedAt: timeToMillis(record.CreatedAt()),
	}
}

func (m *IssueMapperImpl) StatusRecordToDomain(model *models.StatusRecordModel) *issue.StatusRecord {
	return issue.ReconstructStatusRecord(
		model.ID,
		model.IssueID,
		vo.Status(model.Status),
		model.Notes,
		model.ActorID,
		millisToTime(model.CreatedAt),
	)
}

func (m *IssueMapperImpl) CommentToModel(comment *issue.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        comment.ID(),
		IssueID:   comment.IssueID(),
		AuthorID:  comment.AuthorID(),
		Content:   comment.Content(),
		CreatedAt: timeToMillis(comment.CreatedAt()),
		UpdatedAt: timeToMillis(comment.UpdatedAt()),
	}
}

func (m *IssueMapperImpl) CommentToDomain(model *models.CommentModel) *issue.Comment {
	return issue.ReconstructComment(
		model.ID,
		model.IssueID,
		model.AuthorID,
		model.Content,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *IssueMapperImpl) AttachmentToModel(attachment *issue.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:           attachment.ID(),
		IssueID:      attachment.IssueID(),
		UploaderID:   attachment.UploaderID(),
		StoredName:   attachment.StoredName(),
		OriginalName: attachment.OriginalName(),
		SizeBytes:    attachment.SizeBytes(),
		CreatedAt:    timeToMillis(attachment.CreatedAt()),
	}
}

func (m *IssueMapperImpl) AttachmentToDomain(model *models.AttachmentModel) *issue.Attachment {
	return issue.ReconstructAttachment(
		model.ID,
		model.IssueID,
		model.UploaderID,
		model.StoredName,
		model.OriginalName,
		model.SizeBytes,
		millisToTime(model.CreatedAt),
	)
}
