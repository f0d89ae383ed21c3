package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"campusdesk/internal/domain/issue"
	"campusdesk/internal/infrastructure/persistence/mappers"
	"campusdesk/internal/infrastructure/persistence/models"
	db "campusdesk/internal/shared/db"
)

// allowedIssueOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedIssueOrderByFields = map[string]bool{
	"id":           true,
	"title":        true,
	"status":       true,
	"priority":     true,
	"category":     true,
	"submitter_id": true,
	"assignee_id":  true,
	"created_at":   true,
	"updated_at":   true,
}

type IssueRepository struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
}

func NewIssueRepository(db *gorm.DB) *IssueRepository {
	return &IssueRepository{
		db:     db,
		mapper: mappers.NewIssueMapper(),
	}
}

func (r *IssueRepository) Save(ctx context.Context, iss *issue.Issue) error {
	model := r.mapper.ToModel(iss)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save issue: %w", err)
	}

	iss.SetID(model.ID)
	return nil
}

func (r *IssueRepository) Update(ctx context.Context, iss *issue.Issue) error {
	model := r.mapper.ToModel(iss)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select forces writes of zeroed and NULLed columns, notably
	// assignee_id on unassignment.
	result := tx.
		Model(&models.IssueModel{}).
		Where("id = ?", model.ID).
		Select("title", "description", "category", "priority", "status", "assignee_id", "external_ref", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update issue: %w", result.Error)
	}
	return nil
}

func (r *IssueRepository) Delete(ctx context.Context, issueID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.IssueModel{}, issueID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete issue: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("issue not found")
	}
	return nil
}

func (r *IssueRepository) GetByID(ctx context.Context, issueID uint) (*issue.Issue, error) {
	var model models.IssueModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, issueID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find issue: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *IssueRepository) List(ctx context.Context, filter issue.IssueFilter) ([]*issue.Issue, int64, error) {
	return r.list(ctx, filter)
}

func (r *IssueRepository) GetSubmittedBy(ctx context.Context, submitterID uint, filter issue.IssueFilter) ([]*issue.Issue, int64, error) {
	filter.SubmitterID = &submitterID
	return r.list(ctx, filter)
}

func (r *IssueRepository) GetAssignedTo(ctx context.Context, assigneeID uint, filter issue.IssueFilter) ([]*issue.Issue, int64, error) {
	filter.AssigneeID = &assigneeID
	return r.list(ctx, filter)
}

func (r *IssueRepository) list(ctx context.Context, filter issue.IssueFilter) ([]*issue.Issue, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := r.applyFilter(tx.Model(&models.IssueModel{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count issues: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	var issueModels []*models.IssueModel
	err := query.
		Order(r.orderBy(filter)).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&issueModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list issues: %w", err)
	}

	issues := make([]*issue.Issue, 0, len(issueModels))
	for _, model := range issueModels {
		entity, err := r.mapper.ToDomain(model)
		if err != nil {
			return nil, 0, err
		}
		issues = append(issues, entity)
	}
	return issues, total, nil
}

func (r *IssueRepository) applyFilter(query *gorm.DB, filter issue.IssueFilter) *gorm.DB {
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.Category != nil {
		query = query.Where("category = ?", filter.Category.String())
	}
	if filter.SubmitterID != nil {
		query = query.Where("submitter_id = ?", *filter.SubmitterID)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if filter.ParticipantID != nil {
		query = query.Where("submitter_id = ? OR assignee_id = ?", *filter.ParticipantID, *filter.ParticipantID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}
	return query
}

func (r *IssueRepository) orderBy(filter issue.IssueFilter) string {
	sortBy := filter.SortBy
	if !allowedIssueOrderByFields[sortBy] {
		sortBy = "created_at"
	}
	sortOrder := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		sortOrder = "ASC"
	}
	return fmt.Sprintf("%s %s", sortBy, sortOrder)
}
