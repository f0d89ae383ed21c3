package usecases

import (
	"context"

	"campusdesk/internal/application/issue/dto"
	"campusdesk/internal/domain/issue"
	vo "campusdesk/internal/domain/issue/valueobjects"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

// ListScope selects which slice of issues the caller wants.
type ListScope string

const (
	// ScopeVisible applies the role visibility rules.
	ScopeVisible ListScope = "visible"
	// ScopeMine restricts to issues the caller submitted.
	ScopeMine ListScope = "mine"
	// ScopeAssigned restricts to issues assigned to the caller.
	ScopeAssigned ListScope = "assigned"
)

type ListIssuesQuery struct {
	Actor    Actor
	Scope    ListScope
	Status   string
	Priority string
	Category string
	Search   string
	Page     int
	PageSize int
}

type ListIssuesResult struct {
	Items    []dto.IssueListItemDTO
	Total    int64
	Page     int
	PageSize int
}

type ListIssuesUseCase struct {
	issueRepo issue.IssueRepository
	logger    logger.Interface
}

func NewListIssuesUseCase(issueRepo issue.IssueRepository, logger logger.Interface) *ListIssuesUseCase {
	return &ListIssuesUseCase{issueRepo: issueRepo, logger: logger}
}

func (uc *ListIssuesUseCase) Execute(ctx context.Context, query ListIssuesQuery) (*ListIssuesResult, error) {
	filter, err := uc.buildFilter(query)
	if err != nil {
		return nil, err
	}

	var (
		issues []*issue.Issue
		total  int64
	)

	switch query.Scope {
	case ScopeMine:
		issues, total, err = uc.issueRepo.GetSubmittedBy(ctx, query.Actor.ID, filter)
	case ScopeAssigned:
		issues, total, err = uc.issueRepo.GetAssignedTo(ctx, query.Actor.ID, filter)
	default:
		issues, total, err = uc.listVisible(ctx, query.Actor, filter)
	}
	if err != nil {
		uc.logger.Errorw("failed to list issues", "error", err, "scope", query.Scope)
		return nil, err
	}

	items := make([]dto.IssueListItemDTO, 0, len(issues))
	for _, iss := range issues {
		items = append(items, dto.ToIssueListItemDTO(iss))
	}

	return &ListIssuesResult{
		Items:    items,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

// listVisible scopes the base list to the caller's role: admins see all,
// faculty see assigned or submitted, students see submitted only.
func (uc *ListIssuesUseCase) listVisible(ctx context.Context, actor Actor, filter issue.IssueFilter) ([]*issue.Issue, int64, error) {
	switch {
	case actor.IsAdmin():
		return uc.issueRepo.List(ctx, filter)
	case actor.IsFaculty():
		filter.ParticipantID = &actor.ID
		return uc.issueRepo.List(ctx, filter)
	default:
		return uc.issueRepo.GetSubmittedBy(ctx, actor.ID, filter)
	}
}

func (uc *ListIssuesUseCase) buildFilter(query ListIssuesQuery) (issue.IssueFilter, error) {
	page, pageSize := utils.ValidatePagination(query.Page, query.PageSize)
	filter := issue.IssueFilter{
		Search:   query.Search,
		Page:     page,
		PageSize: pageSize,
	}

	if query.Status != "" {
		status := vo.Status(query.Status)
		if !status.IsValid() {
			return filter, errors.NewValidationError("invalid status filter")
		}
		filter.Status = &status
	}
	if query.Priority != "" {
		priority := vo.Priority(query.Priority)
		if !priority.IsValid() {
			return filter, errors.NewValidationError("invalid priority filter")
		}
		filter.Priority = &priority
	}
	if query.Category != "" {
		category := vo.Category(query.Category)
		if !category.IsValid() {
			return filter, errors.NewValidationError("invalid category filter")
		}
		filter.Category = &category
	}

	return filter, nil
}
