package usecases

import (
	"context"
	"time"

	"campusdesk/internal/application/audit/dto"
	"campusdesk/internal/domain/audit"
	vo "campusdesk/internal/domain/audit/valueobjects"
	"campusdesk/internal/domain/shared/ref"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

type ListEntriesQuery struct {
	Action     string
	ActorID    *uint
	TargetKind string
	Search     string
	From       *time.Time
	To         *time.Time
	Page       int
	PageSize   int
}

type ListEntriesUseCase struct {
	entryRepo audit.EntryRepository
	userRepo  user.UserRepository
	logger    logger.Interface
}

func NewListEntriesUseCase(entryRepo audit.EntryRepository, userRepo user.UserRepository, logger logger.Interface) *ListEntriesUseCase {
	return &ListEntriesUseCase{
		entryRepo: entryRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (uc *ListEntriesUseCase) Execute(ctx context.Context, query ListEntriesQuery) ([]dto.EntryDTO, int64, error) {
	filter, err := uc.buildFilter(query)
	if err != nil {
		return nil, 0, err
	}

	entries, total, err := uc.entryRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list audit entries", "error", err)
		return nil, 0, err
	}

	result := make([]dto.EntryDTO, 0, len(entries))
	for _, e := range entries {
		result = append(result, dto.ToEntryDTO(e))
	}
	uc.decorateActorNames(ctx, entries, result)
	return result, total, nil
}

func (uc *ListEntriesUseCase) buildFilter(query ListEntriesQuery) (audit.EntryFilter, error) {
	filter := audit.EntryFilter{
		ActorID: query.ActorID,
		Search:  query.Search,
		From:    query.From,
		To:      query.To,
	}
	if query.Action != "" {
		action := vo.Action(query.Action)
		if !action.IsValid() {
			return filter, errors.NewValidationError("invalid audit action filter")
		}
		filter.Action = &action
	}
	if query.TargetKind != "" {
		kind := ref.EntityKind(query.TargetKind)
		if !kind.IsValid() {
			return filter, errors.NewValidationError("invalid target kind filter")
		}
		filter.TargetKind = &kind
	}
	filter.Page, filter.PageSize = utils.ValidatePagination(query.Page, query.PageSize)
	return filter, nil
}

// decorateActorNames is best effort, a failed lookup leaves names empty.
func (uc *ListEntriesUseCase) decorateActorNames(ctx context.Context, entries []*audit.Entry, dtos []dto.EntryDTO) {
	idSet := make(map[uint]struct{})
	for _, e := range entries {
		if e.ActorID() != nil {
			idSet[*e.ActorID()] = struct{}{}
		}
	}
	if len(idSet) == 0 {
		return
	}
	ids := make([]uint, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	users, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Warnw("failed to load actor names", "error", err)
		return
	}
	names := make(map[uint]string, len(users))
	for _, u := range users {
		names[u.ID()] = u.FullName()
	}
	for i := range dtos {
		if dtos[i].ActorID != nil {
			dtos[i].ActorName = names[*dtos[i].ActorID]
		}
	}
}
