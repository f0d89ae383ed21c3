package usecases

import (
	"context"

	"campusdesk/internal/application/callback/dto"
	"campusdesk/internal/domain/callback"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

type CreateEndpointCommand struct {
	Name         string
	URL          string
	RequiresAuth bool
}

type CreateEndpointUseCase struct {
	endpointRepo callback.EndpointRepository
	logger       logger.Interface
}

func NewCreateEndpointUseCase(endpointRepo callback.EndpointRepository, logger logger.Interface) *CreateEndpointUseCase {
	return &CreateEndpointUseCase{
		endpointRepo: endpointRepo,
		logger:       logger,
	}
}

func (uc *CreateEndpointUseCase) Execute(ctx context.Context, cmd CreateEndpointCommand) (*dto.EndpointDTO, error) {
	existing, err := uc.endpointRepo.GetByName(ctx, cmd.Name)
	if err != nil {
		uc.logger.Errorw("failed to look up endpoint", "name", cmd.Name, "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("endpoint name is already in use")
	}

	endpoint, err := callback.NewEndpoint(cmd.Name, cmd.URL, cmd.RequiresAuth)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.endpointRepo.Save(ctx, endpoint); err != nil {
		uc.logger.Errorw("failed to save endpoint", "name", cmd.Name, "error", err)
		return nil, err
	}

	uc.logger.Infow("callback endpoint created", "endpoint_id", endpoint.ID(), "name", endpoint.Name())

	result := dto.ToEndpointDTO(endpoint)
	return &result, nil
}

type UpdateEndpointCommand struct {
	EndpointID   uint
	Name         string
	URL          string
	RequiresAuth bool
	IsActive     bool
}

type UpdateEndpointUseCase struct {
	endpointRepo callback.EndpointRepository
	logger       logger.Interface
}

func NewUpdateEndpointUseCase(endpointRepo callback.EndpointRepository, logger logger.Interface) *UpdateEndpointUseCase {
	return &UpdateEndpointUseCase{
		endpointRepo: endpointRepo,
		logger:       logger,
	}
}

func (uc *UpdateEndpointUseCase) Execute(ctx context.Context, cmd UpdateEndpointCommand) (*dto.EndpointDTO, error) {
	endpoint, err := uc.endpointRepo.GetByID(ctx, cmd.EndpointID)
	if err != nil {
		uc.logger.Errorw("failed to get endpoint", "endpoint_id", cmd.EndpointID, "error", err)
		return nil, err
	}
	if endpoint == nil {
		return nil, errors.NewNotFoundError("endpoint not found")
	}

	if err := endpoint.Update(cmd.Name, cmd.URL, cmd.RequiresAuth, cmd.IsActive); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.endpointRepo.Update(ctx, endpoint); err != nil {
		uc.logger.Errorw("failed to update endpoint", "endpoint_id", cmd.EndpointID, "error", err)
		return nil, err
	}

	result := dto.ToEndpointDTO(endpoint)
	return &result, nil
}

type DeleteEndpointUseCase struct {
	endpointRepo callback.EndpointRepository
	logger       logger.Interface
}

func NewDeleteEndpointUseCase(endpointRepo callback.EndpointRepository, logger logger.Interface) *DeleteEndpointUseCase {
	return &DeleteEndpointUseCase{
		endpointRepo: endpointRepo,
		logger:       logger,
	}
}

func (uc *DeleteEndpointUseCase) Execute(ctx context.Context, endpointID uint) error {
	endpoint, err := uc.endpointRepo.GetByID(ctx, endpointID)
	if err != nil {
		uc.logger.Errorw("failed to get endpoint", "endpoint_id", endpointID, "error", err)
		return err
	}
	if endpoint == nil {
		return errors.NewNotFoundError("endpoint not found")
	}

	if err := uc.endpointRepo.Delete(ctx, endpointID); err != nil {
		uc.logger.Errorw("failed to delete endpoint", "endpoint_id", endpointID, "error", err)
		return err
	}
	uc.logger.Infow("callback endpoint deleted", "endpoint_id", endpointID)
	return nil
}

type ListEndpointsQuery struct {
	Page     int
	PageSize int
}

type ListEndpointsUseCase struct {
	endpointRepo callback.EndpointRepository
	logger       logger.Interface
}

func NewListEndpointsUseCase(endpointRepo callback.EndpointRepository, logger logger.Interface) *ListEndpointsUseCase {
	return &ListEndpointsUseCase{
		endpointRepo: endpointRepo,
		logger:       logger,
	}
}

func (uc *ListEndpointsUseCase) Execute(ctx context.Context, query ListEndpointsQuery) ([]dto.EndpointDTO, int64, error) {
	page, pageSize := utils.ValidatePagination(query.Page, query.PageSize)

	endpoints, total, err := uc.endpointRepo.List(ctx, page, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list endpoints", "error", err)
		return nil, 0, err
	}
	return dto.ToEndpointDTOs(endpoints), total, nil
}
