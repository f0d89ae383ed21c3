package mappers

import (
	"campusdesk/internal/domain/realtime"
	"campusdesk/internal/infrastructure/persistence/models"
)

type RealtimeMapper interface {
	OnlineUserToModel(entity *realtime.OnlineUser) *models.OnlineUserModel
	OnlineUserToDomain(model *models.OnlineUserModel) *realtime.OnlineUser
	TypingStatusToModel(entity *realtime.TypingStatus) *models.TypingStatusModel
	TypingStatusToDomain(model *models.TypingStatusModel) *realtime.TypingStatus
	IssueActivityToModel(entity *realtime.IssueActivity) *models.IssueActivityModel
	IssueActivityToDomain(model *models.IssueActivityModel) *realtime.IssueActivity
}

type RealtimeMapperImpl struct{}

func NewRealtimeMapper() RealtimeMapper {
	return &RealtimeMapperImpl{}
}

func (m *RealtimeMapperImpl) OnlineUserToModel(entity *realtime.OnlineUser) *models.OnlineUserModel {
	return &models.OnlineUserModel{
		ID:           entity.ID(),
		UserID:       entity.UserID(),
		IsOnline:     entity.IsOnline(),
		LastActivity: timeToMillis(entity.LastActivity()),
		ChannelID:    entity.ChannelID(),
	}
}

func (m *RealtimeMapperImpl) OnlineUserToDomain(model *models.OnlineUserModel) *realtime.OnlineUser {
	return realtime.ReconstructOnlineUser(
		model.ID,
		model.UserID,
		model.IsOnline,
		millisToTime(model.LastActivity),
		model.ChannelID,
	)
}

func (m *RealtimeMapperImpl) TypingStatusToModel(entity *realtime.TypingStatus) *models.TypingStatusModel {
	return &models.TypingStatusModel{
		ID:          entity.ID(),
		IssueID:     entity.IssueID(),
		UserID:      entity.UserID(),
		IsTyping:    entity.IsTyping(),
		LastUpdated: timeToMillis(entity.LastUpdated()),
	}
}

func (m *RealtimeMapperImpl) TypingStatusToDomain(model *models.TypingStatusModel) *realtime.TypingStatus {
	return realtime.ReconstructTypingStatus(
		model.ID,
		model.IssueID,
		model.UserID,
		model.IsTyping,
		millisToTime(model.LastUpdated),
	)
}

func (m *RealtimeMapperImpl) IssueActivityToModel(entity *realtime.IssueActivity) *models.IssueActivityModel {
	return &models.IssueActivityModel{
		ID:           entity.ID(),
		IssueID:      entity.IssueID(),
		UserID:       entity.UserID(),
		ActivityType: entity.ActivityType(),
		CreatedAt:    timeToMillis(entity.CreatedAt()),
	}
}

func (m *RealtimeMapperImpl) IssueActivityToDomain(model *models.IssueActivityModel) *realtime.IssueActivity {
	return realtime.ReconstructIssueActivity(
		model.ID,
		model.IssueID,
		model.UserID,
		model.ActivityType,
		millisToTime(model.CreatedAt),
	)
}
