package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/codepedia/lomba-api/internal/domain"
	"github.com/codepedia/lomba-api/internal/repository/dao"
)

var (
	ErrDuplicateJoinRequest = dao.ErrDuplicateJoinRequest
	ErrJoinRequestNotFound  = dao.ErrJoinRequestNotFound
)

type NotificationDAO interface {
	Insert(ctx context.Context, notification dao.Notification) (dao.Notification, error)
	FindByReceiver(ctx context.Context, receiverID uint) ([]dao.Notification, error)
	DeleteForTeamAndReceiver(ctx context.Context, teamID, receiverID uint) error
	InsertJoinRequest(ctx context.Context, request dao.JoinRequest) (dao.JoinRequest, error)
	FindJoinRequest(ctx context.Context, userID, teamID uint) (dao.JoinRequest, error)
}

type NotificationRepository struct {
	dao NotificationDAO
}

func NewNotificationRepository(dao NotificationDAO) *NotificationRepository {
	return &NotificationRepository{
		dao: dao,
	}
}

func (r *NotificationRepository) Create(ctx context.Context, notification domain.Notification) (domain.Notification, error) {
	created, err := r.dao.Insert(ctx, dao.Notification{
		SenderID:   notification.SenderID,
		ReceiverID: notification.ReceiverID,
		TeamID:     notification.TeamID,
		Title:      notification.Title,
		Message:    notification.Message,
	})
	if err != nil {
		return domain.Notification{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *NotificationRepository) FindByReceiver(ctx context.Context, receiverID uint) ([]domain.Notification, error) {
	found, err := r.dao.FindByReceiver(ctx, receiverID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByReceiver -> %w", err)
	}

	notifications := make([]domain.Notification, len(found))
	for i, n := range found {
		notifications[i] = r.daoToDomain(n)
	}

	return notifications, nil
}

func (r *NotificationRepository) DeleteForTeamAndReceiver(ctx context.Context, teamID, receiverID uint) error {
	if err := r.dao.DeleteForTeamAndReceiver(ctx, teamID, receiverID); err != nil {
		return fmt.Errorf("r.dao.DeleteForTeamAndReceiver -> %w", err)
	}

	return nil
}

func (r *NotificationRepository) CreateJoinRequest(ctx context.Context, request domain.JoinRequest) (domain.JoinRequest, error) {
	created, err := r.dao.InsertJoinRequest(ctx, dao.JoinRequest{
		UserID:        request.UserID,
		TeamID:        request.TeamID,
		CompetitionID: request.CompetitionID,
	})
	if err != nil {
		return domain.JoinRequest{}, fmt.Errorf("r.dao.InsertJoinRequest -> %w", err)
	}

	return domain.JoinRequest{
		ID:            created.ID,
		UserID:        created.UserID,
		TeamID:        created.TeamID,
		CompetitionID: created.CompetitionID,
		CreatedAt:     created.CreatedAt,
	}, nil
}

// JoinRequestExists reports whether userID already has a pending request for
// teamID.
func (r *NotificationRepository) JoinRequestExists(ctx context.Context, userID, teamID uint) (bool, error) {
	_, err := r.dao.FindJoinRequest(ctx, userID, teamID)
	if err != nil {
		if errors.Is(err, dao.ErrJoinRequestNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("r.dao.FindJoinRequest -> %w", err)
	}

	return true, nil
}

func (r *NotificationRepository) daoToDomain(n dao.Notification) domain.Notification {
	return domain.Notification{
		ID:         n.ID,
		SenderID:   n.SenderID,
		ReceiverID: n.ReceiverID,
		TeamID:     n.TeamID,
		Title:      n.Title,
		Message:    n.Message,
		CreatedAt:  n.CreatedAt,
	}
}
