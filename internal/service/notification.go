package service

import (
	"context"
	"fmt"

	"github.com/codepedia/lomba-api/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification domain.Notification) (domain.Notification, error)
	FindByReceiver(ctx context.Context, receiverID uint) ([]domain.Notification, error)
	DeleteForTeamAndReceiver(ctx context.Context, teamID, receiverID uint) error
	CreateJoinRequest(ctx context.Context, request domain.JoinRequest) (domain.JoinRequest, error)
	JoinRequestExists(ctx context.Context, userID, teamID uint) (bool, error)
}

type NotificationService struct {
	repo     NotificationRepository
	userRepo UserRepository
}

func NewNotificationService(repo NotificationRepository, userRepo UserRepository) *NotificationService {
	return &NotificationService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// GetNotifications lists the receiver's notifications, newest first, with
// sender summaries attached.
func (s *NotificationService) GetNotifications(ctx context.Context, receiverID uint) ([]domain.Notification, error) {
	notifications, err := s.repo.FindByReceiver(ctx, receiverID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByReceiver -> %w", err)
	}

	senderIDs := make([]uint, 0, len(notifications))
	for _, n := range notifications {
		senderIDs = append(senderIDs, n.SenderID)
	}

	senders, err := s.userRepo.FindSummariesByIDs(ctx, senderIDs)
	if err != nil {
		return nil, fmt.Errorf("s.userRepo.FindSummariesByIDs -> %w", err)
	}

	byID := make(map[uint]domain.UserSummary, len(senders))
	for _, sender := range senders {
		byID[sender.ID] = sender
	}

	for i := range notifications {
		if sender, ok := byID[notifications[i].SenderID]; ok {
			summary := sender
			notifications[i].SenderUser = &summary
		}
	}

	return notifications, nil
}
