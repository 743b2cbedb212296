package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrDuplicateJoinRequest = errors.New("join request already sent to this team")
	ErrJoinRequestNotFound  = errors.New("join request not found")
)

type Notification struct {
	ID         uint `gorm:"primaryKey"`
	SenderID   uint `gorm:"not null;index"`
	ReceiverID uint `gorm:"not null;index"`
	TeamID     *uint
	Title      string `gorm:"not null"`
	Message    string
	CreatedAt  time.Time
}

// JoinRequest is an outstanding ask to join a team. The composite unique
// index rejects a second request from the same user for the same team even
// when two requests race past the application check.
type JoinRequest struct {
	ID            uint `gorm:"primaryKey"`
	UserID        uint `gorm:"not null;uniqueIndex:idx_join_requests_user_team"`
	TeamID        uint `gorm:"not null;uniqueIndex:idx_join_requests_user_team"`
	CompetitionID uint `gorm:"not null;index"`
	CreatedAt     time.Time
}

type NotificationDAO struct {
	db *gorm.DB
}

func NewNotificationDAO(db *gorm.DB) *NotificationDAO {
	return &NotificationDAO{
		db: db,
	}
}

func (d *NotificationDAO) Insert(ctx context.Context, notification Notification) (Notification, error) {
	result := d.db.WithContext(ctx).Create(&notification)
	if result.Error != nil {
		return Notification{}, result.Error
	}

	return notification, nil
}

func (d *NotificationDAO) FindByReceiver(ctx context.Context, receiverID uint) ([]Notification, error) {
	var notifications []Notification

	result := d.db.WithContext(ctx).
		Where("receiver_id = ?", receiverID).
		Order("created_at DESC").
		Find(&notifications)
	if result.Error != nil {
		return nil, result.Error
	}

	return notifications, nil
}

func (d *NotificationDAO) DeleteForTeamAndReceiver(ctx context.Context, teamID, receiverID uint) error {
	return d.db.WithContext(ctx).
		Where("team_id = ? AND receiver_id = ?", teamID, receiverID).
		Delete(&Notification{}).Error
}

func (d *NotificationDAO) InsertJoinRequest(ctx context.Context, request JoinRequest) (JoinRequest, error) {
	result := d.db.WithContext(ctx).Create(&request)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return JoinRequest{}, ErrDuplicateJoinRequest
		}

		return JoinRequest{}, result.Error
	}

	return request, nil
}

func (d *NotificationDAO) FindJoinRequest(ctx context.Context, userID, teamID uint) (JoinRequest, error) {
	var request JoinRequest

	result := d.db.WithContext(ctx).
		Where("user_id = ? AND team_id = ?", userID, teamID).
		First(&request)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return JoinRequest{}, ErrJoinRequestNotFound
		}

		return JoinRequest{}, result.Error
	}

	return request, nil
}
