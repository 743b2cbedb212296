package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrAlreadyParticipating = errors.New("user is already participating in this competition")
	ErrParticipantNotFound  = errors.New("participant not found")
)

// Participant carries one user's registration for one competition. The
// composite unique index backs the application-level duplicate check, so the
// one-row-per-(user, competition) invariant holds even under concurrent
// writers.
type Participant struct {
	ID              uint  `gorm:"primaryKey"`
	UserID          uint  `gorm:"not null;uniqueIndex:idx_participants_user_competition"`
	CompetitionID   uint  `gorm:"not null;uniqueIndex:idx_participants_user_competition"`
	TeamID          *uint `gorm:"index"`
	IsLeader        bool  `gorm:"not null;default:false"`
	ResultID        *uint
	ReimburseStatus *string
}

type ParticipantDAO struct {
	db *gorm.DB
}

func NewParticipantDAO(db *gorm.DB) *ParticipantDAO {
	return &ParticipantDAO{
		db: db,
	}
}

func (d *ParticipantDAO) Insert(ctx context.Context, participant Participant) (Participant, error) {
	result := d.db.WithContext(ctx).Create(&participant)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Participant{}, ErrAlreadyParticipating
		}

		return Participant{}, result.Error
	}

	return participant, nil
}

func (d *ParticipantDAO) FindByUserAndCompetition(ctx context.Context, userID, competitionID uint) (Participant, error) {
	var participant Participant

	result := d.db.WithContext(ctx).
		Where("user_id = ? AND competition_id = ?", userID, competitionID).
		First(&participant)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Participant{}, ErrParticipantNotFound
		}

		return Participant{}, result.Error
	}

	return participant, nil
}

func (d *ParticipantDAO) FindByUserID(ctx context.Context, userID uint) ([]Participant, error) {
	var participants []Participant

	result := d.db.WithContext(ctx).Where("user_id = ?", userID).Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}

	return participants, nil
}

// PromoteLeader attaches the leader's participant row to a freshly created
// team and marks it as the leader record.
func (d *ParticipantDAO) PromoteLeader(ctx context.Context, userID, competitionID, teamID uint) error {
	result := d.db.WithContext(ctx).
		Model(&Participant{}).
		Where("user_id = ? AND competition_id = ?", userID, competitionID).
		Updates(map[string]interface{}{
			"team_id":   teamID,
			"is_leader": true,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrParticipantNotFound
	}

	return nil
}

func (d *ParticipantDAO) UpdateReimburseStatus(ctx context.Context, userID, competitionID uint, status string) error {
	result := d.db.WithContext(ctx).
		Model(&Participant{}).
		Where("user_id = ? AND competition_id = ?", userID, competitionID).
		Update("reimburse_status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrParticipantNotFound
	}

	return nil
}

func (d *ParticipantDAO) LinkResult(ctx context.Context, participantID, resultID uint) error {
	result := d.db.WithContext(ctx).
		Model(&Participant{}).
		Where("id = ?", participantID).
		Update("result_id", resultID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrParticipantNotFound
	}

	return nil
}
