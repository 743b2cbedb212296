package dao

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrTeamNotFound  = errors.New("team not found")
	ErrTeamNameTaken = errors.New("team with this name already exists")
	ErrTeamFull      = errors.New("team is already full")
)

// MemberList stores a team's member user IDs, in join order, as a jsonb
// column. The leader is not part of the list.
type MemberList []uint

func (m MemberList) Value() (driver.Value, error) {
	if m == nil {
		m = MemberList{}
	}
	return json.Marshal(m)
}

func (m *MemberList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*m = MemberList{}
		return nil
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported member list source type %T", value)
	}
}

func (MemberList) GormDataType() string {
	return "jsonb"
}

func (m MemberList) Contains(userID uint) bool {
	for _, id := range m {
		if id == userID {
			return true
		}
	}
	return false
}

type Team struct {
	ID            uint       `gorm:"primaryKey"`
	Name          string     `gorm:"not null;uniqueIndex:idx_teams_name_competition"`
	CompetitionID uint       `gorm:"not null;uniqueIndex:idx_teams_name_competition;index"`
	LeaderID      uint       `gorm:"not null;index"`
	Members       MemberList `gorm:"type:jsonb;not null;default:'[]'"`
	Description   string
	Phone         string
	MaxMembers    int `gorm:"not null"`
	OpenSlots     int `gorm:"not null"`
	EndDate       time.Time
	Status        string `gorm:"not null;default:ACTIVE"` // ACTIVE or INACTIVE
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type TeamDAO struct {
	db *gorm.DB
}

func NewTeamDAO(db *gorm.DB) *TeamDAO {
	return &TeamDAO{
		db: db,
	}
}

func (d *TeamDAO) Insert(ctx context.Context, team Team) (Team, error) {
	result := d.db.WithContext(ctx).Create(&team)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Team{}, ErrTeamNameTaken
		}

		return Team{}, result.Error
	}

	return team, nil
}

func (d *TeamDAO) FindByID(ctx context.Context, id uint) (Team, error) {
	var team Team

	result := d.db.WithContext(ctx).First(&team, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Team{}, ErrTeamNotFound
		}

		return Team{}, result.Error
	}

	return team, nil
}

func (d *TeamDAO) FindAll(ctx context.Context) ([]Team, error) {
	var teams []Team

	result := d.db.WithContext(ctx).Find(&teams)
	if result.Error != nil {
		return nil, result.Error
	}

	return teams, nil
}

func (d *TeamDAO) FindByCompetitionID(ctx context.Context, competitionID uint) ([]Team, error) {
	var teams []Team

	result := d.db.WithContext(ctx).Where("competition_id = ?", competitionID).Find(&teams)
	if result.Error != nil {
		return nil, result.Error
	}

	return teams, nil
}

func (d *TeamDAO) FindByNameInCompetition(ctx context.Context, name string, competitionID uint) (Team, error) {
	var team Team

	result := d.db.WithContext(ctx).
		Where("name = ? AND competition_id = ?", name, competitionID).
		First(&team)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Team{}, ErrTeamNotFound
		}

		return Team{}, result.Error
	}

	return team, nil
}

func (d *TeamDAO) FindByLeaderAndCompetition(ctx context.Context, leaderID, competitionID uint) (Team, error) {
	var team Team

	result := d.db.WithContext(ctx).
		Where("leader_id = ? AND competition_id = ?", leaderID, competitionID).
		First(&team)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Team{}, ErrTeamNotFound
		}

		return Team{}, result.Error
	}

	return team, nil
}

func (d *TeamDAO) FindByLeaderID(ctx context.Context, leaderID uint) ([]Team, error) {
	var teams []Team

	result := d.db.WithContext(ctx).Where("leader_id = ?", leaderID).Find(&teams)
	if result.Error != nil {
		return nil, result.Error
	}

	return teams, nil
}

// FindByMember returns every team whose member list contains userID.
func (d *TeamDAO) FindByMember(ctx context.Context, userID uint) ([]Team, error) {
	var teams []Team

	membersJSON, err := json.Marshal([]uint{userID})
	if err != nil {
		return nil, err
	}

	result := d.db.WithContext(ctx).
		Where("members @> ?", string(membersJSON)).
		Find(&teams)
	if result.Error != nil {
		return nil, result.Error
	}

	return teams, nil
}

// StopPublication closes the team for further joins: open slots drop to zero
// and the team goes INACTIVE, while existing membership is preserved. Pending
// join requests and the leader's join notifications are swept in the same
// transaction.
func (d *TeamDAO) StopPublication(ctx context.Context, teamID, leaderID uint) (Team, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Team{}).
			Where("id = ?", teamID).
			Updates(map[string]interface{}{
				"open_slots": 0,
				"status":     "INACTIVE",
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTeamNotFound
		}

		if err := tx.Where("team_id = ?", teamID).Delete(&JoinRequest{}).Error; err != nil {
			return err
		}

		return tx.Where("team_id = ? AND receiver_id = ?", teamID, leaderID).
			Delete(&Notification{}).Error
	})
	if err != nil {
		return Team{}, err
	}

	return d.FindByID(ctx, teamID)
}

// Deactivate only persists the closed state without sweeping requests.
// Used when the parent competition has already expired and the call is
// reported as failed anyway.
func (d *TeamDAO) Deactivate(ctx context.Context, teamID uint) error {
	result := d.db.WithContext(ctx).
		Model(&Team{}).
		Where("id = ?", teamID).
		Updates(map[string]interface{}{
			"open_slots": 0,
			"status":     "INACTIVE",
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTeamNotFound
	}

	return nil
}

// ApproveMember commits a leader's approval in a single transaction:
// notification and join-request cleanup, the membership write, and the
// derived participant row all land together or not at all.
//
// The membership write is a conditional single-statement update guarded by
// open_slots > 0, so concurrent approvals against the last slot cannot both
// succeed: the loser sees zero affected rows and gets ErrTeamFull.
func (d *TeamDAO) ApproveMember(ctx context.Context, teamID, leaderID, memberID, competitionID uint) (Team, error) {
	var team Team

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ? AND receiver_id = ?", teamID, leaderID).
			Delete(&Notification{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ? AND team_id = ?", memberID, teamID).
			Delete(&JoinRequest{}).Error; err != nil {
			return err
		}

		memberJSON, err := json.Marshal([]uint{memberID})
		if err != nil {
			return err
		}

		result := tx.Model(&Team{}).
			Where("id = ? AND open_slots > 0", teamID).
			Updates(map[string]interface{}{
				"members":    gorm.Expr("members || ?::jsonb", string(memberJSON)),
				"open_slots": gorm.Expr("open_slots - 1"),
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTeamFull
		}

		// New members inherit the team's shared reimbursement/result linkage,
		// which is attributed through the leader's participant row.
		var leaderParticipant Participant
		if err := tx.Where("user_id = ? AND competition_id = ?", leaderID, competitionID).
			First(&leaderParticipant).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrParticipantNotFound
			}
			return err
		}

		participant := Participant{
			UserID:          memberID,
			CompetitionID:   competitionID,
			TeamID:          &teamID,
			IsLeader:        false,
			ResultID:        leaderParticipant.ResultID,
			ReimburseStatus: leaderParticipant.ReimburseStatus,
		}
		if err := tx.Create(&participant).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return ErrAlreadyParticipating
			}
			return err
		}

		return tx.First(&team, teamID).Error
	})
	if err != nil {
		return Team{}, err
	}

	return team, nil
}

// RejectMember performs only the unconditional cleanup: the pending request
// and the leader's join notifications disappear, membership is untouched.
func (d *TeamDAO) RejectMember(ctx context.Context, teamID, leaderID, memberID uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ? AND receiver_id = ?", teamID, leaderID).
			Delete(&Notification{}).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ? AND team_id = ?", memberID, teamID).
			Delete(&JoinRequest{}).Error
	})
}

// DeleteCascade removes a team and everything hanging off it in one
// transaction. The member list and competition ID are captured before the
// first delete because the later deletes key off them.
func (d *TeamDAO) DeleteCascade(ctx context.Context, teamID uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var team Team
		if err := tx.First(&team, teamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTeamNotFound
			}
			return err
		}

		roster := append(MemberList{team.LeaderID}, team.Members...)

		if err := tx.Where("team_id = ?", teamID).Delete(&Participant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("competition_id = ? AND user_id IN ?", team.CompetitionID, []uint(roster)).
			Delete(&CompetitionResult{}).Error; err != nil {
			return err
		}
		if err := tx.Where("competition_id = ? AND user_id IN ?", team.CompetitionID, []uint(roster)).
			Delete(&Reimbursement{}).Error; err != nil {
			return err
		}
		if err := tx.Where("team_id = ?", teamID).Delete(&JoinRequest{}).Error; err != nil {
			return err
		}
		if err := tx.Where("team_id = ? AND receiver_id = ?", teamID, team.LeaderID).
			Delete(&Notification{}).Error; err != nil {
			return err
		}

		return tx.Delete(&Team{}, teamID).Error
	})
}
