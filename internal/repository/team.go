package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/codepedia/lomba-api/internal/domain"
	"github.com/codepedia/lomba-api/internal/repository/dao"
)

var (
	ErrTeamNotFound  = dao.ErrTeamNotFound
	ErrTeamNameTaken = dao.ErrTeamNameTaken
	ErrTeamFull      = dao.ErrTeamFull
)

type TeamDAO interface {
	Insert(ctx context.Context, team dao.Team) (dao.Team, error)
	FindByID(ctx context.Context, id uint) (dao.Team, error)
	FindAll(ctx context.Context) ([]dao.Team, error)
	FindByCompetitionID(ctx context.Context, competitionID uint) ([]dao.Team, error)
	FindByNameInCompetition(ctx context.Context, name string, competitionID uint) (dao.Team, error)
	FindByLeaderAndCompetition(ctx context.Context, leaderID, competitionID uint) (dao.Team, error)
	FindByLeaderID(ctx context.Context, leaderID uint) ([]dao.Team, error)
	FindByMember(ctx context.Context, userID uint) ([]dao.Team, error)
	StopPublication(ctx context.Context, teamID, leaderID uint) (dao.Team, error)
	Deactivate(ctx context.Context, teamID uint) error
	ApproveMember(ctx context.Context, teamID, leaderID, memberID, competitionID uint) (dao.Team, error)
	RejectMember(ctx context.Context, teamID, leaderID, memberID uint) error
	DeleteCascade(ctx context.Context, teamID uint) error
}

type TeamRepository struct {
	dao TeamDAO
}

func NewTeamRepository(dao TeamDAO) *TeamRepository {
	return &TeamRepository{
		dao: dao,
	}
}

func (r *TeamRepository) Create(ctx context.Context, team domain.Team) (domain.Team, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(team))
	if err != nil {
		return domain.Team{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *TeamRepository) FindByID(ctx context.Context, id uint) (domain.Team, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Team{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *TeamRepository) FindAll(ctx context.Context) ([]domain.Team, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *TeamRepository) FindByCompetitionID(ctx context.Context, competitionID uint) ([]domain.Team, error) {
	found, err := r.dao.FindByCompetitionID(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByCompetitionID -> %w", err)
	}

	return r.daosToDomain(found), nil
}

// NameExistsInCompetition reports whether a team already claimed the name
// within one competition. Team names are only unique per competition.
func (r *TeamRepository) NameExistsInCompetition(ctx context.Context, name string, competitionID uint) (bool, error) {
	_, err := r.dao.FindByNameInCompetition(ctx, name, competitionID)
	if err != nil {
		if errors.Is(err, dao.ErrTeamNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("r.dao.FindByNameInCompetition -> %w", err)
	}

	return true, nil
}

func (r *TeamRepository) FindByLeaderAndCompetition(ctx context.Context, leaderID, competitionID uint) (domain.Team, error) {
	found, err := r.dao.FindByLeaderAndCompetition(ctx, leaderID, competitionID)
	if err != nil {
		return domain.Team{}, fmt.Errorf("r.dao.FindByLeaderAndCompetition -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *TeamRepository) FindByLeaderID(ctx context.Context, leaderID uint) ([]domain.Team, error) {
	found, err := r.dao.FindByLeaderID(ctx, leaderID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByLeaderID -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *TeamRepository) FindByMember(ctx context.Context, userID uint) ([]domain.Team, error) {
	found, err := r.dao.FindByMember(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByMember -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *TeamRepository) StopPublication(ctx context.Context, teamID, leaderID uint) (domain.Team, error) {
	stopped, err := r.dao.StopPublication(ctx, teamID, leaderID)
	if err != nil {
		return domain.Team{}, fmt.Errorf("r.dao.StopPublication -> %w", err)
	}

	return r.daoToDomain(stopped), nil
}

func (r *TeamRepository) Deactivate(ctx context.Context, teamID uint) error {
	if err := r.dao.Deactivate(ctx, teamID); err != nil {
		return fmt.Errorf("r.dao.Deactivate -> %w", err)
	}

	return nil
}

func (r *TeamRepository) ApproveMember(ctx context.Context, teamID, leaderID, memberID, competitionID uint) (domain.Team, error) {
	updated, err := r.dao.ApproveMember(ctx, teamID, leaderID, memberID, competitionID)
	if err != nil {
		return domain.Team{}, fmt.Errorf("r.dao.ApproveMember -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *TeamRepository) RejectMember(ctx context.Context, teamID, leaderID, memberID uint) error {
	if err := r.dao.RejectMember(ctx, teamID, leaderID, memberID); err != nil {
		return fmt.Errorf("r.dao.RejectMember -> %w", err)
	}

	return nil
}

func (r *TeamRepository) DeleteCascade(ctx context.Context, teamID uint) error {
	if err := r.dao.DeleteCascade(ctx, teamID); err != nil {
		return fmt.Errorf("r.dao.DeleteCascade -> %w", err)
	}

	return nil
}

func (r *TeamRepository) domainToDao(t domain.Team) dao.Team {
	return dao.Team{
		ID:            t.ID,
		Name:          t.Name,
		CompetitionID: t.CompetitionID,
		LeaderID:      t.LeaderID,
		Members:       dao.MemberList(t.Members),
		Description:   t.Description,
		Phone:         t.Phone,
		MaxMembers:    t.MaxMembers,
		OpenSlots:     t.OpenSlots,
		EndDate:       t.EndDate,
		Status:        t.Status,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func (r *TeamRepository) daoToDomain(t dao.Team) domain.Team {
	return domain.Team{
		ID:            t.ID,
		Name:          t.Name,
		CompetitionID: t.CompetitionID,
		LeaderID:      t.LeaderID,
		Members:       []uint(t.Members),
		Description:   t.Description,
		Phone:         t.Phone,
		MaxMembers:    t.MaxMembers,
		OpenSlots:     t.OpenSlots,
		EndDate:       t.EndDate,
		Status:        t.Status,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func (r *TeamRepository) daosToDomain(teams []dao.Team) []domain.Team {
	out := make([]domain.Team, len(teams))
	for i, t := range teams {
		out[i] = r.daoToDomain(t)
	}
	return out
}
