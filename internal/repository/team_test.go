package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/codepedia/lomba-api/internal/repository"
	"github.com/codepedia/lomba-api/internal/repository/dao"
)

type mockTeamDAO struct {
	mock.Mock
}

func (m *mockTeamDAO) Insert(ctx context.Context, team dao.Team) (dao.Team, error) {
	args := m.Called(ctx, team)
	return args.Get(0).(dao.Team), args.Error(1)
}

func (m *mockTeamDAO) FindByID(ctx context.Context, id uint) (dao.Team, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dao.Team), args.Error(1)
}

func (m *mockTeamDAO) FindAll(ctx context.Context) ([]dao.Team, error) {
	args := m.Called(ctx)
	return args.Get(0).([]dao.Team), args.Error(1)
}

func (m *mockTeamDAO) FindByCompetitionID(ctx context.Context, competitionID uint) ([]dao.Team, error) {
	args := m.Called(ctx, competitionID)
	return args.Get(0).([]dao.Team), args.Error(1)
}

func (m *mockTeamDAO) FindByNameInCompetition(ctx context.Context, name string, competitionID uint) (dao.Team, error) {
	args := m.Called(ctx, name, competitionID)
	return args.Get(0).(dao.Team), args.Error(1)
}

func (m *mockTeamDAO) FindByLeaderAndCompetition(ctx context.Context, leaderID, competitionID uint) (dao.Team, error) {
	args := m.Called(ctx, leaderID, competitionID)
	return args.Get(0).(dao.Team), args.Error(1)
}

func (m *mockTeamDAO) FindByLeaderID(ctx context.Context, leaderID uint) ([]dao.Team, error) {
	args := m.Called(ctx, leaderID)
	return args.Get(0).([]dao.Team), args.Error(1)
}

func (m *mockTeamDAO) FindByMember(ctx context.Context, userID uint) ([]dao.Team, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]dao.Team), args.Error(1)
}

func (m *mockTeamDAO) StopPublication(ctx context.Context, teamID, leaderID uint) (dao.Team, error) {
	args := m.Called(ctx, teamID, leaderID)
	return args.Get(0).(dao.Team), args.Error(1)
}

func (m *mockTeamDAO) Deactivate(ctx context.Context, teamID uint) error {
	args := m.Called(ctx, teamID)
	return args.Error(0)
}

func (m *mockTeamDAO) ApproveMember(ctx context.Context, teamID, leaderID, memberID, competitionID uint) (dao.Team, error) {
	args := m.Called(ctx, teamID, leaderID, memberID, competitionID)
	return args.Get(0).(dao.Team), args.Error(1)
}

func (m *mockTeamDAO) RejectMember(ctx context.Context, teamID, leaderID, memberID uint) error {
	args := m.Called(ctx, teamID, leaderID, memberID)
	return args.Error(0)
}

func (m *mockTeamDAO) DeleteCascade(ctx context.Context, teamID uint) error {
	args := m.Called(ctx, teamID)
	return args.Error(0)
}

func TestTeamRepository_NameExistsInCompetition(t *testing.T) {
	ctx := context.Background()

	t.Run("name already claimed", func(t *testing.T) {
		teamDAO := &mockTeamDAO{}
		repo := repository.NewTeamRepository(teamDAO)

		teamDAO.On("FindByNameInCompetition", ctx, "Garuda", uint(3)).
			Return(dao.Team{ID: 9, Name: "Garuda"}, nil)

		exists, err := repo.NameExistsInCompetition(ctx, "Garuda", 3)

		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("not-found sentinel folds to false even when wrapped", func(t *testing.T) {
		teamDAO := &mockTeamDAO{}
		repo := repository.NewTeamRepository(teamDAO)

		teamDAO.On("FindByNameInCompetition", ctx, "Garuda", uint(3)).
			Return(dao.Team{}, fmt.Errorf("teams lookup -> %w", dao.ErrTeamNotFound))

		exists, err := repo.NameExistsInCompetition(ctx, "Garuda", 3)

		assert.NoError(t, err)
		assert.False(t, exists)
	})
}
