package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/codepedia/lomba-api/internal/domain"
	"github.com/codepedia/lomba-api/internal/repository"
	"github.com/codepedia/lomba-api/internal/service"
)

func newTeamService() (*service.TeamService, *MockTeamRepository, *MockUserRepository, *MockCompetitionRepository, *MockNotificationRepository) {
	teamRepo := new(MockTeamRepository)
	userRepo := new(MockUserRepository)
	competitionRepo := new(MockCompetitionRepository)
	notifRepo := new(MockNotificationRepository)
	svc := service.NewTeamService(teamRepo, userRepo, competitionRepo, notifRepo)

	return svc, teamRepo, userRepo, competitionRepo, notifRepo
}

func TestTeamService_RequestJoin(t *testing.T) {
	ctx := context.Background()

	openTeam := domain.Team{
		ID:            7,
		Name:          "Garuda",
		LeaderID:      1,
		CompetitionID: 3,
		Members:       []uint{2},
		OpenSlots:     2,
		Status:        domain.TeamStatusActive,
	}

	t.Run("files the request and notifies the leader", func(t *testing.T) {
		svc, teamRepo, userRepo, competitionRepo, notifRepo := newTeamService()

		teamRepo.On("FindByID", ctx, uint(7)).Return(openTeam, nil)
		notifRepo.On("JoinRequestExists", ctx, uint(5), uint(7)).Return(false, nil)
		competitionRepo.On("FindParticipant", ctx, uint(5), uint(3)).
			Return(domain.Participant{}, repository.ErrParticipantNotFound)
		userRepo.On("FindSummaryByID", ctx, uint(5)).
			Return(domain.UserSummary{ID: 5, Name: "Budi"}, nil)
		notifRepo.On("CreateJoinRequest", ctx, domain.JoinRequest{
			UserID:        5,
			TeamID:        7,
			CompetitionID: 3,
		}).Return(domain.JoinRequest{ID: 11}, nil)
		notifRepo.On("Create", ctx, mock.MatchedBy(func(n domain.Notification) bool {
			return n.SenderID == 5 && n.ReceiverID == 1 &&
				n.TeamID != nil && *n.TeamID == 7 &&
				n.Title == "Permintaan Bergabung"
		})).Return(domain.Notification{ID: 21}, nil)

		team, err := svc.RequestJoin(ctx, 7, 5)

		assert.NoError(t, err)
		assert.Equal(t, openTeam, team)
		notifRepo.AssertExpectations(t)
	})

	t.Run("rejects when the team has no open slots", func(t *testing.T) {
		svc, teamRepo, _, _, notifRepo := newTeamService()

		full := openTeam
		full.OpenSlots = 0
		teamRepo.On("FindByID", ctx, uint(7)).Return(full, nil)

		_, err := svc.RequestJoin(ctx, 7, 5)

		assert.ErrorIs(t, err, service.ErrTeamFull)
		notifRepo.AssertNotCalled(t, "CreateJoinRequest", mock.Anything, mock.Anything)
	})

	t.Run("rejects the leader joining their own team", func(t *testing.T) {
		svc, teamRepo, _, _, _ := newTeamService()

		teamRepo.On("FindByID", ctx, uint(7)).Return(openTeam, nil)

		_, err := svc.RequestJoin(ctx, 7, 1)

		assert.ErrorIs(t, err, service.ErrAlreadyMember)
	})

	t.Run("rejects an existing member", func(t *testing.T) {
		svc, teamRepo, _, _, _ := newTeamService()

		teamRepo.On("FindByID", ctx, uint(7)).Return(openTeam, nil)

		_, err := svc.RequestJoin(ctx, 7, 2)

		assert.ErrorIs(t, err, service.ErrAlreadyMember)
	})

	t.Run("rejects a second pending request", func(t *testing.T) {
		svc, teamRepo, _, _, notifRepo := newTeamService()

		teamRepo.On("FindByID", ctx, uint(7)).Return(openTeam, nil)
		notifRepo.On("JoinRequestExists", ctx, uint(5), uint(7)).Return(true, nil)

		_, err := svc.RequestJoin(ctx, 7, 5)

		assert.ErrorIs(t, err, service.ErrDuplicateJoinRequest)
		notifRepo.AssertNotCalled(t, "CreateJoinRequest", mock.Anything, mock.Anything)
	})

	t.Run("rejects a user already registered for the competition", func(t *testing.T) {
		svc, teamRepo, _, competitionRepo, notifRepo := newTeamService()

		teamRepo.On("FindByID", ctx, uint(7)).Return(openTeam, nil)
		notifRepo.On("JoinRequestExists", ctx, uint(5), uint(7)).Return(false, nil)
		competitionRepo.On("FindParticipant", ctx, uint(5), uint(3)).
			Return(domain.Participant{ID: 9, UserID: 5, CompetitionID: 3}, nil)

		_, err := svc.RequestJoin(ctx, 7, 5)

		assert.ErrorIs(t, err, service.ErrAlreadyParticipating)
	})

	t.Run("unknown team", func(t *testing.T) {
		svc, teamRepo, _, _, _ := newTeamService()

		teamRepo.On("FindByID", ctx, uint(99)).
			Return(domain.Team{}, repository.ErrTeamNotFound)

		_, err := svc.RequestJoin(ctx, 99, 5)

		assert.ErrorIs(t, err, service.ErrTeamNotFound)
	})
}

func TestTeamService_Decide(t *testing.T) {
	ctx := context.Background()

	team := domain.Team{
		ID:            7,
		Name:          "Garuda",
		LeaderID:      1,
		CompetitionID: 3,
		Members:       []uint{},
		OpenSlots:     2,
	}

	t.Run("only the leader can decide", func(t *testing.T) {
		svc, teamRepo, _, _, _ := newTeamService()

		teamRepo.On("FindByID", ctx, uint(7)).Return(team, nil)

		_, err := svc.Decide(ctx, 7, 42, 5, "approve")

		assert.ErrorIs(t, err, service.ErrNotTeamLeader)
		teamRepo.AssertNotCalled(t, "ApproveMember", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("approve returns the updated roster", func(t *testing.T) {
		svc, teamRepo, userRepo, competitionRepo, _ := newTeamService()

		updated := team
		updated.Members = []uint{5}
		updated.OpenSlots = 1

		teamRepo.On("FindByID", ctx, uint(7)).Return(team, nil)
		teamRepo.On("ApproveMember", ctx, uint(7), uint(1), uint(5), uint(3)).Return(updated, nil)
		userRepo.On("FindSummaryByID", ctx, uint(1)).Return(domain.UserSummary{ID: 1}, nil)
		userRepo.On("FindSummariesByIDs", ctx, []uint{5}).
			Return([]domain.UserSummary{{ID: 5}}, nil)
		competitionRepo.On("FindSummariesByIDs", ctx, []uint{3}).
			Return(map[uint]domain.CompetitionSummary{3: {ID: 3, Title: "Gemastik"}}, nil)

		decision, err := svc.Decide(ctx, 7, 1, 5, "approve")

		assert.NoError(t, err)
		assert.Equal(t, "approved", decision.Status)
		if assert.NotNil(t, decision.Team) {
			assert.Equal(t, 1, decision.Team.OpenSlots)
			assert.Len(t, decision.Team.Members, 1)
		}
	})

	t.Run("approve on a full team", func(t *testing.T) {
		svc, teamRepo, _, _, _ := newTeamService()

		teamRepo.On("FindByID", ctx, uint(7)).Return(team, nil)
		teamRepo.On("ApproveMember", ctx, uint(7), uint(1), uint(5), uint(3)).
			Return(domain.Team{}, repository.ErrTeamFull)

		_, err := svc.Decide(ctx, 7, 1, 5, "approve")

		assert.ErrorIs(t, err, service.ErrTeamFull)
	})

	t.Run("reject never touches the roster", func(t *testing.T) {
		svc, teamRepo, _, _, _ := newTeamService()

		teamRepo.On("FindByID", ctx, uint(7)).Return(team, nil)
		teamRepo.On("RejectMember", ctx, uint(7), uint(1), uint(5)).Return(nil)

		decision, err := svc.Decide(ctx, 7, 1, 5, "reject")

		assert.NoError(t, err)
		assert.Equal(t, "rejected", decision.Status)
		assert.Nil(t, decision.Team)
		teamRepo.AssertNotCalled(t, "ApproveMember", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown action", func(t *testing.T) {
		svc, teamRepo, _, _, _ := newTeamService()

		teamRepo.On("FindByID", ctx, uint(7)).Return(team, nil)

		_, err := svc.Decide(ctx, 7, 1, 5, "maybe")

		assert.ErrorIs(t, err, service.ErrUnknownDecision)
	})
}

func TestTeamService_StopPublication(t *testing.T) {
	ctx := context.Background()

	team := domain.Team{
		ID:            7,
		LeaderID:      1,
		CompetitionID: 3,
		Members:       []uint{},
		OpenSlots:     2,
		Status:        domain.TeamStatusActive,
	}

	t.Run("closes an active team", func(t *testing.T) {
		svc, teamRepo, userRepo, competitionRepo, _ := newTeamService()

		stopped := team
		stopped.Status = domain.TeamStatusInactive

		teamRepo.On("FindByID", ctx, uint(7)).Return(team, nil)
		competitionRepo.On("FindByID", ctx, uint(3)).
			Return(domain.Competition{ID: 3, EndDate: time.Now().Add(48 * time.Hour)}, nil)
		teamRepo.On("StopPublication", ctx, uint(7), uint(1)).Return(stopped, nil)
		userRepo.On("FindSummaryByID", ctx, uint(1)).Return(domain.UserSummary{ID: 1}, nil)
		userRepo.On("FindSummariesByIDs", ctx, []uint{}).Return([]domain.UserSummary{}, nil)
		competitionRepo.On("FindSummariesByIDs", ctx, []uint{3}).
			Return(map[uint]domain.CompetitionSummary{3: {ID: 3}}, nil)

		enriched, err := svc.StopPublication(ctx, 7, 1)

		assert.NoError(t, err)
		assert.Equal(t, domain.TeamStatusInactive, enriched.Status)
	})

	t.Run("still deactivates after the competition ended", func(t *testing.T) {
		svc, teamRepo, _, competitionRepo, _ := newTeamService()

		teamRepo.On("FindByID", ctx, uint(7)).Return(team, nil)
		competitionRepo.On("FindByID", ctx, uint(3)).
			Return(domain.Competition{ID: 3, EndDate: time.Now().Add(-time.Hour)}, nil)
		teamRepo.On("Deactivate", ctx, uint(7)).Return(nil)

		_, err := svc.StopPublication(ctx, 7, 1)

		assert.ErrorIs(t, err, service.ErrCompetitionExpired)
		teamRepo.AssertCalled(t, "Deactivate", ctx, uint(7))
		teamRepo.AssertNotCalled(t, "StopPublication", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("only the leader can close", func(t *testing.T) {
		svc, teamRepo, _, _, _ := newTeamService()

		teamRepo.On("FindByID", ctx, uint(7)).Return(team, nil)

		_, err := svc.StopPublication(ctx, 7, 42)

		assert.ErrorIs(t, err, service.ErrNotTeamLeader)
	})
}

func TestTeamService_DeleteTeam(t *testing.T) {
	ctx := context.Background()

	team := domain.Team{ID: 7, LeaderID: 1, CompetitionID: 3}

	t.Run("leader deletes the team", func(t *testing.T) {
		svc, teamRepo, _, _, _ := newTeamService()

		teamRepo.On("FindByID", ctx, uint(7)).Return(team, nil)
		teamRepo.On("DeleteCascade", ctx, uint(7)).Return(nil)

		err := svc.DeleteTeam(ctx, 7, 1)

		assert.NoError(t, err)
		teamRepo.AssertExpectations(t)
	})

	t.Run("non-leader is refused", func(t *testing.T) {
		svc, teamRepo, _, _, _ := newTeamService()

		teamRepo.On("FindByID", ctx, uint(7)).Return(team, nil)

		err := svc.DeleteTeam(ctx, 7, 42)

		assert.ErrorIs(t, err, service.ErrNotTeamLeader)
		teamRepo.AssertNotCalled(t, "DeleteCascade", mock.Anything, mock.Anything)
	})
}

func TestTeamService_GetTeamsForUser(t *testing.T) {
	ctx := context.Background()
	svc, teamRepo, userRepo, competitionRepo, _ := newTeamService()

	led := domain.Team{ID: 1, LeaderID: 9, CompetitionID: 3, Members: []uint{}}
	joined := domain.Team{ID: 2, LeaderID: 4, CompetitionID: 5, Members: []uint{9}}

	teamRepo.On("FindByLeaderID", ctx, uint(9)).Return([]domain.Team{led}, nil)
	teamRepo.On("FindByMember", ctx, uint(9)).Return([]domain.Team{joined}, nil)
	competitionRepo.On("FindSummariesByIDs", ctx, []uint{3, 5}).
		Return(map[uint]domain.CompetitionSummary{3: {ID: 3}, 5: {ID: 5}}, nil)
	userRepo.On("FindSummaryByID", ctx, uint(9)).Return(domain.UserSummary{ID: 9}, nil)
	userRepo.On("FindSummaryByID", ctx, uint(4)).Return(domain.UserSummary{ID: 4}, nil)
	userRepo.On("FindSummariesByIDs", ctx, []uint{}).Return([]domain.UserSummary{}, nil)
	userRepo.On("FindSummariesByIDs", ctx, []uint{9}).
		Return([]domain.UserSummary{{ID: 9}}, nil)

	teams, err := svc.GetTeamsForUser(ctx, 9)

	assert.NoError(t, err)
	assert.Len(t, teams, 2)
	assert.Equal(t, uint(3), teams[0].Competition.ID)
	assert.Equal(t, uint(5), teams[1].Competition.ID)
}
