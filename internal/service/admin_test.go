package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codepedia/lomba-api/internal/domain"
	"github.com/codepedia/lomba-api/internal/repository"
	"github.com/codepedia/lomba-api/internal/service"
)

func newAdminService() (*service.AdminService, *MockReimbursementRepository, *MockCompetitionRepository, *MockTeamRepository, *MockUserRepository) {
	repo := new(MockReimbursementRepository)
	competitionRepo := new(MockCompetitionRepository)
	teamRepo := new(MockTeamRepository)
	userRepo := new(MockUserRepository)
	svc := service.NewAdminService(repo, competitionRepo, teamRepo, userRepo)

	return svc, repo, competitionRepo, teamRepo, userRepo
}

func TestAdminService_GetDashboard(t *testing.T) {
	ctx := context.Background()
	svc, repo, competitionRepo, _, _ := newAdminService()

	claims := []domain.Reimbursement{
		{ID: 1, CompetitionID: 3, Status: domain.ReimburseStatusApproved},
		{ID: 2, CompetitionID: 3, Status: domain.ReimburseStatusRejected},
		{ID: 3, CompetitionID: 4, Status: domain.ReimburseStatusPending},
		{ID: 4, CompetitionID: 4, Status: domain.ReimburseStatusApproved},
	}

	repo.On("FindAll", ctx).Return(claims, nil)
	competitionRepo.On("FindSummariesByIDs", ctx, []uint{3, 3, 4, 4}).
		Return(map[uint]domain.CompetitionSummary{
			3: {ID: 3, Title: "Gemastik"},
			4: {ID: 4, Title: "Pimnas"},
		}, nil)

	dashboard, err := svc.GetDashboard(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 4, dashboard.TotalReimburses)
	assert.Equal(t, 2, dashboard.ApprovedReimburses.Count)
	assert.Equal(t, 1, dashboard.RejectedReimburses.Count)
	assert.Equal(t, 4, dashboard.LatestReimburses.Count)
	if assert.NotNil(t, dashboard.LatestReimburses.Data[0].Competition) {
		assert.Equal(t, "Gemastik", dashboard.LatestReimburses.Data[0].Competition.Title)
	}
}

func TestAdminService_GetReimburseDetail(t *testing.T) {
	ctx := context.Background()

	claim := domain.Reimbursement{ID: 4, CompetitionID: 3, UserID: 1, Status: domain.ReimburseStatusPending}
	competition := domain.Competition{ID: 3, Title: "Gemastik", Level: domain.CompetitionLevelNational}

	t.Run("team claim includes the roster", func(t *testing.T) {
		svc, repo, competitionRepo, teamRepo, userRepo := newAdminService()

		repo.On("FindByID", ctx, uint(4)).Return(claim, nil)
		competitionRepo.On("FindByID", ctx, uint(3)).Return(competition, nil)
		userRepo.On("FindSummaryByID", ctx, uint(1)).Return(domain.UserSummary{ID: 1, Name: "Budi"}, nil)
		teamRepo.On("FindByLeaderAndCompetition", ctx, uint(1), uint(3)).
			Return(domain.Team{ID: 7, LeaderID: 1, Members: []uint{5, 6}}, nil)
		userRepo.On("FindSummariesByIDs", ctx, []uint{5, 6}).
			Return([]domain.UserSummary{{ID: 5}, {ID: 6}}, nil)

		detail, err := svc.GetReimburseDetail(ctx, 4)

		assert.NoError(t, err)
		assert.Equal(t, "Gemastik", detail.Competition.Title)
		if assert.NotNil(t, detail.Competition.Leader) {
			assert.Equal(t, "Budi", detail.Competition.Leader.Name)
		}
		assert.Len(t, detail.Competition.Members, 2)
	})

	t.Run("solo claim has no members", func(t *testing.T) {
		svc, repo, competitionRepo, teamRepo, userRepo := newAdminService()

		repo.On("FindByID", ctx, uint(4)).Return(claim, nil)
		competitionRepo.On("FindByID", ctx, uint(3)).Return(competition, nil)
		userRepo.On("FindSummaryByID", ctx, uint(1)).Return(domain.UserSummary{ID: 1}, nil)
		teamRepo.On("FindByLeaderAndCompetition", ctx, uint(1), uint(3)).
			Return(domain.Team{}, repository.ErrTeamNotFound)

		detail, err := svc.GetReimburseDetail(ctx, 4)

		assert.NoError(t, err)
		assert.Empty(t, detail.Competition.Members)
	})

	t.Run("unknown claim", func(t *testing.T) {
		svc, repo, _, _, _ := newAdminService()

		repo.On("FindByID", ctx, uint(99)).
			Return(domain.Reimbursement{}, repository.ErrReimbursementNotFound)

		_, err := svc.GetReimburseDetail(ctx, 99)

		assert.ErrorIs(t, err, service.ErrReimbursementNotFound)
	})
}

func TestAdminService_ApproveReimbursement(t *testing.T) {
	ctx := context.Background()

	t.Run("stamps claim and participant", func(t *testing.T) {
		svc, repo, competitionRepo, _, _ := newAdminService()

		repo.On("UpdateStatus", ctx, uint(4), domain.ReimburseStatusApproved).
			Return(domain.Reimbursement{ID: 4, UserID: 1, CompetitionID: 3, Status: domain.ReimburseStatusApproved}, nil)
		competitionRepo.On("UpdateReimburseStatus", ctx, uint(1), uint(3), domain.ReimburseStatusApproved).
			Return(nil)

		updated, err := svc.ApproveReimbursement(ctx, 4)

		assert.NoError(t, err)
		assert.Equal(t, domain.ReimburseStatusApproved, updated.Status)
		competitionRepo.AssertExpectations(t)
	})

	t.Run("tolerates a removed participant row", func(t *testing.T) {
		svc, repo, competitionRepo, _, _ := newAdminService()

		repo.On("UpdateStatus", ctx, uint(4), domain.ReimburseStatusApproved).
			Return(domain.Reimbursement{ID: 4, UserID: 1, CompetitionID: 3, Status: domain.ReimburseStatusApproved}, nil)
		competitionRepo.On("UpdateReimburseStatus", ctx, uint(1), uint(3), domain.ReimburseStatusApproved).
			Return(repository.ErrParticipantNotFound)

		_, err := svc.ApproveReimbursement(ctx, 4)

		assert.NoError(t, err)
	})
}
