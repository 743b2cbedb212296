package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/codepedia/lomba-api/internal/domain"
	"github.com/codepedia/lomba-api/internal/repository"
)

var ErrReimbursementNotFound = repository.ErrReimbursementNotFound

type ReimbursementRepository interface {
	Create(ctx context.Context, reimbursement domain.Reimbursement) (domain.Reimbursement, error)
	FindAll(ctx context.Context) ([]domain.Reimbursement, error)
	FindByID(ctx context.Context, id uint) (domain.Reimbursement, error)
	FindFirstByUserAndCompetition(ctx context.Context, userID, competitionID uint) (domain.Reimbursement, error)
	FindFirstByCompetition(ctx context.Context, competitionID uint) (domain.Reimbursement, error)
	UpdateStatus(ctx context.Context, id uint, status string) (domain.Reimbursement, error)
}

type AdminService struct {
	repo            ReimbursementRepository
	competitionRepo CompetitionRepository
	teamRepo        TeamRepository
	userRepo        UserRepository
}

func NewAdminService(repo ReimbursementRepository, competitionRepo CompetitionRepository, teamRepo TeamRepository, userRepo UserRepository) *AdminService {
	return &AdminService{
		repo:            repo,
		competitionRepo: competitionRepo,
		teamRepo:        teamRepo,
		userRepo:        userRepo,
	}
}

const latestReimburseCount = 10

// GetDashboard aggregates the review queue: totals, the approved and
// rejected splits, and the ten most recent claims with their competition
// summaries.
func (s *AdminService) GetDashboard(ctx context.Context) (domain.ReimburseDashboard, error) {
	claims, err := s.repo.FindAll(ctx)
	if err != nil {
		return domain.ReimburseDashboard{}, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	competitionIDs := make([]uint, 0, len(claims))
	for _, c := range claims {
		competitionIDs = append(competitionIDs, c.CompetitionID)
	}

	summaries, err := s.competitionRepo.FindSummariesByIDs(ctx, competitionIDs)
	if err != nil {
		return domain.ReimburseDashboard{}, fmt.Errorf("s.competitionRepo.FindSummariesByIDs -> %w", err)
	}

	overview := func(claim domain.Reimbursement) domain.ReimburseOverview {
		row := domain.ReimburseOverview{Reimbursement: claim}
		if summary, ok := summaries[claim.CompetitionID]; ok {
			row.Competition = &summary
		}
		return row
	}

	dashboard := domain.ReimburseDashboard{
		TotalReimburses: len(claims),
	}
	for _, claim := range claims {
		switch claim.Status {
		case domain.ReimburseStatusApproved:
			dashboard.ApprovedReimburses.Data = append(dashboard.ApprovedReimburses.Data, overview(claim))
		case domain.ReimburseStatusRejected:
			dashboard.RejectedReimburses.Data = append(dashboard.RejectedReimburses.Data, overview(claim))
		}

		if len(dashboard.LatestReimburses.Data) < latestReimburseCount {
			dashboard.LatestReimburses.Data = append(dashboard.LatestReimburses.Data, overview(claim))
		}
	}
	dashboard.ApprovedReimburses.Count = len(dashboard.ApprovedReimburses.Data)
	dashboard.RejectedReimburses.Count = len(dashboard.RejectedReimburses.Data)
	dashboard.LatestReimburses.Count = len(dashboard.LatestReimburses.Data)

	return dashboard, nil
}

// GetReimburseDetail resolves one claim together with its competition and
// the claiming team's roster. Solo participants show up without members.
func (s *AdminService) GetReimburseDetail(ctx context.Context, id uint) (domain.ReimburseDetail, error) {
	claim, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReimbursementNotFound) {
			return domain.ReimburseDetail{}, ErrReimbursementNotFound
		}
		return domain.ReimburseDetail{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	competition, err := s.competitionRepo.FindByID(ctx, claim.CompetitionID)
	if err != nil {
		return domain.ReimburseDetail{}, fmt.Errorf("s.competitionRepo.FindByID -> %w", err)
	}

	detail := domain.ReimburseDetail{
		Reimbursement: claim,
		Competition: domain.ReimburseCompetition{
			ID:          competition.ID,
			Title:       competition.Title,
			Level:       competition.Level,
			Description: competition.Description,
			StartDate:   competition.StartDate,
			EndDate:     competition.EndDate,
		},
	}

	claimant, err := s.userRepo.FindSummaryByID(ctx, claim.UserID)
	if err != nil {
		return domain.ReimburseDetail{}, fmt.Errorf("s.userRepo.FindSummaryByID -> %w", err)
	}
	detail.Competition.Leader = &claimant

	team, err := s.teamRepo.FindByLeaderAndCompetition(ctx, claim.UserID, claim.CompetitionID)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return detail, nil
		}
		return domain.ReimburseDetail{}, fmt.Errorf("s.teamRepo.FindByLeaderAndCompetition -> %w", err)
	}

	members, err := s.userRepo.FindSummariesByIDs(ctx, team.Members)
	if err != nil {
		return domain.ReimburseDetail{}, fmt.Errorf("s.userRepo.FindSummariesByIDs -> %w", err)
	}
	detail.Competition.Members = members

	return detail, nil
}

func (s *AdminService) ApproveReimbursement(ctx context.Context, id uint) (domain.Reimbursement, error) {
	return s.updateStatus(ctx, id, domain.ReimburseStatusApproved)
}

func (s *AdminService) RejectReimbursement(ctx context.Context, id uint) (domain.Reimbursement, error) {
	return s.updateStatus(ctx, id, domain.ReimburseStatusRejected)
}

func (s *AdminService) ProcessReimbursement(ctx context.Context, id uint) (domain.Reimbursement, error) {
	return s.updateStatus(ctx, id, domain.ReimburseStatusProcess)
}

func (s *AdminService) updateStatus(ctx context.Context, id uint, status string) (domain.Reimbursement, error) {
	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrReimbursementNotFound) {
			return domain.Reimbursement{}, ErrReimbursementNotFound
		}
		return domain.Reimbursement{}, fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}

	// Keep the claimant's participant row in step with the claim. A missing
	// row can only mean the participant was removed after filing.
	if err := s.competitionRepo.UpdateReimburseStatus(ctx, updated.UserID, updated.CompetitionID, status); err != nil {
		if !errors.Is(err, repository.ErrParticipantNotFound) {
			return domain.Reimbursement{}, fmt.Errorf("s.competitionRepo.UpdateReimburseStatus -> %w", err)
		}
		zap.L().Warn("reimbursement claimant has no participant row",
			zap.Uint("reimbursement_id", updated.ID), zap.Uint("user_id", updated.UserID))
	}

	return updated, nil
}
