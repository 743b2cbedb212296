package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/codepedia/lomba-api/internal/domain"
	"github.com/codepedia/lomba-api/internal/repository"
)

var (
	ErrCompetitionNotFound = repository.ErrCompetitionNotFound
	ErrTeamNameTaken       = repository.ErrTeamNameTaken
	ErrNotParticipant      = errors.New("user is not a participant of this competition")
	ErrResultExists        = errors.New("competition result has already been submitted")
	ErrNoResultLink        = errors.New("participant has no competition result linked")
)

type CompetitionRepository interface {
	Create(ctx context.Context, competition domain.Competition) (domain.Competition, error)
	FindAll(ctx context.Context) ([]domain.Competition, error)
	FindByID(ctx context.Context, id uint) (domain.Competition, error)
	FindByIDs(ctx context.Context, ids []uint) ([]domain.Competition, error)
	FindSummariesByIDs(ctx context.Context, ids []uint) (map[uint]domain.CompetitionSummary, error)
	Update(ctx context.Context, competition domain.Competition) (domain.Competition, error)
	Delete(ctx context.Context, id uint) (domain.Competition, error)
	AddParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	FindParticipant(ctx context.Context, userID, competitionID uint) (domain.Participant, error)
	FindParticipationsByUser(ctx context.Context, userID uint) ([]domain.Participant, error)
	PromoteLeader(ctx context.Context, userID, competitionID, teamID uint) error
	UpdateReimburseStatus(ctx context.Context, userID, competitionID uint, status string) error
	LinkResult(ctx context.Context, participantID, resultID uint) error
	CreateResult(ctx context.Context, res domain.CompetitionResult) (domain.CompetitionResult, error)
	FindResultByID(ctx context.Context, id uint) (domain.CompetitionResult, error)
	FindResultByUser(ctx context.Context, competitionID, userID uint) (domain.CompetitionResult, error)
	UpdateResult(ctx context.Context, res domain.CompetitionResult) (domain.CompetitionResult, error)
}

type CompetitionService struct {
	repo          CompetitionRepository
	teamRepo      TeamRepository
	userRepo      UserRepository
	reimburseRepo ReimbursementRepository
}

func NewCompetitionService(repo CompetitionRepository, teamRepo TeamRepository, userRepo UserRepository, reimburseRepo ReimbursementRepository) *CompetitionService {
	return &CompetitionService{
		repo:          repo,
		teamRepo:      teamRepo,
		userRepo:      userRepo,
		reimburseRepo: reimburseRepo,
	}
}

func (s *CompetitionService) CreateCompetition(ctx context.Context, competition domain.Competition) (domain.Competition, error) {
	created, err := s.repo.Create(ctx, competition)
	if err != nil {
		return domain.Competition{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *CompetitionService) GetCompetitions(ctx context.Context) ([]domain.Competition, error) {
	competitions, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return competitions, nil
}

func (s *CompetitionService) GetCompetition(ctx context.Context, id uint) (domain.Competition, error) {
	competition, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCompetitionNotFound) {
			return domain.Competition{}, ErrCompetitionNotFound
		}
		return domain.Competition{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return competition, nil
}

func (s *CompetitionService) UpdateCompetition(ctx context.Context, competition domain.Competition) (domain.Competition, error) {
	updated, err := s.repo.Update(ctx, competition)
	if err != nil {
		if errors.Is(err, repository.ErrCompetitionNotFound) {
			return domain.Competition{}, ErrCompetitionNotFound
		}
		return domain.Competition{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *CompetitionService) DeleteCompetition(ctx context.Context, id uint) (domain.Competition, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCompetitionNotFound) {
			return domain.Competition{}, ErrCompetitionNotFound
		}
		return domain.Competition{}, fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return deleted, nil
}

// JoinCompetition registers the user as a plain participant. Team linkage
// comes later through team creation or a leader's approval.
func (s *CompetitionService) JoinCompetition(ctx context.Context, competitionID, userID uint, teamID *uint) (domain.Participant, error) {
	if _, err := s.repo.FindByID(ctx, competitionID); err != nil {
		if errors.Is(err, repository.ErrCompetitionNotFound) {
			return domain.Participant{}, ErrCompetitionNotFound
		}
		return domain.Participant{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	participant, err := s.repo.AddParticipant(ctx, domain.Participant{
		UserID:        userID,
		CompetitionID: competitionID,
		TeamID:        teamID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyParticipating) {
			return domain.Participant{}, ErrAlreadyParticipating
		}
		return domain.Participant{}, fmt.Errorf("s.repo.AddParticipant -> %w", err)
	}

	return participant, nil
}

// CreateTeam opens a team inside the competition. The caller must already be
// a participant; their participant row is promoted to leader and a blank
// competition result is seeded and linked so the later result upload has a
// row to fill.
func (s *CompetitionService) CreateTeam(ctx context.Context, competitionID uint, team domain.Team) (domain.Team, error) {
	if _, err := s.repo.FindByID(ctx, competitionID); err != nil {
		if errors.Is(err, repository.ErrCompetitionNotFound) {
			return domain.Team{}, ErrCompetitionNotFound
		}
		return domain.Team{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	participant, err := s.repo.FindParticipant(ctx, team.LeaderID, competitionID)
	if err != nil {
		if errors.Is(err, repository.ErrParticipantNotFound) {
			return domain.Team{}, ErrNotParticipant
		}
		return domain.Team{}, fmt.Errorf("s.repo.FindParticipant -> %w", err)
	}

	taken, err := s.teamRepo.NameExistsInCompetition(ctx, team.Name, competitionID)
	if err != nil {
		return domain.Team{}, fmt.Errorf("s.teamRepo.NameExistsInCompetition -> %w", err)
	}
	if taken {
		return domain.Team{}, ErrTeamNameTaken
	}

	team.CompetitionID = competitionID
	team.MaxMembers = team.OpenSlots + 1
	team.Status = domain.TeamStatusActive
	team.Members = []uint{}

	created, err := s.teamRepo.Create(ctx, team)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNameTaken) {
			return domain.Team{}, ErrTeamNameTaken
		}
		return domain.Team{}, fmt.Errorf("s.teamRepo.Create -> %w", err)
	}

	if err := s.repo.PromoteLeader(ctx, team.LeaderID, competitionID, created.ID); err != nil {
		return domain.Team{}, fmt.Errorf("s.repo.PromoteLeader -> %w", err)
	}

	seeded, err := s.repo.CreateResult(ctx, domain.CompetitionResult{
		CompetitionID: competitionID,
		UserID:        team.LeaderID,
	})
	if err != nil {
		return domain.Team{}, fmt.Errorf("s.repo.CreateResult -> %w", err)
	}

	if err := s.repo.LinkResult(ctx, participant.ID, seeded.ID); err != nil {
		return domain.Team{}, fmt.Errorf("s.repo.LinkResult -> %w", err)
	}

	return created, nil
}

func (s *CompetitionService) GetTeams(ctx context.Context, competitionID uint) ([]domain.EnrichedTeam, error) {
	if _, err := s.repo.FindByID(ctx, competitionID); err != nil {
		if errors.Is(err, repository.ErrCompetitionNotFound) {
			return nil, ErrCompetitionNotFound
		}
		return nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	teams, err := s.teamRepo.FindByCompetitionID(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("s.teamRepo.FindByCompetitionID -> %w", err)
	}

	summaries, err := s.repo.FindSummariesByIDs(ctx, []uint{competitionID})
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindSummariesByIDs -> %w", err)
	}

	enriched := make([]domain.EnrichedTeam, 0, len(teams))
	for _, t := range teams {
		leader, err := s.userRepo.FindSummaryByID(ctx, t.LeaderID)
		if err != nil {
			return nil, fmt.Errorf("s.userRepo.FindSummaryByID -> %w", err)
		}

		members, err := s.userRepo.FindSummariesByIDs(ctx, t.Members)
		if err != nil {
			return nil, fmt.Errorf("s.userRepo.FindSummariesByIDs -> %w", err)
		}

		enriched = append(enriched, domain.EnrichedTeam{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			OpenSlots:   t.OpenSlots,
			Status:      t.Status,
			Leader:      leader,
			Members:     members,
			Competition: summaries[competitionID],
		})
	}

	return enriched, nil
}

// GetUserStatus aggregates everything the frontend needs to render one
// user's standing inside a competition. Reads are independent; a concurrent
// writer may make the snapshot slightly stale but never inconsistent within
// a single field.
func (s *CompetitionService) GetUserStatus(ctx context.Context, competitionID, userID uint) (domain.UserCompetitionStatus, error) {
	var status domain.UserCompetitionStatus

	participant, err := s.repo.FindParticipant(ctx, userID, competitionID)
	if err != nil {
		if errors.Is(err, repository.ErrParticipantNotFound) {
			return status, nil
		}
		return status, fmt.Errorf("s.repo.FindParticipant -> %w", err)
	}

	status.IsJoined = true
	status.IsLeader = participant.IsLeader

	var leaderID uint
	if participant.TeamID != nil {
		team, err := s.teamRepo.FindByID(ctx, *participant.TeamID)
		if err != nil {
			if !errors.Is(err, repository.ErrTeamNotFound) {
				return status, fmt.Errorf("s.teamRepo.FindByID -> %w", err)
			}
		} else {
			status.HasTeam = true
			status.TeamDetails = &domain.TeamSlot{
				ID:        team.ID,
				Name:      team.Name,
				OpenSlots: team.OpenSlots,
				LeaderID:  team.LeaderID,
			}
			leaderID = team.LeaderID
		}
	}

	reimburse, err := s.reimburseRepo.FindFirstByUserAndCompetition(ctx, userID, competitionID)
	if err != nil && !errors.Is(err, repository.ErrReimbursementNotFound) {
		return status, fmt.Errorf("s.reimburseRepo.FindFirstByUserAndCompetition -> %w", err)
	}
	if err != nil && status.HasTeam && leaderID != userID {
		// Team claims are filed once by the leader.
		reimburse, err = s.reimburseRepo.FindFirstByUserAndCompetition(ctx, leaderID, competitionID)
		if err != nil && !errors.Is(err, repository.ErrReimbursementNotFound) {
			return status, fmt.Errorf("s.reimburseRepo.FindFirstByUserAndCompetition -> %w", err)
		}
	}
	if err == nil {
		status.ReimburseDetail = &reimburse
	}
	status.HasReimburse = status.ReimburseDetail != nil || participant.ReimburseStatus != nil

	if participant.ResultID != nil {
		result, err := s.repo.FindResultByID(ctx, *participant.ResultID)
		if err != nil {
			if !errors.Is(err, repository.ErrResultNotFound) {
				return status, fmt.Errorf("s.repo.FindResultByID -> %w", err)
			}
		} else {
			status.CompetitionResult = &result
		}
	}

	return status, nil
}

// GetCompetitionMembers resolves the roster of the team the leader runs in
// this competition.
func (s *CompetitionService) GetCompetitionMembers(ctx context.Context, competitionID, leaderID uint) (domain.TeamRoster, error) {
	team, err := s.teamRepo.FindByLeaderAndCompetition(ctx, leaderID, competitionID)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return domain.TeamRoster{}, ErrTeamNotFound
		}
		return domain.TeamRoster{}, fmt.Errorf("s.teamRepo.FindByLeaderAndCompetition -> %w", err)
	}

	leader, err := s.userRepo.FindSummaryByID(ctx, team.LeaderID)
	if err != nil {
		return domain.TeamRoster{}, fmt.Errorf("s.userRepo.FindSummaryByID -> %w", err)
	}

	members, err := s.userRepo.FindSummariesByIDs(ctx, team.Members)
	if err != nil {
		return domain.TeamRoster{}, fmt.Errorf("s.userRepo.FindSummariesByIDs -> %w", err)
	}

	return domain.TeamRoster{
		Leader:  leader,
		Members: members,
	}, nil
}

// SubmitReimbursement files a PENDING claim and stamps the participant row so
// later member approvals inherit the claim status.
func (s *CompetitionService) SubmitReimbursement(ctx context.Context, competitionID, userID uint, claim domain.Reimbursement) (domain.Reimbursement, error) {
	if _, err := s.repo.FindParticipant(ctx, userID, competitionID); err != nil {
		if errors.Is(err, repository.ErrParticipantNotFound) {
			return domain.Reimbursement{}, ErrNotParticipant
		}
		return domain.Reimbursement{}, fmt.Errorf("s.repo.FindParticipant -> %w", err)
	}

	claim.CompetitionID = competitionID
	claim.UserID = userID
	claim.Status = domain.ReimburseStatusPending

	created, err := s.reimburseRepo.Create(ctx, claim)
	if err != nil {
		return domain.Reimbursement{}, fmt.Errorf("s.reimburseRepo.Create -> %w", err)
	}

	if err := s.repo.UpdateReimburseStatus(ctx, userID, competitionID, domain.ReimburseStatusPending); err != nil {
		return domain.Reimbursement{}, fmt.Errorf("s.repo.UpdateReimburseStatus -> %w", err)
	}

	return created, nil
}

// VerifyReimbursement returns the claim covering the user in this
// competition: their own claim, or their team leader's when the user is a
// plain member.
func (s *CompetitionService) VerifyReimbursement(ctx context.Context, competitionID, userID uint) (domain.Reimbursement, error) {
	claim, err := s.reimburseRepo.FindFirstByUserAndCompetition(ctx, userID, competitionID)
	if err == nil {
		return claim, nil
	}
	if !errors.Is(err, repository.ErrReimbursementNotFound) {
		return domain.Reimbursement{}, fmt.Errorf("s.reimburseRepo.FindFirstByUserAndCompetition -> %w", err)
	}

	participant, err := s.repo.FindParticipant(ctx, userID, competitionID)
	if err != nil || participant.TeamID == nil {
		return domain.Reimbursement{}, ErrReimbursementNotFound
	}

	team, err := s.teamRepo.FindByID(ctx, *participant.TeamID)
	if err != nil || team.LeaderID == userID {
		return domain.Reimbursement{}, ErrReimbursementNotFound
	}

	claim, err = s.reimburseRepo.FindFirstByUserAndCompetition(ctx, team.LeaderID, competitionID)
	if err != nil {
		if errors.Is(err, repository.ErrReimbursementNotFound) {
			return domain.Reimbursement{}, ErrReimbursementNotFound
		}
		return domain.Reimbursement{}, fmt.Errorf("s.reimburseRepo.FindFirstByUserAndCompetition -> %w", err)
	}

	return claim, nil
}

// UploadResult fills the participant's linked competition result. The result
// row is seeded blank at team creation; a non-empty result text means it was
// already filled.
func (s *CompetitionService) UploadResult(ctx context.Context, competitionID, userID uint, res domain.CompetitionResult) (domain.CompetitionResult, error) {
	participant, err := s.repo.FindParticipant(ctx, userID, competitionID)
	if err != nil {
		if errors.Is(err, repository.ErrParticipantNotFound) {
			return domain.CompetitionResult{}, ErrNotParticipant
		}
		return domain.CompetitionResult{}, fmt.Errorf("s.repo.FindParticipant -> %w", err)
	}

	if participant.ResultID == nil {
		return domain.CompetitionResult{}, ErrNoResultLink
	}

	existing, err := s.repo.FindResultByID(ctx, *participant.ResultID)
	if err != nil {
		return domain.CompetitionResult{}, fmt.Errorf("s.repo.FindResultByID -> %w", err)
	}

	if existing.Result != "" {
		return domain.CompetitionResult{}, ErrResultExists
	}

	existing.Result = res.Result
	existing.EvidenceURL = res.EvidenceURL
	existing.CertificateURL = res.CertificateURL

	updated, err := s.repo.UpdateResult(ctx, existing)
	if err != nil {
		return domain.CompetitionResult{}, fmt.Errorf("s.repo.UpdateResult -> %w", err)
	}

	return updated, nil
}
