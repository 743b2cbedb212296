package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/codepedia/lomba-api/internal/domain"
	"github.com/codepedia/lomba-api/internal/repository"
)

var (
	ErrTeamNotFound         = repository.ErrTeamNotFound
	ErrTeamFull             = repository.ErrTeamFull
	ErrAlreadyMember        = errors.New("user is already a member of this team")
	ErrDuplicateJoinRequest = repository.ErrDuplicateJoinRequest
	ErrAlreadyParticipating = repository.ErrAlreadyParticipating
	ErrNotTeamLeader        = errors.New("only the team leader can modify this team")
	ErrCompetitionExpired   = errors.New("competition has expired")
	ErrUnknownDecision      = errors.New("decision must be approve or reject")
)

type TeamRepository interface {
	Create(ctx context.Context, team domain.Team) (domain.Team, error)
	FindByID(ctx context.Context, id uint) (domain.Team, error)
	FindAll(ctx context.Context) ([]domain.Team, error)
	FindByCompetitionID(ctx context.Context, competitionID uint) ([]domain.Team, error)
	NameExistsInCompetition(ctx context.Context, name string, competitionID uint) (bool, error)
	FindByLeaderAndCompetition(ctx context.Context, leaderID, competitionID uint) (domain.Team, error)
	FindByLeaderID(ctx context.Context, leaderID uint) ([]domain.Team, error)
	FindByMember(ctx context.Context, userID uint) ([]domain.Team, error)
	StopPublication(ctx context.Context, teamID, leaderID uint) (domain.Team, error)
	Deactivate(ctx context.Context, teamID uint) error
	ApproveMember(ctx context.Context, teamID, leaderID, memberID, competitionID uint) (domain.Team, error)
	RejectMember(ctx context.Context, teamID, leaderID, memberID uint) error
	DeleteCascade(ctx context.Context, teamID uint) error
}

type TeamService struct {
	repo            TeamRepository
	userRepo        UserRepository
	competitionRepo CompetitionRepository
	notifRepo       NotificationRepository
}

func NewTeamService(repo TeamRepository, userRepo UserRepository, competitionRepo CompetitionRepository, notifRepo NotificationRepository) *TeamService {
	return &TeamService{
		repo:            repo,
		userRepo:        userRepo,
		competitionRepo: competitionRepo,
		notifRepo:       notifRepo,
	}
}

// RequestJoin files a join request against an open team and notifies the
// leader. Preconditions are checked in order: the team exists, has an open
// slot, the requester is not already on it, has no pending request for it,
// and is not yet registered for the competition at all.
func (s *TeamService) RequestJoin(ctx context.Context, teamID, userID uint) (domain.Team, error) {
	team, err := s.repo.FindByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return domain.Team{}, ErrTeamNotFound
		}
		return domain.Team{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if team.OpenSlots <= 0 {
		return domain.Team{}, ErrTeamFull
	}

	if team.LeaderID == userID || containsID(team.Members, userID) {
		return domain.Team{}, ErrAlreadyMember
	}

	pending, err := s.notifRepo.JoinRequestExists(ctx, userID, teamID)
	if err != nil {
		return domain.Team{}, fmt.Errorf("s.notifRepo.JoinRequestExists -> %w", err)
	}
	if pending {
		return domain.Team{}, ErrDuplicateJoinRequest
	}

	_, err = s.competitionRepo.FindParticipant(ctx, userID, team.CompetitionID)
	if err == nil {
		return domain.Team{}, ErrAlreadyParticipating
	}
	if !errors.Is(err, repository.ErrParticipantNotFound) {
		return domain.Team{}, fmt.Errorf("s.competitionRepo.FindParticipant -> %w", err)
	}

	requester, err := s.userRepo.FindSummaryByID(ctx, userID)
	if err != nil {
		return domain.Team{}, fmt.Errorf("s.userRepo.FindSummaryByID -> %w", err)
	}

	if _, err = s.notifRepo.CreateJoinRequest(ctx, domain.JoinRequest{
		UserID:        userID,
		TeamID:        teamID,
		CompetitionID: team.CompetitionID,
	}); err != nil {
		if errors.Is(err, repository.ErrDuplicateJoinRequest) {
			return domain.Team{}, ErrDuplicateJoinRequest
		}
		return domain.Team{}, fmt.Errorf("s.notifRepo.CreateJoinRequest -> %w", err)
	}

	if _, err = s.notifRepo.Create(ctx, domain.Notification{
		SenderID:   userID,
		ReceiverID: team.LeaderID,
		TeamID:     &teamID,
		Title:      "Permintaan Bergabung",
		Message: fmt.Sprintf("%s ingin bergabung dengan tim %s pada %s",
			requester.Name, team.Name, formatIndonesianTime(time.Now())),
	}); err != nil {
		return domain.Team{}, fmt.Errorf("s.notifRepo.Create -> %w", err)
	}

	return team, nil
}

// Decide is the leader's verdict on a pending join request. The storage layer
// runs the whole approve path in one transaction, so a failed membership
// write also restores the join request and the leader's notifications.
func (s *TeamService) Decide(ctx context.Context, teamID, leaderID, memberID uint, action string) (domain.MemberDecision, error) {
	team, err := s.repo.FindByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return domain.MemberDecision{}, ErrTeamNotFound
		}
		return domain.MemberDecision{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if team.LeaderID != leaderID {
		return domain.MemberDecision{}, ErrNotTeamLeader
	}

	switch action {
	case "approve":
		updated, err := s.repo.ApproveMember(ctx, teamID, leaderID, memberID, team.CompetitionID)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrTeamFull):
				return domain.MemberDecision{}, ErrTeamFull
			case errors.Is(err, repository.ErrAlreadyParticipating):
				return domain.MemberDecision{}, ErrAlreadyParticipating
			}
			return domain.MemberDecision{}, fmt.Errorf("s.repo.ApproveMember -> %w", err)
		}

		enriched, err := s.enrich(ctx, updated)
		if err != nil {
			return domain.MemberDecision{}, fmt.Errorf("s.enrich -> %w", err)
		}

		return domain.MemberDecision{
			Status: "approved",
			Team:   &enriched,
		}, nil
	case "reject":
		if err := s.repo.RejectMember(ctx, teamID, leaderID, memberID); err != nil {
			return domain.MemberDecision{}, fmt.Errorf("s.repo.RejectMember -> %w", err)
		}

		return domain.MemberDecision{
			Status: "rejected",
			Msg:    "rejected by leader",
		}, nil
	}

	return domain.MemberDecision{}, ErrUnknownDecision
}

// StopPublication closes the team for further joins. When the competition has
// already ended the closed state is still persisted, but the call reports
// ErrCompetitionExpired so the caller knows the team was shut down late.
func (s *TeamService) StopPublication(ctx context.Context, teamID, leaderID uint) (domain.EnrichedTeam, error) {
	team, err := s.repo.FindByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return domain.EnrichedTeam{}, ErrTeamNotFound
		}
		return domain.EnrichedTeam{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if team.LeaderID != leaderID {
		return domain.EnrichedTeam{}, ErrNotTeamLeader
	}

	competition, err := s.competitionRepo.FindByID(ctx, team.CompetitionID)
	if err != nil {
		return domain.EnrichedTeam{}, fmt.Errorf("s.competitionRepo.FindByID -> %w", err)
	}

	if time.Now().After(competition.EndDate) {
		if err := s.repo.Deactivate(ctx, teamID); err != nil {
			return domain.EnrichedTeam{}, fmt.Errorf("s.repo.Deactivate -> %w", err)
		}

		return domain.EnrichedTeam{}, ErrCompetitionExpired
	}

	stopped, err := s.repo.StopPublication(ctx, teamID, leaderID)
	if err != nil {
		return domain.EnrichedTeam{}, fmt.Errorf("s.repo.StopPublication -> %w", err)
	}

	enriched, err := s.enrich(ctx, stopped)
	if err != nil {
		return domain.EnrichedTeam{}, fmt.Errorf("s.enrich -> %w", err)
	}

	return enriched, nil
}

func (s *TeamService) DeleteTeam(ctx context.Context, teamID, leaderID uint) error {
	team, err := s.repo.FindByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if team.LeaderID != leaderID {
		return ErrNotTeamLeader
	}

	if err := s.repo.DeleteCascade(ctx, teamID); err != nil {
		return fmt.Errorf("s.repo.DeleteCascade -> %w", err)
	}

	return nil
}

func (s *TeamService) GetTeam(ctx context.Context, teamID uint) (domain.EnrichedTeam, error) {
	team, err := s.repo.FindByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return domain.EnrichedTeam{}, ErrTeamNotFound
		}
		return domain.EnrichedTeam{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	enriched, err := s.enrich(ctx, team)
	if err != nil {
		return domain.EnrichedTeam{}, fmt.Errorf("s.enrich -> %w", err)
	}

	return enriched, nil
}

func (s *TeamService) GetAllTeams(ctx context.Context) ([]domain.EnrichedTeam, error) {
	teams, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return s.enrichAll(ctx, teams)
}

// GetTeamsForUser returns every team the user leads or belongs to, enriched.
func (s *TeamService) GetTeamsForUser(ctx context.Context, userID uint) ([]domain.EnrichedTeam, error) {
	led, err := s.repo.FindByLeaderID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByLeaderID -> %w", err)
	}

	joined, err := s.repo.FindByMember(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByMember -> %w", err)
	}

	return s.enrichAll(ctx, append(led, joined...))
}

func (s *TeamService) enrich(ctx context.Context, team domain.Team) (domain.EnrichedTeam, error) {
	leader, err := s.userRepo.FindSummaryByID(ctx, team.LeaderID)
	if err != nil {
		return domain.EnrichedTeam{}, fmt.Errorf("s.userRepo.FindSummaryByID -> %w", err)
	}

	members, err := s.userRepo.FindSummariesByIDs(ctx, team.Members)
	if err != nil {
		return domain.EnrichedTeam{}, fmt.Errorf("s.userRepo.FindSummariesByIDs -> %w", err)
	}

	summaries, err := s.competitionRepo.FindSummariesByIDs(ctx, []uint{team.CompetitionID})
	if err != nil {
		return domain.EnrichedTeam{}, fmt.Errorf("s.competitionRepo.FindSummariesByIDs -> %w", err)
	}

	return domain.EnrichedTeam{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		OpenSlots:   team.OpenSlots,
		Status:      team.Status,
		Leader:      leader,
		Members:     members,
		Competition: summaries[team.CompetitionID],
	}, nil
}

func (s *TeamService) enrichAll(ctx context.Context, teams []domain.Team) ([]domain.EnrichedTeam, error) {
	competitionIDs := make([]uint, 0, len(teams))
	for _, t := range teams {
		competitionIDs = append(competitionIDs, t.CompetitionID)
	}

	summaries, err := s.competitionRepo.FindSummariesByIDs(ctx, competitionIDs)
	if err != nil {
		return nil, fmt.Errorf("s.competitionRepo.FindSummariesByIDs -> %w", err)
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
			Competition: summaries[t.CompetitionID],
		})
	}

	return enriched, nil
}

func containsID(ids []uint, id uint) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// formatIndonesianTime renders a timestamp in the long id-ID form used in
// notification messages, e.g. "2 Januari 2026 pukul 14.05".
func formatIndonesianTime(t time.Time) string {
	return fmt.Sprintf("%d %s %d pukul %02d.%02d",
		t.Day(), indonesianMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}
