package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/codepedia/lomba-api/internal/domain"
	"github.com/codepedia/lomba-api/internal/repository"
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindSummariesByIDs(ctx context.Context, ids []uint) ([]domain.UserSummary, error)
	FindSummaryByID(ctx context.Context, id uint) (domain.UserSummary, error)
	FindByStudentID(ctx context.Context, studentID string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	UpdatePassword(ctx context.Context, studentID, hashed string) error
	UpdateProfileURL(ctx context.Context, studentID, url string) error
	FindMajorByName(ctx context.Context, name string) (domain.Major, error)
	FindAllMajors(ctx context.Context) ([]domain.Major, error)
}

type UserService struct {
	repo            UserRepository
	competitionRepo CompetitionRepository
}

func NewUserService(repo UserRepository, competitionRepo CompetitionRepository) *UserService {
	return &UserService{
		repo:            repo,
		competitionRepo: competitionRepo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

// GetJoinedCompetitions lists the competitions the user participates in,
// newest registration first per the participations read order.
func (s *UserService) GetJoinedCompetitions(ctx context.Context, userID uint) ([]domain.Competition, error) {
	participations, err := s.competitionRepo.FindParticipationsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.competitionRepo.FindParticipationsByUser -> %w", err)
	}

	ids := make([]uint, 0, len(participations))
	for _, p := range participations {
		ids = append(ids, p.CompetitionID)
	}
	if len(ids) == 0 {
		return []domain.Competition{}, nil
	}

	competitions, err := s.competitionRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("s.competitionRepo.FindByIDs -> %w", err)
	}

	return competitions, nil
}

func (s *UserService) GetMajors(ctx context.Context) ([]domain.Major, error) {
	majors, err := s.repo.FindAllMajors(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllMajors -> %w", err)
	}

	return majors, nil
}
