package repository

import (
	"context"
	"fmt"

	"github.com/codepedia/lomba-api/internal/domain"
	"github.com/codepedia/lomba-api/internal/repository/dao"
)

var (
	ErrStudentIDExists = dao.ErrStudentIDExists
	ErrEmailExists     = dao.ErrEmailExists
	ErrUserNotFound    = dao.ErrUserNotFound
	ErrMajorNotFound   = dao.ErrMajorNotFound
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	FindByID(ctx context.Context, id uint) (dao.User, error)
	FindByIDs(ctx context.Context, ids []uint) ([]dao.User, error)
	FindByStudentID(ctx context.Context, studentID string) (dao.User, error)
	FindByEmail(ctx context.Context, email string) (dao.User, error)
	UpdatePassword(ctx context.Context, studentID, hashed string) error
	UpdateProfileURL(ctx context.Context, studentID, url string) error
	FindMajorByName(ctx context.Context, name string) (dao.Major, error)
	FindAllMajors(ctx context.Context) ([]dao.Major, error)
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := r.dao.Insert(ctx, dao.User{
		StudentID: user.StudentID,
		Email:     user.Email,
		Password:  user.Password,
		Name:      user.Name,
		Role:      user.Role,
		Cohort:    user.Cohort,
		MajorID:   user.MajorID,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

// FindSummariesByIDs resolves user IDs to display summaries, preserving the
// order of ids. Unknown IDs are skipped.
func (r *UserRepository) FindSummariesByIDs(ctx context.Context, ids []uint) ([]domain.UserSummary, error) {
	if len(ids) == 0 {
		return []domain.UserSummary{}, nil
	}

	found, err := r.dao.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByIDs -> %w", err)
	}

	byID := make(map[uint]dao.User, len(found))
	for _, u := range found {
		byID[u.ID] = u
	}

	summaries := make([]domain.UserSummary, 0, len(ids))
	for _, id := range ids {
		if u, ok := byID[id]; ok {
			summaries = append(summaries, r.daoToSummary(u))
		}
	}

	return summaries, nil
}

func (r *UserRepository) FindSummaryByID(ctx context.Context, id uint) (domain.UserSummary, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.UserSummary{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToSummary(found), nil
}

func (r *UserRepository) FindByStudentID(ctx context.Context, studentID string) (domain.User, error) {
	found, err := r.dao.FindByStudentID(ctx, studentID)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByStudentID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, studentID, hashed string) error {
	if err := r.dao.UpdatePassword(ctx, studentID, hashed); err != nil {
		return fmt.Errorf("r.dao.UpdatePassword -> %w", err)
	}

	return nil
}

func (r *UserRepository) UpdateProfileURL(ctx context.Context, studentID, url string) error {
	if err := r.dao.UpdateProfileURL(ctx, studentID, url); err != nil {
		return fmt.Errorf("r.dao.UpdateProfileURL -> %w", err)
	}

	return nil
}

func (r *UserRepository) FindMajorByName(ctx context.Context, name string) (domain.Major, error) {
	found, err := r.dao.FindMajorByName(ctx, name)
	if err != nil {
		return domain.Major{}, fmt.Errorf("r.dao.FindMajorByName -> %w", err)
	}

	return r.majorDaoToDomain(found), nil
}

func (r *UserRepository) FindAllMajors(ctx context.Context) ([]domain.Major, error) {
	found, err := r.dao.FindAllMajors(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllMajors -> %w", err)
	}

	majors := make([]domain.Major, len(found))
	for i, m := range found {
		majors[i] = r.majorDaoToDomain(m)
	}

	return majors, nil
}

func (r *UserRepository) daoToDomain(u dao.User) domain.User {
	return domain.User{
		ID:         u.ID,
		StudentID:  u.StudentID,
		Name:       u.Name,
		Email:      u.Email,
		Password:   u.Password,
		Role:       u.Role,
		Cohort:     u.Cohort,
		ProfileURL: u.ProfileURL,
		MajorID:    u.MajorID,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func (r *UserRepository) daoToSummary(u dao.User) domain.UserSummary {
	return domain.UserSummary{
		ID:         u.ID,
		StudentID:  u.StudentID,
		Name:       u.Name,
		ProfileURL: u.ProfileURL,
	}
}

func (r *UserRepository) majorDaoToDomain(m dao.Major) domain.Major {
	return domain.Major{
		ID:        m.ID,
		Major:     m.Major,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
