package repository

import (
	"context"
	"fmt"

	"github.com/codepedia/lomba-api/internal/domain"
	"github.com/codepedia/lomba-api/internal/repository/dao"
)

var ErrReimbursementNotFound = dao.ErrReimbursementNotFound

type ReimbursementDAO interface {
	Insert(ctx context.Context, reimbursement dao.Reimbursement) (dao.Reimbursement, error)
	FindAll(ctx context.Context) ([]dao.Reimbursement, error)
	FindByID(ctx context.Context, id uint) (dao.Reimbursement, error)
	FindFirstByUserAndCompetition(ctx context.Context, userID, competitionID uint) (dao.Reimbursement, error)
	FindFirstByCompetition(ctx context.Context, competitionID uint) (dao.Reimbursement, error)
	UpdateStatus(ctx context.Context, id uint, status string) (dao.Reimbursement, error)
}

type ReimbursementRepository struct {
	dao ReimbursementDAO
}

func NewReimbursementRepository(dao ReimbursementDAO) *ReimbursementRepository {
	return &ReimbursementRepository{
		dao: dao,
	}
}

func (r *ReimbursementRepository) Create(ctx context.Context, reimbursement domain.Reimbursement) (domain.Reimbursement, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(reimbursement))
	if err != nil {
		return domain.Reimbursement{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ReimbursementRepository) FindAll(ctx context.Context) ([]domain.Reimbursement, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	reimbursements := make([]domain.Reimbursement, len(found))
	for i, re := range found {
		reimbursements[i] = r.daoToDomain(re)
	}

	return reimbursements, nil
}

func (r *ReimbursementRepository) FindByID(ctx context.Context, id uint) (domain.Reimbursement, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Reimbursement{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ReimbursementRepository) FindFirstByUserAndCompetition(ctx context.Context, userID, competitionID uint) (domain.Reimbursement, error) {
	found, err := r.dao.FindFirstByUserAndCompetition(ctx, userID, competitionID)
	if err != nil {
		return domain.Reimbursement{}, fmt.Errorf("r.dao.FindFirstByUserAndCompetition -> %w", err)
	}

	return r.daoToDomain(found), nil
}

// FindFirstByCompetition returns the earliest claim filed against the
// competition. Team claims are filed once by the leader, so the first row is
// the team's claim.
func (r *ReimbursementRepository) FindFirstByCompetition(ctx context.Context, competitionID uint) (domain.Reimbursement, error) {
	found, err := r.dao.FindFirstByCompetition(ctx, competitionID)
	if err != nil {
		return domain.Reimbursement{}, fmt.Errorf("r.dao.FindFirstByCompetition -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ReimbursementRepository) UpdateStatus(ctx context.Context, id uint, status string) (domain.Reimbursement, error) {
	updated, err := r.dao.UpdateStatus(ctx, id, status)
	if err != nil {
		return domain.Reimbursement{}, fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ReimbursementRepository) domainToDao(re domain.Reimbursement) dao.Reimbursement {
	return dao.Reimbursement{
		ID:            re.ID,
		CompetitionID: re.CompetitionID,
		UserID:        re.UserID,
		Name:          re.Name,
		BankName:      re.BankName,
		CardNumber:    re.CardNumber,
		ReceiptURL:    re.ReceiptURL,
		Status:        re.Status,
		CreatedAt:     re.CreatedAt,
		UpdatedAt:     re.UpdatedAt,
	}
}

func (r *ReimbursementRepository) daoToDomain(re dao.Reimbursement) domain.Reimbursement {
	return domain.Reimbursement{
		ID:            re.ID,
		CompetitionID: re.CompetitionID,
		UserID:        re.UserID,
		Name:          re.Name,
		BankName:      re.BankName,
		CardNumber:    re.CardNumber,
		ReceiptURL:    re.ReceiptURL,
		Status:        re.Status,
		CreatedAt:     re.CreatedAt,
		UpdatedAt:     re.UpdatedAt,
	}
}
