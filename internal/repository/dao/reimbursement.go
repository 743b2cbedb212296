package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrReimbursementNotFound = errors.New("reimbursement not found")

type Reimbursement struct {
	ID            uint `gorm:"primaryKey"`
	CompetitionID uint `gorm:"not null;index"`
	UserID        uint `gorm:"not null;index"`
	Name          string
	BankName      string
	CardNumber    string
	ReceiptURL    string
	Status        string `gorm:"not null;default:PENDING"` // PENDING, PROCESS, APPROVED or REJECTED
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ReimbursementDAO struct {
	db *gorm.DB
}

func NewReimbursementDAO(db *gorm.DB) *ReimbursementDAO {
	return &ReimbursementDAO{
		db: db,
	}
}

func (d *ReimbursementDAO) Insert(ctx context.Context, reimbursement Reimbursement) (Reimbursement, error) {
	result := d.db.WithContext(ctx).Create(&reimbursement)
	if result.Error != nil {
		return Reimbursement{}, result.Error
	}

	return reimbursement, nil
}

func (d *ReimbursementDAO) FindAll(ctx context.Context) ([]Reimbursement, error) {
	var reimbursements []Reimbursement

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&reimbursements)
	if result.Error != nil {
		return nil, result.Error
	}

	return reimbursements, nil
}

func (d *ReimbursementDAO) FindByID(ctx context.Context, id uint) (Reimbursement, error) {
	var reimbursement Reimbursement

	result := d.db.WithContext(ctx).First(&reimbursement, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Reimbursement{}, ErrReimbursementNotFound
		}

		return Reimbursement{}, result.Error
	}

	return reimbursement, nil
}

func (d *ReimbursementDAO) FindFirstByUserAndCompetition(ctx context.Context, userID, competitionID uint) (Reimbursement, error) {
	var reimbursement Reimbursement

	result := d.db.WithContext(ctx).
		Where("user_id = ? AND competition_id = ?", userID, competitionID).
		First(&reimbursement)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Reimbursement{}, ErrReimbursementNotFound
		}

		return Reimbursement{}, result.Error
	}

	return reimbursement, nil
}

func (d *ReimbursementDAO) FindFirstByCompetition(ctx context.Context, competitionID uint) (Reimbursement, error) {
	var reimbursement Reimbursement

	result := d.db.WithContext(ctx).
		Where("competition_id = ?", competitionID).
		First(&reimbursement)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Reimbursement{}, ErrReimbursementNotFound
		}

		return Reimbursement{}, result.Error
	}

	return reimbursement, nil
}

func (d *ReimbursementDAO) UpdateStatus(ctx context.Context, id uint, status string) (Reimbursement, error) {
	result := d.db.WithContext(ctx).
		Model(&Reimbursement{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return Reimbursement{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Reimbursement{}, ErrReimbursementNotFound
	}

	return d.FindByID(ctx, id)
}
