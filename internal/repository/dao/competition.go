package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrCompetitionNotFound = errors.New("competition not found")
	ErrResultNotFound      = errors.New("competition result not found")
)

type Competition struct {
	ID               uint   `gorm:"primaryKey"`
	Title            string `gorm:"not null"`
	Description      string
	Category         string
	Level            string `gorm:"not null"` // Provincial, National or International
	Type             string `gorm:"not null"` // Individual or Team
	PosterURL        string
	RegistrationLink string
	GuidebookLink    string
	StartDate        time.Time
	EndDate          time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type CompetitionResult struct {
	ID             uint `gorm:"primaryKey"`
	CompetitionID  uint `gorm:"not null;index"`
	UserID         uint `gorm:"not null;index"`
	Result         string
	EvidenceURL    string
	CertificateURL string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CompetitionDAO struct {
	db *gorm.DB
}

func NewCompetitionDAO(db *gorm.DB) *CompetitionDAO {
	return &CompetitionDAO{
		db: db,
	}
}

func (d *CompetitionDAO) Insert(ctx context.Context, competition Competition) (Competition, error) {
	result := d.db.WithContext(ctx).Create(&competition)
	if result.Error != nil {
		return Competition{}, result.Error
	}

	return competition, nil
}

func (d *CompetitionDAO) FindAll(ctx context.Context) ([]Competition, error) {
	var competitions []Competition

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&competitions)
	if result.Error != nil {
		return nil, result.Error
	}

	return competitions, nil
}

func (d *CompetitionDAO) FindByID(ctx context.Context, id uint) (Competition, error) {
	var competition Competition

	result := d.db.WithContext(ctx).First(&competition, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Competition{}, ErrCompetitionNotFound
		}

		return Competition{}, result.Error
	}

	return competition, nil
}

func (d *CompetitionDAO) FindByIDs(ctx context.Context, ids []uint) ([]Competition, error) {
	var competitions []Competition

	result := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&competitions)
	if result.Error != nil {
		return nil, result.Error
	}

	return competitions, nil
}

func (d *CompetitionDAO) Update(ctx context.Context, competition Competition) (Competition, error) {
	result := d.db.WithContext(ctx).
		Model(&Competition{ID: competition.ID}).
		Updates(&competition)
	if result.Error != nil {
		return Competition{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Competition{}, ErrCompetitionNotFound
	}

	return d.FindByID(ctx, competition.ID)
}

// Delete removes the competition and every dependent row in one transaction.
// The schema has no ON DELETE CASCADE, so cleanup is explicit.
func (d *CompetitionDAO) Delete(ctx context.Context, id uint) (Competition, error) {
	var competition Competition

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&competition, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCompetitionNotFound
			}
			return err
		}

		for _, model := range []interface{}{
			&Participant{}, &CompetitionResult{}, &Reimbursement{}, &JoinRequest{},
		} {
			if err := tx.Where("competition_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("competition_id = ?", id).Delete(&Team{}).Error; err != nil {
			return err
		}

		return tx.Delete(&Competition{}, id).Error
	})
	if err != nil {
		return Competition{}, err
	}

	return competition, nil
}

func (d *CompetitionDAO) InsertResult(ctx context.Context, res CompetitionResult) (CompetitionResult, error) {
	result := d.db.WithContext(ctx).Create(&res)
	if result.Error != nil {
		return CompetitionResult{}, result.Error
	}

	return res, nil
}

func (d *CompetitionDAO) FindResultByID(ctx context.Context, id uint) (CompetitionResult, error) {
	var res CompetitionResult

	result := d.db.WithContext(ctx).First(&res, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return CompetitionResult{}, ErrResultNotFound
		}

		return CompetitionResult{}, result.Error
	}

	return res, nil
}

func (d *CompetitionDAO) FindResultByUser(ctx context.Context, competitionID, userID uint) (CompetitionResult, error) {
	var res CompetitionResult

	result := d.db.WithContext(ctx).
		Where("competition_id = ? AND user_id = ?", competitionID, userID).
		First(&res)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return CompetitionResult{}, ErrResultNotFound
		}

		return CompetitionResult{}, result.Error
	}

	return res, nil
}

func (d *CompetitionDAO) UpdateResult(ctx context.Context, res CompetitionResult) (CompetitionResult, error) {
	result := d.db.WithContext(ctx).
		Model(&CompetitionResult{ID: res.ID}).
		Updates(map[string]interface{}{
			"result":          res.Result,
			"evidence_url":    res.EvidenceURL,
			"certificate_url": res.CertificateURL,
			"updated_at":      time.Now(),
		})
	if result.Error != nil {
		return CompetitionResult{}, result.Error
	}
	if result.RowsAffected == 0 {
		return CompetitionResult{}, ErrResultNotFound
	}

	return d.FindResultByID(ctx, res.ID)
}
