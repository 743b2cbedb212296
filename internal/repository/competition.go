package repository

import (
	"context"
	"fmt"

	"github.com/codepedia/lomba-api/internal/domain"
	"github.com/codepedia/lomba-api/internal/repository/dao"
)

var (
	ErrCompetitionNotFound  = dao.ErrCompetitionNotFound
	ErrResultNotFound       = dao.ErrResultNotFound
	ErrAlreadyParticipating = dao.ErrAlreadyParticipating
	ErrParticipantNotFound  = dao.ErrParticipantNotFound
)

type CompetitionDAO interface {
	Insert(ctx context.Context, competition dao.Competition) (dao.Competition, error)
	FindAll(ctx context.Context) ([]dao.Competition, error)
	FindByID(ctx context.Context, id uint) (dao.Competition, error)
	FindByIDs(ctx context.Context, ids []uint) ([]dao.Competition, error)
	Update(ctx context.Context, competition dao.Competition) (dao.Competition, error)
	Delete(ctx context.Context, id uint) (dao.Competition, error)
	InsertResult(ctx context.Context, res dao.CompetitionResult) (dao.CompetitionResult, error)
	FindResultByID(ctx context.Context, id uint) (dao.CompetitionResult, error)
	FindResultByUser(ctx context.Context, competitionID, userID uint) (dao.CompetitionResult, error)
	UpdateResult(ctx context.Context, res dao.CompetitionResult) (dao.CompetitionResult, error)
}

type ParticipantDAO interface {
	Insert(ctx context.Context, participant dao.Participant) (dao.Participant, error)
	FindByUserAndCompetition(ctx context.Context, userID, competitionID uint) (dao.Participant, error)
	FindByUserID(ctx context.Context, userID uint) ([]dao.Participant, error)
	PromoteLeader(ctx context.Context, userID, competitionID, teamID uint) error
	UpdateReimburseStatus(ctx context.Context, userID, competitionID uint, status string) error
	LinkResult(ctx context.Context, participantID, resultID uint) error
}

type CompetitionRepository struct {
	dao             CompetitionDAO
	participantsDAO ParticipantDAO
}

func NewCompetitionRepository(dao CompetitionDAO, participantsDAO ParticipantDAO) *CompetitionRepository {
	return &CompetitionRepository{
		dao:             dao,
		participantsDAO: participantsDAO,
	}
}

func (r *CompetitionRepository) Create(ctx context.Context, competition domain.Competition) (domain.Competition, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(competition))
	if err != nil {
		return domain.Competition{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *CompetitionRepository) FindAll(ctx context.Context) ([]domain.Competition, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	competitions := make([]domain.Competition, len(found))
	for i, c := range found {
		competitions[i] = r.daoToDomain(c)
	}

	return competitions, nil
}

func (r *CompetitionRepository) FindByID(ctx context.Context, id uint) (domain.Competition, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Competition{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *CompetitionRepository) FindByIDs(ctx context.Context, ids []uint) ([]domain.Competition, error) {
	found, err := r.dao.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByIDs -> %w", err)
	}

	competitions := make([]domain.Competition, len(found))
	for i, c := range found {
		competitions[i] = r.daoToDomain(c)
	}

	return competitions, nil
}

// FindSummariesByIDs resolves competition summaries keyed by ID so callers can
// attach them to teams without an N+1 fetch.
func (r *CompetitionRepository) FindSummariesByIDs(ctx context.Context, ids []uint) (map[uint]domain.CompetitionSummary, error) {
	found, err := r.dao.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByIDs -> %w", err)
	}

	summaries := make(map[uint]domain.CompetitionSummary, len(found))
	for _, c := range found {
		summaries[c.ID] = domain.CompetitionSummary{
			ID:       c.ID,
			Title:    c.Title,
			Category: c.Category,
			Level:    c.Level,
			EndDate:  c.EndDate,
		}
	}

	return summaries, nil
}

func (r *CompetitionRepository) Update(ctx context.Context, competition domain.Competition) (domain.Competition, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(competition))
	if err != nil {
		return domain.Competition{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *CompetitionRepository) Delete(ctx context.Context, id uint) (domain.Competition, error) {
	deleted, err := r.dao.Delete(ctx, id)
	if err != nil {
		return domain.Competition{}, fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return r.daoToDomain(deleted), nil
}

func (r *CompetitionRepository) AddParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	created, err := r.participantsDAO.Insert(ctx, dao.Participant{
		UserID:          participant.UserID,
		CompetitionID:   participant.CompetitionID,
		TeamID:          participant.TeamID,
		IsLeader:        participant.IsLeader,
		ResultID:        participant.ResultID,
		ReimburseStatus: participant.ReimburseStatus,
	})
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.participantsDAO.Insert -> %w", err)
	}

	return r.participantDaoToDomain(created), nil
}

func (r *CompetitionRepository) FindParticipant(ctx context.Context, userID, competitionID uint) (domain.Participant, error) {
	found, err := r.participantsDAO.FindByUserAndCompetition(ctx, userID, competitionID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.participantsDAO.FindByUserAndCompetition -> %w", err)
	}

	return r.participantDaoToDomain(found), nil
}

func (r *CompetitionRepository) FindParticipationsByUser(ctx context.Context, userID uint) ([]domain.Participant, error) {
	found, err := r.participantsDAO.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.participantsDAO.FindByUserID -> %w", err)
	}

	participants := make([]domain.Participant, len(found))
	for i, p := range found {
		participants[i] = r.participantDaoToDomain(p)
	}

	return participants, nil
}

func (r *CompetitionRepository) PromoteLeader(ctx context.Context, userID, competitionID, teamID uint) error {
	if err := r.participantsDAO.PromoteLeader(ctx, userID, competitionID, teamID); err != nil {
		return fmt.Errorf("r.participantsDAO.PromoteLeader -> %w", err)
	}

	return nil
}

func (r *CompetitionRepository) UpdateReimburseStatus(ctx context.Context, userID, competitionID uint, status string) error {
	if err := r.participantsDAO.UpdateReimburseStatus(ctx, userID, competitionID, status); err != nil {
		return fmt.Errorf("r.participantsDAO.UpdateReimburseStatus -> %w", err)
	}

	return nil
}

func (r *CompetitionRepository) LinkResult(ctx context.Context, participantID, resultID uint) error {
	if err := r.participantsDAO.LinkResult(ctx, participantID, resultID); err != nil {
		return fmt.Errorf("r.participantsDAO.LinkResult -> %w", err)
	}

	return nil
}

func (r *CompetitionRepository) CreateResult(ctx context.Context, res domain.CompetitionResult) (domain.CompetitionResult, error) {
	created, err := r.dao.InsertResult(ctx, r.resultDomainToDao(res))
	if err != nil {
		return domain.CompetitionResult{}, fmt.Errorf("r.dao.InsertResult -> %w", err)
	}

	return r.resultDaoToDomain(created), nil
}

func (r *CompetitionRepository) FindResultByID(ctx context.Context, id uint) (domain.CompetitionResult, error) {
	found, err := r.dao.FindResultByID(ctx, id)
	if err != nil {
		return domain.CompetitionResult{}, fmt.Errorf("r.dao.FindResultByID -> %w", err)
	}

	return r.resultDaoToDomain(found), nil
}

func (r *CompetitionRepository) FindResultByUser(ctx context.Context, competitionID, userID uint) (domain.CompetitionResult, error) {
	found, err := r.dao.FindResultByUser(ctx, competitionID, userID)
	if err != nil {
		return domain.CompetitionResult{}, fmt.Errorf("r.dao.FindResultByUser -> %w", err)
	}

	return r.resultDaoToDomain(found), nil
}

func (r *CompetitionRepository) UpdateResult(ctx context.Context, res domain.CompetitionResult) (domain.CompetitionResult, error) {
	updated, err := r.dao.UpdateResult(ctx, r.resultDomainToDao(res))
	if err != nil {
		return domain.CompetitionResult{}, fmt.Errorf("r.dao.UpdateResult -> %w", err)
	}

	return r.resultDaoToDomain(updated), nil
}

func (r *CompetitionRepository) domainToDao(c domain.Competition) dao.Competition {
	return dao.Competition{
		ID:               c.ID,
		Title:            c.Title,
		Description:      c.Description,
		Category:         c.Category,
		Level:            c.Level,
		Type:             c.Type,
		PosterURL:        c.PosterURL,
		RegistrationLink: c.RegistrationLink,
		GuidebookLink:    c.GuidebookLink,
		StartDate:        c.StartDate,
		EndDate:          c.EndDate,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func (r *CompetitionRepository) daoToDomain(c dao.Competition) domain.Competition {
	return domain.Competition{
		ID:               c.ID,
		Title:            c.Title,
		Description:      c.Description,
		Category:         c.Category,
		Level:            c.Level,
		Type:             c.Type,
		PosterURL:        c.PosterURL,
		RegistrationLink: c.RegistrationLink,
		GuidebookLink:    c.GuidebookLink,
		StartDate:        c.StartDate,
		EndDate:          c.EndDate,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func (r *CompetitionRepository) participantDaoToDomain(p dao.Participant) domain.Participant {
	return domain.Participant{
		ID:              p.ID,
		UserID:          p.UserID,
		CompetitionID:   p.CompetitionID,
		TeamID:          p.TeamID,
		IsLeader:        p.IsLeader,
		ResultID:        p.ResultID,
		ReimburseStatus: p.ReimburseStatus,
	}
}

func (r *CompetitionRepository) resultDomainToDao(res domain.CompetitionResult) dao.CompetitionResult {
	return dao.CompetitionResult{
		ID:             res.ID,
		CompetitionID:  res.CompetitionID,
		UserID:         res.UserID,
		Result:         res.Result,
		EvidenceURL:    res.EvidenceURL,
		CertificateURL: res.CertificateURL,
		CreatedAt:      res.CreatedAt,
		UpdatedAt:      res.UpdatedAt,
	}
}

func (r *CompetitionRepository) resultDaoToDomain(res dao.CompetitionResult) domain.CompetitionResult {
	return domain.CompetitionResult{
		ID:             res.ID,
		CompetitionID:  res.CompetitionID,
		UserID:         res.UserID,
		Result:         res.Result,
		EvidenceURL:    res.EvidenceURL,
		CertificateURL: res.CertificateURL,
		CreatedAt:      res.CreatedAt,
		UpdatedAt:      res.UpdatedAt,
	}
}
