package service_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/codepedia/lomba-api/internal/domain"
)

// MockTeamRepository is a mock implementation of service.TeamRepository.
type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) Create(ctx context.Context, team domain.Team) (domain.Team, error) {
	args := m.Called(ctx, team)
	return args.Get(0).(domain.Team), args.Error(1)
}

func (m *MockTeamRepository) FindByID(ctx context.Context, id uint) (domain.Team, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Team), args.Error(1)
}

func (m *MockTeamRepository) FindAll(ctx context.Context) ([]domain.Team, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Team), args.Error(1)
}

func (m *MockTeamRepository) FindByCompetitionID(ctx context.Context, competitionID uint) ([]domain.Team, error) {
	args := m.Called(ctx, competitionID)
	return args.Get(0).([]domain.Team), args.Error(1)
}

func (m *MockTeamRepository) NameExistsInCompetition(ctx context.Context, name string, competitionID uint) (bool, error) {
	args := m.Called(ctx, name, competitionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTeamRepository) FindByLeaderAndCompetition(ctx context.Context, leaderID, competitionID uint) (domain.Team, error) {
	args := m.Called(ctx, leaderID, competitionID)
	return args.Get(0).(domain.Team), args.Error(1)
}

func (m *MockTeamRepository) FindByLeaderID(ctx context.Context, leaderID uint) ([]domain.Team, error) {
	args := m.Called(ctx, leaderID)
	return args.Get(0).([]domain.Team), args.Error(1)
}

func (m *MockTeamRepository) FindByMember(ctx context.Context, userID uint) ([]domain.Team, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Team), args.Error(1)
}

func (m *MockTeamRepository) StopPublication(ctx context.Context, teamID, leaderID uint) (domain.Team, error) {
	args := m.Called(ctx, teamID, leaderID)
	return args.Get(0).(domain.Team), args.Error(1)
}

func (m *MockTeamRepository) Deactivate(ctx context.Context, teamID uint) error {
	args := m.Called(ctx, teamID)
	return args.Error(0)
}

func (m *MockTeamRepository) ApproveMember(ctx context.Context, teamID, leaderID, memberID, competitionID uint) (domain.Team, error) {
	args := m.Called(ctx, teamID, leaderID, memberID, competitionID)
	return args.Get(0).(domain.Team), args.Error(1)
}

func (m *MockTeamRepository) RejectMember(ctx context.Context, teamID, leaderID, memberID uint) error {
	args := m.Called(ctx, teamID, leaderID, memberID)
	return args.Error(0)
}

func (m *MockTeamRepository) DeleteCascade(ctx context.Context, teamID uint) error {
	args := m.Called(ctx, teamID)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of service.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) FindSummariesByIDs(ctx context.Context, ids []uint) ([]domain.UserSummary, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]domain.UserSummary), args.Error(1)
}

func (m *MockUserRepository) FindSummaryByID(ctx context.Context, id uint) (domain.UserSummary, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.UserSummary), args.Error(1)
}

func (m *MockUserRepository) FindByStudentID(ctx context.Context, studentID string) (domain.User, error) {
	args := m.Called(ctx, studentID)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, studentID, hashed string) error {
	args := m.Called(ctx, studentID, hashed)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateProfileURL(ctx context.Context, studentID, url string) error {
	args := m.Called(ctx, studentID, url)
	return args.Error(0)
}

func (m *MockUserRepository) FindMajorByName(ctx context.Context, name string) (domain.Major, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Major), args.Error(1)
}

func (m *MockUserRepository) FindAllMajors(ctx context.Context) ([]domain.Major, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Major), args.Error(1)
}

// MockCompetitionRepository is a mock implementation of service.CompetitionRepository.
type MockCompetitionRepository struct {
	mock.Mock
}

func (m *MockCompetitionRepository) Create(ctx context.Context, competition domain.Competition) (domain.Competition, error) {
	args := m.Called(ctx, competition)
	return args.Get(0).(domain.Competition), args.Error(1)
}

func (m *MockCompetitionRepository) FindAll(ctx context.Context) ([]domain.Competition, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Competition), args.Error(1)
}

func (m *MockCompetitionRepository) FindByID(ctx context.Context, id uint) (domain.Competition, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Competition), args.Error(1)
}

func (m *MockCompetitionRepository) FindByIDs(ctx context.Context, ids []uint) ([]domain.Competition, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]domain.Competition), args.Error(1)
}

func (m *MockCompetitionRepository) FindSummariesByIDs(ctx context.Context, ids []uint) (map[uint]domain.CompetitionSummary, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(map[uint]domain.CompetitionSummary), args.Error(1)
}

func (m *MockCompetitionRepository) Update(ctx context.Context, competition domain.Competition) (domain.Competition, error) {
	args := m.Called(ctx, competition)
	return args.Get(0).(domain.Competition), args.Error(1)
}

func (m *MockCompetitionRepository) Delete(ctx context.Context, id uint) (domain.Competition, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Competition), args.Error(1)
}

func (m *MockCompetitionRepository) AddParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	args := m.Called(ctx, participant)
	return args.Get(0).(domain.Participant), args.Error(1)
}

func (m *MockCompetitionRepository) FindParticipant(ctx context.Context, userID, competitionID uint) (domain.Participant, error) {
	args := m.Called(ctx, userID, competitionID)
	return args.Get(0).(domain.Participant), args.Error(1)
}

func (m *MockCompetitionRepository) FindParticipationsByUser(ctx context.Context, userID uint) ([]domain.Participant, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Participant), args.Error(1)
}

func (m *MockCompetitionRepository) PromoteLeader(ctx context.Context, userID, competitionID, teamID uint) error {
	args := m.Called(ctx, userID, competitionID, teamID)
	return args.Error(0)
}

func (m *MockCompetitionRepository) UpdateReimburseStatus(ctx context.Context, userID, competitionID uint, status string) error {
	args := m.Called(ctx, userID, competitionID, status)
	return args.Error(0)
}

func (m *MockCompetitionRepository) LinkResult(ctx context.Context, participantID, resultID uint) error {
	args := m.Called(ctx, participantID, resultID)
	return args.Error(0)
}

func (m *MockCompetitionRepository) CreateResult(ctx context.Context, res domain.CompetitionResult) (domain.CompetitionResult, error) {
	args := m.Called(ctx, res)
	return args.Get(0).(domain.CompetitionResult), args.Error(1)
}

func (m *MockCompetitionRepository) FindResultByID(ctx context.Context, id uint) (domain.CompetitionResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.CompetitionResult), args.Error(1)
}

func (m *MockCompetitionRepository) FindResultByUser(ctx context.Context, competitionID, userID uint) (domain.CompetitionResult, error) {
	args := m.Called(ctx, competitionID, userID)
	return args.Get(0).(domain.CompetitionResult), args.Error(1)
}

func (m *MockCompetitionRepository) UpdateResult(ctx context.Context, res domain.CompetitionResult) (domain.CompetitionResult, error) {
	args := m.Called(ctx, res)
	return args.Get(0).(domain.CompetitionResult), args.Error(1)
}

// MockNotificationRepository is a mock implementation of service.NotificationRepository.
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, notification domain.Notification) (domain.Notification, error) {
	args := m.Called(ctx, notification)
	return args.Get(0).(domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) FindByReceiver(ctx context.Context, receiverID uint) ([]domain.Notification, error) {
	args := m.Called(ctx, receiverID)
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) DeleteForTeamAndReceiver(ctx context.Context, teamID, receiverID uint) error {
	args := m.Called(ctx, teamID, receiverID)
	return args.Error(0)
}

func (m *MockNotificationRepository) CreateJoinRequest(ctx context.Context, request domain.JoinRequest) (domain.JoinRequest, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(domain.JoinRequest), args.Error(1)
}

func (m *MockNotificationRepository) JoinRequestExists(ctx context.Context, userID, teamID uint) (bool, error) {
	args := m.Called(ctx, userID, teamID)
	return args.Bool(0), args.Error(1)
}

// MockReimbursementRepository is a mock implementation of service.ReimbursementRepository.
type MockReimbursementRepository struct {
	mock.Mock
}

func (m *MockReimbursementRepository) Create(ctx context.Context, reimbursement domain.Reimbursement) (domain.Reimbursement, error) {
	args := m.Called(ctx, reimbursement)
	return args.Get(0).(domain.Reimbursement), args.Error(1)
}

func (m *MockReimbursementRepository) FindAll(ctx context.Context) ([]domain.Reimbursement, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Reimbursement), args.Error(1)
}

func (m *MockReimbursementRepository) FindByID(ctx context.Context, id uint) (domain.Reimbursement, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Reimbursement), args.Error(1)
}

func (m *MockReimbursementRepository) FindFirstByUserAndCompetition(ctx context.Context, userID, competitionID uint) (domain.Reimbursement, error) {
	args := m.Called(ctx, userID, competitionID)
	return args.Get(0).(domain.Reimbursement), args.Error(1)
}

func (m *MockReimbursementRepository) FindFirstByCompetition(ctx context.Context, competitionID uint) (domain.Reimbursement, error) {
	args := m.Called(ctx, competitionID)
	return args.Get(0).(domain.Reimbursement), args.Error(1)
}

func (m *MockReimbursementRepository) UpdateStatus(ctx context.Context, id uint, status string) (domain.Reimbursement, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(domain.Reimbursement), args.Error(1)
}

// MockOTPStore is a mock implementation of service.OTPStore.
type MockOTPStore struct {
	mock.Mock
}

func (m *MockOTPStore) Set(ctx context.Context, studentID, code string) error {
	args := m.Called(ctx, studentID, code)
	return args.Error(0)
}

func (m *MockOTPStore) Get(ctx context.Context, studentID string) (string, error) {
	args := m.Called(ctx, studentID)
	return args.String(0), args.Error(1)
}

func (m *MockOTPStore) Delete(ctx context.Context, studentID string) error {
	args := m.Called(ctx, studentID)
	return args.Error(0)
}

// MockOTPMailer is a mock implementation of service.OTPMailer.
type MockOTPMailer struct {
	mock.Mock
}

func (m *MockOTPMailer) SendOTP(ctx context.Context, to, name, code string) error {
	args := m.Called(ctx, to, name, code)
	return args.Error(0)
}

// MockFileUploader is a mock implementation of service.FileUploader.
type MockFileUploader struct {
	mock.Mock
}

func (m *MockFileUploader) Upload(ctx context.Context, prefix, filename, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, prefix, filename, contentType, body)
	return args.String(0), args.Error(1)
}
