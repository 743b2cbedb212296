package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/codepedia/lomba-api/internal/domain"
	"github.com/codepedia/lomba-api/internal/pkg/otp"
	"github.com/codepedia/lomba-api/internal/repository"
	"github.com/codepedia/lomba-api/internal/service"
)

func newAuthService() (*service.AuthService, *MockUserRepository, *MockOTPStore, *MockOTPMailer, *MockFileUploader) {
	repo := new(MockUserRepository)
	store := new(MockOTPStore)
	mailer := new(MockOTPMailer)
	uploader := new(MockFileUploader)
	svc := service.NewAuthService(repo, store, mailer, uploader)

	return svc, repo, store, mailer, uploader
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	input := domain.User{
		StudentID: "2110512077",
		Name:      "Budi Santoso",
		Email:     "budi@student.ac.id",
		Password:  "rahasia123",
		Cohort:    "2021",
	}

	t.Run("hashes the password and mails a code", func(t *testing.T) {
		svc, repo, store, mailer, _ := newAuthService()

		repo.On("FindMajorByName", ctx, "Informatika").
			Return(domain.Major{ID: 2, Major: "Informatika"}, nil)
		repo.On("Create", ctx, mock.MatchedBy(func(u domain.User) bool {
			hashed := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("rahasia123")) == nil
			return hashed && u.Role == "USER" && u.MajorID == 2
		})).Return(domain.User{ID: 1, StudentID: "2110512077", Email: "budi@student.ac.id", Name: "Budi Santoso", Role: "USER"}, nil)
		store.On("Set", ctx, "2110512077", mock.AnythingOfType("string")).Return(nil)
		mailer.On("SendOTP", ctx, "budi@student.ac.id", "Budi Santoso", mock.AnythingOfType("string")).Return(nil)

		created, err := svc.Signup(ctx, input, "Informatika")

		assert.NoError(t, err)
		assert.Equal(t, uint(1), created.ID)
		mailer.AssertExpectations(t)
	})

	t.Run("mail failure does not undo the signup", func(t *testing.T) {
		svc, repo, store, mailer, _ := newAuthService()

		repo.On("FindMajorByName", ctx, "Informatika").
			Return(domain.Major{ID: 2}, nil)
		repo.On("Create", ctx, mock.Anything).
			Return(domain.User{ID: 1, StudentID: "2110512077"}, nil)
		store.On("Set", ctx, "2110512077", mock.AnythingOfType("string")).Return(nil)
		mailer.On("SendOTP", ctx, mock.Anything, mock.Anything, mock.AnythingOfType("string")).
			Return(assert.AnError)

		created, err := svc.Signup(ctx, input, "Informatika")

		assert.NoError(t, err)
		assert.Equal(t, uint(1), created.ID)
	})

	t.Run("unknown major", func(t *testing.T) {
		svc, repo, _, _, _ := newAuthService()

		repo.On("FindMajorByName", ctx, "Astrologi").
			Return(domain.Major{}, repository.ErrMajorNotFound)

		_, err := svc.Signup(ctx, input, "Astrologi")

		assert.ErrorIs(t, err, service.ErrMajorNotFound)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate student id", func(t *testing.T) {
		svc, repo, _, _, _ := newAuthService()

		repo.On("FindMajorByName", ctx, "Informatika").Return(domain.Major{ID: 2}, nil)
		repo.On("Create", ctx, mock.Anything).
			Return(domain.User{}, repository.ErrStudentIDExists)

		_, err := svc.Signup(ctx, input, "Informatika")

		assert.ErrorIs(t, err, service.ErrStudentIDExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.MinCost)
	assert.NoError(t, err)

	stored := domain.User{ID: 1, StudentID: "2110512077", Password: string(hash)}

	t.Run("valid credentials", func(t *testing.T) {
		svc, repo, _, _, _ := newAuthService()

		repo.On("FindByStudentID", ctx, "2110512077").Return(stored, nil)

		user, err := svc.Login(ctx, "2110512077", "rahasia123")

		assert.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, repo, _, _, _ := newAuthService()

		repo.On("FindByStudentID", ctx, "2110512077").Return(stored, nil)

		_, err := svc.Login(ctx, "2110512077", "salah")

		assert.ErrorIs(t, err, service.ErrWrongPassword)
	})

	t.Run("unknown student id", func(t *testing.T) {
		svc, repo, _, _, _ := newAuthService()

		repo.On("FindByStudentID", ctx, "0000000000").
			Return(domain.User{}, repository.ErrUserNotFound)

		_, err := svc.Login(ctx, "0000000000", "rahasia123")

		assert.ErrorIs(t, err, service.ErrUserNotFound)
	})
}

func TestAuthService_VerifyOTP(t *testing.T) {
	ctx := context.Background()

	t.Run("matching code is burned", func(t *testing.T) {
		svc, _, store, _, _ := newAuthService()

		store.On("Get", ctx, "2110512077").Return("4815", nil)
		store.On("Delete", ctx, "2110512077").Return(nil)

		err := svc.VerifyOTP(ctx, "2110512077", "4815")

		assert.NoError(t, err)
		store.AssertCalled(t, "Delete", ctx, "2110512077")
	})

	t.Run("mismatch keeps the code", func(t *testing.T) {
		svc, _, store, _, _ := newAuthService()

		store.On("Get", ctx, "2110512077").Return("4815", nil)

		err := svc.VerifyOTP(ctx, "2110512077", "0000")

		assert.ErrorIs(t, err, service.ErrInvalidOTP)
		store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("expired code", func(t *testing.T) {
		svc, _, store, _, _ := newAuthService()

		store.On("Get", ctx, "2110512077").Return("", otp.ErrNotFound)

		err := svc.VerifyOTP(ctx, "2110512077", "4815")

		assert.ErrorIs(t, err, service.ErrInvalidOTP)
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctx := context.Background()
	svc, repo, store, _, _ := newAuthService()

	store.On("Get", ctx, "2110512077").Return("4815", nil)
	store.On("Delete", ctx, "2110512077").Return(nil)
	repo.On("UpdatePassword", ctx, "2110512077", mock.MatchedBy(func(hashed string) bool {
		return bcrypt.CompareHashAndPassword([]byte(hashed), []byte("barubaru1")) == nil
	})).Return(nil)

	err := svc.ResetPassword(ctx, "2110512077", "4815", "barubaru1")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
