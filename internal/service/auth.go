package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/codepedia/lomba-api/internal/domain"
	"github.com/codepedia/lomba-api/internal/pkg/otp"
	"github.com/codepedia/lomba-api/internal/repository"
)

var (
	ErrUserNotFound    = repository.ErrUserNotFound
	ErrStudentIDExists = repository.ErrStudentIDExists
	ErrEmailExists     = repository.ErrEmailExists
	ErrMajorNotFound   = repository.ErrMajorNotFound
	ErrWrongPassword   = errors.New("wrong password")
	ErrInvalidOTP      = errors.New("invalid or expired otp")
)

type OTPStore interface {
	Set(ctx context.Context, studentID, code string) error
	Get(ctx context.Context, studentID string) (string, error)
	Delete(ctx context.Context, studentID string) error
}

type OTPMailer interface {
	SendOTP(ctx context.Context, to, name, code string) error
}

type FileUploader interface {
	Upload(ctx context.Context, prefix, filename, contentType string, body io.Reader) (string, error)
}

type AuthService struct {
	repo     UserRepository
	otpStore OTPStore
	mailer   OTPMailer
	uploader FileUploader
}

func NewAuthService(repo UserRepository, otpStore OTPStore, mailer OTPMailer, uploader FileUploader) *AuthService {
	return &AuthService{
		repo:     repo,
		otpStore: otpStore,
		mailer:   mailer,
		uploader: uploader,
	}
}

// Signup registers a student account and mails a verification code. A mail
// delivery failure does not undo the signup, the code can be requested again.
func (s *AuthService) Signup(ctx context.Context, user domain.User, majorName string) (domain.User, error) {
	major, err := s.repo.FindMajorByName(ctx, majorName)
	if err != nil {
		if errors.Is(err, repository.ErrMajorNotFound) {
			return domain.User{}, ErrMajorNotFound
		}
		return domain.User{}, fmt.Errorf("s.repo.FindMajorByName -> %w", err)
	}
	user.MajorID = major.ID

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}
	user.Password = string(hash)
	user.Role = "USER"

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrStudentIDExists):
			return domain.User{}, ErrStudentIDExists
		case errors.Is(err, repository.ErrEmailExists):
			return domain.User{}, ErrEmailExists
		}
		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	if err := s.issueOTP(ctx, created); err != nil {
		zap.L().Warn("failed to send signup otp",
			zap.String("student_id", created.StudentID), zap.Error(err))
	}

	return created, nil
}

func (s *AuthService) Login(ctx context.Context, studentID, password string) (domain.User, error) {
	user, err := s.repo.FindByStudentID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("s.repo.FindByStudentID -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.User{}, ErrWrongPassword
	}

	return user, nil
}

// RequestOTP issues a fresh verification code, replacing any pending one.
func (s *AuthService) RequestOTP(ctx context.Context, studentID string) error {
	user, err := s.repo.FindByStudentID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("s.repo.FindByStudentID -> %w", err)
	}

	return s.issueOTP(ctx, user)
}

// VerifyOTP compares the submitted code against the stored one and burns it
// on success.
func (s *AuthService) VerifyOTP(ctx context.Context, studentID, code string) error {
	stored, err := s.otpStore.Get(ctx, studentID)
	if err != nil {
		if errors.Is(err, otp.ErrNotFound) {
			return ErrInvalidOTP
		}
		return fmt.Errorf("s.otpStore.Get -> %w", err)
	}

	if stored != code {
		return ErrInvalidOTP
	}

	if err := s.otpStore.Delete(ctx, studentID); err != nil {
		return fmt.Errorf("s.otpStore.Delete -> %w", err)
	}

	return nil
}

// ForgotPassword mails a reset code. It is the same flow as RequestOTP; the
// split endpoint exists so the client can word the mail trigger differently.
func (s *AuthService) ForgotPassword(ctx context.Context, studentID string) error {
	return s.RequestOTP(ctx, studentID)
}

// ResetPassword redeems a reset code and stores the re-hashed password.
func (s *AuthService) ResetPassword(ctx context.Context, studentID, code, newPassword string) error {
	if err := s.VerifyOTP(ctx, studentID, code); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, studentID, string(hash)); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("s.repo.UpdatePassword -> %w", err)
	}

	return nil
}

// UploadProfile stores the profile picture and records its URL on the user.
func (s *AuthService) UploadProfile(ctx context.Context, studentID, filename, contentType string, body io.Reader) (string, error) {
	url, err := s.uploader.Upload(ctx, "profiles", filename, contentType, body)
	if err != nil {
		return "", fmt.Errorf("s.uploader.Upload -> %w", err)
	}

	if err := s.repo.UpdateProfileURL(ctx, studentID, url); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("s.repo.UpdateProfileURL -> %w", err)
	}

	return url, nil
}

func (s *AuthService) issueOTP(ctx context.Context, user domain.User) error {
	code, err := otp.Generate()
	if err != nil {
		return fmt.Errorf("otp.Generate -> %w", err)
	}

	if err := s.otpStore.Set(ctx, user.StudentID, code); err != nil {
		return fmt.Errorf("s.otpStore.Set -> %w", err)
	}

	if err := s.mailer.SendOTP(ctx, user.Email, user.Name, code); err != nil {
		return fmt.Errorf("s.mailer.SendOTP -> %w", err)
	}

	return nil
}
