package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Lookahead groups need regexp2, the stdlib engine rejects them.
const passwordRegexPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`

var (
	passwordExp = regexp2.MustCompile(passwordRegexPattern, regexp2.None)

	errInvalidPassword         = errors.New("the password must be at least 8 characters and contain 1 letter and 1 number")
	errConfirmPasswordMismatch = errors.New("confirm password doesn't match the password")
)

type SignupRequest struct {
	StudentID       string `json:"nim"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Cohort          string `json:"cohort"`
	Major           string `json:"major"`
}

func (req *SignupRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.StudentID, validation.Required, validation.Length(10, 10)),
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.ConfirmPassword, validation.Required),
		validation.Field(&req.Major, validation.Required),
	)
	if err != nil {
		return err
	}

	ok, err := passwordExp.MatchString(req.Password)
	if err != nil || !ok {
		return errInvalidPassword
	}

	if req.Password != req.ConfirmPassword {
		return errConfirmPasswordMismatch
	}

	return nil
}

type LoginRequest struct {
	StudentID string `json:"nim"`
	Password  string `json:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StudentID, validation.Required, validation.Length(10, 10)),
		validation.Field(&req.Password, validation.Required),
	)
}

type OTPRequest struct {
	StudentID string `json:"nim"`
}

func (req *OTPRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StudentID, validation.Required, validation.Length(10, 10)),
	)
}

type VerifyOTPRequest struct {
	StudentID string `json:"nim"`
	Code      string `json:"otp"`
}

func (req *VerifyOTPRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StudentID, validation.Required, validation.Length(10, 10)),
		validation.Field(&req.Code, validation.Required, validation.Length(4, 4), is.Digit),
	)
}

type ResetPasswordRequest struct {
	StudentID       string `json:"nim"`
	Code            string `json:"otp"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (req *ResetPasswordRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.StudentID, validation.Required, validation.Length(10, 10)),
		validation.Field(&req.Code, validation.Required, validation.Length(4, 4), is.Digit),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.ConfirmPassword, validation.Required),
	)
	if err != nil {
		return err
	}

	ok, err := passwordExp.MatchString(req.Password)
	if err != nil || !ok {
		return errInvalidPassword
	}

	if req.Password != req.ConfirmPassword {
		return errConfirmPasswordMismatch
	}

	return nil
}
