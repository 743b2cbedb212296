package request_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codepedia/lomba-api/internal/api/handler/v1/request"
)

func validSignup() request.SignupRequest {
	return request.SignupRequest{
		StudentID:       "2110512077",
		Name:            "Budi Santoso",
		Email:           "budi@student.ac.id",
		Password:        "rahasia123",
		ConfirmPassword: "rahasia123",
		Cohort:          "2021",
		Major:           "Informatika",
	}
}

func TestSignupRequest_Validate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := validSignup()
		assert.NoError(t, req.Validate())
	})

	t.Run("student id must be 10 digits", func(t *testing.T) {
		req := validSignup()
		req.StudentID = "123"
		assert.Error(t, req.Validate())
	})

	t.Run("password needs a digit", func(t *testing.T) {
		req := validSignup()
		req.Password = "rahasiaku"
		req.ConfirmPassword = "rahasiaku"
		assert.Error(t, req.Validate())
	})

	t.Run("password needs a letter", func(t *testing.T) {
		req := validSignup()
		req.Password = "12345678"
		req.ConfirmPassword = "12345678"
		assert.Error(t, req.Validate())
	})

	t.Run("password needs 8 characters", func(t *testing.T) {
		req := validSignup()
		req.Password = "abc1234"
		req.ConfirmPassword = "abc1234"
		assert.Error(t, req.Validate())
	})

	t.Run("confirm password must match", func(t *testing.T) {
		req := validSignup()
		req.ConfirmPassword = "rahasia124"
		assert.Error(t, req.Validate())
	})

	t.Run("email must be well formed", func(t *testing.T) {
		req := validSignup()
		req.Email = "not-an-email"
		assert.Error(t, req.Validate())
	})
}

func TestVerifyOTPRequest_Validate(t *testing.T) {
	t.Run("valid code", func(t *testing.T) {
		req := request.VerifyOTPRequest{StudentID: "2110512077", Code: "4815"}
		assert.NoError(t, req.Validate())
	})

	t.Run("code must be 4 digits", func(t *testing.T) {
		req := request.VerifyOTPRequest{StudentID: "2110512077", Code: "48157"}
		assert.Error(t, req.Validate())

		req.Code = "48a5"
		assert.Error(t, req.Validate())
	})
}

func TestCreateTeamRequest_Validate(t *testing.T) {
	valid := request.CreateTeamRequest{
		Name:      "Garuda",
		OpenSlots: 2,
		EndDate:   "2026-10-01",
	}

	t.Run("valid request", func(t *testing.T) {
		req := valid
		assert.NoError(t, req.Validate())
	})

	t.Run("open slots bounded", func(t *testing.T) {
		req := valid
		req.OpenSlots = 0
		assert.Error(t, req.Validate())

		req.OpenSlots = 21
		assert.Error(t, req.Validate())
	})

	t.Run("end date format", func(t *testing.T) {
		req := valid
		req.EndDate = "01-10-2026"
		assert.Error(t, req.Validate())
	})
}

func TestReimburseRequest_Validate(t *testing.T) {
	valid := request.ReimburseRequest{
		Name:       "Budi Santoso",
		BankName:   "BCA",
		CardNumber: "1234567890",
	}

	t.Run("valid request", func(t *testing.T) {
		req := valid
		assert.NoError(t, req.Validate())
	})

	t.Run("card number digits only", func(t *testing.T) {
		req := valid
		req.CardNumber = "12345abc90"
		assert.Error(t, req.Validate())
	})

	t.Run("card number length", func(t *testing.T) {
		req := valid
		req.CardNumber = "1234"
		assert.Error(t, req.Validate())
	})
}
