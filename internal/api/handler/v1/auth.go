package v1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codepedia/lomba-api/internal/api/handler/v1/request"
	"github.com/codepedia/lomba-api/internal/api/handler/v1/response"
	"github.com/codepedia/lomba-api/internal/config"
	"github.com/codepedia/lomba-api/internal/domain"
	"github.com/codepedia/lomba-api/internal/pkg/jwthelper"
	"github.com/codepedia/lomba-api/internal/service"
)

type AuthService interface {
	Signup(ctx context.Context, user domain.User, majorName string) (domain.User, error)
	Login(ctx context.Context, studentID, password string) (domain.User, error)
	RequestOTP(ctx context.Context, studentID string) error
	VerifyOTP(ctx context.Context, studentID, code string) error
	ForgotPassword(ctx context.Context, studentID string) error
	ResetPassword(ctx context.Context, studentID, code, newPassword string) error
	UploadProfile(ctx context.Context, studentID, filename, contentType string, body io.Reader) (string, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
	uSvc UserGetter
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService, uSvc UserGetter) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleSignup godoc
// @Summary      Signup a new student account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request   body      request.SignupRequest true "request body"
// @Success      201      {object}   response.LoginResponse
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/signup [post]
func (h *AuthHandler) HandleSignup(ctx *gin.Context) {
	var req request.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.Signup(ctx.Request.Context(), domain.User{
		StudentID: req.StudentID,
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Cohort:    req.Cohort,
	}, req.Major)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentIDExists), errors.Is(err, service.ErrEmailExists):
			response.RenderErr(ctx, response.ErrConflict(err))
			return
		case errors.Is(err, service.ErrMajorNotFound):
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleSignup -> h.svc.Signup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), user.ID, user.Role, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.HandleSignup -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.LoginResponse{
		Token: token,
		User:  user,
	})
}

// HandleLogin godoc
// @Summary      Login with student ID and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.Login(ctx.Request.Context(), req.StudentID, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), user.ID, user.Role, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token: token,
		User:  user,
	})
}

// HandleRequestOTP godoc
// @Summary      Request a fresh verification code
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request   body      request.OTPRequest true "request body"
// @Success      200      {object}   response.MessageResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/request-otp [post]
func (h *AuthHandler) HandleRequestOTP(ctx *gin.Context) {
	var req request.OTPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.RequestOTP(ctx.Request.Context(), req.StudentID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "nim", req.StudentID))
			return
		}

		err = fmt.Errorf("v1.HandleRequestOTP -> h.svc.RequestOTP -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "otp sent"})
}

// HandleVerifyOTP godoc
// @Summary      Redeem a verification code
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request   body      request.VerifyOTPRequest true "request body"
// @Success      200      {object}   response.MessageResponse
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/verify-otp [post]
func (h *AuthHandler) HandleVerifyOTP(ctx *gin.Context) {
	var req request.VerifyOTPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.VerifyOTP(ctx.Request.Context(), req.StudentID, req.Code); err != nil {
		if errors.Is(err, service.ErrInvalidOTP) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleVerifyOTP -> h.svc.VerifyOTP -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "otp verified"})
}

// HandleResetOTP godoc
// @Summary      Invalidate the pending code and issue a new one
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request   body      request.OTPRequest true "request body"
// @Success      200      {object}   response.MessageResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/reset-otp [post]
func (h *AuthHandler) HandleResetOTP(ctx *gin.Context) {
	h.HandleRequestOTP(ctx)
}

// HandleForgotPassword godoc
// @Summary      Mail a password reset code
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request   body      request.OTPRequest true "request body"
// @Success      200      {object}   response.MessageResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/forgot-password [post]
func (h *AuthHandler) HandleForgotPassword(ctx *gin.Context) {
	var req request.OTPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.ForgotPassword(ctx.Request.Context(), req.StudentID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "nim", req.StudentID))
			return
		}

		err = fmt.Errorf("v1.HandleForgotPassword -> h.svc.ForgotPassword -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "reset code sent"})
}

// HandleResetPassword godoc
// @Summary      Reset the password with a mailed code
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request   body      request.ResetPasswordRequest true "request body"
// @Success      200      {object}   response.MessageResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/reset-password [post]
func (h *AuthHandler) HandleResetPassword(ctx *gin.Context) {
	var req request.ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.ResetPassword(ctx.Request.Context(), req.StudentID, req.Code, req.Password); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOTP):
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		case errors.Is(err, service.ErrUserNotFound):
			response.RenderErr(ctx, response.ErrNotFound("user", "nim", req.StudentID))
			return
		}

		err = fmt.Errorf("v1.HandleResetPassword -> h.svc.ResetPassword -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "password updated"})
}

// HandleUploadProfile godoc
// @Summary      Upload a profile picture
// @Tags         auth
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "profile image"
// @Success      200    {object}  response.UploadResponse
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /auth/upload-profile [post]
// @Security     BearerAuth
func (h *AuthHandler) HandleUploadProfile(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	defer file.Close()

	url, err := h.svc.UploadProfile(ctx.Request.Context(), user.StudentID,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		err = fmt.Errorf("v1.HandleUploadProfile -> h.svc.UploadProfile -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.UploadResponse{URL: url})
}

// HandleVerifyToken godoc
// @Summary      Verify the bearer token and return its user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  response.Err
// @Router       /auth/verify [get]
// @Security     BearerAuth
func (h *AuthHandler) HandleVerifyToken(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	ctx.JSON(http.StatusOK, user)
}
