package v1

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codepedia/lomba-api/internal/api/handler/v1/request"
	"github.com/codepedia/lomba-api/internal/api/handler/v1/response"
	"github.com/codepedia/lomba-api/internal/domain"
	"github.com/codepedia/lomba-api/internal/service"
)

type CompetitionService interface {
	CreateCompetition(ctx context.Context, competition domain.Competition) (domain.Competition, error)
	GetCompetitions(ctx context.Context) ([]domain.Competition, error)
	GetCompetition(ctx context.Context, id uint) (domain.Competition, error)
	UpdateCompetition(ctx context.Context, competition domain.Competition) (domain.Competition, error)
	DeleteCompetition(ctx context.Context, id uint) (domain.Competition, error)
	JoinCompetition(ctx context.Context, competitionID, userID uint, teamID *uint) (domain.Participant, error)
	CreateTeam(ctx context.Context, competitionID uint, team domain.Team) (domain.Team, error)
	GetTeams(ctx context.Context, competitionID uint) ([]domain.EnrichedTeam, error)
	GetUserStatus(ctx context.Context, competitionID, userID uint) (domain.UserCompetitionStatus, error)
	GetCompetitionMembers(ctx context.Context, competitionID, leaderID uint) (domain.TeamRoster, error)
	SubmitReimbursement(ctx context.Context, competitionID, userID uint, claim domain.Reimbursement) (domain.Reimbursement, error)
	VerifyReimbursement(ctx context.Context, competitionID, userID uint) (domain.Reimbursement, error)
	UploadResult(ctx context.Context, competitionID, userID uint, res domain.CompetitionResult) (domain.CompetitionResult, error)
}

type CompetitionHandler struct {
	svc      CompetitionService
	uSvc     UserGetter
	uploader service.FileUploader
}

func NewCompetitionHandler(svc CompetitionService, uSvc UserGetter, uploader service.FileUploader) *CompetitionHandler {
	return &CompetitionHandler{
		svc:      svc,
		uSvc:     uSvc,
		uploader: uploader,
	}
}

// HandleGetCompetitions godoc
// @Summary      List competitions, newest first
// @Tags         competitions
// @Produce      json
// @Success      200  {array}   domain.Competition
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /competitions [get]
// @Security     BearerAuth
func (h *CompetitionHandler) HandleGetCompetitions(ctx *gin.Context) {
	competitions, err := h.svc.GetCompetitions(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetCompetitions -> h.svc.GetCompetitions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, competitions)
}

// HandleGetCompetition godoc
// @Summary      Get one competition
// @Tags         competitions
// @Produce      json
// @Param        competitionID  path      int  true  "Competition ID"
// @Success      200            {object}  domain.Competition
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /competitions/{competitionID} [get]
// @Security     BearerAuth
func (h *CompetitionHandler) HandleGetCompetition(ctx *gin.Context) {
	competitionID, err := strconv.ParseUint(ctx.Param("competitionID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	competition, err := h.svc.GetCompetition(ctx.Request.Context(), uint(competitionID))
	if err != nil {
		if errors.Is(err, service.ErrCompetitionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("competition", "competitionID", competitionID))
			return
		}

		err = fmt.Errorf("v1.HandleGetCompetition -> h.svc.GetCompetition -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, competition)
}

// HandleCreateCompetition godoc
// @Summary      Create a competition
// @Description  Admin only. The poster image is uploaded as multipart form data.
// @Tags         competitions
// @Accept       multipart/form-data
// @Produce      json
// @Param        input  formData  request.CreateCompetitionRequest  true  "competition"
// @Param        image  formData  file                              false "poster image"
// @Success      201    {object}  domain.Competition
// @Failure      400    {object}  response.Err
// @Failure      403    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /competitions [post]
// @Security     BearerAuth
func (h *CompetitionHandler) HandleCreateCompetition(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if user.Role != "ADMIN" {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", user.ID)))
		return
	}

	var req request.CreateCompetitionRequest
	if err := ctx.ShouldBind(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	posterURL, respErr := h.uploadFormFile(ctx, "image", "posters")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	competition, err := h.svc.CreateCompetition(ctx.Request.Context(), domain.Competition{
		Title:            req.Title,
		Description:      req.Description,
		Category:         req.Category,
		Level:            req.Level,
		Type:             req.Type,
		PosterURL:        posterURL,
		RegistrationLink: req.RegistrationLink,
		GuidebookLink:    req.GuidebookLink,
		StartDate:        startDate,
		EndDate:          endDate,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateCompetition -> h.svc.CreateCompetition -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, competition)
}

// HandleUpdateCompetition godoc
// @Summary      Update a competition
// @Tags         competitions
// @Accept       multipart/form-data
// @Produce      json
// @Param        competitionID  path      int                               true  "Competition ID"
// @Param        input          formData  request.UpdateCompetitionRequest  true  "fields to update"
// @Param        image          formData  file                              false "new poster image"
// @Success      200            {object}  domain.Competition
// @Failure      400            {object}  response.Err
// @Failure      403            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /competitions/{competitionID} [patch]
// @Security     BearerAuth
func (h *CompetitionHandler) HandleUpdateCompetition(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if user.Role != "ADMIN" {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", user.ID)))
		return
	}

	competitionID, err := strconv.ParseUint(ctx.Param("competitionID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateCompetitionRequest
	if err := ctx.ShouldBind(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	competition := domain.Competition{
		ID:               uint(competitionID),
		Title:            req.Title,
		Description:      req.Description,
		Category:         req.Category,
		Level:            req.Level,
		Type:             req.Type,
		RegistrationLink: req.RegistrationLink,
		GuidebookLink:    req.GuidebookLink,
	}
	if req.StartDate != "" {
		competition.StartDate, _ = time.Parse("2006-01-02", req.StartDate)
	}
	if req.EndDate != "" {
		competition.EndDate, _ = time.Parse("2006-01-02", req.EndDate)
	}

	if _, err := ctx.FormFile("image"); err == nil {
		posterURL, respErr := h.uploadFormFile(ctx, "image", "posters")
		if respErr != nil {
			response.RenderErr(ctx, respErr)
			return
		}
		competition.PosterURL = posterURL
	}

	updated, err := h.svc.UpdateCompetition(ctx.Request.Context(), competition)
	if err != nil {
		if errors.Is(err, service.ErrCompetitionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("competition", "competitionID", competitionID))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateCompetition -> h.svc.UpdateCompetition -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteCompetition godoc
// @Summary      Delete a competition and all its dependents
// @Tags         competitions
// @Produce      json
// @Param        competitionID  path      int  true  "Competition ID"
// @Success      200            {object}  domain.Competition
// @Failure      403            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /competitions/{competitionID} [delete]
// @Security     BearerAuth
func (h *CompetitionHandler) HandleDeleteCompetition(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if user.Role != "ADMIN" {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", user.ID)))
		return
	}

	competitionID, err := strconv.ParseUint(ctx.Param("competitionID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	deleted, err := h.svc.DeleteCompetition(ctx.Request.Context(), uint(competitionID))
	if err != nil {
		if errors.Is(err, service.ErrCompetitionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("competition", "competitionID", competitionID))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteCompetition -> h.svc.DeleteCompetition -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, deleted)
}

// HandleJoinCompetition godoc
// @Summary      Join a competition as a participant
// @Tags         competitions
// @Produce      json
// @Param        competitionID  path      int  true  "Competition ID"
// @Success      201            {object}  domain.Participant
// @Failure      404            {object}  response.Err
// @Failure      409            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /competitions/{competitionID}/join [post]
// @Security     BearerAuth
func (h *CompetitionHandler) HandleJoinCompetition(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	competitionID, err := strconv.ParseUint(ctx.Param("competitionID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	participant, err := h.svc.JoinCompetition(ctx.Request.Context(), uint(competitionID), user.ID, nil)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCompetitionNotFound):
			response.RenderErr(ctx, response.ErrNotFound("competition", "competitionID", competitionID))
			return
		case errors.Is(err, service.ErrAlreadyParticipating):
			response.RenderErr(ctx, response.ErrConflict(err))
			return
		}

		err = fmt.Errorf("v1.HandleJoinCompetition -> h.svc.JoinCompetition -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, participant)
}

// HandleCreateTeam godoc
// @Summary      Open a team in a competition
// @Tags         competitions
// @Accept       json
// @Produce      json
// @Param        competitionID  path      int                        true  "Competition ID"
// @Param        request        body      request.CreateTeamRequest  true  "team"
// @Success      201            {object}  domain.Team
// @Failure      400            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      409            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /competitions/{competitionID}/team [post]
// @Security     BearerAuth
func (h *CompetitionHandler) HandleCreateTeam(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	competitionID, err := strconv.ParseUint(ctx.Param("competitionID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.CreateTeamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	team, err := h.svc.CreateTeam(ctx.Request.Context(), uint(competitionID), domain.Team{
		Name:        req.Name,
		LeaderID:    user.ID,
		Description: req.Description,
		Phone:       req.Phone,
		OpenSlots:   req.OpenSlots,
		EndDate:     endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCompetitionNotFound):
			response.RenderErr(ctx, response.ErrNotFound("competition", "competitionID", competitionID))
			return
		case errors.Is(err, service.ErrTeamNameTaken):
			response.RenderErr(ctx, response.ErrConflict(err))
			return
		case errors.Is(err, service.ErrNotParticipant):
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleCreateTeam -> h.svc.CreateTeam -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, team)
}

// HandleGetCompetitionTeams godoc
// @Summary      List teams in a competition
// @Tags         competitions
// @Produce      json
// @Param        competitionID  path      int  true  "Competition ID"
// @Success      200            {array}   domain.EnrichedTeam
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /competitions/{competitionID}/teams [get]
// @Security     BearerAuth
func (h *CompetitionHandler) HandleGetCompetitionTeams(ctx *gin.Context) {
	competitionID, err := strconv.ParseUint(ctx.Param("competitionID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	teams, err := h.svc.GetTeams(ctx.Request.Context(), uint(competitionID))
	if err != nil {
		if errors.Is(err, service.ErrCompetitionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("competition", "competitionID", competitionID))
			return
		}

		err = fmt.Errorf("v1.HandleGetCompetitionTeams -> h.svc.GetTeams -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, teams)
}

// HandleGetUserStatus godoc
// @Summary      Aggregate one user's standing in a competition
// @Tags         competitions
// @Produce      json
// @Param        competitionID  path      int  true   "Competition ID"
// @Param        userId         query     int  false  "defaults to the caller"
// @Success      200            {object}  domain.UserCompetitionStatus
// @Failure      400            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /competitions/{competitionID}/user-status [get]
// @Security     BearerAuth
func (h *CompetitionHandler) HandleGetUserStatus(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	competitionID, err := strconv.ParseUint(ctx.Param("competitionID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	userID := user.ID
	if raw := ctx.Query("userId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}
		userID = uint(parsed)
	}

	status, err := h.svc.GetUserStatus(ctx.Request.Context(), uint(competitionID), userID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetUserStatus -> h.svc.GetUserStatus -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, status)
}

// HandleGetCompetitionMembers godoc
// @Summary      List the caller's team roster in a competition
// @Tags         competitions
// @Produce      json
// @Param        competitionID  path      int  true  "Competition ID"
// @Success      200            {object}  domain.TeamRoster
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /competitions/{competitionID}/members [post]
// @Security     BearerAuth
func (h *CompetitionHandler) HandleGetCompetitionMembers(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	competitionID, err := strconv.ParseUint(ctx.Param("competitionID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	roster, err := h.svc.GetCompetitionMembers(ctx.Request.Context(), uint(competitionID), user.ID)
	if err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("team", "leaderID", user.ID))
			return
		}

		err = fmt.Errorf("v1.HandleGetCompetitionMembers -> h.svc.GetCompetitionMembers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, roster)
}

// HandleSubmitReimbursement godoc
// @Summary      File a reimbursement claim
// @Tags         competitions
// @Accept       multipart/form-data
// @Produce      json
// @Param        competitionID  path      int                       true  "Competition ID"
// @Param        input          formData  request.ReimburseRequest  true  "claim"
// @Param        receipt        formData  file                      true  "payment receipt"
// @Success      201            {object}  domain.Reimbursement
// @Failure      400            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /competitions/{competitionID}/reimburse [post]
// @Security     BearerAuth
func (h *CompetitionHandler) HandleSubmitReimbursement(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	competitionID, err := strconv.ParseUint(ctx.Param("competitionID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.ReimburseRequest
	if err := ctx.ShouldBind(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	receiptURL, respErr := h.uploadFormFile(ctx, "receipt", "receipts")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	claim, err := h.svc.SubmitReimbursement(ctx.Request.Context(), uint(competitionID), user.ID, domain.Reimbursement{
		Name:       req.Name,
		BankName:   req.BankName,
		CardNumber: req.CardNumber,
		ReceiptURL: receiptURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotParticipant) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleSubmitReimbursement -> h.svc.SubmitReimbursement -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, claim)
}

// HandleVerifyReimbursement godoc
// @Summary      Look up the claim covering the caller in a competition
// @Tags         competitions
// @Produce      json
// @Param        competitionID  path      int  true  "Competition ID"
// @Success      200            {object}  domain.Reimbursement
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /competitions/{competitionID}/verify-reimbursement [post]
// @Security     BearerAuth
func (h *CompetitionHandler) HandleVerifyReimbursement(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	competitionID, err := strconv.ParseUint(ctx.Param("competitionID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	claim, err := h.svc.VerifyReimbursement(ctx.Request.Context(), uint(competitionID), user.ID)
	if err != nil {
		if errors.Is(err, service.ErrReimbursementNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("reimbursement", "competitionID", competitionID))
			return
		}

		err = fmt.Errorf("v1.HandleVerifyReimbursement -> h.svc.VerifyReimbursement -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, claim)
}

// HandleUploadResult godoc
// @Summary      Fill in the competition result
// @Tags         competitions
// @Accept       multipart/form-data
// @Produce      json
// @Param        competitionID  path      int                          true  "Competition ID"
// @Param        input          formData  request.UploadResultRequest  true  "result"
// @Param        evidence       formData  file                         false "evidence image"
// @Param        certificate    formData  file                         false "certificate"
// @Success      200            {object}  domain.CompetitionResult
// @Failure      400            {object}  response.Err
// @Failure      409            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /competitions/{competitionID}/result [post]
// @Security     BearerAuth
func (h *CompetitionHandler) HandleUploadResult(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	competitionID, err := strconv.ParseUint(ctx.Param("competitionID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UploadResultRequest
	if err := ctx.ShouldBind(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	res := domain.CompetitionResult{Result: req.Result}

	if _, err := ctx.FormFile("evidence"); err == nil {
		res.EvidenceURL, respErr = h.uploadFormFile(ctx, "evidence", "results")
		if respErr != nil {
			response.RenderErr(ctx, respErr)
			return
		}
	}
	if _, err := ctx.FormFile("certificate"); err == nil {
		res.CertificateURL, respErr = h.uploadFormFile(ctx, "certificate", "certificates")
		if respErr != nil {
			response.RenderErr(ctx, respErr)
			return
		}
	}

	updated, err := h.svc.UploadResult(ctx.Request.Context(), uint(competitionID), user.ID, res)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotParticipant), errors.Is(err, service.ErrNoResultLink):
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		case errors.Is(err, service.ErrResultExists):
			response.RenderErr(ctx, response.ErrConflict(err))
			return
		}

		err = fmt.Errorf("v1.HandleUploadResult -> h.svc.UploadResult -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// uploadFormFile pushes one multipart file to storage and returns its URL.
// A missing file is not an error, the URL comes back empty.
func (h *CompetitionHandler) uploadFormFile(ctx *gin.Context, field, prefix string) (string, *response.Err) {
	fileHeader, err := ctx.FormFile(field)
	if err != nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", response.ErrBadRequest(err)
	}
	defer func(file multipart.File) {
		_ = file.Close()
	}(file)

	url, err := h.uploader.Upload(ctx.Request.Context(), prefix,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		err = fmt.Errorf("v1.uploadFormFile -> h.uploader.Upload -> %w", err)
		return "", response.ErrInternalServerError(err)
	}

	return url, nil
}
