package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/codepedia/lomba-api/docs"
	v1 "github.com/codepedia/lomba-api/internal/api/handler/v1"
	"github.com/codepedia/lomba-api/internal/api/middleware"
	"github.com/codepedia/lomba-api/internal/config"
	"github.com/codepedia/lomba-api/internal/mailer"
	"github.com/codepedia/lomba-api/internal/pkg/otp"
	"github.com/codepedia/lomba-api/internal/repository"
	"github.com/codepedia/lomba-api/internal/repository/dao"
	"github.com/codepedia/lomba-api/internal/service"
	"github.com/codepedia/lomba-api/internal/storage"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine

	otpStore *otp.RedisStore
	mailer   *mailer.Mailer
	uploader *storage.S3Uploader
}

func NewServer(conf *config.AppConfig, db *gorm.DB, rdb *redis.Client, ml *mailer.Mailer, uploader *storage.S3Uploader) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config:   conf,
		Router:   engine,
		otpStore: otp.NewRedisStore(rdb, conf.Redis.OTPTTL()),
		mailer:   ml,
		uploader: uploader,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	competitionHandler := s.initCompetitionHandler(db)
	teamHandler := s.initTeamHandler(db)
	notificationHandler := s.initNotificationHandler(db)
	profileHandler := s.initProfileHandler(db)
	adminHandler := s.initAdminHandler(db)
	s.MountHandlers(authHandler, competitionHandler, teamHandler, notificationHandler, profileHandler, adminHandler)

	return s
}

func (s *Server) userService(db *gorm.DB) *service.UserService {
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	competitionRepo := repository.NewCompetitionRepository(dao.NewCompetitionDAO(db), dao.NewParticipantDAO(db))

	return service.NewUserService(userRepo, competitionRepo)
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	repo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewAuthService(repo, s.otpStore, s.mailer, s.uploader)
	handler := v1.NewAuthHandler(s.Config.API, svc, s.userService(db))

	return handler
}

func (s *Server) initCompetitionHandler(db *gorm.DB) *v1.CompetitionHandler {
	repo := repository.NewCompetitionRepository(dao.NewCompetitionDAO(db), dao.NewParticipantDAO(db))
	teamRepo := repository.NewTeamRepository(dao.NewTeamDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	reimburseRepo := repository.NewReimbursementRepository(dao.NewReimbursementDAO(db))
	svc := service.NewCompetitionService(repo, teamRepo, userRepo, reimburseRepo)
	handler := v1.NewCompetitionHandler(svc, s.userService(db), s.uploader)

	return handler
}

func (s *Server) initTeamHandler(db *gorm.DB) *v1.TeamHandler {
	repo := repository.NewTeamRepository(dao.NewTeamDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	competitionRepo := repository.NewCompetitionRepository(dao.NewCompetitionDAO(db), dao.NewParticipantDAO(db))
	notifRepo := repository.NewNotificationRepository(dao.NewNotificationDAO(db))
	svc := service.NewTeamService(repo, userRepo, competitionRepo, notifRepo)
	handler := v1.NewTeamHandler(svc, s.userService(db))

	return handler
}

func (s *Server) initNotificationHandler(db *gorm.DB) *v1.NotificationHandler {
	repo := repository.NewNotificationRepository(dao.NewNotificationDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewNotificationService(repo, userRepo)
	handler := v1.NewNotificationHandler(svc)

	return handler
}

func (s *Server) initProfileHandler(db *gorm.DB) *v1.ProfileHandler {
	teamRepo := repository.NewTeamRepository(dao.NewTeamDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	competitionRepo := repository.NewCompetitionRepository(dao.NewCompetitionDAO(db), dao.NewParticipantDAO(db))
	notifRepo := repository.NewNotificationRepository(dao.NewNotificationDAO(db))
	teamSvc := service.NewTeamService(teamRepo, userRepo, competitionRepo, notifRepo)
	handler := v1.NewProfileHandler(s.userService(db), teamSvc)

	return handler
}

func (s *Server) initAdminHandler(db *gorm.DB) *v1.AdminHandler {
	repo := repository.NewReimbursementRepository(dao.NewReimbursementDAO(db))
	competitionRepo := repository.NewCompetitionRepository(dao.NewCompetitionDAO(db), dao.NewParticipantDAO(db))
	teamRepo := repository.NewTeamRepository(dao.NewTeamDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewAdminService(repo, competitionRepo, teamRepo, userRepo)
	handler := v1.NewAdminHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	competitionHandler *v1.CompetitionHandler,
	teamHandler *v1.TeamHandler,
	notificationHandler *v1.NotificationHandler,
	profileHandler *v1.ProfileHandler,
	adminHandler *v1.AdminHandler,
) {
	const basePath = "/api/v1"

	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
		auth.POST("/auth/request-otp", authHandler.HandleRequestOTP)
		auth.POST("/auth/verify-otp", authHandler.HandleVerifyOTP)
		auth.POST("/auth/reset-otp", authHandler.HandleResetOTP)
		auth.POST("/auth/forgot-password", authHandler.HandleForgotPassword)
		auth.POST("/auth/reset-password", authHandler.HandleResetPassword)
		auth.GET("/majors", profileHandler.HandleGetMajors)
	}

	protected := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		protected.GET("/auth/verify", authHandler.HandleVerifyToken)
		protected.POST("/auth/upload-profile", authHandler.HandleUploadProfile)

		protected.GET("/competitions", competitionHandler.HandleGetCompetitions)
		protected.POST("/competitions", competitionHandler.HandleCreateCompetition)
		protected.GET("/competitions/:competitionID", competitionHandler.HandleGetCompetition)
		protected.PATCH("/competitions/:competitionID", competitionHandler.HandleUpdateCompetition)
		protected.DELETE("/competitions/:competitionID", competitionHandler.HandleDeleteCompetition)
		protected.POST("/competitions/:competitionID/join", competitionHandler.HandleJoinCompetition)
		protected.POST("/competitions/:competitionID/team", competitionHandler.HandleCreateTeam)
		protected.GET("/competitions/:competitionID/teams", competitionHandler.HandleGetCompetitionTeams)
		protected.GET("/competitions/:competitionID/user-status", competitionHandler.HandleGetUserStatus)
		protected.POST("/competitions/:competitionID/members", competitionHandler.HandleGetCompetitionMembers)
		protected.POST("/competitions/:competitionID/reimburse", competitionHandler.HandleSubmitReimbursement)
		protected.POST("/competitions/:competitionID/verify-reimbursement", competitionHandler.HandleVerifyReimbursement)
		protected.POST("/competitions/:competitionID/result", competitionHandler.HandleUploadResult)

		protected.GET("/teams", teamHandler.HandleGetTeams)
		protected.GET("/teams/:teamID", teamHandler.HandleGetTeam)
		protected.POST("/teams/:teamID/join", teamHandler.HandleRequestJoin)
		protected.PATCH("/teams/:teamID/members", teamHandler.HandleDecideMember)
		protected.POST("/teams/:teamID/stopPublication", teamHandler.HandleStopPublication)
		protected.DELETE("/teams/:teamID", teamHandler.HandleDeleteTeam)

		protected.GET("/notifications/:userID", notificationHandler.HandleGetNotifications)

		protected.GET("/profile/:userID/teams", profileHandler.HandleGetProfileTeams)
		protected.GET("/profile/:userID/competitions", profileHandler.HandleGetProfileCompetitions)
	}

	admin := s.Router.Group(basePath+"/admin", authenticator.VerifyJWT(), authenticator.RequireAdmin())
	{
		admin.GET("/reimburses", adminHandler.HandleGetDashboard)
		admin.GET("/reimburses/:reimburseID", adminHandler.HandleGetReimburseDetail)
		admin.POST("/reimburses/:reimburseID/approve", adminHandler.HandleApproveReimbursement)
		admin.POST("/reimburses/:reimburseID/reject", adminHandler.HandleRejectReimbursement)
		admin.POST("/reimburses/:reimburseID/process", adminHandler.HandleProcessReimbursement)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Lomba API"
	docs.SwaggerInfo.Description = "University competition management API."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
