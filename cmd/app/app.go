package app

import (
	"context"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/codepedia/lomba-api/internal/api"
	"github.com/codepedia/lomba-api/internal/config"
	"github.com/codepedia/lomba-api/internal/db"
	"github.com/codepedia/lomba-api/internal/logger"
	"github.com/codepedia/lomba-api/internal/mailer"
	"github.com/codepedia/lomba-api/internal/storage"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Addr,
		Password: conf.Redis.Password,
		DB:       conf.Redis.DB,
	})
	if err = rdb.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis -> %w", err)
	}

	ml, err := mailer.New(conf.SMTP)
	if err != nil {
		return fmt.Errorf("failed to initialize mailer -> %w", err)
	}

	uploader, err := storage.NewS3Uploader(context.Background(), conf.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize uploader -> %w", err)
	}

	s := api.NewServer(conf, postgresDB, rdb, ml, uploader)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
