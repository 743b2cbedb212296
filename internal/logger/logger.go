package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Init builds the global zap logger. Production environments get the JSON
// production config, everything else gets the human-readable development one.
func Init(environment string) error {
	var (
		logger *zap.Logger
		err    error
	)

	switch environment {
	case "production":
		logger, err = zap.NewProduction()
	default:
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return fmt.Errorf("failed to create logger -> %w", err)
	}

	zap.ReplaceGlobals(logger)

	return nil
}
