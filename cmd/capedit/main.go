package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/walteh/capedit/pkg/run"
)

func main() {
	ctx := log.Logger.WithContext(context.Background())

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		userLogger := run.NewUserLogger(ctx)
		userLogger.LogValidation(false, "Command failed", err)
		os.Exit(1)
	}
}
