package main

import (
	"context"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/james-gonzalez/aws-secrets-manager-fetcher/internal/cli"
	"github.com/james-gonzalez/aws-secrets-manager-fetcher/internal/config"
	"github.com/james-gonzalez/aws-secrets-manager-fetcher/internal/ui"
	"github.com/james-gonzalez/aws-secrets-manager-fetcher/pkg/logger"
	"github.com/james-gonzalez/aws-secrets-manager-fetcher/pkg/secrets"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx := context.Background()

	// --- Load configuration ---
	cfg := config.Load()

	logger.Init(cfg.ServiceName, cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	// One run_id per invocation so overlapping operator sessions can be
	// told apart in shipped logs.
	logg := logger.L().With(
		zap.String("run_id", uuid.NewString()),
	)

	// --- Root command with real collaborators ---
	root := cli.NewRootCommand(cli.Dependencies{
		Version:     version,
		Cfg:         cfg,
		Logger:      logg,
		In:          os.Stdin,
		Out:         os.Stdout,
		Screen:      ui.NewScreen(os.Stdout),
		NewProvider: secrets.NewAWSProvider,
	})

	if err := root.ExecuteContext(ctx); err != nil {
		// cobra has already printed the error
		os.Exit(1)
	}
}
