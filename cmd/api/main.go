package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"repo-mirror/config"
	_ "repo-mirror/docs" // Swagger docs
	"repo-mirror/internal/httpserver"
	"repo-mirror/internal/mirror"
	mirrorUC "repo-mirror/internal/mirror/usecase"
	"repo-mirror/internal/webhook"
	"repo-mirror/pkg/fsys"
	"repo-mirror/pkg/gitcmd"
	"repo-mirror/pkg/log"
	"repo-mirror/pkg/sshkey"
)

// @title       Repo Mirror API
// @description GitHub push-event webhooks keeping local repository mirrors in sync.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting repo-mirror...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Repositories dir: %s", cfg.Git.ReposDir)

	// 3. Capabilities
	runner := gitcmd.New(cfg.Git.CommandTimeout)
	storage := fsys.New()

	if err := storage.MakeDir(cfg.Git.ReposDir); err != nil {
		logger.Error(ctx, "Failed to create repositories dir: ", err)
		return
	}

	// 4. Deploy key (optional)
	var deployKey *sshkey.Key
	if cfg.SSH.KeyDir != "" {
		deployKey, err = sshkey.Ensure(ctx, runner, cfg.SSH.KeyDir)
		if err != nil {
			logger.Warnf(ctx, "Deploy key not available (optional): %v", err)
		} else {
			logger.Infof(ctx, "Deploy key ready: %s", deployKey.Fingerprint)
			runner.SetSSHKey(deployKey.PrivateKeyPath)
		}
	}

	// 5. Sync domain
	syncUC := mirrorUC.New(logger, runner, storage, mirror.Config{
		ReposDir:  cfg.Git.ReposDir,
		AutoClone: cfg.Git.AutoClone,
	})

	webhookHandler := webhook.NewHandler(
		syncUC,
		webhook.SecurityConfig{
			Secret:          cfg.Webhook.Secret,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		},
		cfg.Git.DefaultBranch,
		logger,
	)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		ReposDir:       cfg.Git.ReposDir,
		WebhookHandler: webhookHandler,
		DeployKey:      deployKey,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
