package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"repo-mirror/pkg/log"
	"repo-mirror/pkg/sshkey"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	reposDir    string

	// Webhook sync
	webhookHandler interface {
		HandleGitHubWebhook(c *gin.Context)
	}

	// Deploy key, nil when key management is disabled
	deployKey *sshkey.Key
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	ReposDir    string

	WebhookHandler interface {
		HandleGitHubWebhook(c *gin.Context)
	}

	DeployKey *sshkey.Key
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		reposDir:       cfg.ReposDir,
		webhookHandler: cfg.WebhookHandler,
		deployKey:      cfg.DeployKey,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.webhookHandler == nil {
		return errors.New("webhook handler is required")
	}
	return nil
}
