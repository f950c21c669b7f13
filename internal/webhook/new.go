package webhook

import (
	"repo-mirror/internal/mirror"
	pkgLog "repo-mirror/pkg/log"
)

type Handler struct {
	syncUC   mirror.UseCase
	security *SecurityValidator
	parser   *GitHubPushParser
	l        pkgLog.Logger
}

func NewHandler(
	syncUC mirror.UseCase,
	securityConfig SecurityConfig,
	defaultBranch string,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		syncUC:   syncUC,
		security: NewSecurityValidator(securityConfig),
		parser:   NewGitHubParser(defaultBranch),
		l:        l,
	}
}
