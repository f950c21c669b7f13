package usecase

import (
	"repo-mirror/internal/mirror"
	pkgLog "repo-mirror/pkg/log"
)

type implUseCase struct {
	l       pkgLog.Logger
	runner  mirror.Runner
	storage mirror.Storage
	cfg     mirror.Config
	locks   *repoLocks
}

// New creates the mirror sync UseCase.
func New(l pkgLog.Logger, runner mirror.Runner, storage mirror.Storage, cfg mirror.Config) *implUseCase {
	return &implUseCase{
		l:       l,
		runner:  runner,
		storage: storage,
		cfg:     cfg,
		locks:   newRepoLocks(),
	}
}
