package mirror

import "context"

// UseCase is the webhook-to-repository decision engine: given an
// interpreted push event it clones, pulls, or skips per the branch policy.
type UseCase interface {
	Sync(ctx context.Context, input SyncInput) (SyncOutput, error)
}

// Runner is the command-execution capability (git, ssh-keygen).
type Runner interface {
	Run(ctx context.Context, dir string, name string, args ...string) (stdout, stderr string, err error)
}

// Storage is the filesystem capability the prober and executor use.
type Storage interface {
	Exists(path string) bool
	ListEntries(path string) ([]string, error)
	MakeDir(path string) error
	RemoveDir(path string) error
}
