package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"repo-mirror/internal/mirror"
	"repo-mirror/internal/model"
)

// Sync runs the clone-vs-pull decision for one push delivery. At most one
// logical action (clone, pull, or skip) is performed. Actions for the same
// repository name are serialized; different repositories run in parallel.
func (uc *implUseCase) Sync(ctx context.Context, input mirror.SyncInput) (mirror.SyncOutput, error) {
	ev := input.Event

	unlock := uc.locks.acquire(ev.Repository)
	defer unlock()

	path := filepath.Join(uc.cfg.ReposDir, ev.Repository)
	state := uc.probe(path)

	uc.l.Infof(ctx, "sync: repo=%s branch=%s state=%s", ev.Repository, ev.Branch, state)

	if state == model.RepoMirror {
		return uc.pull(ctx, ev, path)
	}
	return uc.clone(ctx, ev, path, state)
}

// clone handles the first-contact path: the directory is absent, empty, or
// occupied by foreign content.
func (uc *implUseCase) clone(ctx context.Context, ev model.PushEvent, path string, state model.RepoState) (mirror.SyncOutput, error) {
	// Only a push to the default branch materializes a new mirror.
	if ev.Branch != ev.DefaultBranch {
		return mirror.SyncOutput{
			Action:     model.ActionSkipped,
			Repository: ev.Repository,
			Branch:     ev.Branch,
			Message: fmt.Sprintf("Repository not cloned yet; push to %q ignored (first clone requires a push to default branch %q)",
				ev.Branch, ev.DefaultBranch),
		}, nil
	}

	if !uc.cfg.AutoClone {
		return mirror.SyncOutput{}, mirror.ErrCloneDisabled
	}
	if ev.SSHURL == "" {
		return mirror.SyncOutput{}, mirror.ErrMissingSSHURL
	}
	if state == model.RepoForeign {
		return mirror.SyncOutput{}, mirror.ErrDirectoryConflict
	}

	if state == model.RepoAbsent {
		if err := uc.storage.MakeDir(path); err != nil {
			return mirror.SyncOutput{}, &mirror.OpError{Stage: mirror.StageClone, Err: err}
		}
	}

	cloneOut, stderr, err := uc.runner.Run(ctx, path, "git", "clone", ev.SSHURL, ".")
	if err != nil {
		uc.cleanupFailedClone(ctx, path)
		return mirror.SyncOutput{}, &mirror.OpError{Stage: mirror.StageClone, Stderr: stderr, Err: err}
	}

	checkoutOut, stderr, err := uc.runner.Run(ctx, path, "git", "checkout", ev.DefaultBranch)
	if err != nil {
		uc.cleanupFailedClone(ctx, path)
		return mirror.SyncOutput{}, &mirror.OpError{Stage: mirror.StageClone, Stderr: stderr, Err: err}
	}

	return mirror.SyncOutput{
		Action:     model.ActionCloned,
		Repository: ev.Repository,
		Branch:     ev.DefaultBranch,
		Output:     strings.TrimSpace(cloneOut + checkoutOut),
		Message:    fmt.Sprintf("Cloned %s on branch %s", ev.Repository, ev.DefaultBranch),
	}, nil
}

// pull handles an existing mirror: query its current branch, skip pushes
// for branches it does not track, otherwise pull from origin.
func (uc *implUseCase) pull(ctx context.Context, ev model.PushEvent, path string) (mirror.SyncOutput, error) {
	current, stderr, err := uc.runner.Run(ctx, path, "git", "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return mirror.SyncOutput{}, &mirror.OpError{Stage: mirror.StageBranchQuery, Stderr: stderr, Err: err}
	}
	currentBranch := strings.TrimSpace(current)

	if ev.Branch != currentBranch {
		return mirror.SyncOutput{
			Action:     model.ActionSkipped,
			Repository: ev.Repository,
			Branch:     currentBranch,
			Message: fmt.Sprintf("Mirror of %s tracks branch %q; push to %q ignored",
				ev.Repository, currentBranch, ev.Branch),
		}, nil
	}

	out, stderr, err := uc.runner.Run(ctx, path, "git", "pull")
	if err != nil {
		return mirror.SyncOutput{}, &mirror.OpError{Stage: mirror.StagePull, Stderr: stderr, Err: err}
	}

	return mirror.SyncOutput{
		Action:     model.ActionPulled,
		Repository: ev.Repository,
		Branch:     currentBranch,
		Output:     strings.TrimSpace(out),
		Message:    fmt.Sprintf("Pulled %s on branch %s", ev.Repository, currentBranch),
	}, nil
}

// cleanupFailedClone removes the target directory only when the failed
// clone left it with no entries at all. Partial artifacts are kept for
// manual inspection, never silently deleted.
func (uc *implUseCase) cleanupFailedClone(ctx context.Context, path string) {
	if !uc.storage.Exists(path) {
		return
	}
	entries, err := uc.storage.ListEntries(path)
	if err != nil || len(entries) > 0 {
		return
	}
	if err := uc.storage.RemoveDir(path); err != nil {
		uc.l.Warnf(ctx, "sync: failed to remove empty directory %s: %v", path, err)
	}
}
