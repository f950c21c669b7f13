package gitcmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// Runner executes external commands (git, ssh-keygen) in a working
// directory, capturing stdout and stderr separately. Every invocation is
// bounded by the configured timeout so a hung process (e.g. git waiting on
// an SSH host-key prompt) cannot block a request forever.
type Runner struct {
	timeout    time.Duration
	sshKeyPath string
}

// New creates a Runner. A zero timeout means no bound.
func New(timeout time.Duration) *Runner {
	return &Runner{timeout: timeout}
}

// SetSSHKey makes subsequent git invocations authenticate with the private
// key at path instead of whatever identities the ambient SSH agent offers.
// Call it once during startup, before the runner is shared across requests.
func (r *Runner) SetSSHKey(path string) {
	r.sshKeyPath = path
}

// Run executes name with args in dir and returns captured stdout/stderr.
// The returned error is the process error (non-zero exit, not found,
// context deadline); stderr is returned even on failure.
func (r *Runner) Run(ctx context.Context, dir string, name string, args ...string) (string, string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	// Never let git fall back to an interactive credential prompt.
	env := append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	if r.sshKeyPath != "" {
		env = append(env, fmt.Sprintf("GIT_SSH_COMMAND=ssh -i %s -o IdentitiesOnly=yes", r.sshKeyPath))
	}
	cmd.Env = env

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}
