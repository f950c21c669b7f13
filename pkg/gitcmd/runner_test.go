package gitcmd

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestRun(t *testing.T) {
	t.Run("Captures Stdout", func(t *testing.T) {
		r := New(10 * time.Second)
		stdout, stderr, err := r.Run(context.Background(), t.TempDir(), "sh", "-c", "echo hello")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.TrimSpace(stdout) != "hello" {
			t.Errorf("expected hello on stdout, got %q", stdout)
		}
		if stderr != "" {
			t.Errorf("expected empty stderr, got %q", stderr)
		}
	})

	t.Run("Captures Stderr On Failure", func(t *testing.T) {
		r := New(10 * time.Second)
		_, stderr, err := r.Run(context.Background(), t.TempDir(), "sh", "-c", "echo oops >&2; exit 3")
		if err == nil {
			t.Fatalf("expected non-zero exit error")
		}
		if strings.TrimSpace(stderr) != "oops" {
			t.Errorf("expected oops on stderr, got %q", stderr)
		}
	})

	t.Run("Runs In Working Directory", func(t *testing.T) {
		dir := t.TempDir()
		r := New(10 * time.Second)
		stdout, _, err := r.Run(context.Background(), dir, "pwd")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.TrimSpace(stdout) != dir {
			t.Errorf("expected %q, got %q", dir, stdout)
		}
	})

	t.Run("SSH Key Reaches Child Environment", func(t *testing.T) {
		r := New(10 * time.Second)
		r.SetSSHKey("/keys/id_ed25519")
		stdout, _, err := r.Run(context.Background(), t.TempDir(), "sh", "-c", `printf %s "$GIT_SSH_COMMAND"`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stdout != "ssh -i /keys/id_ed25519 -o IdentitiesOnly=yes" {
			t.Errorf("unexpected GIT_SSH_COMMAND: %q", stdout)
		}
	})

	t.Run("No SSH Command Without Key", func(t *testing.T) {
		t.Setenv("GIT_SSH_COMMAND", "inherited")
		r := New(10 * time.Second)
		stdout, _, err := r.Run(context.Background(), t.TempDir(), "sh", "-c", `printf %s "$GIT_SSH_COMMAND"`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stdout != "inherited" {
			t.Errorf("expected inherited GIT_SSH_COMMAND to pass through, got %q", stdout)
		}
	})

	t.Run("Timeout Kills Hung Process", func(t *testing.T) {
		r := New(100 * time.Millisecond)
		start := time.Now()
		_, _, err := r.Run(context.Background(), t.TempDir(), "sleep", "10")
		if err == nil {
			t.Fatalf("expected timeout error")
		}
		if elapsed := time.Since(start); elapsed > 5*time.Second {
			t.Errorf("process was not killed promptly, took %s", elapsed)
		}
	})
}
