package webhook

import (
	"encoding/json"
	"errors"
	"testing"

	"repo-mirror/internal/model"
)

func TestParse(t *testing.T) {
	p := NewGitHubParser("main")

	t.Run("Full Payload", func(t *testing.T) {
		ev, err := p.Parse([]byte(`{
			"ref": "refs/heads/develop",
			"repository": {
				"name": "app",
				"ssh_url": "git@host:org/app.git",
				"default_branch": "trunk"
			}
		}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.Repository != "app" || ev.SSHURL != "git@host:org/app.git" {
			t.Errorf("repository fields wrong: %+v", ev)
		}
		if ev.DefaultBranch != "trunk" {
			t.Errorf("expected payload default branch, got %s", ev.DefaultBranch)
		}
		if ev.Ref != "refs/heads/develop" {
			t.Errorf("raw ref not kept: %s", ev.Ref)
		}
		if ev.Branch != "" {
			t.Errorf("branch must not be resolved at parse time, got %s", ev.Branch)
		}
	})

	t.Run("Default Branch Fallback", func(t *testing.T) {
		ev, err := p.Parse([]byte(`{"repository":{"name":"app"}}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.DefaultBranch != "main" {
			t.Errorf("expected configured fallback main, got %s", ev.DefaultBranch)
		}
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		_, err := p.Parse([]byte(`{not json`))
		if !errors.Is(err, ErrMalformedPayload) {
			t.Errorf("expected ErrMalformedPayload, got %v", err)
		}
	})

	t.Run("Missing Repository Name", func(t *testing.T) {
		_, err := p.Parse([]byte(`{"ref":"refs/heads/main","repository":{}}`))
		if !errors.Is(err, ErrMissingRepositoryName) {
			t.Errorf("expected ErrMissingRepositoryName, got %v", err)
		}
	})

	t.Run("Path Traversal Name", func(t *testing.T) {
		for _, name := range []string{"..", "a/b", `a\b`, "."} {
			// Marshal so the name survives JSON encoding byte-for-byte
			// (a raw backslash spliced into a literal would become an
			// escape sequence instead).
			payload, err := json.Marshal(map[string]any{
				"repository": map[string]any{"name": name},
			})
			if err != nil {
				t.Fatal(err)
			}
			_, err = p.Parse(payload)
			if !errors.Is(err, ErrInvalidRepositoryName) {
				t.Errorf("name %q: expected ErrInvalidRepositoryName, got %v", name, err)
			}
		}
	})
}

func TestResolveBranch(t *testing.T) {
	p := NewGitHubParser("main")

	t.Run("Branch Ref", func(t *testing.T) {
		ev := &model.PushEvent{Ref: "refs/heads/feature/nested"}
		if err := p.ResolveBranch(ev); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.Branch != "feature/nested" {
			t.Errorf("expected feature/nested, got %s", ev.Branch)
		}
	})

	t.Run("Unresolvable Refs", func(t *testing.T) {
		for _, ref := range []string{"", "refs/tags/v1", "refs/heads/", "HEAD"} {
			ev := &model.PushEvent{Ref: ref}
			if err := p.ResolveBranch(ev); !errors.Is(err, ErrUnresolvableBranch) {
				t.Errorf("ref %q: expected ErrUnresolvableBranch, got %v", ref, err)
			}
		}
	})
}
