package webhook

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"repo-mirror/internal/model"
)

// branchRefPattern matches branch refs only; tag refs and anything else do
// not resolve to a branch for this flow.
var branchRefPattern = regexp.MustCompile(`^refs/heads/(.+)$`)

// GitHubPushParser interprets GitHub push payloads.
type GitHubPushParser struct {
	defaultBranch string // fallback when the payload declares none
}

func NewGitHubParser(defaultBranch string) *GitHubPushParser {
	return &GitHubPushParser{defaultBranch: defaultBranch}
}

// Parse extracts the repository identity, clone URL, default branch, and
// raw ref from the payload. Branch extraction is a separate step
// (ResolveBranch) so non-push events can be filtered before it runs.
func (p *GitHubPushParser) Parse(payload []byte) (*model.PushEvent, error) {
	var body struct {
		Ref        string `json:"ref"`
		Repository struct {
			Name          string `json:"name"`
			SSHURL        string `json:"ssh_url"`
			DefaultBranch string `json:"default_branch"`
		} `json:"repository"`
	}

	if err := json.Unmarshal(payload, &body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	name := body.Repository.Name
	if name == "" {
		return nil, ErrMissingRepositoryName
	}
	// The name becomes a path component under the repos dir.
	if strings.ContainsAny(name, "/\\") || name == "." || name == ".." {
		return nil, ErrInvalidRepositoryName
	}

	defaultBranch := body.Repository.DefaultBranch
	if defaultBranch == "" {
		defaultBranch = p.defaultBranch
	}

	return &model.PushEvent{
		Repository:    name,
		SSHURL:        body.Repository.SSHURL,
		DefaultBranch: defaultBranch,
		Ref:           body.Ref,
		ReceivedAt:    time.Now(),
	}, nil
}

// ResolveBranch extracts the pushed branch from the event's ref
// (refs/heads/main → main). Push events only; a tag push or an absent ref
// is unresolvable.
func (p *GitHubPushParser) ResolveBranch(ev *model.PushEvent) error {
	m := branchRefPattern.FindStringSubmatch(ev.Ref)
	if m == nil {
		return fmt.Errorf("%w: %q", ErrUnresolvableBranch, ev.Ref)
	}
	ev.Branch = m[1]
	return nil
}
