package model

import "time"

// RepoState classifies the local mirror directory for one repository.
// Computed fresh per request; never cached (storage may change between
// deliveries).
type RepoState int

const (
	// RepoAbsent means the directory does not exist.
	RepoAbsent RepoState = iota
	// RepoEmpty means the directory exists but holds no content. Entries
	// whose name starts with "." do not count as content, except an actual
	// .git entry which makes the directory a mirror instead.
	RepoEmpty
	// RepoForeign means the directory exists with non-git content in it.
	RepoForeign
	// RepoMirror means the directory contains .git metadata.
	RepoMirror
)

func (s RepoState) String() string {
	switch s {
	case RepoAbsent:
		return "absent"
	case RepoEmpty:
		return "empty"
	case RepoForeign:
		return "foreign"
	case RepoMirror:
		return "mirror"
	}
	return "unknown"
}

// PushEvent is the interpreted GitHub push payload.
type PushEvent struct {
	Repository    string // repository name, always set
	SSHURL        string // ssh clone url, may be empty
	DefaultBranch string // payload default branch or configured fallback
	Ref           string // raw ref string, e.g. refs/heads/main
	Branch        string // branch extracted from Ref; empty until resolved
	ReceivedAt    time.Time
}

// Action is what the sync engine did for a delivery.
type Action string

const (
	ActionCloned  Action = "cloned"
	ActionPulled  Action = "pulled"
	ActionSkipped Action = "skipped"
)
