package mirror

import "repo-mirror/internal/model"

// SyncInput is the input for one delivery.
type SyncInput struct {
	Event model.PushEvent
}

// SyncOutput is the result of a clone, pull, or skip.
type SyncOutput struct {
	Action     model.Action
	Repository string
	Branch     string // branch the mirror is on after the action
	Output     string // combined stdout of the git commands
	Message    string // human-readable summary
}

// Config holds the read-only sync settings for the process lifetime.
type Config struct {
	ReposDir  string
	AutoClone bool
}
