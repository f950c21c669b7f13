package mirror

import (
	"errors"
	"fmt"
	"strings"
)

// Domain-specific errors for the sync package.
var (
	ErrCloneDisabled     = errors.New("auto-clone is disabled, clone the repository manually")
	ErrMissingSSHURL     = errors.New("payload has no ssh clone url")
	ErrDirectoryConflict = errors.New("target directory exists with non-git content")
)

// Stage identifies which git operation failed.
type Stage string

const (
	StageClone       Stage = "clone"
	StagePull        Stage = "pull"
	StageBranchQuery Stage = "branch-query"
)

// OpError is a failed git operation carrying the command's stderr.
type OpError struct {
	Stage  Stage
	Stderr string
	Err    error
}

func (e *OpError) Error() string {
	msg := fmt.Sprintf("git %s failed: %v", e.Stage, e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *OpError) Unwrap() error {
	return e.Err
}
