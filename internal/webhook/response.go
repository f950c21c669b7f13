package webhook

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"repo-mirror/internal/mirror"
)

// Result is the JSON body every webhook delivery gets back, success or not.
type Result struct {
	Success    bool   `json:"success"`
	Repository string `json:"repository,omitempty"`
	Action     string `json:"action,omitempty"`
	Branch     string `json:"branch,omitempty"`
	Output     string `json:"output,omitempty"`
	Message    string `json:"message"`
	Error      string `json:"error,omitempty"`
	Stderr     string `json:"stderr,omitempty"`
}

// writeOutcome maps a successful sync output (cloned, pulled, or skipped)
// to a 200 response.
func writeOutcome(c *gin.Context, out mirror.SyncOutput) {
	c.JSON(http.StatusOK, Result{
		Success:    true,
		Repository: out.Repository,
		Action:     string(out.Action),
		Branch:     out.Branch,
		Output:     out.Output,
		Message:    out.Message,
	})
}

// writeError maps validation and sync errors to their HTTP class.
func writeError(c *gin.Context, repository string, err error) {
	c.JSON(statusFor(err), Result{
		Success:    false,
		Repository: repository,
		Message:    "Sync failed",
		Error:      err.Error(),
		Stderr:     stderrOf(err),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrMalformedPayload),
		errors.Is(err, ErrMissingRepositoryName),
		errors.Is(err, ErrInvalidRepositoryName),
		errors.Is(err, ErrUnresolvableBranch),
		errors.Is(err, mirror.ErrMissingSSHURL),
		errors.Is(err, mirror.ErrDirectoryConflict):
		return http.StatusBadRequest
	case errors.Is(err, mirror.ErrCloneDisabled):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func stderrOf(err error) string {
	var opErr *mirror.OpError
	if errors.As(err, &opErr) {
		return opErr.Stderr
	}
	return ""
}
