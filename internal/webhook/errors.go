package webhook

import "errors"

// Validation errors for inbound payloads.
var (
	ErrMalformedPayload      = errors.New("payload is not valid json")
	ErrMissingRepositoryName = errors.New("payload has no repository name")
	ErrInvalidRepositoryName = errors.New("repository name contains path elements")
	ErrUnresolvableBranch    = errors.New("ref does not resolve to a branch")
)
