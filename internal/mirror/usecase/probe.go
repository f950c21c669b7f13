package usecase

import (
	"strings"

	"repo-mirror/internal/model"
)

// probe classifies the local mirror directory. Read-only; computed fresh
// per request because storage may change between deliveries.
func (uc *implUseCase) probe(path string) model.RepoState {
	if !uc.storage.Exists(path) {
		return model.RepoAbsent
	}

	entries, err := uc.storage.ListEntries(path)
	if err != nil {
		// Unreadable directory: refuse to touch it.
		return model.RepoForeign
	}

	hasGit := false
	hasContent := false
	for _, name := range entries {
		if name == ".git" {
			hasGit = true
			continue
		}
		if !strings.HasPrefix(name, ".") {
			hasContent = true
		}
	}

	switch {
	case hasGit:
		return model.RepoMirror
	case hasContent:
		return model.RepoForeign
	default:
		return model.RepoEmpty
	}
}
