package fsys

import "os"

// Storage is the filesystem capability used by the sync domain: existence
// checks, directory listing, and recursive create/remove. All methods
// operate on absolute or process-relative paths.
type Storage struct{}

func New() Storage {
	return Storage{}
}

// Exists reports whether a file or directory exists at path.
func (Storage) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ListEntries returns the names of the direct entries of the directory.
func (Storage) ListEntries(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

// MakeDir creates the directory and any missing parents.
func (Storage) MakeDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// RemoveDir removes the directory and anything beneath it.
func (Storage) RemoveDir(path string) error {
	return os.RemoveAll(path)
}
