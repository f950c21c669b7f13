package usecase

import (
	"context"
	"strings"
)

// mockLogger satisfies pkg/log.Logger for tests.
type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Info(ctx context.Context, args ...any)                  {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Error(ctx context.Context, args ...any)                 {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any) {}

// fakeRunner records git invocations and delegates to runFunc.
type fakeRunner struct {
	runFunc func(dir, name string, args ...string) (string, string, error)
	calls   []string
}

func (f *fakeRunner) Run(ctx context.Context, dir string, name string, args ...string) (string, string, error) {
	f.calls = append(f.calls, name+" "+strings.Join(args, " "))
	if f.runFunc == nil {
		return "", "", nil
	}
	return f.runFunc(dir, name, args...)
}

// fakeStorage is an in-memory directory tree: path -> entry names.
type fakeStorage struct {
	dirs    map[string][]string
	made    []string
	removed []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{dirs: make(map[string][]string)}
}

func (f *fakeStorage) Exists(path string) bool {
	_, ok := f.dirs[path]
	return ok
}

func (f *fakeStorage) ListEntries(path string) ([]string, error) {
	return f.dirs[path], nil
}

func (f *fakeStorage) MakeDir(path string) error {
	f.made = append(f.made, path)
	if _, ok := f.dirs[path]; !ok {
		f.dirs[path] = nil
	}
	return nil
}

func (f *fakeStorage) RemoveDir(path string) error {
	f.removed = append(f.removed, path)
	delete(f.dirs, path)
	return nil
}
