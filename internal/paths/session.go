package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

const sessionLockName = ".session.lock"

// TempDir identifies a released session temp directory
type TempDir struct {
	// Absolute path of the (now removed) directory
	Path string

	// Name suffix shared by all sibling session directories
	Suffix string
}

// Parent returns the directory containing all sibling temp directories
func (t TempDir) Parent() string {
	return filepath.Dir(t.Path)
}

// Session owns the temp directory of the running process. The directory is
// locked for as long as the session is open.
type Session struct {
	dir      string
	suffix   string
	lock     *flock.Flock
	released bool
}

// OpenSession creates <parent>/<random><suffix> and takes an exclusive lock on it
func OpenSession(parent, suffix string) (*Session, error) {
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return nil, fmt.Errorf("%w: failed to create temp parent: %v", ErrUnavailable, err)
	}

	dir, err := os.MkdirTemp(parent, "*"+suffix)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create session directory: %v", ErrUnavailable, err)
	}

	lock := flock.New(filepath.Join(dir, sessionLockName))
	ok, err := lock.TryLock()
	if err != nil || !ok {
		_ = os.RemoveAll(dir)
		if err == nil {
			err = errors.New("lock already held")
		}

		return nil, fmt.Errorf("failed to lock session directory %s: %w", dir, err)
	}

	return &Session{
		dir:    dir,
		suffix: suffix,
		lock:   lock,
	}, nil
}

// Dir returns the session temp directory path
func (s *Session) Dir() string {
	return s.dir
}

// Release unlocks and deletes the session directory. Safe to call twice.
func (s *Session) Release() (TempDir, error) {
	if s.released {
		return s.handle(), nil
	}

	if err := s.lock.Unlock(); err != nil {
		return TempDir{}, fmt.Errorf("failed to unlock session directory: %w", err)
	}

	if err := os.RemoveAll(s.dir); err != nil {
		return TempDir{}, fmt.Errorf("failed to remove session directory: %w", err)
	}

	s.released = true

	return s.handle(), nil
}

func (s *Session) handle() TempDir {
	return TempDir{Path: s.dir, Suffix: s.suffix}
}
