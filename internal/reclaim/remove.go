package reclaim

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

var (
	errNotDir = errors.New("not a directory")
	errIsDir  = errors.New("is a directory")
)

// removeTree is the best-effort recursive delete. Failures are logged at
// debug level and otherwise dropped. Only real directories are removed;
// files and symlinks fail like any other error.
func (s *Sweeper) removeTree(path string) {
	if s.dryRun {
		return
	}

	if err := s.rmtree(path); err != nil {
		s.logger.Debug("ignoring removal failure",
			zap.String("path", path),
			zap.Error(err),
		)
	}
}

func (s *Sweeper) rmtree(path string) error {
	info, err := s.lstat(path)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return &os.PathError{Op: "rmtree", Path: path, Err: errNotDir}
	}

	return s.fs.RemoveAll(path)
}

// removeFile is the strict single-file delete. Errors are returned, and a
// directory in place of the file is an error too.
func (s *Sweeper) removeFile(path string) error {
	if s.dryRun {
		return nil
	}

	info, err := s.lstat(path)
	if err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}

	if info.IsDir() {
		return fmt.Errorf("failed to remove %s: %w", path, &os.PathError{Op: "remove", Path: path, Err: errIsDir})
	}

	if err := s.fs.Remove(path); err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}

	return nil
}

// lstat does not follow symlinks when the filesystem supports it
func (s *Sweeper) lstat(path string) (os.FileInfo, error) {
	if l, ok := s.fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}

	return s.fs.Stat(path)
}
