package reclaim

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/Norgate-AV/instant-clean/internal/paths"
)

// SweepErrors removes every failed-build directory kept in the default error
// directory. Removal is best-effort and a missing directory counts as empty.
func (s *Sweeper) SweepErrors(dir paths.Dir) (int, error) {
	if !dir.IsDefault() {
		return 0, fmt.Errorf("%w: %s", ErrNotDefault, dir.Path())
	}

	exists, err := afero.DirExists(s.fs, dir.Path())
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", dir.Path(), err)
	}

	if !exists {
		s.report.ErrorsEmpty(dir.Path())
		return 0, nil
	}

	infos, err := afero.ReadDir(s.fs, dir.Path())
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", dir.Path(), err)
	}

	if len(infos) == 0 {
		s.report.ErrorsEmpty(dir.Path())
		return 0, nil
	}

	s.report.ErrorEntries(len(infos), dir.Path())
	for _, info := range infos {
		s.removeTree(filepath.Join(dir.Path(), info.Name()))
	}

	return len(infos), nil
}
