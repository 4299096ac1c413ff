package reclaim

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/Norgate-AV/instant-clean/internal/paths"
)

// SweepCache removes all cache entries and then all lock markers from the
// default cache directory.
//
// Both counts are reported before anything is removed, so they reflect the
// partition rather than what was actually deleted. Entry removal is
// best-effort. The first lock marker that cannot be removed aborts the sweep.
func (s *Sweeper) SweepCache(dir paths.Dir) (Partition, error) {
	names, err := s.list(dir)
	if err != nil {
		return Partition{}, err
	}

	if len(names) == 0 {
		s.report.CacheEmpty(dir.Path())
		return Partition{}, nil
	}

	p := PartitionNames(names)
	s.report.CacheEntries(len(p.Entries), dir.Path())
	s.report.LockFiles(len(p.Locks), dir.Path())

	for _, name := range p.Entries {
		s.removeTree(filepath.Join(dir.Path(), name))
	}

	for _, name := range p.Locks {
		if err := s.removeFile(filepath.Join(dir.Path(), name)); err != nil {
			return p, fmt.Errorf("failed to remove lock file for %s: %w", EntryForLock(name), err)
		}
	}

	s.logger.Debug("cache sweep finished",
		zap.String("dir", dir.Path()),
		zap.Int("entries", len(p.Entries)),
		zap.Int("locks", len(p.Locks)),
	)

	return p, nil
}

// list enforces the default-only guard and the existence precondition, then
// returns the names of the direct children of dir
func (s *Sweeper) list(dir paths.Dir) ([]string, error) {
	if !dir.IsDefault() {
		return nil, fmt.Errorf("%w: %s", ErrNotDefault, dir.Path())
	}

	exists, err := afero.DirExists(s.fs, dir.Path())
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", dir.Path(), err)
	}

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrCacheDirMissing, dir.Path())
	}

	infos, err := afero.ReadDir(s.fs, dir.Path())
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir.Path(), err)
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}

	return names, nil
}
