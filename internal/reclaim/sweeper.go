// Package reclaim removes stale temporary build directories and the contents
// of the JIT compilation cache.
//
// Two removal primitives are used on purpose. Directories are removed
// best-effort: a failure is logged at debug level and the sweep moves on.
// Lock marker files are removed strictly: the first failure aborts the cache
// sweep and is returned to the caller. Nothing is ever rolled back, every
// single removal is idempotent and a later run converges.
package reclaim

import (
	"errors"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/Norgate-AV/instant-clean/internal/report"
)

var (
	// ErrNotDefault is returned for directories not produced by the default resolver
	ErrNotDefault = errors.New("refusing to sweep non-default directory")

	// ErrCacheDirMissing means the resolver's guarantee was broken
	ErrCacheDirMissing = errors.New("default cache directory does not exist")

	// ErrNoTempDir is returned for an empty temp directory handle
	ErrNoTempDir = errors.New("no temp directory handle")
)

// Options tune a Sweeper
type Options struct {
	// DryRun reports everything without removing anything
	DryRun bool
}

// Sweeper runs the sweeps against a filesystem
type Sweeper struct {
	fs     afero.Fs
	report *report.Reporter
	logger *zap.Logger
	dryRun bool
}

// New creates a sweeper. A nil logger disables logging.
func New(fs afero.Fs, rep *report.Reporter, logger *zap.Logger, opts Options) *Sweeper {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Sweeper{
		fs:     fs,
		report: rep,
		logger: logger,
		dryRun: opts.DryRun,
	}
}
