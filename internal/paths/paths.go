// Package paths resolves the on-disk locations used by the JIT compilation
// cache: the instant directory, the default cache and error directories, and
// the parent directory holding per-session temporary build directories.
//
// The sweeps in package reclaim only ever receive paths produced here. A Dir
// remembers whether it came from the default resolution so the sweeps can
// refuse to touch locations the user pointed them at manually.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	// TempSuffix is appended to every session temp directory name
	TempSuffix = "_instant"

	// LockExt is the extension of lock marker files in the cache directory
	LockExt = ".lock"

	// DefaultInstantDirName is the instant directory name under the user's home
	DefaultInstantDirName = ".instant"

	cacheDirName = "cache"
	errorDirName = "error"
)

// ErrUnavailable reports that the default locations could not be determined.
var ErrUnavailable = errors.New("cache path resolver unavailable")

// Options holds the raw locations. Empty fields fall back to defaults.
type Options struct {
	// Root of the instant directory (~/.instant)
	InstantDir string

	// Overrides <InstantDir>/cache
	CacheDir string

	// Overrides <InstantDir>/error
	ErrorDir string

	// Parent of session temp directories, defaults to os.TempDir()
	TempParent string
}

// Dir is a cache-like directory handed to the sweeps
type Dir struct {
	path      string
	isDefault bool
}

// Custom wraps a user-specified location. Sweeps refuse such directories.
func Custom(path string) Dir {
	return Dir{path: path}
}

// Path returns the directory path
func (d Dir) Path() string {
	return d.path
}

// IsDefault reports whether the directory came from the default resolver
func (d Dir) IsDefault() bool {
	return d.isDefault
}

func (d Dir) String() string {
	return d.path
}

// Resolver resolves and creates the default directories
type Resolver struct {
	fs         afero.Fs
	cacheDir   string
	errorDir   string
	tempParent string
}

// NewResolver creates a resolver over fs.
// It fails with ErrUnavailable if no cache location can be derived.
func NewResolver(fs afero.Fs, opts Options) (*Resolver, error) {
	if fs == nil {
		return nil, fmt.Errorf("%w: no filesystem", ErrUnavailable)
	}

	if opts.InstantDir == "" && opts.CacheDir == "" {
		return nil, fmt.Errorf("%w: instant directory not set and home directory unknown", ErrUnavailable)
	}

	r := &Resolver{
		fs:         fs,
		cacheDir:   opts.CacheDir,
		errorDir:   opts.ErrorDir,
		tempParent: opts.TempParent,
	}

	if r.cacheDir == "" {
		r.cacheDir = filepath.Join(opts.InstantDir, cacheDirName)
	}

	if r.errorDir == "" {
		// Without an instant dir the error dir sits next to the cache
		base := opts.InstantDir
		if base == "" {
			base = filepath.Dir(r.cacheDir)
		}

		r.errorDir = filepath.Join(base, errorDirName)
	}

	if r.tempParent == "" {
		r.tempParent = os.TempDir()
	}

	return r, nil
}

// DefaultCacheDir returns the default cache directory, creating it if absent
func (r *Resolver) DefaultCacheDir() (Dir, error) {
	return r.ensure(r.cacheDir)
}

// DefaultErrorDir returns the default error directory, creating it if absent
func (r *Resolver) DefaultErrorDir() (Dir, error) {
	return r.ensure(r.errorDir)
}

// TempParent returns the directory holding all session temp directories
func (r *Resolver) TempParent() string {
	return r.tempParent
}

// OpenSession creates and locks a temp directory for the current process
func (r *Resolver) OpenSession() (*Session, error) {
	return OpenSession(r.tempParent, TempSuffix)
}

func (r *Resolver) ensure(path string) (Dir, error) {
	if err := r.fs.MkdirAll(path, 0o755); err != nil {
		return Dir{}, fmt.Errorf("%w: failed to create %s: %v", ErrUnavailable, path, err)
	}

	return Dir{path: path, isDefault: true}, nil
}
