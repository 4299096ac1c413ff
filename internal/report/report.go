// Package report prints the human-readable progress lines of a sweep
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiCyan  = "\x1b[36m"
	ansiReset = "\x1b[0m"

	dryRunPrefix = "[dry-run] "
)

// Reporter writes one line per reported event
type Reporter struct {
	w        io.Writer
	colorize bool
	dryRun   bool
}

// New creates a reporter writing to w. Paths are colored when w is a terminal.
func New(w io.Writer, dryRun bool) *Reporter {
	return &Reporter{
		w:        w,
		colorize: shouldColorize(w),
		dryRun:   dryRun,
	}
}

// TempDir reports a sibling temp directory about to be deleted
func (r *Reporter) TempDir(path string) {
	r.printf("Deleting temporary directory: %s", r.path(path))
}

// CacheEmpty reports that there is nothing to reclaim in dir
func (r *Reporter) CacheEmpty(dir string) {
	r.printf("Cache is empty: %s", r.path(dir))
}

// CacheEntries reports how many cache entries are about to be removed
func (r *Reporter) CacheEntries(n int, dir string) {
	r.printf("Deleting %d cache entries from %s", n, r.path(dir))
}

// LockFiles reports how many lock files are about to be removed
func (r *Reporter) LockFiles(n int, dir string) {
	r.printf("Deleting %d lock files from %s", n, r.path(dir))
}

// ErrorsEmpty reports an empty error directory
func (r *Reporter) ErrorsEmpty(dir string) {
	r.printf("Error directory is empty: %s", r.path(dir))
}

// ErrorEntries reports how many failed-build entries are about to be removed
func (r *Reporter) ErrorEntries(n int, dir string) {
	r.printf("Deleting %d error entries from %s", n, r.path(dir))
}

func (r *Reporter) printf(format string, args ...any) {
	if r == nil || r.w == nil {
		return
	}

	line := fmt.Sprintf(format, args...)
	if r.dryRun {
		line = dryRunPrefix + line
	}

	fmt.Fprintln(r.w, line)
}

func (r *Reporter) path(p string) string {
	if r == nil || !r.colorize {
		return p
	}

	return ansiCyan + p + ansiReset
}

func shouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
