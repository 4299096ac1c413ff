package reclaim

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Norgate-AV/instant-clean/internal/paths"
	"github.com/Norgate-AV/instant-clean/internal/report"
)

// faultyFs fails removals of the listed paths with a permission error
type faultyFs struct {
	afero.Fs
	fail map[string]bool
}

func newFaultyFs(base afero.Fs, failing ...string) *faultyFs {
	f := &faultyFs{Fs: base, fail: map[string]bool{}}
	for _, p := range failing {
		f.fail[p] = true
	}

	return f
}

func (f *faultyFs) RemoveAll(path string) error {
	if f.fail[path] {
		return &os.PathError{Op: "unlinkat", Path: path, Err: os.ErrPermission}
	}

	return f.Fs.RemoveAll(path)
}

func (f *faultyFs) Remove(path string) error {
	if f.fail[path] {
		return &os.PathError{Op: "remove", Path: path, Err: os.ErrPermission}
	}

	return f.Fs.Remove(path)
}

func newSweeper(fs afero.Fs, dryRun bool) (*Sweeper, *bytes.Buffer) {
	var out bytes.Buffer
	return New(fs, report.New(&out, dryRun), zap.NewNop(), Options{DryRun: dryRun}), &out
}

func defaultCacheDir(t *testing.T, fs afero.Fs, path string) paths.Dir {
	t.Helper()

	r, err := paths.NewResolver(fs, paths.Options{CacheDir: path})
	require.NoError(t, err)

	dir, err := r.DefaultCacheDir()
	require.NoError(t, err)

	return dir
}

func mkdirs(t *testing.T, fs afero.Fs, dirs ...string) {
	t.Helper()

	for _, d := range dirs {
		require.NoError(t, fs.MkdirAll(d, 0o755))
	}
}

func touch(t *testing.T, fs afero.Fs, files ...string) {
	t.Helper()

	for _, f := range files {
		require.NoError(t, afero.WriteFile(fs, f, []byte("x"), 0o644))
	}
}

func exists(t *testing.T, fs afero.Fs, path string) bool {
	t.Helper()

	ok, err := afero.Exists(fs, path)
	require.NoError(t, err)

	return ok
}
