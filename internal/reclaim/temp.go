package reclaim

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/Norgate-AV/instant-clean/internal/paths"
)

// SweepTemp removes every sibling of the released session directory whose
// name ends with the session suffix. Any such directory still present is
// assumed to belong to a crashed or abandoned session; no liveness check is
// made. Non-directories are skipped. It returns the directories attempted.
func (s *Sweeper) SweepTemp(tmp paths.TempDir) ([]string, error) {
	if tmp.Path == "" || tmp.Suffix == "" {
		return nil, ErrNoTempDir
	}

	parent := tmp.Parent()
	infos, err := afero.ReadDir(s.fs, parent)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to read temp parent %s: %w", parent, err)
	}

	var attempted []string
	for _, info := range infos {
		if !strings.HasSuffix(info.Name(), tmp.Suffix) || !info.IsDir() {
			continue
		}

		path := filepath.Join(parent, info.Name())
		s.report.TempDir(path)
		s.removeTree(path)
		attempted = append(attempted, path)
	}

	s.logger.Debug("temp sweep finished",
		zap.String("parent", parent),
		zap.Int("attempted", len(attempted)),
	)

	return attempted, nil
}
