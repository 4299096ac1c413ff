package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Norgate-AV/instant-clean/internal/config"
	"github.com/Norgate-AV/instant-clean/internal/logging"
	"github.com/Norgate-AV/instant-clean/internal/paths"
	"github.com/Norgate-AV/instant-clean/internal/reclaim"
	"github.com/Norgate-AV/instant-clean/internal/report"
)

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewLoader().LoadForClean(cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogOptions())
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return clean(cfg, afero.NewOsFs(), cmd.OutOrStdout(), logger)
}

func clean(cfg *config.Config, fs afero.Fs, out io.Writer, logger *zap.Logger) error {
	resolver, err := paths.NewResolver(fs, cfg.PathOptions())
	if err != nil {
		return err
	}

	// Our own session directory has to be gone before its siblings are swept
	session, err := resolver.OpenSession()
	if err != nil {
		return err
	}

	tmp, err := session.Release()
	if err != nil {
		return fmt.Errorf("failed to release session: %w", err)
	}

	logger.Debug("released session temp directory",
		zap.String("path", tmp.Path),
		zap.String("temp_parent", resolver.TempParent()),
		zap.Bool("dry_run", cfg.DryRun),
	)

	sweeper := reclaim.New(fs, report.New(out, cfg.DryRun), logger, reclaim.Options{DryRun: cfg.DryRun})

	if _, err := sweeper.SweepTemp(tmp); err != nil {
		return err
	}

	cacheDir, err := resolver.DefaultCacheDir()
	if err != nil {
		return err
	}

	logger.Debug("sweeping default cache directory", zap.Stringer("cache_dir", cacheDir))

	if _, err := sweeper.SweepCache(cacheDir); err != nil {
		return err
	}

	if !cfg.IncludeErrors {
		return nil
	}

	errorDir, err := resolver.DefaultErrorDir()
	if err != nil {
		return err
	}

	_, err = sweeper.SweepErrors(errorDir)
	return err
}
