package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/instant-clean/internal/codes"
	"github.com/Norgate-AV/instant-clean/internal/config"
	"github.com/Norgate-AV/instant-clean/internal/paths"
	"github.com/Norgate-AV/instant-clean/internal/reclaim"
	"github.com/Norgate-AV/instant-clean/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "instant-clean",
	Short: "Clean the instant JIT compilation cache",
	Long: `Remove temporary build directories left behind by interrupted instant
sessions, then every cached module and lock file in the default cache directory.`,
	RunE:         runClean,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
}

func Execute() {
	err := rootCmd.Execute()
	if code := diagnose(err, os.Stderr); !codes.IsSuccess(code) {
		os.Exit(code)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (%s) %s", version.Version, version.Commit, version.BuildTime)
	rootCmd.Flags().BoolP("verbose", "v", config.DefaultVerbose, "Verbose output")
	rootCmd.Flags().BoolP("dry-run", "n", config.DefaultDryRun, "Report what would be deleted without deleting it")
	rootCmd.Flags().Bool("errors", config.DefaultIncludeErrors, "Also clear the error directory of failed builds")
	rootCmd.Flags().String("log-format", config.DefaultLogFormat, "Diagnostic log format (console, json)")
}

// diagnose prints the exit code description for a failed run and returns the code
func diagnose(err error, w io.Writer) int {
	code := exitCode(err)
	if !codes.IsSuccess(code) {
		fmt.Fprintf(w, "instant-clean: %s (exit %d)\n", codes.GetErrorMessage(code), code)
	}

	return code
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return codes.Success
	case errors.Is(err, paths.ErrUnavailable):
		return codes.Unavailable
	case errors.Is(err, reclaim.ErrCacheDirMissing):
		return codes.BrokenInvariant
	default:
		return codes.Failure
	}
}
