package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = "0.1.0"

// Exit codes form the CI contract: 1 means at least one invariant failed
// validation, anything above 1 means the run itself went wrong.
const (
	ExitSuccess      = 0
	ExitViolations   = 1
	ExitUsageError   = 2
	ExitRuntimeError = 3
)

var (
	flagVerbose bool

	// logger carries diagnostics; the report and progress text are written
	// to stdout/stderr directly.
	logger = zap.NewNop()

	// exitCode is set by command handlers to control the process exit code.
	exitCode = ExitSuccess
)

var rootCmd = &cobra.Command{
	Use:   "watcherknight",
	Short: "Validate invariant annotations against your diff",
	Long: `watcherknight scans the repository for <watcher-knight> / <wk> annotations
embedded in source comments, selects the ones relevant to the current diff,
and asks an AI judge whether each declared invariant still holds. The run
fails if any invariant is violated, making it suitable as a CI gate or git
hook.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if flagVerbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Run executes the root command and returns the process exit code.
func Run() int {
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(hookCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print watcherknight version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "watcherknight version %s\n", version)
	},
}
