package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"watcherknight/internal/cache"
	"watcherknight/internal/config"
	"watcherknight/internal/gitctx"
	"watcherknight/internal/judge"
	"watcherknight/internal/marker"
	"watcherknight/internal/output"
	"watcherknight/internal/redact"
)

var (
	flagModel        string
	flagCommit       string
	flagAll          bool
	flagConcurrency  int
	flagFormat       string
	flagOut          string
	flagPaths        string
	flagExcludePaths string
	flagMaxDiffBytes int
	flagClaudeBin    string
	flagNoRedact     bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Scan for watcher annotations and validate them against the diff",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}
		if flagPaths != "" {
			cfg.Include = splitComma(flagPaths)
		}
		if flagExcludePaths != "" {
			cfg.Exclude = append(cfg.Exclude, splitComma(flagExcludePaths)...)
		}

		root, err := gitctx.DiscoverRoot()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		anns, err := scanAnnotations(root, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		if len(anns) == 0 {
			fmt.Fprintln(os.Stderr, "No watchers found.")
			return nil
		}

		diff, err := gitctx.Diff(root, cfg.Commit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		if strings.TrimSpace(diff) == "" {
			fmt.Fprintf(os.Stderr, "No changes since %s. Nothing to validate.\n", cfg.Commit)
			return nil
		}

		if !flagAll {
			changed, err := gitctx.ChangedFiles(root, cfg.Commit)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				exitCode = ExitRuntimeError
				return nil
			}
			anns = marker.FilterRelevant(anns, changed)
			if len(anns) == 0 {
				fmt.Fprintln(os.Stderr, "No watchers matched the changed files.")
				return nil
			}
		}

		warnUntracked(root)

		diff = gitctx.Truncate(diff, cfg.MaxDiffBytes)
		if flagNoRedact {
			cfg.Privacy.RedactSecrets = false
			fmt.Fprintln(os.Stderr, "WARNING: secret redaction is disabled")
		}
		if cfg.Privacy.RedactSecrets {
			diff = redact.Diff(diff)
		}

		j, err := buildJudge(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		engine := &judge.Engine{
			Judge:       j,
			Concurrency: cfg.Concurrency,
			Progress:    os.Stderr,
			Logger:      logger,
		}

		fmt.Fprintf(os.Stderr, "running %d watchers\n\n", len(anns))
		report := engine.Run(context.Background(), anns, diff)

		if err := output.WriteReport(report, cfg.Format, flagOut); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		if !report.OK() {
			exitCode = ExitViolations
		}
		return nil
	},
}

// scanAnnotations walks the working tree and parses every readable text file.
func scanAnnotations(root string, cfg config.Config) ([]marker.Annotation, error) {
	files, err := gitctx.WalkFiles(root, cfg.Include, cfg.Exclude)
	if err != nil {
		return nil, err
	}

	var anns []marker.Annotation
	for _, rel := range files {
		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil || gitctx.IsBinary(data) {
			continue
		}
		anns = append(anns, marker.ParseFile(string(data), rel, root)...)
	}
	logger.Debug("scan complete",
		zap.Int("files", len(files)),
		zap.Int("annotations", len(anns)))
	return anns, nil
}

// warnUntracked flags files git does not know about: the judge reads the
// working tree, so their contents influence verdicts without being in the
// diff.
func warnUntracked(root string) {
	untracked := gitctx.Untracked(root)
	if len(untracked) == 0 {
		return
	}
	var b strings.Builder
	for _, f := range untracked {
		fmt.Fprintf(&b, "  - %s\n", f)
	}
	fmt.Fprintf(os.Stderr, "\x1b[33m[WARNING] new unstaged files:\n%s\x1b[0m\n", b.String())
}

func buildJudge(cfg config.Config) (judge.Judge, error) {
	var j judge.Judge = judge.NewClaudeCLI(cfg.ClaudeBin, cfg.Model)
	if cfg.Cache.Enabled {
		c, err := cache.New(true, cfg.Cache.Dir, cfg.Cache.TTLSeconds)
		if err != nil {
			return nil, fmt.Errorf("opening cache: %w", err)
		}
		j = judge.WithCache(j, c, cfg.Model)
	}
	return j, nil
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagModel != "" {
		m["model"] = flagModel
	}
	if flagCommit != "" {
		m["commit"] = flagCommit
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagClaudeBin != "" {
		m["claudeBin"] = flagClaudeBin
	}
	if flagConcurrency != 0 {
		m["concurrency"] = fmt.Sprintf("%d", flagConcurrency)
	}
	if flagMaxDiffBytes > 0 {
		m["maxDiffBytes"] = fmt.Sprintf("%d", flagMaxDiffBytes)
	}
	return m
}

func splitComma(s string) []string {
	var result []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}

func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagPaths, "paths", "", "Include file path globs (comma-separated)")
	cmd.Flags().StringVar(&flagExcludePaths, "exclude", "", "Exclude file path globs (comma-separated)")
}

func init() {
	runCmd.Flags().StringVar(&flagModel, "model", "", "Judge model alias (haiku, sonnet, opus)")
	runCmd.Flags().StringVar(&flagCommit, "commit", "", "Git commit to diff against (default HEAD)")
	runCmd.Flags().BoolVar(&flagAll, "all", false, "Run all watchers regardless of changed files")
	runCmd.Flags().IntVar(&flagConcurrency, "concurrency", 0, "Max concurrent judge invocations (0 = config default, negative = unbounded)")
	runCmd.Flags().StringVar(&flagFormat, "format", "", "Report format (text, json)")
	runCmd.Flags().StringVar(&flagOut, "out", "", "Report file path (default: stdout)")
	runCmd.Flags().IntVar(&flagMaxDiffBytes, "max-diff-bytes", 0, "Maximum diff size embedded in prompts")
	runCmd.Flags().StringVar(&flagClaudeBin, "claude-bin", "", "Judge executable (default: claude)")
	runCmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "Disable secret redaction (use with caution)")
	addScanFlags(runCmd)
}
