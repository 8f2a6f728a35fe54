package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"watcherknight/internal/cache"
	"watcherknight/internal/config"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the judge response cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached judge responses",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openConfiguredCache()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		if !c.Enabled() {
			fmt.Fprintln(os.Stdout, "Cache is disabled; nothing to clear.")
			return nil
		}
		if err := c.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing cache: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		fmt.Fprintln(os.Stdout, "Cache cleared.")
		return nil
	},
}

var cacheShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show cache location and usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openConfiguredCache()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		if !c.Enabled() {
			fmt.Fprintln(os.Stdout, "Cache is disabled. Enable it with: watcherknight config set cache.enabled true")
			return nil
		}
		stats, err := c.GetStats()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading cache: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		fmt.Fprintf(os.Stdout, "Directory: %s\n", stats.Dir)
		fmt.Fprintf(os.Stdout, "Entries:   %d\n", stats.Entries)
		fmt.Fprintf(os.Stdout, "Size:      %d bytes\n", stats.TotalBytes)
		return nil
	},
}

func openConfiguredCache() (*cache.Cache, error) {
	cfg, err := config.Load(nil)
	if err != nil {
		return nil, err
	}
	return cache.New(cfg.Cache.Enabled, cfg.Cache.Dir, cfg.Cache.TTLSeconds)
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheShowCmd)
}
