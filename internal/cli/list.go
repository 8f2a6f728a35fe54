package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"watcherknight/internal/config"
	"watcherknight/internal/gitctx"
)

var flagListJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List watcher annotations found in the repository",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(nil)
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

		if flagListJSON {
			type listed struct {
				Name        string   `json:"name"`
				Location    string   `json:"location"`
				Instruction string   `json:"instruction"`
				Scope       []string `json:"scope,omitempty"`
			}
			out := make([]listed, 0, len(anns))
			for _, a := range anns {
				out = append(out, listed{
					Name:        a.Name,
					Location:    a.Location(),
					Instruction: a.Instruction,
					Scope:       a.Scope,
				})
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		if len(anns) == 0 {
			fmt.Fprintln(os.Stdout, "No watchers found.")
			return nil
		}
		for _, a := range anns {
			name := a.Name
			if name == "" {
				name = "(unnamed)"
			}
			fmt.Fprintf(os.Stdout, "%s  %s\n", a.Location(), name)
			for _, line := range strings.Split(a.Instruction, "\n") {
				fmt.Fprintf(os.Stdout, "    %s\n", line)
			}
			if len(a.Scope) > 0 {
				fmt.Fprintf(os.Stdout, "    files: %s\n", strings.Join(a.Scope, ", "))
			}
		}
		fmt.Fprintf(os.Stdout, "\n%d watchers\n", len(anns))
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&flagListJSON, "json", false, "Emit annotations as JSON")
	addScanFlags(listCmd)
}
