package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/swarm-toolkit/swarmgen/internal/templates"
)

var runtimesJSON bool

var runtimesCmd = &cobra.Command{
	Use:   "runtimes",
	Short: "List runtimes that have templates",
	Long: `List the runtime template directories available for generation.

Templates come from --templates, the templates_dir setting, or the built-in set.`,
	Args: cobra.NoArgs,
	RunE: runRuntimes,
}

func init() {
	runtimesCmd.Flags().BoolVar(&runtimesJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(runtimesCmd)
}

// runtimeEntry represents a runtime template for display.
type runtimeEntry struct {
	Name    string `json:"name"`
	Family  string `json:"family"`
	Version string `json:"version,omitempty"`
	Files   int    `json:"files"`
}

func runRuntimes(cmd *cobra.Command, args []string) error {
	src := resolveTemplates()
	runtimes, err := src.Runtimes()
	if err != nil {
		return err
	}

	if len(runtimes) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No runtime templates found in %s\n", src.Name())
		return nil
	}

	entries := make([]runtimeEntry, 0, len(runtimes))
	for _, r := range runtimes {
		entries = append(entries, newRuntimeEntry(r))
	}

	if runtimesJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "RUNTIME\tFAMILY\tVERSION\tFILES")
	for _, e := range entries {
		version := e.Version
		if version == "" {
			version = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", e.Name, e.Family, version, e.Files)
	}
	return w.Flush()
}

func newRuntimeEntry(r templates.Runtime) runtimeEntry {
	e := runtimeEntry{Name: r.Name, Family: r.Family, Files: r.Files}
	if r.Version != nil {
		e.Version = r.Version.Original()
	}
	return e
}
