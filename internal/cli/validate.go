package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/swarm-toolkit/swarmgen/internal/config"
	"github.com/swarm-toolkit/swarmgen/internal/scaffold"
	"github.com/swarm-toolkit/swarmgen/internal/spec"
)

var validateInput string

var validateCmd = &cobra.Command{
	Use:   "validate -i <spec.yaml>",
	Short: "Check a spec file against the schema",
	Long: `Validate a spec file without generating anything. Reports schema issues
(wrong types, empty runtimes, service names that are not a single path segment)
and runtimes that have no template.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		result, err := spec.ValidateFile(validateInput)
		if err != nil {
			return err
		}
		if !result.Valid {
			fmt.Fprintf(out, "%s is invalid:\n", validateInput)
			for _, issue := range result.Issues {
				msg := issue.Message
				if issue.Path != "" {
					msg = issue.Path + ": " + msg
				}
				fmt.Fprintf(out, "  - %s\n", msg)
			}
			return fmt.Errorf("%s has %d issue(s)", validateInput, len(result.Issues))
		}

		s, err := spec.Load(validateInput)
		if err != nil {
			return err
		}

		src := resolveTemplates()
		var warnings []string
		for _, svc := range s.Services {
			if err := scaffold.ValidateServiceName(svc.Name); err != nil {
				warnings = append(warnings, err.Error())
				continue
			}
			runtime := svc.Config.RuntimeOr(config.DefaultRuntime(spec.DefaultRuntime))
			if _, ok := src.Lookup(runtime); !ok {
				warnings = append(warnings, fmt.Sprintf("service %s: no templates for runtime %s in %s", svc.Name, runtime, src.Name()))
			}
		}

		fmt.Fprintf(out, "%s is valid (%d services)\n", validateInput, len(s.Services))
		if len(warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for _, w := range warnings {
				fmt.Fprintf(out, "  - %s\n", w)
			}
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "Path to spec YAML file (required)")
	_ = validateCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(validateCmd)
}
