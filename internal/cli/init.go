package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"
	"github.com/swarm-toolkit/swarmgen/internal/branding"
)

const defaultSpecFile = "swarm.yaml"

var initForce bool

var starterSpec = dedent.Dedent(`
	# Services to generate. Each one becomes <output>/lambdas/<name>/.
	# runtime selects the template directory (case-insensitive) and
	# defaults to nodejs18.x when omitted. Other keys are ignored.
	services:
	  api:
	    runtime: python3.9
	  worker:
	    runtime: nodejs18.x
`)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter spec file",
	Long:  `Write a starter spec file (default: ./` + defaultSpecFile + `) to edit before running generate.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := defaultSpecFile
		if len(args) == 1 {
			path = args[0]
		}

		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("%s already exists; use --force to overwrite", path)
		}

		content := strings.TrimLeft(starterSpec, "\n")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
		fmt.Fprintf(cmd.OutOrStdout(), "\nNext steps:\n  1. Edit %s to declare your services\n  2. Run '%s generate -i %s -o ./build'\n",
			path, branding.CLIName(), path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing file")
	rootCmd.AddCommand(initCmd)
}
