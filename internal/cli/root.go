package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/swarm-toolkit/swarmgen/internal/branding"
	"github.com/swarm-toolkit/swarmgen/internal/config"
	"github.com/swarm-toolkit/swarmgen/internal/logger"
	"github.com/swarm-toolkit/swarmgen/internal/templates"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	verbose      bool
	templatesDir string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [generate] -i <spec.yaml> -o <dir>",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` reads a spec file declaring services and their runtimes, and
creates <output>/lambdas/<service>/ for each one by copying the runtime's
template tree verbatim.

The optional positional argument ("generate") is accepted for compatibility
and ignored. Any token runs generation when -o/--output is given, including
one that names a subcommand.`,
	Example: `  ` + branding.CLIName() + ` generate -i swarm.yaml -o ./build
  ` + branding.CLIName() + ` -i swarm.yaml -o ./build --templates ./templates --dry-run`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		logger.Init(cmd.ErrOrStderr(), verbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(genOpts, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&templatesDir, "templates", "", "Template base directory (default: $SWARMGEN_TEMPLATES_DIR, config templates_dir, or built-in)")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := execute(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func execute(args []string) error {
	rootCmd.SetArgs(routeArgs(args))
	return rootCmd.Execute()
}

// valueFlags are the generation flags that consume the next argument.
var valueFlags = map[string]bool{
	"-i": true, "--input": true,
	"-o": true, "--output": true,
	"--templates": true,
}

// routeArgs keeps the positional token inert. When it happens to name a
// subcommand but an output flag is present, the invocation is a generation
// run and the token is dropped before cobra dispatches on it.
func routeArgs(args []string) []string {
	pos := -1
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			break
		}
		if valueFlags[a] {
			i++
			continue
		}
		if !strings.HasPrefix(a, "-") {
			pos = i
			break
		}
	}
	if pos < 0 || !isSubcommand(args[pos]) || !hasOutputFlag(args) {
		return args
	}

	routed := make([]string, 0, len(args)-1)
	routed = append(routed, args[:pos]...)
	return append(routed, args[pos+1:]...)
}

func isSubcommand(name string) bool {
	if name == "help" || name == "completion" {
		return true
	}
	for _, c := range rootCmd.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return true
		}
	}
	return false
}

func hasOutputFlag(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "--output" || strings.HasPrefix(a, "--output=") {
			return true
		}
		if strings.HasPrefix(a, "-o") && !strings.HasPrefix(a, "--") {
			return true
		}
	}
	return false
}

// resolveTemplates picks the template base: --templates, then configuration,
// then the built-in set.
func resolveTemplates() *templates.Source {
	if dir := config.TemplatesDir(templatesDir); dir != "" {
		logger.Debug("using template directory", "dir", dir)
		return templates.Dir(dir)
	}
	return templates.Builtin()
}
