package cli

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/ddddddO/gtree"
	"github.com/swarm-toolkit/swarmgen/internal/config"
	"github.com/swarm-toolkit/swarmgen/internal/console"
	"github.com/swarm-toolkit/swarmgen/internal/scaffold"
	"github.com/swarm-toolkit/swarmgen/internal/spec"
)

// generateOptions holds the root command's generation flags.
type generateOptions struct {
	Input  string
	Output string
	DryRun bool
}

var genOpts generateOptions

func init() {
	rootCmd.Flags().StringVarP(&genOpts.Input, "input", "i", "", "Path to spec YAML file (required)")
	rootCmd.Flags().StringVarP(&genOpts.Output, "output", "o", "", "Output directory, created if absent (required)")
	rootCmd.Flags().BoolVar(&genOpts.DryRun, "dry-run", false, "Print the files that would be generated without writing anything")
	_ = rootCmd.MarkFlagRequired("input")
	_ = rootCmd.MarkFlagRequired("output")
}

// runGenerate loads the spec and materializes every service in declaration
// order. Unsupported runtimes are warned about and skipped; any other
// failure stops the run.
func runGenerate(opts generateOptions, w io.Writer) error {
	s, err := spec.Load(opts.Input)
	if err != nil {
		return err
	}

	out := console.New(w)
	m := scaffold.New(resolveTemplates(), out)
	fallback := config.DefaultRuntime(spec.DefaultRuntime)

	if opts.DryRun {
		return printPlan(w, m, s, opts.Output, fallback)
	}

	if err := os.MkdirAll(opts.Output, 0755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", opts.Output, err)
	}

	for _, svc := range s.Services {
		runtime := svc.Config.RuntimeOr(fallback)
		out.Stepf("Generating service: %s (runtime: %s)", svc.Name, runtime)
		if _, err := m.Materialize(svc.Name, runtime, opts.Output); err != nil {
			return fmt.Errorf("generating service %s: %w", svc.Name, err)
		}
	}

	out.Printf("\nGeneration complete.\n")
	return nil
}

// printPlan renders the would-be output tree.
func printPlan(w io.Writer, m *scaffold.Materializer, s *spec.Specification, output, fallback string) error {
	root := gtree.NewRoot(filepath.Join(output, scaffold.LambdasDir))

	for _, svc := range s.Services {
		runtime := svc.Config.RuntimeOr(fallback)
		result, err := m.Plan(svc.Name, runtime, output)
		if err != nil {
			return fmt.Errorf("planning service %s: %w", svc.Name, err)
		}

		if result.Skipped {
			root.Add(fmt.Sprintf("%s (skipped)", svc.Name))
			continue
		}

		svcNode := root.Add(fmt.Sprintf("%s [%s]", svc.Name, runtime))
		nodes := map[string]*gtree.Node{".": svcNode}
		for _, file := range result.Files {
			addPath(nodes, file)
		}
	}

	if err := gtree.OutputFromRoot(w, root); err != nil {
		return fmt.Errorf("rendering plan: %w", err)
	}
	return nil
}

// addPath adds a slash-separated file path below nodes["."], creating
// intermediate directory nodes once.
func addPath(nodes map[string]*gtree.Node, file string) *gtree.Node {
	if n, ok := nodes[file]; ok {
		return n
	}
	parent := addPath(nodes, path.Dir(file))
	n := parent.Add(path.Base(file))
	nodes[file] = n
	return n
}
