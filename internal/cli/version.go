package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/swarm-toolkit/swarmgen/internal/branding"
)

// buildInfo is what the version command reports.
type buildInfo struct {
	Version  string `json:"version"`
	Commit   string `json:"commit"`
	Date     string `json:"date"`
	Go       string `json:"go"`
	Platform string `json:"platform"`
}

func currentBuildInfo() buildInfo {
	return buildInfo{
		Version:  buildVersion,
		Commit:   buildCommit,
		Date:     buildDate,
		Go:       runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func (b buildInfo) String() string {
	return fmt.Sprintf("%s %s (commit %s, built %s, %s %s)",
		branding.CLIName(), b.Version, b.Commit, b.Date, b.Go, b.Platform)
}

type versionFormat int

const (
	versionText versionFormat = iota
	versionNumber
	versionJSONFormat
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print the version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print build info as JSON")
	versionCmd.MarkFlagsMutuallyExclusive("short", "json")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := versionText
		switch {
		case versionShort:
			format = versionNumber
		case versionJSON:
			format = versionJSONFormat
		}
		return writeBuildInfo(cmd.OutOrStdout(), currentBuildInfo(), format)
	},
}

func writeBuildInfo(w io.Writer, info buildInfo, format versionFormat) error {
	switch format {
	case versionNumber:
		_, err := fmt.Fprintln(w, info.Version)
		return err
	case versionJSONFormat:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(info); err != nil {
			return fmt.Errorf("encoding build info: %w", err)
		}
		return nil
	default:
		_, err := fmt.Fprintln(w, info)
		return err
	}
}
