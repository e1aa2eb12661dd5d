package commands

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/doeshing/movierec-go/internal/domain"
	"github.com/doeshing/movierec-go/internal/version"
)

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

type buildDetails struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
	BuildDate string `json:"buildDate,omitempty"`
	GoVersion string `json:"goVersion"`
	Model     string `json:"defaultModel"`
}

// collectBuildDetails prefers ldflags metadata and falls back to the VCS
// stamp the Go toolchain embeds in module builds.
func collectBuildDetails() buildDetails {
	details := buildDetails{
		Version:   version.Version,
		Commit:    version.Commit,
		BuildDate: version.BuildDate,
		GoVersion: runtime.Version(),
		Model:     domain.DefaultGenerativeModel,
	}
	info, ok := readBuildInfo()
	if !ok {
		return details
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if details.Commit == "" {
				details.Commit = s.Value
			}
		case "vcs.time":
			if details.BuildDate == "" {
				details.BuildDate = s.Value
			}
		case "vcs.modified":
			details.Modified = s.Value == "true"
		}
	}
	if details.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		details.Version = info.Main.Version
	}
	return details
}

func NewVersionCommand() *cobra.Command {
	var short, asJSON bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show movierec build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			details := collectBuildDetails()
			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				return renderBuildJSON(out, details)
			case short:
				fmt.Fprintln(out, details.Version)
				return nil
			default:
				renderBuild(out, details)
				return nil
			}
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print only the version string")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print build information as JSON")
	cmd.MarkFlagsMutuallyExclusive("short", "json")
	return cmd
}

func renderBuild(out io.Writer, d buildDetails) {
	fmt.Fprintf(out, "movierec %s\n", d.Version)
	if d.Commit != "" {
		commit := d.Commit
		if len(commit) > 12 {
			commit = commit[:12]
		}
		if d.Modified {
			commit += " (dirty)"
		}
		fmt.Fprintf(out, "  commit:        %s\n", commit)
	}
	if d.BuildDate != "" {
		fmt.Fprintf(out, "  built:         %s\n", d.BuildDate)
	}
	fmt.Fprintf(out, "  go:            %s\n", d.GoVersion)
	fmt.Fprintf(out, "  default model: %s\n", d.Model)
}

func renderBuildJSON(out io.Writer, d buildDetails) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(data))
	return nil
}
