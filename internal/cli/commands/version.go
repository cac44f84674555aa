package commands

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/okkero/Advent-of-Code-2023/internal/harness"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display aoc version, the days it can solve and the Go toolchain it was built with.`,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "aoc v%s\n", version)
			_, _ = fmt.Fprintf(out, "Advent of Code 2023 puzzle solvers, %d days\n", len(harness.Days()))
			if info, ok := debug.ReadBuildInfo(); ok {
				writeBuildInfo(out, info)
			}
		},
	}
}

// writeBuildInfo prints the toolchain and, when stamped, the VCS revision.
func writeBuildInfo(w io.Writer, info *debug.BuildInfo) {
	_, _ = fmt.Fprintf(w, "go: %s\n", info.GoVersion)

	var revision, modified string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value
		}
	}
	if revision == "" {
		return
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	if modified == "true" {
		revision += "-dirty"
	}
	_, _ = fmt.Fprintf(w, "commit: %s\n", revision)
}
