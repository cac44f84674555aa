package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/okkero/Advent-of-Code-2023/internal/cli/output"
	"github.com/okkero/Advent-of-Code-2023/internal/harness"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the registered days and their inputs",
		Long: `List every registered day with its title, input file and whether the
input file exists.

Output adapts to environment:
  - Terminal: Table
  - Piped/Scripted: Markdown format

Use --output to override: auto, text, markdown, json`,
		Example: `  # List days
  aoc list

  # List days as JSON
  aoc list --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd)
		},
	}

	return cmd
}

func runList(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	infos := dayInfos(cmdCtx.Opener)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(output.ListOutput{InputDir: cmdCtx.Cfg.InputDir, Days: infos})
	case output.ModeMarkdown:
		r.Header(1, fmt.Sprintf("Days (%d total)", len(infos)))
		r.Println("")
	default:
		r.Header(1, fmt.Sprintf("Days (%d total)", len(infos)))
	}

	rows := make([][]string, 0, len(infos))
	missing := 0
	for _, info := range infos {
		status := "present"
		if !info.InputExists {
			status = "missing"
			missing++
		}
		rows = append(rows, []string{strconv.Itoa(info.Day), info.Title, info.InputPath, status})
	}
	r.Table([]string{"Day", "Title", "Input", "Status"}, rows)

	if missing > 0 {
		r.Muted(fmt.Sprintf("%d of %d inputs missing from %s", missing, len(infos), cmdCtx.Cfg.InputDir))
	}
	return nil
}

func dayInfos(opener harness.DirOpener) []output.DayInfo {
	days := harness.Days()
	infos := make([]output.DayInfo, 0, len(days))
	for _, d := range days {
		infos = append(infos, output.DayInfo{
			Day:         int(d),
			Title:       d.Title(),
			Slug:        d.Slug(),
			InputPath:   opener.Path(d),
			InputExists: opener.Exists(d),
		})
	}
	return infos
}
