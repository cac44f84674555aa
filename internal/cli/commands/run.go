package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/okkero/Advent-of-Code-2023/internal/cli/output"
	"github.com/okkero/Advent-of-Code-2023/internal/harness"
)

// errTooFewArguments is returned when run gets neither days nor --all.
var errTooFewArguments = errors.New("too few arguments")

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	var all, watch bool

	cmd := &cobra.Command{
		Use:     "run <day>...",
		Aliases: []string{"solve"},
		Short:   "Solve one or more days",
		Long: `Solve both parts of each given day against its input file.

Days are given by number (3) or by name (gear-ratios). Inputs are read from
<input-dir>/day<N>.

Output adapts to environment:
  - Terminal: Styled text
  - Piped/Scripted: Markdown format

Use --output to override: auto, text, markdown, json`,
		Example: `  # Solve day 1
  aoc run 1

  # Solve several days
  aoc run 1 4 7

  # Solve every day as JSON
  aoc run --all -o json

  # Re-solve day 5 whenever its input changes
  aoc run 5 --watch`,
		Args: func(_ *cobra.Command, args []string) error {
			if !all && len(args) == 0 {
				return errTooFewArguments
			}
			if all && len(args) > 0 {
				return fmt.Errorf("--all cannot be combined with day arguments")
			}
			return nil
		},
		ValidArgsFunction: completeDays,
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := resolveDays(args, all)
			if err != nil {
				return err
			}
			cmdCtx := NewCommandContext(cmd)
			if watch {
				return watchDays(cmd.Context(), cmdCtx, days)
			}
			return runDays(cmd.Context(), cmdCtx, days)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Solve every registered day")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-solve when an input file changes")

	return cmd
}

// resolveDays parses day arguments, in the order given.
func resolveDays(args []string, all bool) ([]harness.Day, error) {
	if all {
		return harness.Days(), nil
	}
	days := make([]harness.Day, 0, len(args))
	for _, arg := range args {
		d, err := harness.Parse(arg)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

func completeDays(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	days := harness.Days()
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, strconv.Itoa(int(d))+"\t"+d.Title())
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// runDays solves each day in turn and stops at the first failure.
func runDays(ctx context.Context, cmdCtx *CommandContext, days []harness.Day) error {
	r := cmdCtx.Renderer
	runID := uuid.NewString()
	cmdCtx.Logger.Debug("run started", "run_id", runID, "days", len(days))

	if r.EffectiveMode() == output.ModeJSON {
		return runJSON(ctx, cmdCtx, runID, days)
	}

	for i, d := range days {
		if i > 0 && r.EffectiveMode() == output.ModeMarkdown {
			r.Println("")
		}
		res, err := cmdCtx.Runner.RunDay(ctx, d)
		printResult(cmdCtx, d, res)
		if err != nil {
			return err
		}
	}
	return nil
}

func runJSON(ctx context.Context, cmdCtx *CommandContext, runID string, days []harness.Day) error {
	out := output.RunOutput{RunID: runID, Results: make([]output.DayResult, 0, len(days))}

	var runErr error
	for _, d := range days {
		res, err := cmdCtx.Runner.RunDay(ctx, d)
		dr := output.DayResult{Day: int(d), Title: d.Title()}
		if res != nil {
			dr.Part1, dr.Part2 = res.Part1, res.Part2
			dr.Part1MS = res.Part1Duration.Milliseconds()
			dr.Part2MS = res.Part2Duration.Milliseconds()
		}
		if err != nil {
			dr.Error = err.Error()
			runErr = err
		}
		out.Results = append(out.Results, dr)
		if runErr != nil {
			break
		}
	}

	if err := cmdCtx.Renderer.JSON(out); err != nil {
		return err
	}
	return runErr
}

// printResult writes whatever parts of res completed.
func printResult(cmdCtx *CommandContext, d harness.Day, res *harness.Result) {
	r := cmdCtx.Renderer
	markdown := r.EffectiveMode() == output.ModeMarkdown

	if markdown {
		r.Println(output.FormatHeader(2, fmt.Sprintf("Day %d: %s", int(d), d.Title())))
		r.Println("")
	} else {
		r.Println(r.Styles().Header1.Render(fmt.Sprintf("====== Day %d ======", int(d))))
	}
	if res == nil {
		return
	}

	for _, part := range harness.Parts() {
		answer := res.Answer(part)
		if answer == "" {
			break
		}
		label := "Part " + strconv.Itoa(int(part))
		if markdown {
			line := output.FormatKeyValue(label, answer)
			if cmdCtx.Cfg.Verbose {
				line += " (" + formatDuration(res.Duration(part)) + ")"
			}
			r.Println(line)
			continue
		}
		line := label + ": " + answer
		if cmdCtx.Cfg.Verbose {
			line += " " + r.Styles().Muted.Render("("+formatDuration(res.Duration(part))+")")
		}
		r.Println(line)
	}
}

func formatDuration(d time.Duration) string {
	return d.Round(time.Microsecond).String()
}
