package commands

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/okkero/Advent-of-Code-2023/internal/answers"
	"github.com/okkero/Advent-of-Code-2023/internal/cli/output"
	"github.com/okkero/Advent-of-Code-2023/internal/harness"
)

// Check statuses.
const (
	statusPass  = "pass"
	statusFail  = "fail"
	statusError = "error"
)

// NewVerifyCommand creates the verify command.
func NewVerifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check answers against the answers file",
		Long: `Solve every day listed in the answers file and compare each part with its
expected answer. Parts without an expected answer are skipped.

The command fails if any answer does not match.`,
		Example: `  # Verify against ./answers.yaml
  aoc verify

  # Verify against another file
  aoc verify --answers-file testdata/answers.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVerify(cmd)
		},
	}

	return cmd
}

func runVerify(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	set, err := answers.Load(cmdCtx.Cfg.AnswersFile)
	if err != nil {
		return err
	}

	out := output.VerifyOutput{RunID: uuid.NewString(), Checks: []output.VerifyCheck{}}
	for _, d := range set.Days() {
		expected, _ := set.For(d)
		res, runErr := cmdCtx.Runner.RunDay(cmd.Context(), d)
		for _, part := range harness.Parts() {
			want, ok := expected.Answer(part)
			if !ok {
				continue
			}
			check := output.VerifyCheck{Day: int(d), Part: int(part), Expected: want}
			if res != nil {
				check.Actual = res.Answer(part)
			}
			switch {
			case check.Actual == "" && runErr != nil:
				check.Status = statusError
				check.Error = runErr.Error()
				out.Summary.Failed++
			case check.Actual == want:
				check.Status = statusPass
				out.Summary.Passed++
			default:
				check.Status = statusFail
				out.Summary.Failed++
			}
			out.Checks = append(out.Checks, check)
		}
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		if err := r.JSON(out); err != nil {
			return err
		}
	default:
		renderVerify(r, &out)
	}

	if len(out.Checks) == 0 {
		r.Warning("no answers to verify in " + cmdCtx.Cfg.AnswersFile)
	}
	if out.Summary.Failed > 0 {
		return fmt.Errorf("%d of %d answers did not match", out.Summary.Failed, len(out.Checks))
	}
	return nil
}

func renderVerify(r *output.Renderer, out *output.VerifyOutput) {
	styles := r.Styles()
	text := r.EffectiveMode() == output.ModeText

	r.Header(1, "Verification")
	if !text {
		r.Println("")
	}

	rows := make([][]string, 0, len(out.Checks))
	for _, c := range out.Checks {
		status := c.Status
		if text {
			switch c.Status {
			case statusPass:
				status = styles.StatusSuccess.String()
			default:
				status = styles.StatusFailed.String() + " " + c.Status
			}
		}
		actual := c.Actual
		if c.Error != "" {
			actual = c.Error
		}
		rows = append(rows, []string{strconv.Itoa(c.Day), strconv.Itoa(c.Part), c.Expected, actual, status})
	}
	r.Table([]string{"Day", "Part", "Expected", "Actual", "Status"}, rows)

	summary := fmt.Sprintf("%d passed, %d failed", out.Summary.Passed, out.Summary.Failed)
	if !text {
		r.Println("")
		r.Println(summary)
		return
	}
	if out.Summary.Failed > 0 {
		r.Println(styles.Error.Render(summary))
		return
	}
	r.Success(summary)
}
