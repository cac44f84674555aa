package harness

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Result holds the answers of one run.
type Result struct {
	Day           Day
	Part1         string
	Part2         string
	Part1Duration time.Duration
	Part2Duration time.Duration
}

// Answer returns the answer for part p.
func (r *Result) Answer(p Part) string {
	if p == Part2 {
		return r.Part2
	}
	return r.Part1
}

// Duration returns the solve time for part p.
func (r *Result) Duration(p Part) time.Duration {
	if p == Part2 {
		return r.Part2Duration
	}
	return r.Part1Duration
}

func (r *Result) set(p Part, answer string, elapsed time.Duration) {
	if p == Part2 {
		r.Part2, r.Part2Duration = answer, elapsed
		return
	}
	r.Part1, r.Part1Duration = answer, elapsed
}

// Runner drives puzzles against inputs from an Opener.
type Runner struct {
	opener Opener
	logger *slog.Logger
}

// NewRunner creates a runner. A nil logger discards log output.
func NewRunner(opener Opener, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{opener: opener, logger: logger}
}

// Run looks up day n and solves both of its parts. An unknown day fails
// before any input is opened.
func (r *Runner) Run(ctx context.Context, n int) (*Result, error) {
	day, err := Lookup(n)
	if err != nil {
		return nil, err
	}
	return r.RunDay(ctx, day)
}

// RunDay solves part 1 and then part 2, opening the input separately for
// each. On failure the returned Result holds the parts that completed.
func (r *Runner) RunDay(ctx context.Context, day Day) (*Result, error) {
	if !day.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrDayNotFound, int(day))
	}

	res := &Result{Day: day}
	for _, part := range Parts() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		answer, elapsed, err := r.solve(day, part)
		if err != nil {
			return res, err
		}
		res.set(part, answer, elapsed)
	}
	return res, nil
}

func (r *Runner) solve(day Day, part Part) (string, time.Duration, error) {
	in, err := r.opener.Open(day)
	if err != nil {
		return "", 0, fmt.Errorf("%s %s: %w", day, part, err)
	}
	defer func() { _ = in.Close() }()

	start := time.Now()
	answer, err := day.Solve(part, in)
	elapsed := time.Since(start)
	if err != nil {
		return "", 0, fmt.Errorf("%s %s: %w", day, part, err)
	}

	r.logger.Debug("solved",
		slog.Int("day", int(day)),
		slog.String("part", part.String()),
		slog.Duration("elapsed", elapsed))
	return answer, elapsed, nil
}
