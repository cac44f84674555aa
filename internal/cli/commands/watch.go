package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/okkero/Advent-of-Code-2023/internal/harness"
)

// watchDebounce collapses the burst of events an editor save produces.
const watchDebounce = 100 * time.Millisecond

// watchDays solves days once, then again each time one of their input files
// is written, until interrupted.
func watchDays(ctx context.Context, cmdCtx *CommandContext, days []harness.Day) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	r := cmdCtx.Renderer
	dir := cmdCtx.Cfg.InputDir
	if err := cmdCtx.Cfg.ValidateInputDir(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Editors often replace files on save, so watch the directory.
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	watched := watchedInputs(cmdCtx.Opener, days)
	rerun := func(days []harness.Day) {
		if err := runDays(ctx, cmdCtx, days); err != nil {
			r.Error(err.Error())
		}
	}

	rerun(days)
	r.Muted(fmt.Sprintf("Watching %s for changes (Ctrl+C to stop)", dir))

	pending := make(map[harness.Day]struct{})
	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			d, ok := changedDay(event, watched)
			if !ok {
				continue
			}
			cmdCtx.Logger.Debug("input changed", "day", int(d), "file", event.Name)
			pending[d] = struct{}{}
			debounce = time.After(watchDebounce)

		case <-debounce:
			debounce = nil
			changed := make([]harness.Day, 0, len(pending))
			for d := range pending {
				changed = append(changed, d)
			}
			clear(pending)
			slices.Sort(changed)
			rerun(changed)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cmdCtx.Logger.Warn("watcher error", "error", err)
		}
	}
}

// watchedInputs maps input file names to the days that read them.
func watchedInputs(opener harness.DirOpener, days []harness.Day) map[string]harness.Day {
	watched := make(map[string]harness.Day, len(days))
	for _, d := range days {
		watched[filepath.Base(opener.Path(d))] = d
	}
	return watched
}

// changedDay returns the day whose input an event wrote, if any.
func changedDay(event fsnotify.Event, watched map[string]harness.Day) (harness.Day, bool) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return 0, false
	}
	d, ok := watched[filepath.Base(event.Name)]
	return d, ok
}
