package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pathreplay/scene"
	"github.com/katalvlaran/pathreplay/session"
)

// DefaultDebounce is the quiet period after a file change before re-running.
const DefaultDebounce = 150 * time.Millisecond

func newWatchCmd(g *globalFlags) *cobra.Command {
	var (
		strategy string
		delay    time.Duration
	)
	cmd := &cobra.Command{
		Use:   "watch [scene.yaml]",
		Short: "Re-run a scene and print its report every time the file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, g, args[0], strategy, delay)
		},
	}
	cmd.Flags().StringVar(&strategy, "strategy", "", "override strategy from the config: heap or linear")
	cmd.Flags().DurationVar(&delay, "debounce", DefaultDebounce, "quiet period before re-running after a change")

	return cmd
}

func runWatch(cmd *cobra.Command, g *globalFlags, scenePath, strategy string, delay time.Duration) error {
	cfg := g.cfg
	if strategy != "" {
		cfg.Strategy = strategy
	}
	w, err := session.New(cfg, session.WithLogger(g.log))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	st := newStyles(g.plain)

	rerun := func() error {
		s, err := scene.Load(scenePath)
		if err != nil {
			return err
		}
		w.ClearAll()
		// ClearAll keeps directedness; a scene without the key must get the
		// configured default, as it does under run.
		w.SetDirected(cfg.Directed)
		ids, err := s.Apply(w)
		if err != nil {
			return err
		}
		res, err := w.Run()
		if err != nil {
			return err
		}
		w.Stop()
		if err := w.Seek(res.Len() - 1); err != nil {
			return err
		}
		rep, _ := w.Report()
		fmt.Fprintln(out, renderReport(rep, invert(ids), st))

		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	// Editors often replace the file rather than write it, so watch the directory.
	if err := watcher.Add(filepath.Dir(scenePath)); err != nil {
		return err
	}
	target := filepath.Clean(scenePath)

	if err := rerun(); err != nil {
		return err
	}

	changed := make(chan struct{}, 1)
	debounced := debounce.New(delay)
	eg, ctx := errgroup.WithContext(cmd.Context())

	eg.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				debounced(func() {
					select {
					case changed <- struct{}{}:
					default:
					}
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				g.log.Warn().Err(err).Msg("watch error")
			}
		}
	})

	eg.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-changed:
				g.log.Info().Str("scene", scenePath).Msg("scene changed, re-running")
				if err := rerun(); err != nil {
					g.log.Error().Err(err).Str("scene", scenePath).Msg("re-run failed")
				}
			}
		}
	})

	g.log.Info().Str("scene", scenePath).Dur("debounce", delay).Msg("watching for changes")

	return eg.Wait()
}
