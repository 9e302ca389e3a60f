package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathreplay/dijkstra"
	"github.com/katalvlaran/pathreplay/replay"
	"github.com/katalvlaran/pathreplay/scene"
	"github.com/katalvlaran/pathreplay/session"
)

type runFlags struct {
	scenePath string

	shape      string
	n          int
	rows       int
	cols       int
	p          float64
	seed       int64
	minWeight  int
	maxWeight  int
	spanWeight float64

	directed bool
	start    string
	end      string
	strategy string
	interval time.Duration
	instant  bool
	metrics  bool
}

func newRunCmd(g *globalFlags) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run shortest paths on a scene or a generated graph and replay the search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd, g, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.scenePath, "scene", "s", "", "YAML scene file")
	fl.StringVar(&f.shape, "shape", "", "generate a graph: path, cycle, star, grid, complete or random")
	fl.IntVarP(&f.n, "n", "n", 6, "node count for generated shapes (except grid)")
	fl.IntVar(&f.rows, "rows", 3, "grid rows")
	fl.IntVar(&f.cols, "cols", 3, "grid columns")
	fl.Float64Var(&f.p, "p", 0.3, "edge probability for the random shape")
	fl.Int64Var(&f.seed, "seed", scene.DefaultShapeSeed, "seed for random shapes and weights")
	fl.IntVar(&f.minWeight, "min-weight", 1, "smallest generated edge weight")
	fl.IntVar(&f.maxWeight, "max-weight", 1, "largest generated edge weight")
	fl.Float64Var(&f.spanWeight, "span-weight", 0, "weigh generated edges by drawn length, per spacing unit")
	fl.BoolVar(&f.directed, "directed", true, "treat edges as one-way (overrides the scene and config)")
	fl.StringVar(&f.start, "start", "", "start node name (overrides the scene)")
	fl.StringVar(&f.end, "end", "", "end node name (overrides the scene)")
	fl.StringVar(&f.strategy, "strategy", "", "override strategy from the config: heap or linear")
	fl.DurationVar(&f.interval, "interval", 0, "override tick_interval from the config")
	fl.BoolVar(&f.instant, "instant", false, "skip the replay and print the final report")
	fl.BoolVar(&f.metrics, "metrics", false, "print collected metrics after the report")
	cmd.MarkFlagsMutuallyExclusive("scene", "shape")
	cmd.MarkFlagsMutuallyExclusive("span-weight", "min-weight")
	cmd.MarkFlagsMutuallyExclusive("span-weight", "max-weight")

	return cmd
}

// loadScene reads --scene or builds a shape scene from the flags, then
// applies selection and directedness overrides.
func (f *runFlags) loadScene(cmd *cobra.Command) (*scene.Scene, error) {
	var s *scene.Scene
	switch {
	case f.scenePath != "":
		loaded, err := scene.Load(f.scenePath)
		if err != nil {
			return nil, err
		}
		s = loaded
	case f.shape != "":
		seed := f.seed
		sh := &scene.Shape{
			Kind: f.shape,
			N:    f.n,
			Rows: f.rows,
			Cols: f.cols,
			P:    f.p,
			Seed: &seed,
		}
		if f.spanWeight > 0 {
			sh.SpanWeight = f.spanWeight
		} else {
			sh.Weights = &scene.WeightRange{Min: f.minWeight, Max: f.maxWeight}
		}
		s = &scene.Scene{Shape: sh}
		if count := sh.Count(); count > 0 {
			s.Start = "n0"
			s.End = fmt.Sprintf("n%d", count-1)
		}
	default:
		return nil, errors.New("either --scene or --shape is required")
	}

	if cmd.Flags().Changed("directed") {
		d := f.directed
		s.Directed = &d
	}
	if f.start != "" {
		s.Start = f.start
	}
	if f.end != "" {
		s.End = f.end
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

func runReplay(cmd *cobra.Command, g *globalFlags, f *runFlags) error {
	cfg := g.cfg
	if f.strategy != "" {
		cfg.Strategy = f.strategy
	}
	if f.interval != 0 {
		cfg.TickInterval = f.interval
	}

	s, err := f.loadScene(cmd)
	if err != nil {
		return err
	}
	w, err := session.New(cfg, session.WithLogger(g.log))
	if err != nil {
		return err
	}
	ids, err := s.Apply(w)
	if err != nil {
		return err
	}
	names := invert(ids)

	out := cmd.OutOrStdout()
	st := newStyles(g.plain)

	var (
		frames = make(chan replay.Frame, 16)
		done   = make(chan struct{})
		cancel = func() {}
	)
	defer close(done)
	if !f.instant {
		cancel = w.Player().Subscribe(func(fr replay.Frame) {
			select {
			case frames <- fr:
			case <-done:
			}
		})
	}
	defer cancel()

	res, err := w.Run()
	if errors.Is(err, session.ErrNoStart) {
		return fmt.Errorf("%w: set start in the scene or pass --start", err)
	}
	if err != nil {
		return err
	}

	if f.instant {
		w.Stop()
		if err := w.Seek(res.Len() - 1); err != nil {
			return err
		}
	} else if err := follow(cmd, w, res, frames, cancel, names, st); err != nil {
		return err
	}

	rep, _ := w.Report()
	fmt.Fprintln(out, renderReport(rep, names, st))

	if f.metrics {
		text, err := renderMetrics(prometheus.DefaultGatherer, st)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, text)
	}

	return nil
}

// follow prints each newly revealed node until the replay finishes or the
// command's context is cancelled.
func follow(
	cmd *cobra.Command,
	w *session.Workspace,
	res *dijkstra.Result,
	frames <-chan replay.Frame,
	unsubscribe func(),
	names map[string]string,
	st styles,
) error {
	out := cmd.OutOrStdout()
	printed := 0
	for {
		select {
		case <-cmd.Context().Done():
			// Nobody reads frames any more; detach before Stop notifies.
			unsubscribe()
			w.Stop()
			return cmd.Context().Err()
		case fr := <-frames:
			for ; printed < fr.Revealed(); printed++ {
				id, _ := res.At(printed)
				d, _ := res.Distance(id)
				fmt.Fprintln(out, renderStep(printed, res.Len(), label(names, id), d, st))
			}
			if fr.State == replay.Finished {
				return nil
			}
		}
	}
}

func invert(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for name, id := range m {
		out[id] = name
	}

	return out
}

// label returns the scene name for id, or id itself.
func label(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}

	return id
}
