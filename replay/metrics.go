package replay

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// appliedTicks counts ticks that advanced a cursor.
	appliedTicks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pathreplay_replay_ticks_total",
		Help: "Total replay ticks that advanced the cursor",
	})

	// staleTicks counts ticks dropped because their timer was cancelled or superseded.
	staleTicks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pathreplay_replay_stale_ticks_total",
		Help: "Total replay ticks dropped after cancellation or rebinding",
	})
)
