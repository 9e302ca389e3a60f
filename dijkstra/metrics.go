package dijkstra

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// computeTotal counts Compute calls by strategy and outcome.
	computeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pathreplay_compute_total",
		Help: "Total shortest-path computations by strategy and outcome",
	}, []string{"strategy", "outcome"})

	// computeDuration tracks Compute latency.
	computeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pathreplay_compute_duration_seconds",
		Help:    "Shortest-path computation duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 2, 14), // 10µs to ~80ms
	}, []string{"strategy"})

	// finalizedNodes tracks how many nodes each run finalized.
	finalizedNodes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pathreplay_compute_finalized_nodes",
		Help:    "Number of nodes finalized per computation",
		Buckets: []float64{1, 2, 5, 10, 20, 50, 100, 500},
	})
)

// Outcome labels for computeTotal.
const (
	outcomePath        = "path"
	outcomeNoPath      = "no_path"
	outcomeNoTarget    = "no_target"
	outcomeBadInput    = "bad_input"
	outcomeContractErr = "contract_violation"
)

func observeRun(s Strategy, res *Result, err error, took time.Duration) {
	computeDuration.WithLabelValues(s.String()).Observe(took.Seconds())
	computeTotal.WithLabelValues(s.String(), outcome(res, err)).Inc()
	if res != nil {
		finalizedNodes.Observe(float64(res.Len()))
	}
}

func outcome(res *Result, err error) string {
	switch {
	case errors.Is(err, ErrSourceNotFound), errors.Is(err, ErrTargetNotFound):
		return outcomeContractErr
	case err != nil:
		return outcomeBadInput
	case res.Target() == "":
		return outcomeNoTarget
	case res.Found():
		return outcomePath
	default:
		return outcomeNoPath
	}
}
