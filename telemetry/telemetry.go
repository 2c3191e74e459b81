// SPDX-License-Identifier: MIT

// Package telemetry exports puzzle activity as Prometheus metrics.
//
// A Collector plugs into a puzzle.State through its hooks (Options) and
// counts twists by kind, scrambles, resets and solves. Gauges describing the
// current position are refreshed explicitly with Observe, since hooks do not
// see the state they fire on. All metrics are global to the collector; no
// per-piece or per-grip labels are created.
package telemetry

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/hypercell/puzzle"
	"github.com/katalvlaran/hypercell/twist"
)

// Collector holds the puzzle metrics. It is safe for concurrent use.
type Collector struct {
	twists    *prometheus.CounterVec
	scrambles prometheus.Counter
	resets    prometheus.Counter
	solves    prometheus.Counter
	solved    prometheus.Gauge
	unsolved  prometheus.Gauge
	history   prometheus.Gauge
}

// NewCollector creates the metrics and registers them with reg.
// Registering twice on the same registry fails.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		twists: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hypercell_twists_total",
			Help: "Twists applied to the pieces, by kind (move, undo, scramble, raw)",
		}, []string{"kind"}),
		scrambles: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hypercell_scrambles_total",
			Help: "Completed scramble operations",
		}),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hypercell_resets_total",
			Help: "Reset (force-solve) operations",
		}),
		solves: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hypercell_solves_total",
			Help: "Scrambled puzzles solved by moves",
		}),
		solved: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hypercell_solved",
			Help: "1 if the observed puzzle is solved, else 0",
		}),
		unsolved: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hypercell_unsolved_pieces",
			Help: "Pieces of the observed puzzle not in solved orientation",
		}),
		history: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hypercell_history_length",
			Help: "Recorded moves available for undo",
		}),
	}
	for _, m := range []prometheus.Collector{c.twists, c.scrambles, c.resets, c.solves, c.solved, c.unsolved, c.history} {
		if err := reg.Register(m); err != nil {
			return nil, fmt.Errorf("telemetry: register: %w", err)
		}
	}

	return c, nil
}

// Options returns the puzzle hooks feeding the counters.
func (c *Collector) Options() []puzzle.Option {
	return []puzzle.Option{
		puzzle.WithOnTwist(func(_ twist.Twist, kind puzzle.MoveKind) {
			c.twists.WithLabelValues(kind.String()).Inc()
		}),
		puzzle.WithOnScramble(func(int) { c.scrambles.Inc() }),
		puzzle.WithOnReset(func() { c.resets.Inc() }),
		puzzle.WithOnSolve(func() { c.solves.Inc() }),
	}
}

// Observe refreshes the position gauges from s.
func (c *Collector) Observe(s *puzzle.State) {
	if s.Solved() {
		c.solved.Set(1)
	} else {
		c.solved.Set(0)
	}
	c.unsolved.Set(float64(s.Unsolved()))
	c.history.Set(float64(s.HistoryLen()))
}

// Handler serves the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
