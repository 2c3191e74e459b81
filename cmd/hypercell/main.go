// SPDX-License-Identifier: MIT

// Command hypercell plays a permutation puzzle from the terminal.
//
//	hypercell -seed 7 -db hypercell.db -metrics :9102
//
// Commands are read line by line from stdin; type "help" for the list.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/hypercell/presets/elevencell"
	"github.com/katalvlaran/hypercell/puzzle"
	"github.com/katalvlaran/hypercell/store"
	"github.com/katalvlaran/hypercell/telemetry"
	"github.com/katalvlaran/hypercell/twist"
)

// preset bundles what the command needs to know about one puzzle.
type preset struct {
	build  func(opts ...puzzle.Option) (*puzzle.State, error)
	frames func() twist.Frames
}

var presets = map[string]preset{
	elevencell.Name: {
		build:  elevencell.New,
		frames: func() twist.Frames { return elevencell.Frames() },
	},
}

// #region main
func main() {
	presetName := flag.String("preset", elevencell.Name, "puzzle preset")
	seed := flag.Int64("seed", time.Now().UnixNano(), "scramble seed")
	dbPath := flag.String("db", "", "SQLite file for saved sessions (empty disables saving)")
	sessionID := flag.String("session", "", "resume a saved session by ID (requires -db)")
	metricsAddr := flag.String("metrics", "", "serve Prometheus metrics on this address")
	flag.Parse()

	p, ok := presets[*presetName]
	if !ok {
		log.Fatalf("unknown preset %q", *presetName)
	}

	sess := &session{
		preset: *presetName,
		frames: p.frames(),
		rnd:    puzzle.NewRand(*seed),
		out:    os.Stdout,
	}

	var opts []puzzle.Option
	if *metricsAddr != "" {
		reg := prometheus.NewRegistry()
		collector, err := telemetry.NewCollector(reg)
		if err != nil {
			log.Fatalf("metrics: %v", err)
		}
		opts = append(opts, collector.Options()...)
		sess.collector = collector
		go func() {
			if err := http.ListenAndServe(*metricsAddr, telemetry.Handler(reg)); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("metrics server: %v", err)
			}
		}()
		log.Printf("metrics on %s", *metricsAddr)
	}

	if *dbPath != "" {
		db, err := store.Open(*dbPath)
		if err != nil {
			log.Fatalf("failed to open store: %v", err)
		}
		defer db.Close()
		sess.db = db
	}

	ctx := context.Background()
	var err error
	if *sessionID != "" {
		err = sess.resume(ctx, *sessionID, opts...)
	} else {
		sess.state, err = p.build(opts...)
	}
	if err != nil {
		log.Fatalf("start %s: %v", *presetName, err)
	}

	sess.printf("%s: %d pieces, degree %d\n", *presetName, sess.state.Len(), sess.state.Degree())
	if err := sess.run(ctx, os.Stdin); err != nil {
		log.Fatal(err)
	}
}

// #endregion main
