package selector

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/rhartert/srte-paths/srte"
)

// TrialsConfig holds the parameters of Trials.
type TrialsConfig struct {
	// Trials is the number of independent selection runs.
	Trials int

	// Workers is the size of the goroutine pool running the trials. It
	// defaults to the number of CPUs if not positive.
	Workers int

	// Seed of the first trial. Trial i is seeded with Seed+i so that the
	// outcome of a set of trials is reproducible.
	Seed int64

	// SampleSize is passed to the selector of each trial (see [Config]).
	SampleSize int

	// Logger is shared by all trials, each logging with its trial index and
	// seed. Logs are discarded if nil.
	Logger *slog.Logger
}

// Outcome is the result of a single trial.
type Outcome struct {
	Trial     int
	Seed      int64
	Selection *Selection
	Usage     *srte.EdgeUsage
	MaxLoad   int64
}

// better returns true if o should be preferred over other: fewer pairs
// without backup first, then lower maximum edge load, then earlier trial.
func (o *Outcome) better(other *Outcome) bool {
	if a, b := len(o.Selection.Missing()), len(other.Selection.Missing()); a != b {
		return a < b
	}
	if o.MaxLoad != other.MaxLoad {
		return o.MaxLoad < other.MaxLoad
	}
	return o.Trial < other.Trial
}

// Trials runs several independent primary and backup selections, each with
// its own random source and its own copy of usage, and returns the best
// outcome. Trials run concurrently on a pool of goroutines; each trial is
// sequential.
func Trials(ctx context.Context, cfg TrialsConfig, candidates *srte.CandidateSet, g *srte.Graph, usage *srte.EdgeUsage, demand srte.Demands) (*Outcome, error) {
	if cfg.Trials < 1 {
		return nil, invalidf("number of trials must be at least 1, got %d", cfg.Trials)
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("selector: cannot create worker pool: %w", err)
	}
	defer pool.Release()

	outcomes := make([]*Outcome, cfg.Trials)
	errs := make([]error, cfg.Trials)
	var wg sync.WaitGroup

	for i := 0; i < cfg.Trials; i++ {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}

		trial := i
		var start *srte.EdgeUsage
		if usage != nil {
			start = usage.Clone()
		}

		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			outcomes[trial], errs[trial] = runTrial(cfg, trial, candidates, g, start, demand)
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, fmt.Errorf("selector: cannot submit trial %d: %w", trial, err)
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var best *Outcome
	for i, o := range outcomes {
		if errs[i] != nil {
			return nil, errs[i]
		}
		if best == nil || o.better(best) {
			best = o
		}
	}
	return best, nil
}

func runTrial(cfg TrialsConfig, trial int, candidates *srte.CandidateSet, g *srte.Graph, usage *srte.EdgeUsage, demand srte.Demands) (*Outcome, error) {
	seed := cfg.Seed + int64(trial)
	log := cfg.Logger
	if log != nil {
		log = log.With("trial", trial, "seed", seed)
	}

	s := New(Config{
		SampleSize: cfg.SampleSize,
		Rand:       rand.New(rand.NewSource(seed)),
		Logger:     log,
	})
	sel, usage, err := s.Run(candidates, g, usage, demand)
	if err != nil {
		return nil, err
	}

	return &Outcome{
		Trial:     trial,
		Seed:      seed,
		Selection: sel,
		Usage:     usage,
		MaxLoad:   usage.MaxLoad(),
	}, nil
}
