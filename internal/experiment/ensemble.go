package experiment

import (
	"context"
	"runtime"
	"sync"

	"github.com/san-kum/gfxlab/internal/config"
)

// Ensemble repeats one experiment over consecutive seeds.
type Ensemble struct {
	base      Config
	app       *config.Config
	numRuns   int
	seedStart int64
	// Workers bounds the runs in flight. Zero uses GOMAXPROCS.
	Workers int
}

func NewEnsemble(base Config, app *config.Config, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{base: base, app: app, numRuns: numRuns, seedStart: seedStart}
}

// Run returns results in seed order. The first error wins.
func (e *Ensemble) Run(ctx context.Context) ([]*Result, error) {
	if e.numRuns <= 0 {
		return nil, nil
	}
	workers := e.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				cfg := e.base
				cfg.Seed = e.seedStart + int64(idx)
				results[idx], errs[idx] = New(cfg, e.app).Run(ctx)
			}
		}()
	}

	for i := 0; i < e.numRuns; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
