// Package worker runs document analyses concurrently for batch mode.
package worker

import (
	"context"
	"sync"

	"github.com/clauscan/clauscan/internal/model"
)

// AnalyzeFunc analyzes one source (a file path or URL) into an Analysis.
type AnalyzeFunc func(ctx context.Context, source string) (*model.Analysis, error)

// Outcome is the result of analyzing one source
type Outcome struct {
	Source   string
	Analysis *model.Analysis
	Err      error
}

// Pool fans batch sources out to a fixed number of workers
type Pool struct {
	workers int
	analyze AnalyzeFunc
}

// NewPool creates a pool with the specified number of workers
func NewPool(workers int, analyze AnalyzeFunc) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{workers: workers, analyze: analyze}
}

// Run analyzes all sources and returns outcomes in input order. A
// failed source produces an Outcome with Err set; it never aborts the
// batch. Context cancellation stops dispatching further sources.
func (p *Pool) Run(ctx context.Context, sources []string) []Outcome {
	outcomes := make([]Outcome, len(sources))
	indices := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				analysis, err := p.analyze(ctx, sources[i])
				outcomes[i] = Outcome{Source: sources[i], Analysis: analysis, Err: err}
			}
		}()
	}

	abort := func(from int) []Outcome {
		for j := from; j < len(sources); j++ {
			outcomes[j] = Outcome{Source: sources[j], Err: ctx.Err()}
		}
		close(indices)
		wg.Wait()
		return outcomes
	}

	for i := range sources {
		if ctx.Err() != nil {
			return abort(i)
		}
		select {
		case <-ctx.Done():
			return abort(i)
		case indices <- i:
		}
	}

	close(indices)
	wg.Wait()
	return outcomes
}
