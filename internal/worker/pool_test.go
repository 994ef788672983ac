package worker

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/clauscan/clauscan/internal/model"
)

func TestNewPool_MinimumOneWorker(t *testing.T) {
	p := NewPool(0, nil)
	if p.workers != 1 {
		t.Errorf("expected 1 worker for 0 input, got %d", p.workers)
	}
	p = NewPool(-3, nil)
	if p.workers != 1 {
		t.Errorf("expected 1 worker for negative input, got %d", p.workers)
	}
}

func TestRun_OutcomesInInputOrder(t *testing.T) {
	var calls int32
	p := NewPool(4, func(ctx context.Context, source string) (*model.Analysis, error) {
		atomic.AddInt32(&calls, 1)
		return &model.Analysis{Profile: model.Profile{Title: source}}, nil
	})

	sources := []string{"a.txt", "b.txt", "c.txt", "d.txt", "e.txt"}
	outcomes := p.Run(context.Background(), sources)

	if len(outcomes) != len(sources) {
		t.Fatalf("got %d outcomes, want %d", len(outcomes), len(sources))
	}
	if got := atomic.LoadInt32(&calls); got != int32(len(sources)) {
		t.Errorf("analyze called %d times, want %d", got, len(sources))
	}
	for i, o := range outcomes {
		if o.Source != sources[i] {
			t.Errorf("outcome %d: got source %q, want %q", i, o.Source, sources[i])
		}
		if o.Err != nil || o.Analysis == nil || o.Analysis.Profile.Title != sources[i] {
			t.Errorf("outcome %d not mapped to its source", i)
		}
	}
}

func TestRun_FailedSourceDoesNotAbortBatch(t *testing.T) {
	p := NewPool(2, func(ctx context.Context, source string) (*model.Analysis, error) {
		if strings.HasPrefix(source, "bad") {
			return nil, errors.New("boom")
		}
		return &model.Analysis{}, nil
	})

	outcomes := p.Run(context.Background(), []string{"good1", "bad", "good2"})

	if outcomes[0].Err != nil || outcomes[2].Err != nil {
		t.Error("expected good sources to succeed")
	}
	if outcomes[1].Err == nil {
		t.Error("expected bad source to carry its error")
	}
}

func TestRun_CancelledContextStopsDispatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPool(1, func(ctx context.Context, source string) (*model.Analysis, error) {
		return &model.Analysis{}, nil
	})

	outcomes := p.Run(ctx, []string{"a", "b", "c"})

	cancelled := 0
	for _, o := range outcomes {
		if errors.Is(o.Err, context.Canceled) {
			cancelled++
		}
	}
	if cancelled == 0 {
		t.Error("expected at least one cancelled outcome")
	}
}
