package async

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/joseph-ayodele/om-scorecard/internal/common"
	"github.com/joseph-ayodele/om-scorecard/internal/extract"
	"github.com/joseph-ayodele/om-scorecard/internal/pipeline"
)

type recordingBuilder struct {
	mu    sync.Mutex
	paths []string
	ids   []string
}

func (b *recordingBuilder) Build(ctx context.Context, req pipeline.Request) (pipeline.Result, error) {
	src := req.Source.(extract.FileSource)
	b.mu.Lock()
	b.paths = append(b.paths, src.Path)
	b.ids = append(b.ids, common.RequestIDFromContext(ctx))
	b.mu.Unlock()
	if src.Path == "bad.pdf" {
		return pipeline.Result{}, errors.New("boom")
	}
	return pipeline.Result{OutputPath: src.Path + ".xlsx"}, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuildQueue(t *testing.T) {
	b := &recordingBuilder{}
	var (
		mu       sync.Mutex
		outcomes []Outcome
	)
	q := NewBuildQueue(b, quietLogger(), WithWorkers(3), WithQueueSize(1), WithResultHandler(func(o Outcome) {
		mu.Lock()
		outcomes = append(outcomes, o)
		mu.Unlock()
	}))

	ctx := context.Background()
	for _, p := range []string{"a.pdf", "bad.pdf", "c.txt"} {
		if err := q.Enqueue(ctx, Job{Path: p}); err != nil {
			t.Fatal(err)
		}
	}
	sctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	q.Shutdown(sctx)

	sort.Strings(b.paths)
	if len(b.paths) != 3 || b.paths[0] != "a.pdf" || b.paths[1] != "bad.pdf" || b.paths[2] != "c.txt" {
		t.Fatalf("built %v", b.paths)
	}
	for _, id := range b.ids {
		if id == "" {
			t.Error("job ran without a request id")
		}
	}
	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			if o.Job.Path != "bad.pdf" {
				t.Errorf("unexpected failure for %s", o.Job.Path)
			}
		}
	}
	if len(outcomes) != 3 || failed != 1 {
		t.Errorf("outcomes = %d, failed = %d", len(outcomes), failed)
	}

	if err := q.Enqueue(ctx, Job{Path: "late.pdf"}); !errors.Is(err, ErrQueueClosed) {
		t.Errorf("enqueue after shutdown: %v", err)
	}
}
