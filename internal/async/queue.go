package async

import (
	"context"
	"time"
)

// Job is one document queued for a scorecard build.
type Job struct {
	Path        string
	OutputDir   string
	SubmittedAt time.Time
	RequestID   string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
