package async

import (
	"context"
	"mime"
	"os"
	"path/filepath"
	"sync"
	"time"

	"log/slog"

	"github.com/invoicepilot/invoicepilot/constants"
	"github.com/invoicepilot/invoicepilot/internal/llm"
	"github.com/invoicepilot/invoicepilot/internal/pipeline"
)

// Job is one invoice file queued for background processing.
type Job struct {
	Path        string
	Note        string
	SubmittedAt time.Time
}

// ProcessorQueue feeds queued invoice files through the pipeline with a
// bounded worker pool.
type ProcessorQueue struct {
	proc    *pipeline.Processor
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*ProcessorQueue)

func WithWorkers(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(q *ProcessorQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewProcessorQueue(proc *pipeline.Processor, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &ProcessorQueue{
		proc:    proc,
		logger:  logger,
		workers: 4,
		timeout: 3 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ProcessorQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					res := q.process(ctx, job)
					cancel()

					q.logger.Info("batch upload finished",
						"worker_id", workerID,
						"path", job.Path,
						"state", res.State,
						"message", res.Message,
					)
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *ProcessorQueue) process(ctx context.Context, job Job) pipeline.Result {
	b, err := os.ReadFile(job.Path)
	if err != nil {
		q.logger.Error("read file failed", "path", job.Path, "error", err)
		return pipeline.Result{
			State:   pipeline.StateExtractionFailed,
			Message: "The file could not be read.",
		}
	}
	contentType := mime.TypeByExtension(filepath.Ext(job.Path))
	if _, ok := constants.AllowedContentTypes[contentType]; !ok {
		q.logger.Warn("unsupported file skipped", "path", job.Path, "content_type", contentType)
		return pipeline.Result{
			State:   pipeline.StateRejected,
			Message: "Unsupported file type.",
		}
	}
	return q.proc.ProcessUpload(ctx, llm.ExtractRequest{
		Document: llm.Document{
			Filename:    filepath.Base(job.Path),
			ContentType: contentType,
			Bytes:       b,
		},
		UserNote: job.Note,
	})
}

func (q *ProcessorQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "path", job.Path)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued file for processing", "path", job.Path)
	default:
		q.logger.Warn("queue full, applying backpressure", "path", job.Path)
		q.ch <- job
	}
	return nil
}

func (q *ProcessorQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
