package history

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/doeshing/movierec-go/internal/domain"
	"github.com/doeshing/movierec-go/internal/ports"
)

const defaultWriteTimeout = 5 * time.Second

// RecorderOptions tunes the AsyncRecorder.
type RecorderOptions struct {
	QueueSize    int
	WriteTimeout time.Duration
	Metrics      ports.Metrics
}

type pendingEntry struct {
	input  string
	output string
}

// AsyncRecorder hands log writes to a single background worker so the
// response path never waits on storage. Record never blocks: a full queue
// drops the entry. Every failure is logged and published on Errors().
type AsyncRecorder struct {
	store        ports.RequestLog
	logger       ports.Logger
	metrics      ports.Metrics
	writeTimeout time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan pendingEntry
	errs   chan error
	done   chan struct{}
}

// NewAsyncRecorder starts the worker.
func NewAsyncRecorder(store ports.RequestLog, logger ports.Logger, opts RecorderOptions) *AsyncRecorder {
	size := opts.QueueSize
	if size <= 0 {
		size = domain.DefaultRecorderQueueSize
	}
	timeout := opts.WriteTimeout
	if timeout <= 0 {
		timeout = defaultWriteTimeout
	}
	r := &AsyncRecorder{
		store:        store,
		logger:       logger,
		metrics:      opts.Metrics,
		writeTimeout: timeout,
		queue:        make(chan pendingEntry, size),
		errs:         make(chan error, size),
		done:         make(chan struct{}),
	}
	go r.run()
	return r
}

// Record queues a write and returns immediately.
func (r *AsyncRecorder) Record(input, output string) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		r.report("closed", &domain.PersistenceError{Op: "enqueue", Err: domain.ErrRecorderClosed}, input)
		return
	}
	select {
	case r.queue <- pendingEntry{input: input, output: output}:
	default:
		r.report("queue_full", &domain.PersistenceError{Op: "enqueue", Err: domain.ErrRecorderFull}, input)
	}
}

// Errors publishes persistence failures. Sends are non-blocking, so a
// reader that falls behind misses errors; they are still logged.
func (r *AsyncRecorder) Errors() <-chan error {
	return r.errs
}

// Close stops intake and waits for queued writes to finish or ctx to end.
func (r *AsyncRecorder) Close(ctx context.Context) error {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.queue)
	}
	r.mu.Unlock()

	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *AsyncRecorder) run() {
	defer close(r.done)
	for entry := range r.queue {
		r.write(entry)
	}
}

func (r *AsyncRecorder) write(entry pendingEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), r.writeTimeout)
	defer cancel()

	saved, err := r.store.Insert(ctx, entry.input, entry.output)
	if err != nil {
		var perr *domain.PersistenceError
		if !errors.As(err, &perr) {
			err = &domain.PersistenceError{Op: "insert", Err: err}
		}
		r.report("insert", err, entry.input)
		return
	}
	if r.logger != nil {
		r.logger.Debug("request logged", map[string]interface{}{"id": saved.ID})
	}
}

func (r *AsyncRecorder) report(reason string, err error, input string) {
	if r.logger != nil {
		r.logger.Error("request log write failed", err, map[string]interface{}{
			"reason": reason,
			"input":  input,
		})
	}
	if r.metrics != nil {
		r.metrics.ObservePersistenceFailure(reason)
	}
	select {
	case r.errs <- err:
	default:
	}
}

var _ ports.Recorder = (*AsyncRecorder)(nil)
