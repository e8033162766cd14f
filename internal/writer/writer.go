// Package writer funnels every persistence call through one worker so that
// exactly one write is in flight at a time. Write ordering follows submit
// order; each write carries its own timeout and is reported as failed on
// expiry instead of hanging the run.
package writer

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"go-jobharvest-automation/internal/database"
	"go-jobharvest-automation/internal/models"
)

// Store is the transactional persistence collaborator.
type Store interface {
	Upsert(ctx context.Context, draft *models.JobDraft) (database.UpsertResult, error)
}

type request struct {
	draft *models.JobDraft
	reply chan response
}

type response struct {
	result database.UpsertResult
	err    error
}

type Writer struct {
	store    Store
	requests chan request
	timeout  time.Duration
	log      zerolog.Logger

	closeOnce sync.Once
	done      chan struct{}
}

// New starts the single worker. queueSize bounds how many drafts may wait;
// the pipeline submits one at a time, so a small bound is plenty.
func New(store Store, queueSize int, timeout time.Duration, log zerolog.Logger) *Writer {
	w := &Writer{
		store:    store,
		requests: make(chan request, queueSize),
		timeout:  timeout,
		log:      log,
		done:     make(chan struct{}),
	}
	go w.run()
	return w
}

func (w *Writer) run() {
	defer close(w.done)
	for req := range w.requests {
		ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
		result, err := w.store.Upsert(ctx, req.draft)
		cancel()

		if ctx.Err() == context.DeadlineExceeded {
			result = database.UpsertResult{Outcome: database.OutcomeFailed, Reason: "write timeout"}
			w.log.Warn().Str("title", req.draft.Title).Msg("⏱️ Persistence write timed out")
		}
		req.reply <- response{result: result, err: err}
	}
}

// Upsert submits a draft and blocks until the worker has processed it (or
// ctx is cancelled while waiting).
func (w *Writer) Upsert(ctx context.Context, draft *models.JobDraft) (database.UpsertResult, error) {
	req := request{draft: draft, reply: make(chan response, 1)}

	select {
	case w.requests <- req:
	case <-ctx.Done():
		return database.UpsertResult{Outcome: database.OutcomeFailed, Reason: ctx.Err().Error()}, ctx.Err()
	}

	select {
	case resp := <-req.reply:
		return resp.result, resp.err
	case <-ctx.Done():
		return database.UpsertResult{Outcome: database.OutcomeFailed, Reason: ctx.Err().Error()}, ctx.Err()
	}
}

// Close stops accepting writes and waits for the worker to drain.
func (w *Writer) Close() {
	w.closeOnce.Do(func() {
		close(w.requests)
		<-w.done
	})
}
