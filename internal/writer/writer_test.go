package writer

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-jobharvest-automation/internal/database"
	"go-jobharvest-automation/internal/models"
)

type recordingStore struct {
	mu       sync.Mutex
	titles   []string
	inFlight int
	maxSeen  int
	delay    time.Duration
}

func (s *recordingStore) Upsert(ctx context.Context, draft *models.JobDraft) (database.UpsertResult, error) {
	s.mu.Lock()
	s.inFlight++
	if s.inFlight > s.maxSeen {
		s.maxSeen = s.inFlight
	}
	s.mu.Unlock()

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			s.mu.Lock()
			s.inFlight--
			s.mu.Unlock()
			return database.UpsertResult{Outcome: database.OutcomeFailed}, ctx.Err()
		}
	}

	s.mu.Lock()
	s.titles = append(s.titles, draft.Title)
	s.inFlight--
	s.mu.Unlock()
	return database.UpsertResult{Outcome: database.OutcomeCreated}, nil
}

func TestWriterSingleInFlightAndOrdered(t *testing.T) {
	store := &recordingStore{delay: 5 * time.Millisecond}
	w := New(store, 4, time.Second, zerolog.Nop())
	defer w.Close()

	var wg sync.WaitGroup
	titles := []string{"a", "b", "c", "d"}
	results := make([]database.UpsertResult, len(titles))

	//submit sequentially the way the pipeline does, but from a goroutine
	//each, to prove the worker serializes regardless of the callers
	for i, title := range titles {
		wg.Add(1)
		go func(i int, title string) {
			defer wg.Done()
			//stagger submissions so queue order is deterministic
			time.Sleep(time.Duration(i*20) * time.Millisecond)
			res, err := w.Upsert(context.Background(), &models.JobDraft{Title: title})
			require.NoError(t, err)
			results[i] = res
		}(i, title)
	}
	wg.Wait()

	assert.Equal(t, titles, store.titles, "writes execute in submit order")
	assert.Equal(t, 1, store.maxSeen, "never more than one write in flight")
	for _, res := range results {
		assert.Equal(t, database.OutcomeCreated, res.Outcome)
	}
}

func TestWriterTimeoutReportsFailed(t *testing.T) {
	store := &recordingStore{delay: 200 * time.Millisecond}
	w := New(store, 1, 20*time.Millisecond, zerolog.Nop())
	defer w.Close()

	res, _ := w.Upsert(context.Background(), &models.JobDraft{Title: "slow"})
	assert.Equal(t, database.OutcomeFailed, res.Outcome)
}

func TestWriterCancelledCaller(t *testing.T) {
	store := &recordingStore{delay: 200 * time.Millisecond}
	w := New(store, 1, time.Second, zerolog.Nop())
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := w.Upsert(ctx, &models.JobDraft{Title: "x"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
