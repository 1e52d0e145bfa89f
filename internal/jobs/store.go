// Package jobs tracks asynchronous CV processing jobs in memory. Jobs
// move from processing to a terminal state, and a terminal result is
// handed out exactly once before the entry is dropped.
package jobs

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"smartcv/internal/types"
)

// State labels the lifecycle of a job.
type State string

const (
	StateProcessing State = "processing"
	StateDone       State = "done"
	StateError      State = "error"
)

// Job is a snapshot of a tracked job.
type Job struct {
	ID        string
	State     State
	Record    *types.CVRecord
	Err       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultTTL is how long an unclaimed terminal job is retained before the
// janitor discards it.
const DefaultTTL = 30 * time.Minute

// Store is a concurrency-safe in-memory job registry with background
// expiry of stale entries.
type Store struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
	stop chan struct{}
	done chan struct{}
}

// NewStore creates a store whose janitor discards terminal jobs older
// than ttl. A non-positive ttl uses DefaultTTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &Store{
		jobs: make(map[string]*Job),
		ttl:  ttl,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go s.janitor()
	return s
}

// Create registers a new processing job and returns its id.
func (s *Store) Create() string {
	id := uuid.New().String()
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[id] = &Job{
		ID:        id,
		State:     StateProcessing,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return id
}

// Complete marks a job done with its extracted record. Unknown ids are
// ignored, the job may have expired while processing ran.
func (s *Store) Complete(id string, rec *types.CVRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return
	}
	job.State = StateDone
	job.Record = rec
	job.UpdatedAt = time.Now()
}

// Fail marks a job failed with a message. Unknown ids are ignored.
func (s *Store) Fail(id string, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return
	}
	job.State = StateError
	job.Err = msg
	job.UpdatedAt = time.Now()
}

// Take returns the current snapshot of a job. A job in a terminal state
// is removed on read, so a second Take for the same id reports not found.
// Processing jobs stay registered.
func (s *Store) Take(id string) (Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return Job{}, false
	}
	snapshot := *job
	if job.State != StateProcessing {
		delete(s.jobs, id)
	}
	return snapshot, true
}

// Len reports the number of tracked jobs.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

// Stop shuts down the janitor goroutine. The store remains usable but no
// longer expires entries.
func (s *Store) Stop() {
	close(s.stop)
	<-s.done
}

func (s *Store) janitor() {
	defer close(s.done)
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.expire(time.Now())
		}
	}
}

func (s *Store) expire(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, job := range s.jobs {
		if now.Sub(job.UpdatedAt) > s.ttl {
			delete(s.jobs, id)
		}
	}
}
