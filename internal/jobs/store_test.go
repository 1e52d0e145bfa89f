package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartcv/internal/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(time.Hour)
	t.Cleanup(s.Stop)
	return s
}

func TestStore_CreateAndTake(t *testing.T) {
	s := newTestStore(t)

	id := s.Create()
	require.NotEmpty(t, id)

	job, ok := s.Take(id)
	require.True(t, ok)
	assert.Equal(t, StateProcessing, job.State)

	// Processing jobs survive reads
	_, ok = s.Take(id)
	assert.True(t, ok)
}

func TestStore_CompleteThenTakeRemoves(t *testing.T) {
	s := newTestStore(t)

	id := s.Create()
	rec := &types.CVRecord{}
	rec.PersonalInfo.Name = "Olivia Stone"
	s.Complete(id, rec)

	job, ok := s.Take(id)
	require.True(t, ok)
	assert.Equal(t, StateDone, job.State)
	require.NotNil(t, job.Record)
	assert.Equal(t, "Olivia Stone", job.Record.PersonalInfo.Name)

	// Terminal result is single-read
	_, ok = s.Take(id)
	assert.False(t, ok)
}

func TestStore_FailThenTakeRemoves(t *testing.T) {
	s := newTestStore(t)

	id := s.Create()
	s.Fail(id, "extraction failed")

	job, ok := s.Take(id)
	require.True(t, ok)
	assert.Equal(t, StateError, job.State)
	assert.Equal(t, "extraction failed", job.Err)

	_, ok = s.Take(id)
	assert.False(t, ok)
}

func TestStore_TakeUnknownID(t *testing.T) {
	s := newTestStore(t)

	_, ok := s.Take("no-such-id")
	assert.False(t, ok)
}

func TestStore_CompleteUnknownIDIgnored(t *testing.T) {
	s := newTestStore(t)

	s.Complete("gone", &types.CVRecord{})
	s.Fail("gone", "msg")
	assert.Equal(t, 0, s.Len())
}

func TestStore_ExpireDropsStale(t *testing.T) {
	s := newTestStore(t)

	id := s.Create()
	assert.Equal(t, 1, s.Len())

	s.expire(time.Now().Add(2 * time.Hour))
	assert.Equal(t, 0, s.Len())

	_, ok := s.Take(id)
	assert.False(t, ok)
}

func TestStore_DistinctIDs(t *testing.T) {
	s := newTestStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := s.Create()
		assert.False(t, seen[id])
		seen[id] = true
	}
}
