package match

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSeenSet(t *testing.T) {
	candidateID := uuid.New()
	jobID := uuid.New()

	t.Run("Repeat within bucket suppressed", func(t *testing.T) {
		s := newSeenSet(30 * time.Second)
		now := time.Unix(1000, 0)
		s.now = func() time.Time { return now }

		assert.False(t, s.seen(candidateID, jobID), "first sighting passes")
		assert.True(t, s.seen(candidateID, jobID), "second sighting in the same bucket is a duplicate")

		now = now.Add(10 * time.Second)
		assert.True(t, s.seen(candidateID, jobID), "still inside the same bucket")
	})

	t.Run("New bucket passes again", func(t *testing.T) {
		s := newSeenSet(30 * time.Second)
		now := time.Unix(990, 0) // bucket boundary at t=990
		s.now = func() time.Time { return now }

		assert.False(t, s.seen(candidateID, jobID))

		now = now.Add(30 * time.Second)
		assert.False(t, s.seen(candidateID, jobID), "a new bucket starts a fresh record")
	})

	t.Run("Distinct pairs tracked independently", func(t *testing.T) {
		s := newSeenSet(30 * time.Second)
		otherJob := uuid.New()

		assert.False(t, s.seen(candidateID, jobID))
		assert.False(t, s.seen(candidateID, otherJob))
		assert.False(t, s.seen(uuid.New(), jobID))
		assert.True(t, s.seen(candidateID, jobID))
	})

	t.Run("Old keys pruned", func(t *testing.T) {
		s := newSeenSet(30 * time.Second)
		now := time.Unix(990, 0)
		s.now = func() time.Time { return now }

		s.seen(candidateID, jobID)
		assert.Len(t, s.keys, 1)

		now = now.Add(5 * time.Minute)
		s.seen(candidateID, uuid.New())
		assert.Len(t, s.keys, 1, "stale entries are dropped on the next sighting")
	})
}
