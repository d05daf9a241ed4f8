package match

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// seenSet is a short-lived idempotency record guarding against duplicate
// notifications when the same trigger fires more than once in quick
// succession. Keys expire after the bucket interval, so this is duplicate
// suppression, not a durable delivery guarantee.
type seenSet struct {
	mu     sync.Mutex
	bucket time.Duration
	keys   map[string]time.Time
	now    func() time.Time
}

func newSeenSet(bucket time.Duration) *seenSet {
	return &seenSet{
		bucket: bucket,
		keys:   make(map[string]time.Time),
		now:    time.Now,
	}
}

// seen records the pair for the current time bucket and reports whether it
// was already recorded there.
func (s *seenSet) seen(candidateID, jobID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.prune(now)

	key := fmt.Sprintf("%s|%s|%d", candidateID, jobID, now.UnixNano()/int64(s.bucket))
	if _, ok := s.keys[key]; ok {
		return true
	}
	s.keys[key] = now
	return false
}

func (s *seenSet) prune(now time.Time) {
	cutoff := now.Add(-2 * s.bucket)
	for key, at := range s.keys {
		if at.Before(cutoff) {
			delete(s.keys, key)
		}
	}
}
