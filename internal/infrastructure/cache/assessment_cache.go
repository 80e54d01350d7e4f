package cache

import (
	"context"
	"fmt"
	"time"

	"claim_triage/internal/usecase/interfaces"

	"github.com/dgraph-io/ristretto/v2"
)

// AssessmentCache keeps serialized assessment results in process, keyed by image digest.
// Cost is the payload size in bytes.
type AssessmentCache struct {
	c *ristretto.Cache[string, []byte]
}

var _ interfaces.ICache = (*AssessmentCache)(nil)

func NewAssessmentCache(maxSizeMB int64) (*AssessmentCache, error) {
	maxCost := maxSizeMB << 20
	c, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		// assessments are a few KB each
		NumCounters: maxCost / 1024 * 10,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("assessment cache: %w", err)
	}
	return &AssessmentCache{c: c}, nil
}

func (a *AssessmentCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := a.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	return v, true, nil
}

// Set admits the value asynchronously; a later Get may still miss.
func (a *AssessmentCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	a.c.SetWithTTL(key, value, int64(len(value)), ttl)
	return nil
}

// Wait blocks until buffered writes are applied.
func (a *AssessmentCache) Wait() { a.c.Wait() }

func (a *AssessmentCache) Close() { a.c.Close() }
