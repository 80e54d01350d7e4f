package interfaces

import (
	"context"
	"time"
)

// ICache is a byte-oriented key-value cache used for AI assessment results.
type ICache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
