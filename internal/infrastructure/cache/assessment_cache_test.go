package cache

import (
	"context"
	"testing"
	"time"
)

func TestAssessmentCache(t *testing.T) {
	c, err := NewAssessmentCache(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close()
	ctx := context.Background()

	if _, ok, _ := c.Get(ctx, "missing"); ok {
		t.Fatalf("expected miss")
	}

	if err := c.Set(ctx, "sha", []byte(`{"score":91}`), time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.Wait()

	got, ok, err := c.Get(ctx, "sha")
	if err != nil || !ok || string(got) != `{"score":91}` {
		t.Fatalf("expected hit, got %q ok=%v err=%v", got, ok, err)
	}
}
