package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"claim_triage/internal/domain/entities"
	"claim_triage/internal/usecase/interfaces"
)

func newClaim(id string) entities.Claim {
	return entities.Claim{
		ID:     id,
		Status: entities.ClaimStatusPending,
		Damage: entities.Damage{
			Severity:      entities.SeverityModerate,
			AffectedAreas: []entities.DamageArea{{Name: "bumper", Confidence: 90}},
		},
	}
}

// exerciseRepository runs the lifecycle contract shared by every backend.
func exerciseRepository(t *testing.T, repo interfaces.IClaimRepository) {
	t.Helper()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if err := repo.Add(ctx, newClaim(id)); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}

	t.Run("list keeps insertion order", func(t *testing.T) {
		list, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 3 || list[0].ID != "a" || list[1].ID != "b" || list[2].ID != "c" {
			t.Fatalf("unexpected order: %+v", list)
		}
	})

	t.Run("update replaces in place", func(t *testing.T) {
		next := newClaim("b")
		next.Status = entities.ClaimStatusApproved
		next.ReviewNotes = "looks fine"
		ok, err := repo.Update(ctx, "b", next)
		if err != nil || !ok {
			t.Fatalf("expected update, got ok=%v err=%v", ok, err)
		}
		list, _ := repo.List(ctx)
		if list[1].ID != "b" || list[1].Status != entities.ClaimStatusApproved || list[1].ReviewNotes != "looks fine" {
			t.Fatalf("unexpected claim after update: %+v", list[1])
		}
		if len(list) != 3 {
			t.Fatalf("update must not change length, got %d", len(list))
		}
	})

	t.Run("update unknown id is a no-op", func(t *testing.T) {
		ok, err := repo.Update(ctx, "zzz", newClaim("zzz"))
		if err != nil || ok {
			t.Fatalf("expected no-op, got ok=%v err=%v", ok, err)
		}
		list, _ := repo.List(ctx)
		if len(list) != 3 {
			t.Fatalf("expected 3 claims, got %d", len(list))
		}
	})

	t.Run("get by id", func(t *testing.T) {
		c, err := repo.GetByID(ctx, "c")
		if err != nil || c.ID != "c" {
			t.Fatalf("expected claim c, got %+v err=%v", c, err)
		}
		missing, err := repo.GetByID(ctx, "missing")
		if err != nil || missing.ID != "" {
			t.Fatalf("expected empty claim, got %+v err=%v", missing, err)
		}
	})
}

func TestClaimMemoryRepository(t *testing.T) {
	exerciseRepository(t, NewClaimMemoryRepository())
}

func TestClaimMemoryRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewClaimMemoryRepository()
	_ = repo.Add(ctx, newClaim("a"))

	list, _ := repo.List(ctx)
	list[0].Damage.AffectedAreas[0].Name = "mutated"

	again, _ := repo.GetByID(ctx, "a")
	if again.Damage.AffectedAreas[0].Name != "bumper" {
		t.Fatalf("caller mutation leaked into the store")
	}
}

func TestClaimMemoryRepository_DuplicateID(t *testing.T) {
	repo := NewClaimMemoryRepository()
	_ = repo.Add(context.Background(), newClaim("a"))
	if err := repo.Add(context.Background(), newClaim("a")); err == nil {
		t.Fatalf("expected duplicate error")
	}
}

func TestClaimMemoryRepository_ConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	repo := NewClaimMemoryRepository()
	_ = repo.Add(ctx, newClaim("a"))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			next := newClaim("a")
			next.ReviewNotes = fmt.Sprintf("note-%d", i)
			_, _ = repo.Update(ctx, "a", next)
			_, _ = repo.List(ctx)
		}(i)
	}
	wg.Wait()

	list, _ := repo.List(ctx)
	if len(list) != 1 || list[0].ReviewNotes == "" {
		t.Fatalf("unexpected state: %+v", list)
	}
}
