package interfaces

import (
	"context"

	"claim_triage/internal/domain/entities"
)

// IClaimRepository abstracts the claim lifecycle store.
//
// The triage service must be able to:
//   - append a freshly routed claim (insertion order is preserved)
//   - replace a claim in place by id, as one atomic write (false when the id is unknown)
//   - list claims in insertion order
type IClaimRepository interface {
	Add(ctx context.Context, c entities.Claim) error
	Update(ctx context.Context, id string, c entities.Claim) (bool, error)
	GetByID(ctx context.Context, id string) (entities.Claim, error)
	List(ctx context.Context) ([]entities.Claim, error)
}
