package repository

import (
	"context"
	"errors"
	"time"

	"claim_triage/internal/domain/entities"
	"claim_triage/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// ClaimRecord is the sqlite row. Seq preserves insertion order; the claim itself
// is stored as one JSON document so an update replaces it atomically.
type ClaimRecord struct {
	Seq       uint64         `gorm:"primaryKey;autoIncrement"`
	ClaimID   string         `gorm:"uniqueIndex;not null"`
	Status    string         `gorm:"index"`
	Claim     entities.Claim `gorm:"serializer:json"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ClaimRecord) TableName() string { return "claims" }

type ClaimSQLiteRepository struct {
	db *gorm.DB
}

var _ interfaces.IClaimRepository = (*ClaimSQLiteRepository)(nil)

func NewClaimSQLiteRepository(db *gorm.DB) *ClaimSQLiteRepository {
	return &ClaimSQLiteRepository{db: db}
}

func (r *ClaimSQLiteRepository) Add(ctx context.Context, c entities.Claim) error {
	rec := ClaimRecord{ClaimID: c.ID, Status: string(c.Status), Claim: c}
	return r.db.WithContext(ctx).Create(&rec).Error
}

func (r *ClaimSQLiteRepository) Update(ctx context.Context, id string, c entities.Claim) (bool, error) {
	c.ID = id
	res := r.db.WithContext(ctx).
		Model(&ClaimRecord{}).
		Where("claim_id = ?", id).
		Select("status", "claim", "updated_at").
		Updates(&ClaimRecord{Status: string(c.Status), Claim: c, UpdatedAt: time.Now().UTC()})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *ClaimSQLiteRepository) GetByID(ctx context.Context, id string) (entities.Claim, error) {
	var rec ClaimRecord
	err := r.db.WithContext(ctx).First(&rec, "claim_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Claim{}, nil
	}
	if err != nil {
		return entities.Claim{}, err
	}
	return rec.Claim, nil
}

func (r *ClaimSQLiteRepository) List(ctx context.Context) ([]entities.Claim, error) {
	var recs []ClaimRecord
	if err := r.db.WithContext(ctx).Order("seq ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Claim, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.Claim)
	}
	return out, nil
}
