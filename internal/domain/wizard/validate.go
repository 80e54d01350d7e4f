package wizard

import (
	"errors"
	"fmt"
	"math"

	"claim_triage/internal/domain/entities"
)

// ErrInvalidInput wraps every rejected reviewer input.
var ErrInvalidInput = errors.New("invalid review input")

func ValidateDamage(d entities.DamageReview) error {
	if d.Severity != "" && !d.Severity.Valid() {
		return fmt.Errorf("%w: unknown severity %q", ErrInvalidInput, d.Severity)
	}
	for i, a := range d.Areas {
		if err := ValidateArea(a); err != nil {
			return fmt.Errorf("area %d: %w", i, err)
		}
	}
	return nil
}

// ValidateArea checks confidence and bounding box ranges.
func ValidateArea(a entities.DamageArea) error {
	if math.IsNaN(a.Confidence) || a.Confidence < 0 || a.Confidence > 100 {
		return fmt.Errorf("%w: confidence %v outside 0-100", ErrInvalidInput, a.Confidence)
	}
	if !a.Coordinates.Within() {
		return fmt.Errorf("%w: bounding box outside 0-100", ErrInvalidInput)
	}
	return nil
}

func ValidateCosts(c entities.CostReview) error {
	for i, it := range c.Breakdown {
		if err := validateCost(it.Cost); err != nil {
			return fmt.Errorf("breakdown %d: %w", i, err)
		}
	}
	return validateCost(c.Total)
}

func ValidateDecision(d entities.ReviewDecision) error {
	if !d.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, d.Status)
	}
	return nil
}

func validateCost(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: cost %v", ErrInvalidInput, v)
	}
	return nil
}
