package forecast

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidProfile marks a profile with a missing or non-finite field.
	ErrInvalidProfile = errors.New("invalid team profile")

	// ErrDuplicateSelection marks a matchup with the same team on both sides.
	ErrDuplicateSelection = errors.New("same team selected for both sides")
)

// ValidateProfile rejects profiles the engine's precondition excludes:
// empty name or code, a form score outside [0,1], or any non-finite
// numeric field.
func ValidateProfile(t TeamProfile) error {
	if t.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidProfile)
	}
	if t.Code == "" {
		return fmt.Errorf("%w: missing code for %q", ErrInvalidProfile, t.Name)
	}
	for _, v := range []float64{t.OffenseRating, t.DefenseRating, t.Pace, t.FormScore} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite rating for %s", ErrInvalidProfile, t.Code)
		}
	}
	if t.FormScore < 0 || t.FormScore > 1 {
		return fmt.Errorf("%w: form score %v outside [0,1] for %s", ErrInvalidProfile, t.FormScore, t.Code)
	}
	return nil
}

// ValidateMatchup checks the pairing invariant: two valid profiles with
// distinct codes and opposite sides.
func ValidateMatchup(home, away TeamProfile) error {
	if err := ValidateProfile(home); err != nil {
		return err
	}
	if err := ValidateProfile(away); err != nil {
		return err
	}
	if home.Code == away.Code {
		return fmt.Errorf("%w: %s", ErrDuplicateSelection, home.Code)
	}
	if home.Side != SideHome || away.Side != SideAway {
		return fmt.Errorf("%w: sides assigned as %s/%s", ErrInvalidProfile, home.Side, away.Side)
	}
	return nil
}
