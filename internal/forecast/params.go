package forecast

// Params holds the tunable constants of the scoring model so the model can
// be adjusted or tested independently of the control flow.
type Params struct {
	HomeAdvantage    float64 // points added to the home side, scaled by its form
	PossessionFactor float64 // converts average pace into estimated possessions

	MarginDivisor float64 // win prob gains 1/MarginDivisor per point of margin
	FormWeight    float64 // win prob weight of the home-away form gap
	LineStep      float64 // over/under line snaps to this step (plus 0.5)
	TotalDivisor  float64 // over prob gains 1/TotalDivisor per point past the line
	SpreadDivisor float64 // cover prob gains 1/SpreadDivisor per point of margin

	WinProbMin    float64
	WinProbMax    float64
	OverProbMin   float64
	OverProbMax   float64
	SpreadProbMin float64
	SpreadProbMax float64

	HighConfidence float64 // tier is HIGH strictly above this
	LowConfidence  float64 // tier is LOW strictly below this
}

// DefaultParams returns the production model constants.
func DefaultParams() Params {
	return Params{
		HomeAdvantage:    3.5,
		PossessionFactor: 0.96,

		MarginDivisor: 40,
		FormWeight:    0.15,
		LineStep:      5,
		TotalDivisor:  30,
		SpreadDivisor: 50,

		WinProbMin:    0.08,
		WinProbMax:    0.92,
		OverProbMin:   0.15,
		OverProbMax:   0.85,
		SpreadProbMin: 0.20,
		SpreadProbMax: 0.80,

		HighConfidence: 0.70,
		LowConfidence:  0.55,
	}
}

// TierFor buckets a win probability into a confidence tier. Both
// comparisons are strict: a probability exactly at either threshold is
// MEDIUM.
func (p Params) TierFor(winProb float64) ConfidenceTier {
	switch {
	case winProb > p.HighConfidence:
		return ConfidenceHigh
	case winProb < p.LowConfidence:
		return ConfidenceLow
	default:
		return ConfidenceMedium
	}
}
