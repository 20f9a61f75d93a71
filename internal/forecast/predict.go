package forecast

import (
	"math"

	"matchup-forecast/internal/mathutil"
)

// Predict maps a home profile and an away profile to a single Prediction.
// It is pure and deterministic: identical inputs produce bit-identical
// output, and there is no error path for well-formed numeric inputs.
// Callers must reject malformed profiles before invocation (ValidateProfile,
// ValidateMatchup); behavior on NaN fields is undefined.
//
// Expected score model:
//
//	possessions = avgPace * PossessionFactor
//	homeExpected = (home.offense + away.defense) / 2 * possessions / 100
//	awayExpected = (away.offense + home.defense) / 2 * possessions / 100
//
// Only the home side receives the advantage bonus, scaled by its own form;
// the away side's form applies multiplicatively to its expected score. The
// asymmetry is an intentional home-court modeling choice.
func Predict(home, away TeamProfile, p Params) Prediction {
	avgPace := (home.Pace + away.Pace) / 2
	possessions := avgPace * p.PossessionFactor

	homeExpected := ((home.OffenseRating + away.DefenseRating) / 2) * (possessions / 100)
	awayExpected := ((away.OffenseRating + home.DefenseRating) / 2) * (possessions / 100)

	homeScore := int(mathutil.RoundHalfAway(homeExpected + p.HomeAdvantage*home.FormScore))
	awayScore := int(mathutil.RoundHalfAway(awayExpected * away.FormScore))

	total := homeScore + awayScore
	line := overUnderLine(total, p)

	diff := homeScore - awayScore
	spread := -mathutil.RoundToNearestHalf(float64(diff))

	rawWinProb := 0.5 + float64(diff)/p.MarginDivisor + (home.FormScore-away.FormScore)*p.FormWeight
	clamped := mathutil.Clamp(rawWinProb, p.WinProbMin, p.WinProbMax)

	// Strict inequality: an exact tie resolves to the away side.
	winner := home.Name
	winProb := clamped
	if homeScore <= awayScore {
		winner = away.Name
		winProb = 1 - clamped
	}

	overProb := mathutil.Clamp(0.5+(float64(total)-line)/p.TotalDivisor, p.OverProbMin, p.OverProbMax)
	spreadProb := mathutil.Clamp(0.5+math.Abs(float64(diff))/p.SpreadDivisor, p.SpreadProbMin, p.SpreadProbMax)

	coverCode := home.Code
	if spread >= 0 {
		coverCode = away.Code
	}

	return Prediction{
		WinnerName:        winner,
		WinProbability:    winProb,
		HomeScore:         homeScore,
		AwayScore:         awayScore,
		TotalPoints:       total,
		OverUnderLine:     line,
		OverProbability:   overProb,
		SpreadLine:        spread,
		SpreadCoverCode:   coverCode,
		SpreadProbability: spreadProb,
		ConfidenceTier:    p.TierFor(winProb),
	}
}

// overUnderLine snaps a predicted total to the nearest LineStep multiple and
// offsets by half a point so the line can never push.
func overUnderLine(total int, p Params) float64 {
	return mathutil.RoundHalfAway(float64(total)/p.LineStep)*p.LineStep + 0.5
}
