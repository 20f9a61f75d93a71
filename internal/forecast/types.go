package forecast

// Side marks which end of the matchup a profile occupies. It is assigned at
// forecast time, not an intrinsic property of a catalog record.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// ConfidenceTier is a coarse bucket summarizing how decisive the win
// probability is.
type ConfidenceTier string

const (
	ConfidenceHigh   ConfidenceTier = "HIGH"
	ConfidenceMedium ConfidenceTier = "MEDIUM"
	ConfidenceLow    ConfidenceTier = "LOW"
)

// TeamProfile is one contestant in a single forecast: a catalog base record
// plus the side it was assigned for this matchup.
type TeamProfile struct {
	Name          string  `json:"name"`
	Code          string  `json:"code"`
	OffenseRating float64 `json:"offense_rating"` // points scored per 100 possessions
	DefenseRating float64 `json:"defense_rating"` // points allowed per 100 possessions
	Pace          float64 `json:"pace"`           // estimated possessions per game
	FormScore     float64 `json:"form_score"`     // 0-1 recent-performance weighting
	Side          Side    `json:"side"`
}

// Prediction is the forecast record for one matchup. It is constructed
// atomically by Predict and never mutated; a new computation replaces it
// wholesale.
type Prediction struct {
	WinnerName        string         `json:"winner_name"`
	WinProbability    float64        `json:"win_probability"`
	HomeScore         int            `json:"home_score"`
	AwayScore         int            `json:"away_score"`
	TotalPoints       int            `json:"total_points"`
	OverUnderLine     float64        `json:"over_under_line"`
	OverProbability   float64        `json:"over_probability"`
	SpreadLine        float64        `json:"spread_line"` // negative favors home
	SpreadCoverCode   string         `json:"spread_cover_code"`
	SpreadProbability float64        `json:"spread_probability"`
	ConfidenceTier    ConfidenceTier `json:"confidence_tier"`
}
