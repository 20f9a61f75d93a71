// Package catalog holds the static reference list of teams a forecast can
// be built from. A catalog is an explicit value passed to the workflow
// constructor; there is no ambient shared list.
package catalog

import (
	"errors"
	"fmt"

	"matchup-forecast/internal/forecast"
)

// ErrUnknownTeam is returned when a lookup code matches no catalog entry.
var ErrUnknownTeam = errors.New("unknown team code")

// Team is a catalog base record: one team's model inputs without a side.
// The side is stamped on at forecast time.
type Team struct {
	Name    string  `yaml:"name" json:"name"`
	Code    string  `yaml:"code" json:"code"`
	Offense float64 `yaml:"offense" json:"offense"`
	Defense float64 `yaml:"defense" json:"defense"`
	Pace    float64 `yaml:"pace" json:"pace"`
	Form    float64 `yaml:"form" json:"form"`
}

// Profile stamps a side onto a copy of the base record for one forecast.
func (t Team) Profile(side forecast.Side) forecast.TeamProfile {
	return forecast.TeamProfile{
		Name:          t.Name,
		Code:          t.Code,
		OffenseRating: t.Offense,
		DefenseRating: t.Defense,
		Pace:          t.Pace,
		FormScore:     t.Form,
		Side:          side,
	}
}

// Catalog is an ordered, validated set of teams with unique codes.
type Catalog struct {
	teams  []Team
	byCode map[string]int
}

// New validates the team list and builds a catalog. Every record must pass
// the engine's profile precondition, codes must be unique, and at least two
// entries are required for a matchup to ever be possible.
func New(teams []Team) (*Catalog, error) {
	if len(teams) < 2 {
		return nil, fmt.Errorf("catalog needs at least 2 teams, got %d", len(teams))
	}

	byCode := make(map[string]int, len(teams))
	for i, team := range teams {
		if err := forecast.ValidateProfile(team.Profile(forecast.SideHome)); err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		if prev, ok := byCode[team.Code]; ok {
			return nil, fmt.Errorf("duplicate team code %s (entries %d and %d)", team.Code, prev, i)
		}
		byCode[team.Code] = i
	}

	return &Catalog{teams: append([]Team(nil), teams...), byCode: byCode}, nil
}

// Teams returns the catalog entries in their original order.
func (c *Catalog) Teams() []Team {
	return append([]Team(nil), c.teams...)
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.teams)
}

// Lookup finds a team by its short code.
func (c *Catalog) Lookup(code string) (Team, error) {
	i, ok := c.byCode[code]
	if !ok {
		return Team{}, fmt.Errorf("%w: %s", ErrUnknownTeam, code)
	}
	return c.teams[i], nil
}
