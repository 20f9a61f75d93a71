package catalog

// defaultTeams is the built-in reference list used when no catalog file is
// configured. Ratings are points per 100 possessions, pace is possessions
// per game, form is a 0-1 recent-performance weighting.
var defaultTeams = []Team{
	{Name: "Boston Celtics", Code: "BOS", Offense: 118.4, Defense: 109.2, Pace: 98.2, Form: 0.85},
	{Name: "Denver Nuggets", Code: "DEN", Offense: 117.1, Defense: 111.5, Pace: 97.6, Form: 0.78},
	{Name: "Oklahoma City Thunder", Code: "OKC", Offense: 119.2, Defense: 107.8, Pace: 99.1, Form: 0.88},
	{Name: "Milwaukee Bucks", Code: "MIL", Offense: 116.3, Defense: 113.4, Pace: 100.8, Form: 0.62},
	{Name: "Los Angeles Lakers", Code: "LAL", Offense: 114.2, Defense: 112.8, Pace: 100.5, Form: 0.7},
	{Name: "Golden State Warriors", Code: "GSW", Offense: 113.8, Defense: 111.9, Pace: 101.2, Form: 0.58},
	{Name: "Phoenix Suns", Code: "PHX", Offense: 115.9, Defense: 114.1, Pace: 98.9, Form: 0.55},
	{Name: "New York Knicks", Code: "NYK", Offense: 117.6, Defense: 110.7, Pace: 95.4, Form: 0.74},
	{Name: "Cleveland Cavaliers", Code: "CLE", Offense: 118.9, Defense: 110.1, Pace: 96.8, Form: 0.81},
	{Name: "Miami Heat", Code: "MIA", Offense: 111.4, Defense: 110.3, Pace: 96.2, Form: 0.47},
	{Name: "Dallas Mavericks", Code: "DAL", Offense: 115.1, Defense: 112.3, Pace: 99.5, Form: 0.6},
	{Name: "Memphis Grizzlies", Code: "MEM", Offense: 114.7, Defense: 111.2, Pace: 103.4, Form: 0.66},
}

// Default returns the built-in catalog. The team list is static and
// validated by tests, so a construction failure is a programming error.
func Default() *Catalog {
	c, err := New(defaultTeams)
	if err != nil {
		panic(err)
	}
	return c
}
