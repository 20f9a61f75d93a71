package catalog

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"matchup-forecast/internal/forecast"
)

func testTeams() []Team {
	return []Team{
		{Name: "Boston Celtics", Code: "BOS", Offense: 118.4, Defense: 109.2, Pace: 98.2, Form: 0.85},
		{Name: "Los Angeles Lakers", Code: "LAL", Offense: 114.2, Defense: 112.8, Pace: 100.5, Form: 0.7},
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		teams  []Team
		wantOK bool
	}{
		{"Two valid teams", testTeams(), true},
		{"Single team", testTeams()[:1], false},
		{"Empty list", nil, false},
		{
			"Duplicate codes",
			append(testTeams(), Team{Name: "Boston Copies", Code: "BOS", Offense: 110, Defense: 110, Pace: 98, Form: 0.5}),
			false,
		},
		{
			"NaN rating",
			append(testTeams(), Team{Name: "Broken", Code: "BRK", Offense: math.NaN(), Defense: 110, Pace: 98, Form: 0.5}),
			false,
		},
		{
			"Form out of range",
			append(testTeams(), Team{Name: "Hot", Code: "HOT", Offense: 110, Defense: 110, Pace: 98, Form: 1.5}),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.teams)
			if tt.wantOK && err != nil {
				t.Errorf("New() error = %v, want nil", err)
			}
			if !tt.wantOK && err == nil {
				t.Error("New() error = nil, want error")
			}
		})
	}
}

func TestLookup(t *testing.T) {
	cat, err := New(testTeams())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	team, err := cat.Lookup("BOS")
	if err != nil {
		t.Fatalf("Lookup(BOS): %v", err)
	}
	if team.Name != "Boston Celtics" {
		t.Errorf("Lookup(BOS).Name = %q, want Boston Celtics", team.Name)
	}

	if _, err := cat.Lookup("XXX"); !errors.Is(err, ErrUnknownTeam) {
		t.Errorf("Lookup(XXX) err = %v, want ErrUnknownTeam", err)
	}
}

func TestProfileAssignsSide(t *testing.T) {
	team := testTeams()[0]

	profile := team.Profile(forecast.SideAway)
	if profile.Side != forecast.SideAway {
		t.Errorf("Side = %q, want away", profile.Side)
	}
	if profile.Code != team.Code || profile.OffenseRating != team.Offense {
		t.Errorf("profile %+v does not carry the base record %+v", profile, team)
	}
}

func TestDefaultCatalog(t *testing.T) {
	cat := Default()

	if cat.Len() < 2 {
		t.Fatalf("default catalog has %d teams, want at least 2", cat.Len())
	}
	for _, team := range cat.Teams() {
		if err := forecast.ValidateProfile(team.Profile(forecast.SideHome)); err != nil {
			t.Errorf("default entry %s invalid: %v", team.Code, err)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "teams.yaml")

	yaml := `teams:
  - name: Boston Celtics
    code: BOS
    offense: 118.4
    defense: 109.2
    pace: 98.2
    form: 0.85
  - name: Los Angeles Lakers
    code: LAL
    offense: 114.2
    defense: 112.8
    pace: 100.5
    form: 0.7
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cat, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cat.Len() != 2 {
		t.Errorf("Len = %d, want 2", cat.Len())
	}
	team, err := cat.Lookup("LAL")
	if err != nil {
		t.Fatalf("Lookup(LAL): %v", err)
	}
	if team.Pace != 100.5 {
		t.Errorf("LAL pace = %v, want 100.5", team.Pace)
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file: want error")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("teams: {not a list"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := LoadFile(bad); err == nil {
		t.Error("malformed yaml: want error")
	}
}
