package forecast

import (
	"errors"
	"math"
	"testing"
)

func TestValidateProfile(t *testing.T) {
	valid := goldenHome()

	tests := []struct {
		name   string
		mutate func(*TeamProfile)
		wantOK bool
	}{
		{"Valid profile", func(p *TeamProfile) {}, true},
		{"Missing name", func(p *TeamProfile) { p.Name = "" }, false},
		{"Missing code", func(p *TeamProfile) { p.Code = "" }, false},
		{"NaN offense", func(p *TeamProfile) { p.OffenseRating = math.NaN() }, false},
		{"NaN pace", func(p *TeamProfile) { p.Pace = math.NaN() }, false},
		{"Inf defense", func(p *TeamProfile) { p.DefenseRating = math.Inf(1) }, false},
		{"Form above one", func(p *TeamProfile) { p.FormScore = 1.2 }, false},
		{"Form below zero", func(p *TeamProfile) { p.FormScore = -0.1 }, false},
		{"Form at bounds", func(p *TeamProfile) { p.FormScore = 1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			err := ValidateProfile(p)
			if tt.wantOK && err != nil {
				t.Errorf("ValidateProfile() = %v, want nil", err)
			}
			if !tt.wantOK {
				if err == nil {
					t.Fatal("ValidateProfile() = nil, want error")
				}
				if !errors.Is(err, ErrInvalidProfile) {
					t.Errorf("error %v does not wrap ErrInvalidProfile", err)
				}
			}
		})
	}
}

func TestValidateMatchup(t *testing.T) {
	home := goldenHome()
	away := goldenAway()

	if err := ValidateMatchup(home, away); err != nil {
		t.Fatalf("valid matchup rejected: %v", err)
	}

	dup := away
	dup.Code = home.Code
	if err := ValidateMatchup(home, dup); !errors.Is(err, ErrDuplicateSelection) {
		t.Errorf("duplicate codes: err = %v, want ErrDuplicateSelection", err)
	}

	swapped := home
	swapped.Side = SideAway
	if err := ValidateMatchup(swapped, away); !errors.Is(err, ErrInvalidProfile) {
		t.Errorf("wrong sides: err = %v, want ErrInvalidProfile", err)
	}
}
