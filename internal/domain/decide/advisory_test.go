package decide_test

import (
	"testing"

	"github.com/kanadia/entrydesk/internal/domain/decide"
	"github.com/kanadia/entrydesk/internal/domain/traveler"
)

func TestUnderMedicalAdvisory(t *testing.T) {
	idx := testIndex() // ZIK carries an advisory

	tests := []struct {
		name string
		home *traveler.Location
		from *traveler.Location
		want bool
	}{
		{"home country under advisory", &traveler.Location{Country: "ZIK"}, &traveler.Location{Country: "KAN"}, true},
		{"origin country under advisory", &traveler.Location{Country: "KAN"}, &traveler.Location{Country: "ZIK"}, true},
		{"both under advisory", &traveler.Location{Country: "ZIK"}, &traveler.Location{Country: "ZIK"}, true},
		{"neither under advisory", &traveler.Location{Country: "KAN"}, &traveler.Location{Country: "GOR"}, false},
		{"missing locations", nil, nil, false},
		{"missing home, origin clean", nil, &traveler.Location{Country: "KAN"}, false},
		{"missing home, origin under advisory", nil, &traveler.Location{Country: "ZIK"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &traveler.Record{Home: tt.home, From: tt.from}
			if got := decide.UnderMedicalAdvisory(r, idx); got != tt.want {
				t.Errorf("UnderMedicalAdvisory = %v, want %v", got, tt.want)
			}
		})
	}
}
