package decide_test

import (
	"reflect"
	"testing"

	"github.com/kanadia/entrydesk/internal/domain/decide"
)

func TestDecision_String(t *testing.T) {
	tests := []struct {
		d    decide.Decision
		want string
	}{
		{decide.Accept, "Accept"},
		{decide.Reject, "Reject"},
		{decide.Secondary, "Secondary"},
		{decide.Quarantine, "Quarantine"},
		{decide.Decision(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("Decision(%d).String() = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestStrings_PreservesOrder(t *testing.T) {
	in := []decide.Decision{decide.Quarantine, decide.Accept, decide.Reject}
	want := []string{"Quarantine", "Accept", "Reject"}
	if got := decide.Strings(in); !reflect.DeepEqual(got, want) {
		t.Errorf("Strings = %v, want %v", got, want)
	}
}
