package decide

// Decision is the disposition assigned to a traveler record. The four values
// are mutually exclusive, with precedence Quarantine > Reject > Secondary > Accept.
type Decision int

const (
	Accept Decision = iota
	Secondary
	Reject
	Quarantine
)

// String renders the decision in its canonical output form.
func (d Decision) String() string {
	switch d {
	case Accept:
		return "Accept"
	case Secondary:
		return "Secondary"
	case Reject:
		return "Reject"
	case Quarantine:
		return "Quarantine"
	default:
		return "Unknown"
	}
}

// Strings renders a decision list in order, preserving indices.
func Strings(decisions []Decision) []string {
	out := make([]string, len(decisions))
	for i, d := range decisions {
		out[i] = d.String()
	}
	return out
}
