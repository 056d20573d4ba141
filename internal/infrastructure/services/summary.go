package services

import "github.com/kanadia/entrydesk/internal/domain/decide"

// Summary tallies a run's decisions by disposition.
type Summary struct {
	Accept     int
	Reject     int
	Secondary  int
	Quarantine int
}

// Summarize counts each disposition in the decision list.
func Summarize(decisions []decide.Decision) Summary {
	var s Summary
	for _, d := range decisions {
		switch d {
		case decide.Accept:
			s.Accept++
		case decide.Reject:
			s.Reject++
		case decide.Secondary:
			s.Secondary++
		case decide.Quarantine:
			s.Quarantine++
		}
	}
	return s
}

// Total returns the number of decisions tallied.
func (s Summary) Total() int {
	return s.Accept + s.Reject + s.Secondary + s.Quarantine
}

// ByName returns the tally keyed by decision string, as reports expose it.
func (s Summary) ByName() map[string]int {
	return map[string]int{
		decide.Accept.String():     s.Accept,
		decide.Reject.String():     s.Reject,
		decide.Secondary.String():  s.Secondary,
		decide.Quarantine.String(): s.Quarantine,
	}
}
