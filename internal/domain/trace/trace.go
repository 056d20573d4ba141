package trace

import "time"

// Entry records how a single traveler record was decided.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	RunID     string    `json:"run_id"`
	Index     int       `json:"index"`
	Passport  string    `json:"passport,omitempty"`
	Decision  string    `json:"decision"`
	Rule      string    `json:"rule"`
	Reason    string    `json:"reason,omitempty"`
}
