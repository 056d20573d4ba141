package decide

import (
	"regexp"
	"time"

	"github.com/kanadia/entrydesk/internal/domain/traveler"
)

const dateLayout = "2006-01-02"

var (
	// Five groups of five alphanumerics, hyphen-separated, case-sensitive.
	passportPattern = regexp.MustCompile(`^[A-Za-z0-9]{5}(-[A-Za-z0-9]{5}){4}$`)
	// Fixed-width YYYY-MM-DD; time.Parse alone tolerates missing zero padding.
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidDateFormat reports whether s is a strict YYYY-MM-DD calendar date.
// Dates like 2021-02-30 fail the calendar check; 2021-2-3 fails the width check.
func ValidDateFormat(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// ValidPassportFormat reports whether s matches the passport number format.
func ValidPassportFormat(s string) bool {
	return passportPattern.MatchString(s)
}

// CompleteRecord reports whether the record carries every field required for
// a decision. It never errors: missing fields and malformed strings are just false.
func CompleteRecord(r *traveler.Record) bool {
	if r.FirstName == "" || r.LastName == "" {
		return false
	}
	if !ValidDateFormat(r.BirthDate) {
		return false
	}
	if !ValidPassportFormat(r.Passport) {
		return false
	}
	if r.Home == nil || r.From == nil {
		return false
	}
	return validEntryReason(r.EntryReason)
}

func validEntryReason(reason string) bool {
	switch reason {
	case traveler.ReasonVisit, traveler.ReasonTransit, traveler.ReasonReturning:
		return true
	}
	return false
}
