package decide

import (
	"time"

	"github.com/kanadia/entrydesk/internal/domain/traveler"
)

// VisaValidityDays is the flat-day visa window: a visa is current when issued
// strictly in the past and at most this many days before the evaluation date.
// No leap-year correction is applied; two years is counted as 730 plain days.
const VisaValidityDays = 730

// VisitorVisaRequired reports whether the record needs a visitor visa:
// entry reason "visit" and a home country on the visitor-visa list.
func VisitorVisaRequired(r *traveler.Record, idx CountryIndex) bool {
	return r.EntryReason == traveler.ReasonVisit && idx.VisitorVisaCountry(r.HomeCountry())
}

// TransitVisaRequired reports whether the record needs a transit visa:
// entry reason "transit" and an origin country on the transit-visa list.
// The relevant country differs from the visitor case: origin, not home.
func TransitVisaRequired(r *traveler.Record, idx CountryIndex) bool {
	return r.EntryReason == traveler.ReasonTransit && idx.TransitVisaCountry(r.FromCountry())
}

// ValidVisa reports whether the visa is present, well-formed, and unexpired
// at evalDate: 0 < evalDate - issueDate <= VisaValidityDays, in flat days.
func ValidVisa(v *traveler.Visa, evalDate time.Time) bool {
	if v == nil {
		return false
	}
	if !ValidDateFormat(v.Date) {
		return false
	}
	issued, err := time.Parse(dateLayout, v.Date)
	if err != nil {
		return false
	}
	days := int(midnightUTC(evalDate).Sub(issued) / (24 * time.Hour))
	return days > 0 && days <= VisaValidityDays
}

// midnightUTC truncates t to its calendar date so day arithmetic is exact.
func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
