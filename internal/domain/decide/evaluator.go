package decide

import (
	"fmt"
	"time"

	"github.com/kanadia/entrydesk/internal/domain/trace"
	"github.com/kanadia/entrydesk/internal/domain/traveler"
)

// Rule names reported in trace entries, one per orchestrator step.
const (
	RuleMedicalAdvisory  = "medical-advisory"
	RuleIncompleteRecord = "incomplete-record"
	RuleVisitorVisa      = "visitor-visa"
	RuleTransitVisa      = "transit-visa"
	RuleWatchlist        = "watchlist"
	RuleAccept           = "accept"
)

// Decide assigns one Decision per record by evaluating the prioritized rule
// sequence against the watchlist and country table. It is the pure core entry
// point: decisions[i] corresponds to records[i], an empty batch yields an
// empty list, and evalDate is the single instant every visa is judged against.
func Decide(records []*traveler.Record, watchlist []traveler.WatchlistEntry, countries []traveler.CountryInfo, evalDate time.Time) []Decision {
	decisions, _ := NewEvaluator().EvaluateAll(records, watchlist, countries, evalDate)
	return decisions
}

// Evaluator runs the decision pipeline and records, per record, which rule
// produced the disposition.
type Evaluator struct{}

// NewEvaluator creates a new Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// EvaluateAll decides every record in order and returns the decisions
// alongside one trace entry per record. Rules short-circuit in strict
// priority: quarantine, completeness, visa, watchlist, accept.
func (e *Evaluator) EvaluateAll(records []*traveler.Record, watchlist []traveler.WatchlistEntry, countries []traveler.CountryInfo, evalDate time.Time) ([]Decision, []trace.Entry) {
	idx := BuildCountryIndex(countries)

	decisions := make([]Decision, 0, len(records))
	entries := make([]trace.Entry, 0, len(records))

	for i, r := range records {
		d, rule, reason := e.evaluateOne(r, watchlist, idx, evalDate)
		decisions = append(decisions, d)
		entries = append(entries, trace.Entry{
			Index:    i,
			Passport: r.Passport,
			Decision: d.String(),
			Rule:     rule,
			Reason:   reason,
		})
	}

	return decisions, entries
}

func (e *Evaluator) evaluateOne(r *traveler.Record, watchlist []traveler.WatchlistEntry, idx CountryIndex, evalDate time.Time) (Decision, string, string) {
	switch {
	case UnderMedicalAdvisory(r, idx):
		return Quarantine, RuleMedicalAdvisory,
			fmt.Sprintf("home %q or origin %q under medical advisory", r.HomeCountry(), r.FromCountry())

	case !CompleteRecord(r):
		return Reject, RuleIncompleteRecord, "record is missing a required field or has a malformed value"

	case VisitorVisaRequired(r, idx) && !ValidVisa(r.Visa, evalDate):
		return Reject, RuleVisitorVisa,
			fmt.Sprintf("visitor visa required for home country %q but missing or invalid", r.HomeCountry())

	case TransitVisaRequired(r, idx) && !ValidVisa(r.Visa, evalDate):
		return Reject, RuleTransitVisa,
			fmt.Sprintf("transit visa required for origin country %q but missing or invalid", r.FromCountry())

	case OnWatchlist(r, watchlist):
		return Secondary, RuleWatchlist, "name or passport matches a watchlist entry"
	}

	return Accept, RuleAccept, ""
}
