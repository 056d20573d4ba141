package decide_test

import (
	"reflect"
	"testing"

	"github.com/kanadia/entrydesk/internal/domain/decide"
	"github.com/kanadia/entrydesk/internal/domain/traveler"
)

var testCountries = []traveler.CountryInfo{
	{Code: "KAN"},
	{Code: "GOR", VisitorVisaRequired: true},
	{Code: "BRD", TransitVisaRequired: true},
	{Code: "ZIK", MedicalAdvisory: "mosquito-borne outbreak", VisitorVisaRequired: true},
}

func validReturningRecord() *traveler.Record {
	return &traveler.Record{
		FirstName:   "Ayda",
		LastName:    "Renn",
		BirthDate:   "1984-03-22",
		Passport:    "JW702-F4G2H-QR5S1-8DJ20-X2F11",
		Home:        &traveler.Location{City: "Porthaven", Region: "West", Country: "KAN"},
		From:        &traveler.Location{City: "Porthaven", Region: "West", Country: "KAN"},
		EntryReason: traveler.ReasonReturning,
	}
}

func TestDecide_EmptyBatch(t *testing.T) {
	watchlist := []traveler.WatchlistEntry{{FirstName: "Boris", LastName: "Grishenko"}}

	got := decide.Decide(nil, watchlist, testCountries, evalDate)
	if got == nil {
		t.Fatal("expected an empty, non-nil decision list")
	}
	if len(got) != 0 {
		t.Errorf("expected 0 decisions, got %d", len(got))
	}
}

func TestDecide_ReturningHomeAccepted(t *testing.T) {
	got := decide.Decide([]*traveler.Record{validReturningRecord()}, nil, testCountries, evalDate)
	if len(got) != 1 || got[0] != decide.Accept {
		t.Fatalf("expected [Accept], got %v", got)
	}
}

func TestDecide_QuarantineBeatsEverything(t *testing.T) {
	// Incomplete, watchlisted, visa-less visitor from an advisory country:
	// quarantine must still win.
	r := &traveler.Record{
		FirstName:   "Boris",
		LastName:    "Grishenko",
		Passport:    "AAAAA-BBBBB-CCCCC-DDDDD-EEEEE",
		Home:        &traveler.Location{Country: "ZIK"},
		From:        &traveler.Location{Country: "ZIK"},
		EntryReason: traveler.ReasonVisit,
	}
	watchlist := []traveler.WatchlistEntry{
		{FirstName: "Boris", LastName: "Grishenko", Passport: "AAAAA-BBBBB-CCCCC-DDDDD-EEEEE"},
	}

	got := decide.Decide([]*traveler.Record{r}, watchlist, testCountries, evalDate)
	if got[0] != decide.Quarantine {
		t.Errorf("expected Quarantine, got %v", got[0])
	}
}

func TestDecide_QuarantineOnOriginAdvisory(t *testing.T) {
	r := validReturningRecord()
	r.From = &traveler.Location{Country: "ZIK"}

	got := decide.Decide([]*traveler.Record{r}, nil, testCountries, evalDate)
	if got[0] != decide.Quarantine {
		t.Errorf("expected Quarantine for advisory origin, got %v", got[0])
	}
}

func TestDecide_IncompleteRecordRejected(t *testing.T) {
	r := validReturningRecord()
	r.LastName = ""

	got := decide.Decide([]*traveler.Record{r}, nil, testCountries, evalDate)
	if got[0] != decide.Reject {
		t.Errorf("expected Reject for missing last name, got %v", got[0])
	}
}

func TestDecide_VisitorVisaMissingRejected(t *testing.T) {
	r := validReturningRecord()
	r.Home = &traveler.Location{Country: "GOR"}
	r.EntryReason = traveler.ReasonVisit
	r.Visa = nil

	got := decide.Decide([]*traveler.Record{r}, nil, testCountries, evalDate)
	if got[0] != decide.Reject {
		t.Errorf("expected Reject for missing visitor visa, got %v", got[0])
	}
}

func TestDecide_VisitorVisaExpiredRejected(t *testing.T) {
	r := validReturningRecord()
	r.Home = &traveler.Location{Country: "GOR"}
	r.EntryReason = traveler.ReasonVisit
	r.Visa = &traveler.Visa{Code: "AB123-C45D6", Date: evalDate.AddDate(0, 0, -731).Format("2006-01-02")}

	got := decide.Decide([]*traveler.Record{r}, nil, testCountries, evalDate)
	if got[0] != decide.Reject {
		t.Errorf("expected Reject for expired visitor visa, got %v", got[0])
	}
}

func TestDecide_ValidVisaAccepted(t *testing.T) {
	r := validReturningRecord()
	r.Home = &traveler.Location{Country: "GOR"}
	r.EntryReason = traveler.ReasonVisit
	r.Visa = &traveler.Visa{Code: "AB123-C45D6", Date: evalDate.AddDate(0, 0, -100).Format("2006-01-02")}

	got := decide.Decide([]*traveler.Record{r}, nil, testCountries, evalDate)
	if got[0] != decide.Accept {
		t.Errorf("expected Accept with a current visitor visa, got %v", got[0])
	}
}

func TestDecide_TransitVisaMissingRejected(t *testing.T) {
	r := validReturningRecord()
	r.From = &traveler.Location{Country: "BRD"}
	r.EntryReason = traveler.ReasonTransit
	r.Visa = nil

	got := decide.Decide([]*traveler.Record{r}, nil, testCountries, evalDate)
	if got[0] != decide.Reject {
		t.Errorf("expected Reject for missing transit visa, got %v", got[0])
	}
}

func TestDecide_PassportOnlyWatchlistHitGoesSecondary(t *testing.T) {
	r := validReturningRecord()
	watchlist := []traveler.WatchlistEntry{
		{FirstName: "Someone", LastName: "Else", Passport: r.Passport},
	}

	got := decide.Decide([]*traveler.Record{r}, watchlist, testCountries, evalDate)
	if got[0] != decide.Secondary {
		t.Errorf("expected Secondary for passport watchlist hit, got %v", got[0])
	}
}

func TestDecide_OrderAndLengthPreserved(t *testing.T) {
	quarantined := validReturningRecord()
	quarantined.From = &traveler.Location{Country: "ZIK"}

	incomplete := validReturningRecord()
	incomplete.BirthDate = "not-a-date"

	watchlisted := validReturningRecord()

	records := []*traveler.Record{
		validReturningRecord(),
		quarantined,
		incomplete,
		watchlisted,
	}
	watchlist := []traveler.WatchlistEntry{
		{FirstName: watchlisted.FirstName, LastName: watchlisted.LastName},
	}

	got := decide.Decide(records, watchlist, testCountries, evalDate)
	if len(got) != len(records) {
		t.Fatalf("expected %d decisions, got %d", len(records), len(got))
	}

	// The watchlisted name matches records 0 and 3 equally; record 0 comes
	// out Secondary too, which keeps the check honest about ordering.
	want := []decide.Decision{decide.Secondary, decide.Quarantine, decide.Reject, decide.Secondary}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("decisions = %v, want %v", got, want)
	}
}

func TestDecide_Idempotent(t *testing.T) {
	records := []*traveler.Record{validReturningRecord(), {}, validReturningRecord()}

	first := decide.Decide(records, nil, testCountries, evalDate)
	second := decide.Decide(records, nil, testCountries, evalDate)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated runs differ: %v vs %v", first, second)
	}
}

func TestEvaluateAll_TraceEntries(t *testing.T) {
	quarantined := validReturningRecord()
	quarantined.From = &traveler.Location{Country: "ZIK"}

	records := []*traveler.Record{validReturningRecord(), quarantined, {}}

	decisions, entries := decide.NewEvaluator().EvaluateAll(records, nil, testCountries, evalDate)
	if len(entries) != len(decisions) {
		t.Fatalf("expected %d trace entries, got %d", len(decisions), len(entries))
	}

	wantRules := []string{decide.RuleAccept, decide.RuleMedicalAdvisory, decide.RuleIncompleteRecord}
	for i, e := range entries {
		if e.Index != i {
			t.Errorf("entry %d has index %d", i, e.Index)
		}
		if e.Rule != wantRules[i] {
			t.Errorf("entry %d rule = %q, want %q", i, e.Rule, wantRules[i])
		}
		if e.Decision != decisions[i].String() {
			t.Errorf("entry %d decision = %q, want %q", i, e.Decision, decisions[i])
		}
	}
}
