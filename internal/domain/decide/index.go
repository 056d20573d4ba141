package decide

import "github.com/kanadia/entrydesk/internal/domain/traveler"

// CountryIndex holds the three lookup sets derived from the country table.
// It is rebuilt per run from the loaded table and never mutated afterwards.
type CountryIndex struct {
	advisory    map[string]struct{}
	visitorVisa map[string]struct{}
	transitVisa map[string]struct{}
}

// BuildCountryIndex projects the country table into its three derived sets.
// A country is under advisory iff its advisory text is non-empty.
func BuildCountryIndex(countries []traveler.CountryInfo) CountryIndex {
	idx := CountryIndex{
		advisory:    make(map[string]struct{}),
		visitorVisa: make(map[string]struct{}),
		transitVisa: make(map[string]struct{}),
	}
	for _, c := range countries {
		if c.MedicalAdvisory != "" {
			idx.advisory[c.Code] = struct{}{}
		}
		if c.VisitorVisaRequired {
			idx.visitorVisa[c.Code] = struct{}{}
		}
		if c.TransitVisaRequired {
			idx.transitVisa[c.Code] = struct{}{}
		}
	}
	return idx
}

// UnderAdvisory reports whether code is under a medical advisory.
// An empty code (missing location) never matches.
func (idx CountryIndex) UnderAdvisory(code string) bool {
	if code == "" {
		return false
	}
	_, ok := idx.advisory[code]
	return ok
}

// VisitorVisaCountry reports whether code requires a visitor visa.
func (idx CountryIndex) VisitorVisaCountry(code string) bool {
	_, ok := idx.visitorVisa[code]
	return ok
}

// TransitVisaCountry reports whether code requires a transit visa.
func (idx CountryIndex) TransitVisaCountry(code string) bool {
	_, ok := idx.transitVisa[code]
	return ok
}
