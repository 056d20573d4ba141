package decide

import "github.com/kanadia/entrydesk/internal/domain/traveler"

// UnderMedicalAdvisory reports whether the record's home or origin country is
// under a medical advisory. A record with a missing location contributes no
// country and cannot match on that side.
func UnderMedicalAdvisory(r *traveler.Record, idx CountryIndex) bool {
	return idx.UnderAdvisory(r.HomeCountry()) || idx.UnderAdvisory(r.FromCountry())
}
