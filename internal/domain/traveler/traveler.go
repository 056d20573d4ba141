package traveler

// Entry reasons accepted on a travel record.
const (
	ReasonVisit     = "visit"
	ReasonTransit   = "transit"
	ReasonReturning = "returning"
)

// Location is a city/region/country triple on a travel record.
type Location struct {
	City    string `json:"city" yaml:"city"`
	Region  string `json:"region" yaml:"region"`
	Country string `json:"country" yaml:"country"`
}

// Visa is an optional visa attached to a travel record.
type Visa struct {
	Code string `json:"code" yaml:"code"`
	Date string `json:"date" yaml:"date"`
}

// Record represents a single traveler entry record. Records are immutable
// once loaded; a malformed source entry decodes to a zero Record and is
// rejected by the validator rather than failing the batch.
type Record struct {
	FirstName   string    `json:"first_name" yaml:"first_name"`
	LastName    string    `json:"last_name" yaml:"last_name"`
	BirthDate   string    `json:"birth_date" yaml:"birth_date"`
	Passport    string    `json:"passport" yaml:"passport"`
	Home        *Location `json:"home" yaml:"home"`
	From        *Location `json:"from" yaml:"from"`
	EntryReason string    `json:"entry_reason" yaml:"entry_reason"`
	Visa        *Visa     `json:"visa" yaml:"visa"`
}

// HomeCountry returns the home country code, or "" when the home location is absent.
func (r *Record) HomeCountry() string {
	if r.Home == nil {
		return ""
	}
	return r.Home.Country
}

// FromCountry returns the origin country code, or "" when the origin location is absent.
func (r *Record) FromCountry() string {
	if r.From == nil {
		return ""
	}
	return r.From.Country
}

// WatchlistEntry is a flagged identity: a name pair or a passport number.
type WatchlistEntry struct {
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`
	Passport  string `json:"passport" yaml:"passport"`
}

// CountryInfo holds the per-country attributes the classifier consults.
// An empty MedicalAdvisory means no advisory is in effect.
type CountryInfo struct {
	Code                string `json:"code" yaml:"code"`
	MedicalAdvisory     string `json:"medical_advisory" yaml:"medical_advisory"`
	VisitorVisaRequired bool   `json:"visitor_visa_required" yaml:"visitor_visa_required"`
	TransitVisaRequired bool   `json:"transit_visa_required" yaml:"transit_visa_required"`
}
