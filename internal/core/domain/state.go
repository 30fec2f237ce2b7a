package domain

// State is stable reference data for a US state (plus DC), joined to
// authority and election records via the code parsed out of an OCD id and
// to population data via FIPS.
type State struct {
	Code string `json:"code"`
	Name string `json:"name"`
	FIPS string `json:"fips"`
	Slug string `json:"slug"`
}

// StatePopulation is the number of residents turning 18 this year,
// sourced from the census warehouse and keyed by FIPS.
type StatePopulation struct {
	FIPS  string `json:"fips"`
	Code  string `json:"code"`
	Pop18 int64  `json:"pop18"`
}
