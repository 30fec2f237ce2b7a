package domain

import (
	"fmt"
	"strings"
	"time"
)

// PreregStatus classifies a state's youth pre-registration policy by how
// early a high schooler can register. Derived, never stored; recomputed
// from the current YouthRegistration on every read.
type PreregStatus string

const (
	Age16OrEarlier  PreregStatus = "AGE_16_OR_EARLIER"
	AtLeastOneYear  PreregStatus = "AT_LEAST_ONE_YEAR"
	LessThanOneYear PreregStatus = "LESS_THAN_ONE_YEAR"
	NotAvailable    PreregStatus = "NOT_AVAILABLE"
)

// Three-color divergent scale used by the national map and table legend,
// plus the no-data fallback. Read-only process-wide constants.
var (
	ThreeColorDivergentScale = [3]string{"#78a9ff", "#ffe047", "#98ddb8"}

	ThreeColorBorderDivergentScale = [3]string{"#4a7fd4", "#c9a82e", "#6bb894"}
)

const (
	NoDataColor       = "#f8f6ef"
	NoDataBorderColor = "#b8b4a8"
)

// PreregStatusColors maps each status to its map/table fill color.
var PreregStatusColors = map[PreregStatus]string{
	Age16OrEarlier:  ThreeColorDivergentScale[0],
	AtLeastOneYear:  ThreeColorDivergentScale[1],
	LessThanOneYear: ThreeColorDivergentScale[2],
	NotAvailable:    NoDataColor,
}

// PreregStatusBorderColors maps each status to its swatch border color.
var PreregStatusBorderColors = map[PreregStatus]string{
	Age16OrEarlier:  ThreeColorBorderDivergentScale[0],
	AtLeastOneYear:  ThreeColorBorderDivergentScale[1],
	LessThanOneYear: ThreeColorBorderDivergentScale[2],
	NotAvailable:    NoDataBorderColor,
}

// NextRegOpportunityIsGeneral reports whether a by-election policy's
// qualifying election is a general election. The type field is not always
// reliable, so a November election date counts as a fallback signal.
func NextRegOpportunityIsGeneral(youth *YouthRegistration) bool {
	if youth.Supported != SupportedByElection {
		return false
	}
	if youth.EligibilityByElectionType != nil &&
		strings.Contains(*youth.EligibilityByElectionType, "general") {
		return true
	}
	if date := youth.EligibilityByElection.Date; date != nil {
		if d, err := time.Parse("2006-01-02", *date); err == nil && d.Month() == time.November {
			return true
		}
	}
	return false
}

// PreregStatusFor classifies a youth registration into a pre-registration
// status category. Returns NotAvailable for nil. Thresholds are inclusive
// and checked in order, so age-16-or-earlier wins over the general-election
// carve-out.
func PreregStatusFor(youth *YouthRegistration) PreregStatus {
	if youth == nil {
		return NotAvailable
	}

	age := ParseAge(youth.EligibilityAge)

	if youth.Supported == SupportedByAge && age <= 16 {
		return Age16OrEarlier
	}

	if (youth.Supported == SupportedByAge && age <= 17) || NextRegOpportunityIsGeneral(youth) {
		return AtLeastOneYear
	}

	if youth.Supported == SupportedByElection || youth.Supported == SupportedByAge {
		return LessThanOneYear
	}

	return NotAvailable
}

// VoterEligibilityText renders the "You can register to vote if" sentence
// for a youth registration policy. Always returns a non-empty sentence for
// the two supported modes; anything else reads as not required.
func VoterEligibilityText(youth *YouthRegistration) string {
	switch youth.Supported {
	case SupportedByAge:
		return RegistrationAgeText(youth.EligibilityAge, 18)
	case SupportedByElection:
		date := ""
		if youth.EligibilityByElection.Date != nil {
			date = *youth.EligibilityByElection.Date
		}
		p1 := fmt.Sprintf("You will be 18 by %s.", FormatElectionDate(date))
		if youth.EligibilityByElectionType != nil && *youth.EligibilityByElectionType != "" {
			p2 := fmt.Sprintf("(18 by the %s.)", *youth.EligibilityByElectionType)
			return p1 + " " + p2
		}
		return p1
	}
	return "Registration is not required."
}
