package domain

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

var (
	durationYearsRe  = regexp.MustCompile(`(\d+)Y`)
	durationMonthsRe = regexp.MustCompile(`(\d+)M`)
	durationDaysRe   = regexp.MustCompile(`(\d+)D`)
)

func durationComponents(eligibilityAge string) (years, months, days int) {
	if m := durationYearsRe.FindStringSubmatch(eligibilityAge); m != nil {
		years, _ = strconv.Atoi(m[1])
	}
	if m := durationMonthsRe.FindStringSubmatch(eligibilityAge); m != nil {
		months, _ = strconv.Atoi(m[1])
	}
	if m := durationDaysRe.FindStringSubmatch(eligibilityAge); m != nil {
		days, _ = strconv.Atoi(m[1])
	}
	return years, months, days
}

// ParseAge parses an ISO 8601 duration string (e.g. P16Y, P17Y6M, P17Y275D)
// and returns the equivalent age as a decimal. Years are whole, months
// contribute 1/12, and days contribute 1/365. Unparseable or empty input
// yields 0.
//
// Downstream classification thresholds depend on this exact conversion;
// it is deliberately not calendar-exact.
func ParseAge(eligibilityAge *string) float64 {
	if eligibilityAge == nil || len(*eligibilityAge) == 0 || (*eligibilityAge)[0] != 'P' {
		return 0
	}
	years, months, days := durationComponents(*eligibilityAge)
	return float64(years) + float64(months)/12 + float64(days)/365
}

// RegistrationAgeText converts an eligibility duration into human-readable
// age text. When a days component is present, it computes days until the
// target age instead (e.g. "You will turn 18 in 90 days.").
func RegistrationAgeText(eligibilityAge *string, targetAge int) string {
	if eligibilityAge == nil || len(*eligibilityAge) == 0 || (*eligibilityAge)[0] != 'P' {
		return ""
	}

	years, months, days := durationComponents(*eligibilityAge)

	if days > 0 {
		age := ParseAge(eligibilityAge)
		daysUntilTarget := int(math.Round((float64(targetAge) - age) * 365))
		return fmt.Sprintf("You will turn %d in %d days.", targetAge, daysUntilTarget)
	}

	if months > 0 {
		monthLabel := "months"
		if months == 1 {
			monthLabel = "month"
		}
		return fmt.Sprintf("You are %d years and %d %s old.", years, months, monthLabel)
	}

	yearLabel := "years"
	if years == 1 {
		yearLabel = "year"
	}
	return fmt.Sprintf("You are %d %s old.", years, yearLabel)
}
