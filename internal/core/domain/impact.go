package domain

import (
	"fmt"
	"strings"
	"time"
)

// GradeAges holds the expected typical current age for each US high school
// grade level at a point in the school year.
type GradeAges struct {
	Seniors    float64
	Juniors    float64
	Sophomores float64
	Freshmen   float64
}

// ExpectedGradeAges returns the typical age per grade for a date. In the
// fall students have just started the grade and are younger; by spring they
// are older. Assumes a US school year Sept-May: sophomores 15 to 16,
// juniors 16 to 17, seniors 17 to 18 over the year. June-Aug use
// end-of-year ages.
func ExpectedGradeAges(date time.Time) GradeAges {
	month := int(date.Month()) - 1

	var progress float64
	switch {
	case month >= 8:
		progress = float64(month-8) / 8
	case month <= 4:
		progress = float64(month+4) / 8
	default:
		progress = 1
	}

	return GradeAges{
		Seniors:    17 + progress,
		Juniors:    16 + progress,
		Sophomores: 15 + progress,
		Freshmen:   14 + progress,
	}
}

// qualifierForGrade grades how many students in a grade qualify under an
// eligibility age: "all", "most", "many", "even some", or "" when the grade
// is excluded entirely.
func qualifierForGrade(eligibilityAge, typicalAge float64) string {
	switch {
	case eligibilityAge <= typicalAge-0.25:
		return "all"
	case eligibilityAge <= typicalAge+0.25:
		return "most"
	case eligibilityAge <= typicalAge+0.5:
		return "many"
	case eligibilityAge <= typicalAge+0.75:
		return "even some"
	}
	return ""
}

// StudentImpactText returns a qualitative statement about which high school
// grade levels can register to vote under a youth registration policy, as
// of the given date. Uses terms like "all", "most", "many", and "even some"
// rather than exact percentages. Returns "" when the policy is absent or
// its supported mode is unrecognized.
func StudentImpactText(youth *YouthRegistration, asOf time.Time) string {
	if youth == nil {
		return ""
	}

	switch youth.Supported {
	case SupportedByAge:
		age := ParseAge(youth.EligibilityAge)
		return studentImpactByAge(age, ExpectedGradeAges(asOf))
	case SupportedByElection:
		return studentImpactByElection(youth.EligibilityByElection.Date, asOf)
	}

	return ""
}

func studentImpactByAge(eligibilityAge float64, gradeAges GradeAges) string {
	var parts []string
	for _, grade := range []struct {
		name       string
		typicalAge float64
	}{
		{"seniors", gradeAges.Seniors},
		{"juniors", gradeAges.Juniors},
		{"sophomores", gradeAges.Sophomores},
		{"freshmen", gradeAges.Freshmen},
	} {
		if q := qualifierForGrade(eligibilityAge, grade.typicalAge); q != "" {
			parts = append(parts, q+" "+grade.name)
		}
	}

	if len(parts) == 0 {
		// policy only reaches 18+; seniors still turn 18 during the year
		return "most seniors"
	}
	if len(parts) == 1 {
		return parts[0]
	}
	last := parts[len(parts)-1]
	return fmt.Sprintf("%s, and %s", strings.Join(parts[:len(parts)-1], ", "), last)
}

func studentImpactByElection(electionDate *string, asOf time.Time) string {
	// Must be 18 by the election; sophomores (15-16) never qualify.
	if electionDate == nil {
		return "most seniors and many juniors"
	}

	election, err := time.Parse("2006-01-02", *electionDate)
	if err != nil {
		return "most seniors and many juniors"
	}

	monthsUntilElection := (election.Year()-asOf.Year())*12 +
		(int(election.Month()) - int(asOf.Month()))

	switch {
	case monthsUntilElection >= 12:
		return "all seniors, most juniors"
	case monthsUntilElection >= 6:
		return "all seniors and most juniors"
	case monthsUntilElection >= 3:
		return "most seniors and many juniors"
	}
	return "most seniors and even some juniors"
}
