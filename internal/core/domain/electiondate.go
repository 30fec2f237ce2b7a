package domain

import (
	"fmt"
	"time"
)

// FormatElectionDate formats an ISO date string (YYYY-MM-DD) as
// "Nov 3rd, 2026". Unparseable input is returned verbatim.
func FormatElectionDate(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}

	day := d.Day()
	ord := "th"
	switch {
	case day%10 == 1 && day != 11:
		ord = "st"
	case day%10 == 2 && day != 12:
		ord = "nd"
	case day%10 == 3 && day != 13:
		ord = "rd"
	}

	return fmt.Sprintf("%s %d%s, %d", d.Format("Jan"), day, ord, d.Year())
}

// FormatDeadlineSuffix formats a registration deadline for display,
// appending "by mail" or "in person" when the method is not online.
func FormatDeadlineSuffix(deadline *RegistrationDeadline) string {
	formatted := FormatElectionDate(deadline.Date)
	switch deadline.Method {
	case DeadlineByMail:
		return formatted + " by mail"
	case DeadlineInPerson:
		return formatted + " in person"
	}
	return formatted
}
