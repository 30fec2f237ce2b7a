package domain

import "sort"

// Election is an upcoming election for a state, keyed by OCD id, with
// optional per-channel registration deadlines.
type Election struct {
	OcdID        string                `json:"ocdId"`
	Date         string                `json:"date"`
	Description  string                `json:"description"`
	Type         string                `json:"type"`
	Registration *ElectionRegistration `json:"registration"`
}

type ElectionRegistration struct {
	Online   *ElectionChannel `json:"online"`
	ByMail   *ElectionChannel `json:"byMail"`
	InPerson *ElectionChannel `json:"inPerson"`
}

type ElectionChannel struct {
	Deadline *ElectionDeadline `json:"deadline"`
}

type ElectionDeadline struct {
	Date string `json:"date"`
}

// Registration deadline methods, in resolution priority order.
const (
	DeadlineOnline   = "online"
	DeadlineByMail   = "byMail"
	DeadlineInPerson = "inPerson"
)

// RegistrationDeadline is the earliest applicable deadline for an election,
// tagged with the channel it came from.
type RegistrationDeadline struct {
	Date   string `json:"date"`
	Method string `json:"method"`
}

// UpcomingElectionsForState filters elections to those belonging to a state
// that are dated today or later, sorted by ascending date. ISO date strings
// sort lexicographically, so no parsing is needed; input order is preserved
// for equal dates.
func UpcomingElectionsForState(elections []Election, stateCode, today string) []Election {
	var matching []Election
	for _, e := range elections {
		if OcdIDMatchesState(e.OcdID, stateCode) && e.Date >= today {
			matching = append(matching, e)
		}
	}
	sort.SliceStable(matching, func(i, j int) bool {
		return matching[i].Date < matching[j].Date
	})
	return matching
}

// NextElectionForState returns the earliest upcoming election for a state,
// or nil when none is scheduled.
func NextElectionForState(elections []Election, stateCode, today string) *Election {
	upcoming := UpcomingElectionsForState(elections, stateCode, today)
	if len(upcoming) == 0 {
		return nil
	}
	return &upcoming[0]
}

// GetRegistrationDeadline returns the first available registration deadline
// for an election, checking channels in order: online, byMail, inPerson.
// Returns nil when no channel carries a deadline.
func GetRegistrationDeadline(election *Election) *RegistrationDeadline {
	reg := election.Registration
	if reg == nil {
		return nil
	}

	if reg.Online != nil && reg.Online.Deadline != nil && reg.Online.Deadline.Date != "" {
		return &RegistrationDeadline{Date: reg.Online.Deadline.Date, Method: DeadlineOnline}
	}
	if reg.ByMail != nil && reg.ByMail.Deadline != nil && reg.ByMail.Deadline.Date != "" {
		return &RegistrationDeadline{Date: reg.ByMail.Deadline.Date, Method: DeadlineByMail}
	}
	if reg.InPerson != nil && reg.InPerson.Deadline != nil && reg.InPerson.Deadline.Date != "" {
		return &RegistrationDeadline{Date: reg.InPerson.Deadline.Date, Method: DeadlineInPerson}
	}

	return nil
}
