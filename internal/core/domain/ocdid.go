package domain

import "strings"

// ParseStateCode extracts the uppercase state code from an OCD division id
// such as "ocd-division/country:us/state:fl/cd:1". Returns "" when no
// state part is present.
func ParseStateCode(ocdID string) string {
	for _, part := range strings.Split(ocdID, "/") {
		if rest, ok := strings.CutPrefix(part, "state:"); ok {
			code, _, _ := strings.Cut(rest, ":")
			return strings.ToUpper(code)
		}
	}
	return ""
}

// StateCodeFromOcdID is ParseStateCode with the DC special case: DC is a
// district division, not a state, in OCD ids.
func StateCodeFromOcdID(ocdID string) string {
	if strings.Contains(ocdID, "district:dc") {
		return "DC"
	}
	return ParseStateCode(ocdID)
}

// OcdIDMatchesState reports whether an OCD id belongs to the given state
// code, handling the DC district special case.
func OcdIDMatchesState(ocdID, stateCode string) bool {
	if stateCode == "DC" {
		return strings.Contains(ocdID, "district:dc")
	}
	return strings.Contains(ocdID, "state:"+strings.ToLower(stateCode))
}
