package domain

// Youth registration policy modes. Exactly one of these determines which
// eligibility fields of a YouthRegistration are interpretable.
const (
	SupportedByAge      = "byAge"
	SupportedByElection = "byElection"
)

// Authority holds the registration rules published by a state election
// authority, as fetched from the elections API.
type Authority struct {
	OcdID             string            `json:"ocdId"`
	Registration      Registration      `json:"registration"`
	YouthRegistration YouthRegistration `json:"youthRegistration"`
}

// Registration describes adult registration rules per channel. Instructions
// are only meaningful when the corresponding channel is supported, but
// extraction tolerates text on unsupported channels.
type Registration struct {
	FormURL  *string             `json:"formUrl"`
	Online   OnlineRegistration  `json:"online"`
	ByMail   ByMailRegistration  `json:"byMail"`
	InPerson RegistrationChannel `json:"inPerson"`
}

type RegistrationChannel struct {
	Supported bool `json:"supported"`
}

type OnlineRegistration struct {
	Supported    bool    `json:"supported"`
	Instructions string  `json:"instructions"`
	URL          *string `json:"url"`
}

type ByMailRegistration struct {
	Supported             bool    `json:"supported"`
	URL                   *string `json:"url"`
	IDInstructions        *string `json:"idInstructions"`
	SignatureInstructions *string `json:"signatureInstructions"`
	CitizenInstructions   *string `json:"citizenInstructions"`
	NewVoterInstructions  *string `json:"newVoterInstructions"`
}

// YouthRegistration describes how and when a minor may pre-register.
// Upstream data is not guaranteed complete; absent fields fall back to the
// defined defaults rather than being rejected.
type YouthRegistration struct {
	Supported                 string               `json:"supported"`
	EligibilityAge            *string              `json:"eligibilityAge"`
	EligibilityByElectionType *string              `json:"eligibilityByElectionType"`
	EligibilityByElection     ByElectionEligibility `json:"eligibilityByElection"`
	Methods                   *string              `json:"methods"`
	OnlineInstructions        *string              `json:"onlineInstructions"`
	ByMailInstructions        *string              `json:"byMailInstructions"`
	InPersonInstructions      *string              `json:"inPersonInstructions"`
	URL                       *string              `json:"url"`
	Online                    *YouthOnlineChannel  `json:"online"`
}

type ByElectionEligibility struct {
	Date *string `json:"date"`
}

// YouthOnlineChannel carries the per-channel pre-registration link. When
// present it wins over the top-level URL.
type YouthOnlineChannel struct {
	URL *string `json:"url"`
}

// OnlineRegistrationURL picks the online pre-registration link, preferring
// the channel-specific URL over the top-level one.
func (y *YouthRegistration) OnlineRegistrationURL() *string {
	if y.Online != nil && y.Online.URL != nil {
		return y.Online.URL
	}
	return y.URL
}
