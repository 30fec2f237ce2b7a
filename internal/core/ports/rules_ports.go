package ports

import (
	"context"

	"github.com/thecivicscenter/prereg/internal/core/domain"
)

// EligibilityView carries the classified status plus the prose shown on a
// state page.
type EligibilityView struct {
	Status      domain.PreregStatus `json:"status"`
	Color       string              `json:"color"`
	BorderColor string              `json:"borderColor"`
	Text        string              `json:"text"`
	ImpactText  string              `json:"impactText,omitempty"`
}

type ElectionView struct {
	Date          string `json:"date"`
	FormattedDate string `json:"formattedDate"`
	Description   string `json:"description"`
	RegisterBy    string `json:"registerBy,omitempty"`
}

type PopulationView struct {
	Count   int64  `json:"count"`
	Display string `json:"display"`
}

type LinkView struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type BulletView struct {
	Type       domain.RequirementType `json:"type"`
	Label      string                 `json:"label"`
	Definition string                 `json:"definition"`
}

// InstructionBlock is one registration channel's section of a state page:
// merged ID-requirement bullets plus paragraph-split full text for both the
// adult registration and pre-registration instructions.
type InstructionBlock struct {
	Title           string             `json:"title"`
	Bullets         []BulletView       `json:"bullets"`
	Registration    []domain.Paragraph `json:"registration,omitempty"`
	Preregistration []domain.Paragraph `json:"preregistration,omitempty"`
}

// StateRules is the full per-state rules view consumed by state pages.
type StateRules struct {
	State       domain.State      `json:"state"`
	Population  *PopulationView   `json:"population,omitempty"`
	Eligibility *EligibilityView  `json:"eligibility,omitempty"`
	Elections   []ElectionView    `json:"elections"`
	UsefulLinks []LinkView        `json:"usefulLinks"`
	Online      *InstructionBlock `json:"online,omitempty"`
	ByMail      *InstructionBlock `json:"byMail,omitempty"`
}

type RulesService interface {
	StateRules(ctx context.Context, slug string) (*StateRules, error)
}

// TableRow is one row of the national comparison table, in input state
// order.
type TableRow struct {
	Code            string              `json:"code"`
	Name            string              `json:"name"`
	FIPS            string              `json:"fips"`
	Slug            string              `json:"slug"`
	Status          domain.PreregStatus `json:"status"`
	Color           string              `json:"color"`
	BorderColor     string              `json:"borderColor"`
	EligibilityText string              `json:"eligibilityText,omitempty"`
	NextElection    *ElectionView       `json:"nextElection,omitempty"`
	Pop18           int64               `json:"pop18"`
	Pop18Display    string              `json:"pop18Display"`
	ByMailSupported bool                `json:"byMailSupported"`
	OnlineSupported bool                `json:"onlineSupported"`
	RequiresDMVID   bool                `json:"requiresDmvId"`
}

// MapEntry colors one state of the national pre-registration map.
type MapEntry struct {
	FIPS        string              `json:"fips"`
	Code        string              `json:"code"`
	Slug        string              `json:"slug"`
	Status      domain.PreregStatus `json:"status"`
	Color       string              `json:"color"`
	BorderColor string              `json:"borderColor"`
}

type OverviewService interface {
	TableRows(ctx context.Context) ([]TableRow, error)
	MapEntries(ctx context.Context) ([]MapEntry, error)
}
