package domain

import (
	"regexp"
	"sort"
	"strings"
)

// RequirementType identifies one kind of ID requirement extracted from
// registration instruction text.
type RequirementType string

const (
	StateDLOrID                   RequirementType = "STATE_DL_OR_ID"
	SSN                           RequirementType = "SSN"
	ProofOfIDOrResidence          RequirementType = "PROOF_OF_ID_OR_RESIDENCE"
	ProofOfCitizenship            RequirementType = "PROOF_OF_CITIZENSHIP"
	Signature                     RequirementType = "SIGNATURE"
	NoneFallback                  RequirementType = "NONE_FALLBACK"
	FirstTimeIDAtPolls            RequirementType = "FIRST_TIME_ID_AT_POLLS"
	FirstTimeProofWithApplication RequirementType = "FIRST_TIME_PROOF_WITH_APPLICATION"
	Exemptions                    RequirementType = "EXEMPTIONS"
)

// IDRequirement is one entry of the requirement taxonomy: a stable sort
// order, a short label, a one-sentence definition for bullet rendering, and
// the detection pattern. The taxonomy is process-wide static configuration,
// never mutated at runtime.
type IDRequirement struct {
	Type       RequirementType
	Order      int
	Label      string
	Definition string
	Pattern    *regexp.Regexp
}

// IDRequirements is the single source of truth for the requirement
// taxonomy, in declaration order. The patterns are broad and hand-tuned
// against real instruction text; matching behavior is a product decision,
// not something to tighten up.
var IDRequirements = []IDRequirement{
	{
		Type:       StateDLOrID,
		Order:      1,
		Label:      "State ID",
		Definition: "State driver's license or ID number (includes learner's permit, non-driver ID)",
		Pattern:    regexp.MustCompile(`(?i)driver'?s?\s*license|state\s+id|state[- ]?issued\s+id|learner'?s?\s*permit|non[- ]?(?:driver|operating|operators)|dmv[- ]?issued|dmv\s+id|mva\s+id|penn\s*dot|penndot|identification\s+(?:card|number)|id\s+card|motor\s+vehicle|registry\s+of\s+motor|mvd\s+id|scdmv|ncdmv|service\s+oklahoma|bureau\s+of\s+motor\s+vehicles`),
	},
	{
		Type:       SSN,
		Order:      2,
		Label:      "SSN",
		Definition: "Social Security number (partial or full, depending on state)",
		Pattern:    regexp.MustCompile(`(?i)social\s+security|\bssn\b|last\s+(?:four|4|five|5)\s+digits\s+of\s+(?:your\s+)?(?:social\s+security|ssn)|full\s+social\s+security`),
	},
	{
		Type:       ProofOfIDOrResidence,
		Order:      3,
		Label:      "Proof of ID or Residence",
		Definition: "Copy of photo ID or document showing name and address (e.g. utility bill, bank statement, lease)",
		Pattern:    regexp.MustCompile(`(?i)copy\s+of|proof\s+of\s+(?:identity|residence|residency)|submit.*copy|include\s+(?:a\s+)?copy|utility\s+bill|bank\s+statement|government\s+check|paycheck|paystub|lease|rental\s+agreement|mortgage|proof\s+of\s+insurance|enrollment\s+letter`),
	},
	{
		Type:       ProofOfCitizenship,
		Order:      4,
		Label:      "Proof of Citizenship",
		Definition: "Proof of citizenship (e.g. certificate of citizenship, naturalization, birth certificate)",
		Pattern:    regexp.MustCompile(`(?i)proof\s+of\s+.*citizenship|certificate\s+of\s+(?:united\s+states\s+)?citizenship|certificate\s+of\s+naturalization`),
	},
	{
		Type:       Signature,
		Order:      5,
		Label:      "Signature",
		Definition: "Signature required (DMV-stored, in-process capture, or upload of digital image)",
		Pattern:    regexp.MustCompile(`(?i)signature|digital\s+image\s+of\s+your\s+signature|upload.*signature|sign\s+on[- ]?screen|dmv[- ]?stored|on\s+file\s+with\s+dmv|touchscreen|sign\s+during\s+the\s+process`),
	},
	{
		Type:       NoneFallback,
		Order:      6,
		Label:      "None",
		Definition: "Alternative options are available if you do not have ID. See full details.",
		Pattern:    regexp.MustCompile(`(?i)indicate\s+["']?none["']?|write\s+["']?none["']?|check\s+the\s+box.*do\s+not\s+have|leave\s+that\s+field\s+blank|do\s+not\s+have\s+an?\s+id|have\s+not\s+been\s+issued|state\s+assigns|unique\s+(?:identifier|id|identifying)\s+(?:number|will\s+be\s+provided)?|unique\s+identifier\s+will\s+be\s+provided|will\s+be\s+assigned|can\s+still\s+(?:register|submit|use)|register\s+by\s+mail|submit.*by\s+mail|visit.*county.*in\s+person|clerk'?s?\.?\s*office\s+will\s+issue|generate\s+a\s+pdf\s+form|do\s+not\s+possess.*(?:driver|social\s+security)`),
	},
	{
		Type:       FirstTimeIDAtPolls,
		Order:      7,
		Label:      "First-Time Voter ID at Polls",
		Definition: "Must show ID when voting for the first time",
		Pattern:    regexp.MustCompile(`(?i)first\s+time\s+(?:you\s+)?vote|first\s+time\s+voting|identification\s+when\s+you\s+vote|show\s+id\s+the\s+first\s+time|verify\s+your\s+identity\s+the\s+first\s+time|provide\s+identification\s+when\s+voting|vote\s+in\s+person\s+the\s+first\s+time`),
	},
	{
		Type:       FirstTimeProofWithApplication,
		Order:      8,
		Label:      "First-Time Proof with Application",
		Definition: "First-time registrants: must submit proof of ID with application if no ID number provided",
		Pattern:    regexp.MustCompile(`(?i)registering\s+(?:to\s+vote\s+)?for\s+the\s+first\s+time.*(?:submit|include|copy)|first\s+time\s+in\s+your\s+jurisdiction.*(?:submit|copy)`),
	},
	{
		Type:       Exemptions,
		Order:      9,
		Label:      "Exemptions",
		Definition: "Exemptions for ID requirement (e.g. 65+, disability, military, overseas)—see full text",
		Pattern:    regexp.MustCompile(`(?i)exempt\s+from\s+the\s+id\s+requirement|65\s+years\s+old|have\s+a\s+disability|uniformed\s+services|merchant\s+marines|residing\s+outside\s+the\s+us`),
	},
}

var idRequirementsByType = func() map[RequirementType]IDRequirement {
	m := make(map[RequirementType]IDRequirement, len(IDRequirements))
	for _, req := range IDRequirements {
		m[req.Type] = req
	}
	return m
}()

// LookupIDRequirement returns the taxonomy entry for a requirement type.
func LookupIDRequirement(t RequirementType) (IDRequirement, bool) {
	req, ok := idRequirementsByType[t]
	return req, ok
}

// IDRequirementExtraction pairs the extracted bullet list with the original
// untouched instruction text, kept for full disclosure.
type IDRequirementExtraction struct {
	Bullets  []RequirementType
	FullText string
}

var (
	brTagRe      = regexp.MustCompile(`(?i)<br\s*/?>`)
	htmlTagRe    = regexp.MustCompile(`<[^>]+>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// stripHTMLForMatching flattens instruction HTML into plain text for
// pattern matching. Unclosed tags degrade to "no requirements found"
// rather than failing.
func stripHTMLForMatching(text string) string {
	text = brTagRe.ReplaceAllString(text, " ")
	text = htmlTagRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// ExtractIDRequirements scans free-text registration instructions for the
// taxonomy patterns and returns the matched requirement types sorted by
// their fixed order, plus the original text. Empty input yields an empty
// extraction.
func ExtractIDRequirements(instructions *string) IDRequirementExtraction {
	if instructions == nil || strings.TrimSpace(*instructions) == "" {
		return IDRequirementExtraction{Bullets: []RequirementType{}}
	}

	plainText := stripHTMLForMatching(*instructions)
	seen := make(map[RequirementType]bool)
	bullets := []RequirementType{}

	for _, req := range IDRequirements {
		if req.Pattern.MatchString(plainText) && !seen[req.Type] {
			seen[req.Type] = true
			bullets = append(bullets, req.Type)
		}
	}

	// The order field is the authoritative ordering, not match order.
	sort.SliceStable(bullets, func(i, j int) bool {
		return idRequirementsByType[bullets[i]].Order < idRequirementsByType[bullets[j]].Order
	})

	return IDRequirementExtraction{Bullets: bullets, FullText: *instructions}
}

// MergeIDRequirements combines bullet lists from several instruction
// sources, dropping duplicates and re-sorting by the taxonomy order.
func MergeIDRequirements(lists ...[]RequirementType) []RequirementType {
	seen := make(map[RequirementType]bool)
	merged := []RequirementType{}
	for _, list := range lists {
		for _, t := range list {
			if !seen[t] {
				seen[t] = true
				merged = append(merged, t)
			}
		}
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return idRequirementsByType[merged[i]].Order < idRequirementsByType[merged[j]].Order
	})
	return merged
}
