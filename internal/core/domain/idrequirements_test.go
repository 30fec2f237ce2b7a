package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractIDRequirementsEmpty(t *testing.T) {
	assert.Equal(t, IDRequirementExtraction{Bullets: []RequirementType{}}, ExtractIDRequirements(nil))
	assert.Equal(t, IDRequirementExtraction{Bullets: []RequirementType{}}, ExtractIDRequirements(strPtr("")))
	assert.Equal(t, IDRequirementExtraction{Bullets: []RequirementType{}}, ExtractIDRequirements(strPtr("   ")))
}

func TestExtractIDRequirementsScenario(t *testing.T) {
	text := "Bring your driver's license or state ID. Include the last four digits " +
		"of your social security number. If you do not have a SSN, indicate NONE."

	got := ExtractIDRequirements(strPtr(text))

	assert.Equal(t, []RequirementType{StateDLOrID, SSN, NoneFallback}, got.Bullets)
	assert.Equal(t, text, got.FullText)
}

func TestExtractIDRequirementsCanonicalPhrases(t *testing.T) {
	tests := []struct {
		phrase   string
		expected RequirementType
	}{
		{"Enter your driver's license number.", StateDLOrID},
		{"Enter your DMV-issued ID.", StateDLOrID},
		{"A learner's permit is accepted.", StateDLOrID},
		{"Provide your Social Security number.", SSN},
		{"Attach a utility bill or bank statement.", ProofOfIDOrResidence},
		{"Submit a certificate of naturalization.", ProofOfCitizenship},
		{"Your signature must be on file with DMV.", Signature},
		{"If you do not have an ID, leave that field blank.", NoneFallback},
		{"You must show identification the first time you vote.", FirstTimeIDAtPolls},
		{"If you are registering to vote for the first time, you must submit proof.", FirstTimeProofWithApplication},
		{"Voters who are 65 years old are exempt from the ID requirement.", Exemptions},
	}

	for _, tt := range tests {
		t.Run(string(tt.expected), func(t *testing.T) {
			got := ExtractIDRequirements(strPtr(tt.phrase))
			assert.Contains(t, got.Bullets, tt.expected)
		})
	}
}

func TestExtractIDRequirementsTaxonomyOrder(t *testing.T) {
	// Exemptions phrasing appears before the license phrasing, but the
	// taxonomy order field decides the bullet order.
	text := "Voters with a disability are exempt from the ID requirement. " +
		"Everyone else must enter a driver's license number."

	got := ExtractIDRequirements(strPtr(text))

	require.Contains(t, got.Bullets, StateDLOrID)
	require.Contains(t, got.Bullets, Exemptions)
	assert.Equal(t, StateDLOrID, got.Bullets[0])
	assert.Equal(t, Exemptions, got.Bullets[len(got.Bullets)-1])
}

func TestExtractIDRequirementsStripsHTML(t *testing.T) {
	t.Run("tags between words collapse to spaces", func(t *testing.T) {
		got := ExtractIDRequirements(strPtr("<p>Enter your driver's<br>license number.</p>"))
		assert.Contains(t, got.Bullets, StateDLOrID)
	})

	t.Run("unclosed tag degrades to no match", func(t *testing.T) {
		got := ExtractIDRequirements(strPtr("<p <a everything inside one broken tag"))
		assert.Empty(t, got.Bullets)
	})

	t.Run("full text keeps the original markup", func(t *testing.T) {
		raw := "Provide your <b>Social Security</b> number."
		got := ExtractIDRequirements(strPtr(raw))
		assert.Equal(t, raw, got.FullText)
	})
}

func TestMergeIDRequirements(t *testing.T) {
	merged := MergeIDRequirements(
		[]RequirementType{SSN, StateDLOrID},
		[]RequirementType{NoneFallback, SSN},
	)
	assert.Equal(t, []RequirementType{StateDLOrID, SSN, NoneFallback}, merged)

	assert.Equal(t, []RequirementType{}, MergeIDRequirements())
}

func TestLookupIDRequirement(t *testing.T) {
	req, ok := LookupIDRequirement(StateDLOrID)
	require.True(t, ok)
	assert.Equal(t, 1, req.Order)
	assert.Equal(t, "State ID", req.Label)

	_, ok = LookupIDRequirement(RequirementType("BOGUS"))
	assert.False(t, ok)
}

func TestIDRequirementsOrderAgreesWithDeclaration(t *testing.T) {
	for i, req := range IDRequirements {
		assert.Equal(t, i+1, req.Order, "taxonomy order field out of step at %s", req.Type)
	}
}
