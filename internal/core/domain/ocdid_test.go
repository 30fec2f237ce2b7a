package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStateCode(t *testing.T) {
	assert.Equal(t, "FL", ParseStateCode("ocd-division/country:us/state:fl/cd:1"))
	assert.Equal(t, "CA", ParseStateCode("ocd-division/country:us/state:ca"))
	assert.Equal(t, "", ParseStateCode("ocd-division/country:us/district:dc"))
	assert.Equal(t, "", ParseStateCode(""))
}

func TestStateCodeFromOcdID(t *testing.T) {
	assert.Equal(t, "DC", StateCodeFromOcdID("ocd-division/country:us/district:dc"))
	assert.Equal(t, "TX", StateCodeFromOcdID("ocd-division/country:us/state:tx"))
}

func TestOcdIDMatchesState(t *testing.T) {
	assert.True(t, OcdIDMatchesState("ocd-division/country:us/state:fl/cd:1", "FL"))
	assert.False(t, OcdIDMatchesState("ocd-division/country:us/state:fl", "CA"))
	assert.True(t, OcdIDMatchesState("ocd-division/country:us/district:dc", "DC"))
	assert.False(t, OcdIDMatchesState("ocd-division/country:us/state:fl", "DC"))
}
