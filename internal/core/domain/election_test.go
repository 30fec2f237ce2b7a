package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpcomingElectionsForState(t *testing.T) {
	elections := []Election{
		{OcdID: "ocd-division/country:us/state:fl", Date: "2026-11-03", Description: "General"},
		{OcdID: "ocd-division/country:us/state:fl", Date: "2026-08-18", Description: "Primary"},
		{OcdID: "ocd-division/country:us/state:ca", Date: "2026-06-02", Description: "Primary"},
		{OcdID: "ocd-division/country:us/state:fl", Date: "2026-01-10", Description: "Past special"},
		{OcdID: "ocd-division/country:us/district:dc", Date: "2026-06-16", Description: "DC primary"},
	}
	today := "2026-03-01"

	t.Run("filters by state and sorts ascending", func(t *testing.T) {
		got := UpcomingElectionsForState(elections, "FL", today)
		require.Len(t, got, 2)
		assert.Equal(t, "Primary", got[0].Description)
		assert.Equal(t, "General", got[1].Description)
	})

	t.Run("dc matches the district division", func(t *testing.T) {
		got := UpcomingElectionsForState(elections, "DC", today)
		require.Len(t, got, 1)
		assert.Equal(t, "DC primary", got[0].Description)
	})

	t.Run("today counts as upcoming", func(t *testing.T) {
		got := UpcomingElectionsForState(elections, "CA", "2026-06-02")
		assert.Len(t, got, 1)
	})
}

func TestNextElectionForState(t *testing.T) {
	elections := []Election{
		{OcdID: "ocd-division/country:us/state:tx", Date: "2026-11-03"},
		{OcdID: "ocd-division/country:us/state:tx", Date: "2026-03-03"},
	}

	next := NextElectionForState(elections, "TX", "2026-01-01")
	require.NotNil(t, next)
	assert.Equal(t, "2026-03-03", next.Date)

	assert.Nil(t, NextElectionForState(elections, "TX", "2027-01-01"))
}
