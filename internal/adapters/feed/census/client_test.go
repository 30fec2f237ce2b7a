package census

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thecivicscenter/prereg/internal/core/domain"
)

var testStates = []domain.State{
	{Code: "AL", Name: "Alabama", FIPS: "01", Slug: "alabama"},
	{Code: "FL", Name: "Florida", FIPS: "12", Slug: "florida"},
}

func TestFetchPopulations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{"STATE_FIPS": "12", "STATE_NAME": "Florida", "POPULATION": 17247000},
			{"STATE_FIPS": "01", "STATE_NAME": "Alabama", "POPULATION": 3917000},
			{"STATE_FIPS": "72", "STATE_NAME": "Puerto Rico", "POPULATION": 2620000}
		]`)
	}))
	defer server.Close()

	client := NewClient(server.URL, testStates)
	populations, err := client.FetchPopulations(context.Background())
	require.NoError(t, err)

	// The Puerto Rico row has no matching state and is dropped.
	require.Len(t, populations, 2)
	assert.Equal(t, domain.StatePopulation{FIPS: "12", Code: "FL", Pop18: 17247000}, populations[0])
	assert.Equal(t, domain.StatePopulation{FIPS: "01", Code: "AL", Pop18: 3917000}, populations[1])
}

func TestFetchPopulationsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, testStates)
	_, err := client.FetchPopulations(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
}
