package democracyworks

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchAuthorities(t *testing.T) {
	var gotKey, gotLang string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/authorities/state", r.URL.Path)
		gotKey = r.Header.Get("X-API-KEY")
		gotLang = r.Header.Get("Accept-Language")
		assert.Equal(t, "ocdId,registration,youthRegistration", r.URL.Query().Get("fields"))
		assert.Equal(t, "51", r.URL.Query().Get("pageSize"))

		fmt.Fprint(w, `{
			"data": {"authorities": [
				{"ocdId": "ocd-division/country:us/state:fl"},
				{"ocdId": "ocd-division/country:us/state:al"}
			]},
			"pagination": {"totalRecordCount": 2}
		}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	authorities, err := client.FetchAuthorities(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "en-US", gotLang)
	require.Len(t, authorities, 2)
	assert.Equal(t, "ocd-division/country:us/state:fl", authorities[0].OcdID)
}

func TestFetchElectionsPaging(t *testing.T) {
	var pages []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/elections", r.URL.Path)
		assert.Equal(t, "2026-03-01", r.URL.Query().Get("startDate"))
		assert.Contains(t, r.URL.Query().Get("electionTypes"), "presidentialPrimary")

		page := r.URL.Query().Get("page")
		pages = append(pages, page)

		// 75 records at pageSize 50 means two pages.
		if page == "1" {
			fmt.Fprint(w, `{
				"data": {"elections": [{"ocdId": "ocd-division/country:us/state:fl", "date": "2026-08-18"}]},
				"pagination": {"totalRecordCount": 75}
			}`)
			return
		}
		fmt.Fprint(w, `{
			"data": {"elections": [{"ocdId": "ocd-division/country:us/state:al", "date": "2026-11-03"}]},
			"pagination": {"totalRecordCount": 75}
		}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	client.now = func() time.Time {
		return time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	}

	elections, err := client.FetchElections(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2"}, pages)
	require.Len(t, elections, 2)
	assert.Equal(t, "2026-08-18", elections[0].Date)
	assert.Equal(t, "2026-11-03", elections[1].Date)
}

func TestFetchAuthoritiesUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	_, err := client.FetchAuthorities(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 502")
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 1, pageCount(0, 50))
	assert.Equal(t, 1, pageCount(50, 50))
	assert.Equal(t, 2, pageCount(51, 50))
	assert.Equal(t, 2, pageCount(75, 50))
}
