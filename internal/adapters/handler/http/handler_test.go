package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thecivicscenter/prereg/internal/core/domain"
	"github.com/thecivicscenter/prereg/internal/core/ports"
)

type stubRulesService struct {
	rules *ports.StateRules
	err   error
}

func (s *stubRulesService) StateRules(ctx context.Context, slug string) (*ports.StateRules, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rules, nil
}

type stubOverviewService struct {
	rows    []ports.TableRow
	entries []ports.MapEntry
	err     error
}

func (s *stubOverviewService) TableRows(ctx context.Context) ([]ports.TableRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rows, nil
}

func (s *stubOverviewService) MapEntries(ctx context.Context) ([]ports.MapEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.entries, nil
}

func newTestHandler(rules ports.RulesService, overview ports.OverviewService) *httptest.Server {
	return httptest.NewServer(NewHandler(NewRulesHandler(rules), NewOverviewHandler(overview)))
}

func TestGetStateRules(t *testing.T) {
	rules := &ports.StateRules{
		State: domain.State{Code: "FL", Name: "Florida", FIPS: "12", Slug: "florida"},
		Eligibility: &ports.EligibilityView{
			Status: domain.Age16OrEarlier,
			Color:  domain.PreregStatusColors[domain.Age16OrEarlier],
		},
	}
	server := newTestHandler(&stubRulesService{rules: rules}, &stubOverviewService{})
	defer server.Close()

	resp, err := server.Client().Get(server.URL + "/api/states/florida/rules")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var got ports.StateRules
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "florida", got.State.Slug)
	require.NotNil(t, got.Eligibility)
	assert.Equal(t, domain.Age16OrEarlier, got.Eligibility.Status)
}

func TestGetStateRulesNotFound(t *testing.T) {
	server := newTestHandler(&stubRulesService{err: domain.ErrStateNotFound}, &stubOverviewService{})
	defer server.Close()

	resp, err := server.Client().Get(server.URL + "/api/states/atlantis/rules")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 404, resp.StatusCode)
}

func TestGetTable(t *testing.T) {
	rows := []ports.TableRow{
		{Code: "AL", Slug: "alabama", Status: domain.NotAvailable},
		{Code: "FL", Slug: "florida", Status: domain.Age16OrEarlier},
	}
	server := newTestHandler(&stubRulesService{}, &stubOverviewService{rows: rows})
	defer server.Close()

	resp, err := server.Client().Get(server.URL + "/api/prereg/table")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, 200, resp.StatusCode)

	var got []ports.TableRow
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 2)
	assert.Equal(t, "AL", got[0].Code)
	assert.Equal(t, "FL", got[1].Code)
}

func TestGetMap(t *testing.T) {
	entries := []ports.MapEntry{
		{FIPS: "12", Code: "FL", Status: domain.Age16OrEarlier, Color: "#78a9ff"},
	}
	server := newTestHandler(&stubRulesService{}, &stubOverviewService{entries: entries})
	defer server.Close()

	resp, err := server.Client().Get(server.URL + "/api/prereg/map")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, 200, resp.StatusCode)

	var got []ports.MapEntry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "#78a9ff", got[0].Color)
}
