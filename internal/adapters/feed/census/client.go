// Package census fetches voting-age population figures from the census
// warehouse extract.
package census

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/thecivicscenter/prereg/internal/core/domain"
	"github.com/thecivicscenter/prereg/internal/core/ports"
)

type Client struct {
	url        string
	states     []domain.State
	httpClient *http.Client
}

var _ ports.PopulationFeed = (*Client)(nil)

// NewClient builds a population feed over the warehouse extract at url. The
// states list supplies the FIPS-to-code mapping; rows for unknown FIPS
// codes are dropped.
func NewClient(url string, states []domain.State) *Client {
	return &Client{
		url:    url,
		states: states,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type warehouseRow struct {
	StateFIPS  string `json:"STATE_FIPS"`
	StateName  string `json:"STATE_NAME"`
	Population int64  `json:"POPULATION"`
}

func (c *Client) FetchPopulations(ctx context.Context) ([]domain.StatePopulation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var rows []warehouseRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	codeByFIPS := make(map[string]string, len(c.states))
	for _, s := range c.states {
		codeByFIPS[s.FIPS] = s.Code
	}

	var populations []domain.StatePopulation
	for _, row := range rows {
		code, ok := codeByFIPS[row.StateFIPS]
		if !ok {
			continue
		}
		populations = append(populations, domain.StatePopulation{
			FIPS:  row.StateFIPS,
			Code:  code,
			Pop18: row.Population,
		})
	}

	return populations, nil
}
