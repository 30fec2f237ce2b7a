// Package democracyworks fetches authority and election records from the
// Democracy Works elections API, handling paging and authentication so the
// core only sees typed records.
package democracyworks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/thecivicscenter/prereg/internal/core/domain"
	"github.com/thecivicscenter/prereg/internal/core/ports"
)

const (
	authoritiesPageSize = 51
	electionsPageSize   = 50

	authorityFields = "ocdId,registration,youthRegistration"
	electionFields  = "ocdId,date,description,type"

	// Statewide election types; local and municipal races are excluded.
	electionTypes = "presidentialPrimary,state,stateSenate,stateHouse,congressional,senate"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	now        func() time.Time
}

var (
	_ ports.AuthorityFeed = (*Client)(nil)
	_ ports.ElectionFeed  = (*Client)(nil)
)

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		now: time.Now,
	}
}

type pagination struct {
	TotalRecordCount int `json:"totalRecordCount"`
}

type authoritiesResponse struct {
	Data struct {
		Authorities []domain.Authority `json:"authorities"`
	} `json:"data"`
	Pagination pagination `json:"pagination"`
}

type electionsResponse struct {
	Data struct {
		Elections []domain.Election `json:"elections"`
	} `json:"data"`
	Pagination pagination `json:"pagination"`
}

// FetchAuthorities retrieves every state-level authority record, walking
// pages until the reported total is covered.
func (c *Client) FetchAuthorities(ctx context.Context) ([]domain.Authority, error) {
	var authorities []domain.Authority

	page, totalPages := 1, 1
	for page <= totalPages {
		params := url.Values{}
		params.Set("fields", authorityFields)
		params.Set("pageSize", strconv.Itoa(authoritiesPageSize))
		params.Set("page", strconv.Itoa(page))

		var resp authoritiesResponse
		if err := c.get(ctx, "/authorities/state", params, &resp); err != nil {
			return nil, fmt.Errorf("failed to fetch authorities page %d: %w", page, err)
		}

		authorities = append(authorities, resp.Data.Authorities...)
		totalPages = pageCount(resp.Pagination.TotalRecordCount, authoritiesPageSize)
		page++
	}

	return authorities, nil
}

// FetchElections retrieves upcoming statewide elections dated today or
// later.
func (c *Client) FetchElections(ctx context.Context) ([]domain.Election, error) {
	var elections []domain.Election

	today := c.now().Format("2006-01-02")

	page, totalPages := 1, 1
	for page <= totalPages {
		params := url.Values{}
		params.Set("fields", electionFields)
		params.Set("electionTypes", electionTypes)
		params.Set("startDate", today)
		params.Set("pageSize", strconv.Itoa(electionsPageSize))
		params.Set("page", strconv.Itoa(page))

		var resp electionsResponse
		if err := c.get(ctx, "/elections", params, &resp); err != nil {
			return nil, fmt.Errorf("failed to fetch elections page %d: %w", page, err)
		}

		elections = append(elections, resp.Data.Elections...)
		totalPages = pageCount(resp.Pagination.TotalRecordCount, electionsPageSize)
		page++
	}

	return elections, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Accept-Language", "en-US")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func pageCount(totalRecords, pageSize int) int {
	pages := (totalRecords + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}
