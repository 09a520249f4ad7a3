// Package external provides clients for third-party APIs (fixtures feed,
// news RSS). Both endpoints are thin passthroughs: fetch, lightly shape,
// cache upstream.
package external

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	fixturesBaseURL = "https://api.football-data.org/v4"
	fixturesTimeout = 15 * time.Second
)

// FixturesService proxies the football-data.org World Cup match feed.
type FixturesService struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// NewFixturesService creates a fixtures client. token may be empty, in
// which case every fetch fails with a configuration error.
func NewFixturesService(token string) *FixturesService {
	return &FixturesService{
		token:   token,
		baseURL: fixturesBaseURL,
		httpClient: &http.Client{
			Timeout: fixturesTimeout,
		},
	}
}

// Configured reports whether an API token is present.
func (s *FixturesService) Configured() bool { return s.token != "" }

// Matches fetches the raw World Cup match list (competition code "WC")
// and returns the upstream JSON untouched.
func (s *FixturesService) Matches(ctx context.Context) ([]byte, error) {
	if !s.Configured() {
		return nil, fmt.Errorf("FOOTBALL_DATA_TOKEN is not configured")
	}

	u := s.baseURL + "/competitions/WC/matches"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Auth-Token", s.token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fixtures fetch error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fixtures API HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fixtures read error: %w", err)
	}
	return body, nil
}
