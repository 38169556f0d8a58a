// Package github fetches a user's public profile and repositories and maps
// them into catalog entities.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/Zachkp/folio/internal/catalog"
)

const (
	DefaultBaseURL = "https://api.github.com"
	// MaxPerPage is the largest page GitHub serves; only one page is fetched.
	MaxPerPage = 100
)

// ErrFetch matches every FetchFailure via errors.Is.
var ErrFetch = errors.New("github fetch failed")

// FetchError describes a failed request. StatusCode is zero for transport
// and decoding failures.
type FetchError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool { return target == ErrFetch }

// Snapshot is the outcome of one successful fetch.
type Snapshot struct {
	Profile      *catalog.Profile
	Repositories []catalog.Repository
	FetchedAt    time.Time
}

type Client struct {
	baseURL    string
	username   string
	perPage    int
	userAgent  string
	httpClient *http.Client
}

func NewClient(username string) *Client {
	return NewClientWithBase(DefaultBaseURL, username)
}

func NewClientWithBase(baseURL, username string) *Client {
	return &Client{
		baseURL:   baseURL,
		username:  username,
		perPage:   MaxPerPage,
		userAgent: "folio/1.0 (portfolio)",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// WithPerPage caps the repository page size; values outside 1..100 are
// clamped.
func (c *Client) WithPerPage(n int) *Client {
	c.perPage = min(max(n, 1), MaxPerPage)
	return c
}

// WithTimeout bounds each request; a timeout is reported as a fetch failure.
func (c *Client) WithTimeout(d time.Duration) *Client {
	if d > 0 {
		c.httpClient.Timeout = d
	}
	return c
}

func (c *Client) Username() string { return c.username }

// Fetch requests the profile and then the repository list. Either failure
// aborts the whole fetch: there is no partial snapshot and no retry.
func (c *Client) Fetch(ctx context.Context) (*Snapshot, error) {
	profile, err := c.FetchProfile(ctx)
	if err != nil {
		return nil, err
	}
	repos, err := c.FetchRepositories(ctx)
	if err != nil {
		return nil, err
	}
	return &Snapshot{Profile: profile, Repositories: repos, FetchedAt: time.Now()}, nil
}

func (c *Client) FetchProfile(ctx context.Context) (*catalog.Profile, error) {
	path := "/users/" + url.PathEscape(c.username)
	user, err := getJSON[apiUser](ctx, c, "fetch profile", path)
	if err != nil {
		return nil, err
	}
	return user.toModel(), nil
}

// FetchRepositories returns a single page of at most perPage repositories in
// the order GitHub lists them.
func (c *Client) FetchRepositories(ctx context.Context) ([]catalog.Repository, error) {
	path := fmt.Sprintf("/users/%s/repos?per_page=%d", url.PathEscape(c.username), c.perPage)
	raw, err := getJSON[[]apiRepo](ctx, c, "fetch repositories", path)
	if err != nil {
		return nil, err
	}
	repos := make([]catalog.Repository, 0, len(raw))
	for i := range raw {
		repos = append(repos, raw[i].toModel())
	}
	return repos, nil
}

func getJSON[T any](ctx context.Context, c *Client, op, path string) (T, error) {
	var zero T

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return zero, &FetchError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", c.userAgent)

	log.Printf("GitHub: GET %s", path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zero, &FetchError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zero, &FetchError{Op: op, StatusCode: resp.StatusCode, Err: errors.New(resp.Status)}
	}

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return zero, &FetchError{Op: op, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return out, nil
}
