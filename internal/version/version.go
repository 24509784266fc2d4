// Package version provides version comparison and GitHub release
// lookup for the update check.
package version

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the GitHub API endpoint.
	DefaultBaseURL = "https://api.github.com"
	// DefaultTimeout bounds the release lookup.
	DefaultTimeout = 30 * time.Second

	maxResponseBodySize = 64 * 1024
)

// ErrReleaseLookupFailed indicates the GitHub API request failed.
var ErrReleaseLookupFailed = errors.New("release lookup failed")

// Release is the subset of a GitHub release the update check reads.
type Release struct {
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	Prerelease  bool      `json:"prerelease"`
	PublishedAt time.Time `json:"published_at"`
}

// Info compares the running version with the latest release.
type Info struct {
	Current string
	Latest  string
	IsNewer bool
}

// Client fetches release information from GitHub.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a release client. A custom base URL (e.g. an
// httptest server) may be passed for testing; empty means GitHub.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		userAgent:  fmt.Sprintf("signet (%s/%s)", runtime.GOOS, runtime.GOARCH),
	}
}

// LatestRelease fetches the latest release of owner/repo.
func (c *Client) LatestRelease(ctx context.Context, owner, repo string) (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.baseURL, owner, repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReleaseLookupFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrReleaseLookupFailed, resp.StatusCode)
	}

	var release Release
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBodySize)).Decode(&release); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &release, nil
}

// Check compares the running version against the latest release.
func (c *Client) Check(ctx context.Context, owner, repo, current string) (*Info, error) {
	release, err := c.LatestRelease(ctx, owner, repo)
	if err != nil {
		return nil, err
	}

	return &Info{
		Current: current,
		Latest:  release.TagName,
		IsNewer: IsNewer(current, release.TagName),
	}, nil
}

// IsNewer reports whether latest is a newer release than current.
// Development builds ("dev", empty, or a commit hash) always count as
// older than any release.
func IsNewer(current, latest string) bool {
	return Compare(latest, current) > 0
}

// Compare orders two version strings: 1 if a > b, -1 if a < b, 0 if
// equal.
func Compare(a, b string) int {
	a = strings.TrimPrefix(strings.TrimSpace(a), "v")
	b = strings.TrimPrefix(strings.TrimSpace(b), "v")

	aDev := isDevVersion(a)
	bDev := isDevVersion(b)
	switch {
	case aDev && bDev:
		return 0
	case aDev:
		return -1
	case bDev:
		return 1
	}

	av := parseParts(a)
	bv := parseParts(b)
	for i := 0; i < 3; i++ {
		var x, y int
		if i < len(av) {
			x = av[i]
		}
		if i < len(bv) {
			y = bv[i]
		}
		if x != y {
			if x > y {
				return 1
			}
			return -1
		}
	}
	return 0
}

func isDevVersion(v string) bool {
	if v == "" || v == "dev" {
		return true
	}
	// Commit hashes: 7-40 hex chars, no dots.
	if strings.Contains(v, ".") || len(v) < 7 || len(v) > 40 {
		return false
	}
	for _, r := range v {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}

// parseParts parses major.minor.patch, dropping suffixes like -rc1.
func parseParts(v string) []int {
	if idx := strings.IndexAny(v, "-+"); idx != -1 {
		v = v[:idx]
	}

	parts := strings.Split(v, ".")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			break
		}
		out = append(out, n)
	}
	return out
}
