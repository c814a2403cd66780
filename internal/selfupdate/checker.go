// Package selfupdate checks GitHub releases for a newer CLI version.
package selfupdate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

var ErrDevBuild = errors.New("cannot compare versions of a development build")

const (
	defaultOwner      = "qazprep"
	defaultRepo       = "qazprep"
	defaultAPIBaseURL = "https://api.github.com"
)

// Checker queries the release feed of the project repository.
type Checker struct {
	owner      string
	repo       string
	apiBaseURL string
	client     *http.Client
}

// Option configures a Checker.
type Option func(*Checker)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) { c.client.Timeout = d }
}

// WithAPIBaseURL overrides the GitHub API base URL (used in tests).
func WithAPIBaseURL(u string) Option {
	return func(c *Checker) { c.apiBaseURL = strings.TrimRight(u, "/") }
}

// NewChecker creates a Checker with defaults.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		owner:      defaultOwner,
		repo:       defaultRepo,
		apiBaseURL: defaultAPIBaseURL,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckInput holds the currently running version.
type CheckInput struct {
	Version string
}

// CheckResult reports whether a newer release exists.
type CheckResult struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
	ReleaseURL      string
}

// Check fetches the latest release tag and compares it to the running
// version with semantic-version ordering.
func (c *Checker) Check(ctx context.Context, input *CheckInput) (*CheckResult, error) {
	current := canonical(input.Version)
	if !semver.IsValid(current) {
		return nil, ErrDevBuild
	}

	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.apiBaseURL, c.owner, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	var release struct {
		TagName string `json:"tag_name"`
		HTMLURL string `json:"html_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}

	latest := canonical(release.TagName)
	if !semver.IsValid(latest) {
		return nil, fmt.Errorf("release tag %q is not a valid version", release.TagName)
	}

	return &CheckResult{
		CurrentVersion:  input.Version,
		LatestVersion:   release.TagName,
		UpdateAvailable: semver.Compare(latest, current) > 0,
		ReleaseURL:      release.HTMLURL,
	}, nil
}

// canonical normalizes a version string to the "vX.Y.Z" form semver wants.
func canonical(v string) string {
	v = strings.TrimSpace(v)
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
