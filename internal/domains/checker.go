// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package domains

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/net/idna"

	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
)

//go:generate mockgen -source=checker.go -destination=../mock/domains_mock.go -package=mock

// ListFetcher downloads the raw text of a remote domain list.
type ListFetcher interface {
	FetchList(ctx context.Context, rawURL string) (string, error)
}

// State is the outcome of the last host check.
type State int

const (
	StateNotUsed State = iota - 1
	StateInProgress
	StateEncounteredError
	StateDomainMatched
	StateDomainDidntMatch
)

var stateNames = map[State]string{
	StateNotUsed:          "not_used",
	StateInProgress:       "in_progress",
	StateEncounteredError: "encountered_error",
	StateDomainMatched:    "domain_matched",
	StateDomainDidntMatch: "domain_didnt_match",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "state(" + strconv.Itoa(int(s)) + ")"
}

// MarshalText renders the state by name in JSON responses.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result describes a single host check.
type Result struct {
	State State  `json:"state"`
	URL   string `json:"url"`
	Host  string `json:"host,omitempty"`
}

// CheckerOption configures a [Checker].
type CheckerOption func(*Checker)

// WithRemoteList makes Refresh download additional domains from rawURL,
// splitting the body on any of separators.
func WithRemoteList(rawURL string, fetcher ListFetcher, separators []string) CheckerOption {
	return func(c *Checker) {
		c.remoteURL = rawURL
		c.fetcher = fetcher
		c.separators = slices.Clone(separators)
	}
}

// WithCacheBuster replaces the random source of the r query parameter.
func WithCacheBuster(next func() int) CheckerOption {
	return func(c *Checker) {
		c.cacheBuster = next
	}
}

// Checker decides whether a page URL is served from an accepted host.
// The accepted set is the default domains plus, after Refresh, the
// domains downloaded from the remote list.
type Checker struct {
	defaults    []string
	remoteURL   string
	separators  []string
	fetcher     ListFetcher
	cacheBuster func() int

	mu          sync.RWMutex
	state       State
	downloadURL string
	downloaded  []string
	accepted    map[string]struct{}
}

// NewChecker returns a checker accepting defaults. Call Refresh before the
// first Check when a remote list is configured.
func NewChecker(defaults []string, opts ...CheckerOption) *Checker {
	c := &Checker{
		defaults:    slices.Clone(defaults),
		separators:  []string{"\n", ","},
		cacheBuster: func() int { return rand.IntN(math.MaxInt32) },
		state:       StateNotUsed,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.accepted = uniqueDomains(c.defaults, nil)
	return c
}

// Refresh re-downloads the remote list, if configured, and rebuilds the
// accepted set. A failed download leaves only the default domains accepted
// and is returned wrapped in [ErrRemoteList].
func (c *Checker) Refresh(ctx context.Context) error {
	log := logger.FromContext(ctx)

	c.mu.Lock()
	c.state = StateInProgress
	c.downloadURL = ""
	c.downloaded = nil
	c.mu.Unlock()

	var (
		downloadURL string
		downloaded  []string
		fetchErr    error
	)
	if c.remoteURL != "" && c.fetcher != nil {
		downloadURL, fetchErr = c.cacheBustedURL()
		if fetchErr == nil {
			var body string
			body, fetchErr = c.fetcher.FetchList(ctx, downloadURL)
			if fetchErr == nil {
				downloaded = splitList(body, c.separators)
			}
		}
		if fetchErr != nil {
			fetchErr = fmt.Errorf("%w: %w", ErrRemoteList, fetchErr)
			log.Warn().Err(fetchErr).Str("func", "Checker.Refresh").Str("url", c.remoteURL).Msg("remote domain list unavailable")
		}
	}

	accepted := uniqueDomains(c.defaults, downloaded)

	c.mu.Lock()
	c.downloadURL = downloadURL
	c.downloaded = downloaded
	c.accepted = accepted
	c.state = StateNotUsed
	c.mu.Unlock()

	log.Debug().Str("func", "Checker.Refresh").Int("accepted", len(accepted)).Int("downloaded", len(downloaded)).Msg("domain list refreshed")
	return fetchErr
}

// Check evaluates pageURL against the accepted set and records the result
// as the current state.
//
// An empty accepted set yields [StateNotUsed]. A URL that does not parse as
// an absolute URL yields [StateEncounteredError]. file URLs always match.
func (c *Checker) Check(pageURL string) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	res := Result{URL: pageURL, State: StateNotUsed}
	if len(c.accepted) > 0 {
		res.State, res.Host = matchHost(pageURL, c.accepted)
	}

	c.state = res.State
	return res
}

// Run refreshes the accepted set and checks pageURL. A failed remote
// download is logged by Refresh and does not fail the check.
func (c *Checker) Run(ctx context.Context, pageURL string) Result {
	_ = c.Refresh(ctx)
	return c.Check(pageURL)
}

// CurrentState returns the state of the last Refresh or Check.
func (c *Checker) CurrentState() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// IsDomainListDownloaded reports whether the last Refresh fetched a remote list.
func (c *Checker) IsDomainListDownloaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.downloaded != nil && c.downloadURL != ""
}

// DownloadURL returns the cache-busted URL used by the last Refresh.
func (c *Checker) DownloadURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.downloadURL
}

// AcceptedDomains returns the accepted set in sorted order.
func (c *Checker) AcceptedDomains() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, 0, len(c.accepted))
	for d := range c.accepted {
		out = append(out, d)
	}
	slices.Sort(out)
	return out
}

func (c *Checker) cacheBustedURL() (string, error) {
	u, err := url.Parse(c.remoteURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("r", strconv.Itoa(c.cacheBuster()))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func matchHost(pageURL string, accepted map[string]struct{}) (State, string) {
	u, err := url.Parse(pageURL)
	if err != nil || !u.IsAbs() {
		return StateEncounteredError, ""
	}

	host := normalizeHost(u.Hostname())
	if u.Scheme == "file" {
		return StateDomainMatched, host
	}
	if host == "" {
		return StateEncounteredError, ""
	}
	if _, ok := accepted[host]; ok {
		return StateDomainMatched, host
	}
	return StateDomainDidntMatch, host
}

// splitList splits body on every separator, trimming whitespace and
// dropping empty pieces.
func splitList(body string, separators []string) []string {
	pieces := []string{body}
	for _, sep := range separators {
		if sep == "" {
			continue
		}
		var next []string
		for _, p := range pieces {
			next = append(next, strings.Split(p, sep)...)
		}
		pieces = next
	}

	out := make([]string, 0, len(pieces))
	for _, p := range pieces {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func uniqueDomains(lists ...[]string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, list := range lists {
		for _, d := range list {
			if d = normalizeHost(d); d != "" {
				set[d] = struct{}{}
			}
		}
	}
	return set
}

// normalizeHost lowercases host and converts internationalized names to
// their ASCII (punycode) form, so list entries and page hosts compare in
// one spelling. Names idna rejects are only lowercased.
func normalizeHost(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	if ascii, err := idna.Lookup.ToASCII(host); err == nil {
		return ascii
	}
	return host
}
