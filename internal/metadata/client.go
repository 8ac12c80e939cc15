// Package metadata implements a release lookup source backed by an HTTP
// metadata database.
package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vmunix/scener/pkg/media"
	"github.com/vmunix/scener/pkg/release"
)

// Client queries a metadata database for releases of a media item.
// It implements reconcile.Source.
type Client struct {
	name       string
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      *Cache
	log        *slog.Logger
}

// NewClient creates a client for one metadata source.
func NewClient(name, baseURL, apiKey string, log *slog.Logger) *Client {
	var clientLog *slog.Logger
	if log != nil {
		clientLog = log.With("component", "metadata", "source", name)
	} else {
		clientLog = slog.Default()
	}
	return &Client{
		name:    name,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: clientLog,
	}
}

// WithCache attaches a lookup cache for series resolution.
func (c *Client) WithCache(cache *Cache) *Client {
	c.cache = cache
	return c
}

// Name returns the source name used in logs and provenance.
func (c *Client) Name() string { return c.name }

type seriesListing struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type releaseListing struct {
	Name  string   `json:"name"`
	Tags  []string `json:"tags"`
	Group string   `json:"group"`
}

// Query finds the series listing matching the item's series title, then
// retrieves the release listings for the episode.
func (c *Client) Query(ctx context.Context, item media.Item) ([]*release.Release, error) {
	e, ok := item.(*media.Episode)
	if !ok || e.Series == nil {
		return nil, fmt.Errorf("metadata source %s: unsupported media %T", c.name, item)
	}

	listing, err := c.findSeries(ctx, e.Series.Name)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		c.log.Debug("no series listing found", "series", e.Series.Name)
		return nil, nil
	}

	return c.listReleases(ctx, listing.ID, e)
}

// findSeries fetches candidate listings and fuzzy-matches the wanted
// title against them. Weak matches are discarded. Resolved listings are
// cached by source and title; unresolved lookups are not, so a listing
// added upstream is picked up on the next run.
func (c *Client) findSeries(ctx context.Context, title string) (*seriesListing, error) {
	cacheKey := c.name + ":series:" + strings.ToLower(title)
	if c.cache != nil {
		if raw, ok := c.cache.Get(ctx, cacheKey); ok {
			var cached seriesListing
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	q := url.Values{}
	q.Set("q", release.NormalizeSearchQuery(title))

	var listings []seriesListing
	if err := c.get(ctx, "/series", q, &listings); err != nil {
		return nil, fmt.Errorf("find series %q: %w", title, err)
	}
	if len(listings) == 0 {
		return nil, nil
	}

	titles := make([]string, len(listings))
	for i, l := range listings {
		titles[i] = l.Title
	}
	best := release.MatchTitle(title, titles)
	if best.Confidence < release.ConfidenceMedium {
		c.log.Debug("series match too weak", "series", title, "best", best.Title, "score", best.Score)
		return nil, nil
	}
	for i, l := range listings {
		if titles[i] == best.Title {
			if c.cache != nil {
				if raw, err := json.Marshal(l); err == nil {
					if err := c.cache.Set(ctx, cacheKey, raw); err != nil {
						c.log.Debug("cache series listing failed", "error", err)
					}
				}
			}
			return &listings[i], nil
		}
	}
	return nil, nil
}

func (c *Client) listReleases(ctx context.Context, seriesID int64, e *media.Episode) ([]*release.Release, error) {
	q := url.Values{}
	if s := e.Season(); s != nil && s.IsNumbered() {
		q.Set("season", strconv.Itoa(s.Number))
	}
	if e.IsNumberedInSeason() {
		q.Set("episode", strconv.Itoa(e.NumInSeason))
	} else if e.IsNumberedInSeries() {
		q.Set("episode", strconv.Itoa(e.NumInSeries))
	}
	if e.IsDated() {
		q.Set("date", fmt.Sprintf("%04d-%02d-%02d", e.Date.Year, e.Date.Month, e.Date.Day))
	}

	var listings []releaseListing
	path := fmt.Sprintf("/series/%d/releases", seriesID)
	if err := c.get(ctx, path, q, &listings); err != nil {
		return nil, fmt.Errorf("list releases: %w", err)
	}

	rels := make([]*release.Release, 0, len(listings))
	for _, l := range listings {
		r := release.New(e)
		r.Name = l.Name
		r.Group = release.Group(l.Group)
		r.Source = c.name
		for _, t := range l.Tags {
			r.Tags = append(r.Tags, release.Tag(t))
		}
		rels = append(rels, r)
	}
	c.log.Debug("retrieved releases", "series_id", seriesID, "count", len(rels))
	return rels, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return err
	}
	if c.apiKey != "" {
		q.Set("apikey", c.apiKey)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
