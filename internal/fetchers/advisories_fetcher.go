package fetchers

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mmcdole/gofeed"

	"github.com/M1ts0sGitHub/Earthquakes/internal/models"
)

// AdvisoryFetcher retrieves observatory announcements from an RSS feed.
// The advisories only decorate the report sidebar; a failure here never
// blocks catalog rendering.
type AdvisoryFetcher struct {
	client *resty.Client
	parser *gofeed.Parser
}

// NewAdvisoryFetcher creates an advisory fetcher.
func NewAdvisoryFetcher(timeout time.Duration) *AdvisoryFetcher {
	client := resty.New()
	client.SetTimeout(timeout)

	return &AdvisoryFetcher{
		client: client,
		parser: gofeed.NewParser(),
	}
}

// FetchAdvisories fetches and parses the RSS feed, returning at most limit
// items, newest first as published by the feed. An empty URL disables the
// advisories feature and returns no items.
func (f *AdvisoryFetcher) FetchAdvisories(ctx context.Context, url string, limit int) ([]models.Advisory, error) {
	if url == "" {
		return nil, nil
	}

	resp, err := f.client.R().
		SetContext(ctx).
		Get(url)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch advisories feed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("advisories feed returned status %d", resp.StatusCode())
	}

	feed, err := f.parser.ParseString(string(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse advisories feed: %w", err)
	}

	advisories := make([]models.Advisory, 0, len(feed.Items))
	for _, item := range feed.Items {
		if limit > 0 && len(advisories) >= limit {
			break
		}

		advisory := models.Advisory{
			Title: item.Title,
			Link:  item.Link,
		}
		if item.PublishedParsed != nil {
			advisory.Published = *item.PublishedParsed
		}
		advisories = append(advisories, advisory)
	}

	return advisories, nil
}
