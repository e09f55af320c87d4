package weather

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/gnowak/dashboard/config"
	"github.com/gnowak/dashboard/upstream"
)

// feedLabel prefixes upstream failure messages for this feed.
const feedLabel = "EnvCan"

// Service fetches and normalizes the battleboard feed for a region. It
// holds no mutable state; concurrent calls are independent.
type Service struct {
	cfg    config.WeatherConfig
	client *http.Client
}

// NewService creates a weather alerts service. A nil client gets a default
// one bounded by the configured timeout.
func NewService(cfg config.WeatherConfig, client *http.Client) *Service {
	if client == nil {
		client = upstream.NewClient(cfg.TimeoutMS)
	}
	return &Service{cfg: cfg, client: client}
}

// ResolveRegion falls back to the configured default when region is blank.
func (s *Service) ResolveRegion(region string) string {
	region = strings.TrimSpace(region)
	if region == "" {
		return s.cfg.DefaultRegion
	}
	return region
}

// Entries fetches and normalizes the feed for region. The result is always
// a non-nil slice.
func (s *Service) Entries(ctx context.Context, region string) ([]Entry, error) {
	feedURL := fmt.Sprintf(s.cfg.FeedURLTemplate, region)
	body, err := upstream.Fetch(ctx, s.client, feedLabel, feedURL, s.cfg.UserAgent)
	if err != nil {
		return nil, err
	}

	feed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return nil, &upstream.ParseError{Err: err}
	}

	entries := make([]Entry, 0, len(feed.Items))
	for _, item := range feed.Items {
		entries = append(entries, mapEntry(item))
	}
	return entries, nil
}

func mapEntry(item *gofeed.Item) Entry {
	e := Entry{
		ID:      firstNonEmpty(item.GUID, item.Link, item.Updated),
		Title:   strings.TrimSpace(item.Title),
		Summary: strings.TrimSpace(summaryText(item)),
	}
	if u := firstNonEmpty(item.Updated, item.Published); u != "" {
		e.Updated = &u
	}
	if item.Link != "" {
		link := item.Link
		e.Link = &link
	}
	return e
}

// summaryText prefers the plain summary node and falls back to the text
// portion of a mixed-content node.
func summaryText(item *gofeed.Item) string {
	if item.Description != "" {
		return item.Description
	}
	return item.Content
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
