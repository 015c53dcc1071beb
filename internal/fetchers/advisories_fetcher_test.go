package fetchers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Observatory Announcements</title>
    <item>
      <title>Revised solution for the M4.5 event near Thebes</title>
      <link>http://example.org/announcements/1</link>
      <pubDate>Fri, 01 Mar 2024 13:00:00 +0200</pubDate>
    </item>
    <item>
      <title>Station NOA3 back online</title>
      <link>http://example.org/announcements/2</link>
      <pubDate>Thu, 29 Feb 2024 09:30:00 +0200</pubDate>
    </item>
    <item>
      <title>Scheduled maintenance window</title>
      <link>http://example.org/announcements/3</link>
      <pubDate>Wed, 28 Feb 2024 08:00:00 +0200</pubDate>
    </item>
  </channel>
</rss>`

func TestFetchAdvisories(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleRSS))
	}))
	defer server.Close()

	fetcher := NewAdvisoryFetcher(5 * time.Second)
	advisories, err := fetcher.FetchAdvisories(context.Background(), server.URL, 0)
	if err != nil {
		t.Fatalf("FetchAdvisories failed: %v", err)
	}

	if len(advisories) != 3 {
		t.Fatalf("Expected 3 advisories, got %d", len(advisories))
	}
	if advisories[0].Title != "Revised solution for the M4.5 event near Thebes" {
		t.Errorf("Unexpected first advisory title: %q", advisories[0].Title)
	}
	if advisories[0].Published.IsZero() {
		t.Error("Expected parsed publication time")
	}
}

func TestFetchAdvisoriesLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleRSS))
	}))
	defer server.Close()

	fetcher := NewAdvisoryFetcher(5 * time.Second)
	advisories, err := fetcher.FetchAdvisories(context.Background(), server.URL, 2)
	if err != nil {
		t.Fatalf("FetchAdvisories failed: %v", err)
	}
	if len(advisories) != 2 {
		t.Errorf("Expected limit of 2 advisories, got %d", len(advisories))
	}
}

func TestFetchAdvisoriesDisabled(t *testing.T) {
	fetcher := NewAdvisoryFetcher(5 * time.Second)
	advisories, err := fetcher.FetchAdvisories(context.Background(), "", 5)
	if err != nil {
		t.Fatalf("Empty URL should disable advisories, not fail: %v", err)
	}
	if advisories != nil {
		t.Errorf("Expected nil advisories for empty URL, got %v", advisories)
	}
}

func TestFetchAdvisoriesBadFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not xml"))
	}))
	defer server.Close()

	fetcher := NewAdvisoryFetcher(5 * time.Second)
	if _, err := fetcher.FetchAdvisories(context.Background(), server.URL, 0); err == nil {
		t.Error("Expected parse error for malformed feed")
	}
}
