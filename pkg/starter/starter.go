package starter

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/markusmobius/go-trafilatura"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
)

const (
	itemsPerFeed  = 3
	snippetLength = 200
	minSnippet    = 40
)

// Source keeps a rotating pool of conversation starter topics drawn from
// news feeds. Refreshing happens in the background, Topic hands out a random
// entry and never touches the network.
type Source struct {
	feeds     []string
	interval  time.Duration
	userAgent string
	client    *http.Client
	sanitizer *bluemonday.Policy
	randFn    func(n int) int

	mu     sync.RWMutex
	topics []string
}

// Params holds Source configuration
type Params struct {
	Feeds           []string
	RefreshInterval time.Duration
	Timeout         time.Duration
	UserAgent       string
	RandFn          func(n int) int // defaults to rand.Intn
}

// NewSource creates a starter source
func NewSource(params Params) *Source {
	if params.RandFn == nil {
		params.RandFn = rand.Intn
	}
	if params.RefreshInterval == 0 {
		params.RefreshInterval = time.Hour
	}
	timeout := params.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Source{
		feeds:     params.Feeds,
		interval:  params.RefreshInterval,
		userAgent: params.UserAgent,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		sanitizer: bluemonday.StrictPolicy(),
		randFn:    params.RandFn,
	}
}

// Run refreshes the topic pool until the context is canceled
func (s *Source) Run(ctx context.Context) error {
	s.Refresh(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Refresh(ctx)
		}
	}
}

// Topic returns a random starter topic, false when the pool is empty
func (s *Source) Topic(_ context.Context) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.topics) == 0 {
		return "", false
	}
	return s.topics[s.randFn(len(s.topics))], true
}

// Refresh re-fetches all configured feeds and rebuilds the pool. Feeds that
// fail are skipped, a partial pool beats an empty one.
func (s *Source) Refresh(ctx context.Context) {
	var topics []string
	for _, url := range s.feeds {
		items, err := s.fetchFeed(ctx, url)
		if err != nil {
			lgr.Printf("[WARN] starter feed %s failed: %v", url, err)
			continue
		}
		topics = append(topics, items...)
	}

	if len(topics) == 0 && len(s.feeds) > 0 {
		lgr.Printf("[WARN] starter refresh produced no topics, keeping previous pool")
		return
	}

	s.mu.Lock()
	s.topics = topics
	s.mu.Unlock()
	lgr.Printf("[INFO] starter pool refreshed, %d topics from %d feeds", len(topics), len(s.feeds))
}

// fetchFeed parses one feed and renders its top items as topic lines
func (s *Source) fetchFeed(ctx context.Context, url string) ([]string, error) {
	body, err := s.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	feed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	topics := make([]string, 0, itemsPerFeed)
	for i, item := range feed.Items {
		if i >= itemsPerFeed {
			break
		}
		if topic := s.renderTopic(ctx, item); topic != "" {
			topics = append(topics, topic)
		}
	}
	return topics, nil
}

// renderTopic builds "title: snippet" from a feed item, pulling the article
// body when the feed description is too thin to talk about
func (s *Source) renderTopic(ctx context.Context, item *gofeed.Item) string {
	title := strings.TrimSpace(s.sanitizer.Sanitize(item.Title))
	if title == "" {
		return ""
	}

	snippet := strings.TrimSpace(s.sanitizer.Sanitize(item.Description))
	if len(snippet) < minSnippet && item.Link != "" {
		if extracted, err := s.extract(ctx, item.Link); err == nil {
			snippet = extracted
		} else {
			lgr.Printf("[DEBUG] article extraction failed for %s: %v", item.Link, err)
		}
	}
	snippet = truncate(snippet, snippetLength)

	if snippet == "" {
		return title
	}
	return title + ": " + snippet
}

// extract pulls readable text from the article page
func (s *Source) extract(ctx context.Context, link string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch article: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	result, err := trafilatura.Extract(resp.Body, trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		Deduplicate:     true,
	})
	if err != nil {
		return "", fmt.Errorf("extract content: %w", err)
	}
	if result == nil || result.ContentText == "" {
		return "", fmt.Errorf("no text content extracted")
	}
	return strings.TrimSpace(result.ContentText), nil
}

// fetch retrieves feed content
func (s *Source) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	// look like a regular reader, some feeds reject obvious bots
	req.Header.Set("Accept", "application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,*/*;q=0.5")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return resp.Body, nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
