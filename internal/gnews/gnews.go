// Package gnews implements the pipeline's Searcher against Google News RSS
// search. One query fetches one feed; the feed's items become raw hits.
package gnews

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"github.com/minafoods/newsclip/internal/config"
	"github.com/minafoods/newsclip/internal/pipeline"
	"github.com/minafoods/newsclip/internal/ratelimit"
	"github.com/minafoods/newsclip/internal/retry"
)

const defaultBaseURL = "https://news.google.com/rss/search"

type Client struct {
	baseURL    string
	lang       string
	country    string
	maxResults int
	parser     *gofeed.Parser
	throttle   *ratelimit.Throttle
	retry      retry.RetryConfig
}

func New(cfg *config.Config) *Client {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: cfg.RequestTimeout}
	parser.UserAgent = "newsclip/1.0"

	return &Client{
		baseURL:    defaultBaseURL,
		lang:       cfg.Language,
		country:    cfg.Country,
		maxResults: cfg.MaxResults,
		parser:     parser,
		throttle:   ratelimit.New(cfg.QueryInterval),
		retry: retry.RetryConfig{
			MaxAttempts: cfg.RetryAttempts,
			Delay:       cfg.RetryDelay,
		},
	}
}

// Search fetches and parses one search feed for the given query.
func (c *Client) Search(ctx context.Context, query string) ([]pipeline.Hit, error) {
	if err := c.throttle.Wait(ctx); err != nil {
		return nil, err
	}

	feedURL := c.searchURL(query)

	var feed *gofeed.Feed
	err := retry.WithRetry(ctx, c.retry, func() error {
		f, err := c.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			return err
		}
		feed = f
		return nil
	})
	if err != nil {
		return nil, err
	}

	hits := make([]pipeline.Hit, 0, len(feed.Items))
	for _, item := range feed.Items {
		if len(hits) >= c.maxResults {
			break
		}
		title, publisher := splitPublisher(item.Title)
		if publisher == "" {
			publisher = hostOf(item.Link)
		}
		hits = append(hits, pipeline.Hit{
			Title:       title,
			Description: stripHTML(item.Description),
			Publisher:   publisher,
			URL:         item.Link,
			Published:   item.Published,
		})
	}
	return hits, nil
}

func (c *Client) searchURL(query string) string {
	v := url.Values{}
	v.Set("q", query)
	v.Set("hl", c.lang)
	v.Set("gl", c.country)
	v.Set("ceid", c.country+":"+c.lang)
	return c.baseURL + "?" + v.Encode()
}

// splitPublisher separates the " - Publisher" suffix Google News appends to
// item titles. Titles without the suffix come back with an empty publisher.
func splitPublisher(title string) (string, string) {
	i := strings.LastIndex(title, " - ")
	if i < 0 {
		return title, ""
	}
	return strings.TrimSpace(title[:i]), strings.TrimSpace(title[i+3:])
}

func hostOf(link string) string {
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Host), "www.")
}

// stripHTML flattens the HTML snippet Google News puts in item descriptions
// down to plain text. Unparseable markup is returned as-is.
func stripHTML(s string) string {
	text := s
	if strings.Contains(s, "<") {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(s)); err == nil {
			text = doc.Text()
		}
	}
	return strings.Join(strings.Fields(text), " ")
}
