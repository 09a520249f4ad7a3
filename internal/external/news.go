package external

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const (
	newsDefaultLimit = 20
	newsMaxLimit     = 50
	newsRSSTimeout   = 15 * time.Second
)

// DefaultNewsQuery targets World Cup 2026 coverage and excludes the
// usual off-topic "World Cup" noise (cricket, youth tournaments, rugby).
const DefaultNewsQuery = `("FIFA World Cup 2026" OR "World Cup 2026" OR "WC 2026") ` +
	`-cricket -icc -u19 -"u-19" -"under-19" -"under 19" -rugby -t20 -ipl`

// badTitleRe is a last-line filter for items the query exclusions miss.
var badTitleRe = regexp.MustCompile(`(?i)(cricket|icc|u-?19|under\s*19|rugby|t20|ipl)`)

// NewsItem is one shaped RSS item.
type NewsItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Source  string `json:"source,omitempty"`
	PubDate string `json:"pubDate,omitempty"`
}

// NewsResult is the news endpoint payload.
type NewsResult struct {
	Query     string     `json:"query"`
	Items     []NewsItem `json:"items"`
	FetchedAt string     `json:"fetchedAt"`
	Edition   string     `json:"edition"`
}

// rssFeed is the minimal XML structure for Google News RSS.
type rssFeed struct {
	XMLName xml.Name  `xml:"rss"`
	Items   []rssItem `xml:"channel>item"`
}

type rssItem struct {
	Title   string    `xml:"title"`
	Link    string    `xml:"link"`
	PubDate string    `xml:"pubDate"`
	Source  rssSource `xml:"source"`
}

type rssSource struct {
	Name string `xml:",chardata"`
}

// NewsService fetches and shapes the Google News RSS feed.
type NewsService struct {
	edition    string // "GB" or "US"
	httpClient *http.Client
}

// NewNewsService creates a news client for the given Google News edition.
func NewNewsService(edition string) *NewsService {
	if edition == "" {
		edition = "GB"
	}
	return &NewsService{
		edition: edition,
		httpClient: &http.Client{
			Timeout: newsRSSTimeout,
		},
	}
}

func (s *NewsService) feedURL(query string) string {
	if s.edition == "US" {
		return fmt.Sprintf(
			"https://news.google.com/rss/search?q=%s&hl=en-US&gl=US&ceid=US:en",
			url.QueryEscape(query))
	}
	return fmt.Sprintf(
		"https://news.google.com/rss/search?q=%s&hl=en-GB&gl=GB&ceid=GB:en",
		url.QueryEscape(query))
}

// Edition returns the label reported in responses, e.g. "en-GB / GB".
func (s *NewsService) Edition() string {
	return "en-" + s.edition + " / " + s.edition
}

// Search fetches the feed for query (the default World Cup query when
// empty) and returns up to limit shaped items. limit is clamped to
// [1, 50]; 0 means the default of 20.
func (s *NewsService) Search(ctx context.Context, query string, limit int) (*NewsResult, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		q = DefaultNewsQuery
	}
	if limit < 1 {
		limit = newsDefaultLimit
	}
	if limit > newsMaxLimit {
		limit = newsMaxLimit
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.feedURL(q), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; WorldCupHub/1.0; +https://worldcuphub.example)")
	req.Header.Set("Accept", "application/rss+xml, application/xml, text/xml")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("RSS fetch error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("RSS HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("RSS read error: %w", err)
	}

	items, err := ParseNewsFeed(body, limit)
	if err != nil {
		return nil, err
	}

	return &NewsResult{
		Query:     q,
		Items:     items,
		FetchedAt: time.Now().UTC().Format(time.RFC3339),
		Edition:   s.Edition(),
	}, nil
}

// ParseNewsFeed shapes raw RSS XML into news items: drops items without a
// title or link, filters off-topic titles, truncates to limit.
func ParseNewsFeed(raw []byte, limit int) ([]NewsItem, error) {
	var feed rssFeed
	if err := xml.Unmarshal(raw, &feed); err != nil {
		return nil, fmt.Errorf("RSS parse error: %w", err)
	}

	items := make([]NewsItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		title := strings.TrimSpace(it.Title)
		link := strings.TrimSpace(it.Link)
		if title == "" || link == "" {
			continue
		}
		if badTitleRe.MatchString(title) {
			continue
		}
		items = append(items, NewsItem{
			Title:   title,
			Link:    link,
			Source:  strings.TrimSpace(it.Source.Name),
			PubDate: strings.TrimSpace(it.PubDate),
		})
		if len(items) >= limit {
			break
		}
	}
	return items, nil
}
