package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"golang-news-impact/internal/analyzer/dto"
	"golang-news-impact/pkg/common"
	"golang-news-impact/pkg/logger"
	"golang-news-impact/pkg/utils"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/mauidude/go-readability"
	"github.com/mmcdole/gofeed"
)

// FeedSource turns the items of an RSS or Atom feed into articles.
// location may be an http(s) URL or a local file path.
type FeedSource struct {
	location string
	maxItems int
	timeout  time.Duration
	client   *http.Client
	logger   *logger.Logger
}

// NewFeedSource creates a new FeedSource.
func NewFeedSource(location string, maxItems int, timeout time.Duration, logger *logger.Logger) *FeedSource {
	return &FeedSource{
		location: location,
		maxItems: maxItems,
		timeout:  timeout,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

// Name returns the source name.
func (s *FeedSource) Name() string {
	return common.SourceFeed
}

// Fetch parses the feed and converts at most maxItems items.
func (s *FeedSource) Fetch(ctx context.Context) ([]dto.ArticleRequest, error) {
	feed, err := s.parse(ctx)
	if err != nil {
		return nil, err
	}

	items := feed.Items
	if s.maxItems > 0 && len(items) > s.maxItems {
		items = items[:s.maxItems]
	}

	articles := make([]dto.ArticleRequest, 0, len(items))
	for _, item := range items {
		articles = append(articles, s.itemToArticle(ctx, item))
	}
	return articles, nil
}

func (s *FeedSource) parse(ctx context.Context) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()

	if isHTTPURL(s.location) {
		if s.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}
		feed, err := fp.ParseURLWithContext(s.location, ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to parse feed %s: %w", s.location, err)
		}
		return feed, nil
	}

	f, err := os.Open(s.location)
	if err != nil {
		return nil, fmt.Errorf("failed to open feed file: %w", err)
	}
	defer f.Close()

	feed, err := fp.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed file %s: %w", s.location, err)
	}
	return feed, nil
}

func (s *FeedSource) itemToArticle(ctx context.Context, item *gofeed.Item) dto.ArticleRequest {
	var publishedAt string
	switch {
	case item.PublishedParsed != nil:
		publishedAt = utils.FormatPublishedAt(*item.PublishedParsed)
	case item.UpdatedParsed != nil:
		publishedAt = utils.FormatPublishedAt(*item.UpdatedParsed)
	default:
		publishedAt = item.Published
	}

	content := item.Description
	if content == "" {
		content = item.Content
	}

	var text string
	if content != "" {
		text = htmlToText(content)
	} else if isHTTPURL(item.Link) {
		fetched, err := s.fetchContent(ctx, item.Link)
		if err != nil {
			s.logger.Warn("Failed to fetch article content", logger.ErrorField(err), logger.StringField("url", item.Link))
		}
		text = fetched
	}

	return dto.NewArticleRequest(itemID(item, publishedAt), utils.SafeText(item.Title), text, publishedAt)
}

// itemID prefers the GUID, then the link. Items carrying neither get a
// name-based UUID so the same item keeps the same id across fetches.
func itemID(item *gofeed.Item, publishedAt string) string {
	if item.GUID != "" {
		return item.GUID
	}
	if item.Link != "" {
		return item.Link
	}
	name := strings.Join([]string{item.Title, publishedAt, item.Description, item.Content}, "\x1f")
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}

// fetchContent downloads the article page and extracts its main text.
func (s *FeedSource) fetchContent(ctx context.Context, link string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; news-impact-analyzer)")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch news content: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch news content, status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	doc, err := readability.NewDocument(string(body))
	if err != nil {
		return "", fmt.Errorf("failed to parse news content: %w", err)
	}

	docHTML, err := goquery.NewDocumentFromReader(bytes.NewReader([]byte(doc.Content())))
	if err != nil {
		return "", fmt.Errorf("failed to parse news content: %w", err)
	}
	return utils.SafeText(docHTML.Text()), nil
}

// htmlToText flattens an HTML fragment into a single line of text.
func htmlToText(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return utils.SafeText(fragment)
	}
	return utils.SafeText(doc.Text())
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}
