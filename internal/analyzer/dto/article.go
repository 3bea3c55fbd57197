package dto

import (
	"errors"
	"fmt"

	"golang-news-impact/internal/entity"
)

// ErrMissingField is returned when a required article field is absent.
var ErrMissingField = errors.New("missing required field")

// ArticleRequest is the wire shape of an article. Fields are pointers so an
// absent field can be told apart from an empty string.
type ArticleRequest struct {
	ArticleID   *string `json:"article_id" yaml:"article_id"`
	Headline    *string `json:"headline" yaml:"headline"`
	Content     *string `json:"content" yaml:"content"`
	PublishedAt *string `json:"published_at" yaml:"published_at"`
}

// NewArticleRequest builds a fully populated request.
func NewArticleRequest(id, headline, content, publishedAt string) ArticleRequest {
	return ArticleRequest{
		ArticleID:   &id,
		Headline:    &headline,
		Content:     &content,
		PublishedAt: &publishedAt,
	}
}

// ID returns the article id, or "" when it is missing.
func (r ArticleRequest) ID() string {
	if r.ArticleID == nil {
		return ""
	}
	return *r.ArticleID
}

// Validate checks the shape of the request and reports every missing field.
// Empty strings are accepted.
func (r ArticleRequest) Validate() error {
	var errs []error
	for _, f := range []struct {
		name  string
		value *string
	}{
		{"article_id", r.ArticleID},
		{"headline", r.Headline},
		{"content", r.Content},
		{"published_at", r.PublishedAt},
	} {
		if f.value == nil {
			errs = append(errs, fmt.Errorf("field %q is required: %w", f.name, ErrMissingField))
		}
	}
	return errors.Join(errs...)
}

// ToArticle validates the request and converts it into an entity.Article.
func (r ArticleRequest) ToArticle() (entity.Article, error) {
	if err := r.Validate(); err != nil {
		return entity.Article{}, err
	}
	return entity.NewArticle(*r.ArticleID, *r.Headline, *r.Content, *r.PublishedAt), nil
}
