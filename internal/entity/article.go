package entity

// Article is a single news article fed to the analysis pipeline.
// PublishedAt is carried verbatim; it is never parsed or normalised.
type Article struct {
	ID          string `json:"article_id" yaml:"article_id"`
	Headline    string `json:"headline" yaml:"headline"`
	Content     string `json:"content" yaml:"content"`
	PublishedAt string `json:"published_at" yaml:"published_at"`
}

// NewArticle builds an Article from already shape-checked values.
func NewArticle(id, headline, content, publishedAt string) Article {
	return Article{
		ID:          id,
		Headline:    headline,
		Content:     content,
		PublishedAt: publishedAt,
	}
}
