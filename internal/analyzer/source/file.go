package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang-news-impact/internal/analyzer/dto"
	"golang-news-impact/pkg/common"

	"gopkg.in/yaml.v3"
)

// FileSource reads a list of articles from a YAML or JSON file.
type FileSource struct {
	path string
}

// NewFileSource creates a new FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name returns the source name.
func (s *FileSource) Name() string {
	return common.SourceFile
}

// Fetch decodes the file; the extension picks the decoder. Absent fields are
// left nil so that validation can report them per article.
func (s *FileSource) Fetch(ctx context.Context) ([]dto.ArticleRequest, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read articles file: %w", err)
	}

	var articles []dto.ArticleRequest
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &articles); err != nil {
			return nil, fmt.Errorf("failed to decode YAML articles: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(raw, &articles); err != nil {
			return nil, fmt.Errorf("failed to decode JSON articles: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, s.path)
	}
	return articles, nil
}
