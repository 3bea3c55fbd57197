package main

import (
	"fmt"
	"io"

	"golang-news-impact/internal/analyzer/dto"
)

// renderResults prints one block per article: a blank line, the article id,
// then the summary (or the error for articles that failed).
func renderResults(w io.Writer, results []dto.AnalysisResult) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "\nArticle ID: %s\n", r.ArticleID); err != nil {
			return err
		}
		if !r.IsSuccess {
			if _, err := fmt.Fprintf(w, "Error: %s\n", r.Error); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintln(w, r.Analysis.Summary.Summary); err != nil {
			return err
		}
	}
	return nil
}
