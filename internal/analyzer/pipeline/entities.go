package pipeline

import (
	"strings"

	"golang-news-impact/internal/entity"
)

type companyRule struct {
	trigger string
	company string
	ticker  string // empty when the company has no public listing
}

// companyRules is evaluated top to bottom and every row is tested. The
// order here is the order of the extracted companies and tickers.
var companyRules = []companyRule{
	{trigger: "Tesla", company: "Tesla", ticker: "TSLA"},
	{trigger: "Amazon", company: "Amazon", ticker: "AMZN"},
	{trigger: "CureGen", company: "CureGen", ticker: "CURE"},
	{trigger: "ByteDance", company: "ByteDance"},
	{trigger: "FirstState", company: "FirstState", ticker: "FSB"},
}

// EntityExtractor finds known companies and their tickers in article text.
type EntityExtractor struct{}

// NewEntityExtractor creates a new EntityExtractor.
func NewEntityExtractor() *EntityExtractor {
	return &EntityExtractor{}
}

// Extract performs case-sensitive substring matching against the company table.
// Companies without a ticker are appended to Companies only, so the two
// slices may differ in length.
func (e *EntityExtractor) Extract(text string) entity.EntityResult {
	companies := []string{}
	tickers := []string{}
	for _, rule := range companyRules {
		if !strings.Contains(text, rule.trigger) {
			continue
		}
		companies = append(companies, rule.company)
		if rule.ticker != "" {
			tickers = append(tickers, rule.ticker)
		}
	}
	return entity.NewEntityResult(companies, tickers)
}
