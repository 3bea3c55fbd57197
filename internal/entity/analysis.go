package entity

// Sentiment labels.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Prediction values.
const (
	PredictionUp      = "up"
	PredictionDown    = "down"
	PredictionNeutral = "neutral"
)

// SentimentResult is the output of sentiment classification.
// Confidence is fixed per label.
type SentimentResult struct {
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
}

// EntityResult lists the companies and tickers found in a text.
//
// Companies and Tickers are NOT index-aligned: a company without a public
// ticker (ByteDance) appears in Companies only. Consumers must not zip them.
type EntityResult struct {
	Companies []string `json:"companies"`
	Tickers   []string `json:"tickers"`
}

// NewEntityResult returns an EntityResult whose slices are never nil.
func NewEntityResult(companies, tickers []string) EntityResult {
	if companies == nil {
		companies = []string{}
	}
	if tickers == nil {
		tickers = []string{}
	}
	return EntityResult{Companies: companies, Tickers: tickers}
}

// ImpactResult is the predicted short-term market direction.
type ImpactResult struct {
	Prediction string `json:"prediction"`
	Reason     string `json:"reason"`
}

// SummaryResult holds the rendered multi-line article summary.
type SummaryResult struct {
	Summary string `json:"summary"`
}

// Analysis is everything the pipeline produced for one article.
type Analysis struct {
	ArticleID string          `json:"article_id"`
	Sentiment SentimentResult `json:"sentiment"`
	Entities  EntityResult    `json:"entities"`
	Impact    ImpactResult    `json:"impact"`
	Summary   SummaryResult   `json:"summary"`
}
