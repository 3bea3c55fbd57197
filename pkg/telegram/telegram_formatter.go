package telegram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang-news-impact/internal/analyzer/dto"
	"golang-news-impact/internal/analyzer/pipeline"
)

const maxMessageLen = 4090

// FormatAnalysesForTelegram formats analyses into Markdown messages,
// splitting them so that no message exceeds the Telegram length limit.
func FormatAnalysesForTelegram(results []dto.AnalysisTelegramResult) []string {
	if len(results) == 0 {
		return []string{"No news analyses to report."}
	}

	var messages []string
	var currentMessage strings.Builder
	part := 1
	headerLen := 0

	startNewPart := func() {
		currentMessage.Reset()
		if part == 1 {
			currentMessage.WriteString("📰 *Market Impact Digest* 📰\n\n")
		} else {
			currentMessage.WriteString(fmt.Sprintf("---*Market Impact Digest Part %d*---\n\n", part))
		}
		headerLen = currentMessage.Len()
	}

	startNewPart()

	for _, r := range results {
		entry := formatEntry(r)
		if currentMessage.Len() > headerLen && currentMessage.Len()+len(entry) > maxMessageLen {
			messages = append(messages, currentMessage.String())
			part++
			startNewPart()
		}
		if currentMessage.Len()+len(entry) > maxMessageLen {
			entry = truncateEntry(entry, maxMessageLen-currentMessage.Len())
		}
		currentMessage.WriteString(entry)
	}

	messages = append(messages, currentMessage.String())
	return messages
}

// truncateEntry cuts entry to at most limit bytes on a rune boundary and
// marks the cut with an ellipsis.
func truncateEntry(entry string, limit int) string {
	const suffix = "…\n\n"
	if len(entry) <= limit {
		return entry
	}
	cut := limit - len(suffix)
	if cut <= 0 {
		return ""
	}
	for cut > 0 && !utf8.RuneStart(entry[cut]) {
		cut--
	}
	return entry[:cut] + suffix
}

func formatEntry(r dto.AnalysisTelegramResult) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📈 *- - - - - %s - - - - -*\n", r.ArticleID))
	b.WriteString(fmt.Sprintf("💬 *Headline:* %s\n", r.Headline))

	if len(r.Companies) > 0 {
		b.WriteString(fmt.Sprintf("🏢 *Companies:* %s\n", strings.Join(r.Companies, ", ")))
	}
	if len(r.Tickers) > 0 {
		b.WriteString(fmt.Sprintf("🏷 *Tickers:* `%s`\n", strings.Join(r.Tickers, "`, `")))
	}

	b.WriteString(fmt.Sprintf("%s *Sentiment:* %s\n", sentimentIcon(r.Sentiment), pipeline.Capitalize(r.Sentiment)))
	b.WriteString(fmt.Sprintf("%s *Impact:* %s\n", predictionIcon(r.Prediction), pipeline.Capitalize(r.Prediction)))
	b.WriteString(fmt.Sprintf("🎯 *Confidence:* %.0f%%\n\n", r.Confidence*100))
	return b.String()
}

func sentimentIcon(sentiment string) string {
	switch strings.ToLower(sentiment) {
	case "positive":
		return "😊"
	case "negative":
		return "😟"
	default:
		return "😐"
	}
}

func predictionIcon(prediction string) string {
	switch strings.ToLower(prediction) {
	case "up":
		return "🟢"
	case "down":
		return "🔴"
	default:
		return "🟡"
	}
}
