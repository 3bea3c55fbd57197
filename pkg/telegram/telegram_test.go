package telegram

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"golang-news-impact/internal/analyzer/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
	err      error
}

func (r *recordingNotifier) SendMessage(ctx context.Context, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, text)
	return r.err
}

func TestFormatAnalysesForTelegramEmpty(t *testing.T) {
	assert.Equal(t, []string{"No news analyses to report."}, FormatAnalysesForTelegram(nil))
}

func TestFormatAnalysesForTelegram(t *testing.T) {
	messages := FormatAnalysesForTelegram([]dto.AnalysisTelegramResult{
		{
			ArticleID:  "FIN-005",
			Headline:   "ByteDance reports growth",
			Companies:  []string{"ByteDance", "FirstState"},
			Tickers:    []string{"FSB"},
			Sentiment:  "negative",
			Confidence: 0.88,
			Prediction: "down",
		},
	})
	require.Len(t, messages, 1)
	msg := messages[0]
	assert.True(t, strings.HasPrefix(msg, "📰 *Market Impact Digest* 📰"))
	assert.Contains(t, msg, "FIN-005")
	assert.Contains(t, msg, "*Companies:* ByteDance, FirstState")
	assert.Contains(t, msg, "*Tickers:* `FSB`")
	assert.Contains(t, msg, "😟 *Sentiment:* Negative")
	assert.Contains(t, msg, "🔴 *Impact:* Down")
	assert.Contains(t, msg, "*Confidence:* 88%")
}

func TestFormatAnalysesForTelegramSplits(t *testing.T) {
	var results []dto.AnalysisTelegramResult
	for i := 0; i < 40; i++ {
		results = append(results, dto.AnalysisTelegramResult{
			ArticleID:  "ID",
			Headline:   strings.Repeat("h", 200),
			Sentiment:  "neutral",
			Prediction: "neutral",
			Confidence: 0.7,
		})
	}
	messages := FormatAnalysesForTelegram(results)
	require.Greater(t, len(messages), 1)
	for _, m := range messages {
		assert.LessOrEqual(t, len(m), maxMessageLen)
	}
	assert.Contains(t, messages[1], "Part 2")
}

func TestThrottledNotifier(t *testing.T) {
	rec := &recordingNotifier{}
	n := NewThrottledNotifier(rec, 0)

	require.NoError(t, n.SendMessage(context.Background(), "a"))
	require.NoError(t, n.SendMessage(context.Background(), "b"))
	assert.Equal(t, []string{"a", "b"}, rec.messages)

	rec.err = errors.New("telegram down")
	assert.EqualError(t, n.SendMessage(context.Background(), "c"), "telegram down")
}

func TestThrottledNotifierCancelled(t *testing.T) {
	rec := &recordingNotifier{}
	n := NewThrottledNotifier(rec, 0.001)
	require.NoError(t, n.SendMessage(context.Background(), "first"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, n.SendMessage(ctx, "second"))
	assert.Equal(t, []string{"first"}, rec.messages)
}

func TestFormatAnalysesForTelegramOversizeEntry(t *testing.T) {
	long := dto.AnalysisTelegramResult{
		ArticleID:  "LONG",
		Headline:   strings.Repeat("é", 5000),
		Sentiment:  "neutral",
		Prediction: "neutral",
	}

	messages := FormatAnalysesForTelegram([]dto.AnalysisTelegramResult{long})
	require.Len(t, messages, 1)
	assert.LessOrEqual(t, len(messages[0]), maxMessageLen)
	assert.True(t, strings.HasPrefix(messages[0], "📰 *Market Impact Digest* 📰\n\n📈"))
	assert.True(t, strings.HasSuffix(messages[0], "…\n\n"))
	assert.True(t, utf8.ValidString(messages[0]))

	short := dto.AnalysisTelegramResult{ArticleID: "SHORT", Headline: "h", Sentiment: "positive", Prediction: "up"}
	messages = FormatAnalysesForTelegram([]dto.AnalysisTelegramResult{short, long, short})
	require.Len(t, messages, 3)
	for _, m := range messages {
		assert.LessOrEqual(t, len(m), maxMessageLen)
		assert.Contains(t, m, "📈", "no message may carry only a header")
	}
	assert.Contains(t, messages[0], "SHORT")
	assert.Contains(t, messages[1], "Part 2")
	assert.Contains(t, messages[1], "LONG")
	assert.Contains(t, messages[2], "Part 3")
	assert.Contains(t, messages[2], "SHORT")
}

func TestTruncateEntry(t *testing.T) {
	assert.Equal(t, "abc", truncateEntry("abc", 10))
	assert.Equal(t, "", truncateEntry("abcdefgh", 3))
	got := truncateEntry("ééééé", 7)
	assert.True(t, utf8.ValidString(got))
	assert.LessOrEqual(t, len(got), 7)
}
