package utils

import (
	"context"
	"sync"
	"testing"
	"time"

	"golang-news-impact/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestFormatPublishedAt(t *testing.T) {
	loc := time.FixedZone("WIB", 7*60*60)
	ts := time.Date(2024, 10, 22, 23, 0, 0, 0, loc)
	assert.Equal(t, "2024-10-22T16:00:00Z", FormatPublishedAt(ts))
}

func TestSafeText(t *testing.T) {
	assert.Equal(t, "Tesla beats expectations", SafeText("  Tesla\n\tbeats \r\nexpectations \f"))
	assert.Equal(t, "ab", SafeText("a\x00b"))
	assert.Equal(t, "ok", SafeText("ok\xff"))
	assert.Equal(t, "", SafeText(""))
}

func TestGoSafeRecovers(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)
	GoSafe(func() {
		defer wg.Done()
		panic("boom")
	})
	wg.Wait()
}

func TestShouldContinue(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	assert.True(t, ShouldContinue(ctx, logger.NewNop()))
	cancel()
	assert.False(t, ShouldContinue(ctx, logger.NewNop()))
	assert.False(t, ShouldContinue(ctx, nil))
}
