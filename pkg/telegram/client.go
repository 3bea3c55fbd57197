package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

// Notifier defines the interface for a Telegram notifier.
type Notifier interface {
	SendMessage(ctx context.Context, text string) error
}

// client is an implementation of Notifier.
type client struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewClient creates a new Telegram notifier client.
func NewClient(botToken string, chatID int64) (Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	return &client{
		bot:    bot,
		chatID: chatID,
	}, nil
}

// SendMessage sends a message to the configured Telegram chat.
func (c *client) SendMessage(ctx context.Context, text string) error {
	msg := tgbotapi.NewMessage(c.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	_, err := c.bot.Send(msg)
	return err
}

// throttledNotifier limits how often the wrapped Notifier is called.
type throttledNotifier struct {
	next    Notifier
	limiter *rate.Limiter
}

// NewThrottledNotifier wraps next so that at most perSecond messages are sent
// each second. A non-positive rate disables throttling.
func NewThrottledNotifier(next Notifier, perSecond float64) Notifier {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	return &throttledNotifier{
		next:    next,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// SendMessage waits for the limiter and forwards the message.
func (t *throttledNotifier) SendMessage(ctx context.Context, text string) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return err
	}
	return t.next.SendMessage(ctx, text)
}
