package bot

import (
	"context"
	"log"
	"net/http"
	"time"

	"vault-pulse/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// chatRecipient lets a raw chat id or @channel name act as a telebot recipient.
type chatRecipient string

func (r chatRecipient) Recipient() string { return string(r) }

// Reporter produces the rendered status message for interactive commands.
type Reporter interface {
	BuildReport(ctx context.Context, includeHistory bool) (string, error)
}

// Notifier sends monitoring reports to one Telegram chat.
type Notifier struct {
	bot  *tele.Bot
	chat chatRecipient
}

// NewNotifier creates the Telegram client. The 30s HTTP timeout bounds both
// the send call and long-poll requests.
func NewNotifier(token, chatID string) (*Notifier, error) {
	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		Client: &http.Client{Timeout: 30 * time.Second},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, err
	}
	return &Notifier{bot: b, chat: chatRecipient(chatID)}, nil
}

// Send delivers one Markdown message to the configured chat.
func (n *Notifier) Send(text string) error {
	if _, err := n.bot.Send(n.chat, text, tele.ModeMarkdown); err != nil {
		return &domain.DeliveryError{Chat: string(n.chat), Err: err}
	}
	return nil
}

// StartCommands registers the interactive handlers and starts long polling
// in the background. The scheduled push keeps working without it; this only
// adds an on-demand pull.
func (n *Notifier) StartCommands(reporter Reporter, includeHistory bool) {
	n.bot.Handle("/ping", func(c tele.Context) error {
		return c.Send("pong")
	})

	n.bot.Handle("/status", func(c tele.Context) error {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		message, err := reporter.BuildReport(ctx, includeHistory)
		if err != nil {
			return c.Send("Status unavailable: " + err.Error())
		}
		return c.Send(message, tele.ModeMarkdown)
	})

	log.Println("Telegram bot started")
	go n.bot.Start()
}

// Stop shuts down long polling.
func (n *Notifier) Stop() {
	n.bot.Stop()
}
