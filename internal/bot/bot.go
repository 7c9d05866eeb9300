// Package bot wires the Telegram transport to the download flow.
package bot

import (
	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"

	"ytfetch-bot/internal/access"
	"ytfetch-bot/internal/config"
	"ytfetch-bot/internal/fault"
	"ytfetch-bot/internal/fetch"
	"ytfetch-bot/internal/session"
	"ytfetch-bot/internal/ytdlp"
)

// btnFormat is the inline-button endpoint carrying a format choice key.
var btnFormat = telebot.Btn{Unique: "fmt"}

// Bot is the long-polling Telegram bot.
type Bot struct {
	tb       *telebot.Bot
	cfg      *config.Config
	gate     *access.Gate
	sessions *session.Store
	yt       *ytdlp.Client
	orch     *fetch.Orchestrator
	log      *logrus.Logger
}

// New builds the bot and registers all handlers. It talks to the Telegram
// API once to verify the token.
func New(cfg *config.Config, log *logrus.Logger) (*Bot, error) {
	pref := telebot.Settings{
		Token:  cfg.Telegram.Token,
		Poller: &telebot.LongPoller{Timeout: cfg.Telegram.PollTimeout},
		OnError: func(err error, c telebot.Context) {
			log.WithError(err).Error("handler error")
		},
	}

	tb, err := telebot.NewBot(pref)
	if err != nil {
		return nil, fault.Wrap(fault.Config, err, "create bot")
	}

	b := &Bot{
		tb:       tb,
		cfg:      cfg,
		gate:     access.NewGate(cfg.Access.Enabled, cfg.Access.AdminID),
		sessions: session.NewStore(),
		yt:       ytdlp.NewClient(cfg.Download.Binary, cfg.Download.CookiesFile),
		log:      log,
	}
	b.orch = fetch.New(b.yt, b.sessions, b, cfg.Download.TempDir, cfg.Download.FetchTimeout, log)

	tb.Handle("/start", b.onStart)
	tb.Handle("/approve", b.onApprove)
	tb.Handle(telebot.OnText, b.onText)
	tb.Handle(&btnFormat, b.onFormat)

	return b, nil
}

// Start begins long polling. Blocks until Stop.
func (b *Bot) Start() {
	b.tb.Start()
}

// Stop halts the poller.
func (b *Bot) Stop() {
	b.tb.Stop()
}
