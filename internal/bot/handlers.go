package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"

	"ytfetch-bot/internal/access"
	"ytfetch-bot/internal/format"
	"ytfetch-bot/internal/link"
	"ytfetch-bot/internal/session"
)

const (
	msgPendingApproval = "❌ You need admin approval first. Contact the bot owner."
	msgBadLink         = "⚠️ Please send a valid YouTube link (youtube.com or youtu.be)"
	msgProbing         = "⏳ Fetching available formats..."
	msgDownloading     = "⏳ Downloading... (this may take 10-30 seconds)"
)

func (b *Bot) onStart(c telebot.Context) error {
	if !b.gate.Enabled() {
		return c.Send("👋 Send me a YouTube link and pick a format to download.")
	}

	role := b.gate.Role(c.Sender().ID)
	b.log.WithFields(logrus.Fields{
		"user_id": c.Sender().ID,
		"role":    role.String(),
	}).Debug("start command")

	switch role {
	case access.Admin:
		return c.Send("✅ Admin mode active. Send /approve [user_id] to approve users.")
	case access.Approved:
		return c.Send("✅ You're approved! Send any YouTube link to download.")
	default:
		text := fmt.Sprintf("⚠️ Pending approval. Your ID: `%d`\nContact admin to get access.", c.Sender().ID)
		return c.Send(text, telebot.ModeMarkdown)
	}
}

func (b *Bot) onApprove(c telebot.Context) error {
	if !b.gate.Enabled() {
		return c.Send("The access gate is disabled, everyone is approved.")
	}
	if !b.gate.IsAdmin(c.Sender().ID) {
		return c.Send("❌ Only admin can use this command.")
	}

	args := c.Args()
	if len(args) == 0 {
		return c.Send("Usage: /approve 123456789")
	}

	userID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return c.Send("❌ Invalid user ID (must be numbers only)")
	}

	b.gate.Approve(userID)
	b.log.WithField("user_id", userID).Info("user approved")
	return c.Send(fmt.Sprintf("✅ Approved user %d", userID))
}

// onText handles a plain message: gate, link validation, metadata probe,
// then the status message is edited in place into the format keyboard.
func (b *Bot) onText(c telebot.Context) error {
	userID := c.Sender().ID
	if !b.gate.Allowed(userID) {
		return c.Send(msgPendingApproval)
	}

	text := strings.TrimSpace(c.Text())
	if !link.Valid(text) {
		return c.Send(msgBadLink)
	}

	msg, err := b.tb.Send(c.Chat(), msgProbing)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), b.cfg.Download.ProbeTimeout)
	defer cancel()

	info, err := b.yt.Probe(ctx, text)
	if err != nil {
		b.log.WithError(err).WithField("user_id", userID).Error("probe failed")
		_, editErr := b.tb.Edit(msg, errorText(err))
		return editErr
	}

	choices := format.Choices(info.Variants)
	b.sessions.Put(userID, session.Session{
		Link:    text,
		Title:   info.Title,
		Offered: choices,
	})

	header := "Choose a format:"
	if info.Title != "" {
		header = fmt.Sprintf("🎬 %s\n\nChoose a format:", info.Title)
	}
	_, err = b.tb.Edit(msg, header, formatMenu(choices))
	return err
}

// onFormat handles a pressed format button. The callback message doubles as
// the progress indicator and is edited in place.
func (b *Bot) onFormat(c telebot.Context) error {
	defer c.Respond(&telebot.CallbackResponse{})

	userID := c.Sender().ID
	if !b.gate.Allowed(userID) {
		return c.Edit(msgPendingApproval)
	}

	// a second press of the same button produces an identical edit, which
	// the API rejects; that must not abort the handler
	if err := ignoreNotModified(c.Edit(msgDownloading)); err != nil {
		return err
	}

	err := b.orch.Run(context.Background(), userID, c.Chat().ID, c.Data())
	if err != nil {
		return c.Edit(errorText(err))
	}

	// the file is delivered; drop the progress message like the download
	// notice it replaced
	return c.Delete()
}
