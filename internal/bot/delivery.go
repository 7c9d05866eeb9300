package bot

import (
	"path/filepath"

	"github.com/h2non/filetype"
	"gopkg.in/telebot.v3"
)

// SendVideo uploads a finished video file with the stored title as caption.
func (b *Bot) SendVideo(chatID int64, path, title string) error {
	video := &telebot.Video{
		File:     telebot.FromDisk(path),
		Caption:  title,
		FileName: filepath.Base(path),
		MIME:     mimeOf(path, "video/mp4"),
	}
	_, err := b.tb.Send(telebot.ChatID(chatID), video)
	return err
}

// SendAudio uploads a finished audio file.
func (b *Bot) SendAudio(chatID int64, path, title string) error {
	audio := &telebot.Audio{
		File:     telebot.FromDisk(path),
		Title:    title,
		Caption:  title,
		FileName: filepath.Base(path),
		MIME:     mimeOf(path, "audio/mp4"),
	}
	_, err := b.tb.Send(telebot.ChatID(chatID), audio)
	return err
}

// mimeOf sniffs the file's real type, falling back when the header is
// unrecognized.
func mimeOf(path, fallback string) string {
	kind, err := filetype.MatchFile(path)
	if err != nil || kind == filetype.Unknown {
		return fallback
	}
	return kind.MIME.Value
}
