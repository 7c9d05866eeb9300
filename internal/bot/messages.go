package bot

import (
	"errors"

	"gopkg.in/telebot.v3"

	"ytfetch-bot/internal/fault"
	"ytfetch-bot/internal/format"
)

// formatMenu lays the choices out as an inline keyboard, two buttons per
// row. The button payload is the choice key, never the selector itself.
func formatMenu(choices []format.Choice) *telebot.ReplyMarkup {
	menu := &telebot.ReplyMarkup{}

	var rows []telebot.Row
	var row []telebot.Btn
	for _, ch := range choices {
		row = append(row, menu.Data(ch.Label, btnFormat.Unique, ch.Key))
		if len(row) == 2 {
			rows = append(rows, menu.Row(row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, menu.Row(row...))
	}

	menu.Inline(rows...)
	return menu
}

// ignoreNotModified swallows the API error for an edit that changes
// nothing, so repeated button presses don't abort the handler.
func ignoreNotModified(err error) error {
	if errors.Is(err, telebot.ErrSameMessageContent) {
		return nil
	}
	return err
}

// errorText renders an error as a user-facing chat message. The cause is
// truncated; the prefix depends on the error kind.
func errorText(err error) string {
	switch fault.KindOf(err) {
	case fault.Access:
		return "❌ " + fault.UserMessage(err)
	case fault.Validation:
		return "⚠️ " + fault.UserMessage(err)
	case fault.Extraction:
		return "❌ Could not read video info: " + fault.UserMessage(err)
	case fault.Delivery:
		return "❌ Could not send the file: " + fault.UserMessage(err)
	default:
		return "❌ Download failed: " + fault.UserMessage(err)
	}
}
