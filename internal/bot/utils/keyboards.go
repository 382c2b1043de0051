package utils

import (
	"job-board/internal/models"

	tele "gopkg.in/telebot.v3"
)

// Reply keyboard labels, matched by the text handler.
const (
	BtnJobs   = "📋 Jobs"
	BtnHelp   = "❓ Help"
	BtnCancel = "❌ Cancel"
)

// Inline callback actions.
const (
	CallbackApply = "apply"
)

func MainMenuKeyboard() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}

	btnJobs := menu.Text(BtnJobs)
	btnHelp := menu.Text(BtnHelp)

	menu.Reply(
		menu.Row(btnJobs, btnHelp),
	)

	return menu
}

func CancelKeyboard() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}

	btnCancel := menu.Text(BtnCancel)
	menu.Reply(menu.Row(btnCancel))

	return menu
}

// InlineJobKeyboard offers the in-chat application and, when the job has one,
// the external apply link.
func InlineJobKeyboard(job *models.Job) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}

	buttons := []tele.Btn{menu.Data("📝 Apply", CallbackApply, job.ID)}

	if job.ApplyURL != nil && *job.ApplyURL != "" {
		buttons = append(buttons, menu.URL("🔗 Apply on site", *job.ApplyURL))
	}

	menu.Inline(menu.Row(buttons...))

	return menu
}
