package handlers

import (
	"job-board/internal/bot/utils"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// /start command
func HandleStart(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		chatID := c.Chat().ID

		ctx.Logger.Info("user started bot",
			zap.Int64("chat_id", chatID),
			zap.String("username", c.Sender().Username),
		)

		// a fresh start drops any half-finished application
		if err := clearChat(ctx, chatID); err != nil {
			ctx.Logger.Warn("failed to clear chat state", zap.Int64("chat_id", chatID), zap.Error(err))
		}

		return c.Send(
			utils.FormatWelcomeMessage(c.Sender().FirstName),
			utils.MainMenuKeyboard(),
			tele.ModeMarkdownV2,
		)
	}
}
