package handlers

import (
	"strings"

	"job-board/internal/bot/utils"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// HandleCallback processes all callback queries from inline buttons
func HandleCallback(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		cb := c.Callback()
		if cb == nil {
			ctx.Logger.Warn("callback is nil")
			return nil
		}

		action, payload := parseCallback(cb.Data)

		ctx.Logger.Debug("routing callback",
			zap.String("action", action),
			zap.String("payload", payload),
			zap.Int64("chat_id", c.Chat().ID),
		)

		switch action {
		case utils.CallbackApply:
			return handleApplyCallback(ctx, c, payload)
		default:
			ctx.Logger.Warn("unknown callback action",
				zap.String("action", action),
				zap.String("data", cb.Data),
			)
			return c.Respond(&tele.CallbackResponse{Text: "❓ Unknown action"})
		}
	}
}

func handleApplyCallback(ctx *Context, c tele.Context, jobID string) error {
	if jobID == "" {
		return c.Respond(&tele.CallbackResponse{Text: "❌ Invalid request"})
	}

	r, err := beginApplication(ctx, c.Chat().ID, jobID)
	if err != nil {
		ctx.Logger.Error("failed to start application", zap.Int64("chat_id", c.Chat().ID), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "😔 Something went wrong"})
	}

	if err := sendReply(c, r); err != nil {
		return err
	}

	return c.Respond()
}

// parseCallback splits inline button data, "\f<unique>|<payload>" as
// produced by tele.ReplyMarkup.Data.
func parseCallback(data string) (action, payload string) {
	data = strings.TrimPrefix(data, "\f")
	action, payload, _ = strings.Cut(data, "|")
	return action, payload
}
