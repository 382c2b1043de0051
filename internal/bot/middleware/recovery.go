package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Recovery middleware for panic handling
func Recovery(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					var chatID int64
					if chat := c.Chat(); chat != nil {
						chatID = chat.ID
					}

					logger.Error("panic recovered",
						zap.Any("panic", r),
						zap.Stack("stack"),
						zap.Int64("chat_id", chatID),
					)

					err = c.Send("😔 Something went wrong. Please try again later.")
				}
			}()

			return next(c)
		}
	}
}
