package middleware

import (
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Logger middleware for logging all incoming updates
func Logger(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			start := time.Now()

			var chatID int64
			if chat := c.Chat(); chat != nil {
				chatID = chat.ID
			}

			var username string
			if user := c.Sender(); user != nil {
				username = user.Username
			}

			updateType := "message"
			if c.Callback() != nil {
				updateType = "callback"
			}

			err := next(c)

			// message text is left out, it may carry applicant details
			fields := []zap.Field{
				zap.Int64("chat_id", chatID),
				zap.String("username", username),
				zap.String("type", updateType),
				zap.Duration("duration", time.Since(start)),
			}

			if err != nil {
				fields = append(fields, zap.Error(err))
				logger.Error("handler error", fields...)
			} else {
				logger.Info("update handled", fields...)
			}

			return err
		}
	}
}
