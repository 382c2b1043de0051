package middleware

import (
	"context"
	"fmt"

	"job-board/internal/ratelimit"

	tele "gopkg.in/telebot.v3"
)

// RateLimit answers chats over the per-minute budget instead of handling
// their update.
func RateLimit(limiter *ratelimit.Limiter) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			chat := c.Chat()
			if chat == nil {
				return next(c)
			}

			if limiter.Allow(context.Background(), fmt.Sprintf("chat:%d", chat.ID)) {
				return next(c)
			}

			return c.Reply(fmt.Sprintf(
				"⚠️ Too many requests. Please wait a minute.\n"+
					"Limit: %d requests per minute.",
				limiter.Limit(),
			))
		}
	}
}
