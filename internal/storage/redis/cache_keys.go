package redis

import (
	"context"
	"fmt"
	"time"
)

const (
	RateLimitWindowTTL = 1 * time.Minute
	ChatStateCacheTTL  = 30 * time.Minute
)

func RateLimitKey(subject string) string {
	return fmt.Sprintf("ratelimit:%s", subject)
}

func ChatStateKey(chatID int64) string {
	return fmt.Sprintf("state:chat:%d", chatID)
}

func ChatTempKey(chatID int64, key string) string {
	return fmt.Sprintf("temp:chat:%d:%s", chatID, key)
}

// IncrementRateLimit counts one request for subject in the current window.
func (c *Cache) IncrementRateLimit(ctx context.Context, subject string) (int64, error) {
	return c.IncrementWithExpiry(ctx, RateLimitKey(subject), RateLimitWindowTTL)
}

func (c *Cache) SetChatState(ctx context.Context, chatID int64, state string) error {
	return c.SetString(ctx, ChatStateKey(chatID), state, ChatStateCacheTTL)
}

// GetChatState returns the empty state when none is stored.
func (c *Cache) GetChatState(ctx context.Context, chatID int64) (string, error) {
	state, err := c.GetString(ctx, ChatStateKey(chatID))
	if err == ErrNotFound {
		return "", nil
	}
	return state, err
}

func (c *Cache) SetTempData(ctx context.Context, chatID int64, key string, value interface{}) error {
	return c.Set(ctx, ChatTempKey(chatID, key), value, ChatStateCacheTTL)
}

func (c *Cache) GetTempData(ctx context.Context, chatID int64, key string, dest interface{}) error {
	return c.Get(ctx, ChatTempKey(chatID, key), dest)
}

// ClearChat drops the conversation state and the given temp keys.
func (c *Cache) ClearChat(ctx context.Context, chatID int64, tempKeys ...string) error {
	keys := []string{ChatStateKey(chatID)}
	for _, k := range tempKeys {
		keys = append(keys, ChatTempKey(chatID, k))
	}
	return c.Delete(ctx, keys...)
}
