package handlers

import (
	"context"

	"job-board/internal/models"

	"go.uber.org/zap"
)

// JobService is the job board API the bot talks to.
type JobService interface {
	ListJobs(criteria models.FilterCriteria) []models.Job
	GetJob(id string) *models.Job
	SubmitApplication(jobID string, data models.ApplicationData) models.ApplicationResult
}

// ChatStore keeps per-chat conversation state. Implemented by the Redis cache.
type ChatStore interface {
	SetChatState(ctx context.Context, chatID int64, state string) error
	GetChatState(ctx context.Context, chatID int64) (string, error)
	SetTempData(ctx context.Context, chatID int64, key string, value interface{}) error
	GetTempData(ctx context.Context, chatID int64, key string, dest interface{}) error
	ClearChat(ctx context.Context, chatID int64, tempKeys ...string) error
}

// Context contains deps for all handlers
type Context struct {
	Jobs   JobService
	Chats  ChatStore
	Logger *zap.Logger
}
