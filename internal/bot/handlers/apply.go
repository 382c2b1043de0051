package handlers

import (
	"context"
	"strings"
	"time"

	"job-board/internal/bot/utils"
	"job-board/internal/jobs"
	"job-board/internal/models"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Chat states for the application conversation
const (
	StateIdle             = ""
	StateAwaitingFullName = "awaiting_full_name"
	StateAwaitingEmail    = "awaiting_email"
)

const (
	tempApplication = "application"

	stateTimeout = 5 * time.Second
)

// pendingApplication collects the answers given so far.
type pendingApplication struct {
	JobID    string `json:"job_id"`
	FullName string `json:"full_name,omitempty"`
}

// reply is the next bot message of the conversation. done means the
// conversation is over and the main menu comes back.
type reply struct {
	text string
	done bool
}

// /apply <id>
func HandleApply(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		args := c.Args()
		if len(args) == 0 {
			return c.Reply("Usage: /apply <id>")
		}

		r, err := beginApplication(ctx, c.Chat().ID, args[0])
		if err != nil {
			ctx.Logger.Error("failed to start application", zap.Int64("chat_id", c.Chat().ID), zap.Error(err))
			return c.Send("😔 Something went wrong. Please try again later.")
		}

		return sendReply(c, r)
	}
}

// HandleText processes all plain text messages
func HandleText(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		text := strings.TrimSpace(c.Text())
		chatID := c.Chat().ID

		if text == utils.BtnCancel {
			return cancelConversation(ctx, c)
		}

		dbCtx, cancel := context.WithTimeout(context.Background(), stateTimeout)
		state, err := ctx.Chats.GetChatState(dbCtx, chatID)
		cancel()
		if err != nil {
			ctx.Logger.Warn("failed to get chat state", zap.Int64("chat_id", chatID), zap.Error(err))
			state = StateIdle
		}

		if state != StateIdle {
			r, err := continueApplication(ctx, chatID, state, text)
			if err != nil {
				ctx.Logger.Error("application step failed",
					zap.Int64("chat_id", chatID),
					zap.String("state", state),
					zap.Error(err),
				)
				if err := clearChat(ctx, chatID); err != nil {
					ctx.Logger.Warn("failed to clear chat state", zap.Int64("chat_id", chatID), zap.Error(err))
				}
				return c.Send("😔 Something went wrong. Please start again with /apply.", utils.MainMenuKeyboard())
			}
			return sendReply(c, r)
		}

		switch text {
		case utils.BtnJobs:
			return HandleJobs(ctx)(c)
		case utils.BtnHelp:
			return HandleHelp(ctx)(c)
		default:
			return c.Reply("Use the menu buttons or /help")
		}
	}
}

// beginApplication remembers the job and asks for the applicant's name.
func beginApplication(ctx *Context, chatID int64, jobID string) (reply, error) {
	job := ctx.Jobs.GetJob(jobID)
	if job == nil {
		return reply{text: utils.FormatJobNotFoundMessage(jobID), done: true}, nil
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), stateTimeout)
	defer cancel()

	if err := ctx.Chats.SetTempData(dbCtx, chatID, tempApplication, pendingApplication{JobID: job.ID}); err != nil {
		return reply{}, err
	}

	if err := ctx.Chats.SetChatState(dbCtx, chatID, StateAwaitingFullName); err != nil {
		return reply{}, err
	}

	ctx.Logger.Info("application started",
		zap.Int64("chat_id", chatID),
		zap.String("job_id", job.ID),
	)

	return reply{text: utils.FormatApplyPrompt(job)}, nil
}

// continueApplication consumes one answer for the given state.
func continueApplication(ctx *Context, chatID int64, state, text string) (reply, error) {
	dbCtx, cancel := context.WithTimeout(context.Background(), stateTimeout)
	defer cancel()

	switch state {
	case StateAwaitingFullName:
		if text == "" {
			return reply{text: "Please send your full name\\."}, nil
		}

		var pending pendingApplication
		if err := ctx.Chats.GetTempData(dbCtx, chatID, tempApplication, &pending); err != nil {
			return reply{}, err
		}

		pending.FullName = text
		if err := ctx.Chats.SetTempData(dbCtx, chatID, tempApplication, pending); err != nil {
			return reply{}, err
		}
		if err := ctx.Chats.SetChatState(dbCtx, chatID, StateAwaitingEmail); err != nil {
			return reply{}, err
		}

		return reply{text: utils.FormatEmailPrompt()}, nil

	case StateAwaitingEmail:
		var pending pendingApplication
		if err := ctx.Chats.GetTempData(dbCtx, chatID, tempApplication, &pending); err != nil {
			return reply{}, err
		}

		result := ctx.Jobs.SubmitApplication(pending.JobID, models.ApplicationData{
			FullName: pending.FullName,
			Email:    text,
		})

		// a mistyped address gets another try
		if !result.Success && result.Message == jobs.MsgInvalidEmail {
			return reply{text: utils.FormatApplicationResult(result) + "\n\n" + utils.FormatEmailPrompt()}, nil
		}

		if err := ctx.Chats.ClearChat(dbCtx, chatID, tempApplication); err != nil {
			ctx.Logger.Warn("failed to clear chat state", zap.Int64("chat_id", chatID), zap.Error(err))
		}

		return reply{text: utils.FormatApplicationResult(result), done: true}, nil

	default:
		ctx.Logger.Warn("unknown chat state", zap.Int64("chat_id", chatID), zap.String("state", state))

		if err := ctx.Chats.ClearChat(dbCtx, chatID, tempApplication); err != nil {
			return reply{}, err
		}

		return reply{text: "Let's start over\\. Use /jobs to browse openings\\.", done: true}, nil
	}
}

func cancelConversation(ctx *Context, c tele.Context) error {
	if err := clearChat(ctx, c.Chat().ID); err != nil {
		ctx.Logger.Warn("failed to clear chat state", zap.Int64("chat_id", c.Chat().ID), zap.Error(err))
	}

	return c.Send(utils.FormatCancelledMessage(), utils.MainMenuKeyboard())
}

func clearChat(ctx *Context, chatID int64) error {
	dbCtx, cancel := context.WithTimeout(context.Background(), stateTimeout)
	defer cancel()

	return ctx.Chats.ClearChat(dbCtx, chatID, tempApplication)
}

func sendReply(c tele.Context, r reply) error {
	keyboard := utils.CancelKeyboard()
	if r.done {
		keyboard = utils.MainMenuKeyboard()
	}

	return c.Send(r.text, keyboard, tele.ModeMarkdownV2)
}
