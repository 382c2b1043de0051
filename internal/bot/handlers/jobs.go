package handlers

import (
	"job-board/internal/bot/utils"
	"job-board/internal/params"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// /jobs [key=value ...] [words ...]
func HandleJobs(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		criteria := params.ParseFilters(params.FromArgs(c.Args()))

		jobs := ctx.Jobs.ListJobs(criteria)

		ctx.Logger.Debug("jobs listed",
			zap.Int64("chat_id", c.Chat().ID),
			zap.Bool("filtered", !criteria.IsEmpty()),
			zap.Int("count", len(jobs)),
		)

		if len(jobs) == 0 {
			return c.Send(utils.FormatNoJobsMessage(), tele.ModeMarkdownV2)
		}

		return c.Send(
			utils.FormatJobList(jobs),
			utils.MainMenuKeyboard(),
			tele.ModeMarkdownV2,
		)
	}
}

// /job <id>
func HandleJob(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		args := c.Args()
		if len(args) == 0 {
			return c.Reply("Usage: /job <id>")
		}

		job := ctx.Jobs.GetJob(args[0])
		if job == nil {
			return c.Send(utils.FormatJobNotFoundMessage(args[0]), tele.ModeMarkdownV2)
		}

		return c.Send(
			utils.FormatJob(job),
			utils.InlineJobKeyboard(job),
			tele.ModeMarkdownV2,
			tele.NoPreview,
		)
	}
}
