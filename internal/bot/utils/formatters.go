package utils

import (
	"fmt"
	"strings"

	"job-board/internal/format"
	"job-board/internal/models"
)

const (
	MaxListedJobs       = 10
	maxDescriptionRunes = 1500
)

// Format job card for Telegram
func FormatJob(job *models.Job) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("*%s*\n\n", EscapeMarkdown(job.Title)))

	sb.WriteString(fmt.Sprintf("🏢 *Company:* %s\n", EscapeMarkdown(job.Company)))
	sb.WriteString(fmt.Sprintf("📍 *Location:* %s\n", EscapeMarkdown(job.Location)))
	sb.WriteString(fmt.Sprintf("💼 *Type:* %s\n", EscapeMarkdown(format.JobType(job.Type))))
	sb.WriteString(fmt.Sprintf("💰 *Salary:* %s\n", EscapeMarkdown(format.Salary(job.Salary))))
	sb.WriteString(fmt.Sprintf("📅 *Posted:* %s\n", EscapeMarkdown(format.PostedDate(job.PostedDate))))

	description := format.Excerpt(job.Description, maxDescriptionRunes)
	if description != job.Description {
		description += "..."
	}
	sb.WriteString(fmt.Sprintf("\n%s\n", EscapeMarkdown(description)))

	if len(job.Requirements) > 0 {
		sb.WriteString("\n*Requirements:*\n")
		for _, req := range job.Requirements {
			sb.WriteString(fmt.Sprintf("• %s\n", EscapeMarkdown(req)))
		}
	}

	return sb.String()
}

// FormatJobList lists at most MaxListedJobs jobs with the command that opens each one.
func FormatJobList(jobs []models.Job) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("📋 *Jobs found:* %d\n\n", len(jobs)))

	shown := jobs
	if len(shown) > MaxListedJobs {
		shown = shown[:MaxListedJobs]
	}

	for i, job := range shown {
		sb.WriteString(fmt.Sprintf("*%d\\. %s*\n", i+1, EscapeMarkdown(job.Title)))
		sb.WriteString(fmt.Sprintf("   🏢 %s\n", EscapeMarkdown(job.Company)))
		sb.WriteString(fmt.Sprintf("   📍 %s\n", EscapeMarkdown(job.Location)))

		if job.Salary != nil {
			sb.WriteString(fmt.Sprintf("   💰 %s\n", EscapeMarkdown(format.Salary(job.Salary))))
		}

		sb.WriteString(fmt.Sprintf("   ➡️ /job %s\n", EscapeMarkdown(job.ID)))
		sb.WriteString("\n")
	}

	if len(jobs) > len(shown) {
		sb.WriteString(fmt.Sprintf("_Showing the first %d\\. Narrow the search with filters, see /help\\._", len(shown)))
	}

	return sb.String()
}

func FormatNoJobsMessage() string {
	return `😔 *No jobs match your filters*

Try fewer filters, or run /jobs without arguments to see everything\.`
}

func FormatJobNotFoundMessage(id string) string {
	return fmt.Sprintf("😔 Job *%s* not found\\. Use /jobs to browse openings\\.", EscapeMarkdown(id))
}

func FormatApplyPrompt(job *models.Job) string {
	return fmt.Sprintf(
		"📝 Applying to *%s* at *%s*\n\nPlease send your full name\\.",
		EscapeMarkdown(job.Title),
		EscapeMarkdown(job.Company),
	)
}

func FormatEmailPrompt() string {
	return "📧 Thanks\\! Now send the email address we should reply to\\."
}

func FormatApplicationResult(result models.ApplicationResult) string {
	if !result.Success {
		return fmt.Sprintf("❌ %s", EscapeMarkdown(result.Message))
	}

	return fmt.Sprintf("✅ %s\n\nApplication ID: `%s`",
		EscapeMarkdown(result.Message),
		EscapeMarkdown(result.ApplicationID),
	)
}

func FormatWelcomeMessage(firstName string) string {
	name := firstName
	if name == "" {
		name = "there"
	}

	return fmt.Sprintf(`👋 Hi, *%s*\!

I can help you find your next job\.

*What I can do:*
• List open positions
• Filter by type, location, salary and keywords
• Send your application

*Commands:*
/jobs \- browse jobs
/job \- show one job
/apply \- apply to a job
/help \- help

Start with /jobs`, EscapeMarkdown(name))
}

func FormatHelpMessage() string {
	return `*📖 Help*

*Commands:*

/start \- start over
/jobs \- list jobs, optionally filtered
/job _id_ \- show a job
/apply _id_ \- apply to a job
/help \- this message

*Filtering jobs:*

Pass filters as key\=value, any other words are searched in the title, company and description\.

` + "`/jobs type=contract location=remote`" + `
` + "`/jobs minSalary=100000 react`" + `

Keys: type \(full\-time, part\-time, contract, internship\), location, minSalary, maxSalary, search\.`
}

func FormatCancelledMessage() string {
	return "❌ Application cancelled"
}

// EscapeMarkdown escapes special characters for Telegram MarkdownV2
func EscapeMarkdown(text string) string {
	// \ _ * [ ] ( ) ~ ` > # + - = | { } . !
	replacer := strings.NewReplacer(
		"\\", "\\\\",
		"_", "\\_",
		"*", "\\*",
		"[", "\\[",
		"]", "\\]",
		"(", "\\(",
		")", "\\)",
		"~", "\\~",
		"`", "\\`",
		">", "\\>",
		"#", "\\#",
		"+", "\\+",
		"-", "\\-",
		"=", "\\=",
		"|", "\\|",
		"{", "\\{",
		"}", "\\}",
		".", "\\.",
		"!", "\\!",
	)

	return replacer.Replace(text)
}
