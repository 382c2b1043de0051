// Package format renders job fields for people: salary ranges, type labels,
// dates and page titles. It is shared by the HTML templates and the bot.
package format

import (
	"fmt"
	"time"
	"unicode/utf8"

	"job-board/internal/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	SiteName       = "Job Board"
	ListPageTitle  = "Job Board - Find Your Next Opportunity"
	NotFoundTitle  = "Job Not Found"
	noSalary       = "Salary not specified"
	excerptRunes   = 150
	postedDateForm = "2006-01-02"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Salary formats a range with thousands separators, e.g. "$120,000 - $180,000"
// for USD and "120,000 - 180,000 EUR" otherwise.
func Salary(salary *models.Salary) string {
	if salary == nil {
		return noSalary
	}

	if salary.Currency == "USD" {
		return printer.Sprintf("$%d - $%d", salary.Min, salary.Max)
	}

	return printer.Sprintf("%d - %d %s", salary.Min, salary.Max, salary.Currency)
}

func JobType(t models.JobType) string {
	return models.GetJobTypeDisplayName(t)
}

// PostedDate renders a YYYY-MM-DD date as "Jan 15, 2024". Unparseable dates
// are returned unchanged.
func PostedDate(date string) string {
	t, err := time.Parse(postedDateForm, date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2, 2006")
}

// Excerpt cuts s to at most n runes.
func Excerpt(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func JobTitle(job *models.Job) string {
	return fmt.Sprintf("%s at %s - %s", job.Title, job.Company, SiteName)
}

func ApplyTitle(job *models.Job) string {
	return fmt.Sprintf("Apply to %s at %s - %s", job.Title, job.Company, SiteName)
}

// JobDescription is the meta description for a job detail page.
func JobDescription(job *models.Job) string {
	return fmt.Sprintf("%s at %s - %s. %s...",
		job.Title, job.Company, job.Location, Excerpt(job.Description, excerptRunes))
}
