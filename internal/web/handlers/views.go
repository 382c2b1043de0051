package handlers

import (
	"fmt"
	"strconv"

	"job-board/internal/format"
	"job-board/internal/models"
	"job-board/internal/params"
)

type page struct {
	Title       string
	Description string
}

type listView struct {
	page
	Jobs        []models.Job
	Count       int
	Form        filterForm
	TypeOptions []typeOption
	Chips       []filterChip
	HasFilters  bool
}

type filterForm struct {
	Search    string
	Type      string
	Location  string
	MinSalary string
	MaxSalary string
}

type typeOption struct {
	Value    string
	Label    string
	Selected bool
}

type filterChip struct {
	Label     string
	RemoveURL string
}

type jobView struct {
	page
	Job *models.Job
}

type applyView struct {
	page
	Job       *models.Job
	Form      models.ApplicationData
	Result    *models.ApplicationResult
	Submitted bool
}

type messageView struct {
	page
	Heading string
	Message string
}

func newListView(jobs []models.Job, criteria models.FilterCriteria) listView {
	form := newFilterForm(criteria)

	options := make([]typeOption, 0, len(models.JobTypes()))
	for _, jt := range models.JobTypes() {
		options = append(options, typeOption{
			Value:    string(jt),
			Label:    format.JobType(jt),
			Selected: form.Type == string(jt),
		})
	}

	return listView{
		page: page{
			Title:       format.ListPageTitle,
			Description: "Browse our latest job openings. Find your next career opportunity with top companies.",
		},
		Jobs:        jobs,
		Count:       len(jobs),
		Form:        form,
		TypeOptions: options,
		Chips:       filterChips(criteria),
		HasFilters:  !criteria.IsEmpty(),
	}
}

func newFilterForm(c models.FilterCriteria) filterForm {
	var f filterForm
	if c.Search != nil {
		f.Search = *c.Search
	}
	if c.Type != nil {
		f.Type = string(*c.Type)
	}
	if c.Location != nil {
		f.Location = *c.Location
	}
	if c.MinSalary != nil {
		f.MinSalary = strconv.Itoa(*c.MinSalary)
	}
	if c.MaxSalary != nil {
		f.MaxSalary = strconv.Itoa(*c.MaxSalary)
	}
	return f
}

// filterChips returns one chip per active filter; each links to the listing
// with only that filter removed.
func filterChips(c models.FilterCriteria) []filterChip {
	form := newFilterForm(c)

	labels := map[string]string{
		models.FilterKeySearch:    fmt.Sprintf("Search: %s", form.Search),
		models.FilterKeyLocation:  fmt.Sprintf("Location: %s", form.Location),
		models.FilterKeyMinSalary: fmt.Sprintf("Min salary: %s", form.MinSalary),
		models.FilterKeyMaxSalary: fmt.Sprintf("Max salary: %s", form.MaxSalary),
	}
	if c.Type != nil {
		labels[models.FilterKeyType] = fmt.Sprintf("Type: %s", format.JobType(*c.Type))
	}

	active := params.EncodeFilters(c)

	var chips []filterChip
	for _, key := range models.FilterKeys() {
		if !active.Has(key) {
			continue
		}
		chips = append(chips, filterChip{
			Label:     labels[key],
			RemoveURL: listURL(c.Without(key)),
		})
	}

	return chips
}

func listURL(c models.FilterCriteria) string {
	query := params.EncodeFilters(c).Encode()
	if query == "" {
		return "/"
	}
	return "/?" + query
}

func newJobView(job *models.Job) jobView {
	return jobView{
		page: page{
			Title:       format.JobTitle(job),
			Description: format.JobDescription(job),
		},
		Job: job,
	}
}

func newApplyView(job *models.Job, form models.ApplicationData, result *models.ApplicationResult) applyView {
	return applyView{
		page: page{
			Title:       format.ApplyTitle(job),
			Description: fmt.Sprintf("Apply for %s at %s", job.Title, job.Company),
		},
		Job:       job,
		Form:      form,
		Result:    result,
		Submitted: result != nil && result.Success,
	}
}
