package models

// FilterCriteria narrows a job listing. A nil field places no constraint on
// its dimension.
type FilterCriteria struct {
	Type      *JobType `json:"type,omitempty"`
	Location  *string  `json:"location,omitempty"`
	MinSalary *int     `json:"minSalary,omitempty"`
	MaxSalary *int     `json:"maxSalary,omitempty"`
	Search    *string  `json:"search,omitempty"`
}

// Filter query keys, shared by the URL query string and bot commands.
const (
	FilterKeyType      = "type"
	FilterKeyLocation  = "location"
	FilterKeyMinSalary = "minSalary"
	FilterKeyMaxSalary = "maxSalary"
	FilterKeySearch    = "search"
)

// FilterKeys returns the filter keys in form order.
func FilterKeys() []string {
	return []string{
		FilterKeySearch,
		FilterKeyType,
		FilterKeyLocation,
		FilterKeyMinSalary,
		FilterKeyMaxSalary,
	}
}

func (c FilterCriteria) IsEmpty() bool {
	return c.Type == nil &&
		c.Location == nil &&
		c.MinSalary == nil &&
		c.MaxSalary == nil &&
		c.Search == nil
}

// Without returns a copy of c with the field named by key cleared.
func (c FilterCriteria) Without(key string) FilterCriteria {
	switch key {
	case FilterKeyType:
		c.Type = nil
	case FilterKeyLocation:
		c.Location = nil
	case FilterKeyMinSalary:
		c.MinSalary = nil
	case FilterKeyMaxSalary:
		c.MaxSalary = nil
	case FilterKeySearch:
		c.Search = nil
	}
	return c
}
