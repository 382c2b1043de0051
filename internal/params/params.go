// Package params converts between raw key/value input (URL query strings,
// submitted forms, bot command arguments) and typed job board requests.
//
// Malformed input never fails: an unparseable value leaves its field unset.
package params

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"job-board/internal/models"
)

// ParseFilters reads filter criteria from query values.
func ParseFilters(values url.Values) models.FilterCriteria {
	var c models.FilterCriteria

	if t := values.Get(models.FilterKeyType); models.IsValidJobType(t) {
		jt := models.JobType(t)
		c.Type = &jt
	}

	c.Location = optional(values.Get(models.FilterKeyLocation))
	c.MinSalary = parseInt(values.Get(models.FilterKeyMinSalary))
	c.MaxSalary = parseInt(values.Get(models.FilterKeyMaxSalary))
	c.Search = optional(values.Get(models.FilterKeySearch))

	return c
}

// EncodeFilters is the inverse of ParseFilters: only set fields are emitted.
func EncodeFilters(c models.FilterCriteria) url.Values {
	values := url.Values{}

	if c.Type != nil {
		values.Set(models.FilterKeyType, string(*c.Type))
	}

	if c.Location != nil {
		values.Set(models.FilterKeyLocation, *c.Location)
	}

	if c.MinSalary != nil {
		values.Set(models.FilterKeyMinSalary, strconv.Itoa(*c.MinSalary))
	}

	if c.MaxSalary != nil {
		values.Set(models.FilterKeyMaxSalary, strconv.Itoa(*c.MaxSalary))
	}

	if c.Search != nil {
		values.Set(models.FilterKeySearch, *c.Search)
	}

	return values
}

// ParseApplication reads an application from submitted form values. Required
// fields are passed through as-is; optional ones are nil when absent or empty.
func ParseApplication(values url.Values) models.ApplicationData {
	return models.ApplicationData{
		FullName:     values.Get(models.FieldFullName),
		Email:        values.Get(models.FieldEmail),
		Phone:        optional(values.Get(models.FieldPhone)),
		Resume:       optional(values.Get(models.FieldResume)),
		CoverLetter:  optional(values.Get(models.FieldCoverLetter)),
		LinkedInURL:  optional(values.Get(models.FieldLinkedInURL)),
		PortfolioURL: optional(values.Get(models.FieldPortfolioURL)),
	}
}

// FromMap converts decoded JSON string fields to url.Values so that JSON
// bodies go through the same parsing as forms.
func FromMap(m map[string]string) url.Values {
	values := make(url.Values, len(m))
	for k, v := range m {
		values.Set(k, v)
	}
	return values
}

// FromArgs reads bot command arguments. Tokens of the form key=value set
// that key; every other token is a search word. Search words are joined with
// spaces and used as the search value unless search= was given explicitly.
func FromArgs(args []string) url.Values {
	values := url.Values{}
	var words []string

	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if ok && isFilterKey(key) {
			values.Set(key, value)
			continue
		}
		if arg != "" {
			words = append(words, arg)
		}
	}

	if len(words) > 0 && !values.Has(models.FilterKeySearch) {
		values.Set(models.FilterKeySearch, strings.Join(words, " "))
	}

	return values
}

func isFilterKey(key string) bool {
	for _, k := range models.FilterKeys() {
		if k == key {
			return true
		}
	}
	return false
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// parseInt reads a leading base-10 integer: leading whitespace and a sign are
// allowed and anything after the digits is ignored, so "120k" is 120. Input
// without leading digits yields nil; out of range values clamp to the int
// limits.
func parseInt(s string) *int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}

	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == digitsStart {
		return nil
	}

	// only ErrRange is possible here; Atoi has already clamped n
	n, err := strconv.Atoi(s[:end])
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil
	}

	return &n
}
