package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidJobType(t *testing.T) {
	for _, jt := range JobTypes() {
		assert.True(t, IsValidJobType(string(jt)), jt)
	}

	assert.False(t, IsValidJobType("Full Time"))
	assert.False(t, IsValidJobType("FULL-TIME"))
	assert.False(t, IsValidJobType(""))
}

func TestGetJobTypeDisplayName(t *testing.T) {
	assert.Equal(t, "Full Time", GetJobTypeDisplayName(JobTypeFullTime))
	assert.Equal(t, "Internship", GetJobTypeDisplayName(JobTypeInternship))
	assert.Equal(t, "freelance", GetJobTypeDisplayName(JobType("freelance")))
}

func TestFilterCriteriaIsEmpty(t *testing.T) {
	assert.True(t, FilterCriteria{}.IsEmpty())

	min := 0
	assert.False(t, FilterCriteria{MinSalary: &min}.IsEmpty())

	search := ""
	assert.False(t, FilterCriteria{Search: &search}.IsEmpty())
}

func TestFilterCriteriaWithout(t *testing.T) {
	jt := JobTypeContract
	loc := "Remote"
	c := FilterCriteria{Type: &jt, Location: &loc}

	withoutType := c.Without(FilterKeyType)
	assert.Nil(t, withoutType.Type)
	assert.Equal(t, &loc, withoutType.Location)

	// receiver is untouched
	assert.NotNil(t, c.Type)

	assert.True(t, c.Without(FilterKeyType).Without(FilterKeyLocation).IsEmpty())
	assert.Equal(t, c, c.Without("unknown"))
}
