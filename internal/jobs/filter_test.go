package jobs

import (
	"testing"

	"job-board/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestApplyEmptyCriteriaIsIdentity(t *testing.T) {
	jobs := sampleJobs()

	got := Apply(jobs, models.FilterCriteria{})
	assert.Equal(t, jobs, got)

	assert.Empty(t, Apply(nil, models.FilterCriteria{}))
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		criteria models.FilterCriteria
		want     []string
	}{
		{
			name:     "type contract",
			criteria: models.FilterCriteria{Type: typePtr(models.JobTypeContract)},
			want:     []string{"4"},
		},
		{
			name:     "type with no matches",
			criteria: models.FilterCriteria{Type: typePtr(models.JobTypePartTime)},
			want:     []string{},
		},
		{
			name:     "location is case insensitive",
			criteria: models.FilterCriteria{Location: strPtr("remote")},
			want:     []string{"2", "5"},
		},
		{
			name:     "location substring",
			criteria: models.FilterCriteria{Location: strPtr(", NY")},
			want:     []string{"3"},
		},
		{
			name:     "min salary matches on range top",
			criteria: models.FilterCriteria{MinSalary: intPtr(140000)},
			want:     []string{"1", "2"},
		},
		{
			name:     "min salary equal to max counts",
			criteria: models.FilterCriteria{MinSalary: intPtr(130000)},
			want:     []string{"1", "2", "3"},
		},
		{
			name:     "max salary matches on range bottom",
			criteria: models.FilterCriteria{MaxSalary: intPtr(95000)},
			want:     []string{"3", "4"},
		},
		{
			name:     "zero min salary still excludes unsalaried",
			criteria: models.FilterCriteria{MinSalary: intPtr(0)},
			want:     []string{"1", "2", "3", "4"},
		},
		{
			name:     "overlap with both bounds",
			criteria: models.FilterCriteria{MinSalary: intPtr(125000), MaxSalary: intPtr(125000)},
			want:     []string{"1", "2", "3"},
		},
		{
			name:     "inverted bounds are accepted",
			criteria: models.FilterCriteria{MinSalary: intPtr(200000), MaxSalary: intPtr(10)},
			want:     []string{},
		},
		{
			name:     "search title",
			criteria: models.FilterCriteria{Search: strPtr("REACT")},
			want:     []string{"1", "3"},
		},
		{
			name:     "search company",
			criteria: models.FilterCriteria{Search: strPtr("startupxyz")},
			want:     []string{"2"},
		},
		{
			name:     "search description",
			criteria: models.FilterCriteria{Search: strPtr("Mentorship")},
			want:     []string{"5"},
		},
		{
			name: "criteria combine with and",
			criteria: models.FilterCriteria{
				Type:      typePtr(models.JobTypeFullTime),
				Location:  strPtr("remote"),
				MinSalary: intPtr(100000),
			},
			want: []string{"2"},
		},
		{
			name: "unsalaried job excluded even when other criteria match",
			criteria: models.FilterCriteria{
				Type:      typePtr(models.JobTypeInternship),
				MaxSalary: intPtr(1000000),
			},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(sampleJobs(), tt.criteria)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApplyTypeFilterOnlyReturnsThatType(t *testing.T) {
	for _, jt := range models.JobTypes() {
		for _, job := range Apply(sampleJobs(), models.FilterCriteria{Type: typePtr(jt)}) {
			assert.Equal(t, jt, job.Type)
		}
	}
}

func TestApplyFoldsUnicode(t *testing.T) {
	jobs := []models.Job{
		{ID: "a", Title: "Urban Planner", Location: "MÜNCHEN"},
		{ID: "b", Title: "GÄRTNER", Location: "Köln"},
	}

	got := Apply(jobs, models.FilterCriteria{Location: strPtr("münchen")})
	assert.Equal(t, []string{"a"}, ids(got))

	got = Apply(jobs, models.FilterCriteria{Search: strPtr("gärtner")})
	assert.Equal(t, []string{"b"}, ids(got))
}
