//nolint:revive // types is a standard Go package name pattern
package types

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContent() ResumeContent {
	return ResumeContent{
		Header:    Header{Name: "Jane Doe", Phone: "555-0100", Email: "jane@x.com"},
		Summary:   Summary{Description: "Short bio."},
		TopSkills: TopSkills{Skills: []string{"Go", "SQL", "Kubernetes", "Terraform", "gRPC", "Kafka"}},
		Experience: Experience{Positions: []Job{{
			Company: "Acme", Position: "Engineer", YearStart: "2019", YearEnd: "2023",
			Bullets: []string{"Built things"},
		}}},
		Education: Education{School: "State University", Degree: "B.S.", GPA: "3.8", GradYear: "2019"},
	}
}

func TestResumeContent_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ResumeContent)
		wantErr string
	}{
		{"valid", func(*ResumeContent) {}, ""},
		{"missing name", func(c *ResumeContent) { c.Header.Name = "" }, "Name"},
		{"bad email", func(c *ResumeContent) { c.Header.Email = "not-an-email" }, "Email"},
		{"five skills", func(c *ResumeContent) { c.TopSkills.Skills = c.TopSkills.Skills[:5] }, "Skills"},
		{"blank skill", func(c *ResumeContent) { c.TopSkills.Skills[2] = "" }, "Skills[2]"},
		{"job without company", func(c *ResumeContent) { c.Experience.Positions[0].Company = "" }, "Company"},
		{"missing school", func(c *ResumeContent) { c.Education.School = "" }, "School"},
		{"no positions", func(c *ResumeContent) { c.Experience.Positions = nil }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := validContent()
			tt.mutate(&content)

			err := content.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var validationErrs validator.ValidationErrors
			require.True(t, errors.As(err, &validationErrs))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewSkillGrid(t *testing.T) {
	grid, err := NewSkillGrid([]string{"a", "b", "c", "d", "e", "f"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "d"}, grid.Column(0))
	assert.Equal(t, []string{"b", "e"}, grid.Column(1))
	assert.Equal(t, []string{"c", "f"}, grid.Column(2))
}

func TestNewSkillGrid_WrongCount(t *testing.T) {
	for _, skills := range [][]string{nil, {"a", "b", "c", "d", "e"}, {"a", "b", "c", "d", "e", "f", "g"}} {
		_, err := NewSkillGrid(skills)
		require.Error(t, err)

		var shapeErr *ContentShapeError
		require.ErrorAs(t, err, &shapeErr)
		assert.Equal(t, SkillGridSize, shapeErr.Want)
		assert.Equal(t, len(skills), shapeErr.Got)
		assert.Contains(t, err.Error(), "top_skills.skills")
	}
}

func TestNewSkillGrid_CopiesInput(t *testing.T) {
	skills := []string{"a", "b", "c", "d", "e", "f"}
	grid, err := NewSkillGrid(skills)
	require.NoError(t, err)

	skills[0] = "changed"
	assert.Equal(t, "a", grid[0])
}
