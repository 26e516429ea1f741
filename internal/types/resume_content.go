// Package types provides type definitions for structured data used throughout the resume-pdf system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// SkillGridSize is the number of entries the Top Skills grid holds (3 columns x 2 rows).
const SkillGridSize = 6

// ResumeContent is the read-only input to a render pass.
type ResumeContent struct {
	Header     Header     `json:"header"`
	Summary    Summary    `json:"summary"`
	TopSkills  TopSkills  `json:"top_skills"`
	Experience Experience `json:"experience"`
	Education  Education  `json:"education"`
}

// Header holds the candidate's name and contact lines.
type Header struct {
	Name  string `json:"name" validate:"required,min=1"`
	Phone string `json:"phone" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// Summary holds the free-form description paragraph. It may contain **bold** spans.
type Summary struct {
	Description string `json:"description"`
}

// TopSkills holds the skills shown in the grid. Exactly SkillGridSize entries are required.
type TopSkills struct {
	Skills []string `json:"skills" validate:"len=6,dive,required"`
}

// Experience holds the ordered list of positions.
type Experience struct {
	Positions []Job `json:"positions" validate:"dive"`
}

// Job is a single position in the Experience section.
type Job struct {
	Company   string   `json:"company" validate:"required"`
	Position  string   `json:"position" validate:"required"`
	YearStart string   `json:"year_start" validate:"required"`
	YearEnd   string   `json:"year_end" validate:"required"`
	Bullets   []string `json:"bullets"`
}

// Education holds the degree block.
type Education struct {
	School   string `json:"school" validate:"required"`
	Degree   string `json:"degree"`
	GPA      string `json:"gpa"`
	GradYear string `json:"grad_year"`
}

// Validate validates the ResumeContent using the validator.
func (c *ResumeContent) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// SkillGrid is the fixed-size Top Skills grid. Index i sits above index i+3.
type SkillGrid [SkillGridSize]string

// NewSkillGrid copies skills into a SkillGrid, failing when the count is not exactly SkillGridSize.
func NewSkillGrid(skills []string) (SkillGrid, error) {
	var grid SkillGrid
	if len(skills) != SkillGridSize {
		return grid, &ContentShapeError{
			Field: "top_skills.skills",
			Want:  SkillGridSize,
			Got:   len(skills),
		}
	}
	copy(grid[:], skills)
	return grid, nil
}

// Column returns the two skills stacked in grid column col (0..2).
func (g SkillGrid) Column(col int) []string {
	return []string{g[col], g[col+3]}
}
