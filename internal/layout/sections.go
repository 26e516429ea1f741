package layout

import (
	"log"

	"github.com/jonathan/resume-pdf/internal/types"
)

// Section names, in render order.
const (
	SectionHeader     = "Header"
	SectionSummary    = "Summary"
	SectionTopSkills  = "Top Skills"
	SectionExperience = "Experience"
	SectionEducation  = "Education"
)

const (
	summaryWidthAllowance = 0.5
	// skillGridInset is the gap between the left margin and the first grid column.
	skillGridInset = 0.1
	// skillCellShrink is taken off a third of the page width to get a grid cell width.
	skillCellShrink = 0.3
	// skillGridLineHeightFactor spaces the two rows of the skill grid.
	skillGridLineHeightFactor = 1.9
	// bulletNudge drops a job's bullet block below its header line.
	bulletNudge = 0.05
)

// pass carries what every section renderer shares during one render: the backend,
// the page policy and the collected warnings. The cursor is not part of it; each
// renderer receives the cursor and returns its successor.
type pass struct {
	backend  Backend
	page     PageConfig
	logger   *log.Logger
	section  string
	warnings []MarkupWarning
}

func (p *pass) lineHeight() float64 {
	return p.backend.LineHeight(p.page.TextFontSize)
}

// drawMarkup parses text for bold spans and draws it at (x, y) in body size.
func (p *pass) drawMarkup(text string, x, y float64, align Align) error {
	runs, balanced := ParseMarkup(text)
	if !balanced {
		w := MarkupWarning{Section: p.section, Text: text}
		p.warnings = append(p.warnings, w)
		p.logger.Printf("Warning: %s", w)
	}
	_, err := DrawRuns(p.backend, runs, x, y, p.page.TextFontSize, align)
	return err
}

// renderHeader uses the candidate's name as the section title and stacks the phone
// and email lines against the right margin, starting level with the title.
func (p *pass) renderHeader(c Cursor, header types.Header) (Cursor, error) {
	c, err := c.BeginSection(p.backend, header.Name)
	if err != nil {
		return c, err
	}
	lh := p.lineHeight()
	right := p.page.RightEdge()

	if err := p.drawMarkup("Phone: **"+header.Phone+"**", right, p.page.TopMargin, AlignRight); err != nil {
		return c, err
	}
	if err := p.drawMarkup("Email: **"+header.Email+"**", right, p.page.TopMargin+lh, AlignRight); err != nil {
		return c, err
	}

	return c.EndSection(p.backend, lh)
}

func (p *pass) renderSummary(c Cursor, summary types.Summary) (Cursor, error) {
	c, err := c.BeginSection(p.backend, SectionSummary)
	if err != nil {
		return c, err
	}
	lh := p.lineHeight()
	lines, err := WrapText(p.backend, summary.Description, p.page.SummaryWidth(), p.page.TextStyle(FaceNormal))
	if err != nil {
		return c, err
	}

	var delta float64
	for i, line := range lines {
		delta = lh * float64(i)
		if err := p.drawMarkup(line, p.page.LeftMargin, c.Y+delta, AlignLeft); err != nil {
			return c, err
		}
	}

	return c.EndSection(p.backend, delta)
}

// renderTopSkills draws the grid as three columns of two, skills[i] above skills[i+3].
func (p *pass) renderTopSkills(c Cursor, grid types.SkillGrid) (Cursor, error) {
	c, err := c.BeginSection(p.backend, SectionTopSkills)
	if err != nil {
		return c, err
	}
	lh := p.lineHeight()
	cellWidth := p.page.PageWidth/3 - skillCellShrink
	x := p.page.LeftMargin + skillGridInset
	style := p.page.TextStyle(FaceBold)

	for col := 0; col < 3; col++ {
		colX := x + cellWidth*float64(col)
		if err := p.backend.TextLines(grid.Column(col), colX, c.Y, style, skillGridLineHeightFactor); err != nil {
			return c, err
		}
	}

	return c.EndSection(p.backend, 2*lh)
}

// renderExperience stacks the jobs, leaving one blank line after each. The blank
// line after the last job is folded into the section end spacing.
func (p *pass) renderExperience(c Cursor, experience types.Experience) (Cursor, error) {
	c, err := c.BeginSection(p.backend, SectionExperience)
	if err != nil {
		return c, err
	}
	lh := p.lineHeight()

	y := c.Y
	for _, job := range experience.Positions {
		lines, err := p.renderJob(y, job)
		if err != nil {
			return c, err
		}
		y += float64(1+lines) * lh
	}

	var delta float64
	if len(experience.Positions) > 0 {
		delta = y - c.Y - lh
	}
	return c.EndSection(p.backend, delta)
}

// renderJob draws one job whose header line sits at y and returns the number of lines
// in its bullet block, including the leading blank line.
func (p *pass) renderJob(y float64, job types.Job) (int, error) {
	left := p.page.LeftMargin
	italic := p.page.TextStyle(FaceItalic)
	normal := p.page.TextStyle(FaceNormal)

	if err := p.backend.Text(job.Company, left, y, italic, AlignLeft); err != nil {
		return 0, err
	}
	companyWidth, err := p.backend.StringWidth(job.Company, italic)
	if err != nil {
		return 0, err
	}
	if err := p.drawMarkup(" : \t **"+job.Position+"**", left+companyWidth, y, AlignLeft); err != nil {
		return 0, err
	}

	dates := "[ " + job.YearStart + " - " + job.YearEnd + " ]"
	if err := p.backend.Text(dates, p.page.RightEdge(), y, normal, AlignRight); err != nil {
		return 0, err
	}

	bullets, err := WrapBullets(p.backend, job.Bullets, p.page.BulletWidth(), normal)
	if err != nil {
		return 0, err
	}
	lines := append([]string{""}, bullets...)
	if err := p.backend.TextLines(lines, left, y+bulletNudge, normal, DefaultLineHeightFactor); err != nil {
		return 0, err
	}
	return len(lines), nil
}

func (p *pass) renderEducation(c Cursor, education types.Education) (Cursor, error) {
	c, err := c.BeginSection(p.backend, SectionEducation)
	if err != nil {
		return c, err
	}
	lh := p.lineHeight()
	normal := p.page.TextStyle(FaceNormal)

	lines := []string{education.School, education.Degree, education.GPA}
	if err := p.backend.TextLines(lines, p.page.LeftMargin, c.Y, normal, DefaultLineHeightFactor); err != nil {
		return c, err
	}
	if err := p.backend.Text("[ "+education.GradYear+" ]", p.page.RightEdge(), c.Y, normal, AlignRight); err != nil {
		return c, err
	}

	return c.EndSection(p.backend, 3*lh)
}
