package layout

import (
	"errors"
	"log"

	"github.com/jonathan/resume-pdf/internal/types"
)

// Options tunes a render pass. The zero value is ready to use.
type Options struct {
	// Logger receives markup diagnostics. Defaults to log.Default().
	Logger *log.Logger
}

// SectionTrace records where one section landed on the page.
type SectionTrace struct {
	Name   string  `json:"name"`
	StartY float64 `json:"start_y"` // content start, below the title
	EndY   float64 `json:"end_y"`   // separator line
}

// Document is the finished output of a render pass.
type Document struct {
	Bytes    []byte
	Page     PageConfig
	Sections []SectionTrace
	Warnings []MarkupWarning
	FinalY   float64
}

// Render lays out content on the default page through backend, one section at a time
// in the fixed order Header, Summary, Top Skills, Experience, Education, and returns
// the finished document. Content shape is checked before anything is drawn. The first
// failure aborts the pass.
func Render(content *types.ResumeContent, backend Backend, opts Options) (*Document, error) {
	if content == nil {
		return nil, errors.New("resume content is nil")
	}
	if backend == nil {
		return nil, errors.New("backend is nil")
	}
	grid, err := types.NewSkillGrid(content.TopSkills.Skills)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	page := DefaultPageConfig()
	p := &pass{backend: backend, page: page, logger: logger}

	steps := []struct {
		name   string
		render func(Cursor) (Cursor, error)
	}{
		{SectionHeader, func(c Cursor) (Cursor, error) { return p.renderHeader(c, content.Header) }},
		{SectionSummary, func(c Cursor) (Cursor, error) { return p.renderSummary(c, content.Summary) }},
		{SectionTopSkills, func(c Cursor) (Cursor, error) { return p.renderTopSkills(c, grid) }},
		{SectionExperience, func(c Cursor) (Cursor, error) { return p.renderExperience(c, content.Experience) }},
		{SectionEducation, func(c Cursor) (Cursor, error) { return p.renderEducation(c, content.Education) }},
	}

	doc := &Document{Page: page, Sections: make([]SectionTrace, 0, len(steps))}
	cursor := NewCursor(page)
	for _, step := range steps {
		p.section = step.name
		next, err := step.render(cursor)
		if err != nil {
			return nil, &RenderError{Section: step.name, Cause: err}
		}
		cursor = next
		doc.Sections = append(doc.Sections, SectionTrace{
			Name:   step.name,
			StartY: cursor.ContentStart,
			EndY:   cursor.Y,
		})
	}

	data, err := backend.Finish()
	if err != nil {
		return nil, &RenderError{Section: "finish", Cause: err}
	}
	doc.Bytes = data
	doc.Warnings = p.warnings
	doc.FinalY = cursor.Y
	return doc, nil
}
