package book

import "fmt"

// Fiction is a novel or other work of fiction.
type Fiction struct {
	common
	style string
}

// FictionConfig holds everything needed to construct a Fiction.
type FictionConfig struct {
	Base
	Style string
}

// NewFiction creates a Fiction from cfg.
func NewFiction(cfg FictionConfig) *Fiction {
	return &Fiction{common: newCommon(cfg.Base), style: cfg.Style}
}

func (f *Fiction) Kind() Kind     { return KindFiction }
func (f *Fiction) Style() string  { return f.style }
func (f *Fiction) String() string { return f.Describe() }

func (f *Fiction) Describe() string {
	return fmt.Sprintf("Fiction: '%s' by %s (%d), genre: %s, style: %s",
		f.title, f.author, f.year, f.genre, f.style)
}

// Academic is a textbook or research title tied to a field and a university.
type Academic struct {
	common
	field      string
	university string
}

// AcademicConfig holds everything needed to construct an Academic.
type AcademicConfig struct {
	Base
	Field      string
	University string
}

// NewAcademic creates an Academic from cfg.
func NewAcademic(cfg AcademicConfig) *Academic {
	return &Academic{common: newCommon(cfg.Base), field: cfg.Field, university: cfg.University}
}

func (a *Academic) Kind() Kind         { return KindAcademic }
func (a *Academic) Field() string      { return a.field }
func (a *Academic) University() string { return a.university }
func (a *Academic) String() string     { return a.Describe() }

func (a *Academic) Describe() string {
	return fmt.Sprintf("Academic: '%s' by %s (%d), genre: %s, field: %s, university: %s",
		a.title, a.author, a.year, a.genre, a.field, a.university)
}

// Magazine is a single periodical issue.
type Magazine struct {
	common
	issueNumber int
	month       string
}

// MagazineConfig holds everything needed to construct a Magazine.
type MagazineConfig struct {
	Base
	IssueNumber int
	Month       string
}

// NewMagazine creates a Magazine from cfg.
func NewMagazine(cfg MagazineConfig) *Magazine {
	return &Magazine{common: newCommon(cfg.Base), issueNumber: cfg.IssueNumber, month: cfg.Month}
}

func (m *Magazine) Kind() Kind       { return KindMagazine }
func (m *Magazine) IssueNumber() int { return m.issueNumber }
func (m *Magazine) Month() string    { return m.month }
func (m *Magazine) String() string   { return m.Describe() }

func (m *Magazine) Describe() string {
	return fmt.Sprintf("Magazine: '%s' by %s (%d), genre: %s, issue: %d, month: %s",
		m.title, m.author, m.year, m.genre, m.issueNumber, m.month)
}
