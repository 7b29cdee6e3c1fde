// Package tui provides interactive terminal UI components.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lepinkainen/bookshelf/internal/book"
)

const (
	defaultListWidth  = 72
	defaultListHeight = 20
)

var runProgram = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m).Run()
}

// SelectionAction represents the user's action in the selection UI.
type SelectionAction int

const (
	// ActionNone indicates no action was taken.
	ActionNone SelectionAction = iota
	// ActionSelected indicates the user selected an item.
	ActionSelected
	// ActionSkipped indicates the user skipped the selection.
	ActionSkipped
	// ActionStopped indicates the user stopped processing entirely.
	ActionStopped
)

// SelectionResult holds the result of a TUI selection.
type SelectionResult struct {
	Action    SelectionAction
	Index     int // position of Selection in the list passed to Select
	Selection book.Book
}

type bookItem struct {
	index int
	book  book.Book
}

func (i bookItem) Title() string {
	return fmt.Sprintf("%s (%d)", strings.ToUpper(i.book.Title()), i.book.Year())
}

func (i bookItem) FilterValue() string {
	return i.book.Title()
}

func (i bookItem) Description() string {
	return i.book.Describe()
}

type itemStyles struct {
	normal        lipgloss.Style
	selected      lipgloss.Style
	typeStyle     lipgloss.Style
	titleStyle    lipgloss.Style
	metadataStyle lipgloss.Style
}

func newItemStyles() itemStyles {
	asciiBorder := lipgloss.Border{
		Top:         "-",
		Bottom:      "-",
		Left:        "|",
		Right:       "|",
		TopLeft:     "+",
		TopRight:    "+",
		BottomLeft:  "+",
		BottomRight: "+",
	}

	container := lipgloss.NewStyle().
		Border(asciiBorder).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1).
		Foreground(lipgloss.Color("252"))

	selected := container.Copy().
		BorderForeground(lipgloss.Color("214")).
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("237"))

	return itemStyles{
		normal:   container,
		selected: selected,
		typeStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("110")),
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("254")),
		metadataStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("247")).
			Faint(true),
	}
}

type bookDelegate struct {
	styles itemStyles
}

func newDelegate() bookDelegate {
	return bookDelegate{styles: newItemStyles()}
}

func (d bookDelegate) Height() int                         { return 4 }
func (d bookDelegate) Spacing() int                        { return 1 }
func (d bookDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d bookDelegate) Render(w io.Writer, m list.Model, idx int, item list.Item) {
	it, ok := item.(bookItem)
	if !ok {
		return
	}

	typeLine := d.styles.typeStyle.Render(fmt.Sprintf("[%s]", strings.ToUpper(it.book.Kind().FactoryTag())))
	titleLine := d.styles.titleStyle.Render(it.Title())
	metadataLine := d.styles.metadataStyle.Render(truncate(formatMetadata(it.book), m.Width()-4))

	content := lipgloss.JoinVertical(lipgloss.Left, typeLine, titleLine, metadataLine)

	container := d.styles.normal
	if idx == m.Index() {
		container = d.styles.selected
	}
	_, _ = fmt.Fprint(w, container.Render(content))
}

type model struct {
	list   list.Model
	header string
	result SelectionResult
}

func newModel(header string, books []book.Book) *model {
	listItems := make([]list.Item, len(books))
	for i, b := range books {
		listItems[i] = bookItem{index: i, book: b}
	}

	l := list.New(listItems, newDelegate(), defaultListWidth, defaultListHeight)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.Styles.NoItems = lipgloss.NewStyle()

	return &model{
		list:   l,
		header: header,
		result: SelectionResult{Action: ActionNone, Index: -1},
	}
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if selected, ok := m.list.SelectedItem().(bookItem); ok {
				m.result = SelectionResult{
					Action:    ActionSelected,
					Index:     selected.index,
					Selection: selected.book,
				}
				return m, tea.Quit
			}
		case "s", "esc":
			m.result = SelectionResult{Action: ActionSkipped, Index: -1}
			return m, tea.Quit
		case "ctrl+c", "q":
			m.result = SelectionResult{Action: ActionStopped, Index: -1}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		width := clamp(defaultListWidth, msg.Width-4, 40)
		height := clamp(defaultListHeight, msg.Height-6, 5)
		m.list.SetSize(width, height)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	header := headerStyle.Render(m.header)
	buttons := lipgloss.JoinHorizontal(
		lipgloss.Left,
		skipButtonStyle.Render(" Skip "),
		lipgloss.NewStyle().Padding(0, 2).Render(""),
		stopButtonStyle.Render(" Quit "),
	)
	help := helpStyle.Render("Up/Down navigate | Enter select | s skip | q quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, m.list.View(), buttons, help)
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			MarginBottom(1)

	skipButtonStyle = lipgloss.NewStyle().
			MarginTop(1).
			Padding(0, 2).
			Background(lipgloss.Color("178")).
			Foreground(lipgloss.Color("0")).
			Bold(true)

	stopButtonStyle = lipgloss.NewStyle().
			MarginTop(1).
			Padding(0, 2).
			Background(lipgloss.Color("161")).
			Foreground(lipgloss.Color("230")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			MarginTop(1).
			Foreground(lipgloss.Color("244"))
)

// Select presents an interactive picker over books. An empty list is
// reported as skipped without starting the UI.
func Select(header string, books []book.Book) (SelectionResult, error) {
	if len(books) == 0 {
		return SelectionResult{Action: ActionSkipped, Index: -1}, nil
	}

	finalModel, err := runProgram(newModel(header, books))
	if err != nil {
		return SelectionResult{}, err
	}

	if typed, ok := finalModel.(*model); ok {
		return typed.result, nil
	}

	return SelectionResult{}, fmt.Errorf("unexpected program result")
}

func truncate(value string, width int) string {
	value = strings.Join(strings.Fields(value), " ")
	if width <= 0 || len(value) <= width {
		return value
	}
	if width <= 3 {
		return value[:width]
	}
	return value[:width-3] + "..."
}

// formatMetadata creates the metadata line: author, genre and the variant extras.
func formatMetadata(b book.Book) string {
	var parts []string
	if b.Author() != "" {
		parts = append(parts, b.Author())
	}
	if b.Genre() != "" {
		parts = append(parts, b.Genre())
	}

	switch v := b.(type) {
	case *book.Fiction:
		parts = append(parts, v.Style())
	case *book.Academic:
		parts = append(parts, v.Field(), v.University())
	case *book.Magazine:
		parts = append(parts, fmt.Sprintf("#%d", v.IssueNumber()), v.Month())
	}

	nonEmpty := parts[:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	if len(nonEmpty) == 0 {
		return "No metadata available"
	}
	return strings.Join(nonEmpty, " | ")
}

func clamp(defaultValue, available, minimum int) int {
	width := defaultValue
	if available > 0 && available < defaultValue {
		width = available
	}
	if width < minimum {
		width = minimum
	}
	return width
}
