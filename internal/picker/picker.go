// Package picker provides the Bubble Tea dictionary chooser shown by --pick.
package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/mecano/internal/config"
)

// Entry is one selectable word list. An empty Path means the embedded list.
type Entry struct {
	Name  string
	Path  string
	Words int
}

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

// FromDictionaries prepends the embedded list to the dictionaries found on
// disk. count returns the number of words of a file, or an error to show the
// entry without a count.
func FromDictionaries(dicts []config.Dictionary, builtin string, builtinWords int, count func(path string) (int, error)) []Entry {
	entries := make([]Entry, 0, len(dicts)+1)
	entries = append(entries, Entry{Name: builtin, Words: builtinWords})
	for _, d := range dicts {
		if d.Name == builtin {
			entries[0] = Entry{Name: d.Name, Path: d.Path, Words: -1}
			if n, err := count(d.Path); err == nil {
				entries[0].Words = n
			}
			continue
		}
		entry := Entry{Name: d.Name, Path: d.Path, Words: -1}
		if n, err := count(d.Path); err == nil {
			entry.Words = n
		}
		entries = append(entries, entry)
	}
	return entries
}

// Model implements the Bubble Tea picker.
type Model struct {
	entries []Entry
	visible []Entry

	table     table.Model
	filter    textinput.Model
	filtering bool

	width  int
	height int

	chosen    Entry
	hasChoice bool
}

// NewModel constructs a picker over entries.
func NewModel(entries []Entry) *Model {
	m := &Model{entries: entries}
	m.filter = textinput.New()
	m.filter.Prompt = "Filter: "
	m.filter.Placeholder = "name"
	m.table = table.New(
		table.WithColumns(columns(0)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	m.table.SetStyles(tableStyles())
	m.applyFilter()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.filtering {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "/":
			m.filtering = true
			return m, m.filter.Focus()
		case "enter":
			if idx := m.table.Cursor(); idx >= 0 && idx < len(m.visible) {
				m.chosen = m.visible[idx]
				m.hasChoice = true
			}
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		if msg.Type == tea.KeyEsc {
			m.filter.SetValue("")
			m.applyFilter()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *Model) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	m.visible = m.visible[:0]
	for _, e := range m.entries {
		if query == "" || strings.Contains(strings.ToLower(e.Name), query) {
			m.visible = append(m.visible, e)
		}
	}
	rows := make([]table.Row, 0, len(m.visible))
	for _, e := range m.visible {
		rows = append(rows, entryRow(e))
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(0, len(rows)-1))
	}
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.table.SetColumns(columns(m.width))
	m.table.SetWidth(m.width)
	m.table.SetHeight(max(1, m.height-4))
}

// View implements tea.Model.
func (m *Model) View() string {
	parts := []string{titleStyle.Render("Choose a word list")}
	if len(m.visible) == 0 {
		parts = append(parts, emptyStyle.Render("No word list matches."))
	} else {
		parts = append(parts, m.table.View())
	}
	if m.filtering || m.filter.Value() != "" {
		parts = append(parts, m.filter.View())
	}
	parts = append(parts, footerStyle.Render("enter: choose  /: filter  q: cancel"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Choice returns the chosen entry, if any.
func (m *Model) Choice() (Entry, bool) {
	return m.chosen, m.hasChoice
}

// Run shows the picker and returns the chosen entry.
func Run(entries []Entry, opts ...tea.ProgramOption) (Entry, bool, error) {
	model := NewModel(entries)
	program := tea.NewProgram(model, opts...)
	final, err := program.Run()
	if err != nil {
		return Entry{}, false, fmt.Errorf("failed to run picker: %w", err)
	}
	chosen, ok := final.(*Model).Choice()
	return chosen, ok, nil
}

func columns(width int) []table.Column {
	nameWidth, wordsWidth := 20, 8
	pathWidth := 40
	if width > 0 {
		pathWidth = max(10, width-nameWidth-wordsWidth-6)
	}
	return []table.Column{
		{Title: "Name", Width: nameWidth},
		{Title: "Words", Width: wordsWidth},
		{Title: "Location", Width: pathWidth},
	}
}

func entryRow(e Entry) table.Row {
	words := "?"
	if e.Words >= 0 {
		words = fmt.Sprintf("%d", e.Words)
	}
	location := e.Path
	if location == "" {
		location = "(built in)"
	}
	return table.Row{e.Name, words, location}
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		PaddingLeft(0)
	styles.Cell = styles.Cell.PaddingLeft(0)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}
