// Package picker renders the interactive project list.
package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/anna-singleton/tps/internal/userpath"
	"github.com/anna-singleton/tps/internal/workspace"
)

type row struct {
	project      workspace.Project
	matchIndexes []int
}

// Model implements tea.Model for the project picker. Projects are shown in
// ranked order; typing narrows the list with fuzzy matching.
type Model struct {
	input    textinput.Model
	projects []workspace.Project
	rows     []row
	cursor   int
	height   int
	chosen   bool
	aborted  bool
	choice   workspace.Project
}

// New builds a picker over the ranked project list.
func New(projects []workspace.Project) Model {
	input := textinput.New()
	input.Prompt = "> "
	input.PromptStyle = promptStyle
	input.Placeholder = "type to filter"
	input.Focus()
	m := Model{
		input:    input,
		projects: projects,
		height:   24,
	}
	m.rows = filterRows(projects, "")
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Height > 0 {
			m.height = msg.Height
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			if len(m.rows) == 0 {
				return m, nil
			}
			m.chosen = true
			m.choice = m.rows[m.cursor].project
			return m, tea.Quit
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.rows = filterRows(m.projects, m.input.Value())
		if m.cursor >= len(m.rows) {
			m.cursor = 0
		}
	}
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("%d/%d projects", len(m.rows), len(m.projects))))
	b.WriteString("\n\n")

	visible := m.height - 4
	if visible < 1 {
		visible = 1
	}
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for i := start; i < end; i++ {
		r := m.rows[i]
		marker := "  "
		nameStyle := normalStyle
		if i == m.cursor {
			marker = markerStyle.Render("> ")
			nameStyle = selectedStyle
		}
		b.WriteString(marker)
		b.WriteString(renderName(r.project.Name, r.matchIndexes, nameStyle))
		b.WriteString("  ")
		b.WriteString(pathStyle.Render(userpath.ShortenUser(r.project.Path)))
		b.WriteString("\n")
	}
	if len(m.rows) == 0 {
		b.WriteString(statusStyle.Render("  no matching projects"))
		b.WriteString("\n")
	}
	return b.String()
}

// Selection returns the picked project, false when the picker was aborted.
func (m Model) Selection() (workspace.Project, bool) {
	if !m.chosen || m.aborted {
		return workspace.Project{}, false
	}
	return m.choice, true
}

func renderName(name string, matchIndexes []int, base lipgloss.Style) string {
	if len(matchIndexes) == 0 {
		return base.Render(name)
	}
	matched := make(map[int]struct{}, len(matchIndexes))
	for _, idx := range matchIndexes {
		matched[idx] = struct{}{}
	}
	var b strings.Builder
	for i, r := range []rune(name) {
		if _, ok := matched[i]; ok {
			b.WriteString(matchStyle.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

func filterRows(projects []workspace.Project, query string) []row {
	query = strings.TrimSpace(query)
	rows := make([]row, 0, len(projects))
	if query == "" {
		for _, p := range projects {
			rows = append(rows, row{project: p})
		}
		return rows
	}
	matches := fuzzy.FindFrom(query, projectSource(projects))
	for _, match := range matches {
		rows = append(rows, row{
			project:      projects[match.Index],
			matchIndexes: match.MatchedIndexes,
		})
	}
	return rows
}

type projectSource []workspace.Project

func (s projectSource) String(i int) string { return s[i].Name }

func (s projectSource) Len() int { return len(s) }

// Run drives the picker to completion and reports the selection.
func Run(projects []workspace.Project) (workspace.Project, bool, error) {
	p := tea.NewProgram(New(projects), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return workspace.Project{}, false, err
	}
	m, ok := final.(Model)
	if !ok {
		return workspace.Project{}, false, fmt.Errorf("unexpected picker model %T", final)
	}
	project, picked := m.Selection()
	return project, picked, nil
}
