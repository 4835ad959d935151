// Package picker is a small interactive flow for installing a stored theme:
// pick a theme, pick a target, watch the result.
package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"termtint/internal/installer"
	"termtint/internal/store"
	"termtint/internal/theme"
	"termtint/internal/ui"
)

type step int

const (
	stepTheme step = iota
	stepTarget
	stepDone
)

// installedMsg carries the install outcome back into the update loop.
type installedMsg struct {
	result installer.Result
}

// Model is the bubbletea model for the pick flow.
type Model struct {
	source theme.Source
	themes []store.ThemeInfo
	apply  bool

	filter   textinput.Model
	filtered []store.ThemeInfo
	cursor   int

	step      step
	themeID   string
	themeName string
	targets   []string
	result    installer.Result
	width     int
}

func New(src theme.Source, themes []store.ThemeInfo, apply bool) Model {
	ti := textinput.New()
	ti.Placeholder = "Filter themes..."
	ti.CharLimit = 64
	ti.Width = 40
	ti.Focus()

	return Model{
		source:   src,
		themes:   themes,
		apply:    apply,
		filter:   ti,
		filtered: themes,
		targets:  installer.Targets(),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case installedMsg:
		m.result = msg.result
		m.step = stepDone
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.step != stepTheme || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
		case "esc":
			switch m.step {
			case stepTarget:
				m.step = stepTheme
				m.cursor = 0
				return m, nil
			case stepDone:
				return m, tea.Quit
			default:
				return m, tea.Quit
			}
		case "up", "ctrl+k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+j":
			if m.cursor < m.listLen()-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			return m.confirm()
		}
	}

	if m.step == stepTheme {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.filtered = filterThemes(m.themes, m.filter.Value())
		if m.cursor >= len(m.filtered) {
			m.cursor = 0
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) confirm() (tea.Model, tea.Cmd) {
	switch m.step {
	case stepTheme:
		if len(m.filtered) == 0 {
			return m, nil
		}
		picked := m.filtered[m.cursor]
		m.themeID = picked.ID
		m.themeName = picked.Name
		m.step = stepTarget
		m.cursor = 0
		return m, nil

	case stepTarget:
		target := m.targets[m.cursor]
		src, id, apply := m.source, m.themeID, m.apply
		return m, func() tea.Msg {
			inst, err := installer.ForTarget(target, src, apply)
			if err != nil {
				return installedMsg{result: installer.Result{Error: err.Error()}}
			}
			return installedMsg{result: inst.Install(id)}
		}

	default:
		return m, tea.Quit
	}
}

func (m Model) listLen() int {
	if m.step == stepTarget {
		return len(m.targets)
	}
	return len(m.filtered)
}

func (m Model) View() string {
	var b strings.Builder

	switch m.step {
	case stepTheme:
		b.WriteString(ui.TitleStyle.Render("Install a theme"))
		b.WriteString("\n\n")
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
		if len(m.filtered) == 0 {
			b.WriteString(ui.DimText.Render("No themes match."))
		}
		for i, t := range m.filtered {
			line := fmt.Sprintf("%s  %s", t.Name, ui.DimText.Render(t.ID))
			if i == m.cursor {
				b.WriteString(ui.SelectedItem.Render("> " + line))
			} else {
				b.WriteString(ui.NormalItem.Render("  " + line))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(ui.DimText.Render("enter: select  ctrl+c: quit"))

	case stepTarget:
		b.WriteString(ui.TitleStyle.Render("Install " + m.themeName + " to..."))
		b.WriteString("\n\n")
		for i, target := range m.targets {
			if i == m.cursor {
				b.WriteString(ui.SelectedItem.Render("> " + target))
			} else {
				b.WriteString(ui.NormalItem.Render("  " + target))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(ui.DimText.Render("enter: install  esc: back  q: quit"))

	case stepDone:
		if m.result.Success {
			b.WriteString(ui.SuccessText.Render("Installed " + m.themeName))
			b.WriteString("\n\n")
			if m.result.Path != "" {
				b.WriteString(ui.SubtitleStyle.Render(m.result.Path))
				b.WriteString("\n")
			}
			if m.result.Instructions != "" {
				b.WriteString(ui.NormalItem.Render(m.result.Instructions))
				b.WriteString("\n")
			}
		} else {
			b.WriteString(ui.ErrorText.Render("Install failed: " + m.result.Error))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(ui.DimText.Render("press q to exit"))
	}

	return ui.PanelBorder.Padding(0, 1).Render(b.String())
}

// filterThemes keeps themes whose name or id contains the query,
// case-insensitively.
func filterThemes(themes []store.ThemeInfo, query string) []store.ThemeInfo {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return themes
	}
	var out []store.ThemeInfo
	for _, t := range themes {
		if strings.Contains(strings.ToLower(t.Name), query) ||
			strings.Contains(strings.ToLower(t.ID), query) {
			out = append(out, t)
		}
	}
	return out
}
