// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jcmp/jcmp/internal/highlight"
)

var (
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#623CE4"))
	addedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	removedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
	modifiedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB454"))
	equalStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C6C6C"))
	middleStyle   = lipgloss.NewStyle().Underline(true).Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C6C6C"))
)

// Browse opens an interactive browser over the given records: cursor up/down,
// a/r/m/e toggle kind visibility, / filters by path substring, enter shows
// the selected record's values, q or esc quits.
func Browse(records []Record) error {
	ti := textinput.New()
	ti.Placeholder = "path filter"
	ti.Prompt = "/ "
	ti.Cursor.SetMode(cursor.CursorBlink)

	m := browseModel{
		records: records,
		show: map[Kind]bool{
			Added:    true,
			Removed:  true,
			Modified: true,
			Equal:    true,
		},
		filter: ti,
	}
	m.refresh()

	p := tea.NewProgram(m)
	_, err := p.Run()
	return err
}

type browseModel struct {
	records   []Record
	visible   []int
	cursor    int
	show      map[Kind]bool
	filter    textinput.Model
	filtering bool
	detail    bool
}

// refresh recomputes the visible record indices from the kind toggles and
// the path filter, clamping the cursor.
func (m *browseModel) refresh() {
	needle := m.filter.Value()
	m.visible = m.visible[:0]
	for i, r := range m.records {
		if !m.show[r.Kind] {
			continue
		}
		if needle != "" && !strings.Contains(r.Path, needle) {
			continue
		}
		m.visible = append(m.visible, i)
	}
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m browseModel) Init() tea.Cmd { return nil }

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.filtering {
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.filtering {
		switch key.String() {
		case "enter", "esc":
			m.filtering = false
			m.filter.Blur()
		default:
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.refresh()
			return m, cmd
		}
		m.refresh()
		return m, nil
	}

	if m.detail {
		switch key.String() {
		case "q", "esc", "enter":
			m.detail = false
		}
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case "a":
		m.show[Added] = !m.show[Added]
		m.refresh()
	case "r":
		m.show[Removed] = !m.show[Removed]
		m.refresh()
	case "m":
		m.show[Modified] = !m.show[Modified]
		m.refresh()
	case "e":
		m.show[Equal] = !m.show[Equal]
		m.refresh()
	case "/":
		m.filtering = true
		return m, m.filter.Focus()
	case "enter":
		if len(m.visible) > 0 {
			m.detail = true
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	if m.detail {
		return m.detailView()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d of %d records\n\n", len(m.visible), len(m.records)))

	for pos, idx := range m.visible {
		r := m.records[idx]
		c := " "
		if pos == m.cursor {
			c = cursorStyle.Render(">")
		}
		sb.WriteString(fmt.Sprintf("%s %s %s\n", c, kindStyle(r.Kind).Render(kindIcon(r.Kind)), r.Path))
	}

	if m.filtering || m.filter.Value() != "" {
		sb.WriteString("\n" + m.filter.View() + "\n")
	}

	sb.WriteString(helpStyle.Render("\nUP/DOWN: move, A/R/M/E: toggle kinds, /: filter, ENTER: detail, Q: quit\n"))
	return sb.String()
}

// detailView renders one record's values. Modified string pairs get their
// changed middles emphasized; everything else is pretty-printed whole.
func (m browseModel) detailView() string {
	r := m.records[m.visible[m.cursor]]

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %s (%s)\n\n", kindStyle(r.Kind).Render(kindIcon(r.Kind)), r.Path, r.Kind))

	if r.StringPair() {
		oldSpans, newSpans := highlight.Split(r.Old.Str(), r.New.Str())
		sb.WriteString("old: " + renderSpans(oldSpans, removedStyle) + "\n")
		sb.WriteString("new: " + renderSpans(newSpans, addedStyle) + "\n")
	} else {
		sb.WriteString("old: " + prettyOrNull(r) + "\n")
		sb.WriteString("new: " + prettyOrNullNew(r) + "\n")
	}

	sb.WriteString(helpStyle.Render("\nENTER/ESCAPE: back\n"))
	return sb.String()
}

func renderSpans(s highlight.Spans, style lipgloss.Style) string {
	return s.Prefix + style.Inherit(middleStyle).Render(s.Middle) + s.Suffix
}

func prettyOrNull(r Record) string {
	if r.Old == nil {
		return "null"
	}
	return r.Old.Pretty("  ")
}

func prettyOrNullNew(r Record) string {
	if r.New == nil {
		return "null"
	}
	return r.New.Pretty("  ")
}

func kindIcon(k Kind) string {
	switch k {
	case Added:
		return "+"
	case Removed:
		return "-"
	case Modified:
		return "~"
	default:
		return "="
	}
}

func kindStyle(k Kind) lipgloss.Style {
	switch k {
	case Added:
		return addedStyle
	case Removed:
		return removedStyle
	case Modified:
		return modifiedStyle
	default:
		return equalStyle
	}
}
