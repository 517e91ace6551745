package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/uznami/rwbin/endian"
	"github.com/uznami/rwbin/layout"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	offsetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateBrowse modelState = iota
	stateEditLayout
)

// chrome is the number of view lines outside the row list.
const chrome = 8

type interactiveModel struct {
	err      error
	order    endian.Order
	filename string
	data     []byte
	rows     []layout.Row
	input    textinput.Model
	offset   int
	selected int
	top      int
	height   int
	state    modelState
}

type decodedMsg struct {
	err  error
	rows []layout.Row
}

func newInteractiveModel(cfg *config) *interactiveModel {
	ti := textinput.New()
	ti.Prompt = "layout: "
	ti.Placeholder = "magic: u32, len: !u16"
	ti.Width = 72
	ti.SetValue(oneLine(cfg.layout))

	return &interactiveModel{
		order:    cfg.order,
		filename: cfg.filename,
		data:     cfg.data,
		input:    ti,
		offset:   cfg.offset,
		height:   24,
		state:    stateBrowse,
	}
}

// oneLine drops comments and folds a layout onto a single line for editing.
func oneLine(spec string) string {
	var parts []string
	for _, line := range strings.Split(spec, "\n") {
		line, _, _ = strings.Cut(line, "#")
		if f := strings.Fields(line); len(f) > 0 {
			parts = append(parts, strings.Join(f, " "))
		}
	}
	return strings.Join(parts, " ")
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.decode
}

func (m *interactiveModel) decode() tea.Msg {
	rows, err := decode(m.input.Value(), m.data, m.order, m.offset)
	return decodedMsg{rows: rows, err: err}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.scroll()
		return m, nil

	case decodedMsg:
		m.rows = msg.rows
		m.err = msg.err
		if m.selected >= len(m.rows) {
			m.selected = max(len(m.rows)-1, 0)
		}
		m.scroll()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.state == stateEditLayout {
			return m.updateEdit(msg)
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit

		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.selected < len(m.rows)-1 {
				m.selected++
			}

		case "o":
			m.order = m.order.Opposite()
			return m, m.decode

		case "e", "tab":
			m.state = stateEditLayout
			return m, m.input.Focus()
		}
		m.scroll()
	}

	return m, nil
}

func (m *interactiveModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.state = stateBrowse
		m.input.Blur()
		return m, m.decode

	case "esc", "tab":
		m.state = stateBrowse
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// scroll keeps the selected row inside the visible window.
func (m *interactiveModel) scroll() {
	visible := max(m.height-chrome, 1)
	if m.selected < m.top {
		m.top = m.selected
	}
	if m.selected >= m.top+visible {
		m.top = m.selected - visible + 1
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("rwbin"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString(fmt.Sprintf(" (%d bytes, %s, offset 0x%x)\n\n", len(m.data), endian.Name(m.order), m.offset))

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	visible := max(m.height-chrome, 1)
	end := min(m.top+visible, len(m.rows))
	for i := m.top; i < end; i++ {
		if i == m.selected && m.state == stateBrowse {
			b.WriteString(selectedStyle.Render("> " + formatRow(m.rows[i], m.offset)))
		} else {
			b.WriteString("  " + m.renderRow(m.rows[i]))
		}
		b.WriteString("\n")
	}
	if len(m.rows) == 0 && m.err == nil {
		b.WriteString("  (no fields)\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.state == stateEditLayout {
		b.WriteString(helpStyle.Render("enter decode • esc cancel"))
	} else {
		b.WriteString(helpStyle.Render("↑/↓ select • e edit layout • o swap order • q quit"))
	}
	return b.String()
}

func (m *interactiveModel) renderRow(r layout.Row) string {
	name := r.Name
	if name == "" {
		name = "-"
	}
	line := offsetStyle.Render(fmt.Sprintf("%08x %5d", m.offset+r.Offset, r.Size)) +
		"  " + strings.Repeat("  ", r.Depth) + nameStyle.Render(name)
	if r.Text != "" {
		line += " = " + r.Text
	}
	return line
}

func runInteractive(cfg *config) error {
	p := tea.NewProgram(newInteractiveModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
