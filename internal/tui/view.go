package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/retroenv/gbdisasm/internal/disasm"
)

type styles struct {
	header    lipgloss.Style
	prompt    lipgloss.Style
	status    lipgloss.Style
	separator lipgloss.Style
	label     lipgloss.Style
	selected  lipgloss.Style
	code      lipgloss.Style
	data      lipgloss.Style
	unknown   lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		header:    lipgloss.NewStyle().Bold(true),
		prompt:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		status:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		separator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		label:     lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		selected:  lipgloss.NewStyle().Reverse(true),
		code:      lipgloss.NewStyle(),
		data:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		unknown:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.header.Render(m.headerView()))
	sb.WriteByte('\n')
	sb.WriteString(m.promptView())
	sb.WriteByte('\n')
	sb.WriteString(m.styles.separator.Render(strings.Repeat("-", max(m.width, 1))))
	sb.WriteByte('\n')
	sb.WriteString(m.listingView())
	return sb.String()
}

// headerView renders the selected offset, its decoded instruction and the
// key hints that apply to it.
func (m Model) headerView() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Offset: %06x", m.cursor)

	tag := m.dis.TagAt(m.cursor)
	if tag == disasm.Code {
		if ins, ok := m.dis.InstructionAt(m.cursor); ok {
			sb.WriteString("  ")
			sb.WriteString(ins.Name)
			if operands := m.builder.FormatOperands(m.cursor, ins); operands != "" {
				sb.WriteByte(' ')
				sb.WriteString(operands)
			}
		}
	}

	sb.WriteString("  ")
	sb.WriteString(strings.Join(m.keyHints(tag), " "))
	return sb.String()
}

func (m Model) keyHints(tag disasm.Tag) []string {
	hints := make([]string, 0, 8)
	if tag != disasm.Code {
		hints = append(hints, "[c]ode")
	}
	if tag != disasm.Data {
		hints = append(hints, "[d]ata")
	}
	if tag != disasm.Unknown {
		hints = append(hints, "[u]nknown")
	}
	if target, ok := m.followTarget(); ok {
		hints = append(hints, fmt.Sprintf("[f]ollow (%06x)", target))
	}
	hints = append(hints, "[G]oto", "[b]ank", "[l]abel", "[q]uit")
	return hints
}

func (m Model) promptView() string {
	switch m.prompt {
	case promptGoto:
		return m.styles.prompt.Render("Goto offset (hex): " + m.input)
	case promptBank:
		return m.styles.prompt.Render(fmt.Sprintf("Bank for %06x (hex): %s", m.cursor, m.input))
	case promptLabel:
		return m.styles.prompt.Render(fmt.Sprintf("Label for %06x: %s", m.cursor, m.input))
	default:
		if m.status != "" {
			return m.styles.status.Render(m.status)
		}
		return ""
	}
}

func (m Model) listingView() string {
	height := m.viewportHeight()
	rows := make([]string, 0, height)

	offset := m.base
	for len(rows) < height && offset < m.dis.Size() {
		line := m.builder.Line(offset)

		if line.Label != "" {
			rows = append(rows, m.styles.label.Render(line.Label+":"))
			if len(rows) >= height {
				break
			}
		}

		text := fmt.Sprintf("%06x: %-12s%s", line.Offset, line.Bytes, line.Text)
		rows = append(rows, m.lineStyle(offset).Render(text))

		offset += line.Length
	}

	for len(rows) < height {
		rows = append(rows, "")
	}
	return strings.Join(rows, "\n")
}

func (m Model) lineStyle(offset int) lipgloss.Style {
	if offset == m.cursor {
		return m.styles.selected
	}
	switch m.dis.TagAt(offset) {
	case disasm.Data:
		return m.styles.data
	case disasm.Code:
		return m.styles.code
	default:
		return m.styles.unknown
	}
}
