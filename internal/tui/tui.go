// Package tui implements the interactive terminal interface of the
// disassembler.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/retroenv/gbdisasm/internal/disasm"
	"github.com/retroenv/gbdisasm/internal/listing"
	"github.com/retroenv/gbdisasm/internal/nav"
)

// promptKind selects which input the prompt line is collecting.
type promptKind int

const (
	promptNone promptKind = iota
	promptGoto
	promptBank
	promptLabel
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// rows used by the header, the prompt line and the separator
	chromeRows = 3
)

// Model is the bubbletea model of the disassembler interface.
type Model struct {
	dis     *disasm.Disasm
	labels  *nav.Labels
	banks   *nav.Banks
	history *nav.History
	builder *listing.Builder
	styles  styles

	cursor int // selected offset
	base   int // first offset of the viewport

	width  int
	height int

	prompt promptKind
	input  string
	status string
}

// NewModel creates a new interface model for the disassembler state.
func NewModel(dis *disasm.Disasm, labels *nav.Labels, banks *nav.Banks) Model {
	return Model{
		dis:     dis,
		labels:  labels,
		banks:   banks,
		history: nav.NewHistory(),
		builder: listing.NewBuilder(dis, labels),
		styles:  defaultStyles(),
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

// Run starts the interactive interface and blocks until the user quits.
func Run(dis *disasm.Disasm, labels *nav.Labels, banks *nav.Banks) error {
	program := tea.NewProgram(NewModel(dis, labels, banks), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running terminal interface: %w", err)
	}
	return nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scrollToCursor()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.prompt != promptNone {
			return m.updatePrompt(msg)
		}
		return m.updateListing(msg)
	}
	return m, nil
}

func (m Model) updateListing(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch key.String() {
	case "q", "esc":
		return m, tea.Quit

	case "j", "down":
		m.moveDown(1)
	case "k", "up":
		m.moveUp(1)
	case "pgdown":
		m.moveDown(m.viewportHeight())
	case "pgup":
		m.moveUp(m.viewportHeight())
	case "home":
		m.cursor = 0
	case "end":
		m.cursor = m.dis.AlignToValid(m.dis.Size() - 1)

	case "c":
		m.dis.Mark(m.cursor, disasm.Code)
	case "d":
		m.dis.Mark(m.cursor, disasm.Data)
	case "u":
		m.dis.Mark(m.cursor, disasm.Unknown)

	case "f":
		m.follow()
	case "o":
		if offset, ok := m.history.Back(m.cursor); ok {
			m.cursor = offset
		}
	case "i":
		if offset, ok := m.history.Forward(); ok {
			m.cursor = offset
		}

	case "G":
		m.prompt = promptGoto
	case "b":
		m.prompt = promptBank
	case "l":
		m.prompt = promptLabel
	}

	m.scrollToCursor()
	return m, nil
}

func (m Model) updatePrompt(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		m.prompt = promptNone
		m.input = ""
	case tea.KeyEnter:
		m.submitPrompt()
		m.scrollToCursor()
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(key.Runes)
	}
	return m, nil
}

func (m *Model) submitPrompt() {
	input := strings.TrimSpace(m.input)
	kind := m.prompt
	m.prompt = promptNone
	m.input = ""

	switch kind {
	case promptGoto:
		offset, err := strconv.ParseInt(input, 16, 64)
		if err != nil || offset < 0 || int(offset) >= m.dis.Size() {
			m.status = "invalid offset"
			return
		}
		m.history.Push(m.cursor)
		m.cursor = m.dis.AlignToValid(int(offset))

	case promptBank:
		bank, err := strconv.ParseInt(input, 16, 64)
		if err != nil || bank < 0 {
			m.status = "invalid bank"
			return
		}
		m.banks.Assign(m.cursor, int(bank))
		m.status = fmt.Sprintf("bank %02x assigned", bank)

	case promptLabel:
		if input == "" {
			m.status = "empty label"
			return
		}
		m.labels.Set(m.cursor, input)
	}
}

// follow jumps to the branch target of the selected instruction. The current
// offset is pushed to the history so that the jump can be undone.
func (m *Model) follow() {
	target, ok := m.followTarget()
	if !ok {
		return
	}
	m.history.Push(m.cursor)
	m.cursor = target
}

func (m *Model) followTarget() (int, bool) {
	if m.dis.TagAt(m.cursor) != disasm.Code {
		return 0, false
	}
	return m.dis.ResolveTarget(m.cursor)
}

func (m *Model) moveDown(steps int) {
	for range steps {
		next := m.dis.NextAligned(m.cursor)
		if next >= m.dis.Size() {
			return
		}
		m.cursor = next
	}
}

func (m *Model) moveUp(steps int) {
	for range steps {
		if m.cursor == 0 {
			return
		}
		m.cursor = m.dis.AlignToValid(m.cursor - 1)
	}
}

func (m *Model) viewportHeight() int {
	height := m.height - chromeRows
	if height < 1 {
		return 1
	}
	return height
}

// scrollToCursor adjusts the viewport base so that the selected line stays
// visible, counting label lines as extra rows.
func (m *Model) scrollToCursor() {
	if m.cursor < m.base {
		m.base = m.cursor
		return
	}

	height := m.viewportHeight()
	// after a long jump rebase close to the cursor, lines cover at most
	// three bytes plus a label row
	if m.cursor-m.base > height*4 {
		base := m.cursor - height
		if base < 0 {
			base = 0
		}
		m.base = m.dis.AlignToValid(base)
	}

	for m.base < m.cursor && m.rowsUsed(m.cursor) > height {
		m.base = m.dis.NextAligned(m.base)
	}
}

// rowsUsed returns the number of display rows from the viewport base up to
// and including the line at the target offset.
func (m *Model) rowsUsed(target int) int {
	rows := 0
	for offset := m.base; offset < m.dis.Size(); offset = m.dis.NextAligned(offset) {
		if m.labels.Has(offset) {
			rows++
		}
		rows++
		if offset >= target {
			break
		}
	}
	return rows
}
