package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

// model is the bubbletea program driving the interactive debugger: one Cpu,
// stepped one Tick at a time by the spacebar, with a scrollable memory page
// table alongside live registers/flags and the in-flight micro-op queue.
type model struct {
	cpu *Cpu

	offset uint16 // base address of the page table view
	prevPC uint16
	err    error
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case " ", "j":
			m.prevPC = m.cpu.PC
			m.cpu.Tick()
			if !m.cpu.Running() {
				return m, tea.Quit
			}

		case "n":
			m.offset += 16 * 10

		case "p":
			m.offset -= 16 * 10
		}
	}
	return m, nil
}

// renderPage renders one 16-byte row of memory as a hex dump, with the
// current PC's byte bracketed.
func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := 0; i < 16; i++ {
		addr := start + uint16(i)
		b := m.cpu.Mem.Read(addr)
		if addr == m.cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) pageTable() string {
	header := "page | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}
	rows := []string{header}
	for i := 0; i < 10; i++ {
		rows = append(rows, m.renderPage(m.offset+uint16(i*16)))
	}
	return strings.Join(rows, "\n")
}

func (m model) status() string {
	r := m.cpu.Registers()
	var flags string
	for _, set := range []bool{
		m.cpu.Negative(), m.cpu.Overflow(), false, m.cpu.Break(),
		m.cpu.Decimal(), m.cpu.Interrupt(), m.cpu.Zero(), m.cpu.Carry(),
	} {
		if set {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (%04x)
 A: %02x
 X: %02x
 Y: %02x
SP: %02x
N V _ B D I Z C
`, r.PC, m.prevPC, r.A, r.X, r.Y, r.SP) + flags
}

func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(), m.status()),
		"",
		spew.Sdump(m.cpu.ScratchState()),
		spew.Sdump(m.cpu.PendingMicroOps()),
	)
}

// EnableDebug starts an interactive terminal UI over c: space/j steps one
// cycle at a time, n/p scroll the memory page table, q quits. Blocks until
// the user quits or the Cpu halts.
func (c *Cpu) EnableDebug() error {
	finalModel, err := tea.NewProgram(model{cpu: c}).Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(model); ok && m.err != nil {
		return m.err
	}
	return nil
}
