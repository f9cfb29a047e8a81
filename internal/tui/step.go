// Package tui is an interactive step-through viewer for a machine: one
// keypress per transition, or an auto-play mode, with the tape and the
// recent move log rendered live.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marioveld/turmac/internal/config"
	"github.com/marioveld/turmac/internal/machine"
	"github.com/marioveld/turmac/internal/unary"
)

const logWindow = 8

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	headStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(true)
	markStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	blankStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	haltedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	stuckStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	logStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model holds the running machine plus the view state.
type Model struct {
	cfg     *config.Config
	machine *machine.Machine
	moves   []machine.Move
	err     error
	playing bool
	stuck   bool // step bound exhausted without halting
}

// NewModel builds the viewer for a machine definition.
func NewModel(cfg *config.Config) (Model, error) {
	m, err := cfg.Build()
	if err != nil {
		return Model{}, err
	}
	return Model{cfg: cfg, machine: m}, nil
}

func (m Model) Init() tea.Cmd { return nil }

func tick() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		if !m.playing {
			return m, nil
		}
		m.step()
		if m.machine.Halted() || m.stuck || m.err != nil {
			m.playing = false
			return m, nil
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) step() {
	if m.machine.Halted() || m.stuck || m.err != nil {
		return
	}
	if m.cfg.MaxSteps > 0 && len(m.moves) >= m.cfg.MaxSteps {
		m.stuck = true
		return
	}
	move, ok, err := m.machine.Step()
	if err != nil {
		m.err = err
		return
	}
	if ok {
		m.moves = append(m.moves, move)
	}
}

func (m *Model) reset() {
	fresh, err := m.cfg.Build()
	if err != nil {
		m.err = err
		return
	}
	m.machine = fresh
	m.moves = nil
	m.err = nil
	m.stuck = false
	m.playing = false
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ", "n":
		m.playing = false
		m.step()
	case "p":
		if !m.playing && !m.machine.Halted() && !m.stuck {
			m.playing = true
			return m, tick()
		}
		m.playing = false
	case "r":
		m.reset()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	name := m.cfg.Name
	if name == "" {
		name = "machine"
	}
	b.WriteString(titleStyle.Render(name) + "\n")

	b.WriteString(m.tapeView() + "\n\n")

	b.WriteString(labelStyle.Render("state") + valueStyle.Render(fmt.Sprintf("%d", m.machine.StateIndex())) + "\n")
	b.WriteString(labelStyle.Render("step") + valueStyle.Render(fmt.Sprintf("%d", len(m.moves))) + "\n")
	b.WriteString(labelStyle.Render("cells") + valueStyle.Render(fmt.Sprintf("%d", m.machine.Tape().Len())) + "\n")
	b.WriteString(labelStyle.Render("decoded") + valueStyle.Render(fmt.Sprintf("%v", unary.Decode(m.machine.Tape().Snapshot()))) + "\n")

	switch {
	case m.err != nil:
		b.WriteString(stuckStyle.Render("error: "+m.err.Error()) + "\n")
	case m.machine.Halted():
		b.WriteString(haltedStyle.Render("halted") + "\n")
	case m.stuck:
		b.WriteString(stuckStyle.Render(fmt.Sprintf("did not halt in %d steps", m.cfg.MaxSteps)) + "\n")
	case m.playing:
		b.WriteString(valueStyle.Render("playing") + "\n")
	}

	if len(m.moves) > 0 {
		b.WriteString("\n")
		start := len(m.moves) - logWindow
		if start < 0 {
			start = 0
		}
		for i, mv := range m.moves[start:] {
			line := fmt.Sprintf("%4d  state %d>%d  cell %d>%d",
				start+i+1, mv.FromState, mv.ToState, mv.FromCell, mv.ToCell)
			b.WriteString(logStyle.Render(line) + "\n")
		}
	}

	b.WriteString(helpStyle.Render("space/n step · p play/pause · r reset · q quit"))
	return b.String()
}

func (m Model) tapeView() string {
	symbols := m.machine.Tape().Snapshot()
	head := m.machine.Head()

	cells := make([]string, len(symbols))
	for i, s := range symbols {
		cell := s.String()
		switch {
		case i == head && !m.machine.Halted():
			cell = headStyle.Render(cell)
		case s == machine.Marked:
			cell = markStyle.Render(cell)
		default:
			cell = blankStyle.Render(cell)
		}
		cells[i] = cell
	}
	return "│" + strings.Join(cells, "│") + "│"
}

// Run starts the viewer and blocks until the user quits.
func Run(cfg *config.Config) error {
	model, err := NewModel(cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(model).Run()
	return err
}
