package cli

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/santanusen/pocketcube"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube session",
	Long: `Start an interactive TUI for turning the cube and asking the solver
for hints.

Keyboard shortcuts:
  f/F     - Front layer clockwise / counter-clockwise
  l/L     - Left layer clockwise / counter-clockwise
  d/D     - Down layer clockwise / counter-clockwise
  x       - Scramble with 10 random moves
  s       - Ask the solver for an optimal solution
  r       - Reset to the solved cube
  q/Esc   - Quit`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	hintStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Messages
type solutionMsg struct {
	moves   []pocketcube.Move
	elapsed time.Duration
}

// keyMoves maps key presses to moves. Lowercase turns clockwise,
// uppercase counter-clockwise.
var keyMoves = map[string]pocketcube.Move{
	"f": pocketcube.FrontCW,
	"F": pocketcube.FrontCCW,
	"l": pocketcube.LeftCW,
	"L": pocketcube.LeftCCW,
	"d": pocketcube.DownCW,
	"D": pocketcube.DownCCW,
}

// Model
type playModel struct {
	tracker  *pocketcube.Tracker
	rng      *rand.Rand
	solution []pocketcube.Move
	searched time.Duration
	solving  bool
	solved   bool
	quitting bool
}

func newPlayModel() *playModel {
	m := &playModel{
		tracker: pocketcube.NewTracker(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	m.tracker.SetSolvedCallback(func() { m.solved = true })
	return m
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) solveCmd() tea.Cmd {
	c := m.tracker.Cube()
	return func() tea.Msg {
		start := time.Now()
		solution := pocketcube.Solve(c)
		return solutionMsg{moves: solution, elapsed: time.Since(start)}
	}
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()

		if mv, ok := keyMoves[key]; ok {
			m.solved = false
			m.tracker.ApplyMove(mv)
			m.solution = nil
			return m, nil
		}

		switch key {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "x":
			m.solved = false
			m.tracker.ApplyMoves(pocketcube.Scramble(m.rng, 10))
			m.solution = nil

		case "r":
			m.tracker.Reset()
			m.solution = nil
			m.solved = false

		case "s":
			if !m.solving {
				m.solving = true
				return m, m.solveCmd()
			}
		}

	case solutionMsg:
		m.solving = false
		m.solution = msg.moves
		m.searched = msg.elapsed
	}

	return m, nil
}

func (m *playModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Pocket Cube"))
	b.WriteString("\n\n")

	b.WriteString(renderCube(m.tracker.Cube()))
	b.WriteString("\n")

	if moves := m.tracker.Moves(); len(moves) > 0 {
		b.WriteString("Moves: ")
		start := 0
		if len(moves) > 20 {
			start = len(moves) - 20
			b.WriteString("... ")
		}
		b.WriteString(moveStyle.Render(pocketcube.FormatMoves(moves[start:])))
		b.WriteString("\n")
	}

	switch {
	case m.solving:
		b.WriteString(statusStyle.Render("Searching..."))
		b.WriteString("\n")
	case m.solution != nil:
		if len(m.solution) == 0 {
			b.WriteString(hintStyle.Render("Already solved"))
		} else {
			b.WriteString(hintStyle.Render(fmt.Sprintf("Optimal: %s (%d moves, %s)",
				pocketcube.FormatMoves(m.solution), len(m.solution), formatDuration(m.searched))))
		}
		b.WriteString("\n")
	case m.solved:
		b.WriteString(hintStyle.Render("SOLVED!"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Keys: f/F l/L d/D turn | x=scramble s=solve r=reset q=quit"))
	b.WriteString("\n")

	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(newPlayModel(), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
