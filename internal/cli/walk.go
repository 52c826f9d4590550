package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bit-fu/RustyCube/internal/cube"
	"github.com/bit-fu/RustyCube/internal/notation"
	"github.com/bit-fu/RustyCube/pkg/types"
)

var walkCmd = &cobra.Command{
	Use:   "walk <edge-length> <move-token>...",
	Short: "Step through a move sequence interactively",
	Long: `Opens an interactive view of the cube and applies the move sequence
one move at a time. Space or n advances, b steps back, r resets, q quits.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runWalk,
}

func init() {
	rootCmd.AddCommand(walkCmd)
}

func runWalk(cmd *cobra.Command, args []string) error {
	size, err := strconv.Atoi(args[0])
	if err != nil || size < 1 || size > 9 {
		return fmt.Errorf("edge length must be between 1 and 9, got %q", args[0])
	}

	moves, err := notation.Parse(strings.Join(args[1:], "\n"), size)
	if err != nil {
		return err
	}
	if len(moves) == 0 {
		return fmt.Errorf("nothing to walk through")
	}

	m := newWalkModel(size, moves)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run walk view: %w", err)
	}
	return nil
}

type walkModel struct {
	size  int
	cube  *cube.Cube
	moves []types.Move
	index int
	err   error
}

func newWalkModel(size int, moves []types.Move) walkModel {
	return walkModel{
		size:  size,
		cube:  cube.New(size),
		moves: moves,
	}
}

func (m walkModel) Init() tea.Cmd {
	return nil
}

func (m walkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit

	case " ", "n", "right":
		if m.index < len(m.moves) {
			m.err = m.cube.Apply(m.moves[m.index])
			m.index++
		}

	case "b", "left":
		if m.index > 0 {
			m.index--
			m.err = m.cube.Apply(m.moves[m.index].Inverse())
		}

	case "r":
		m.cube = cube.New(m.size)
		m.index = 0
		m.err = nil
	}

	return m, nil
}

func (m walkModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Cube Walk"))
	b.WriteString("\n\n")
	b.WriteString(renderNet(m.cube))
	b.WriteString("\n")

	b.WriteString(statusStyle.Render(fmt.Sprintf("Move %d of %d", m.index, len(m.moves))))
	b.WriteString("\n")

	var seq strings.Builder
	for i, mv := range m.moves {
		if i > 0 {
			seq.WriteByte(' ')
		}
		if i < m.index {
			seq.WriteString(doneMoveStyle.Render(mv.Notation()))
		} else {
			seq.WriteString(mv.Notation())
		}
	}
	b.WriteString(seq.String())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("error: %v", m.err))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("space/n: forward • b: back • r: reset • q: quit"))
	b.WriteString("\n")

	return b.String()
}
