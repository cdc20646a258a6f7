package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/minebench/internal/game"
)

var (
	cellHidden   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cellZero     = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	cellCount    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	cellFlag     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	cellMine     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
)

// boardView is the player-perspective board state accumulated from
// MoveResults.
type boardView struct {
	cfg      game.Config
	view     map[game.Position]int
	flags    map[game.Position]bool
	exploded *game.Position
}

func newBoardView(cfg game.Config) boardView {
	return boardView{
		cfg:   cfg,
		view:  make(map[game.Position]int),
		flags: make(map[game.Position]bool),
	}
}

func (v *boardView) apply(result game.MoveResult, flags []game.Position) {
	for _, sq := range result.NewSquares {
		v.view[sq.Position] = sq.Adjacent
		if result.Mine {
			p := sq.Position
			v.exploded = &p
		}
	}
	v.flags = make(map[game.Position]bool)
	for _, p := range flags {
		v.flags[p] = true
	}
}

// render draws the board: dots for hidden squares, counts for revealed
// ones, flags and the exploded mine on top.
func (v *boardView) render() string {
	var b strings.Builder
	for y := 0; y < v.cfg.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < v.cfg.Width; x++ {
			b.WriteString(v.cell(game.Position{X: x, Y: y}))
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func (v *boardView) cell(p game.Position) string {
	if v.exploded != nil && *v.exploded == p {
		return cellMine.Render("*")
	}
	if n, ok := v.view[p]; ok {
		if n == 0 {
			return cellZero.Render("_")
		}
		return cellCount.Render(strconv.Itoa(n))
	}
	if v.flags[p] {
		return cellFlag.Render("F")
	}
	return cellHidden.Render(".")
}
