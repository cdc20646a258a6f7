// Package observer provides presentation-only collaborators for the
// run harness. Observers reconstruct the player's view of the board
// from MoveResults alone; they never touch game state.
package observer

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/minebench/internal/game"
	"github.com/vovakirdan/minebench/internal/harness"
)

// PaceMode controls how the console observer paces its output.
type PaceMode int

const (
	// PaceNone prints as fast as the run goes.
	PaceNone PaceMode = iota

	// PaceDelay sleeps a fixed duration after each move.
	PaceDelay

	// PaceStep waits for a newline on the step reader after each move.
	PaceStep
)

var (
	hiddenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	zeroStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	countStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	flagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	mineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true)
)

// Console renders the board to a writer after every move.
type Console struct {
	out   io.Writer
	step  *bufio.Reader
	mode  PaceMode
	delay time.Duration

	cfg      game.Config
	index    int
	moves    int
	view     map[game.Position]int // revealed squares -> adjacency
	flags    map[game.Position]bool
	exploded *game.Position
}

// NewConsole creates a console observer writing to out. For PaceStep,
// stepInput is the reader to wait on (usually stdin); it may be nil
// for the other modes.
func NewConsole(out io.Writer, mode PaceMode, delay time.Duration, stepInput io.Reader) *Console {
	c := &Console{out: out, mode: mode, delay: delay}
	if stepInput != nil {
		c.step = bufio.NewReader(stepInput)
	}
	return c
}

// StartGame resets the accumulated view for a new game.
func (c *Console) StartGame(index int, cfg game.Config) {
	c.cfg = cfg
	c.index = index
	c.moves = 0
	c.view = make(map[game.Position]int)
	c.flags = make(map[game.Position]bool)
	c.exploded = nil
	fmt.Fprintf(c.out, "%s\n", headerStyle.Render(
		fmt.Sprintf("game %d (%dx%d, %d mines)", index+1, cfg.Width, cfg.Height, cfg.Mines)))
}

// Update merges the move into the view, redraws the board, and then
// applies the pacing gate.
func (c *Console) Update(result game.MoveResult, flags []game.Position) {
	c.moves++
	for _, sq := range result.NewSquares {
		c.view[sq.Position] = sq.Adjacent
		if result.Mine {
			p := sq.Position
			c.exploded = &p
		}
	}
	c.flags = make(map[game.Position]bool)
	for _, p := range flags {
		c.flags[p] = true
	}

	fmt.Fprintf(c.out, "move %d: %d new squares\n", c.moves, len(result.NewSquares))
	fmt.Fprintln(c.out, c.render())
	c.pace()
}

// EndGame prints the recorded outcome.
func (c *Console) EndGame(result harness.GameResult) {
	switch {
	case result.Won:
		fmt.Fprintf(c.out, "game %d won in %d moves\n\n", result.Game+1, result.Moves)
	case result.Invalid:
		fmt.Fprintf(c.out, "game %d aborted: %v\n\n", result.Game+1, result.Err)
	default:
		fmt.Fprintf(c.out, "game %d lost after %d moves\n\n", result.Game+1, result.Moves)
	}
}

func (c *Console) pace() {
	switch c.mode {
	case PaceDelay:
		time.Sleep(c.delay)
	case PaceStep:
		if c.step != nil {
			_, _ = c.step.ReadString('\n')
		}
	}
}

// render draws the accumulated player view: dots for hidden squares,
// counts for revealed ones, flags and the exploded mine on top.
func (c *Console) render() string {
	var b strings.Builder
	for y := 0; y < c.cfg.Height; y++ {
		for x := 0; x < c.cfg.Width; x++ {
			p := game.Position{X: x, Y: y}
			b.WriteString(c.cell(p))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func (c *Console) cell(p game.Position) string {
	if c.exploded != nil && *c.exploded == p {
		return mineStyle.Render("*")
	}
	if n, ok := c.view[p]; ok {
		if n == 0 {
			return zeroStyle.Render("_")
		}
		return countStyle.Render(strconv.Itoa(n))
	}
	if c.flags[p] {
		return flagStyle.Render("F")
	}
	return hiddenStyle.Render(".")
}
