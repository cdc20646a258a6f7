package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/minebench/internal/bot"
	"github.com/vovakirdan/minebench/internal/game"
	"github.com/vovakirdan/minebench/internal/harness"
)

// WatchConfig describes a watched run.
type WatchConfig struct {
	Board  game.Config
	Games  int
	Seed   int64
	Manual bool          // step on keypress instead of a timer
	Delay  time.Duration // pacing between moves when not manual
}

// WatchModel is the Bubble Tea model showing a live evaluation run.
type WatchModel struct {
	cfg   WatchConfig
	botID string

	obs *channelObserver

	board     boardView
	gameIndex int
	moves     int
	running   Partial
	results   harness.Results
	runErr    error
	finished  bool
	quitting  bool

	keys WatchKeyMap
	help help.Model
}

// Partial is the running tally shown while games are still playing.
type Partial struct {
	Wins, Losses, Invalid int
}

// NewWatchModel creates a watch model and starts the harness in its
// own goroutine. The model consumes the harness events one at a time;
// the first event is held until the program starts listening.
func NewWatchModel(cfg WatchConfig, botID string, b bot.Bot, logger *log.Logger) WatchModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	obs := newChannelObserver(cfg.Manual, cfg.Delay)

	go func() {
		results, err := harness.Run(cfg.Board, cfg.Games, b, harness.Options{
			Seed:     cfg.Seed,
			Observer: obs,
			Logger:   logger,
		})
		obs.send(runDoneMsg{results: results, err: err})
		close(obs.events)
	}()

	return WatchModel{
		cfg:   cfg,
		botID: botID,
		obs:   obs,
		board: newBoardView(cfg.Board),
		keys:  DefaultWatchKeyMap(),
		help:  help.New(),
	}
}

// Init begins listening for harness events.
func (m WatchModel) Init() tea.Cmd {
	return waitEvent(m.obs.events)
}

// Update handles key presses and harness events.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.obs.close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Step):
			if m.cfg.Manual && !m.finished {
				m.obs.step()
			}
			return m, nil
		}

	case gameStartMsg:
		m.gameIndex = msg.index
		m.moves = 0
		m.board = newBoardView(msg.cfg)
		return m, waitEvent(m.obs.events)

	case moveMsg:
		m.moves++
		m.board.apply(msg.result, msg.flags)
		return m, waitEvent(m.obs.events)

	case gameEndMsg:
		switch {
		case msg.result.Won:
			m.running.Wins++
		case msg.result.Invalid:
			m.running.Invalid++
		default:
			m.running.Losses++
		}
		return m, waitEvent(m.obs.events)

	case runDoneMsg:
		m.results = msg.results
		m.runErr = msg.err
		m.finished = true
		return m, nil
	}

	return m, nil
}

// View renders the board, the running tally and the key help.
func (m WatchModel) View() string {
	if m.quitting {
		return ""
	}

	title := titleStyle.Render(fmt.Sprintf(
		"minebench: %s on %dx%d/%d mines",
		m.botID, m.cfg.Board.Width, m.cfg.Board.Height, m.cfg.Board.Mines,
	))
	status := statusStyle.Render(fmt.Sprintf(
		"game %d/%d  move %d  won %d  lost %d  invalid %d",
		m.gameIndex+1, m.cfg.Games, m.moves,
		m.running.Wins, m.running.Losses, m.running.Invalid,
	))

	s := title + "\n" + status + "\n\n" + m.board.render() + "\n"

	if m.finished {
		if m.runErr != nil {
			s += "\n" + summaryStyle.Render(fmt.Sprintf("run aborted: %v", m.runErr))
		} else {
			s += "\n" + summaryStyle.Render(fmt.Sprintf(
				"run complete: %d/%d won (%.1f%%), %d moves total",
				m.results.Wins(), len(m.results),
				m.results.WinRate()*100, m.results.TotalMoves(),
			))
		}
	}

	return s + "\n" + m.help.View(m.keys)
}

// Watch runs the watcher as a full-screen program and returns the run
// results once the program exits.
func Watch(cfg WatchConfig, botID string, b bot.Bot, logger *log.Logger) (harness.Results, error) {
	model := NewWatchModel(cfg, botID, b, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	model.obs.close()
	if err != nil {
		return nil, err
	}

	if m, ok := final.(WatchModel); ok {
		return m.results, m.runErr
	}
	return nil, nil
}
