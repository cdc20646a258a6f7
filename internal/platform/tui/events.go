// Package tui provides the Bubble Tea integration for minebench: a
// live board view of an evaluation run, a stored-results browser, and
// SSH serving of the watcher via Wish.
package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/minebench/internal/game"
	"github.com/vovakirdan/minebench/internal/harness"
)

// Messages forwarded from the harness goroutine to the model.
type (
	gameStartMsg struct {
		index int
		cfg   game.Config
	}
	moveMsg struct {
		result game.MoveResult
		flags  []game.Position
	}
	gameEndMsg struct {
		result harness.GameResult
	}
	runDoneMsg struct {
		results harness.Results
		err     error
	}
)

// channelObserver bridges the synchronous harness to the Bubble Tea
// event loop. Every callback is delivered over events; after a move it
// applies the pacing gate. All blocking operations also select on done
// so a quitting UI releases the harness.
type channelObserver struct {
	events    chan tea.Msg
	gate      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	manual    bool
	delay     time.Duration
}

func newChannelObserver(manual bool, delay time.Duration) *channelObserver {
	return &channelObserver{
		events: make(chan tea.Msg),
		gate:   make(chan struct{}),
		done:   make(chan struct{}),
		manual: manual,
		delay:  delay,
	}
}

func (o *channelObserver) send(msg tea.Msg) {
	select {
	case o.events <- msg:
	case <-o.done:
	}
}

func (o *channelObserver) StartGame(index int, cfg game.Config) {
	o.send(gameStartMsg{index: index, cfg: cfg})
}

func (o *channelObserver) Update(result game.MoveResult, flags []game.Position) {
	o.send(moveMsg{result: result, flags: flags})
	switch {
	case o.manual:
		select {
		case <-o.gate:
		case <-o.done:
		}
	case o.delay > 0:
		select {
		case <-time.After(o.delay):
		case <-o.done:
		}
	}
}

func (o *channelObserver) EndGame(result harness.GameResult) {
	o.send(gameEndMsg{result: result})
}

// step releases a harness blocked on the manual-pacing gate. Non-
// blocking: extra presses between moves are dropped.
func (o *channelObserver) step() {
	select {
	case o.gate <- struct{}{}:
	default:
	}
}

// close releases every blocking operation of the observer. Safe to
// call more than once.
func (o *channelObserver) close() {
	o.closeOnce.Do(func() { close(o.done) })
}

// waitEvent returns a command that delivers the next harness event.
func waitEvent(events chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-events
	}
}
