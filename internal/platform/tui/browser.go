package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/minebench/internal/storage"
)

const maxBrowserRuns = 100

// BrowserKeyMap defines the key bindings for the results browser.
type BrowserKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BrowserModel is the Bubble Tea model for browsing stored runs.
type BrowserModel struct {
	table    table.Model
	help     help.Model
	keys     BrowserKeyMap
	botID    string
	quitting bool
}

// NewBrowserModel loads recent runs (for one bot, or all bots when
// botID is empty) into a scrollable table.
func NewBrowserModel(store *storage.Store, botID string) (BrowserModel, error) {
	runs, err := store.RecentRuns(botID, maxBrowserRuns)
	if err != nil {
		return BrowserModel{}, err
	}

	columns := []table.Column{
		{Title: "Run", Width: 5},
		{Title: "Bot", Width: 10},
		{Title: "Board", Width: 12},
		{Title: "Games", Width: 6},
		{Title: "Won", Width: 5},
		{Title: "Lost", Width: 5},
		{Title: "Inv", Width: 4},
		{Title: "Win%", Width: 6},
		{Title: "Date", Width: 16},
	}

	rows := make([]table.Row, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", r.ID),
			r.BotID,
			fmt.Sprintf("%dx%d/%d", r.Width, r.Height, r.Mines),
			fmt.Sprintf("%d", r.Games),
			fmt.Sprintf("%d", r.Wins),
			fmt.Sprintf("%d", r.Losses),
			fmt.Sprintf("%d", r.Invalid),
			fmt.Sprintf("%.1f", r.WinRate()*100),
			r.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	return BrowserModel{
		table: t,
		help:  help.New(),
		keys:  DefaultBrowserKeyMap(),
		botID: botID,
	}, nil
}

func (m BrowserModel) Init() tea.Cmd {
	return nil
}

func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}
	title := "Stored runs"
	if m.botID != "" {
		title += ": " + m.botID
	}
	return titleStyle.Render(title) + "\n\n" + m.table.View() + "\n" + m.help.View(m.keys)
}

// Browse opens the interactive results browser.
func Browse(store *storage.Store, botID string) error {
	model, err := NewBrowserModel(store, botID)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
