// Package tui is the Bubble Tea front end: one or two 13x13 range grids
// with live totals and the per-rank guessing game.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/rangegrid/internal/quiz"
	"github.com/lox/rangegrid/internal/session"
	"github.com/lox/rangegrid/poker"
)

// Options configures the model.
type Options struct {
	Compare bool   // show the second grid and the guessing column
	Theme   string // default, dark or light
}

// Model is the Bubble Tea model for the range grids.
type Model struct {
	session *session.Session
	logger  *log.Logger
	opts    Options

	keys  keyMap
	help  help.Model
	input textinput.Model

	cursor    int // grid index of the highlighted cell
	entering  bool
	showScore bool
	status    string
	statusErr bool
	quitting  bool

	width  int
	height int
}

// NewModel creates a model driving the given session.
func NewModel(s *session.Session, logger *log.Logger, opts Options) *Model {
	ti := textinput.New()
	ti.Placeholder = "TT+,AJs+,KQo"
	ti.CharLimit = 512
	ti.Width = 60
	ti.Prompt = "range> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)

	return &Model{
		session: s,
		logger:  logger.WithPrefix("tui"),
		opts:    opts,
		keys:    defaultKeyMap(),
		help:    help.New(),
		input:   ti,
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Cursor returns the hand under the cursor.
func (m *Model) Cursor() poker.Hand {
	return poker.HandAt(m.cursor)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)
		return m, nil

	case tea.KeyMsg:
		if m.entering {
			return m.updateInput(msg)
		}
		return m.updateGrid(msg)
	}

	return m, nil
}

// updateInput handles keys while the range input is open.
func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.closeInput()
		m.setStatus("load cancelled", false)
		return m, nil
	case "enter":
		notation := strings.TrimSpace(m.input.Value())
		m.closeInput()
		if err := m.session.LoadRange(notation); err != nil {
			m.logger.Warn("Rejected range", "notation", notation, "error", err)
			m.setStatus(err.Error(), true)
			return m, nil
		}
		m.showScore = false
		m.setStatus(fmt.Sprintf("loaded %d hands into %s grid", m.session.Selection(m.session.Active()).Len(), m.session.Active()), false)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.entering = false
	m.input.Blur()
	m.input.SetValue("")
}

// updateGrid handles keys while navigating the grids.
func (m *Model) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	row, col := m.cursor/poker.NumRanks, m.cursor%poker.NumRanks

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		row = max(row-1, 0)
	case key.Matches(msg, m.keys.Down):
		row = min(row+1, poker.NumRanks-1)
	case key.Matches(msg, m.keys.Left):
		col = max(col-1, 0)
	case key.Matches(msg, m.keys.Right):
		col = min(col+1, poker.NumRanks-1)

	case key.Matches(msg, m.keys.Tap):
		h := m.Cursor()
		gesture := m.session.Tap(h)
		m.showScore = false
		m.setStatus(fmt.Sprintf("%s %s", gesture, h), false)

	case key.Matches(msg, m.keys.Cone):
		h := m.Cursor()
		m.session.ToggleCone(h)
		m.showScore = false
		m.setStatus(fmt.Sprintf("cone %s", h), false)

	case key.Matches(msg, m.keys.Switch):
		if m.opts.Compare {
			m.session.SetActive(m.session.Active().Other())
			m.setStatus(fmt.Sprintf("editing %s grid", m.session.Active()), false)
		}

	case key.Matches(msg, m.keys.Load):
		m.entering = true
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.First):
		m.guess(quiz.FavorsFirst)
	case key.Matches(msg, m.keys.Second):
		m.guess(quiz.FavorsSecond)
	case key.Matches(msg, m.keys.Tie):
		m.guess(quiz.Tied)
	case key.Matches(msg, m.keys.Unset):
		m.guess(quiz.Unset)

	case key.Matches(msg, m.keys.Score):
		if m.opts.Compare {
			sc := m.session.Score()
			m.showScore = true
			m.setStatus(fmt.Sprintf("score: %d right, %d wrong, %d unanswered", sc.Correct, sc.Wrong, sc.Unanswered), false)
		}

	case key.Matches(msg, m.keys.Clear):
		m.session.Clear()
		m.showScore = false
		m.setStatus("cleared", false)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	m.cursor = row*poker.NumRanks + col
	return m, nil
}

// rowRank returns the rank of the cursor's row, the rank guesses apply to.
func (m *Model) rowRank() poker.Rank {
	return m.Cursor().Second()
}

func (m *Model) guess(g quiz.Guess) {
	if !m.opts.Compare {
		return
	}
	r := m.rowRank()
	m.session.Guess(r, g)
	m.showScore = false
	m.setStatus(fmt.Sprintf("guess %s: %s", r, g), false)
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

// Status returns the last status line.
func (m *Model) Status() string {
	return m.status
}
