package tui

import (
	"io"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/rangegrid/analysis"
	"github.com/lox/rangegrid/internal/quiz"
	"github.com/lox/rangegrid/internal/session"
	"github.com/lox/rangegrid/poker"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func newTestModel(t *testing.T, compare bool) (*Model, *session.Session) {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}) // Quiet logger for tests
	s := session.New(session.Options{Clock: quartz.NewMock(t), Logger: logger})
	return NewModel(s, logger, Options{Compare: compare, Theme: "default"}), s
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func TestCursorMovement(t *testing.T) {
	m, _ := newTestModel(t, false)

	assert.Equal(t, "AA", m.Cursor().String())
	press(m, "right")
	assert.Equal(t, "AKs", m.Cursor().String())
	press(m, "down")
	assert.Equal(t, "KK", m.Cursor().String())
	press(m, "j")
	assert.Equal(t, "KQo", m.Cursor().String())
	press(m, "h")
	assert.Equal(t, "AQo", m.Cursor().String())

	// Movement clamps at the edges.
	press(m, "up", "up", "up", "left", "left")
	assert.Equal(t, "AA", m.Cursor().String())
}

func TestTapAndCone(t *testing.T) {
	m, s := newTestModel(t, false)

	press(m, "space")
	assert.Equal(t, analysis.MustParseRange("AA"), s.Selection(session.FirstGrid))
	assert.Contains(t, m.Status(), "toggle AA")

	// A second tap on the same cell within the window toggles the cone;
	// AA has an empty cone, so the cell is cleared.
	press(m, "space")
	assert.True(t, s.Selection(session.FirstGrid).IsEmpty())
	assert.Contains(t, m.Status(), "cone AA")

	press(m, "down", "right", "right", "c")
	assert.Equal(t, "KQs", m.Cursor().String())
	assert.Equal(t, analysis.MustParseRange("KQs,AQs,AKs"), s.Selection(session.FirstGrid))
}

func TestSwitchGridOnlyInCompareMode(t *testing.T) {
	m, s := newTestModel(t, false)
	press(m, "tab")
	assert.Equal(t, session.FirstGrid, s.Active())

	m, s = newTestModel(t, true)
	press(m, "tab", "space")
	assert.Equal(t, session.SecondGrid, s.Active())
	assert.True(t, s.Selection(session.FirstGrid).IsEmpty())
	assert.Equal(t, analysis.MustParseRange("AA"), s.Selection(session.SecondGrid))
}

func TestLoadRange(t *testing.T) {
	m, s := newTestModel(t, false)

	press(m, "/")
	require.True(t, m.entering)
	press(m, "TT+,AKs", "enter")

	assert.False(t, m.entering)
	assert.Equal(t, analysis.MustParseRange("TT+,AKs"), s.Selection(session.FirstGrid))
	assert.Contains(t, m.Status(), "loaded 6 hands")
}

func TestLoadRangeError(t *testing.T) {
	m, s := newTestModel(t, false)
	require.NoError(t, s.LoadRange("AA"))

	press(m, "/", "ZZ", "enter")
	assert.True(t, m.statusErr)
	assert.Contains(t, m.Status(), "invalid range")
	assert.Equal(t, analysis.MustParseRange("AA"), s.Selection(session.FirstGrid))

	press(m, "/", "KK", "esc")
	assert.False(t, m.entering)
	assert.Equal(t, analysis.MustParseRange("AA"), s.Selection(session.FirstGrid))
}

func TestGuessAndScore(t *testing.T) {
	m, s := newTestModel(t, true)
	require.NoError(t, s.LoadRange("AA"))
	s.SetActive(session.SecondGrid)
	require.NoError(t, s.LoadRange("KK"))

	// Cursor starts on the ace row.
	press(m, "1", "down", "2", "down", "=")
	assert.Equal(t, quiz.FavorsFirst, s.Guesses()[poker.Ace])
	assert.Equal(t, quiz.FavorsSecond, s.Guesses()[poker.King])
	assert.Equal(t, quiz.Tied, s.Guesses()[poker.Queen])

	press(m, "s")
	assert.True(t, m.showScore)
	assert.Equal(t, "score: 3 right, 0 wrong, 10 unanswered", m.Status())

	press(m, "x")
	assert.Equal(t, quiz.Guesses{}, s.Guesses())
	assert.True(t, s.Selection(session.FirstGrid).IsEmpty())
}

func TestGuessIgnoredWithoutCompare(t *testing.T) {
	m, s := newTestModel(t, false)
	press(m, "1", "s")
	assert.Equal(t, quiz.Guesses{}, s.Guesses())
	assert.False(t, m.showScore)
}

func TestView(t *testing.T) {
	m, s := newTestModel(t, true)
	require.NoError(t, s.LoadRange("AA,AKs"))

	view := m.View()
	assert.Contains(t, view, "rangegrid")
	assert.Contains(t, view, "first")
	assert.Contains(t, view, "second")
	assert.Contains(t, view, "10 combos")
	assert.Contains(t, view, "guess")
	for _, label := range []string{"AA", "AKs", "AKo", "T9s", "22"} {
		assert.Contains(t, view, label)
	}
	assert.Contains(t, view, "100.0%")

	press(m, "q")
	assert.Equal(t, "", m.View())
}

func TestViewSingleGrid(t *testing.T) {
	m, _ := newTestModel(t, false)
	view := m.View()
	assert.NotContains(t, view, "second")
	assert.Equal(t, 1, strings.Count(view, "first"))
}
