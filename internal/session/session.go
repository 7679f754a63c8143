// Package session holds the state of one range-selection session: the two
// grids' selections, the per-rank guesses and the tap-gesture tracking that
// maps repeated taps on a cell to single or cone toggles.
package session

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/rangegrid/analysis"
	"github.com/lox/rangegrid/internal/quiz"
	"github.com/lox/rangegrid/poker"
)

// DefaultMultiTapWindow is how soon a repeated tap must follow the previous
// one to continue a gesture.
const DefaultMultiTapWindow = 350 * time.Millisecond

// Grid identifies one of the two selections.
type Grid int

const (
	FirstGrid Grid = iota
	SecondGrid
)

// String returns "first" or "second".
func (g Grid) String() string {
	if g == SecondGrid {
		return "second"
	}
	return "first"
}

func (g Grid) valid() bool {
	return g == FirstGrid || g == SecondGrid
}

// Other returns the other grid.
func (g Grid) Other() Grid {
	if g == SecondGrid {
		return FirstGrid
	}
	return SecondGrid
}

// Gesture is the operation a tap resolved to.
type Gesture uint8

const (
	GestureToggle Gesture = iota
	GestureCone
)

// String returns the gesture name.
func (g Gesture) String() string {
	if g == GestureCone {
		return "cone"
	}
	return "toggle"
}

// Options configures a Session.
type Options struct {
	Clock          quartz.Clock
	MultiTapWindow time.Duration
	Logger         *log.Logger
}

// tapState tracks a gesture in progress. before is the active selection as
// it was when the first tap landed; every tap of the gesture is applied to
// it afresh.
type tapState struct {
	live   bool
	grid   Grid
	hand   poker.Hand
	count  int
	at     time.Time
	before analysis.Selection
}

// Session owns the selections and guesses for one user. It is not safe for
// concurrent use.
type Session struct {
	logger *log.Logger
	clock  quartz.Clock
	window time.Duration

	selections [2]analysis.Selection
	guesses    quiz.Guesses
	active     Grid
	tap        tapState
}

// New creates an empty session.
func New(opts Options) *Session {
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.MultiTapWindow <= 0 {
		opts.MultiTapWindow = DefaultMultiTapWindow
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	return &Session{
		logger: opts.Logger.WithPrefix("session"),
		clock:  opts.Clock,
		window: opts.MultiTapWindow,
	}
}

// Active returns the grid that edits apply to.
func (s *Session) Active() Grid {
	return s.active
}

// SetActive selects the grid that edits apply to.
func (s *Session) SetActive(g Grid) {
	if !g.valid() {
		return
	}
	s.active = g
	s.tap = tapState{}
}

// Selection returns the selection of grid g, or the empty selection for an
// unknown grid.
func (s *Session) Selection(g Grid) analysis.Selection {
	if !g.valid() {
		return analysis.Selection{}
	}
	return s.selections[g]
}

// SetSelection replaces the selection of grid g. Unknown grids are ignored.
func (s *Session) SetSelection(g Grid, sel analysis.Selection) {
	if !g.valid() {
		return
	}
	s.selections[g] = sel
	s.tap = tapState{}
}

// LoadRange replaces the active grid's selection with parsed range
// notation. The selection is left unchanged on error.
func (s *Session) LoadRange(notation string) error {
	sel, err := analysis.ParseRange(notation)
	if err != nil {
		return err
	}
	s.SetSelection(s.active, sel)
	s.logger.Debug("Loaded range", "grid", s.active, "hands", sel.Len())
	return nil
}

// Totals returns the combination totals of grid g.
func (s *Session) Totals(g Grid) analysis.Totals {
	return analysis.ComputeTotals(s.Selection(g))
}

// Toggle adds or removes h in the active grid.
func (s *Session) Toggle(h poker.Hand) {
	s.selections[s.active] = analysis.ToggleSingle(h, s.selections[s.active])
	s.tap = tapState{}
	s.logger.Debug("Toggled hand", "grid", s.active, "hand", h)
}

// ToggleCone toggles h together with its dominance cone in the active grid.
func (s *Session) ToggleCone(h poker.Hand) {
	s.selections[s.active] = analysis.ToggleWithDominance(h, s.selections[s.active])
	s.tap = tapState{}
	s.logger.Debug("Toggled cone", "grid", s.active, "hand", h)
}

// Tap registers a tap on h in the active grid and applies the resulting
// gesture. Taps on the same cell within the multi-tap window cycle the
// gesture: odd taps toggle the single hand, even taps toggle its cone, each
// applied to the selection as it was before the first tap.
func (s *Session) Tap(h poker.Hand) Gesture {
	now := s.clock.Now()

	continuing := s.tap.live &&
		s.tap.grid == s.active &&
		s.tap.hand == h &&
		now.Sub(s.tap.at) <= s.window

	if continuing {
		s.tap.count++
	} else {
		s.tap = tapState{
			live:   true,
			grid:   s.active,
			hand:   h,
			count:  1,
			before: s.selections[s.active],
		}
	}
	s.tap.at = now

	gesture := GestureToggle
	if s.tap.count%2 == 0 {
		gesture = GestureCone
	}

	switch gesture {
	case GestureCone:
		s.selections[s.active] = analysis.ToggleWithDominance(h, s.tap.before)
	default:
		s.selections[s.active] = analysis.ToggleSingle(h, s.tap.before)
	}

	s.logger.Debug("Tap", "grid", s.active, "hand", h, "count", s.tap.count, "gesture", gesture)
	return gesture
}

// Guesses returns the current guesses.
func (s *Session) Guesses() quiz.Guesses {
	return s.guesses
}

// Guess records the guess for rank r.
func (s *Session) Guess(r poker.Rank, g quiz.Guess) {
	s.guesses = s.guesses.With(r, g)
}

// Score marks the guesses against the two grids.
func (s *Session) Score() quiz.Scorecard {
	return quiz.Score(s.guesses, s.Totals(FirstGrid), s.Totals(SecondGrid))
}

// Clear empties both grids and resets the guesses.
func (s *Session) Clear() {
	s.selections = [2]analysis.Selection{}
	s.guesses = quiz.Guesses{}
	s.tap = tapState{}
	s.logger.Info("Cleared session")
}
