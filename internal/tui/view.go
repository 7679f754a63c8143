package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/rangegrid/analysis"
	"github.com/lox/rangegrid/internal/quiz"
	"github.com/lox/rangegrid/internal/report"
	"github.com/lox/rangegrid/internal/session"
	"github.com/lox/rangegrid/poker"
)

// View renders the grids, totals, guesses and help.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var panes []string
	panes = append(panes, m.renderPane(session.FirstGrid))
	if m.opts.Compare {
		panes = append(panes, m.renderPane(session.SecondGrid), m.renderGuesses())
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("rangegrid"))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panes...))
	b.WriteString("\n")

	if m.entering {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	switch {
	case m.status == "":
	case m.statusErr:
		b.WriteString(ErrorStyle.Render(m.status))
		b.WriteString("\n")
	default:
		b.WriteString(SuccessStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderPane renders one grid with its per-row rank totals.
func (m *Model) renderPane(g session.Grid) string {
	sel := m.session.Selection(g)
	totals := analysis.ComputeTotals(sel)
	active := g == m.session.Active()
	selected := selectedStyle(m.opts.Theme)

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s combos  %s\n",
		RankStyle.Render(g.String()),
		SuccessStyle.Render(fmt.Sprint(totals.Combos)),
		InfoStyle.Render(report.Percent(totals.Coverage())+" of all"))

	for row, r := range poker.RanksDescending() {
		for col := range poker.NumRanks {
			i := row*poker.NumRanks + col
			h := poker.HandAt(i)
			cell := fmt.Sprintf("%-4s", h.String())

			style := classStyle(h.Class())
			if sel.Contains(h) {
				style = selected
			}
			if active && i == m.cursor {
				style = style.Reverse(true).Bold(true)
			}
			b.WriteString(style.Render(cell))
		}
		fmt.Fprintf(&b, " %s %4d %s\n",
			RankStyle.Render(r.String()),
			totals.Count(r),
			InfoStyle.Render(report.Percent(totals.Share(r))))
	}

	style := PaneStyle
	if active {
		style = ActivePaneStyle
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

// renderGuesses renders the guessing column, aligned with the grid rows.
func (m *Model) renderGuesses() string {
	guesses := m.session.Guesses()

	var sc quiz.Scorecard
	if m.showScore {
		sc = m.session.Score()
	}

	var b strings.Builder
	b.WriteString(RankStyle.Render("guess"))
	b.WriteString("\n")

	cursorRank := m.rowRank()
	for _, r := range poker.RanksDescending() {
		line := fmt.Sprintf("%s %s", r, guesses[r].Symbol())
		if m.showScore {
			switch sc.PerRank[r] {
			case quiz.Right:
				line += " " + SuccessStyle.Render("ok")
			case quiz.Wrong:
				line += " " + ErrorStyle.Render("x "+sc.Verdicts[r].Symbol())
			default:
				line += " " + InfoStyle.Render(sc.Verdicts[r].Symbol())
			}
		}
		if r == cursorRank {
			line = CursorStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return PaneStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func classStyle(c poker.Class) lipgloss.Style {
	switch c {
	case poker.Pair:
		return PairStyle
	case poker.Suited:
		return SuitedStyle
	default:
		return OffsuitStyle
	}
}
