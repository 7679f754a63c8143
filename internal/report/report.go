// Package report renders totals, comparisons and hand lists as text
// tables for the command line.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/rangegrid/analysis"
	"github.com/lox/rangegrid/internal/quiz"
	"github.com/lox/rangegrid/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	rankStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	firstStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	secondStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// Percent formats a fraction as a percentage with one decimal place and a
// zero-padded integer part, e.g. "07.7%".
func Percent(f float64) string {
	return fmt.Sprintf("%04.1f%%", f*100)
}

// WriteTotals writes the combination count of a range and its per-rank
// breakdown.
func WriteTotals(w io.Writer, name string, t analysis.Totals) error {
	fmt.Fprintf(w, "%s %s\n", headerStyle.Render("range"), name)
	fmt.Fprintf(w, "%s %s (%s of %d)\n\n",
		headerStyle.Render("combos"),
		countStyle.Render(fmt.Sprint(t.Combos)),
		percentStyle.Render(Percent(t.Coverage())),
		poker.TotalCombos)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		headerStyle.Render("rank"),
		headerStyle.Render("combos"),
		headerStyle.Render("share"))

	for _, r := range poker.RanksDescending() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			rankStyle.Render(r.String()),
			countStyle.Render(fmt.Sprint(t.Count(r))),
			percentStyle.Render(Percent(t.Share(r))))
	}

	return tw.Flush()
}

// WriteComparison writes two ranges' per-rank shares side by side with the
// verdict for each rank.
func WriteComparison(w io.Writer, first, second analysis.Totals) error {
	fmt.Fprintf(w, "%s %s vs %s\n\n",
		headerStyle.Render("combos"),
		firstStyle.Render(fmt.Sprint(first.Combos)),
		secondStyle.Render(fmt.Sprint(second.Combos)))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("rank"),
		headerStyle.Render("first"),
		headerStyle.Render("second"),
		headerStyle.Render("verdict"))

	for _, r := range poker.RanksDescending() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			rankStyle.Render(r.String()),
			firstStyle.Render(Percent(first.Share(r))),
			secondStyle.Render(Percent(second.Share(r))),
			renderVerdict(quiz.Verdict(first, second, r)))
	}

	return tw.Flush()
}

func renderVerdict(g quiz.Guess) string {
	switch g {
	case quiz.FavorsFirst:
		return firstStyle.Render(g.String())
	case quiz.FavorsSecond:
		return secondStyle.Render(g.String())
	default:
		return percentStyle.Render(g.String())
	}
}

// WriteHands writes one line per hand with its class and combination count.
func WriteHands(w io.Writer, hands []poker.Hand) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("class"),
		headerStyle.Render("combos"))

	total := 0
	for _, h := range hands {
		total += h.Multiplier()
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			rankStyle.Render(h.String()),
			h.Class(),
			countStyle.Render(fmt.Sprint(h.Multiplier())))
	}
	fmt.Fprintf(tw, "%s\t\t%s\n", headerStyle.Render("total"), countStyle.Render(fmt.Sprint(total)))

	return tw.Flush()
}

// WriteHoldings writes whether each concrete holding falls in sel.
func WriteHoldings(w io.Writer, sel analysis.Selection, holdings []poker.Combo) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		headerStyle.Render("holding"),
		headerStyle.Render("hand"),
		headerStyle.Render("in range"))

	for _, c := range holdings {
		verdict := secondStyle.Render("no")
		if sel.ContainsCards(c.A, c.B) {
			verdict = firstStyle.Render("yes")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			rankStyle.Render(c.String()),
			poker.HandOf(c.A, c.B),
			verdict)
	}

	return tw.Flush()
}

// WriteHandCombos writes each hand followed by its concrete holdings.
func WriteHandCombos(w io.Writer, hands []poker.Hand) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("combos"),
		headerStyle.Render("holdings"))

	for _, h := range hands {
		combos := h.Combos()
		labels := make([]string, len(combos))
		for i, c := range combos {
			labels[i] = c.String()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			rankStyle.Render(h.String()),
			countStyle.Render(fmt.Sprint(len(combos))),
			strings.Join(labels, " "))
	}

	return tw.Flush()
}
