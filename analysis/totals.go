package analysis

import "github.com/lox/rangegrid/poker"

// Totals is the combination count of a selection, overall and per rank.
// It is derived from a Selection and holds no state of its own.
type Totals struct {
	Combos int
	ByRank [poker.NumRanks]int
}

// ComputeTotals counts the concrete combinations in s. Each hand adds its
// multiplier to the overall total and to each of its ranks; a pair's
// single rank is credited once.
func ComputeTotals(s Selection) Totals {
	var t Totals
	for _, h := range s.Hands() {
		c := poker.Classify(h)
		m := c.Class.Multiplier()

		t.Combos += m
		t.ByRank[c.High] += m
		if c.Low != c.High {
			t.ByRank[c.Low] += m
		}
	}
	return t
}

// Count returns the combinations that include rank r.
func (t Totals) Count(r poker.Rank) int {
	return t.ByRank[r]
}

// Share returns the fraction of the selection's combinations that include
// rank r. An empty selection has a share of zero for every rank.
func (t Totals) Share(r poker.Rank) float64 {
	if t.Combos == 0 {
		return 0
	}
	return float64(t.ByRank[r]) / float64(t.Combos)
}

// Coverage returns the fraction of all 1326 holdings the selection covers.
func (t Totals) Coverage() float64 {
	return float64(t.Combos) / poker.TotalCombos
}
