package analysis

import (
	"testing"

	"github.com/lox/rangegrid/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotalsEmpty(t *testing.T) {
	totals := ComputeTotals(Selection{})

	assert.Equal(t, 0, totals.Combos)
	for _, r := range poker.Ranks() {
		assert.Equal(t, 0, totals.Count(r))
		assert.Zero(t, totals.Share(r))
	}
	assert.Zero(t, totals.Coverage())
}

func TestComputeTotalsAllHands(t *testing.T) {
	totals := ComputeTotals(All())

	assert.Equal(t, poker.TotalCombos, totals.Combos)
	assert.InDelta(t, 1.0, totals.Coverage(), 1e-9)

	// Every rank appears in C(52,2) - C(48,2) = 198 holdings.
	for _, r := range poker.Ranks() {
		assert.Equal(t, 198, totals.Count(r), "rank %s", r)
	}
	assert.Equal(t, 198, totals.ByRank[poker.Ace])
}

func TestComputeTotalsSingleHands(t *testing.T) {
	tests := []struct {
		notation string
		combos   int
		byRank   map[poker.Rank]int
	}{
		{"AA", 6, map[poker.Rank]int{poker.Ace: 6}},
		{"AKs", 4, map[poker.Rank]int{poker.Ace: 4, poker.King: 4}},
		{"AKo", 12, map[poker.Rank]int{poker.Ace: 12, poker.King: 12}},
		{"AA,AKs,AKo", 22, map[poker.Rank]int{poker.Ace: 22, poker.King: 16}},
		{"T9s,98s", 8, map[poker.Rank]int{poker.Ten: 4, poker.Nine: 8, poker.Eight: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			totals := ComputeTotals(MustParseRange(tt.notation))
			assert.Equal(t, tt.combos, totals.Combos)
			for _, r := range poker.Ranks() {
				assert.Equal(t, tt.byRank[r], totals.Count(r), "rank %s", r)
			}
		})
	}
}

func TestComputeTotalsRankSumIdentity(t *testing.T) {
	selections := []Selection{
		{},
		All(),
		MustParseRange("22+"),
		MustParseRange("TT+,AJs+,KQo,A5s-A2s"),
		MustParseRange("72o,32s,JJ"),
	}

	for _, s := range selections {
		totals := ComputeTotals(s)

		pairCombos := 0
		sumMultipliers := 0
		for _, h := range s.Hands() {
			sumMultipliers += h.Multiplier()
			if h.Class() == poker.Pair {
				pairCombos += h.Multiplier()
			}
		}

		sum := 0
		for _, n := range totals.ByRank {
			sum += n
		}

		assert.Equal(t, sumMultipliers, totals.Combos, s.String())
		assert.Equal(t, 2*totals.Combos-pairCombos, sum, s.String())
	}
}

func TestComputeTotalsOrderIndependent(t *testing.T) {
	hands := MustParseRange("TT+,AJs+,KQo,76s").Hands()
	forward := NewSelection(hands...)

	var backward Selection
	for i := len(hands) - 1; i >= 0; i-- {
		backward = backward.Add(hands[i])
	}

	require.Equal(t, forward, backward)
	assert.Equal(t, ComputeTotals(forward), ComputeTotals(backward))
}

func TestShare(t *testing.T) {
	totals := ComputeTotals(MustParseRange("AA,KK"))

	assert.InDelta(t, 0.5, totals.Share(poker.Ace), 1e-9)
	assert.InDelta(t, 0.5, totals.Share(poker.King), 1e-9)
	assert.Zero(t, totals.Share(poker.Queen))
}
