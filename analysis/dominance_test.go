package analysis

import (
	"testing"

	"github.com/lox/rangegrid/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDominanceSetPair(t *testing.T) {
	cone := DominanceSet(poker.MustParseHand("77"))

	assert.Equal(t, MustParseRange("88,99,TT,JJ,QQ,KK,AA"), cone)
	assert.False(t, cone.Contains(poker.MustParseHand("77")))
	assert.False(t, cone.Contains(poker.MustParseHand("66")))
	assert.False(t, cone.Contains(poker.MustParseHand("AKs")))
}

func TestDominanceSetSuited(t *testing.T) {
	cone := DominanceSet(poker.MustParseHand("T9s"))

	for _, label := range []string{"J9s", "JTs", "Q9s", "A9s", "AKs", "KQs"} {
		assert.True(t, cone.Contains(poker.MustParseHand(label)), "%s should dominate T9s", label)
	}
	for _, label := range []string{"T9s", "98s", "T8s", "J8s", "J9o", "TT", "AKo"} {
		assert.False(t, cone.Contains(poker.MustParseHand(label)), "%s should not dominate T9s", label)
	}

	// Lows 9..K with highs above both the low and T, less T9s itself.
	assert.Equal(t, 14, cone.Len())
}

func TestDominanceSetOffsuit(t *testing.T) {
	cone := DominanceSet(poker.MustParseHand("KQo"))
	assert.Equal(t, MustParseRange("AQo,AKo"), cone)

	assert.True(t, DominanceSet(poker.MustParseHand("AKo")).IsEmpty())
	assert.True(t, DominanceSet(poker.MustParseHand("AKs")).IsEmpty())
	assert.True(t, DominanceSet(poker.MustParseHand("AA")).IsEmpty())
}

func TestDominanceSetProperties(t *testing.T) {
	for _, h := range poker.AllHands() {
		cone := DominanceSet(h)
		assert.False(t, cone.Contains(h), "%s in its own cone", h)

		ref := poker.Classify(h)
		for _, d := range cone.Hands() {
			c := poker.Classify(d)
			require.Equal(t, ref.Class, c.Class, "%s in cone of %s", d, h)
			assert.GreaterOrEqual(t, c.High, ref.High)
			assert.GreaterOrEqual(t, c.Low, ref.Low)

			// Dominance is transitive: d's cone sits inside h's cone.
			assert.True(t, DominanceSet(d).IsSubset(cone), "cone of %s within cone of %s", d, h)
		}
	}

	// 32s is dominated by every other suited hand.
	assert.Equal(t, 77, DominanceSet(poker.MustParseHand("32s")).Len())
	assert.Equal(t, 12, DominanceSet(poker.MustParseHand("22")).Len())
}

func TestToggleSingle(t *testing.T) {
	aks := poker.MustParseHand("AKs")
	start := MustParseRange("QQ+,AQs")

	on := ToggleSingle(aks, start)
	assert.True(t, on.Contains(aks))
	assert.False(t, start.Contains(aks), "input must not change")
	assert.Equal(t, start, ToggleSingle(aks, on))

	for _, h := range poker.AllHands() {
		for _, s := range []Selection{{}, start, All()} {
			assert.Equal(t, s, ToggleSingle(h, ToggleSingle(h, s)), "%s against %s", h, s)
		}
	}
}

func TestToggleWithDominance(t *testing.T) {
	tests := []struct {
		name  string
		hand  string
		start string
		want  string
	}{
		{"selects cone into empty", "77", "", "77+"},
		{"removes full cone", "77", "77+", ""},
		{"removes when only the cone is present", "77", "88+", ""},
		{"completes a partial cone", "77", "99,AA", "77+"},
		{"keeps unrelated hands", "KQo", "22", "22,KQo,AQo,AKo"},
		{"empty cone removes", "AA", "AA,KK", "KK"},
		{"empty cone on empty selection", "AA", "", ""},
		{"suited cone", "KJs", "", "KJs+,AJs+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := MustParseRange(tt.start)
			got := ToggleWithDominance(poker.MustParseHand(tt.hand), start)
			assert.Equal(t, MustParseRange(tt.want), got, "got %s", got)
			assert.Equal(t, MustParseRange(tt.start), start, "input must not change")
		})
	}
}

func TestToggleWithDominanceTwiceRestores(t *testing.T) {
	for _, h := range poker.AllHands() {
		cone := DominanceSet(h).Add(h)
		// Any start disjoint from the cone comes back unchanged.
		start := MustParseRange("22,72o,32s").Difference(cone)

		once := ToggleWithDominance(h, start)
		twice := ToggleWithDominance(h, once)
		assert.Equal(t, start, twice, "%s", h)
	}
}
