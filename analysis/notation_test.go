package analysis

import (
	"testing"

	"github.com/lox/rangegrid/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		name       string
		notation   string
		wantHands  int
		wantCombos int
		wantErr    bool
	}{
		{
			name:       "pocket aces",
			notation:   "AA",
			wantHands:  1,
			wantCombos: 6,
		},
		{
			name:       "ace king suited",
			notation:   "AKs",
			wantHands:  1,
			wantCombos: 4,
		},
		{
			name:       "ace king offsuit",
			notation:   "AKo",
			wantHands:  1,
			wantCombos: 12,
		},
		{
			name:       "ace king any",
			notation:   "AK",
			wantHands:  2,
			wantCombos: 16, // 4 suited + 12 offsuit
		},
		{
			name:       "multiple hands",
			notation:   "AA,KK,AKs",
			wantHands:  3,
			wantCombos: 16, // 6 + 6 + 4
		},
		{
			name:       "pocket pairs range",
			notation:   "TT+",
			wantHands:  5,
			wantCombos: 30, // TT,JJ,QQ,KK,AA = 5 * 6
		},
		{
			name:       "suited range plus",
			notation:   "ATs+",
			wantHands:  4,
			wantCombos: 16, // AT,AJ,AQ,AK suited = 4 * 4
		},
		{
			name:       "offsuit range plus",
			notation:   "KJo+",
			wantHands:  2,
			wantCombos: 24, // KJ,KQ offsuit = 2 * 12
		},
		{
			name:       "any plus",
			notation:   "KQ+",
			wantHands:  2,
			wantCombos: 16,
		},
		{
			name:       "dash range pairs",
			notation:   "22-55",
			wantHands:  4,
			wantCombos: 24, // 22,33,44,55 = 4 * 6
		},
		{
			name:       "dash range reversed",
			notation:   "55-22",
			wantHands:  4,
			wantCombos: 24,
		},
		{
			name:       "dash range suited",
			notation:   "A5s-A2s",
			wantHands:  4,
			wantCombos: 16, // A5s,A4s,A3s,A2s = 4 * 4
		},
		{
			name:       "complex range",
			notation:   "TT+,AJs+,KQs",
			wantHands:  9,
			wantCombos: 46, // 30 + 12 + 4
		},
		{
			name:       "overlapping parts count once",
			notation:   "TT+,QQ,AKs,AK",
			wantHands:  7,
			wantCombos: 46,
		},
		{
			name:       "whitespace and empty parts",
			notation:   " AA , ,KK ",
			wantHands:  2,
			wantCombos: 12,
		},
		{
			name:     "empty",
			notation: "",
		},
		{
			name:     "invalid notation",
			notation: "XX",
			wantErr:  true,
		},
		{
			name:     "invalid modifier",
			notation: "AKx",
			wantErr:  true,
		},
		{
			name:     "pocket pair with modifier",
			notation: "AAs",
			wantErr:  true,
		},
		{
			name:     "dash across high cards",
			notation: "A5s-K2s",
			wantErr:  true,
		},
		{
			name:     "dash with mismatched modifiers",
			notation: "A5s-A2o",
			wantErr:  true,
		},
		{
			name:     "dash pair to non-pair",
			notation: "22-A2s",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseRange(tt.notation)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHands, s.Len())
			assert.Equal(t, tt.wantCombos, ComputeTotals(s).Combos)
		})
	}
}

func TestParseRangeErrorNamesPart(t *testing.T) {
	_, err := ParseRange("AA,KQx,22")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"KQx"`)
}

func TestRangeContainsCards(t *testing.T) {
	r := MustParseRange("AA,KK,AKs")

	tests := []struct {
		card1 string
		card2 string
		want  bool
	}{
		{"Ah", "As", true},  // AA
		{"Kh", "Kd", true},  // KK
		{"Ah", "Kh", true},  // AKs
		{"Kh", "Ah", true},  // AKs, either order
		{"Ah", "Kd", false}, // AKo not in range
		{"Qh", "Qd", false}, // QQ not in range
	}

	for _, tt := range tests {
		t.Run(tt.card1+tt.card2, func(t *testing.T) {
			c1, err := poker.ParseCard(tt.card1)
			require.NoError(t, err)
			c2, err := poker.ParseCard(tt.card2)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.ContainsCards(c1, c2))
		})
	}
}

func TestContainsCardsRejectsInvalidHoldings(t *testing.T) {
	all := All()
	as := poker.NewCard(poker.Ace, poker.Spades)

	assert.True(t, all.ContainsCards(as, poker.NewCard(poker.Ace, poker.Hearts)))
	assert.False(t, all.ContainsCards(as, as), "duplicate card")
	assert.False(t, all.ContainsCards(as, 0), "zero card")
	assert.False(t, all.ContainsCards(as|poker.NewCard(poker.King, poker.Spades), poker.NewCard(poker.Two, poker.Clubs)), "multi-bit card")
}

func TestSelectionStringRoundTrip(t *testing.T) {
	for _, notation := range []string{"", "AA", "TT+,AJs+,KQo", "22-66,A5s-A2s,72o"} {
		s := MustParseRange(notation)
		back, err := ParseRange(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, back, notation)
	}

	assert.Equal(t, "AA,AKs,AKo,KK", MustParseRange("AKo,KK,AKs,AA").String())
	assert.Equal(t, 169, MustParseRange(All().String()).Len())
}
