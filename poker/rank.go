// Package poker models starting hands: ranks, the 169 hand labels of a
// 13x13 range grid, and the concrete two-card combinations behind them.
package poker

import (
	"errors"
	"fmt"
)

// ErrInvalidRank is returned when a character does not name a rank.
var ErrInvalidRank = errors.New("invalid rank")

// Rank represents a card rank (0-12 for 2-A). The numeric value is the
// rank order; nothing else in the module compares ranks.
type Rank uint8

// Rank constants
const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of distinct ranks.
const NumRanks = 13

const rankChars = "23456789TJQKA"

// String returns the single character form of the rank (e.g. "T").
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return string(rankChars[r])
}

// Valid reports whether r is one of the 13 ranks.
func (r Rank) Valid() bool {
	return r <= Ace
}

// Compare returns -1, 0 or +1 as r is lower than, equal to or higher than o.
func (r Rank) Compare(o Rank) int {
	switch {
	case r < o:
		return -1
	case r > o:
		return 1
	default:
		return 0
	}
}

// ParseRank converts a rank character to a Rank.
func ParseRank(c byte) (Rank, error) {
	switch c {
	case '2':
		return Two, nil
	case '3':
		return Three, nil
	case '4':
		return Four, nil
	case '5':
		return Five, nil
	case '6':
		return Six, nil
	case '7':
		return Seven, nil
	case '8':
		return Eight, nil
	case '9':
		return Nine, nil
	case 'T', 't':
		return Ten, nil
	case 'J', 'j':
		return Jack, nil
	case 'Q', 'q':
		return Queen, nil
	case 'K', 'k':
		return King, nil
	case 'A', 'a':
		return Ace, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidRank, c)
	}
}

// Ranks returns all ranks from deuce to ace.
func Ranks() []Rank {
	out := make([]Rank, NumRanks)
	for i := range out {
		out[i] = Rank(i)
	}
	return out
}

// RanksDescending returns all ranks from ace to deuce, the order of the
// grid axes.
func RanksDescending() []Rank {
	out := make([]Rank, NumRanks)
	for i := range out {
		out[i] = Ace - Rank(i)
	}
	return out
}
