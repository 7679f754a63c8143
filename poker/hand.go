package poker

import (
	"errors"
	"fmt"
)

// ErrInvalidHand is returned when a string does not name a starting hand.
var ErrInvalidHand = errors.New("invalid hand")

// NumHands is the number of distinct starting hands (13 pairs, 78 suited,
// 78 offsuit).
const NumHands = NumRanks * NumRanks

// TotalCombos is C(52,2), the number of two-card holdings in a deck.
const TotalCombos = 1326

// Class is the shape of a starting hand.
type Class uint8

const (
	Pair Class = iota
	Suited
	Offsuit
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case Pair:
		return "pair"
	case Suited:
		return "suited"
	case Offsuit:
		return "offsuit"
	default:
		return "unknown"
	}
}

// Multiplier returns how many concrete combinations a hand of this class
// represents.
func (c Class) Multiplier() int {
	switch c {
	case Pair:
		return 6
	case Suited:
		return 4
	case Offsuit:
		return 12
	default:
		return 0
	}
}

// Hand is one cell of the range grid: an ordered pair of ranks.
//
// The order of the two ranks encodes the class. Equal ranks are a pair,
// first < second is suited and first > second is offsuit. In the grid
// (ace-first axes) the cell at row r and column c holds (rank of c, rank
// of r), which puts suited hands above the diagonal and offsuit hands
// below it. Use NewPair, NewSuited and NewOffsuit to build hands.
type Hand struct {
	first  Rank
	second Rank
}

// NewPair returns the pocket pair of rank r.
func NewPair(r Rank) Hand {
	return Hand{first: r, second: r}
}

// NewSuited returns the suited hand of two ranks, given in any order.
// Equal ranks yield the pair.
func NewSuited(a, b Rank) Hand {
	if a > b {
		a, b = b, a
	}
	return Hand{first: a, second: b}
}

// NewOffsuit returns the offsuit hand of two ranks, given in any order.
// Equal ranks yield the pair.
func NewOffsuit(a, b Rank) Hand {
	if a < b {
		a, b = b, a
	}
	return Hand{first: a, second: b}
}

// First returns the first stored rank (the grid column).
func (h Hand) First() Rank { return h.first }

// Second returns the second stored rank (the grid row).
func (h Hand) Second() Rank { return h.second }

// Classification is the result of Classify.
type Classification struct {
	Class Class
	High  Rank
	Low   Rank
}

// Classify returns the class of h and its high and low ranks.
func Classify(h Hand) Classification {
	c := Classification{High: h.first, Low: h.second}
	if c.Low > c.High {
		c.High, c.Low = c.Low, c.High
	}
	switch {
	case h.first == h.second:
		c.Class = Pair
	case h.first < h.second:
		c.Class = Suited
	default:
		c.Class = Offsuit
	}
	return c
}

// Class is shorthand for Classify(h).Class.
func (h Hand) Class() Class {
	return Classify(h).Class
}

// Multiplier returns the number of concrete combinations h represents.
func (h Hand) Multiplier() int {
	return h.Class().Multiplier()
}

// Index returns the position of h in the grid, row-major with the ace
// first (0 is AA, 1 is AKs, 13 is AKo, 168 is 22).
func (h Hand) Index() int {
	row := int(Ace - h.second)
	col := int(Ace - h.first)
	return row*NumRanks + col
}

// HandAt returns the hand at grid index i. It panics if i is outside
// [0, NumHands).
func HandAt(i int) Hand {
	if i < 0 || i >= NumHands {
		panic(fmt.Sprintf("poker: hand index %d out of range", i))
	}
	row, col := i/NumRanks, i%NumRanks
	return Hand{first: Ace - Rank(col), second: Ace - Rank(row)}
}

// AllHands returns the 169 starting hands in grid order.
func AllHands() []Hand {
	hands := make([]Hand, NumHands)
	for i := range hands {
		hands[i] = HandAt(i)
	}
	return hands
}

// String returns the conventional label: "77", "AKs" or "AKo".
func (h Hand) String() string {
	c := Classify(h)
	switch c.Class {
	case Pair:
		return c.High.String() + c.Low.String()
	case Suited:
		return c.High.String() + c.Low.String() + "s"
	default:
		return c.High.String() + c.Low.String() + "o"
	}
}

// ParseHand parses a label such as "77", "AKs" or "T9o". The ranks may
// come in either order; non-pairs need an 's' or 'o' suffix.
func ParseHand(s string) (Hand, error) {
	if len(s) < 2 || len(s) > 3 {
		return Hand{}, fmt.Errorf("%w: %q", ErrInvalidHand, s)
	}

	r1, err := ParseRank(s[0])
	if err != nil {
		return Hand{}, fmt.Errorf("%w %q: %w", ErrInvalidHand, s, err)
	}
	r2, err := ParseRank(s[1])
	if err != nil {
		return Hand{}, fmt.Errorf("%w %q: %w", ErrInvalidHand, s, err)
	}

	if r1 == r2 {
		if len(s) == 3 {
			return Hand{}, fmt.Errorf("%w: pocket pairs cannot have suited/offsuit modifier: %s", ErrInvalidHand, s)
		}
		return NewPair(r1), nil
	}

	if len(s) == 2 {
		return Hand{}, fmt.Errorf("%w: %s needs an s or o suffix", ErrInvalidHand, s)
	}

	switch s[2] {
	case 's', 'S':
		return NewSuited(r1, r2), nil
	case 'o', 'O':
		return NewOffsuit(r1, r2), nil
	default:
		return Hand{}, fmt.Errorf("%w: invalid modifier %q in %s", ErrInvalidHand, s[2], s)
	}
}

// MustParseHand parses a hand label and panics on error (for tests and
// fixed tables).
func MustParseHand(s string) Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand '%s': %v", s, err))
	}
	return h
}
