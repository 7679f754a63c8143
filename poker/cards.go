package poker

import (
	"fmt"
	"math/bits"
)

// Card represents a single card as a bit position in a uint64.
// Layout: [13 clubs][13 diamonds][13 hearts][13 spades]
type Card uint64

// Suit is one of the four suits.
type Suit uint8

// Suit constants
const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

const suitChars = "cdhs"

// String returns the single character form of the suit.
func (s Suit) String() string {
	if s > Spades {
		return "?"
	}
	return string(suitChars[s])
}

// NewCard creates a card from rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	offset := uint8(suit)*NumRanks + uint8(rank)
	return Card(1) << offset
}

// position returns which bit this card occupies (0-51), or 255 for the
// zero card.
func (c Card) position() uint8 {
	if c == 0 {
		return 255
	}
	return uint8(bits.TrailingZeros64(uint64(c)))
}

// Rank returns the rank of the card.
func (c Card) Rank() Rank {
	return Rank(c.position() % NumRanks)
}

// Suit returns the suit of the card.
func (c Card) Suit() Suit {
	return Suit(c.position() / NumRanks)
}

// Valid reports whether c is exactly one of the 52 cards.
func (c Card) Valid() bool {
	return bits.OnesCount64(uint64(c)) == 1 && c.position() < 4*NumRanks
}

// String returns the string representation (e.g., "As", "Kh").
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return c.Rank().String() + c.Suit().String()
}

// ParseCard parses a string like "As" into a Card.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid card string: %s", s)
	}

	rank, err := ParseRank(s[0])
	if err != nil {
		return 0, fmt.Errorf("invalid card %s: %w", s, err)
	}

	var suit Suit
	switch s[1] {
	case 'c', 'C':
		suit = Clubs
	case 'd', 'D':
		suit = Diamonds
	case 'h', 'H':
		suit = Hearts
	case 's', 'S':
		suit = Spades
	default:
		return 0, fmt.Errorf("invalid suit: %c", s[1])
	}

	return NewCard(rank, suit), nil
}

// Combo is one concrete two-card holding.
type Combo struct {
	A, B Card
}

// String returns both cards, e.g. "AsKs".
func (c Combo) String() string {
	return c.A.String() + c.B.String()
}

// Combos returns every concrete holding that h stands for.
func (h Hand) Combos() []Combo {
	c := Classify(h)
	combos := make([]Combo, 0, c.Class.Multiplier())

	switch c.Class {
	case Pair:
		for s1 := Clubs; s1 <= Spades; s1++ {
			for s2 := s1 + 1; s2 <= Spades; s2++ {
				combos = append(combos, Combo{NewCard(c.High, s1), NewCard(c.Low, s2)})
			}
		}
	case Suited:
		for s := Clubs; s <= Spades; s++ {
			combos = append(combos, Combo{NewCard(c.High, s), NewCard(c.Low, s)})
		}
	case Offsuit:
		for s1 := Clubs; s1 <= Spades; s1++ {
			for s2 := Clubs; s2 <= Spades; s2++ {
				if s1 != s2 {
					combos = append(combos, Combo{NewCard(c.High, s1), NewCard(c.Low, s2)})
				}
			}
		}
	}

	return combos
}

// ParseHolding parses two concatenated cards such as "AsKd". The cards must
// differ.
func ParseHolding(s string) (Card, Card, error) {
	if len(s) != 4 {
		return 0, 0, fmt.Errorf("invalid holding %q: want two cards like AsKd", s)
	}
	c1, err := ParseCard(s[:2])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid holding %q: %w", s, err)
	}
	c2, err := ParseCard(s[2:])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid holding %q: %w", s, err)
	}
	if c1 == c2 {
		return 0, 0, fmt.Errorf("invalid holding %q: duplicate card", s)
	}
	return c1, c2, nil
}

// HandOf returns the starting hand a concrete holding belongs to. Both
// cards must be valid and distinct; the result is meaningless otherwise.
func HandOf(c1, c2 Card) Hand {
	switch {
	case c1.Rank() == c2.Rank():
		return NewPair(c1.Rank())
	case c1.Suit() == c2.Suit():
		return NewSuited(c1.Rank(), c2.Rank())
	default:
		return NewOffsuit(c1.Rank(), c2.Rank())
	}
}
