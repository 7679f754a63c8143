// Package analysis aggregates selections of starting hands into combination
// totals and computes the dominance cones used for bulk range edits.
package analysis

import (
	"math/bits"
	"strings"

	"github.com/lox/rangegrid/poker"
)

const selectionWords = (poker.NumHands + 63) / 64

// Selection is an immutable set of starting hands, one bit per grid cell.
// The zero value is the empty selection. Selections are values: every
// operation returns a new Selection and leaves the receiver untouched, and
// two selections with the same members compare equal with ==.
type Selection struct {
	words [selectionWords]uint64
}

// NewSelection returns a selection holding the given hands.
func NewSelection(hands ...poker.Hand) Selection {
	return Selection{}.Add(hands...)
}

// All returns the selection of all 169 starting hands.
func All() Selection {
	return NewSelection(poker.AllHands()...)
}

// Contains reports whether h is selected.
func (s Selection) Contains(h poker.Hand) bool {
	i := h.Index()
	return s.words[i/64]&(1<<(i%64)) != 0
}

// ContainsCards reports whether the concrete holding c1, c2 falls in a
// selected hand. Invalid or duplicate cards are never contained.
func (s Selection) ContainsCards(c1, c2 poker.Card) bool {
	if !c1.Valid() || !c2.Valid() || c1 == c2 {
		return false
	}
	return s.Contains(poker.HandOf(c1, c2))
}

// Add returns s with the given hands added.
func (s Selection) Add(hands ...poker.Hand) Selection {
	for _, h := range hands {
		i := h.Index()
		s.words[i/64] |= 1 << (i % 64)
	}
	return s
}

// Remove returns s with the given hands removed.
func (s Selection) Remove(hands ...poker.Hand) Selection {
	for _, h := range hands {
		i := h.Index()
		s.words[i/64] &^= 1 << (i % 64)
	}
	return s
}

// Union returns the hands in s or o.
func (s Selection) Union(o Selection) Selection {
	for i := range s.words {
		s.words[i] |= o.words[i]
	}
	return s
}

// Difference returns the hands in s that are not in o.
func (s Selection) Difference(o Selection) Selection {
	for i := range s.words {
		s.words[i] &^= o.words[i]
	}
	return s
}

// IsSubset reports whether every hand in s is also in o.
func (s Selection) IsSubset(o Selection) bool {
	for i := range s.words {
		if s.words[i]&^o.words[i] != 0 {
			return false
		}
	}
	return true
}

// Len returns the number of selected hands (not combinations).
func (s Selection) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsEmpty reports whether no hand is selected.
func (s Selection) IsEmpty() bool {
	return s == Selection{}
}

// Hands returns the selected hands in grid order.
func (s Selection) Hands() []poker.Hand {
	hands := make([]poker.Hand, 0, s.Len())
	for i := range poker.NumHands {
		if s.words[i/64]&(1<<(i%64)) != 0 {
			hands = append(hands, poker.HandAt(i))
		}
	}
	return hands
}

// String returns the selected hand labels in grid order, comma separated.
// The result parses back with ParseRange.
func (s Selection) String() string {
	hands := s.Hands()
	labels := make([]string, len(hands))
	for i, h := range hands {
		labels[i] = h.String()
	}
	return strings.Join(labels, ",")
}
