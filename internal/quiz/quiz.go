// Package quiz implements the comparison game: for each rank the player
// guesses which of two ranges leans on that rank more, or whether they are
// even, and the guesses are scored against the ranges' totals.
package quiz

import (
	"github.com/lox/rangegrid/analysis"
	"github.com/lox/rangegrid/poker"
)

// TieTolerance is the largest absolute difference in rank share (0.02 is
// two percentage points) at which two ranges count as tied on a rank.
const TieTolerance = 0.02

// Guess is a player's call for one rank.
type Guess uint8

const (
	Unset Guess = iota
	FavorsFirst
	FavorsSecond
	Tied
)

// String returns a short label for the guess.
func (g Guess) String() string {
	switch g {
	case FavorsFirst:
		return "first"
	case FavorsSecond:
		return "second"
	case Tied:
		return "tied"
	default:
		return "unset"
	}
}

// Symbol returns the single character shown next to a rank.
func (g Guess) Symbol() string {
	switch g {
	case FavorsFirst:
		return "1"
	case FavorsSecond:
		return "2"
	case Tied:
		return "="
	default:
		return "·"
	}
}

// Guesses holds one guess per rank. The zero value has every rank unset.
type Guesses [poker.NumRanks]Guess

// With returns a copy of g with rank r set to guess.
func (g Guesses) With(r poker.Rank, guess Guess) Guesses {
	g[r] = guess
	return g
}

// tieScale is 1/TieTolerance, letting the tie test run on integers.
const tieScale = int(1 / TieTolerance)

// Verdict returns the correct answer for rank r given the totals of the
// two ranges. Shares are compared as exact fractions, so a gap of exactly
// TieTolerance is a tie.
func Verdict(first, second analysis.Totals, r poker.Rank) Guess {
	an, ad := shareFraction(first, r)
	bn, bd := shareFraction(second, r)

	// a - b = (an*bd - bn*ad) / (ad*bd)
	diff := an*bd - bn*ad
	switch {
	case tieScale*abs(diff) <= ad*bd:
		return Tied
	case diff > 0:
		return FavorsFirst
	default:
		return FavorsSecond
	}
}

// shareFraction returns rank r's share of t as numerator and denominator.
// An empty range has a share of 0/1.
func shareFraction(t analysis.Totals, r poker.Rank) (num, den int) {
	if t.Combos == 0 {
		return 0, 1
	}
	return t.Count(r), t.Combos
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Outcome is the result of one rank's guess.
type Outcome uint8

const (
	Unanswered Outcome = iota
	Right
	Wrong
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Right:
		return "right"
	case Wrong:
		return "wrong"
	default:
		return "unanswered"
	}
}

// Scorecard is the marked result of a set of guesses.
type Scorecard struct {
	PerRank    [poker.NumRanks]Outcome
	Verdicts   [poker.NumRanks]Guess
	Correct    int
	Wrong      int
	Unanswered int
}

// Score marks every rank's guess against the two ranges' totals.
func Score(g Guesses, first, second analysis.Totals) Scorecard {
	var sc Scorecard
	for _, r := range poker.Ranks() {
		verdict := Verdict(first, second, r)
		sc.Verdicts[r] = verdict

		switch {
		case g[r] == Unset:
			sc.PerRank[r] = Unanswered
			sc.Unanswered++
		case g[r] == verdict:
			sc.PerRank[r] = Right
			sc.Correct++
		default:
			sc.PerRank[r] = Wrong
			sc.Wrong++
		}
	}
	return sc
}
