package analysis

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/rangegrid/poker"
)

// ErrInvalidRange is returned for range notation that cannot be parsed.
var ErrInvalidRange = errors.New("invalid range")

// ParseRange builds a selection from standard range notation.
// Examples: "AA,KK", "AKs,AKo", "AK", "TT+", "ATs+", "A5s-A2s", "22-66".
func ParseRange(notation string) (Selection, error) {
	var s Selection

	for part := range strings.SplitSeq(notation, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		hands, err := parseRangePart(part)
		if err != nil {
			return Selection{}, fmt.Errorf("%w: part %q: %w", ErrInvalidRange, part, err)
		}
		s = s.Add(hands...)
	}

	return s, nil
}

// MustParseRange parses range notation and panics on error (for tests).
func MustParseRange(notation string) Selection {
	s, err := ParseRange(notation)
	if err != nil {
		panic(fmt.Sprintf("failed to parse range '%s': %v", notation, err))
	}
	return s
}

// parseRangePart expands a single comma-free notation part.
func parseRangePart(part string) ([]poker.Hand, error) {
	if strings.HasSuffix(part, "+") {
		return parsePlusRange(strings.TrimSuffix(part, "+"))
	}
	if strings.Contains(part, "-") {
		return parseDashRange(part)
	}
	return parseBase(part)
}

// base is a parsed hand pattern: two ranks (high first) and which classes
// it names. A two-character non-pair like "AK" names both suited and
// offsuit.
type base struct {
	high, low poker.Rank
	suited    bool
	offsuit   bool
}

func (b base) pair() bool { return b.high == b.low }

func (b base) hands(high, low poker.Rank) []poker.Hand {
	if high == low {
		return []poker.Hand{poker.NewPair(high)}
	}
	var out []poker.Hand
	if b.suited {
		out = append(out, poker.NewSuited(high, low))
	}
	if b.offsuit {
		out = append(out, poker.NewOffsuit(high, low))
	}
	return out
}

func parseBaseNotation(notation string) (base, error) {
	if len(notation) < 2 || len(notation) > 3 {
		return base{}, fmt.Errorf("invalid notation length: %s", notation)
	}

	r1, err := poker.ParseRank(notation[0])
	if err != nil {
		return base{}, err
	}
	r2, err := poker.ParseRank(notation[1])
	if err != nil {
		return base{}, err
	}
	if r1 < r2 {
		r1, r2 = r2, r1
	}
	b := base{high: r1, low: r2}

	if b.pair() {
		if len(notation) == 3 {
			return base{}, fmt.Errorf("pocket pairs cannot have suited/offsuit modifier: %s", notation)
		}
		return b, nil
	}

	if len(notation) == 2 {
		b.suited, b.offsuit = true, true
		return b, nil
	}

	switch notation[2] {
	case 's', 'S':
		b.suited = true
	case 'o', 'O':
		b.offsuit = true
	default:
		return base{}, fmt.Errorf("invalid modifier: %c", notation[2])
	}
	return b, nil
}

func parseBase(notation string) ([]poker.Hand, error) {
	b, err := parseBaseNotation(notation)
	if err != nil {
		return nil, err
	}
	return b.hands(b.high, b.low), nil
}

// parsePlusRange handles "TT+" (TT and every higher pair) and "ATs+" (the
// kicker climbs to one below the high card).
func parsePlusRange(notation string) ([]poker.Hand, error) {
	b, err := parseBaseNotation(notation)
	if err != nil {
		return nil, err
	}

	var out []poker.Hand
	if b.pair() {
		for r := b.high; r <= poker.Ace; r++ {
			out = append(out, poker.NewPair(r))
		}
		return out, nil
	}

	for kicker := b.low; kicker < b.high; kicker++ {
		out = append(out, b.hands(b.high, kicker)...)
	}
	return out, nil
}

// parseDashRange handles "22-66" and "A5s-A2s".
func parseDashRange(notation string) ([]poker.Hand, error) {
	parts := strings.Split(notation, "-")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid dash range format")
	}

	start, err := parseBaseNotation(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, err
	}
	end, err := parseBaseNotation(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, err
	}

	var out []poker.Hand

	if start.pair() && end.pair() {
		lower, upper := min(start.high, end.high), max(start.high, end.high)
		for r := lower; r <= upper; r++ {
			out = append(out, poker.NewPair(r))
		}
		return out, nil
	}

	if start.pair() || end.pair() || start.high != end.high {
		return nil, fmt.Errorf("unsupported range format: %s", notation)
	}
	if start.suited != end.suited || start.offsuit != end.offsuit {
		return nil, fmt.Errorf("mismatched modifiers: %s", notation)
	}

	lower, upper := min(start.low, end.low), max(start.low, end.low)
	for kicker := lower; kicker <= upper; kicker++ {
		out = append(out, start.hands(start.high, kicker)...)
	}
	return out, nil
}
