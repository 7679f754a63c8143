package analysis

import "github.com/lox/rangegrid/poker"

// DominanceSet returns the hands of the same class as h that are at least
// as strong in both ranks and strictly stronger in one. Pairs are
// dominated only by higher pairs. The result never contains h.
func DominanceSet(h poker.Hand) Selection {
	ref := poker.Classify(h)

	var cone Selection
	for _, cand := range poker.AllHands() {
		c := poker.Classify(cand)
		if c.Class != ref.Class {
			continue
		}
		if dominates(c, ref) {
			cone = cone.Add(cand)
		}
	}
	return cone
}

func dominates(c, ref poker.Classification) bool {
	if c.Class == poker.Pair {
		return c.High.Compare(ref.High) > 0
	}
	lowCmp := c.Low.Compare(ref.Low)
	highCmp := c.High.Compare(ref.High)
	return lowCmp >= 0 && highCmp >= 0 && (lowCmp > 0 || highCmp > 0)
}

// ToggleSingle adds h to s if absent and removes it if present.
func ToggleSingle(h poker.Hand, s Selection) Selection {
	if s.Contains(h) {
		return s.Remove(h)
	}
	return s.Add(h)
}

// ToggleWithDominance toggles h together with its dominance cone. When
// every hand of the cone is already selected (trivially so for an empty
// cone) h and the cone are removed; otherwise they are all added.
func ToggleWithDominance(h poker.Hand, s Selection) Selection {
	d := DominanceSet(h)
	if d.IsSubset(s) {
		return s.Difference(d.Add(h))
	}
	return s.Union(d.Add(h))
}
