package matryoshka

// MapSet is the ordered sequence of G Matryoshkas, one per segment, in the
// canonical segment ordering fixed at construction time (spec.md §3).
type MapSet []*Matryoshka

// Groups returns G, the number of segments.
func (s MapSet) Groups() int { return len(s) }
