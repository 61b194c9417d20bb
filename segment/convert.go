// Package segment: pattern introspection and cross-wiring translation.
//
// These helpers never consult the glyph tables; they operate purely on
// the bit layout of a Pattern, so they work for hand-built patterns as
// well as Encode output.
package segment

// Segments reports which bars p lights under wiring w, in fixed
// A, B, …, G, DP order. Blank yields an empty (non-nil) slice.
//
// Returns ErrUnknownWiring if w is out of range.
//
// Complexity: O(1) — eight bit tests; allocates only the result slice.
func Segments(p Pattern, w Wiring) ([]Segment, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	lit := make([]Segment, 0, segmentCount)
	for s := SegA; s < segmentCount; s++ {
		if p&segmentBits[w][s] != 0 {
			lit = append(lit, s)
		}
	}

	return lit, nil
}

// Translate re-expresses p, encoded under wiring `from`, as the
// equivalent pattern under wiring `to`: each lit segment keeps its
// physical identity while its bit position moves. DP stays at bit 7
// under both wirings. The mapping is a bit permutation, hence exact and
// invertible: Translate(Translate(p, a, b), b, a) == p.
//
// Returns ErrUnknownWiring if either wiring is out of range.
//
// Complexity: O(1) — eight bit tests, zero allocations.
func Translate(p Pattern, from, to Wiring) (Pattern, error) {
	if err := from.Validate(); err != nil {
		return Blank, err
	}
	if err := to.Validate(); err != nil {
		return Blank, err
	}
	if from == to {
		return p, nil
	}

	var out Pattern
	for s := SegA; s < segmentCount; s++ {
		if p&segmentBits[from][s] != 0 {
			out |= segmentBits[to][s]
		}
	}

	return out, nil
}

// Glyphs returns every rune with a glyph under wiring w, in ascending
// rune order. Space is included even though its pattern is Blank: it is
// an explicit table entry, not a fallback. Both wirings cover the same
// character set.
//
// Returns ErrUnknownWiring if w is out of range.
func Glyphs(w Wiring) ([]rune, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	table := glyphTables[w]
	out := make([]rune, 0, len(table))
	for r := rune(0); r < rune(len(table)); r++ {
		if table[r] != Blank || r == ' ' {
			out = append(out, r)
		}
	}

	return out, nil
}

// CodeBSet returns the Code-B compatible characters in ascending rune
// order: space, '-', '0'-'9', 'E', 'H', 'L', 'P'. The slice is freshly
// allocated on each call; callers may mutate it freely.
func CodeBSet() []rune {
	out := make([]rune, 0, 16)
	for r := rune(0); r < 128; r++ {
		if CodeBCompatible(r) {
			out = append(out, r)
		}
	}

	return out
}
