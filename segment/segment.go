// Package segment encodes single characters as seven-segment bitmasks and
// gates the MAX7219 Code-B hardware decode path.
//
// Encode is total: every rune maps to a Pattern, with Blank absorbing the
// miss case. See doc.go for the full contract.
package segment

// Encode returns the segment-activation pattern for r under wiring w.
//
// Letters are matched case-insensitively: 'a'-'z' fold to 'A'-'Z' before
// lookup, so both cases render the same (uppercase) shape. Any rune
// without a glyph — punctuation outside the table, control characters,
// anything past ASCII — yields Blank. An out-of-range Wiring also yields
// Blank, keeping the call total for display input paths; use Validate to
// reject a bad wiring up front.
//
// Pure and constant-time; safe for concurrent use without locking.
func (w Wiring) Encode(r rune) Pattern {
	if w >= wiringCount {
		return Blank
	}
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if r < 0 || r > 127 {
		return Blank
	}

	return glyphTables[w][r]
}

// CodeBCompatible reports whether r can be sent through the MAX7219
// Code-B hardware decode mode instead of a raw segment byte.
//
// The compatible set is exactly '0'-'9', '-', 'E', 'H', 'L', 'P' and
// space. It is case-sensitive: the decode hardware recognizes only the
// uppercase shapes, so 'e', 'h', 'l', 'p' must take the raw path via
// Encode. The predicate is wiring-independent — decode mode bypasses the
// segment tables entirely.
//
// This gate only promises that r is safe to send on the decode path; it
// does not compare the decode ROM's rendering against Encode's.
func CodeBCompatible(r rune) bool {
	if r >= '0' && r <= '9' {
		return true
	}
	switch r {
	case '-', 'E', 'H', 'L', 'P', ' ':
		return true
	}

	return false
}
