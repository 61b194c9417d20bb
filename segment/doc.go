// Package segment encodes single characters as seven-segment display
// bitmasks, parameterized by the physical bit wiring of the target hardware.
//
// What
//
//   - Encode a rune into an 8-bit segment-activation Pattern:
//   - digits '0'-'9'
//   - letters 'A'-'Z' ('a'-'z' fold to the same shapes)
//   - symbols '-', '_', '=', '.', space
//   - anything else: Blank (all segments off), by contract, never an error
//   - Two selectable Wiring strategy values share one interface:
//   - WiringReversed: bit0=G, bit1=F, …, bit6=A, bit7=DP
//   - WiringStandard: bit0=A, bit1=B, …, bit6=G, bit7=DP
//   - CodeBCompatible reports whether a rune is renderable by the MAX7219
//     Code-B hardware decode mode ('0'-'9', '-', 'E', 'H', 'L', 'P', space).
//   - Pattern tools: Segments (which bars a pattern lights), Translate
//     (re-express a pattern under the other wiring), Glyphs, CodeBSet.
//
// Why
//
//   - Drivers in raw (no-decode) mode need one precomputed byte per digit.
//   - Drivers with Code-B decode can skip encoding for a restricted set;
//     CodeBCompatible is the gate between the two hardware paths.
//   - The two wirings exist in the field and are not interchangeable; a
//     strategy value keeps one lookup implementation for both.
//
// Determinism
//
//	Both glyph tables are fixed [128]Pattern arrays built at compile time
//	and never mutated. Encode and CodeBCompatible are referentially
//	transparent: same input, same output, no hidden state, no allocation.
//	Any number of goroutines may call them concurrently without locking.
//
// Complexity
//
//   - Encode, CodeBCompatible: O(1) time, zero allocations.
//   - Segments, Translate: O(1) time (eight fixed bit tests).
//   - Glyphs, CodeBSet: O(1) time over the fixed 128-entry domain; they
//     allocate the returned slice.
//
// Usage
//
//	// Raw segment mode: one byte per character.
//	b := segment.WiringStandard.Encode('8') // 0x7F
//
//	// Code-B aware driver: choose the hardware path per character.
//	if segment.CodeBCompatible(r) {
//	    // send r itself on the decode path
//	} else {
//	    // fall back to raw segments
//	    _ = segment.WiringStandard.Encode(r)
//	}
//
// Errors
//
//   - Encode and CodeBCompatible never fail: unmapped characters encode to
//     Blank by design, and an out-of-range Wiring also encodes to Blank.
//   - ErrUnknownWiring is returned only by Wiring.Validate, Segments and
//     Translate, where a caller-supplied Wiring is a programmer-facing
//     parameter rather than display input.
//
// Letter fidelity: a seven-segment element cannot draw every letter, so
// several shapes alias deliberately (I→1, K→H, M→A, S→5, V→U, W→0, X→H,
// Z→2). Callers may depend on these approximations; they are preserved
// verbatim from the shipped hardware tables.
package segment
