package segment_test

import (
	"testing"

	"github.com/katalvlaran/sevseg/segment"
)

var bothWirings = []segment.Wiring{segment.WiringReversed, segment.WiringStandard}

// TestEncode_Total verifies that every rune value encodes without panic
// and that runes outside the table fall back to Blank.
func TestEncode_Total(t *testing.T) {
	probes := []rune{-1, 0, '\n', '\t', 0x7F, '@', '!', '?', '+', '*', '/',
		'~', 128, 'é', 'Ω', '日', 0xD800, 0x10FFFF}
	for _, w := range bothWirings {
		for r := rune(0); r < 128; r++ {
			_ = w.Encode(r) // must not panic; exact bytes audited elsewhere
		}
		for _, r := range probes {
			if got := w.Encode(r); got != segment.Blank {
				t.Errorf("%s wiring: Encode(%q) = %#08b; want Blank", w, r, got)
			}
		}
	}
}

// TestEncode_CaseFolding checks that lowercase letters render the
// uppercase shapes.
func TestEncode_CaseFolding(t *testing.T) {
	for _, w := range bothWirings {
		for lo := 'a'; lo <= 'z'; lo++ {
			up := lo - ('a' - 'A')
			if w.Encode(lo) != w.Encode(up) {
				t.Errorf("%s wiring: Encode(%q) != Encode(%q)", w, lo, up)
			}
		}
	}
}

// TestEncode_SpaceIsBlank pins the space glyph under both wirings.
func TestEncode_SpaceIsBlank(t *testing.T) {
	for _, w := range bothWirings {
		if got := w.Encode(' '); got != segment.Blank {
			t.Errorf("%s wiring: Encode(' ') = %#08b; want Blank", w, got)
		}
	}
}

// TestEncode_SpotChecks verifies the documented reference bytes.
func TestEncode_SpotChecks(t *testing.T) {
	cases := []struct {
		wiring segment.Wiring
		r      rune
		want   segment.Pattern
	}{
		{segment.WiringStandard, '0', 0x3F},
		{segment.WiringStandard, '1', 0x06},
		{segment.WiringStandard, '8', 0x7F},
		{segment.WiringStandard, '-', 0x40},
		{segment.WiringReversed, '0', 0b01111110},
		{segment.WiringReversed, '1', 0b00110000},
		{segment.WiringReversed, '8', 0b11111110},
	}
	for _, tc := range cases {
		if got := tc.wiring.Encode(tc.r); got != tc.want {
			t.Errorf("%s wiring: Encode(%q) = %#08b; want %#08b", tc.wiring, tc.r, got, tc.want)
		}
	}
}

// TestEncode_Idempotent confirms repeated calls agree (no hidden state).
func TestEncode_Idempotent(t *testing.T) {
	for _, w := range bothWirings {
		for r := rune(0); r < 128; r++ {
			first := w.Encode(r)
			for i := 0; i < 3; i++ {
				if again := w.Encode(r); again != first {
					t.Fatalf("%s wiring: Encode(%q) unstable: %#08b then %#08b", w, r, first, again)
				}
			}
		}
	}
}

// TestEncode_UnknownWiring verifies the out-of-range wiring stays total.
func TestEncode_UnknownWiring(t *testing.T) {
	bogus := segment.Wiring(99)
	if got := bogus.Encode('8'); got != segment.Blank {
		t.Errorf("Encode under unknown wiring = %#08b; want Blank", got)
	}
	if bogus.String() != "unknown" {
		t.Errorf("String() = %q; want %q", bogus.String(), "unknown")
	}
}

// TestCodeBCompatible_ExactSet walks the whole ASCII range plus a few
// out-of-range probes and compares against the fixed membership set.
func TestCodeBCompatible_ExactSet(t *testing.T) {
	want := map[rune]bool{
		'-': true, ' ': true,
		'E': true, 'H': true, 'L': true, 'P': true,
	}
	for d := '0'; d <= '9'; d++ {
		want[d] = true
	}

	for r := rune(-2); r < 256; r++ {
		if got := segment.CodeBCompatible(r); got != want[r] {
			t.Errorf("CodeBCompatible(%q) = %v; want %v", r, got, want[r])
		}
	}
	// Lowercase letters never take the decode path.
	for _, r := range "ehlp" {
		if segment.CodeBCompatible(r) {
			t.Errorf("CodeBCompatible(%q) = true; decode mode is uppercase-only", r)
		}
	}
}

// TestCodeBSet checks the enumerated form agrees with the predicate.
func TestCodeBSet(t *testing.T) {
	set := segment.CodeBSet()
	if len(set) != 16 {
		t.Fatalf("CodeBSet length = %d; want 16", len(set))
	}
	for i, r := range set {
		if !segment.CodeBCompatible(r) {
			t.Errorf("CodeBSet()[%d] = %q not accepted by CodeBCompatible", i, r)
		}
		if i > 0 && set[i-1] >= r {
			t.Errorf("CodeBSet not in ascending order at index %d", i)
		}
	}
}
