// Package segment: core types for seven-segment glyph encoding.
// This file declares Pattern, Wiring, Segment, the per-wiring segment bit
// masks, and the package sentinel errors.
package segment

import "errors"

// Sentinel errors for segment operations.
var (
	// ErrUnknownWiring indicates a Wiring value outside the declared set.
	// Encode never returns it (unknown wirings encode to Blank); it is
	// surfaced only by Validate, Segments and Translate.
	ErrUnknownWiring = errors.New("segment: unknown wiring")
)

// Pattern is an 8-bit segment-activation mask. Which bit lights which
// physical bar depends on the Wiring it was encoded under; the decimal
// point is bit 7 under both wirings.
type Pattern uint8

// Blank is the all-segments-off pattern. It is the value of Pattern zero,
// the glyph for space, and the fallback for every unmapped character.
const Blank Pattern = 0

// Wiring selects the bit-layout convention of the target hardware.
// The two conventions encode the same character set but are not
// interchangeable: a pattern is only meaningful under the Wiring that
// produced it (see Translate).
type Wiring uint8

const (
	// WiringReversed assigns bit0=G, bit1=F, bit2=E, bit3=D, bit4=C,
	// bit5=B, bit6=A, bit7=DP. This matches displays wired with the
	// segment lines reversed relative to the datasheet convention.
	WiringReversed Wiring = iota

	// WiringStandard assigns bit0=A, bit1=B, bit2=C, bit3=D, bit4=E,
	// bit5=F, bit6=G, bit7=DP, the common datasheet layout.
	WiringStandard

	// wiringCount bounds the valid Wiring range.
	wiringCount
)

// String returns a human-readable wiring name.
func (w Wiring) String() string {
	switch w {
	case WiringReversed:
		return "reversed"
	case WiringStandard:
		return "standard"
	default:
		return "unknown"
	}
}

// Segment identifies one of the seven illuminable bars A-G, or the
// decimal point DP. The letters follow the conventional clockwise
// labeling: A top, B top-right, C bottom-right, D bottom, E bottom-left,
// F top-left, G middle.
type Segment uint8

const (
	SegA Segment = iota
	SegB
	SegC
	SegD
	SegE
	SegF
	SegG
	SegDP

	// segmentCount bounds the valid Segment range.
	segmentCount
)

// String returns the conventional segment label.
func (s Segment) String() string {
	switch s {
	case SegA, SegB, SegC, SegD, SegE, SegF, SegG:
		return string(rune('A' + s))
	case SegDP:
		return "DP"
	default:
		return "?"
	}
}

// segmentBits maps Wiring → Segment → single-bit mask. DP sits at bit 7
// under both wirings; the A-G bits mirror each other.
var segmentBits = [wiringCount][segmentCount]Pattern{
	WiringReversed: {
		SegA:  1 << 6,
		SegB:  1 << 5,
		SegC:  1 << 4,
		SegD:  1 << 3,
		SegE:  1 << 2,
		SegF:  1 << 1,
		SegG:  1 << 0,
		SegDP: 1 << 7,
	},
	WiringStandard: {
		SegA:  1 << 0,
		SegB:  1 << 1,
		SegC:  1 << 2,
		SegD:  1 << 3,
		SegE:  1 << 4,
		SegF:  1 << 5,
		SegG:  1 << 6,
		SegDP: 1 << 7,
	},
}

// Bit returns the single-bit mask of s under w.
// Returns ErrUnknownWiring for an out-of-range wiring; an out-of-range
// Segment cannot be constructed without deliberately casting past SegDP,
// and yields Blank.
func (w Wiring) Bit(s Segment) (Pattern, error) {
	if err := w.Validate(); err != nil {
		return Blank, err
	}
	if s >= segmentCount {
		return Blank, nil
	}

	return segmentBits[w][s], nil
}
