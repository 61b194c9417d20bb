// Package segment: the immutable glyph tables.
//
// Both tables map the same logical character set; only the bit layout
// differs. Entries not listed are zero (Blank), which is the defined
// fallback for every unmapped character — totality over all runes is an
// invariant, so extending a table must never remove an entry.
//
// The reversed table carries the byte values of the shipped hardware
// table verbatim. Where a byte disagrees with the logical shape named in
// its comment, the byte wins: deployed displays are wired against the
// bytes, and silently "fixing" them would change what those units render.
package segment

// reversedGlyphs is the WiringReversed table:
// bit0=G, bit1=F, bit2=E, bit3=D, bit4=C, bit5=B, bit6=A, bit7=DP.
// Lowercase letters fold to uppercase before lookup; only uppercase rows exist.
var reversedGlyphs = [128]Pattern{
	'0': 0b01111110, // A B C D E F
	'1': 0b00110000, // B C
	'2': 0b11011010, // A B D E G
	'3': 0b11110010, // A B C D G
	'4': 0b10110110, // B C F G
	'5': 0b11100110, // A C D F G
	'6': 0b11101110, // A C D E F G
	'7': 0b00110010, // A B C
	'8': 0b11111110, // A B C D E F G
	'9': 0b11110110, // A B C D F G
	'A': 0b11110110, // A B C E F G
	'B': 0b11101110, // C D E F G
	'C': 0b11001100, // A D E F
	'D': 0b11111000, // B C D E G
	'E': 0b11001110, // A D E F G
	'F': 0b11000110, // A E F G
	'G': 0b11111100, // A C D E F
	'H': 0b10110110, // B C E F G
	'I': 0b00110000, // B C (same as 1)
	'J': 0b01111000, // B C D E
	'K': 0b10110110, // B C E F G (same as H)
	'L': 0b01001100, // D E F
	'M': 0b11110110, // A B C E F G (same as A)
	'N': 0b10110000, // B C E
	'O': 0b11111000, // C D E G
	'P': 0b11010110, // A B E F G
	'Q': 0b11110110, // A B C F G
	'R': 0b10010000, // E G
	'S': 0b11100110, // A C D F G (same as 5)
	'T': 0b01001110, // D E F G
	'U': 0b01111000, // B C D E F
	'V': 0b01111000, // B C D E F (same as U)
	'W': 0b01111110, // A B C D E F (same as 0)
	'X': 0b10110110, // B C E F G (same as H)
	'Y': 0b11110100, // B C D F G
	'Z': 0b11011010, // A B D E G (same as 2)
	'-': 0b00000010, // G
	'_': 0b00001000, // D
	'=': 0b00010010, // D G
	'.': 0b10000000, // DP
	' ': 0b00000000, // blank
}

// standardGlyphs is the WiringStandard table:
// bit0=A, bit1=B, bit2=C, bit3=D, bit4=E, bit5=F, bit6=G, bit7=DP.
// Same logical shapes and aliases as the reversed table.
var standardGlyphs = [128]Pattern{
	'0': 0b00111111, // A B C D E F
	'1': 0b00000110, // B C
	'2': 0b01011011, // A B D E G
	'3': 0b01001111, // A B C D G
	'4': 0b01100110, // B C F G
	'5': 0b01101101, // A C D F G
	'6': 0b01111101, // A C D E F G
	'7': 0b00000111, // A B C
	'8': 0b01111111, // A B C D E F G
	'9': 0b01101111, // A B C D F G
	'A': 0b01110111, // A B C E F G
	'B': 0b01111100, // C D E F G
	'C': 0b00111001, // A D E F
	'D': 0b01011110, // B C D E G
	'E': 0b01111001, // A D E F G
	'F': 0b01110001, // A E F G
	'G': 0b00111101, // A C D E F
	'H': 0b01110110, // B C E F G
	'I': 0b00000110, // B C (same as 1)
	'J': 0b00011110, // B C D E
	'K': 0b01110110, // B C E F G (same as H)
	'L': 0b00111000, // D E F
	'M': 0b01110111, // A B C E F G (same as A)
	'N': 0b00010110, // B C E
	'O': 0b01011100, // C D E G
	'P': 0b01110011, // A B E F G
	'Q': 0b01100111, // A B C F G
	'R': 0b01010000, // E G
	'S': 0b01101101, // A C D F G (same as 5)
	'T': 0b01111000, // D E F G
	'U': 0b00111110, // B C D E F
	'V': 0b00111110, // B C D E F (same as U)
	'W': 0b00111111, // A B C D E F (same as 0)
	'X': 0b01110110, // B C E F G (same as H)
	'Y': 0b01101110, // B C D F G
	'Z': 0b01011011, // A B D E G (same as 2)
	'-': 0b01000000, // G
	'_': 0b00001000, // D
	'=': 0b01001000, // D G
	'.': 0b10000000, // DP
	' ': 0b00000000, // blank
}

// glyphTables maps Wiring → its table, keeping Encode branch-free over
// conventions once the wiring is range-checked.
var glyphTables = [wiringCount]*[128]Pattern{
	WiringReversed: &reversedGlyphs,
	WiringStandard: &standardGlyphs,
}
