// Package sevseg turns single characters into the segment bitmasks that
// drive seven-segment (plus decimal point) LED display elements.
//
// 🚀 What is sevseg?
//
//	A small, deterministic, allocation-free encoding library that brings together:
//		• Glyph tables: digits 0-9, letters A-Z (case-folded), '-', '_', '=', '.', space
//		• Two wiring conventions: reversed (bit0=G…bit6=A) and standard (bit0=A…bit6=G)
//		• Code-B gate: the MAX7219 hardware auto-decode compatibility predicate
//		• Pattern tools: segment introspection and cross-wiring translation
//
// ✨ Why choose sevseg?
//
//   - Total by contract – every rune encodes; unknown input yields blank, never an error
//   - Rock-solid guarantees – immutable compile-time tables, safe for any number of goroutines
//   - Pure Go – no cgo, no I/O, constant-time lookups
//   - Honest shapes – letter aliases a real display forces (K→H, M→A, W→0) kept explicit
//
// Everything lives under one subpackage:
//
//	segment/ — glyph tables, Wiring strategy values, Encode, CodeBCompatible, Translate
//
// Quick ASCII example:
//
//	     _
//	    |_|    'A' on a seven-segment element
//	    | |
//
// Transmission to the display controller (SPI framing, multiplexing,
// brightness) is deliberately out of scope: pair this library with the
// driver of your choice and feed it one byte per digit position.
//
//	go get github.com/katalvlaran/sevseg/segment
package sevseg
