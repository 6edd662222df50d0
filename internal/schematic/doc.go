// Package schematic tokenizes engine schematics and answers adjacency
// queries over them.
//
// A schematic is line-oriented text made of digit runs (parts), single
// character symbols, and '.' filler:
//
//	467..114..
//	...*......
//	..35..633.
//
// A part is adjacent to a symbol when it sits on the same line or one line
// above or below, and its column span touches or overlaps the symbol's span
// (diagonals included).
//
// PartNumberSum adds every part adjacent to at least one symbol, counting
// each part once. GearRatioSum multiplies the two parts around every '*'
// that touches exactly two parts and adds the products. Analyze answers both
// from a single tokenization and also lists the parts and gears involved.
//
// Everything here is a pure function of the input text; nothing is cached
// between calls.
package schematic
