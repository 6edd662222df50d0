// Package model holds the values shared by the scanner, the schematic engine
// and the output writers: positions, half-open column spans and the two token
// kinds (part numbers and symbols) with the adjacency rule between them.
package model
