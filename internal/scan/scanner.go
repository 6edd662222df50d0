// Package scan provides a byte cursor over a text buffer that keeps track of
// the current offset, line and column.
package scan

import "github.com/phyten/gearscan/internal/model"

// Scanner walks an input string one byte at a time. Lines and columns start
// at 1; consuming a newline moves to column 1 of the next line.
//
// A Scanner is not safe for concurrent use.
type Scanner struct {
	input  string
	offset int
	line   int
	column int
}

// New returns a scanner positioned at the start of input.
func New(input string) *Scanner {
	return &Scanner{input: input, line: 1, column: 1}
}

// Peek returns the byte at the current offset without consuming it.
func (s *Scanner) Peek() (byte, bool) {
	if s.offset >= len(s.input) {
		return 0, false
	}
	return s.input[s.offset], true
}

// Next consumes and returns the byte at the current offset. At end of input it
// keeps returning false.
func (s *Scanner) Next() (byte, bool) {
	c, ok := s.Peek()
	if !ok {
		return 0, false
	}
	s.offset++
	s.column++
	if c == '\n' {
		s.line++
		s.column = 1
	}
	return c, true
}

// NextWhile consumes bytes while pred holds and returns them. It reports false
// when nothing was consumed.
func (s *Scanner) NextWhile(pred func(byte) bool) (string, bool) {
	start := s.offset
	for {
		c, ok := s.Peek()
		if !ok || !pred(c) {
			break
		}
		s.Next()
	}
	if s.offset == start {
		return "", false
	}
	return s.input[start:s.offset], true
}

// Pos returns the current position.
func (s *Scanner) Pos() model.Position {
	return model.Position{Offset: s.offset, Line: s.line, Column: s.column}
}

// Done reports whether the whole input has been consumed.
func (s *Scanner) Done() bool {
	return s.offset >= len(s.input)
}

// Rest returns the unconsumed remainder of the input.
func (s *Scanner) Rest() string {
	return s.input[s.offset:]
}

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsSpace reports whether c is ASCII whitespace, newlines included.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
