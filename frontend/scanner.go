package frontend

import (
	"unicode/utf8"

	"github.com/Y-yahya/Compiler-Front-end/source"
)

// Scanner structs hold the cursor state of a scanner instance which consumes
// source code runes one at a time. Since source code documents can be Unicode,
// the scanner must keep track of each rune's byte offset. The scanner also
// records line and column data which it emits along with each rune.
//
// The first character in each line is considered to be in column 1. A newline
// at the end of a line with `N` characters is considered to be in column
// `N + 1`. The cursor only ever moves forward: line/column always describe the
// position of the next unconsumed rune
type Scanner struct {
	File     *source.File
	nextByte int // initialized to 0
	nextLine int // ...  ...  ...  1
	nextCol  int // ...  ...  ...  1
}

// NewScanner is a basic constructor function for Scanners which populates
// private fields with the appropriate starting values
func NewScanner(file *source.File) *Scanner {
	return &Scanner{
		File:     file,
		nextByte: 0,
		nextLine: 1,
		nextCol:  1,
	}
}

// Done returns true once every rune in the document has been consumed. Unlike
// one-shot readers the scanner has no terminal error state: Done can be
// queried any number of times and Pos remains valid after exhaustion
func (s *Scanner) Done() bool {
	return s.nextByte >= len(s.File.Contents)
}

// Pos returns the position of the next unconsumed rune. Once the scanner is
// exhausted this is the position one column past the final rune, which is
// where end-of-file diagnostics should point
func (s *Scanner) Pos() source.Pos {
	return source.Pos{Line: s.nextLine, Col: s.nextCol}
}

// Peek returns the next rune and its position WITHOUT advancing the cursor
func (s *Scanner) Peek() (r rune, pos source.Pos) {
	if s.Done() {
		panic("attempt to scan past end of input")
	}

	runeValue, _ := utf8.DecodeRuneInString(s.File.Contents[s.nextByte:])
	return runeValue, s.Pos()
}

// Next returns the next rune and its position and advances the cursor
// permanently. Newlines reset the column counter and increment the line
// counter so that subsequent runes are positioned on the following line
func (s *Scanner) Next() (r rune, pos source.Pos) {
	if s.Done() {
		panic("attempt to scan past end of input")
	}

	runeValue, runeWidth := utf8.DecodeRuneInString(s.File.Contents[s.nextByte:])
	pos = s.Pos()

	if runeValue == '\n' {
		s.nextLine++
		s.nextCol = 1
	} else {
		s.nextCol++
	}

	s.nextByte += runeWidth
	return runeValue, pos
}
