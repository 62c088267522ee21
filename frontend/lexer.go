package frontend

import (
	"github.com/Y-yahya/Compiler-Front-end/source"
)

// Lexer structs maintain state during the lexical analysis of a chunk of
// source code, generating a lazy sequence of Tokens on demand. The lexer is
// total: every character maps to some token kind (unclassifiable characters
// become Unknown tokens) so lexing itself can never fail
type Lexer struct {
	Scanner    *Scanner
	Grammar    *Grammar
	peekBuffer []Token
}

// NewLexer is a constructor function that takes a source file and a Grammar
// and returns a reference to a newly minted Lexer struct
func NewLexer(file *source.File, grammar *Grammar) *Lexer {
	return &Lexer{
		Scanner:    NewScanner(file),
		Grammar:    grammar,
		peekBuffer: []Token{},
	}
}

// readNextToken is responsible for digesting characters from the scanner and
// producing the next Token. This function advances the scanner and is only
// called when the peekBuffer is totally exhausted
func (l *Lexer) readNextToken() (tok Token) {
	// Consume any whitespace between tokens. The scanner handles line and
	// column bookkeeping as each rune is consumed
	for !l.Scanner.Done() {
		if peek, _ := l.Scanner.Peek(); l.Grammar.isWhitespace(peek) {
			l.Scanner.Next()
			continue
		}

		break
	}

	// Once the scanner is exhausted, every subsequent request produces an EOF
	// token at the position just past the final rune. The scanner is never
	// advanced again so EOF tokens can be emitted indefinitely
	if l.Scanner.Done() {
		pos := l.Scanner.Pos()
		return Token{EOFKind, "<EOF>", source.Span{Start: pos, End: pos}}
	}

	peek, _ := l.Scanner.Peek()

	if l.Grammar.isAlphabetical(peek) {
		return l.lexWord()
	} else if l.Grammar.isNumeric(peek) {
		return l.lexNumber()
	} else if l.Grammar.isPunctuation(peek) {
		return l.lexSymbol()
	}

	// Anything unclassifiable is emitted as a single-character Unknown token.
	// Whether an Unknown token constitutes an error is the parser's decision
	r, pos := l.Scanner.Next()
	return Token{UnknownKind, string(r), source.Span{Start: pos, End: pos}}
}

// Identifiers and Keywords
//  - match [A-Za-z][A-Za-z0-9]*
//  - a maximal run is consumed, then checked against the grammar's reserved
//    words with an exact whole-word match
func (l *Lexer) lexWord() (tok Token) {
	r, pos := l.Scanner.Next()

	lexeme := string(r)
	span := source.Span{Start: pos, End: pos}

	for !l.Scanner.Done() {
		peek, _ := l.Scanner.Peek()

		// The run continues through any alphabetical or numeric rune
		if !l.Grammar.isAlphabetical(peek) && !l.Grammar.isNumeric(peek) {
			break
		}

		r, pos = l.Scanner.Next()
		lexeme += string(r)
		span.End = pos
	}

	// Determine whether the word classifies as a keyword recognized by the
	// grammar. If it does, set the appropriate token kind
	if l.Grammar.isKeyword(lexeme) {
		return Token{KeywordKind, lexeme, span}
	}

	return Token{IdentifierKind, lexeme, span}
}

// Number literals
//  - match [0-9]+
//  - conversion of the lexeme to an integer value is left to the parser so
//    that range failures can be reported as syntax errors
func (l *Lexer) lexNumber() (tok Token) {
	r, pos := l.Scanner.Next()

	lexeme := string(r)
	span := source.Span{Start: pos, End: pos}

	for !l.Scanner.Done() {
		peek, _ := l.Scanner.Peek()

		if !l.Grammar.isNumeric(peek) {
			break
		}

		r, pos = l.Scanner.Next()
		lexeme += string(r)
		span.End = pos
	}

	return Token{NumberKind, lexeme, span}
}

// Symbols
//  - always consist of a single punctuation character
func (l *Lexer) lexSymbol() (tok Token) {
	r, pos := l.Scanner.Next()
	return Token{SymbolKind, string(r), source.Span{Start: pos, End: pos}}
}

// Peek returns the next token WITHOUT advancing the lexer. Once the next token
// has been peek'ed it is cached in the Lexer so repeated calls to Peek will
// not do duplicate lexing work
func (l *Lexer) Peek() (tok Token) {
	if len(l.peekBuffer) > 0 {
		return l.peekBuffer[0]
	}

	tok = l.readNextToken()
	l.peekBuffer = append(l.peekBuffer, tok)
	return tok
}

// Next returns the upcoming token and advances the Lexer. If the token buffer
// contains any tokens (like those already generated by a Peek call), those
// tokens will be removed from the buffer and returned by Next
func (l *Lexer) Next() (tok Token) {
	if len(l.peekBuffer) > 0 {
		tok = l.peekBuffer[0]
		l.peekBuffer = l.peekBuffer[1:]
		return tok
	}

	return l.readNextToken()
}
