package frontend

import (
	"github.com/Y-yahya/Compiler-Front-end/source"
)

// TokenKind is the classification system for tokens. Every token emitted by
// the lexer carries exactly one of the kinds below; the lexer is total so even
// unclassifiable characters are emitted as Unknown tokens rather than errors
type TokenKind string

// The closed set of token kinds recognized by the lexer
const (
	IdentifierKind TokenKind = "Identifier"
	NumberKind     TokenKind = "Number"
	KeywordKind    TokenKind = "Keyword"
	SymbolKind     TokenKind = "Symbol"
	EOFKind        TokenKind = "EOF"
	UnknownKind    TokenKind = "Unknown"
)

// Token structs represent a lexical atom and are tagged with a kind
// classification, the raw lexeme text, and source code line/column data
type Token struct {
	Kind   TokenKind
	Lexeme string
	Span   source.Span
}
