package frontend

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Y-yahya/Compiler-Front-end/feedback"
	"github.com/Y-yahya/Compiler-Front-end/source"
)

// Parse takes a file and returns an abstract-syntax-tree and any error
// generated during the parsing process
func Parse(file *source.File) (ast *DeclarationNode, msg feedback.Message) {
	parser := NewParser(file)
	return parser.ParseDeclaration()
}

// Parser instances contain a Lexer instance and a single token of lookahead.
// The parser never reads past its one-token window and never backtracks, so
// parsing completes in a single forward pass over the token stream
type Parser struct {
	Lexer   *Lexer
	current Token
}

// NewParser is a Parser factory function that binds a freshly built Lexer to
// the language grammar and primes the lookahead token
func NewParser(file *source.File) *Parser {
	grammar := &Grammar{
		Keywords: []string{
			"int",
			"return",
		},
	}

	p := &Parser{
		Lexer: NewLexer(file, grammar),
	}

	p.advance()
	return p
}

// advance replaces the lookahead token with the next token from the lexer
func (p *Parser) advance() {
	p.current = p.Lexer.Next()
}

// ParseDeclaration recognizes the production:
//
//	Declaration := 'int' Identifier '=' Number ';'
//
// On success it returns the constructed declaration node. On the first
// mismatched token it returns a structured syntax error naming the expected
// and found tokens along with the source position of the mismatch; no partial
// tree is returned and no resynchronization is attempted
func (p *Parser) ParseDeclaration() (decl *DeclarationNode, msg feedback.Message) {
	if p.current.Kind != KeywordKind || p.current.Lexeme != "int" {
		return nil, p.syntaxError(feedback.UnexpectedToken,
			fmt.Sprintf("Unexpected token '%s'", p.current.Lexeme))
	}

	keyword := p.current
	p.advance()

	if p.current.Kind != IdentifierKind {
		return nil, p.syntaxError(feedback.ExpectedIdentifier,
			fmt.Sprintf("Expected identifier after '%s', instead found '%s'",
				keyword.Lexeme,
				p.current.Lexeme))
	}

	assignee := &IdentNode{
		Name:    p.current.Lexeme,
		NamePos: p.current.Span.Start,
	}
	p.advance()

	if msg = p.expectSymbol("="); msg != nil {
		return nil, msg
	}

	if p.current.Kind != NumberKind {
		return nil, p.syntaxError(feedback.ExpectedNumber,
			fmt.Sprintf("Expected number after '=', instead found '%s'", p.current.Lexeme))
	}

	init, msg := p.numberLiteral(p.current)
	if msg != nil {
		return nil, msg
	}
	p.advance()

	if msg = p.expectSymbol(";"); msg != nil {
		return nil, msg
	}

	return &DeclarationNode{
		Keyword:  keyword,
		Assignee: assignee,
		Init:     init,
	}, nil
}

// expectSymbol consumes the lookahead token if it is a Symbol with the given
// lexeme, otherwise it leaves the lookahead in place and returns an error
// pointing at the token that appeared instead
func (p *Parser) expectSymbol(sym string) (msg feedback.Message) {
	if p.current.Kind != SymbolKind || p.current.Lexeme != sym {
		return feedback.Error{
			Classification: feedback.SyntaxError,
			Code:           feedback.ExpectedSymbol,
			Expected:       sym,
			File:           p.Lexer.Scanner.File,
			What: feedback.Selection{
				Description: fmt.Sprintf("Expected '%s', instead found '%s'", sym, p.current.Lexeme),
				Span:        p.current.Span,
			},
		}
	}

	p.advance()
	return nil
}

// numberLiteral converts a Number token into a literal node. The lexeme is
// always a run of decimal digits so the only possible conversion failure is a
// value too large for the 32-bit literal representation, which is reported
// rather than truncated
func (p *Parser) numberLiteral(tok Token) (node *NumberNode, msg feedback.Message) {
	const precisionBits int = 32

	value, err := strconv.ParseInt(tok.Lexeme, 10, precisionBits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, p.syntaxError(feedback.NumericOverflow,
				fmt.Sprintf("Number '%s' does not fit in a %d-bit integer", tok.Lexeme, precisionBits))
		}

		return nil, p.syntaxError(feedback.ExpectedNumber,
			fmt.Sprintf("Malformed number '%s'", tok.Lexeme))
	}

	return &NumberNode{
		Lexeme: tok.Lexeme,
		Value:  int32(value),
		Start:  tok.Span.Start,
	}, nil
}

// syntaxError builds a structured error anchored at the lookahead token
func (p *Parser) syntaxError(code string, description string) feedback.Message {
	return feedback.Error{
		Classification: feedback.SyntaxError,
		Code:           code,
		File:           p.Lexer.Scanner.File,
		What: feedback.Selection{
			Description: description,
			Span:        p.current.Span,
		},
	}
}
