package feedback_test

import (
	"strings"
	"testing"

	"github.com/Y-yahya/Compiler-Front-end/feedback"
	"github.com/Y-yahya/Compiler-Front-end/source"
)

func TestErrorRendering(t *testing.T) {
	file := source.NewFile("demo.tdl", "int = 5;")

	err := feedback.Error{
		Classification: feedback.SyntaxError,
		Code:           feedback.ExpectedIdentifier,
		File:           file,
		What: feedback.Selection{
			Description: "Expected identifier after 'int', instead found '='",
			Span: source.Span{
				Start: source.Pos{Line: 1, Col: 5},
				End:   source.Pos{Line: 1, Col: 5},
			},
		},
	}

	expected := strings.Join([]string{
		"error: syntax error",
		"  --> demo.tdl:1:5",
		"   |",
		" 1 | int = 5;",
		"   |     ^ Expected identifier after 'int', instead found '='",
	}, "\n")

	if got := err.Make(false); got != expected {
		t.Errorf("expected rendering:\n%s\ngot:\n%s", expected, got)
	}
}

func TestErrorRenderingPastEndOfLine(t *testing.T) {
	file := source.NewFile("demo.tdl", "int x = 42")

	err := feedback.Error{
		Classification: feedback.SyntaxError,
		Code:           feedback.ExpectedSymbol,
		Expected:       ";",
		File:           file,
		What: feedback.Selection{
			Description: "Expected ';', instead found '<EOF>'",
			// end-of-input sits one column past the final rune
			Span: source.Span{
				Start: source.Pos{Line: 1, Col: 11},
				End:   source.Pos{Line: 1, Col: 11},
			},
		},
	}

	rendered := err.Make(false)

	if !strings.Contains(rendered, "demo.tdl:1:11") {
		t.Errorf("expected rendering to name position 1:11:\n%s", rendered)
	}
	if !strings.Contains(rendered, "int x = 42") {
		t.Errorf("expected rendering to include the source line:\n%s", rendered)
	}
}

func TestErrorRenderingEmptyFile(t *testing.T) {
	file := source.NewFile("demo.tdl", "")

	err := feedback.Error{
		Classification: feedback.SyntaxError,
		Code:           feedback.UnexpectedToken,
		File:           file,
		What: feedback.Selection{
			Description: "Unexpected token '<EOF>'",
			Span: source.Span{
				Start: source.Pos{Line: 1, Col: 1},
				End:   source.Pos{Line: 1, Col: 1},
			},
		},
	}

	rendered := err.Make(false)

	// No source excerpt exists, but the message must still render
	if !strings.Contains(rendered, "error: syntax error") {
		t.Errorf("expected error header:\n%s", rendered)
	}
	if !strings.Contains(rendered, "Unexpected token '<EOF>'") {
		t.Errorf("expected description:\n%s", rendered)
	}
}

func TestWarningRendering(t *testing.T) {
	file := source.NewFile("demo.tdl", "int x = 1;")

	warning := feedback.Warning{
		Classification: feedback.SemanticWarning,
		File:           file,
		What: feedback.Selection{
			Description: "declared but never used",
			Span: source.Span{
				Start: source.Pos{Line: 1, Col: 5},
				End:   source.Pos{Line: 1, Col: 5},
			},
		},
	}

	rendered := warning.Make(false)

	if !strings.HasPrefix(rendered, "warning: semantic warning") {
		t.Errorf("expected warning header:\n%s", rendered)
	}
	if !strings.Contains(rendered, "declared but never used") {
		t.Errorf("expected description:\n%s", rendered)
	}
}
