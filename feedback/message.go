package feedback

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Y-yahya/Compiler-Front-end/source"
	"github.com/fatih/color"
)

// Message is the interface for all Warnings and Errors that can be emitted
// by the stages of the pipeline
type Message interface {
	Make(withColor bool) string
}

// Selection represents a region of the source code file along with a
// corresponding description that supplies information as to why a warning or
// error occurred
type Selection struct {
	Description string
	Span        source.Span
}

// Error classification constants
const (
	SyntaxError string = "syntax error"
)

// Machine-readable error codes. Classifications group errors for display
// while codes identify the exact failure so that callers can react to a
// specific mismatch programmatically
const (
	UnexpectedToken    string = "UnexpectedToken"
	ExpectedIdentifier string = "ExpectedIdentifier"
	ExpectedSymbol     string = "ExpectedSymbol"
	ExpectedNumber     string = "ExpectedNumber"
	NumericOverflow    string = "NumericOverflow"
)

// Error messages cause the pipeline to be stopped. Each error carries a
// display classification, a machine-readable code, and a selection pointing
// at the offending region of source code. When the code is ExpectedSymbol the
// Expected field holds the symbol the parser required
type Error struct {
	Classification string
	Code           string
	Expected       string
	File           *source.File
	What           Selection
}

// Make takes an Error and produces a fully rendered message with the option
// of using colors to make elements of the message more clear. The rendered
// message is returned as a single string and can then be output to stdout or
// some other destination
func (e Error) Make(withColor bool) string {
	color.NoColor = !withColor
	return makeMessage("error:", e.Classification, e.File, e.What, color.FgRed)
}

// Warning classification constants
const (
	SemanticWarning string = "semantic warning"
)

// Warning messages are emitted by the pipeline to highlight issues which
// might need to be addressed by the source code author but which do not stop
// the pipeline
type Warning struct {
	Classification string
	File           *source.File
	What           Selection
}

// Make takes a Warning and produces a fully rendered message with the option
// of using colors to make elements of the message more clear
func (w Warning) Make(withColor bool) string {
	color.NoColor = !withColor
	return makeMessage("warning:", w.Classification, w.File, w.What, color.FgYellow)
}

// makeMessage is a utility function which takes the parts of any Message and
// renders them in the form:
//
//	<message type>: <classification>
//	 --> <filename>:<line number>:<column number>
//	  |
//	1 | <offending line of source code>
//	  |     ^ <message detailing the problem>
func makeMessage(header string, classification string, file *source.File, what Selection, attr color.Attribute) string {
	headline := color.New(attr, color.Bold).SprintFunc()
	accent := color.New(attr).SprintFunc()
	blue := color.New(color.FgBlue).SprintFunc()

	start := what.Span.Start
	margin := utf8.RuneCountInString(fmt.Sprintf("%d", start.Line))
	gutter := strings.Repeat(" ", margin)

	var lines []string
	lines = append(lines, headline(fmt.Sprintf("%s %s", header, classification)))
	lines = append(lines, fmt.Sprintf(" %s%s %s:%d:%d",
		gutter,
		blue("-->"),
		file.Filename,
		start.Line,
		start.Col))
	lines = append(lines, fmt.Sprintf(" %s %s", gutter, blue("|")))

	if srcLine, ok := lineOfSource(file, start.Line); ok {
		lines = append(lines, fmt.Sprintf(" %s %s %s",
			blue(fmt.Sprintf("%d", start.Line)),
			blue("|"),
			srcLine))

		// The underline is anchored at the selection's start column. End-of-
		// input positions sit one column past the final rune so the caret may
		// legitimately point just beyond the line's text
		width := (what.Span.End.Col + 1) - start.Col
		if width < 1 || what.Span.End.Line != start.Line {
			width = 1
		}

		lines = append(lines, fmt.Sprintf(" %s %s %s%s %s",
			gutter,
			blue("|"),
			strings.Repeat(" ", start.Col-1),
			accent(strings.Repeat("^", width)),
			accent(what.Description)))
	} else {
		lines = append(lines, fmt.Sprintf(" %s %s %s", gutter, blue("|"), accent(what.Description)))
	}

	return strings.Join(lines, "\n")
}

// lineOfSource extracts a single line of source text, stripped of its line
// terminator. Out-of-range line numbers (an empty file, for instance) report
// no excerpt rather than panicking
func lineOfSource(file *source.File, lineNum int) (string, bool) {
	if lineNum < 1 || lineNum > len(file.Lines) {
		return "", false
	}

	line := strings.TrimRight(file.Lines[lineNum-1], "\r\n")
	if line == "" {
		return "", false
	}

	return line, true
}
