package tagattrs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoElement is matched by every *NoElementError.
var ErrNoElement = errors.New("no element found")

// Position represents a position in the markup.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// ParseError reports a failure of the underlying markup parser.
type ParseError struct {
	Pos     Position // Position where the error occurred, zero if unknown
	Message string   // Error message
	Context string   // Surrounding markup for context
	Err     error    // Cause reported by the parser
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := e.Message
	if e.Pos.Line > 0 {
		msg = fmt.Sprintf("%s at %s", msg, e.Pos)
	}
	if e.Context != "" {
		return fmt.Sprintf("%s\nContext: %s", msg, e.Context)
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// NoElementError is returned when the markup holds no element to extract.
// Passing such markup is a caller error; Extract requires a well-formed
// fragment with one element.
type NoElementError struct {
	Parser  string // Name of the parser that ran
	Context string // Surrounding markup for context
}

// Error implements the error interface.
func (e *NoElementError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s parser: %s\nContext: %s", e.Parser, ErrNoElement, e.Context)
	}
	return fmt.Sprintf("%s parser: %s in empty markup", e.Parser, ErrNoElement)
}

func (e *NoElementError) Is(target error) bool { return target == ErrNoElement }

// NewParseError creates a new ParseError with context.
func NewParseError(pos Position, message, markup string, cause error) *ParseError {
	return &ParseError{
		Pos:     pos,
		Message: message,
		Context: extractContext(markup, pos),
		Err:     cause,
	}
}

// NewNoElementError creates a new NoElementError.
func NewNoElementError(parser, markup string) *NoElementError {
	return &NoElementError{
		Parser:  parser,
		Context: extractContext(markup, Position{}),
	}
}

const maxContextLine = 80

// extractContext extracts a snippet of markup around pos. Without a
// position it returns the first lines of the markup.
func extractContext(content string, pos Position) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}

	lines := strings.Split(content, "\n")
	if pos.Line > len(lines) {
		return content
	}

	target := pos.Line
	if target < 1 {
		target = 1
	}
	startLine := max(0, target-3)
	endLine := min(len(lines)-1, target+1)

	var b strings.Builder
	for i := startLine; i <= endLine; i++ {
		lineNum := i + 1
		line := clip(lines[i])
		if pos.Line > 0 && lineNum == pos.Line {
			b.WriteString(fmt.Sprintf("-> %d: %s\n", lineNum, line))
			if pos.Column > 0 && pos.Column <= len(line)+1 {
				b.WriteString(strings.Repeat(" ", pos.Column+5) + "^\n")
			}
			continue
		}
		b.WriteString(fmt.Sprintf("   %d: %s\n", lineNum, line))
	}
	return b.String()
}

func clip(line string) string {
	if len(line) <= maxContextLine {
		return line
	}
	return line[:maxContextLine] + "..."
}
