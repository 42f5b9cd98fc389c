// Package ini implements the parsing core for SAGE-style INI definition
// files: a pull-based lexer, a token cursor with one-token lookahead, typed
// value primitives, and a field-table-driven block parser.
//
// The grammar is line-oriented. A source unit is a sequence of top-level
// blocks, each introduced by a keyword line and terminated by an End keyword.
// Fields inside a block are one per line, "Name = value" with the '=' being
// optional. All failures are fatal to the source unit and carry a
// file:line:column position; there is no recovery mode.
package ini

import "fmt"

// Position is a location in source text. Line and Column are 1-based.
type Position struct {
	File   string
	Line   int
	Column int
}

// String returns "file:line:col".
func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}
