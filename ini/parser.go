package ini

import (
	"log/slog"
	"strings"
)

// Version identifies a game data revision. Fields gated behind a later
// revision are rejected when the parser runs at an earlier one.
type Version int

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs (zero overhead).
func WithLogger(log *slog.Logger) Option {
	return func(p *Parser) { p.logger = logger{l: log} }
}

// WithVersion sets the active data revision for version-gated fields.
func WithVersion(v Version) Option {
	return func(p *Parser) { p.version = v }
}

// Parser owns the token stream of one source unit and a cursor into it.
//
// The cursor only moves forward; the grammar needs one token of lookahead.
// A Parser is single-use and not safe for concurrent use; parse independent
// source units with independent Parser instances.
type Parser struct {
	tokens  []Token
	cursor  int
	stack   []string // enclosing block/field names, innermost last
	version Version
	logger
}

// New tokenizes the source up front and returns a Parser positioned at the
// first token. A lexical failure anywhere in the unit is returned as a
// *LexError before any parsing happens.
func New(file string, source []byte, opts ...Option) (*Parser, error) {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}

	var lexLog *slog.Logger
	if p.logger.l != nil {
		lexLog = p.logger.l.With(slog.String("component", "lexer"))
	}
	tokens, err := NewLexer(file, source, lexLog).Tokenize()
	if err != nil {
		return nil, err
	}
	p.tokens = tokens
	p.log(slog.LevelDebug, "parser initialized",
		slog.String("file", file),
		slog.Int("tokens", len(tokens)))
	return p, nil
}

// Version returns the active data revision.
func (p *Parser) Version() Version {
	return p.version
}

// Current returns the token at the cursor without advancing.
// Once the cursor reaches the terminal TokEOF it stays there.
func (p *Parser) Current() Token {
	return p.tokens[p.cursor]
}

// CurrentPosition returns the source position of the current token, for
// callers that attach positions to their own diagnostics.
func (p *Parser) CurrentPosition() Position {
	return p.Current().Pos
}

// Advance returns the current token and moves the cursor forward. If
// expected kinds are given and the current token matches none of them, the
// cursor does not move and a *ParseError is returned.
func (p *Parser) Advance(expected ...TokenKind) (Token, error) {
	tok := p.Current()
	if len(expected) > 0 && !kindOneOf(tok.Kind, expected) {
		return Token{}, parseError(tok.Pos, "expected %s, got %s",
			kindNames(expected), tok.Kind.Name())
	}
	if tok.Kind != TokEOF {
		p.cursor++
	}
	return tok, nil
}

// AdvanceIf advances past the current token only if it has the given kind.
// It reports whether the cursor moved.
func (p *Parser) AdvanceIf(kind TokenKind) (Token, bool) {
	tok := p.Current()
	if tok.Kind != kind {
		return Token{}, false
	}
	if tok.Kind != TokEOF {
		p.cursor++
	}
	return tok, true
}

// ExpectIdentifierText advances past an Identifier token whose text equals
// the given text exactly. Used for structural keywords.
func (p *Parser) ExpectIdentifierText(text string) error {
	tok, err := p.Advance(TokIdentifier)
	if err != nil {
		return err
	}
	if tok.Text != text {
		return parseError(tok.Pos, "expected %q, got %q", text, tok.Text)
	}
	return nil
}

// pushContext records an enclosing block or field name for error messages.
// The returned func pops it and must run on every exit path.
func (p *Parser) pushContext(name string) func() {
	p.stack = append(p.stack, name)
	if p.traceEnabled() {
		p.trace("enter", slog.String("context", strings.Join(p.stack, ".")))
	}
	return func() {
		p.stack = p.stack[:len(p.stack)-1]
	}
}

// enclosingContext returns the innermost block/field name, or "" at top level.
func (p *Parser) enclosingContext() string {
	if len(p.stack) == 0 {
		return ""
	}
	return p.stack[len(p.stack)-1]
}

func kindOneOf(kind TokenKind, kinds []TokenKind) bool {
	for _, k := range kinds {
		if kind == k {
			return true
		}
	}
	return false
}

func kindNames(kinds []TokenKind) string {
	if len(kinds) == 1 {
		return kinds[0].Name()
	}
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.Name()
	}
	return "one of " + strings.Join(names, ", ")
}
