package ini

import (
	"log/slog"
)

// Lexer tokenizes one SAGE-style INI source unit.
//
// The lexer is line-aware: every physical line that produced at least one
// token is closed with a TokEndOfLine token, and the stream ends with exactly
// one TokEOF. Blank lines and comment-only lines produce nothing.
type Lexer struct {
	file    string
	source  []byte
	pos     int
	line    int
	column  int
	pending bool // current line has emitted content tokens
	logger
}

// NewLexer returns a Lexer over the given source bytes. The file name is
// attached to every token position. Pass nil for logger to disable logging.
func NewLexer(file string, source []byte, log *slog.Logger) *Lexer {
	l := &Lexer{
		file:   file,
		source: source,
		line:   1,
		column: 1,
		logger: logger{l: log},
	}
	l.log(slog.LevelDebug, "lexer initialized",
		slog.String("file", file),
		slog.Int("bytes", len(source)))
	return l
}

// Tokenize consumes all source text and returns the token stream.
// The stream is terminated by a single TokEOF token. The first lexical
// failure aborts tokenization and is returned as a *LexError.
func (l *Lexer) Tokenize() ([]Token, error) {
	estimated := max(len(l.source)/6, 64)
	tokens := make([]Token, 0, estimated)
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokEOF {
			break
		}
	}
	l.log(slog.LevelDebug, "tokenization complete",
		slog.String("file", l.file),
		slog.Int("tokens", len(tokens)))
	return tokens, nil
}

// NextToken advances the lexer and returns the next token.
// Returns TokEOF when all input is consumed.
func (l *Lexer) NextToken() (Token, error) {
	for {
		b, ok := l.peek()
		if !ok {
			if l.pending {
				l.pending = false
				return l.emit(TokEndOfLine, "", l.position()), nil
			}
			return l.emit(TokEOF, "", l.position()), nil
		}

		switch {
		case b == ' ' || b == '\t':
			l.advance()

		case b == '\n' || b == '\r':
			pos := l.position()
			l.skipLineEnding()
			if l.pending {
				l.pending = false
				return l.emit(TokEndOfLine, "", pos), nil
			}

		case b == ';':
			l.skipToEOL()

		case b == '/' && l.peekAtEquals(1, '/'):
			l.skipToEOL()

		case b == '=':
			pos := l.position()
			l.advance()
			return l.token(TokEquals, "=", pos), nil

		case b == '"':
			return l.scanQuotedString()

		case isDigit(b):
			return l.scanNumber()

		case (b == '-' || b == '+') && l.nextStartsNumber():
			return l.scanNumber()

		case isIdentStart(b):
			return l.scanIdentifier(), nil

		default:
			pos := l.position()
			l.advance()
			return Token{}, lexError(pos, "unrecognized character: %q", rune(b))
		}
	}
}

func (l *Lexer) position() Position {
	return Position{File: l.file, Line: l.line, Column: l.column}
}

func (l *Lexer) peek() (byte, bool) {
	if l.pos >= len(l.source) {
		return 0, false
	}
	return l.source[l.pos], true
}

func (l *Lexer) peekAt(offset int) (byte, bool) {
	idx := l.pos + offset
	if idx >= len(l.source) {
		return 0, false
	}
	return l.source[idx], true
}

func (l *Lexer) peekAtEquals(offset int, expected byte) bool {
	b, ok := l.peekAt(offset)
	return ok && b == expected
}

func (l *Lexer) advance() (byte, bool) {
	if l.pos >= len(l.source) {
		return 0, false
	}
	b := l.source[l.pos]
	l.pos++
	l.column++
	return b, true
}

func (l *Lexer) skipLineEnding() {
	b, ok := l.advance()
	if !ok {
		return
	}
	if b == '\r' {
		if next, ok := l.peek(); ok && next == '\n' {
			l.advance()
		}
	}
	l.line++
	l.column = 1
}

// skipToEOL skips to the line ending without consuming it, so the newline
// branch still decides whether an EndOfLine token is due.
func (l *Lexer) skipToEOL() {
	for {
		b, ok := l.peek()
		if !ok || b == '\n' || b == '\r' {
			return
		}
		l.advance()
	}
}

func (l *Lexer) nextStartsNumber() bool {
	b, ok := l.peekAt(1)
	return ok && isDigit(b)
}

// token marks the current line as content-bearing and returns a token.
func (l *Lexer) token(kind TokenKind, text string, pos Position) Token {
	l.pending = true
	return l.emit(kind, text, pos)
}

func (l *Lexer) emit(kind TokenKind, text string, pos Position) Token {
	tok := Token{Kind: kind, Text: text, Pos: pos}
	if l.traceEnabled() {
		l.trace("token",
			slog.String("kind", kind.Name()),
			slog.String("text", text),
			slog.Int("line", pos.Line),
			slog.Int("column", pos.Column))
	}
	return tok
}

func (l *Lexer) scanIdentifier() Token {
	pos := l.position()
	start := l.pos
	l.advance()

	for {
		b, ok := l.peek()
		if !ok || !isIdentPart(b) {
			break
		}
		l.advance()
	}

	return l.token(TokIdentifier, string(l.source[start:l.pos]), pos)
}

func (l *Lexer) scanNumber() (Token, error) {
	pos := l.position()
	start := l.pos

	if b, ok := l.peek(); ok && (b == '-' || b == '+') {
		l.advance()
	}

	l.scanDigits()

	isFloat := false
	if b, ok := l.peek(); ok && b == '.' {
		l.advance()
		if !l.scanDigits() {
			return Token{}, lexError(pos, "malformed numeric literal: %q", string(l.source[start:l.pos]))
		}
		isFloat = true
	}

	if b, ok := l.peek(); ok && (b == 'e' || b == 'E') {
		l.advance()
		if b, ok := l.peek(); ok && (b == '-' || b == '+') {
			l.advance()
		}
		if !l.scanDigits() {
			return Token{}, lexError(pos, "malformed numeric literal: %q", string(l.source[start:l.pos]))
		}
		isFloat = true
	}

	if b, ok := l.peek(); ok && b == '%' {
		l.advance()
		return l.token(TokPercentLiteral, string(l.source[start:l.pos]), pos), nil
	}

	kind := TokIntegerLiteral
	if isFloat {
		kind = TokFloatLiteral
	}
	return l.token(kind, string(l.source[start:l.pos]), pos), nil
}

func (l *Lexer) scanDigits() bool {
	seen := false
	for {
		b, ok := l.peek()
		if !ok || !isDigit(b) {
			return seen
		}
		l.advance()
		seen = true
	}
}

// scanQuotedString scans a double-quoted string. Strings cannot span lines;
// a line ending or end of input before the closing quote is a LexError.
func (l *Lexer) scanQuotedString() (Token, error) {
	pos := l.position()
	start := l.pos
	l.advance() // consume opening quote

	for {
		b, ok := l.peek()
		if !ok || b == '\n' || b == '\r' {
			return Token{}, lexError(pos, "unterminated string literal")
		}
		if b == '"' {
			l.advance()
			return l.token(TokStringLiteral, string(l.source[start:l.pos]), pos), nil
		}
		l.advance()
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentStart(b byte) bool {
	return isAlpha(b) || b == '_'
}

func isIdentPart(b byte) bool {
	return isAlpha(b) || isDigit(b) || b == '_' || b == ':' || b == '-' || b == '.'
}
