package ini

// Token is a token with kind, raw text, and source position.
type Token struct {
	Kind TokenKind
	Text string // raw source text, including quotes and '%' where present
	Pos  Position
}

// TokenKind identifies a token type.
type TokenKind int

const (
	// TokEOF is end of input.
	TokEOF TokenKind = iota
	// TokEndOfLine terminates each physical line that carries content.
	TokEndOfLine
	// TokIdentifier is a bare identifier (field names, keywords, enum literals).
	TokIdentifier
	// TokIntegerLiteral is a decimal integer, optionally signed.
	TokIntegerLiteral
	// TokFloatLiteral is a decimal number with a fraction or exponent.
	TokFloatLiteral
	// TokPercentLiteral is a number immediately followed by '%'.
	TokPercentLiteral
	// TokStringLiteral is a double-quoted string.
	TokStringLiteral
	// TokEquals is '='.
	TokEquals
)

// Name returns the token kind name used in error messages.
func (k TokenKind) Name() string {
	switch k {
	case TokEOF:
		return "END_OF_FILE"
	case TokEndOfLine:
		return "END_OF_LINE"
	case TokIdentifier:
		return "IDENTIFIER"
	case TokIntegerLiteral:
		return "INTEGER"
	case TokFloatLiteral:
		return "FLOAT"
	case TokPercentLiteral:
		return "PERCENT"
	case TokStringLiteral:
		return "STRING"
	case TokEquals:
		return "EQUALS"
	default:
		return "UNKNOWN"
	}
}
