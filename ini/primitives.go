package ini

import (
	"strconv"
	"strings"
)

// Accepted boolean literals, compared case-insensitively.
var (
	trueLiterals  = []string{"Yes", "True"}
	falseLiterals = []string{"No", "False"}
)

// ParseInteger consumes one IntegerLiteral token and returns its value.
func (p *Parser) ParseInteger() (int64, error) {
	tok, err := p.Advance(TokIntegerLiteral)
	if err != nil {
		return 0, err
	}
	v, convErr := strconv.ParseInt(tok.Text, 10, 64)
	if convErr != nil {
		return 0, parseError(tok.Pos, "integer %q out of range", tok.Text)
	}
	return v, nil
}

// ParseInt is ParseInteger narrowed to int for schemas that store plain ints.
func (p *Parser) ParseInt() (int, error) {
	v, err := p.ParseInteger()
	return int(v), err
}

// ParseFloat consumes one FloatLiteral or IntegerLiteral token. Integer
// literals are widened to float; schemas routinely write "30" where a float
// field is declared.
func (p *Parser) ParseFloat() (float64, error) {
	tok, err := p.Advance(TokFloatLiteral, TokIntegerLiteral)
	if err != nil {
		return 0, err
	}
	v, convErr := strconv.ParseFloat(tok.Text, 64)
	if convErr != nil {
		return 0, parseError(tok.Pos, "float %q out of range", tok.Text)
	}
	return v, nil
}

// ParsePercentage consumes one PercentLiteral token and returns its value as
// a fraction: "50%" yields 0.5. Every call site observes this scale.
func (p *Parser) ParsePercentage() (float64, error) {
	tok, err := p.Advance(TokPercentLiteral)
	if err != nil {
		return 0, err
	}
	text := strings.TrimSuffix(tok.Text, "%")
	v, convErr := strconv.ParseFloat(text, 64)
	if convErr != nil {
		return 0, parseError(tok.Pos, "percentage %q out of range", tok.Text)
	}
	return v / 100, nil
}

// ParseBoolean consumes one Identifier token holding a boolean literal
// (Yes/No/True/False, case-insensitive).
func (p *Parser) ParseBoolean() (bool, error) {
	tok, err := p.Advance(TokIdentifier)
	if err != nil {
		return false, err
	}
	for _, lit := range trueLiterals {
		if strings.EqualFold(tok.Text, lit) {
			return true, nil
		}
	}
	for _, lit := range falseLiterals {
		if strings.EqualFold(tok.Text, lit) {
			return false, nil
		}
	}
	return false, parseError(tok.Pos, "invalid boolean value %q", tok.Text)
}

// ParseIdentifier consumes one Identifier token and returns its text.
func (p *Parser) ParseIdentifier() (string, error) {
	tok, err := p.Advance(TokIdentifier)
	if err != nil {
		return "", err
	}
	return tok.Text, nil
}

// ParseString consumes one Identifier or StringLiteral token and returns its
// text, with surrounding quotes stripped for string literals.
func (p *Parser) ParseString() (string, error) {
	tok, err := p.Advance(TokIdentifier, TokStringLiteral)
	if err != nil {
		return "", err
	}
	return unquote(tok), nil
}

// ParseAssetReference consumes the name of another record or asset. Asset
// references lex as identifiers; the referenced record is resolved by the
// consumer, not the parser.
func (p *Parser) ParseAssetReference() (string, error) {
	return p.ParseIdentifier()
}

// ParseStringArray consumes identifiers and string literals until the first
// token of another kind. The result may be empty; callers that require at
// least one element use ParseStringArrayRequired.
func (p *Parser) ParseStringArray() ([]string, error) {
	var values []string
	for {
		tok := p.Current()
		if tok.Kind != TokIdentifier && tok.Kind != TokStringLiteral {
			return values, nil
		}
		p.cursor++
		values = append(values, unquote(tok))
	}
}

// ParseStringArrayRequired is ParseStringArray failing on zero elements.
func (p *Parser) ParseStringArrayRequired() ([]string, error) {
	values, err := p.ParseStringArray()
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, parseError(p.CurrentPosition(), "expected at least one value")
	}
	return values, nil
}

// ParseAssetReferenceArray consumes identifiers until the first non-identifier.
func (p *Parser) ParseAssetReferenceArray() ([]string, error) {
	var values []string
	for {
		tok, ok := p.AdvanceIf(TokIdentifier)
		if !ok {
			return values, nil
		}
		values = append(values, tok.Text)
	}
}

func unquote(tok Token) string {
	if tok.Kind == TokStringLiteral {
		s := strings.TrimPrefix(tok.Text, `"`)
		return strings.TrimSuffix(s, `"`)
	}
	return tok.Text
}
