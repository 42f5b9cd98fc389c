package ini

import (
	"errors"
	"testing"

	"github.com/sageforge/inidata/internal/testutil"
)

func tokenize(t *testing.T, source string) []Token {
	t.Helper()
	tokens, err := NewLexer("test.ini", []byte(source), nil).Tokenize()
	testutil.NoError(t, err, "tokenize %q", source)
	return tokens
}

func tokenKinds(t *testing.T, source string) []TokenKind {
	t.Helper()
	tokens := tokenize(t, source)
	kinds := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	return kinds
}

func tokenTexts(t *testing.T, source string) []string {
	t.Helper()
	var texts []string
	for _, tok := range tokenize(t, source) {
		if tok.Kind != TokEOF && tok.Kind != TokEndOfLine {
			texts = append(texts, tok.Text)
		}
	}
	return texts
}

func TestEmptyInput(t *testing.T) {
	testutil.SliceEqual(t, []TokenKind{TokEOF}, tokenKinds(t, ""), "empty input")
}

func TestOnlyWhitespace(t *testing.T) {
	testutil.SliceEqual(t, []TokenKind{TokEOF}, tokenKinds(t, "   \t\n\r\n  "), "whitespace only")
}

func TestIdentifiers(t *testing.T) {
	texts := tokenTexts(t, "Object AmericaTankCrusader WeaponSet_01 Upgrade:Sensors")
	expected := []string{"Object", "AmericaTankCrusader", "WeaponSet_01", "Upgrade:Sensors"}
	testutil.SliceEqual(t, expected, texts, "identifier texts")
}

func TestIntegers(t *testing.T) {
	texts := tokenTexts(t, "0 1 42 -10 +5")
	testutil.SliceEqual(t, []string{"0", "1", "42", "-10", "+5"}, texts, "integer texts")

	kinds := tokenKinds(t, "42 -10")
	expected := []TokenKind{TokIntegerLiteral, TokIntegerLiteral, TokEndOfLine, TokEOF}
	testutil.SliceEqual(t, expected, kinds, "integer kinds")
}

func TestFloats(t *testing.T) {
	kinds := tokenKinds(t, "1.5 -0.25 3.0e2 1e-4")
	expected := []TokenKind{
		TokFloatLiteral, TokFloatLiteral, TokFloatLiteral, TokFloatLiteral,
		TokEndOfLine, TokEOF,
	}
	testutil.SliceEqual(t, expected, kinds, "float kinds")
}

func TestPercent(t *testing.T) {
	tokens := tokenize(t, "50% 12.5% -10%")
	testutil.Equal(t, TokPercentLiteral, tokens[0].Kind, "first kind")
	testutil.Equal(t, "50%", tokens[0].Text, "first text")
	testutil.Equal(t, TokPercentLiteral, tokens[1].Kind, "second kind")
	testutil.Equal(t, "12.5%", tokens[1].Text, "second text")
	testutil.Equal(t, TokPercentLiteral, tokens[2].Kind, "third kind")
	testutil.Equal(t, "-10%", tokens[2].Text, "third text")
}

func TestQuotedString(t *testing.T) {
	tokens := tokenize(t, `DisplayName = "Crusader Tank"`)
	testutil.Equal(t, TokStringLiteral, tokens[2].Kind, "string kind")
	testutil.Equal(t, `"Crusader Tank"`, tokens[2].Text, "string keeps quotes")
}

func TestEquals(t *testing.T) {
	kinds := tokenKinds(t, "Damage = 10")
	expected := []TokenKind{
		TokIdentifier, TokEquals, TokIntegerLiteral, TokEndOfLine, TokEOF,
	}
	testutil.SliceEqual(t, expected, kinds, "field line kinds")
}

func TestEndOfLinePerContentLine(t *testing.T) {
	kinds := tokenKinds(t, "A\n\nB\n")
	expected := []TokenKind{
		TokIdentifier, TokEndOfLine,
		TokIdentifier, TokEndOfLine,
		TokEOF,
	}
	testutil.SliceEqual(t, expected, kinds, "blank lines emit no tokens")
}

func TestEndOfLineAtEOFWithoutNewline(t *testing.T) {
	kinds := tokenKinds(t, "A")
	expected := []TokenKind{TokIdentifier, TokEndOfLine, TokEOF}
	testutil.SliceEqual(t, expected, kinds, "final line without newline still closed")
}

func TestCRLF(t *testing.T) {
	kinds := tokenKinds(t, "A\r\nB\r\n")
	expected := []TokenKind{
		TokIdentifier, TokEndOfLine,
		TokIdentifier, TokEndOfLine,
		TokEOF,
	}
	testutil.SliceEqual(t, expected, kinds, "CRLF line endings")
}

func TestSemicolonComment(t *testing.T) {
	kinds := tokenKinds(t, "A ; trailing comment\n; whole line comment\nB\n")
	expected := []TokenKind{
		TokIdentifier, TokEndOfLine,
		TokIdentifier, TokEndOfLine,
		TokEOF,
	}
	testutil.SliceEqual(t, expected, kinds, "semicolon comments")
}

func TestSlashSlashComment(t *testing.T) {
	kinds := tokenKinds(t, "A // trailing\n// whole line\nB\n")
	expected := []TokenKind{
		TokIdentifier, TokEndOfLine,
		TokIdentifier, TokEndOfLine,
		TokEOF,
	}
	testutil.SliceEqual(t, expected, kinds, "slash-slash comments")
}

func TestCommentOnlyLineEmitsNoEndOfLine(t *testing.T) {
	kinds := tokenKinds(t, "; nothing here\n")
	testutil.SliceEqual(t, []TokenKind{TokEOF}, kinds, "comment-only file")
}

func TestPositions(t *testing.T) {
	tokens := tokenize(t, "  Damage = 10\n  Range = 5\n")

	testutil.Equal(t, Position{File: "test.ini", Line: 1, Column: 3}, tokens[0].Pos, "Damage position")
	testutil.Equal(t, Position{File: "test.ini", Line: 1, Column: 10}, tokens[1].Pos, "equals position")
	testutil.Equal(t, Position{File: "test.ini", Line: 1, Column: 12}, tokens[2].Pos, "10 position")
	testutil.Equal(t, 2, tokens[4].Pos.Line, "second line")
}

func TestUnterminatedString(t *testing.T) {
	_, err := NewLexer("test.ini", []byte("Name = \"oops\n"), nil).Tokenize()
	testutil.Error(t, err, "unterminated string")

	var lexErr *LexError
	testutil.True(t, errors.As(err, &lexErr), "error is LexError")
	testutil.Contains(t, lexErr.Message, "unterminated", "message")
	testutil.Equal(t, 8, lexErr.Pos.Column, "error at opening quote")
}

func TestUnrecognizedCharacter(t *testing.T) {
	_, err := NewLexer("test.ini", []byte("Damage @ 10\n"), nil).Tokenize()
	testutil.Error(t, err, "unrecognized character")

	var lexErr *LexError
	testutil.True(t, errors.As(err, &lexErr), "error is LexError")
	testutil.Equal(t, 1, lexErr.Pos.Line, "error line")
	testutil.Equal(t, 8, lexErr.Pos.Column, "error column")
}

func TestMalformedFloat(t *testing.T) {
	_, err := NewLexer("test.ini", []byte("X = 1.\n"), nil).Tokenize()
	testutil.Error(t, err, "digits required after decimal point")

	var lexErr *LexError
	testutil.True(t, errors.As(err, &lexErr), "error is LexError")
	testutil.Contains(t, lexErr.Message, "malformed numeric", "message")
}

func TestMalformedExponent(t *testing.T) {
	_, err := NewLexer("test.ini", []byte("X = 1e\n"), nil).Tokenize()
	testutil.Error(t, err, "digits required after exponent")
}

// Re-lexing a token's stored text must reproduce its classification.
func TestRelexStability(t *testing.T) {
	source := `Object Tank Damage = 10 Speed = 1.5 Ratio = 50% Label = "hi"`
	for _, tok := range tokenize(t, source) {
		if tok.Kind == TokEOF || tok.Kind == TokEndOfLine {
			continue
		}
		again := tokenize(t, tok.Text)
		testutil.Equal(t, tok.Kind, again[0].Kind, "re-lex kind of %q", tok.Text)
		testutil.Equal(t, tok.Text, again[0].Text, "re-lex text of %q", tok.Text)
	}
}

func TestIntegerThenIdentifier(t *testing.T) {
	// Numeric field tags lex as integers; the block engine accepts them as
	// field names.
	kinds := tokenKinds(t, "30 = FrameStart\n")
	expected := []TokenKind{
		TokIntegerLiteral, TokEquals, TokIdentifier, TokEndOfLine, TokEOF,
	}
	testutil.SliceEqual(t, expected, kinds, "numeric field tag")
}
