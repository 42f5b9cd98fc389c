package ini

import (
	"errors"
	"testing"

	"github.com/sageforge/inidata/internal/testutil"
)

func newParser(t *testing.T, source string, opts ...Option) *Parser {
	t.Helper()
	p, err := New("test.ini", []byte(source), opts...)
	testutil.NoError(t, err, "new parser for %q", source)
	return p
}

func asParseError(t *testing.T, err error) *ParseError {
	t.Helper()
	testutil.Error(t, err, "expected parse error")
	var parseErr *ParseError
	testutil.True(t, errors.As(err, &parseErr), "error is ParseError: %v", err)
	return parseErr
}

// === Cursor primitives ===

func TestCurrentDoesNotAdvance(t *testing.T) {
	p := newParser(t, "Damage = 10\n")
	testutil.Equal(t, "Damage", p.Current().Text, "first")
	testutil.Equal(t, "Damage", p.Current().Text, "still first")
}

func TestAdvanceExpectedKind(t *testing.T) {
	p := newParser(t, "Damage = 10\n")

	tok, err := p.Advance(TokIdentifier)
	testutil.NoError(t, err, "advance identifier")
	testutil.Equal(t, "Damage", tok.Text, "token text")

	_, err = p.Advance(TokIntegerLiteral)
	perr := asParseError(t, err)
	testutil.Contains(t, perr.Message, "expected INTEGER", "message")
	testutil.Contains(t, perr.Message, "EQUALS", "got kind named")

	// Failed Advance must not move the cursor.
	testutil.Equal(t, TokEquals, p.Current().Kind, "cursor unchanged")
}

func TestAdvanceStaysAtEOF(t *testing.T) {
	p := newParser(t, "")
	for i := 0; i < 3; i++ {
		tok, err := p.Advance()
		testutil.NoError(t, err, "advance at EOF")
		testutil.Equal(t, TokEOF, tok.Kind, "terminal EOF")
	}
}

func TestAdvanceIf(t *testing.T) {
	p := newParser(t, "= 10\n")

	_, ok := p.AdvanceIf(TokIdentifier)
	testutil.False(t, ok, "no identifier")
	testutil.Equal(t, TokEquals, p.Current().Kind, "cursor unchanged")

	tok, ok := p.AdvanceIf(TokEquals)
	testutil.True(t, ok, "equals matched")
	testutil.Equal(t, "=", tok.Text, "token text")
}

func TestExpectIdentifierText(t *testing.T) {
	p := newParser(t, "End\n")
	testutil.NoError(t, p.ExpectIdentifierText("End"), "exact match")

	p = newParser(t, "Done\n")
	perr := asParseError(t, p.ExpectIdentifierText("End"))
	testutil.Contains(t, perr.Message, `"End"`, "wanted text")
	testutil.Contains(t, perr.Message, `"Done"`, "got text")
}

// === Value primitives ===

func TestParseInteger(t *testing.T) {
	p := newParser(t, "-42\n")
	v, err := p.ParseInteger()
	testutil.NoError(t, err, "parse")
	testutil.Equal(t, int64(-42), v, "value")
}

func TestParseFloat(t *testing.T) {
	p := newParser(t, "1.5\n")
	v, err := p.ParseFloat()
	testutil.NoError(t, err, "parse")
	testutil.InDelta(t, 1.5, v, 1e-9, "value")
}

func TestParseFloatWidensInteger(t *testing.T) {
	p := newParser(t, "5\n")
	v, err := p.ParseFloat()
	testutil.NoError(t, err, "integer literal accepted as float")
	testutil.InDelta(t, 5.0, v, 1e-9, "value")
}

func TestParsePercentageIsFraction(t *testing.T) {
	p := newParser(t, "50% 100% 12.5%\n")

	v, err := p.ParsePercentage()
	testutil.NoError(t, err, "parse 50%%")
	testutil.InDelta(t, 0.5, v, 1e-9, "50%% is 0.5")

	v, err = p.ParsePercentage()
	testutil.NoError(t, err, "parse 100%%")
	testutil.InDelta(t, 1.0, v, 1e-9, "100%% is 1.0")

	v, err = p.ParsePercentage()
	testutil.NoError(t, err, "parse 12.5%%")
	testutil.InDelta(t, 0.125, v, 1e-9, "12.5%% is 0.125")
}

func TestParseBoolean(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Yes", true},
		{"yes", true},
		{"TRUE", true},
		{"No", false},
		{"no", false},
		{"False", false},
	}
	for _, tc := range tests {
		p := newParser(t, tc.text+"\n")
		v, err := p.ParseBoolean()
		testutil.NoError(t, err, "parse %q", tc.text)
		testutil.Equal(t, tc.want, v, "value of %q", tc.text)
	}
}

func TestParseBooleanInvalid(t *testing.T) {
	p := newParser(t, "Maybe\n")
	_, err := p.ParseBoolean()
	perr := asParseError(t, err)
	testutil.Contains(t, perr.Message, "invalid boolean", "message")
	testutil.Contains(t, perr.Message, "Maybe", "offending text")
}

func TestParseString(t *testing.T) {
	p := newParser(t, `Bare "with spaces"`)

	v, err := p.ParseString()
	testutil.NoError(t, err, "bare")
	testutil.Equal(t, "Bare", v, "bare value")

	v, err = p.ParseString()
	testutil.NoError(t, err, "quoted")
	testutil.Equal(t, "with spaces", v, "quotes stripped")
}

func TestParseStringArray(t *testing.T) {
	p := newParser(t, `A B "c d" 10`)
	v, err := p.ParseStringArray()
	testutil.NoError(t, err, "parse")
	testutil.SliceEqual(t, []string{"A", "B", "c d"}, v, "stops at non-string token")
}

func TestParseAssetReferenceArray(t *testing.T) {
	p := newParser(t, `Barracks WarFactory "quoted" 10`)
	v, err := p.ParseAssetReferenceArray()
	testutil.NoError(t, err, "parse")
	testutil.SliceEqual(t, []string{"Barracks", "WarFactory"}, v, "identifiers only, stops at string literal")

	p = newParser(t, "10\n")
	v, err = p.ParseAssetReferenceArray()
	testutil.NoError(t, err, "no references")
	testutil.Len(t, v, 0, "empty result is not an error")
}

func TestParseStringArrayRequired(t *testing.T) {
	p := newParser(t, "10\n")
	_, err := p.ParseStringArrayRequired()
	perr := asParseError(t, err)
	testutil.Contains(t, perr.Message, "at least one", "message")
}

// === Enums and bitsets ===

type testColor int

const (
	colorRed testColor = iota + 1
	colorGreen
)

var testColors = NewEnumMap("Color", map[string]testColor{
	"RED":   colorRed,
	"GREEN": colorGreen,
})

func TestEnumParse(t *testing.T) {
	p := newParser(t, "Red green\n")

	v, err := testColors.Parse(p)
	testutil.NoError(t, err, "mixed case")
	testutil.Equal(t, colorRed, v, "value")

	v, err = testColors.Parse(p)
	testutil.NoError(t, err, "lower case")
	testutil.Equal(t, colorGreen, v, "value")
}

func TestEnumUnknown(t *testing.T) {
	p := newParser(t, "Blue\n")
	_, err := testColors.Parse(p)
	perr := asParseError(t, err)
	testutil.Contains(t, perr.Message, "Color", "names enum type")
	testutil.Contains(t, perr.Message, "Blue", "offending text")
}

type testFlags uint32

const (
	flagA testFlags = 1 << iota
	flagB
	flagC
)

var testFlagSet = NewBitsetMap("TestFlags", map[string]testFlags{
	"AAA": flagA,
	"BBB": flagB,
	"CCC": flagC,
})

func TestBitsetUnion(t *testing.T) {
	p := newParser(t, "AAA CCC\n")
	v, err := testFlagSet.Parse(p)
	testutil.NoError(t, err, "parse")
	testutil.Equal(t, flagA|flagC, v, "bitwise union")
}

func TestBitsetEmptyYieldsZero(t *testing.T) {
	p := newParser(t, "\n")
	v, err := testFlagSet.Parse(p)
	testutil.NoError(t, err, "empty flags")
	testutil.Equal(t, testFlags(0), v, "zero value")
}

func TestBitsetUnknownValuePosition(t *testing.T) {
	p := newParser(t, "Flags = AAA BBQ\n")
	_, err := p.Advance(TokIdentifier)
	testutil.NoError(t, err, "field name")
	_, ok := p.AdvanceIf(TokEquals)
	testutil.True(t, ok, "equals")

	_, err = testFlagSet.Parse(p)
	perr := asParseError(t, err)
	testutil.Contains(t, perr.Message, "TestFlags", "names flag type")
	testutil.Contains(t, perr.Message, "BBQ", "offending text")
	testutil.Equal(t, 1, perr.Pos.Line, "error line")
	testutil.Equal(t, 13, perr.Pos.Column, "error column is the bad literal")
}

// === Block engine ===

type testRecord struct {
	Name   string
	Damage int
	Speed  float64
	Nested []*testChild
}

type testChild struct {
	Value int
}

var testChildFields = FieldTable[testChild]{
	"Value": Field(func(p *Parser, c *testChild) error {
		v, err := p.ParseInt()
		c.Value = v
		return err
	}),
}

var testRecordFields = FieldTable[testRecord]{
	"Damage": Field(func(p *Parser, r *testRecord) error {
		v, err := p.ParseInt()
		r.Damage = v
		return err
	}),
	"Speed": Field(func(p *Parser, r *testRecord) error {
		v, err := p.ParseFloat()
		r.Speed = v
		return err
	}),
	"Child": Field(func(p *Parser, r *testRecord) error {
		c, err := ParseSubBlock(p, testChildFields)
		if err != nil {
			return err
		}
		r.Nested = append(r.Nested, c)
		return nil
	}),
}

func setTestName(r *testRecord, name string) { r.Name = name }

func TestParseBlockSingleField(t *testing.T) {
	p := newParser(t, "Damage = 10\nEnd\n")
	rec, err := ParseBlock(p, testRecordFields)
	testutil.NoError(t, err, "parse block")
	testutil.Equal(t, 10, rec.Damage, "field value")
}

func TestParseBlockEqualsOptional(t *testing.T) {
	p := newParser(t, "Damage 10\nEnd\n")
	rec, err := ParseBlock(p, testRecordFields)
	testutil.NoError(t, err, "parse block without equals")
	testutil.Equal(t, 10, rec.Damage, "field value")
}

func TestParseBlockEndCaseInsensitive(t *testing.T) {
	for _, end := range []string{"End", "END", "end"} {
		p := newParser(t, "Damage = 1\n"+end+"\n")
		_, err := ParseBlock(p, testRecordFields)
		testutil.NoError(t, err, "terminator %q", end)
	}
}

func TestNumericFieldTag(t *testing.T) {
	// Some schemas key fields by numeric tags instead of names; the tag
	// lexes as an IntegerLiteral and must resolve against the table like
	// any identifier.
	type frame struct {
		Start int
	}
	table := FieldTable[frame]{
		"30": Field(func(p *Parser, f *frame) error {
			v, err := p.ParseInt()
			f.Start = v
			return err
		}),
	}

	p := newParser(t, "30 = 7\nEnd\n")
	rec, err := ParseBlock(p, table)
	testutil.NoError(t, err, "numeric tag accepted as field name")
	testutil.Equal(t, 7, rec.Start, "field value")

	p = newParser(t, "31 = 7\nEnd\n")
	_, err = ParseBlock(p, table)
	perr := asParseError(t, err)
	testutil.Contains(t, perr.Message, `"31"`, "unregistered tag reported like any field")
}

func TestParseTopLevelNamedBlock(t *testing.T) {
	p := newParser(t, "Armor ArmorName\n  Damage = 10\nEnd\n")
	rec, err := ParseTopLevelNamedBlock(p, setTestName, testRecordFields)
	testutil.NoError(t, err, "parse")
	testutil.Equal(t, "ArmorName", rec.Name, "record name")
	testutil.Equal(t, 10, rec.Damage, "field value")
	testutil.Equal(t, TokEOF, p.Current().Kind, "cursor ends after the End line")
}

func TestUnknownFieldPosition(t *testing.T) {
	p := newParser(t, "Armor Tank\n  Bogus = 10\nEnd\n")
	_, err := ParseTopLevelNamedBlock(p, setTestName, testRecordFields)
	perr := asParseError(t, err)
	testutil.Contains(t, perr.Message, `"Bogus"`, "field name")
	testutil.Equal(t, 2, perr.Pos.Line, "position is the field token")
	testutil.Equal(t, 3, perr.Pos.Column, "position is the field token")
}

func TestUnknownFieldNamesEnclosingBlock(t *testing.T) {
	data := newTestContext()
	p := newParser(t, "Thing Tank\n  Bogus = 10\nEnd\n")
	err := ParseFile(p, testRegistry, data)
	perr := asParseError(t, err)
	testutil.Contains(t, perr.Message, `unexpected field "Bogus" in block "Thing"`, "message")
}

func TestNestedSubBlock(t *testing.T) {
	source := "Thing Tank\n" +
		"  Damage = 3\n" +
		"  Child\n" +
		"    Value = 7\n" +
		"  End\n" +
		"  Speed = 1.5\n" +
		"End\n"
	data := newTestContext()
	p := newParser(t, source)
	err := ParseFile(p, testRegistry, data)
	testutil.NoError(t, err, "parse nested")

	rec := data.Records["Tank"]
	testutil.NotNil(t, rec, "record stored")
	testutil.Len(t, rec.Nested, 1, "one child")
	testutil.Equal(t, 7, rec.Nested[0].Value, "child value")
	testutil.Equal(t, 3, rec.Damage, "outer field before child")
	testutil.InDelta(t, 1.5, rec.Speed, 1e-9, "outer field after child")
}

func TestNestedUnknownFieldNamesInnerBlock(t *testing.T) {
	source := "Thing Tank\n" +
		"  Child\n" +
		"    Bogus = 1\n" +
		"  End\n" +
		"End\n"
	data := newTestContext()
	p := newParser(t, source)
	err := ParseFile(p, testRegistry, data)
	perr := asParseError(t, err)
	testutil.Contains(t, perr.Message, `in block "Child"`, "inner context")
	testutil.Equal(t, 3, perr.Pos.Line, "position of inner field")
}

func TestUnterminatedBlock(t *testing.T) {
	p := newParser(t, "Damage = 10\n")
	_, err := ParseBlock(p, testRecordFields)
	perr := asParseError(t, err)
	testutil.Contains(t, perr.Message, "unterminated block", "message")
}

func TestVersionGatedField(t *testing.T) {
	table := FieldTable[testRecord]{
		"Damage": FieldSince(2, func(p *Parser, r *testRecord) error {
			v, err := p.ParseInt()
			r.Damage = v
			return err
		}),
	}

	p := newParser(t, "Damage = 10\nEnd\n", WithVersion(1))
	_, err := ParseBlock(p, table)
	perr := asParseError(t, err)
	testutil.Contains(t, perr.Message, "requires data version 2", "gated out")

	p = newParser(t, "Damage = 10\nEnd\n", WithVersion(2))
	rec, err := ParseBlock(p, table)
	testutil.NoError(t, err, "gated in")
	testutil.Equal(t, 10, rec.Damage, "field value")
}

func TestFieldNamesAreCaseSensitive(t *testing.T) {
	p := newParser(t, "damage = 10\nEnd\n")
	_, err := ParseBlock(p, testRecordFields)
	perr := asParseError(t, err)
	testutil.Contains(t, perr.Message, `"damage"`, "lowercase spelling not registered")
}

// === Attribute lines ===

func TestParseAttributes(t *testing.T) {
	type slave struct {
		bone     string
		min      float64
		template string
	}

	parse := func(t *testing.T, source string) (slave, error) {
		t.Helper()
		var s slave
		p := newParser(t, source)
		err := p.ParseAttributes([]string{"Bone", "Template"}, AttributeTable{
			"Bone": func(p *Parser) error {
				v, err := p.ParseIdentifier()
				s.bone = v
				return err
			},
			"Min": func(p *Parser) error {
				v, err := p.ParseFloat()
				s.min = v
				return err
			},
			"Template": func(p *Parser) error {
				v, err := p.ParseAssetReference()
				s.template = v
				return err
			},
		})
		return s, err
	}

	s, err := parse(t, "Bone TURRET01 Min = 0.5 Template PSysSmoke\n")
	testutil.NoError(t, err, "mixed = usage")
	testutil.Equal(t, "TURRET01", s.bone, "bone")
	testutil.InDelta(t, 0.5, s.min, 1e-9, "min")
	testutil.Equal(t, "PSysSmoke", s.template, "template")

	// Order independence.
	s, err = parse(t, "Template PSysSmoke Bone TURRET01\n")
	testutil.NoError(t, err, "reordered")
	testutil.Equal(t, "TURRET01", s.bone, "bone")

	// Missing mandatory attribute.
	_, err = parse(t, "Bone TURRET01\n")
	perr := asParseError(t, err)
	testutil.Contains(t, perr.Message, `"Template"`, "missing attribute named")

	// Unknown attribute.
	_, err = parse(t, "Bone TURRET01 Wobble 3\n")
	perr = asParseError(t, err)
	testutil.Contains(t, perr.Message, `"Wobble"`, "unknown attribute named")
}

// === Top-level dispatch ===

type testContext struct {
	Records map[string]*testRecord
}

func newTestContext() *testContext {
	return &testContext{Records: make(map[string]*testRecord)}
}

var testRegistry = Registry[testContext]{
	"Thing": func(p *Parser, ctx *testContext) error {
		rec, err := ParseTopLevelNamedBlock(p, setTestName, testRecordFields)
		if err != nil {
			return err
		}
		ctx.Records[rec.Name] = rec
		return nil
	},
}

func TestParseFileMultipleBlocks(t *testing.T) {
	source := "Thing A\n  Damage = 1\nEnd\n\nThing B\n  Damage = 2\nEnd\n"
	data := newTestContext()
	p := newParser(t, source)
	testutil.NoError(t, ParseFile(p, testRegistry, data), "parse file")
	testutil.Equal(t, 2, len(data.Records), "two records")
	testutil.Equal(t, 1, data.Records["A"].Damage, "first")
	testutil.Equal(t, 2, data.Records["B"].Damage, "second")
}

func TestParseFileUnknownBlock(t *testing.T) {
	data := newTestContext()
	p := newParser(t, "Gadget X\nEnd\n")
	err := ParseFile(p, testRegistry, data)
	perr := asParseError(t, err)
	testutil.Contains(t, perr.Message, `unknown top-level block "Gadget"`, "message")
}

func TestParseFileRejectsNonKeyword(t *testing.T) {
	data := newTestContext()
	p := newParser(t, "42\n")
	err := ParseFile(p, testRegistry, data)
	perr := asParseError(t, err)
	testutil.Contains(t, perr.Message, "expected block keyword", "message")
}

func TestContextStackUnwindsOnError(t *testing.T) {
	data := newTestContext()
	p := newParser(t, "Thing Tank\n  Child\n    Bogus = 1\n  End\nEnd\n")
	err := ParseFile(p, testRegistry, data)
	testutil.Error(t, err, "parse fails")
	testutil.Equal(t, 0, len(p.stack), "diagnostic stack empty after unwind")
}

func TestCurrentPosition(t *testing.T) {
	p := newParser(t, "Damage = 10\n")
	pos := p.CurrentPosition()
	testutil.Equal(t, Position{File: "test.ini", Line: 1, Column: 1}, pos, "position of current token")
	testutil.Equal(t, "test.ini:1:1", pos.String(), "string form")
}
