package ini

import "strings"

// endKeyword terminates a block. Matched case-insensitively; schemas write
// both "End" and "END".
const endKeyword = "End"

// FieldParser parses the value of one field into the target record. The
// cursor is positioned on the first value token (any '=' already consumed);
// the parser must consume exactly the value's tokens and stop before the
// end-of-line.
type FieldParser[T any] func(p *Parser, rec *T) error

// FieldDef is one field-table entry: the parsing action plus the data
// revision that introduced the field (zero means always available).
type FieldDef[T any] struct {
	Parse FieldParser[T]
	Since Version
}

// FieldTable maps field names to their parsing actions for one record type.
// Keys match the raw token text case-sensitively. Build once per record type
// and share across parser instances; a FieldTable is never mutated after
// construction.
type FieldTable[T any] map[string]FieldDef[T]

// Field wraps a parsing action as an ungated field-table entry.
func Field[T any](fn FieldParser[T]) FieldDef[T] {
	return FieldDef[T]{Parse: fn}
}

// FieldSince wraps a parsing action gated behind a data revision.
func FieldSince[T any](v Version, fn FieldParser[T]) FieldDef[T] {
	return FieldDef[T]{Parse: fn, Since: v}
}

// ParseBlock parses one anonymous block body into a new T. The cursor must
// be positioned right after the block's opening line. Returns with the
// cursor right after the End keyword; the End line's end-of-line token is
// left for the caller.
func ParseBlock[T any](p *Parser, table FieldTable[T]) (*T, error) {
	rec := new(T)
	if err := parseFields(p, rec, table); err != nil {
		return nil, err
	}
	return rec, nil
}

// ParseNamedBlock is ParseBlock for named blocks: it first consumes one
// identifier as the record's name, stores it via setName, and requires the
// end-of-line that closes the opening line before reading fields.
func ParseNamedBlock[T any](p *Parser, setName func(rec *T, name string), table FieldTable[T]) (*T, error) {
	nameTok, err := p.Advance(TokIdentifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.Advance(TokEndOfLine); err != nil {
		return nil, err
	}
	rec := new(T)
	setName(rec, nameTok.Text)
	if err := parseFields(p, rec, table); err != nil {
		return nil, err
	}
	return rec, nil
}

// ParseSubBlock parses a nested block appearing as a field value: the field
// engine has consumed the field name, so the opening line's end-of-line is
// still pending. Consumes it, then the block body and its End keyword.
func ParseSubBlock[T any](p *Parser, table FieldTable[T]) (*T, error) {
	if _, err := p.Advance(TokEndOfLine); err != nil {
		return nil, err
	}
	rec := new(T)
	if err := parseFields(p, rec, table); err != nil {
		return nil, err
	}
	return rec, nil
}

// ParseTopLevelBlock parses one anonymous top-level block, consuming the
// leading block keyword, the opening line's end, the body, and the optional
// end-of-line after End.
func ParseTopLevelBlock[T any](p *Parser, table FieldTable[T]) (*T, error) {
	if _, err := p.Advance(TokIdentifier); err != nil {
		return nil, err
	}
	if _, err := p.Advance(TokEndOfLine); err != nil {
		return nil, err
	}
	rec, err := ParseBlock(p, table)
	if err != nil {
		return nil, err
	}
	p.AdvanceIf(TokEndOfLine)
	return rec, nil
}

// ParseTopLevelNamedBlock is ParseTopLevelBlock for named blocks.
func ParseTopLevelNamedBlock[T any](p *Parser, setName func(rec *T, name string), table FieldTable[T]) (*T, error) {
	if _, err := p.Advance(TokIdentifier); err != nil {
		return nil, err
	}
	rec, err := ParseNamedBlock(p, setName, table)
	if err != nil {
		return nil, err
	}
	p.AdvanceIf(TokEndOfLine)
	return rec, nil
}

// parseFields reads "Name [=] value" lines until the End keyword. Field
// names may also be numeric tags (IntegerLiteral tokens). Any other token
// kind means the block was never terminated.
func parseFields[T any](p *Parser, rec *T, table FieldTable[T]) error {
	for {
		tok := p.Current()
		switch tok.Kind {
		case TokIdentifier, TokIntegerLiteral:
		default:
			return parseError(tok.Pos, "unterminated block %q: expected field name or %s, got %s",
				p.enclosingContext(), endKeyword, tok.Kind.Name())
		}

		if tok.Kind == TokIdentifier && strings.EqualFold(tok.Text, endKeyword) {
			_, err := p.Advance()
			return err
		}

		def, ok := table[tok.Text]
		if !ok {
			return parseError(tok.Pos, "unexpected field %q in block %q",
				tok.Text, p.enclosingContext())
		}
		if def.Since > p.version {
			return parseError(tok.Pos, "field %q in block %q requires data version %d (active version %d)",
				tok.Text, p.enclosingContext(), def.Since, p.version)
		}

		if err := parseField(p, rec, tok.Text, def); err != nil {
			return err
		}
	}
}

// parseField parses one field line with its name on the diagnostic stack.
// The deferred pop keeps stack discipline when the action fails.
func parseField[T any](p *Parser, rec *T, name string, def FieldDef[T]) error {
	defer p.pushContext(name)()

	if _, err := p.Advance(); err != nil {
		return err
	}
	p.AdvanceIf(TokEquals)
	if err := def.Parse(p, rec); err != nil {
		return err
	}
	_, err := p.Advance(TokEndOfLine)
	return err
}

// AttributeParser parses one inline attribute value.
type AttributeParser func(p *Parser) error

// AttributeTable maps attribute keywords to their value parsers for one
// inline sub-record shape. Keys match case-sensitively, like field tables.
type AttributeTable map[string]AttributeParser

// ParseAttributes parses attribute-style "Key1 value Key2 = value2" pairs up
// to the end of the line. Attributes may appear in any order; each named in
// required must appear at least once.
func (p *Parser) ParseAttributes(required []string, table AttributeTable) error {
	seen := make(map[string]bool, len(table))

	for p.Current().Kind == TokIdentifier {
		tok, _ := p.Advance(TokIdentifier)
		fn, ok := table[tok.Text]
		if !ok {
			return parseError(tok.Pos, "unexpected attribute %q in %q",
				tok.Text, p.enclosingContext())
		}
		p.AdvanceIf(TokEquals)

		pop := p.pushContext(tok.Text)
		err := fn(p)
		pop()
		if err != nil {
			return err
		}
		seen[tok.Text] = true
	}

	for _, name := range required {
		if !seen[name] {
			return parseError(p.CurrentPosition(), "missing required attribute %q in %q",
				name, p.enclosingContext())
		}
	}
	return nil
}
