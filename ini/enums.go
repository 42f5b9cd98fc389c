package ini

import "strings"

// EnumMap maps declared enum literals to their values. Lookups are
// case-insensitive; keys are stored uppercased. Construct once per enum type
// and share freely: an EnumMap is never mutated after construction.
type EnumMap[E any] struct {
	name   string
	values map[string]E
}

// NewEnumMap builds an EnumMap for the named enum type.
func NewEnumMap[E any](name string, values map[string]E) EnumMap[E] {
	m := EnumMap[E]{
		name:   name,
		values: make(map[string]E, len(values)),
	}
	for text, v := range values {
		m.values[strings.ToUpper(text)] = v
	}
	return m
}

// Name returns the enum type name used in error messages.
func (m EnumMap[E]) Name() string {
	return m.name
}

// Lookup returns the value for the given literal text.
func (m EnumMap[E]) Lookup(text string) (E, bool) {
	v, ok := m.values[strings.ToUpper(text)]
	return v, ok
}

// Parse consumes one Identifier token and maps it to the enum value.
// Unknown text fails with a ParseError naming the enum type.
func (m EnumMap[E]) Parse(p *Parser) (E, error) {
	var zero E
	tok, err := p.Advance(TokIdentifier)
	if err != nil {
		return zero, err
	}
	v, ok := m.Lookup(tok.Text)
	if !ok {
		return zero, parseError(tok.Pos, "unknown %s value %q", m.name, tok.Text)
	}
	return v, nil
}

// BitsetMap maps flag literals to single-bit values of an integer flag type.
type BitsetMap[E ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int] struct {
	EnumMap[E]
}

// NewBitsetMap builds a BitsetMap for the named flag type.
func NewBitsetMap[E ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int](name string, values map[string]E) BitsetMap[E] {
	return BitsetMap[E]{EnumMap: NewEnumMap(name, values)}
}

// Parse consumes Identifier tokens up to the end of the line, OR-combining
// their mapped bits. A field already at end-of-line yields the zero value.
func (m BitsetMap[E]) Parse(p *Parser) (E, error) {
	var flags E
	for p.Current().Kind == TokIdentifier {
		tok, _ := p.Advance(TokIdentifier)
		v, ok := m.Lookup(tok.Text)
		if !ok {
			return flags, parseError(tok.Pos, "unknown %s value %q", m.name, tok.Text)
		}
		flags |= v
	}
	return flags, nil
}
