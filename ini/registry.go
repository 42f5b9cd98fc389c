package ini

import "log/slog"

// BlockHandler parses one occurrence of a top-level block into the shared
// aggregation context. The cursor is positioned on the block keyword; the
// handler consumes the whole block (typically via ParseTopLevelBlock or
// ParseTopLevelNamedBlock).
type BlockHandler[C any] func(p *Parser, ctx *C) error

// Registry maps top-level block keywords to handlers. Keys match the raw
// token text case-sensitively. Build once per process and share across
// parser instances; a Registry is never mutated after construction.
type Registry[C any] map[string]BlockHandler[C]

// ParseFile drives the top-level dispatch loop against the registry,
// mutating the aggregation context in place. The loop terminates at end of
// file; the first error aborts the parse of the whole source unit.
func ParseFile[C any](p *Parser, reg Registry[C], ctx *C) error {
	for {
		tok := p.Current()
		switch tok.Kind {
		case TokEOF:
			return nil

		case TokEndOfLine:
			p.AdvanceIf(TokEndOfLine)

		case TokIdentifier:
			handler, ok := reg[tok.Text]
			if !ok {
				return parseError(tok.Pos, "unknown top-level block %q", tok.Text)
			}
			if p.traceEnabled() {
				p.trace("block", slog.String("keyword", tok.Text),
					slog.Int("line", tok.Pos.Line))
			}

			pop := p.pushContext(tok.Text)
			err := handler(p, ctx)
			pop()
			if err != nil {
				return err
			}

		default:
			return parseError(tok.Pos, "expected block keyword, got %s", tok.Kind.Name())
		}
	}
}
