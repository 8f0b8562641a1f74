// Package offset rewrites internal, command-relative spans onto editor
// absolute coordinates (§4.5): the caller supplies a 1-based line for
// internal line 1 and a 0-based column offset applied to columns on
// internal line 1 only.
package offset

import (
	"github.com/chicogong/ffmpeg-lint/pkg/diag"
	"github.com/chicogong/ffmpeg-lint/pkg/lang/token"
)

// Mapper rewrites token.Position/Span values and diag.Message slices.
type Mapper struct {
	LineOffset   int // 1-based absolute line of internal line 1
	ColumnOffset int // 0-based column offset, internal line 1 only
}

// New builds a Mapper from the caller-supplied offsets.
func New(lineOffset, columnOffset int) Mapper {
	return Mapper{LineOffset: lineOffset, ColumnOffset: columnOffset}
}

// Position rebases a single internal position (§8 offset-mapping invariant:
// internal (1,k) -> (L, k+C); internal (r>1,k) -> (L+r-1, k)).
func (m Mapper) Position(p token.Position) token.Position {
	out := token.Position{Line: m.LineOffset + p.Line - 1, Column: p.Column}
	if p.Line == 1 {
		out.Column += m.ColumnOffset
	}
	return out
}

// Span rebases both endpoints of a span.
func (m Mapper) Span(s token.Span) token.Span {
	return token.Span{Start: m.Position(s.Start), End: m.Position(s.End)}
}

// Messages rewrites every span in every message in place and returns the
// (same, mutated) slice for convenience.
func (m Mapper) Messages(msgs []diag.Message) []diag.Message {
	for i := range msgs {
		for j := range msgs[i].Spans {
			msgs[i].Spans[j].Span = m.Span(msgs[i].Spans[j].Span)
		}
	}
	return msgs
}
