// Package sema runs the ordered semantic-analysis passes over a parsed
// ast.Command: option parameter validation, stream-type requirement
// checking, codec/container compatibility, and cross-option sanity (§4.3).
// Passes never abort on failure; each appends to a shared diag.Accumulator
// and later passes still run (§4.3, §7).
package sema

import (
	"strings"

	"github.com/chicogong/ffmpeg-lint/pkg/lang/ast"
	"github.com/chicogong/ffmpeg-lint/pkg/lang/token"
)

// findOption returns the first option of kind k in opts.
func findOption(opts []ast.Option, k ast.Kind) (ast.Option, bool) {
	for _, o := range opts {
		if o.Kind == k {
			return o, true
		}
	}
	return ast.Option{}, false
}

// allOptionGroups returns every option list in cmd, used by passes that
// apply uniformly regardless of where an option was declared.
func allOptionGroups(cmd *ast.Command) [][]ast.Option {
	groups := make([][]ast.Option, 0, 2+len(cmd.Inputs)+len(cmd.Outputs))
	groups = append(groups, cmd.Global)
	for _, in := range cmd.Inputs {
		groups = append(groups, in.Options)
	}
	for _, out := range cmd.Outputs {
		groups = append(groups, out.Options)
	}
	return groups
}

// subSpan computes the span of a length-n substring starting at byte
// offset off within value's token span. This assumes the option value was
// not quoted (quotes are stripped from the stored literal, so an index
// computed against the literal only lines up with source columns for
// unquoted values — the common case for filter chains and map specs, and
// the one the minimal validation in this package targets).
func subSpan(value token.Span, off, n int) token.Span {
	start := value.Start
	start.Column += off
	end := start
	end.Column += n
	return token.Span{Start: start, End: end}
}

// splitTopLevel splits s on sep, returning each piece plus its byte offset
// within s.
type offsetPiece struct {
	text string
	off  int
}

func splitTopLevel(s string, sep byte) []offsetPiece {
	var pieces []offsetPiece
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			pieces = append(pieces, offsetPiece{text: s[start:i], off: start})
			start = i + 1
		}
	}
	pieces = append(pieces, offsetPiece{text: s[start:], off: start})
	return pieces
}

// filterInvocation is one parsed "name[=params]" entry in a filter chain.
type filterInvocation struct {
	name    string
	nameOff int
	params  string
}

// parseFilterChain tokenizes a -vf/-af value at top-level commas, per §4.3
// Pass A.
func parseFilterChain(raw string) []filterInvocation {
	var out []filterInvocation
	for _, piece := range splitTopLevel(raw, ',') {
		text := piece.text
		trimmed := strings.TrimLeft(text, " ")
		lead := len(text) - len(trimmed)
		text = strings.TrimRight(trimmed, " ")

		name := text
		params := ""
		if idx := strings.IndexByte(text, '='); idx >= 0 {
			name = text[:idx]
			params = text[idx+1:]
		}
		out = append(out, filterInvocation{
			name:    name,
			nameOff: piece.off + lead,
			params:  params,
		})
	}
	return out
}
