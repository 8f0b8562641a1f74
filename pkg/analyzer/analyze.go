// Package analyzer exposes the single pure entry point described in §4.6:
// given the text of one FFmpeg command line, it returns every diagnostic in
// final sorted order. analyze() never touches the filesystem, the network,
// or process state, and is safe to call concurrently (§5).
package analyzer

import (
	"github.com/chicogong/ffmpeg-lint/pkg/diag"
	"github.com/chicogong/ffmpeg-lint/pkg/kb"
	"github.com/chicogong/ffmpeg-lint/pkg/lang/parser"
	"github.com/chicogong/ffmpeg-lint/pkg/offset"
	"github.com/chicogong/ffmpeg-lint/pkg/sema"
)

// Options configures a single Analyze call.
type Options struct {
	// LineOffset is the 1-based absolute line of the command's first
	// internal line; zero means "use 1" (no rebasing).
	LineOffset int

	// ColumnOffset is the 0-based column to add to spans on the command's
	// first internal line only.
	ColumnOffset int

	// Registry supplies the codec/container/filter/extension catalogs.
	// A nil Registry falls back to kb.Default().
	Registry *kb.Registry
}

// Analyze parses and semantically checks one FFmpeg command line, returning
// its diagnostics in final order (Error > Warning > Info > Hint, ties by
// earliest Target span, §3). It is a pure function of its inputs.
func Analyze(content string, opts Options) []diag.Message {
	reg := opts.Registry
	if reg == nil {
		reg = kb.Default()
	}

	acc := &diag.Accumulator{}
	cmd := parser.Parse(content, acc)
	sema.Run(cmd, reg, acc)

	msgs := acc.Messages()

	lineOffset := opts.LineOffset
	if lineOffset == 0 {
		lineOffset = 1
	}
	return offset.New(lineOffset, opts.ColumnOffset).Messages(msgs)
}
