// Package stream derives, per input, which stream kinds it offers —
// inferred purely from the input path's filename extension (§4.2). No
// file content is ever read (Non-goals, §1).
package stream

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/chicogong/ffmpeg-lint/pkg/diag"
	"github.com/chicogong/ffmpeg-lint/pkg/kb"
	"github.com/chicogong/ffmpeg-lint/pkg/lang/ast"
)

// Set is the inferred stream-kind set for one input, plus its origin.
type Set struct {
	InputIndex int
	Kinds      map[kb.StreamKind]bool
}

// Has reports whether k is present in the set.
func (s Set) Has(k kb.StreamKind) bool {
	return s.Kinds[k]
}

// Environment maps input index to its inferred Set, plus the union of
// stream kinds available across all inputs (§3 StreamEnvironment).
type Environment struct {
	ByInput []Set
	Union   map[kb.StreamKind]bool
}

// Infer computes the StreamEnvironment for cmd's inputs, appending an Info
// diagnostic to acc for any input whose extension is unrecognized (§4.2).
func Infer(cmd *ast.Command, reg *kb.Registry, acc *diag.Accumulator) Environment {
	env := Environment{
		ByInput: make([]Set, len(cmd.Inputs)),
		Union:   map[kb.StreamKind]bool{},
	}
	for i, in := range cmd.Inputs {
		kinds := kindsForPath(in.Path, reg, in, acc)
		set := Set{InputIndex: i, Kinds: map[kb.StreamKind]bool{}}
		for _, k := range kinds {
			set.Kinds[k] = true
			env.Union[k] = true
		}
		env.ByInput[i] = set
	}
	return env
}

func kindsForPath(path string, reg *kb.Registry, in ast.InputSpec, acc *diag.Accumulator) []kb.StreamKind {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if kinds, ok := reg.ExtensionKinds(ext); ok {
		return kinds
	}

	msg, ok := diag.New("I101", diag.SeverityInfo,
		fmt.Sprintf("unrecognized extension %q; assuming both video and audio streams", ext)).
		Target(in.PathSpan, "unrecognized input extension").
		Finish()
	acc.Add(msg, ok)

	return []kb.StreamKind{kb.Video, kb.Audio}
}
