package sema

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/chicogong/ffmpeg-lint/pkg/diag"
	"github.com/chicogong/ffmpeg-lint/pkg/kb"
	"github.com/chicogong/ffmpeg-lint/pkg/lang/ast"
)

// passC checks that every explicit codec choice is compatible with the
// output container, determined from an explicit -f override when present
// or else the output path's extension (§4.3 Pass C, E201).
func passC(cmd *ast.Command, reg *kb.Registry, acc *diag.Accumulator) {
	for _, out := range cmd.Outputs {
		container, ok := resolveContainer(out, reg)
		if !ok {
			continue
		}

		for _, kind := range []ast.Kind{ast.KindVideoCodec, ast.KindAudioCodec} {
			opt, ok := findOption(out.Options, kind)
			if !ok || !opt.HasValue() {
				continue
			}
			codec, ok := reg.Codec(opt.RawValue)
			if !ok {
				continue // W201 already reported by passA
			}
			if !container.Codecs[codec.Name] {
				acc.Add(diag.New("E201", diag.SeverityError,
					fmt.Sprintf("codec %q is not compatible with container %q", codec.Name, container.Name)).
					Target(opt.ValueSpan, "incompatible with the output container").
					Reference(out.PathSpan, fmt.Sprintf("output container is %q", container.Name)).
					Rich(containerCompatibilityTable(container)...).
					Finish())
			}
		}
	}
}

// resolveContainer maps an output to its catalog container entry: an
// explicit "-f <fmt>" names the container directly (format names and
// container names share the catalog's vocabulary, e.g. "mp4", "webm"),
// falling back to the output path's extension when there is none.
func resolveContainer(out ast.OutputSpec, reg *kb.Registry) (kb.Container, bool) {
	if opt, ok := findOption(out.Options, ast.KindFormat); ok && opt.HasValue() {
		return reg.Container(opt.RawValue)
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(out.Path)), ".")
	if ext == "" {
		return kb.Container{}, false
	}
	return reg.ContainerByExtension(ext)
}
