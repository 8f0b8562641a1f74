package sema

import (
	"github.com/chicogong/ffmpeg-lint/pkg/diag"
	"github.com/chicogong/ffmpeg-lint/pkg/kb"
	"github.com/chicogong/ffmpeg-lint/pkg/lang/ast"
	"github.com/chicogong/ffmpeg-lint/pkg/stream"
)

// Run executes every semantic pass over cmd in order, appending to acc.
// No pass aborts on another's failure (§4.3, §7): a malformed command still
// runs every pass that can extract useful signal from whatever was parsed.
func Run(cmd *ast.Command, reg *kb.Registry, acc *diag.Accumulator) {
	env := stream.Infer(cmd, reg, acc)

	passA(cmd, reg, acc)
	passFilterComplex(cmd, acc)
	passB(cmd, env, acc)
	passC(cmd, reg, acc)
	passD(cmd, acc)
}
