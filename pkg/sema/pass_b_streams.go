package sema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chicogong/ffmpeg-lint/pkg/diag"
	"github.com/chicogong/ffmpeg-lint/pkg/kb"
	"github.com/chicogong/ffmpeg-lint/pkg/lang/ast"
	"github.com/chicogong/ffmpeg-lint/pkg/lang/token"
	"github.com/chicogong/ffmpeg-lint/pkg/stream"
)

// passB computes, per output, the stream kinds it requests and checks them
// against what the (possibly -map-restricted) inputs actually offer (§4.3
// Pass B). It also validates every -map option's target (§4.3 Pass A's
// E301 rule, deferred here since it needs the inferred StreamEnvironment).
func passB(cmd *ast.Command, env stream.Environment, acc *diag.Accumulator) {
	for _, out := range cmd.Outputs {
		for _, opt := range out.Options {
			if opt.Kind == ast.KindMap {
				validateMap(opt, cmd, env, acc)
			}
		}
		checkStreamRequirements(cmd, out, env, acc)
	}
}

// mapTarget is a parsed "-map" value: input_index[:stream_kind[:stream_index]].
type mapTarget struct {
	inputIndex  int
	kind        *kb.StreamKind
	streamIndex *int
}

func parseMapSpec(raw string) (mapTarget, bool) {
	parts := strings.Split(raw, ":")
	if len(parts) == 0 || parts[0] == "" {
		return mapTarget{}, false
	}
	idx, err := strconv.Atoi(parts[0])
	if err != nil {
		return mapTarget{}, false
	}
	mt := mapTarget{inputIndex: idx}

	if len(parts) >= 2 {
		switch parts[1] {
		case "v":
			k := kb.Video
			mt.kind = &k
		case "a":
			k := kb.Audio
			mt.kind = &k
		case "s":
			k := kb.Subtitle
			mt.kind = &k
		default:
			if n, err := strconv.Atoi(parts[1]); err == nil {
				mt.streamIndex = &n
			}
		}
	}
	if mt.kind != nil && len(parts) >= 3 {
		if n, err := strconv.Atoi(parts[2]); err == nil {
			mt.streamIndex = &n
		}
	}
	return mt, true
}

func validateMap(opt ast.Option, cmd *ast.Command, env stream.Environment, acc *diag.Accumulator) {
	if !opt.HasValue() {
		return
	}
	mt, ok := parseMapSpec(opt.RawValue)
	if !ok {
		return
	}
	if mt.inputIndex < 0 || mt.inputIndex >= len(cmd.Inputs) {
		acc.Add(diag.New("E301", diag.SeverityError, fmt.Sprintf("-map references input %d, but only %d input(s) were given", mt.inputIndex, len(cmd.Inputs))).
			Target(opt.ValueSpan, "input index out of range").
			Finish())
		return
	}
	if mt.kind != nil {
		set := env.ByInput[mt.inputIndex]
		if !set.Has(*mt.kind) {
			acc.Add(diag.New("E301", diag.SeverityError, fmt.Sprintf("-map requests a %s stream from input %d, which has none", *mt.kind, mt.inputIndex)).
				Target(opt.ValueSpan, "stream kind not present on the referenced input").
				Reference(cmd.Inputs[mt.inputIndex].PathSpan, "this input").
				Finish())
		}
	}
}

// checkStreamRequirements implements §4.3 Pass B's requested-vs-available
// comparison, choosing E101/E104 (video) or E102/E105 (audio) depending on
// whether the requirement came from a filter (stream-type mismatch, more
// specific) or a bare codec option (generic missing-stream).
func checkStreamRequirements(cmd *ast.Command, out ast.OutputSpec, env stream.Environment, acc *diag.Accumulator) {
	_, disablesVideo := findOption(out.Options, ast.KindNoVideo)
	_, disablesAudio := findOption(out.Options, ast.KindNoAudio)

	vf, hasVF := findOption(out.Options, ast.KindVideoFilter)
	vc, hasVC := findOption(out.Options, ast.KindVideoCodec)
	af, hasAF := findOption(out.Options, ast.KindAudioFilter)
	ac, hasAC := findOption(out.Options, ast.KindAudioCodec)

	available, refSpan, hasRef := resolveAvailability(cmd, out, env)

	if !disablesVideo && (hasVF || hasVC) && !available[kb.Video] {
		target := vc
		code := "E104"
		if hasVF {
			target = vf
			code = "E101"
		}
		b := diag.New(code, diag.SeverityError, "video operation requested, but no video stream is available").
			Target(target.FlagSpan, "video not available for this output")
		if hasRef {
			b = b.Reference(refSpan, "this input provides no video stream")
		}
		acc.Add(b.Finish())
	}

	if !disablesAudio && (hasAF || hasAC) && !available[kb.Audio] {
		target := ac
		code := "E105"
		if hasAF {
			target = af
			code = "E102"
		}
		b := diag.New(code, diag.SeverityError, "audio operation requested, but no audio stream is available").
			Target(target.FlagSpan, "audio not available for this output")
		if hasRef {
			b = b.Reference(refSpan, "this input provides no audio stream")
		}
		acc.Add(b.Finish())
	}
}

// resolveAvailability computes the set of stream kinds reachable by out,
// along with a single representative input span to use as Reference
// context when that set turns out insufficient.
func resolveAvailability(cmd *ast.Command, out ast.OutputSpec, env stream.Environment) (map[kb.StreamKind]bool, token.Span, bool) {
	var maps []mapTarget
	for _, opt := range out.Options {
		if opt.Kind != ast.KindMap || !opt.HasValue() {
			continue
		}
		if mt, ok := parseMapSpec(opt.RawValue); ok && mt.inputIndex >= 0 && mt.inputIndex < len(cmd.Inputs) {
			maps = append(maps, mt)
		}
	}

	if len(maps) > 0 {
		avail := map[kb.StreamKind]bool{}
		for _, mt := range maps {
			set := env.ByInput[mt.inputIndex]
			if mt.kind != nil {
				if set.Has(*mt.kind) {
					avail[*mt.kind] = true
				}
			} else {
				for k := range set.Kinds {
					avail[k] = true
				}
			}
		}
		return avail, cmd.Inputs[maps[0].inputIndex].PathSpan, true
	}

	if len(cmd.Inputs) == 1 {
		return env.ByInput[0].Kinds, cmd.Inputs[0].PathSpan, true
	}
	if len(cmd.Inputs) > 1 {
		return env.Union, cmd.Inputs[0].PathSpan, true
	}
	return env.Union, token.Span{}, false
}
