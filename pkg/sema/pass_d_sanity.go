package sema

import (
	"github.com/chicogong/ffmpeg-lint/pkg/diag"
	"github.com/chicogong/ffmpeg-lint/pkg/lang/ast"
)

// passD checks cross-option sanity that doesn't belong to parameter
// grammars, stream requirements, or container compatibility: contradictory
// combinations of otherwise individually-valid options. These codes are
// additive (not in the original error-code table) since no single option
// value is malformed on its own.
func passD(cmd *ast.Command, acc *diag.Accumulator) {
	checkGlobalMutualExclusion(cmd, acc)
	for _, out := range cmd.Outputs {
		checkDisabledStreamContradiction(out, acc)
	}
}

// checkGlobalMutualExclusion flags -y and -n both present: FFmpeg itself
// takes whichever was given last, so their coexistence is almost always an
// authoring mistake rather than an intentional override.
func checkGlobalMutualExclusion(cmd *ast.Command, acc *diag.Accumulator) {
	var y, n ast.Option
	haveY, haveN := false, false
	for _, o := range cmd.Global {
		switch o.RawFlag {
		case "-y":
			y, haveY = o, true
		case "-n":
			n, haveN = o, true
		}
	}
	if haveY && haveN {
		acc.Add(diag.New("W301", diag.SeverityWarning, "-y and -n are mutually exclusive; the later one on the command line wins").
			Target(n.FlagSpan, "conflicts with -y").
			Reference(y.FlagSpan, "-y given here").
			Finish())
	}
}

// checkDisabledStreamContradiction flags an output that both disables a
// stream kind (-vn/-an) and configures it (codec, filter, bitrate, etc.).
func checkDisabledStreamContradiction(out ast.OutputSpec, acc *diag.Accumulator) {
	if vn, ok := findOption(out.Options, ast.KindNoVideo); ok {
		if conflicting, ok := findAnyOption(out.Options, ast.KindVideoCodec, ast.KindVideoBitrate, ast.KindVideoFilter, ast.KindResolution, ast.KindFrameRate); ok {
			acc.Add(diag.New("W302", diag.SeverityWarning, "video is disabled by -vn but this output also configures video options").
				Target(conflicting.FlagSpan, "has no effect: video is disabled").
				Reference(vn.FlagSpan, "-vn given here").
				Finish())
		}
	}
	if an, ok := findOption(out.Options, ast.KindNoAudio); ok {
		if conflicting, ok := findAnyOption(out.Options, ast.KindAudioCodec, ast.KindAudioBitrate, ast.KindAudioFilter, ast.KindSampleRate, ast.KindChannels); ok {
			acc.Add(diag.New("W302", diag.SeverityWarning, "audio is disabled by -an but this output also configures audio options").
				Target(conflicting.FlagSpan, "has no effect: audio is disabled").
				Reference(an.FlagSpan, "-an given here").
				Finish())
		}
	}
}

func findAnyOption(opts []ast.Option, kinds ...ast.Kind) (ast.Option, bool) {
	for _, k := range kinds {
		if o, ok := findOption(opts, k); ok {
			return o, true
		}
	}
	return ast.Option{}, false
}
