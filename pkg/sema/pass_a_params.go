package sema

import (
	"fmt"

	"github.com/chicogong/ffmpeg-lint/pkg/diag"
	"github.com/chicogong/ffmpeg-lint/pkg/kb"
	"github.com/chicogong/ffmpeg-lint/pkg/lang/ast"
)

const (
	maxVideoBitrateBPS = 50_000_000.0
	maxAudioBitrateBPS = 2_000_000.0
	minSampleRateHz    = 8000
	maxSampleRateHz    = 192000
)

// passA validates every option's value against its parameter grammar,
// generalized from the teacher's ParameterValidator/ValidationRules
// (pkg/operators/validator.go, pkg/operators/parameters.go) from
// JSON-typed operator parameters to token-typed FFmpeg option values.
func passA(cmd *ast.Command, reg *kb.Registry, acc *diag.Accumulator) {
	for _, group := range allOptionGroups(cmd) {
		for _, opt := range group {
			validateOption(opt, reg, acc)
		}
	}
}

func validateOption(opt ast.Option, reg *kb.Registry, acc *diag.Accumulator) {
	if !opt.HasValue() {
		return
	}

	switch opt.Kind {
	case ast.KindResolution:
		if _, err := kb.ParseResolution(opt.RawValue); err != nil {
			acc.Add(diag.New("E401", diag.SeverityError, fmt.Sprintf("malformed resolution %q: expected WIDTHxHEIGHT", opt.RawValue)).
				Target(opt.ValueSpan, "not a valid WIDTHxHEIGHT value").
				Finish())
		}

	case ast.KindVideoBitrate, ast.KindAudioBitrate:
		validateBitrate(opt, acc)

	case ast.KindFrameRate:
		if _, err := kb.ParseFrameRate(opt.RawValue); err != nil {
			acc.Add(diag.New("E403", diag.SeverityError, fmt.Sprintf("malformed frame rate %q", opt.RawValue)).
				Target(opt.ValueSpan, "expected a positive integer, decimal, or A/B rational").
				Finish())
		}

	case ast.KindSampleRate:
		validateSampleRate(opt, acc)

	case ast.KindChannels:
		validateChannels(opt, acc)

	case ast.KindVideoCodec:
		validateCodec(opt, kb.Video, reg, acc)

	case ast.KindAudioCodec:
		validateCodec(opt, kb.Audio, reg, acc)

	case ast.KindVideoFilter:
		validateFilterChain(opt, kb.Video, reg, acc)

	case ast.KindAudioFilter:
		validateFilterChain(opt, kb.Audio, reg, acc)

	case ast.KindMap:
		// Validated by validateMap in pass_b_streams.go, which needs the
		// inferred StreamEnvironment.
	}
}

func validateBitrate(opt ast.Option, acc *diag.Accumulator) {
	bps, err := kb.ParseBitrate(opt.RawValue)
	if err != nil {
		acc.Add(diag.New("E402", diag.SeverityError, fmt.Sprintf("malformed bitrate %q", opt.RawValue)).
			Target(opt.ValueSpan, "expected digits optionally followed by k/K/M/m").
			Finish())
		return
	}

	threshold := maxAudioBitrateBPS
	label := "audio"
	if opt.Kind == ast.KindVideoBitrate {
		threshold = maxVideoBitrateBPS
		label = "video"
	}
	if bps > threshold {
		acc.Add(diag.New("W101", diag.SeverityWarning, fmt.Sprintf("%s bitrate %q exceeds the typical %g Mbps threshold", label, opt.RawValue, threshold/1_000_000)).
			Target(opt.ValueSpan, "unusually high bitrate").
			Finish())
	}
}

func validateSampleRate(opt ast.Option, acc *diag.Accumulator) {
	n, err := kb.ParsePositiveInt(opt.RawValue)
	if err != nil {
		acc.Add(diag.New("E405", diag.SeverityError, fmt.Sprintf("malformed sample rate %q", opt.RawValue)).
			Target(opt.ValueSpan, "expected a positive integer").
			Finish())
		return
	}
	if n < minSampleRateHz || n > maxSampleRateHz {
		acc.Add(diag.New("W102", diag.SeverityWarning, fmt.Sprintf("sample rate %d Hz is outside the typical [%d, %d] range", n, minSampleRateHz, maxSampleRateHz)).
			Target(opt.ValueSpan, "unusual sample rate").
			Finish())
	}
}

func validateChannels(opt ast.Option, acc *diag.Accumulator) {
	n, err := kb.ParsePositiveInt(opt.RawValue)
	if err != nil || n < 1 || n > 8 {
		acc.Add(diag.New("E404", diag.SeverityError, fmt.Sprintf("malformed channel count %q: expected an integer from 1 to 8", opt.RawValue)).
			Target(opt.ValueSpan, "invalid channel count").
			Finish())
	}
}

func validateCodec(opt ast.Option, want kb.StreamKind, reg *kb.Registry, acc *diag.Accumulator) {
	codec, ok := reg.Codec(opt.RawValue)
	if !ok {
		acc.Add(diag.New("W201", diag.SeverityWarning, fmt.Sprintf("unknown codec %q", opt.RawValue)).
			Target(opt.ValueSpan, "not in the codec catalog").
			Finish())
		return
	}
	if codec.Kind != want {
		acc.Add(diag.New("E205", diag.SeverityError, fmt.Sprintf("%q is a %s codec, not valid for the %s slot", opt.RawValue, codec.Kind, want)).
			Target(opt.ValueSpan, fmt.Sprintf("expected a %s codec", want)).
			Finish())
	}
}

func validateFilterChain(opt ast.Option, chainKind kb.StreamKind, reg *kb.Registry, acc *diag.Accumulator) {
	mismatchCode := "E101"
	if chainKind == kb.Audio {
		mismatchCode = "E102"
	}
	chainFlag := "-vf"
	if chainKind == kb.Audio {
		chainFlag = "-af"
	}

	for _, inv := range parseFilterChain(opt.RawValue) {
		if inv.name == "" {
			continue
		}
		nameSpan := subSpan(opt.ValueSpan, inv.nameOff, len(inv.name))

		filt, ok := reg.Filter(inv.name)
		if !ok {
			acc.Add(diag.New("E502", diag.SeverityError, fmt.Sprintf("unknown filter %q", inv.name)).
				Target(nameSpan, "not in the filter catalog").
				Rich(filterCatalogHint(reg, chainKind)...).
				Finish())
			continue
		}

		if filt.Accepts != chainKind {
			acc.Add(diag.New(mismatchCode, diag.SeverityError,
				fmt.Sprintf("%q is a %s filter and cannot appear in a %s chain (%s)", inv.name, filt.Accepts, chainKind, chainFlag)).
				Target(nameSpan, fmt.Sprintf("expected a %s filter here", chainKind)).
				Rich(streamMismatchRich(mismatchCode)...).
				Finish())
		}
	}
}
