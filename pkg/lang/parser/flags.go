package parser

import "github.com/chicogong/ffmpeg-lint/pkg/lang/ast"

// flagTable answers, for a known flag base name (the part before any ":spec"
// suffix), whether it consumes a following value token. Flags absent from
// the table build no Option: the parser reports them (E501) and recovers by
// consuming exactly that one token (§4.1).
var flagTable = map[string]bool{
	"-y":              false,
	"-n":              false,
	"-hide_banner":    false,
	"-stats":          false,
	"-v":              true,
	"-f":              true,
	"-ss":             true,
	"-t":              true,
	"-stream_loop":    true,
	"-c":              true,
	"-vcodec":         true,
	"-acodec":         true,
	"-b":              true,
	"-vb":             true,
	"-ab":             true,
	"-s":              true,
	"-r":              true,
	"-vf":             true,
	"-af":             true,
	"-filter_complex": true,
	"-vn":             false,
	"-an":             false,
	"-ar":             true,
	"-ac":             true,
	"-map":            true,
}

// hasValue reports whether base (the flag sans stream specifier) takes a
// value token. Unknown flags are assumed value-less, per the single-token
// recovery rule in §4.1.
func hasValue(base string) bool {
	v, ok := flagTable[base]
	return ok && v
}

// known reports whether base is a recognized flag.
func known(base string) bool {
	_, ok := flagTable[base]
	return ok
}

// resolveKind maps a (base, stream-specifier) pair to an ast.Kind, per the
// recognized option surface in §6.
func resolveKind(base, spec string) ast.Kind {
	switch base {
	case "-y", "-n", "-hide_banner", "-stats":
		return ast.KindGlobalFlag
	case "-v":
		return ast.KindGlobalValued
	case "-f":
		return ast.KindFormat
	case "-ss":
		return ast.KindSeek
	case "-t":
		return ast.KindDuration
	case "-stream_loop":
		return ast.KindStreamLoop
	case "-vcodec":
		return ast.KindVideoCodec
	case "-acodec":
		return ast.KindAudioCodec
	case "-c":
		switch spec {
		case "v":
			return ast.KindVideoCodec
		case "a":
			return ast.KindAudioCodec
		default:
			return ast.KindUnknown
		}
	case "-b":
		switch spec {
		case "v":
			return ast.KindVideoBitrate
		case "a":
			return ast.KindAudioBitrate
		default:
			return ast.KindUnknown
		}
	case "-vb":
		return ast.KindVideoBitrate
	case "-ab":
		return ast.KindAudioBitrate
	case "-s":
		return ast.KindResolution
	case "-r":
		return ast.KindFrameRate
	case "-vf":
		return ast.KindVideoFilter
	case "-af":
		return ast.KindAudioFilter
	case "-filter_complex":
		return ast.KindFilterComplex
	case "-vn":
		return ast.KindNoVideo
	case "-an":
		return ast.KindNoAudio
	case "-ar":
		return ast.KindSampleRate
	case "-ac":
		return ast.KindChannels
	case "-map":
		return ast.KindMap
	default:
		return ast.KindUnknown
	}
}

// isGlobalKind reports whether k belongs in Command.Global rather than an
// individual InputSpec/OutputSpec's option list (§3 Command).
func isGlobalKind(k ast.Kind) bool {
	return k == ast.KindGlobalFlag || k == ast.KindGlobalValued
}
