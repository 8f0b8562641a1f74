// Package ast defines the typed tree produced by pkg/lang/parser.
package ast

import "github.com/chicogong/ffmpeg-lint/pkg/lang/token"

// Kind discriminates the recognized FFmpeg option surface (§6).
type Kind string

const (
	KindGlobalFlag   Kind = "GlobalFlag"   // -y, -n, -hide_banner, -stats
	KindGlobalValued Kind = "GlobalValued" // -v <level>
	KindFormat       Kind = "Format"       // -f <fmt>
	KindSeek         Kind = "Seek"         // -ss <time>
	KindDuration     Kind = "Duration"     // -t <dur>
	KindStreamLoop   Kind = "StreamLoop"   // -stream_loop <n>
	KindVideoCodec   Kind = "VideoCodec"   // -c:v, -vcodec
	KindAudioCodec   Kind = "AudioCodec"   // -c:a, -acodec
	KindVideoBitrate Kind = "VideoBitrate" // -b:v, -vb
	KindAudioBitrate Kind = "AudioBitrate" // -b:a, -ab
	KindResolution   Kind = "Resolution"   // -s
	KindFrameRate    Kind = "FrameRate"    // -r
	KindVideoFilter  Kind = "VideoFilter"  // -vf
	KindAudioFilter  Kind = "AudioFilter"  // -af
	KindFilterComplex Kind = "FilterComplex" // -filter_complex
	KindNoVideo      Kind = "NoVideo"      // -vn
	KindNoAudio      Kind = "NoAudio"      // -an
	KindSampleRate   Kind = "SampleRate"   // -ar
	KindChannels     Kind = "Channels"     // -ac
	KindMap          Kind = "Map"          // -map
	KindUnknown      Kind = "Unknown"      // -c/-b with an unsupported stream specifier
)

// Option is an immutable parsed CLI flag, optionally carrying a value.
type Option struct {
	Kind Kind

	// FlagSpan covers the raw flag token ("-c:v"); ValueSpan covers the
	// value token, if any (zero Span when the option takes no value).
	FlagSpan token.Span
	ValueSpan token.Span

	// RawFlag/RawValue are the literal source texts (quotes stripped from
	// RawValue, per pkg/lang/lexer).
	RawFlag  string
	RawValue string

	// Spec is the stream specifier suffix on the flag, e.g. "v" for
	// "-c:v", "" when absent.
	Spec string
}

// HasValue reports whether the option carries a value token.
func (o Option) HasValue() bool {
	return o.RawValue != "" || o.ValueSpan != (token.Span{})
}

// InputSpec is one `{[inopts] -i file}` block.
type InputSpec struct {
	Options []Option
	Path    string
	PathSpan token.Span
	IFlagSpan token.Span
	Index   int // 0-based position among inputs
}

// OutputSpec is one `{[outopts] file}` block.
type OutputSpec struct {
	Options []Option
	Path    string
	PathSpan token.Span
	Index   int // 0-based position among outputs
}

// Command is the root AST node.
type Command struct {
	Global  []Option
	Inputs  []InputSpec
	Outputs []OutputSpec
	Span    token.Span

	// Malformed records structural recovery: true when the parser could
	// not find the minimum required shape (>=1 input, >=1 output).
	Malformed bool
}
