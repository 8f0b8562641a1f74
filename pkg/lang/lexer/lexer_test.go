package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chicogong/ffmpeg-lint/pkg/lang/token"
)

func TestLexer_All(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Token
	}{
		{
			name:  "program name and flag",
			input: "ffmpeg -y",
			want: []token.Token{
				{Type: token.FFMPEG, Literal: "ffmpeg", Span: token.Span{Start: token.Position{1, 0}, End: token.Position{1, 6}}},
				{Type: token.FLAG, Literal: "-y", Span: token.Span{Start: token.Position{1, 7}, End: token.Position{1, 9}}},
				{Type: token.EOF, Span: token.Span{Start: token.Position{1, 9}, End: token.Position{1, 9}}},
			},
		},
		{
			name:  "spec-suffixed flag",
			input: "-c:v",
			want: []token.Token{
				{Type: token.FLAG, Literal: "-c", Spec: "v", Span: token.Span{Start: token.Position{1, 0}, End: token.Position{1, 4}}},
				{Type: token.EOF, Span: token.Span{Start: token.Position{1, 4}, End: token.Position{1, 4}}},
			},
		},
		{
			name:  "bare word",
			input: "output.mp4",
			want: []token.Token{
				{Type: token.WORD, Literal: "output.mp4", Span: token.Span{Start: token.Position{1, 0}, End: token.Position{1, 10}}},
				{Type: token.EOF, Span: token.Span{Start: token.Position{1, 10}, End: token.Position{1, 10}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.input).All()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLexer_QuotedValuePreservesRawSpanStripsLiteral(t *testing.T) {
	toks := New(`-vf "scale=640:480"`).All()
	assert.Equal(t, token.FLAG, toks[0].Type)
	assert.Equal(t, token.WORD, toks[1].Type)
	assert.Equal(t, "scale=640:480", toks[1].Literal)
	assert.Equal(t, token.Position{Line: 1, Column: 4}, toks[1].Span.Start)
	assert.Equal(t, token.Position{Line: 1, Column: 19}, toks[1].Span.End)
}

func TestLexer_FfmpegIsCaseInsensitive(t *testing.T) {
	toks := New("FFmpeg -y").All()
	assert.Equal(t, token.FFMPEG, toks[0].Type)
}

func TestLexer_NextTokenAfterEOFStaysEOF(t *testing.T) {
	l := New("")
	first := l.NextToken()
	second := l.NextToken()
	assert.Equal(t, token.EOF, first.Type)
	assert.Equal(t, first, second)
}
