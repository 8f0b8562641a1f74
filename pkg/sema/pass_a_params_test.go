package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chicogong/ffmpeg-lint/pkg/diag"
	"github.com/chicogong/ffmpeg-lint/pkg/kb"
	"github.com/chicogong/ffmpeg-lint/pkg/lang/parser"
)

func codesOf(msgs []diag.Message) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.Code
	}
	return out
}

func TestPassA_MalformedResolution(t *testing.T) {
	acc := &diag.Accumulator{}
	cmd := parser.Parse("ffmpeg -i in.mp4 -s not-a-size out.mp4", acc)
	passA(cmd, kb.Default(), acc)
	assert.Contains(t, codesOf(acc.Messages()), "E401")
}

func TestPassA_BitrateOverThresholdWarns(t *testing.T) {
	acc := &diag.Accumulator{}
	cmd := parser.Parse("ffmpeg -i in.mp4 -b:v 100M out.mp4", acc)
	passA(cmd, kb.Default(), acc)
	msgs := acc.Messages()
	require.NotEmpty(t, msgs)
	assert.Equal(t, "W101", msgs[0].Code)
}

func TestPassA_MalformedSampleRate(t *testing.T) {
	acc := &diag.Accumulator{}
	cmd := parser.Parse("ffmpeg -i in.mp4 -ar notanumber out.mp4", acc)
	passA(cmd, kb.Default(), acc)
	assert.Contains(t, codesOf(acc.Messages()), "E405")
}

func TestPassA_ChannelsOutOfRange(t *testing.T) {
	acc := &diag.Accumulator{}
	cmd := parser.Parse("ffmpeg -i in.mp4 -ac 64 out.mp4", acc)
	passA(cmd, kb.Default(), acc)
	assert.Contains(t, codesOf(acc.Messages()), "E404")
}

func TestPassA_UnknownCodecWarns(t *testing.T) {
	acc := &diag.Accumulator{}
	cmd := parser.Parse("ffmpeg -i in.mp4 -c:v nosuchcodec out.mp4", acc)
	passA(cmd, kb.Default(), acc)
	assert.Contains(t, codesOf(acc.Messages()), "W201")
}

func TestPassA_CodecKindMismatch(t *testing.T) {
	acc := &diag.Accumulator{}
	cmd := parser.Parse("ffmpeg -i in.mp4 -c:v aac out.mp4", acc)
	passA(cmd, kb.Default(), acc)
	assert.Contains(t, codesOf(acc.Messages()), "E205")
}

func TestPassA_UnknownFilterInChain(t *testing.T) {
	acc := &diag.Accumulator{}
	cmd := parser.Parse("ffmpeg -i in.mp4 -vf notafilter out.mp4", acc)
	passA(cmd, kb.Default(), acc)
	msgs := acc.Messages()
	require.NotEmpty(t, msgs)
	assert.Equal(t, "E502", msgs[0].Code)
	require.NotNil(t, msgs[0].Rich)
	assert.NotEmpty(t, msgs[0].Rich.Blocks)
}

func TestPassA_AudioFilterInVideoChainMismatches(t *testing.T) {
	acc := &diag.Accumulator{}
	cmd := parser.Parse("ffmpeg -i in.mp4 -vf volume=2 out.mp4", acc)
	passA(cmd, kb.Default(), acc)
	assert.Contains(t, codesOf(acc.Messages()), "E101")
}

func TestPassA_ValidFilterChainNoDiagnostic(t *testing.T) {
	acc := &diag.Accumulator{}
	cmd := parser.Parse("ffmpeg -i in.mp4 -vf scale=640:480,hflip out.mp4", acc)
	passA(cmd, kb.Default(), acc)
	assert.Empty(t, acc.Messages())
}
