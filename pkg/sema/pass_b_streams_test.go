package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chicogong/ffmpeg-lint/pkg/diag"
	"github.com/chicogong/ffmpeg-lint/pkg/kb"
	"github.com/chicogong/ffmpeg-lint/pkg/lang/parser"
	"github.com/chicogong/ffmpeg-lint/pkg/stream"
)

func TestParseMapSpec(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantIdx int
		wantOK  bool
	}{
		{name: "index only", raw: "0", wantIdx: 0, wantOK: true},
		{name: "index and kind", raw: "1:a", wantIdx: 1, wantOK: true},
		{name: "index, kind, and stream", raw: "1:v:2", wantIdx: 1, wantOK: true},
		{name: "empty", raw: "", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mt, ok := parseMapSpec(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantIdx, mt.inputIndex)
			}
		})
	}
}

func TestPassB_MapReferencesOutOfRangeInput(t *testing.T) {
	acc := &diag.Accumulator{}
	cmd := parser.Parse("ffmpeg -i in.mp4 -map 3:v out.mp4", acc)
	env := stream.Infer(cmd, kb.Default(), acc)
	passB(cmd, env, acc)

	msgs := acc.Messages()
	require.NotEmpty(t, msgs)
	assert.Equal(t, "E301", msgs[0].Code)
}

func TestPassB_MapRequestsAbsentStreamKind(t *testing.T) {
	acc := &diag.Accumulator{}
	cmd := parser.Parse("ffmpeg -i in.mp3 -map 0:v out.mp4", acc)
	env := stream.Infer(cmd, kb.Default(), acc)
	passB(cmd, env, acc)

	msgs := acc.Messages()
	require.NotEmpty(t, msgs)
	assert.Equal(t, "E301", msgs[0].Code)
}

func TestPassB_VideoFilterWithoutVideoStream(t *testing.T) {
	acc := &diag.Accumulator{}
	cmd := parser.Parse("ffmpeg -i in.mp3 -vf scale=640:480 out.mp4", acc)
	env := stream.Infer(cmd, kb.Default(), acc)
	passB(cmd, env, acc)

	msgs := acc.Messages()
	require.NotEmpty(t, msgs)
	assert.Equal(t, "E101", msgs[0].Code)
}

func TestPassB_VideoCodecWithoutVideoStream(t *testing.T) {
	acc := &diag.Accumulator{}
	cmd := parser.Parse("ffmpeg -i in.mp3 -c:v h264 out.mp4", acc)
	env := stream.Infer(cmd, kb.Default(), acc)
	passB(cmd, env, acc)

	msgs := acc.Messages()
	require.NotEmpty(t, msgs)
	assert.Equal(t, "E104", msgs[0].Code)
}

func TestPassB_NoVideoFlagSuppressesRequirement(t *testing.T) {
	acc := &diag.Accumulator{}
	cmd := parser.Parse("ffmpeg -i in.mp3 -vn -c:v h264 -c:a aac out.mp4", acc)
	env := stream.Infer(cmd, kb.Default(), acc)
	passB(cmd, env, acc)

	assert.Empty(t, acc.Messages())
}

func TestPassB_RegularAvFileSatisfiesBothStreams(t *testing.T) {
	acc := &diag.Accumulator{}
	cmd := parser.Parse("ffmpeg -i in.mp4 -c:v h264 -c:a aac out.mp4", acc)
	env := stream.Infer(cmd, kb.Default(), acc)
	passB(cmd, env, acc)

	assert.Empty(t, acc.Messages())
}
