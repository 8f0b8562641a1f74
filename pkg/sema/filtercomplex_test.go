package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chicogong/ffmpeg-lint/pkg/diag"
	"github.com/chicogong/ffmpeg-lint/pkg/lang/parser"
)

func TestSegmentLabels(t *testing.T) {
	ins, outs := segmentLabels("[0:v][1:v]overlay[tmp]")
	require.Len(t, ins, 2)
	require.Len(t, outs, 1)
	assert.Equal(t, "0:v", ins[0].text)
	assert.Equal(t, "1:v", ins[1].text)
	assert.Equal(t, "tmp", outs[0].text)
}

func TestSegmentLabels_OutputOnly(t *testing.T) {
	ins, outs := segmentLabels("testsrc[bg]")
	assert.Empty(t, ins)
	require.Len(t, outs, 1)
	assert.Equal(t, "bg", outs[0].text)
}

func TestSegmentLabels_NoLabels(t *testing.T) {
	ins, outs := segmentLabels("hflip")
	assert.Empty(t, ins)
	assert.Empty(t, outs)
}

func TestValidateFilterComplex_MissingLabel(t *testing.T) {
	acc := &diag.Accumulator{}
	cmd := parser.Parse(`ffmpeg -i a.mp4 -i b.mp4 -filter_complex [0:v][nosuch]overlay[out] -map [out] o.mp4`, acc)
	passFilterComplex(cmd, acc)

	msgs := acc.Messages()
	require.NotEmpty(t, msgs)
	assert.Equal(t, "E303", msgs[0].Code)
}

func TestValidateFilterComplex_ChainedSegmentsResolve(t *testing.T) {
	acc := &diag.Accumulator{}
	cmd := parser.Parse(`ffmpeg -i a.mp4 -i b.mp4 -filter_complex [0:v]scale=640:480[scaled];[scaled][1:v]overlay[out] o.mp4`, acc)
	passFilterComplex(cmd, acc)

	assert.Empty(t, acc.Messages())
}
