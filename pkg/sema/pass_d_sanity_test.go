package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chicogong/ffmpeg-lint/pkg/diag"
	"github.com/chicogong/ffmpeg-lint/pkg/lang/parser"
)

func TestPassD_MutualExclusionOfYAndN(t *testing.T) {
	acc := &diag.Accumulator{}
	cmd := parser.Parse("ffmpeg -y -n -i in.mp4 out.mp4", acc)
	passD(cmd, acc)

	msgs := acc.Messages()
	require.NotEmpty(t, msgs)
	assert.Equal(t, "W301", msgs[0].Code)
}

func TestPassD_NoWarningWithOnlyY(t *testing.T) {
	acc := &diag.Accumulator{}
	cmd := parser.Parse("ffmpeg -y -i in.mp4 out.mp4", acc)
	passD(cmd, acc)
	assert.Empty(t, acc.Messages())
}

func TestPassD_DisabledVideoStillConfigured(t *testing.T) {
	acc := &diag.Accumulator{}
	cmd := parser.Parse("ffmpeg -i in.mp4 -vn -c:v h264 out.mp4", acc)
	passD(cmd, acc)

	msgs := acc.Messages()
	require.NotEmpty(t, msgs)
	assert.Equal(t, "W302", msgs[0].Code)
}

func TestPassD_NoContradictionWhenNotDisabled(t *testing.T) {
	acc := &diag.Accumulator{}
	cmd := parser.Parse("ffmpeg -i in.mp4 -c:v h264 out.mp4", acc)
	passD(cmd, acc)
	assert.Empty(t, acc.Messages())
}
