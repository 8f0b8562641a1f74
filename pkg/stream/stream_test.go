package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chicogong/ffmpeg-lint/pkg/diag"
	"github.com/chicogong/ffmpeg-lint/pkg/kb"
	"github.com/chicogong/ffmpeg-lint/pkg/lang/parser"
)

func TestInfer_RecognizedExtensions(t *testing.T) {
	acc := &diag.Accumulator{}
	cmd := parser.Parse("ffmpeg -i a.mp4 -i b.mp3 out.mkv", acc)

	env := Infer(cmd, kb.Default(), acc)

	require.Len(t, env.ByInput, 2)
	assert.True(t, env.ByInput[0].Has(kb.Video))
	assert.True(t, env.ByInput[0].Has(kb.Audio))
	assert.True(t, env.ByInput[1].Has(kb.Audio))
	assert.False(t, env.ByInput[1].Has(kb.Video))
	assert.True(t, env.Union[kb.Video])
	assert.Empty(t, acc.Messages())
}

func TestInfer_UnrecognizedExtensionEmitsInfoAndDefaults(t *testing.T) {
	acc := &diag.Accumulator{}
	cmd := parser.Parse("ffmpeg -i weird.xyz out.mp4", acc)

	env := Infer(cmd, kb.Default(), acc)

	assert.True(t, env.ByInput[0].Has(kb.Video))
	assert.True(t, env.ByInput[0].Has(kb.Audio))

	msgs := acc.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "I101", msgs[0].Code)
	assert.Equal(t, diag.SeverityInfo, msgs[0].Severity)
}
