package offset

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chicogong/ffmpeg-lint/pkg/lang/token"
)

func TestMapper_Position_FirstLineAppliesColumnOffset(t *testing.T) {
	m := New(10, 8)
	got := m.Position(token.Position{Line: 1, Column: 5})
	assert.Equal(t, token.Position{Line: 10, Column: 13}, got)
}

func TestMapper_Position_LaterLinesIgnoreColumnOffset(t *testing.T) {
	m := New(10, 8)
	got := m.Position(token.Position{Line: 2, Column: 5})
	assert.Equal(t, token.Position{Line: 11, Column: 5}, got)
}

func TestMapper_Position_NoOffsetIsIdentity(t *testing.T) {
	m := New(1, 0)
	p := token.Position{Line: 3, Column: 7}
	assert.Equal(t, token.Position{Line: 3, Column: 7}, m.Position(p))
}

func TestMapper_Span(t *testing.T) {
	m := New(5, 2)
	s := token.Span{Start: token.Position{Line: 1, Column: 0}, End: token.Position{Line: 1, Column: 4}}
	got := m.Span(s)
	assert.Equal(t, token.Span{Start: token.Position{Line: 5, Column: 2}, End: token.Position{Line: 5, Column: 6}}, got)
}
