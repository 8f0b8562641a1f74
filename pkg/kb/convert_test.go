package kb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseResolution(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Resolution
		wantErr bool
	}{
		{name: "valid", in: "1920x1080", want: Resolution{1920, 1080}},
		{name: "uppercase x", in: "1280X720", want: Resolution{1280, 720}},
		{name: "missing separator", in: "1920", wantErr: true},
		{name: "zero height", in: "1920x0", wantErr: true},
		{name: "too large", in: "99999x99999", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseResolution(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBitrate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    float64
		wantErr bool
	}{
		{name: "plain bps", in: "128000", want: 128000},
		{name: "kilobits", in: "128k", want: 128000},
		{name: "megabits", in: "2M", want: 2000000},
		{name: "decimal kilobits", in: "1.5k", want: 1500},
		{name: "garbage", in: "abc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBitrate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFrameRate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    float64
		wantErr bool
	}{
		{name: "integer", in: "30", want: 30},
		{name: "decimal", in: "29.97", want: 29.97},
		{name: "rational", in: "30000/1001", want: 30000.0 / 1001.0},
		{name: "zero denominator", in: "1/0", wantErr: true},
		{name: "non-positive", in: "0", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFrameRate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParsePositiveInt(t *testing.T) {
	n, err := ParsePositiveInt("44100")
	assert.NoError(t, err)
	assert.Equal(t, 44100, n)

	_, err = ParsePositiveInt("-1")
	assert.Error(t, err)

	_, err = ParsePositiveInt("nope")
	assert.Error(t, err)
}

func TestLooksLikeTimecodeOrSeconds(t *testing.T) {
	assert.True(t, LooksLikeTimecodeOrSeconds("00:00:10"))
	assert.True(t, LooksLikeTimecodeOrSeconds("10.5"))
	assert.False(t, LooksLikeTimecodeOrSeconds("not-a-time"))
}
