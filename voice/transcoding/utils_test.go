package transcoding

import (
	"testing"
	"time"

	"github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSilence(t *testing.T) {
	format := &audio.Format{NumChannels: 2, SampleRate: 24000}
	s := Silence(format, 16, 500*time.Millisecond)

	assert.Len(t, s.Data, 12000*2)
	assert.Equal(t, 24000, s.Format.SampleRate)
	assert.Equal(t, 2, s.Format.NumChannels)
	assert.Equal(t, 16, s.SourceBitDepth)
	assert.Equal(t, 500*time.Millisecond, Duration(s))
	for _, v := range s.Data {
		assert.Zero(t, v)
	}
}

func TestSilenceTruncatesPartialFrames(t *testing.T) {
	format := &audio.Format{NumChannels: 1, SampleRate: 44100}

	// 44100 * 1 / 1000 = 44.1
	s := Silence(format, 16, time.Millisecond)
	assert.Len(t, s.Data, 44)

	assert.Empty(t, Silence(format, 16, 0).Data)
}

func TestConcat(t *testing.T) {
	format := &audio.Format{NumChannels: 1, SampleRate: 8000}
	a := &audio.IntBuffer{Format: format, Data: []int{0, 0}, SourceBitDepth: 16}
	b := &audio.IntBuffer{Format: format, Data: []int{5, 6, 7}, SourceBitDepth: 16}

	out, err := Concat(a, b, a)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 5, 6, 7, 0, 0}, out.Data)
	assert.Equal(t, 16, out.SourceBitDepth)

	// inputs are left alone
	assert.Equal(t, []int{0, 0}, a.Data)
}

func TestConcatMismatch(t *testing.T) {
	a := &audio.IntBuffer{Format: &audio.Format{NumChannels: 1, SampleRate: 8000}, Data: []int{1}}
	b := &audio.IntBuffer{Format: &audio.Format{NumChannels: 2, SampleRate: 8000}, Data: []int{1, 1}}
	c := &audio.IntBuffer{Format: &audio.Format{NumChannels: 1, SampleRate: 16000}, Data: []int{1}}

	_, err := Concat(a, b)
	assert.ErrorIs(t, err, ErrFormatMismatch)

	_, err = Concat(a, c)
	assert.ErrorIs(t, err, ErrFormatMismatch)

	_, err = Concat()
	assert.Error(t, err)
}

func TestDuration(t *testing.T) {
	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: 2, SampleRate: 48000},
		Data:   make([]int, 48000*2*3),
	}
	assert.Equal(t, 3*time.Second, Duration(buf))

	assert.Zero(t, Duration(nil))
	assert.Zero(t, Duration(&audio.IntBuffer{Data: []int{1}}))
}
