package transcoding

import (
	"errors"
	"time"

	"github.com/go-audio/audio"
)

var ErrFormatMismatch = errors.New("pcm buffers differ in format")

// Silence creates a zeroed buffer lasting d in the given format.
// Partial frames are truncated.
func Silence(format *audio.Format, bitDepth int, d time.Duration) *audio.IntBuffer {
	frames := int(int64(format.SampleRate) * d.Milliseconds() / 1000)
	if frames < 0 {
		frames = 0
	}

	return &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: format.NumChannels, SampleRate: format.SampleRate},
		Data:           make([]int, frames*format.NumChannels),
		SourceBitDepth: bitDepth,
	}
}

// Concat joins buffers end to end. Every buffer must share the
// sample rate and channel count of the first one.
func Concat(bufs ...*audio.IntBuffer) (*audio.IntBuffer, error) {
	if len(bufs) == 0 {
		return nil, errors.New("nothing to concatenate")
	}

	first := bufs[0]
	total := 0
	for _, b := range bufs {
		if b.Format == nil || first.Format == nil ||
			b.Format.SampleRate != first.Format.SampleRate ||
			b.Format.NumChannels != first.Format.NumChannels {
			return nil, ErrFormatMismatch
		}
		total += len(b.Data)
	}

	data := make([]int, 0, total)
	for _, b := range bufs {
		data = append(data, b.Data...)
	}

	return &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: first.Format.NumChannels, SampleRate: first.Format.SampleRate},
		Data:           data,
		SourceBitDepth: first.SourceBitDepth,
	}, nil
}

// Duration of the samples held in buf
func Duration(buf *audio.IntBuffer) time.Duration {
	if buf == nil || buf.Format == nil || buf.Format.SampleRate == 0 || buf.Format.NumChannels == 0 {
		return 0
	}

	seconds := float64(len(buf.Data)) / (float64(buf.Format.SampleRate) * float64(buf.Format.NumChannels))
	return time.Duration(seconds * float64(time.Second))
}
