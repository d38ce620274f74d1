package transcoding

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
)

const (
	FormatMP3 = "mp3"
	FormatWAV = "wav"
)

const (
	mp3Channels int = 2  // go-mp3 always outputs stereo, see downmixIdentical
	mp3BitDepth int = 16 // as little endian int16
)

var (
	ErrEmptyInput        = errors.New("empty audio input")
	ErrNoSamples         = errors.New("no samples decoded")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

// DecodeError is returned when an encoded audio stream can't be
// turned into PCM samples.
type DecodeError struct {
	Format string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s audio; %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decode encoded audio of the given format into a PCM buffer
func Decode(data []byte, format string) (*audio.IntBuffer, error) {
	switch format {
	case FormatMP3:
		return MP3ToPCM(data)
	case FormatWAV:
		return WavToPCM(data)
	default:
		return nil, &DecodeError{Format: format, Err: ErrUnsupportedFormat}
	}
}

// read mp3 data to PCM buffer
func MP3ToPCM(data []byte) (*audio.IntBuffer, error) {
	if len(data) == 0 {
		return nil, &DecodeError{Format: FormatMP3, Err: ErrEmptyInput}
	}

	decoder, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Format: FormatMP3, Err: fmt.Errorf("failed to construct decoder; %w", err)}
	}

	raw, err := io.ReadAll(decoder)
	if err != nil {
		return nil, &DecodeError{Format: FormatMP3, Err: fmt.Errorf("failed to read decoder output; %w", err)}
	}

	samples := make([]int, len(raw)/2)
	for i := range samples {
		samples[i] = int(int16(binary.LittleEndian.Uint16(raw[i*2:])))
	}
	if len(samples) == 0 {
		return nil, &DecodeError{Format: FormatMP3, Err: ErrNoSamples}
	}

	return downmixIdentical(&audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: mp3Channels,
			SampleRate:  decoder.SampleRate(),
		},
		Data:           samples,
		SourceBitDepth: mp3BitDepth,
	}), nil
}

// CheckMP3 reports whether data starts with something go-mp3 accepts
// as an MP3 frame, without decoding the whole stream.
func CheckMP3(data []byte) error {
	if len(data) == 0 {
		return ErrEmptyInput
	}
	if _, err := mp3.NewDecoder(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("not an mp3 stream; %w", err)
	}
	return nil
}

// go-mp3 duplicates mono streams into both channels,
// fold them back when left and right never differ
func downmixIdentical(buf *audio.IntBuffer) *audio.IntBuffer {
	if buf.Format.NumChannels != 2 {
		return buf
	}
	for i := 0; i+1 < len(buf.Data); i += 2 {
		if buf.Data[i] != buf.Data[i+1] {
			return buf
		}
	}

	mono := make([]int, len(buf.Data)/2)
	for i := range mono {
		mono[i] = buf.Data[i*2]
	}

	return &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: buf.Format.SampleRate},
		Data:           mono,
		SourceBitDepth: buf.SourceBitDepth,
	}
}

// read wav data to PCM buffer
func WavToPCM(data []byte) (*audio.IntBuffer, error) {
	if len(data) == 0 {
		return nil, &DecodeError{Format: FormatWAV, Err: ErrEmptyInput}
	}

	decoder := wav.NewDecoder(bytes.NewReader(data))
	if !decoder.IsValidFile() {
		return nil, &DecodeError{Format: FormatWAV, Err: errors.New("invalid wav header")}
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, &DecodeError{Format: FormatWAV, Err: fmt.Errorf("failed to read pcm data; %w", err)}
	}
	if buf == nil || len(buf.Data) == 0 {
		return nil, &DecodeError{Format: FormatWAV, Err: ErrNoSamples}
	}

	buf.Format = &audio.Format{
		NumChannels: int(decoder.NumChans),
		SampleRate:  int(decoder.SampleRate),
	}
	buf.SourceBitDepth = int(decoder.BitDepth)
	return buf, nil
}
