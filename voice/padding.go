package voice

import (
	"errors"
	"fmt"
	"time"

	"gtranslate/utils"
	"gtranslate/voice/transcoding"
)

// MaxDelay is the longest silence Pad adds to either end.
const MaxDelay = 15 * time.Second

var ErrInvalidDelay = errors.New("delay out of range")

// Pad surrounds the audio with delay worth of silence on both ends and
// re-encodes the result as WAV. A zero delay returns a untouched.
//
// Decode failures come back as *transcoding.DecodeError.
func Pad(a Audio, delay time.Duration) (Audio, error) {
	if delay == 0 {
		return a, nil
	}
	if delay < 0 || delay > MaxDelay {
		return Audio{}, fmt.Errorf("%w: %s", ErrInvalidDelay, delay)
	}

	pcm, err := transcoding.Decode(a.Data, a.Format)
	if err != nil {
		return Audio{}, err
	}

	silence := transcoding.Silence(pcm.Format, pcm.SourceBitDepth, delay)
	padded, err := transcoding.Concat(silence, pcm, silence)
	if err != nil {
		return Audio{}, fmt.Errorf("failed to join silence; %w", err)
	}

	out := utils.NewWriteSeekBuffer()
	if err := transcoding.PCMToWav(padded, out); err != nil {
		return Audio{}, fmt.Errorf("failed to encode wav; %w", err)
	}

	return Audio{Format: transcoding.FormatWAV, Data: out.Bytes()}, nil
}
