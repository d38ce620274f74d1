package transcoding

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	defaultBitDepth int = 16
	wavFormatPCM    int = 1
)

// Encode a PCM buffer as a WAV container into output.
// The encoder patches the header on close, hence the seeker.
func PCMToWav(pcm *audio.IntBuffer, output io.WriteSeeker) error {
	if pcm == nil || pcm.Format == nil {
		return errors.New("pcm buffer has no format")
	}

	bitDepth := pcm.SourceBitDepth
	if bitDepth == 0 {
		bitDepth = defaultBitDepth
	}

	e := wav.NewEncoder(output, pcm.Format.SampleRate, bitDepth, pcm.Format.NumChannels, wavFormatPCM)
	if err := e.Write(pcm); err != nil {
		return fmt.Errorf("failed to write wav samples; %w", err)
	}

	return e.Close()
}
