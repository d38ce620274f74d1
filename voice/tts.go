package voice

import (
	"context"
	"errors"
	"fmt"
)

var ErrEmptyText = errors.New("nothing to speak")

// Audio is an encoded audio stream tagged with its container
// format, "mp3" or "wav".
type Audio struct {
	Format string
	Data   []byte
}

type Synthesizer interface {
	// Synthesize converts text to speech in the given
	// language and returns the encoded audio.
	Synthesize(ctx context.Context, text string, language string) (Audio, error)
}

// SynthesisError means the speech service produced no audio.
type SynthesisError struct {
	Language string
	Err      error
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("failed tts (%s); %v", e.Language, e.Err)
}

func (e *SynthesisError) Unwrap() error {
	return e.Err
}
