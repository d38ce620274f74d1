package voice

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	htgotts "github.com/hegedustibor/htgo-tts"
	"github.com/sirupsen/logrus"

	"gtranslate/voice/transcoding"
)

// size of the stub MP3 google hands back when it refuses a line
const badMP3Size = 1685

var ErrBadMP3 = errors.New("speech service returned bad MP3")

// Fetcher downloads the speech for a single chunk of text.
type Fetcher interface {
	Fetch(ctx context.Context, text string, language string) ([]byte, error)
}

// Google speaks through the google translate TTS endpoint.
// Text is sent in chunks the endpoint accepts and the MP3
// replies are joined back to back.
type Google struct {
	// Folder is where scratch speech files go, os.TempDir() if empty
	Folder string
	// Fetcher replaces the htgo-tts download when set
	Fetcher Fetcher
}

var _ Synthesizer = &Google{}

func (api *Google) Synthesize(ctx context.Context, text string, language string) (Audio, error) {
	if err := ctx.Err(); err != nil {
		return Audio{}, &SynthesisError{Language: language, Err: err}
	}

	chunks := splitText(text, maxChunkLen)
	if len(chunks) == 0 {
		return Audio{}, &SynthesisError{Language: language, Err: ErrEmptyText}
	}

	fetcher := api.Fetcher
	if fetcher == nil {
		fetcher = &htgoFetcher{folder: api.Folder}
	}

	var out bytes.Buffer
	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return Audio{}, &SynthesisError{Language: language, Err: err}
		}

		data, err := fetcher.Fetch(ctx, chunk, language)
		if err != nil {
			return Audio{}, &SynthesisError{Language: language, Err: fmt.Errorf("chunk %d of %d; %w", i+1, len(chunks), err)}
		}

		if err := checkSpeech(data); err != nil {
			logrus.WithFields(logrus.Fields{
				"line": chunk,
				"size": len(data),
			}).Infoln("speech service returned bad MP3")
			return Audio{}, &SynthesisError{Language: language, Err: err}
		}
		out.Write(data)
	}

	return Audio{Format: transcoding.FormatMP3, Data: out.Bytes()}, nil
}

// the endpoint answers errors with html pages or a stub
// MP3, neither of which is speech
func checkSpeech(data []byte) error {
	if len(data) == 0 || len(data) == badMP3Size {
		return ErrBadMP3
	}
	if err := transcoding.CheckMP3(data); err != nil {
		return fmt.Errorf("%w; %v", ErrBadMP3, err)
	}
	return nil
}

type htgoFetcher struct {
	folder string
}

func (f *htgoFetcher) Fetch(_ context.Context, text string, language string) ([]byte, error) {
	// htgotts only writes files, give every request its own folder
	dir, err := os.MkdirTemp(f.folder, "gtts-")
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch dir; %w", err)
	}
	defer os.RemoveAll(dir)

	speech := htgotts.Speech{Folder: dir, Language: language}
	path, err := speech.CreateSpeechFile(strings.TrimSpace(text), uuid.NewString())
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read speech file; %w", err)
	}
	return data, nil
}
