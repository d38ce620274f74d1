package voice

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gtranslate/internal/testaudio"
	"gtranslate/voice/transcoding"
)

func TestGoogle(t *testing.T) {
	if os.Getenv("GTTS_ONLINE") == "" {
		t.Skip("GTTS_ONLINE not set")
	}
	var speaker Synthesizer = &Google{Folder: t.TempDir()}
	test_speaker(speaker, t)
}

func TestGoogleEmptyText(t *testing.T) {
	speaker := &Google{Folder: t.TempDir()}

	_, err := speaker.Synthesize(context.Background(), "   ", "en")

	var synthErr *SynthesisError
	require.ErrorAs(t, err, &synthErr)
	assert.Equal(t, "en", synthErr.Language)
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestGoogleCancelled(t *testing.T) {
	speaker := &Google{Folder: t.TempDir()}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := speaker.Synthesize(ctx, "hello", "en")

	var synthErr *SynthesisError
	assert.ErrorAs(t, err, &synthErr)
	assert.True(t, errors.Is(err, context.Canceled))
}

func test_speaker(speaker Synthesizer, t *testing.T) {
	audio, err := speaker.Synthesize(context.Background(), "Wh-what? How can you say something so serious? B-baka!", "en")
	require.NoError(t, err)
	assert.Equal(t, transcoding.FormatMP3, audio.Format)
	assert.NotEmpty(t, audio.Data)

	// whatever comes back must be something we can pad
	_, err = transcoding.MP3ToPCM(audio.Data)
	assert.NoError(t, err)
}

type countingFetcher struct {
	mu     sync.Mutex
	chunks []string
	reply  []byte
}

func (f *countingFetcher) Fetch(ctx context.Context, text string, language string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.chunks = append(f.chunks, text)
	return f.reply, nil
}

func TestGoogleLongMessage(t *testing.T) {
	fetcher := &countingFetcher{reply: testaudio.SilentMP3(2)}
	speaker := &Google{Fetcher: fetcher}

	message := strings.Repeat("The quick brown fox jumps over the lazy dog, then naps in the sun. ", 5)
	require.Greater(t, len(message), 250)

	audio, err := speaker.Synthesize(context.Background(), message, "en")
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(fetcher.chunks), 3)
	for _, chunk := range fetcher.chunks {
		assert.LessOrEqual(t, utf8.RuneCountInString(chunk), maxChunkLen, chunk)
	}
	assert.Equal(t, strings.Fields(message), strings.Fields(strings.Join(fetcher.chunks, " ")))

	// replies are joined back to back into one stream
	assert.Equal(t, transcoding.FormatMP3, audio.Format)
	assert.Len(t, audio.Data, len(fetcher.chunks)*len(fetcher.reply))

	pcm, err := transcoding.MP3ToPCM(audio.Data)
	require.NoError(t, err)
	assert.InDelta(t, testaudio.MP3Duration(2*len(fetcher.chunks)), transcoding.Duration(pcm), float64(testaudio.MP3FrameDuration()))
}

func TestGoogleShortMessageSingleRequest(t *testing.T) {
	fetcher := &countingFetcher{reply: testaudio.SilentMP3(2)}
	speaker := &Google{Fetcher: fetcher}

	audio, err := speaker.Synthesize(context.Background(), "hello", "de")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello"}, fetcher.chunks)
	assert.Equal(t, fetcher.reply, audio.Data)
}

func TestGoogleErrorPage(t *testing.T) {
	replies := [][]byte{
		[]byte("<html><body>429 Too Many Requests</body></html>"),
		make([]byte, badMP3Size),
		{},
	}

	for _, reply := range replies {
		speaker := &Google{Fetcher: &countingFetcher{reply: reply}}

		_, err := speaker.Synthesize(context.Background(), "hello", "en")

		var synthErr *SynthesisError
		require.ErrorAs(t, err, &synthErr)
		assert.ErrorIs(t, err, ErrBadMP3)
	}
}
