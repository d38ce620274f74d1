package voice

import (
	"testing"

	"github.com/go-audio/audio"
	"github.com/stretchr/testify/require"

	"gtranslate/utils"
	"gtranslate/voice/transcoding"
)

func encodeWav(t *testing.T, pcm []int, sampleRate, channels int) []byte {
	t.Helper()

	out := utils.NewWriteSeekBuffer()
	err := transcoding.PCMToWav(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           pcm,
		SourceBitDepth: 16,
	}, out)
	require.NoError(t, err)

	return out.Bytes()
}
