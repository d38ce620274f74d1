// Package testaudio builds small encoded audio streams for tests
// without needing fixture files on disk.
package testaudio

import "time"

const (
	// MPEG-1 Layer III, no CRC, 128 kbit/s, 44100 Hz, stereo
	mp3Header0 byte = 0xFF
	mp3Header1 byte = 0xFB
	mp3Header2 byte = 0x90
	mp3Header3 byte = 0x00

	MP3SampleRate      = 44100
	MP3SamplesPerFrame = 1152
	mp3FrameLen        = 144 * 128000 / MP3SampleRate
)

// SilentMP3 returns frames consecutive MP3 frames. Side info and main
// data are all zero, which decodes to digital silence.
func SilentMP3(frames int) []byte {
	out := make([]byte, 0, frames*mp3FrameLen)
	for i := 0; i < frames; i++ {
		frame := make([]byte, mp3FrameLen)
		frame[0] = mp3Header0
		frame[1] = mp3Header1
		frame[2] = mp3Header2
		frame[3] = mp3Header3
		out = append(out, frame...)
	}
	return out
}

// MP3Duration is the nominal playback length of SilentMP3(frames)
func MP3Duration(frames int) time.Duration {
	return time.Duration(frames) * MP3SamplesPerFrame * time.Second / MP3SampleRate
}

// MP3FrameDuration is the length of one MP3 frame, the rounding
// tolerance for duration checks.
func MP3FrameDuration() time.Duration {
	return MP3Duration(1)
}
