package utils

import (
	"errors"
	"io"
)

var ErrNegativeOffset = errors.New("negative offset")

// WriteSeekBuffer is an in-memory io.WriteSeeker.
// The WAV encoder seeks back to patch chunk sizes on Close,
// so a plain bytes.Buffer won't do.
type WriteSeekBuffer struct {
	buf []byte
	pos int
}

var _ io.WriteSeeker = &WriteSeekBuffer{}

func NewWriteSeekBuffer() *WriteSeekBuffer {
	return &WriteSeekBuffer{}
}

// Write writes p at the current offset, growing the buffer as needed.
func (ws *WriteSeekBuffer) Write(p []byte) (n int, err error) {
	end := ws.pos + len(p)
	if end > len(ws.buf) {
		if end > cap(ws.buf) {
			grown := make([]byte, end, 2*end)
			copy(grown, ws.buf)
			ws.buf = grown
		} else {
			ws.buf = ws.buf[:end]
		}
	}
	n = copy(ws.buf[ws.pos:], p)
	ws.pos = end
	return n, nil
}

// Seek sets the offset for the next Write. Seeking past
// the end is allowed, the gap is zero filled on the next Write.
func (ws *WriteSeekBuffer) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = int64(ws.pos) + offset
	case io.SeekEnd:
		abs = int64(len(ws.buf)) + offset
	default:
		return 0, errors.New("invalid whence")
	}
	if abs < 0 {
		return 0, ErrNegativeOffset
	}
	ws.pos = int(abs)
	return abs, nil
}

// Bytes returns everything written so far.
func (ws *WriteSeekBuffer) Bytes() []byte {
	return ws.buf
}

func (ws *WriteSeekBuffer) Len() int {
	return len(ws.buf)
}
