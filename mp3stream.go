// SPDX-License-Identifier: EPL-2.0

package mp3stream

import (
	"fmt"
	"io"

	"github.com/ik5/mp3stream/decoder/gomp3"
	"github.com/ik5/mp3stream/sink"
	"github.com/ik5/mp3stream/stream"
)

// New constructs a decode stream over r with the default go-mp3
// backend. The engine references r but does not own it; the caller
// closes it after the stream is done.
func New(r io.ReadSeeker) (*stream.Stream, error) {
	return stream.New(r, gomp3.New(), nil)
}

// NewWithBuffer is New with a caller-supplied PCM region. When pcmBuf
// holds at least two decoded frames it backs the engine's two output
// buffers and no PCM memory is allocated.
func NewWithBuffer(r io.ReadSeeker, pcmBuf []byte) (*stream.Stream, error) {
	return stream.New(r, gomp3.New(), pcmBuf)
}

// DecodeToWAV decodes the entire MP3 stream from r and writes it to w
// as a 16-bit PCM RIFF/WAVE file.
func DecodeToWAV(r io.ReadSeeker, w io.WriteSeeker) error {
	s, err := New(r)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer s.Close()

	return sink.WriteWAV(w, s)
}
