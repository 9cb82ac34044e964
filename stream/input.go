// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"errors"
	"fmt"
	"io"
)

// inputBufferLength is the capacity of the compressed-byte region. A
// 320 kbit/s 32 kHz Layer III frame is 1440 bytes; keeping the region
// at least half full guarantees a whole frame is visible after any
// sync hit.
const inputBufferLength = 4096

// refillIfNeeded tops up the input region when less than half of it is
// unread. The unread tail is compacted to the front, one bounded read
// fills the freed space, and any shortfall stays zeroed so a decoder
// scanning past the end of real data never sees stale bytes.
//
// It reports whether at least one unread byte remains. A read failure
// latches eof and is returned wrapped; eof is also latched on a
// zero-byte read.
func (s *Stream) refillIfNeeded() (bool, error) {
	// Over half full: nothing to do.
	if s.inbufOffset < len(s.inbuf)/2 {
		return true, nil
	}

	if !s.eof {
		unread := len(s.inbuf) - s.inbufOffset
		copy(s.inbuf, s.inbuf[s.inbufOffset:])
		s.inbufOffset = 0

		tail := s.inbuf[unread:]
		clear(tail)

		// f_read-style semantics: fill the tail or hit end of file.
		// A plain Read may legally return short without EOF, which
		// would leave zeroed tail bytes inside the live stream.
		n, err := io.ReadFull(s.file, tail)
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
			s.eof = true
			return false, fmt.Errorf("input refill: %w", err)
		}

		if n == 0 {
			s.eof = true
		}
		if n < len(tail) {
			clear(tail[n:])
		}
	}

	return s.inbufOffset < len(s.inbuf), nil
}

// window returns the unread portion of the input region.
func (s *Stream) window() []byte {
	return s.inbuf[s.inbufOffset:]
}

// bytesLeft returns the count of unread bytes.
func (s *Stream) bytesLeft() int {
	return len(s.inbuf) - s.inbufOffset
}

// consume advances the read cursor by n, clamped to the unread range.
func (s *Stream) consume(n int) {
	if n < 0 {
		return
	}
	if n > s.bytesLeft() {
		n = s.bytesLeft()
	}
	s.inbufOffset += n
}
