// SPDX-License-Identifier: EPL-2.0

package stream

// syncTailWindow is how many trailing bytes survive a failed sync
// scan. It must be at least one byte shorter than the longest sync
// pattern, or a pattern straddling two refills would be lost.
const syncTailWindow = 16

// findSync advances the input cursor to the next frame sync word,
// refilling the input region as it discards garbage. It reports false
// without error when the stream ends before a sync word is seen.
func (s *Stream) findSync() (bool, error) {
	for {
		if _, err := s.refillIfNeeded(); err != nil {
			return false, err
		}

		offset, ok := s.dec.FindSync(s.window())
		if ok {
			s.consume(offset)
			// Restore the half-full invariant after discarding
			// leading garbage, so a whole frame is in view.
			if _, err := s.refillIfNeeded(); err != nil {
				return false, err
			}
			return true, nil
		}

		s.consume(max(0, s.bytesLeft()-syncTailWindow))

		if s.eof {
			return false, nil
		}
	}
}
