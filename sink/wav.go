// SPDX-License-Identifier: EPL-2.0

package sink

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/mp3stream/stream"
	"github.com/ik5/mp3stream/utils"
)

const wavFormatPCM = 1

// WriteWAV drains s through its buffer protocol and writes every
// decoded frame to w as a 16-bit PCM RIFF/WAVE file. It consumes the
// stream to its end; the caller can ResetBuffer afterwards to play it
// again.
//
// The first buffer a freshly constructed stream hands out is priming
// silence, so it is skipped; the final frame rides on the Done call
// and is written. A stream terminated by a decode fault rather than a
// clean end of file may repeat its last good frame once.
func WriteWAV(w io.WriteSeeker, s *stream.Stream) error {
	enc := wav.NewEncoder(w, s.SampleRate(), s.BitsPerSample(), s.ChannelCount(), wavFormatPCM)

	intBuf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: s.ChannelCount(),
			SampleRate:  s.SampleRate(),
		},
		Data:           make([]int, s.FrameBytes()/2),
		SourceBitDepth: s.BitsPerSample(),
	}

	first := true
	for {
		buf, res, err := s.GetBuffer(false, 0)
		if res == stream.ResultError {
			enc.Close()
			return fmt.Errorf("drain stream: %w", err)
		}

		if !first {
			intBuf.Data = intBuf.Data[:cap(intBuf.Data)]
			n := utils.PCM16LEToInt(intBuf.Data, buf)
			intBuf.Data = intBuf.Data[:n]
			if err := enc.Write(intBuf); err != nil {
				enc.Close()
				return fmt.Errorf("encode wav: %w", err)
			}
		}
		first = false

		if res == stream.ResultDone {
			break
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize wav: %w", err)
	}
	return nil
}
