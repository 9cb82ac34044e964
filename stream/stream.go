// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"fmt"
	"io"

	"github.com/ik5/mp3stream/decoder"
)

// bytesPerSample is fixed: the engine produces signed 16-bit PCM.
const bytesPerSample = 2

// Result is the outcome of a single GetBuffer call.
type Result uint8

const (
	// ResultMoreData means the returned buffer is valid and more
	// frames follow.
	ResultMoreData Result = iota
	// ResultDone means the stream ended cleanly (or a decode fault
	// terminated it); no further frames will be produced until
	// ResetBuffer.
	ResultDone
	// ResultError means the stream is not recoverable at this call,
	// typically after an I/O failure.
	ResultError
)

func (r Result) String() string {
	switch r {
	case ResultMoreData:
		return "more data"
	case ResultDone:
		return "done"
	case ResultError:
		return "error"
	}
	return fmt.Sprintf("Result(%d)", uint8(r))
}

// BufferStructure describes the shape of the buffers GetBuffer hands
// out, for consumers that need stride information up front.
type BufferStructure struct {
	// SingleBuffer is false: the engine alternates two buffers.
	SingleBuffer bool
	// SamplesSigned is true: samples are signed 16-bit.
	SamplesSigned bool
	// MaxBufferLength is the byte length of one decoded frame.
	MaxBufferLength int
	// ChannelSpacing is the interleave stride in samples: the channel
	// count when reading one channel at a time, 1 otherwise.
	ChannelSpacing int
}

// Stream is a double-buffered frame decode engine over a compressed
// byte source. It pulls bytes from the source in bounded chunks,
// resynchronizes on frame boundaries, and decodes exactly one frame
// per buffer-worth of consumption into two alternating PCM buffers.
//
// A Stream is not safe for concurrent use; GetBuffer, ResetBuffer and
// Close must not be interleaved without external synchronization.
type Stream struct {
	// file is referenced, never owned; the caller opens and closes it.
	file io.ReadSeeker
	dec  decoder.FrameDecoder

	inbuf       []byte
	inbufOffset int
	eof         bool

	sampleRate int
	channels   int
	frameBytes int

	buffers  [2][]byte
	bufIndex int

	// channelReadCount counts buffers handed to each output channel;
	// framesOut counts decode epochs. A channel whose count has caught
	// up to framesOut is the one that drives the next swap. Counters
	// are zeroed together by ResetBuffer and are int-sized, so they
	// cannot wrap within any feasible stream length.
	channelReadCount [2]int
	framesOut        int

	// finished latches a clean end of stream; decodeFailed latches a
	// decoder fault. Either way every later request returns Done
	// without touching the source, until ResetBuffer.
	finished     bool
	decodeFailed bool
	closed       bool
}

// New constructs a Stream over file using dec for frame decoding. It
// probes the first frame to learn the stream geometry. pcmBuf, when
// at least two frames long, is split in half and used for the output
// buffers; otherwise two frame-sized buffers are allocated.
//
// On any failure the decoder is closed and the returned error set;
// the file is left wherever the probe read to, as it is not owned.
func New(file io.ReadSeeker, dec decoder.FrameDecoder, pcmBuf []byte) (*Stream, error) {
	s := &Stream{
		file:        file,
		dec:         dec,
		inbuf:       make([]byte, inputBufferLength),
		inbufOffset: inputBufferLength, // empty; first refill fills
	}

	if _, err := s.findSync(); err != nil {
		dec.Close()
		return nil, err
	}

	fi, err := dec.ProbeFrameInfo(s.window())
	if err != nil {
		dec.Close()
		return nil, fmt.Errorf("%w: %w", ErrMalformedStream, err)
	}

	s.sampleRate = fi.SampleRate
	s.channels = fi.Channels
	s.frameBytes = fi.OutputSamples * bytesPerSample

	if len(pcmBuf) >= 2*s.frameBytes {
		// Reuse the caller's region, aligned down to whole frames.
		half := len(pcmBuf) / 2 / s.frameBytes * s.frameBytes
		s.buffers[0] = pcmBuf[:half]
		s.buffers[1] = pcmBuf[half : 2*half]
	} else {
		s.buffers[0] = make([]byte, s.frameBytes)
		s.buffers[1] = make([]byte, s.frameBytes)
	}

	return s, nil
}

// GetBuffer services one buffer request from the output consumer.
//
// The returned slice points into the currently active buffer at the
// requested channel's interleave offset and always holds data that is
// already valid for consumption. When the requesting channel is the
// one catching up to the decode epoch, the engine flips buffers and
// decodes the next frame into the newly active buffer, which will be
// returned on the following request.
//
// channel is ignored unless singleChannel is true, in which case it
// must be 0 or 1. The error is non-nil only with ResultError.
func (s *Stream) GetBuffer(singleChannel bool, channel int) ([]byte, Result, error) {
	if s.closed {
		return nil, ResultError, ErrClosed
	}
	if !singleChannel {
		channel = 0
	}
	if channel < 0 || channel > 1 {
		return nil, ResultError, fmt.Errorf("invalid channel %d", channel)
	}

	if s.finished || s.decodeFailed {
		// The stream already terminated; keep handing out the last
		// valid buffer with Done and leave all state frozen until
		// ResetBuffer.
		return s.buffers[s.bufIndex][channel*bytesPerSample : s.frameBytes], ResultDone, nil
	}

	needMoreData := s.channelReadCount[channel] == s.framesOut
	s.channelReadCount[channel]++

	out := s.buffers[s.bufIndex][channel*bytesPerSample : s.frameBytes]

	if needMoreData {
		s.framesOut++

		s.bufIndex ^= 1

		ok, err := s.findSync()
		if err != nil {
			return out, ResultError, err
		}
		if !ok {
			if s.eof {
				// No frame landed in the new buffer; flip back so the
				// frozen stream keeps serving the last decoded one.
				s.bufIndex ^= 1
				s.finished = true
				return out, ResultDone, nil
			}
			return out, ResultError, ErrMalformedStream
		}

		consumed, err := s.dec.Decode(s.window(), s.buffers[s.bufIndex][:s.frameBytes])
		s.consume(consumed)
		if err != nil {
			s.bufIndex ^= 1
			s.decodeFailed = true
			return out, ResultDone, nil
		}
	}

	return out, ResultMoreData, nil
}

// ResetBuffer rewinds the stream to its start and resynchronizes, so
// consumption restarts from the first frame. In single-channel mode
// only channel 0 performs the rewind; the call for channel 1 is a
// no-op. The active buffer index is deliberately left alone so loop
// cycles with an odd number of buffer loads do not force an extra
// swap.
func (s *Stream) ResetBuffer(singleChannel bool, channel int) error {
	if s.closed {
		return ErrClosed
	}
	if singleChannel && channel == 1 {
		return nil
	}

	if _, err := s.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind: %w", err)
	}

	s.inbufOffset = len(s.inbuf)
	s.eof = false
	s.finished = false
	s.decodeFailed = false
	s.channelReadCount = [2]int{}
	s.framesOut = 0
	s.dec.Reset()

	if _, err := s.refillIfNeeded(); err != nil {
		return err
	}
	if _, err := s.findSync(); err != nil {
		return err
	}
	return nil
}

// BufferStructure reports the buffer shape for the given consumption
// mode.
func (s *Stream) BufferStructure(singleChannel bool) BufferStructure {
	spacing := 1
	if singleChannel {
		spacing = s.channels
	}
	return BufferStructure{
		SingleBuffer:    false,
		SamplesSigned:   true,
		MaxBufferLength: s.frameBytes,
		ChannelSpacing:  spacing,
	}
}

// Close releases the decoder and drops all buffer references. The
// underlying file is not closed: it is owned by the caller. Close is
// idempotent.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}
	err := s.dec.Close()
	s.dec = nil
	s.inbuf = nil
	s.buffers[0] = nil
	s.buffers[1] = nil
	s.file = nil
	s.closed = true
	return err
}

// Closed reports whether Close has been called.
func (s *Stream) Closed() bool { return s.closed }

// SampleRate returns the output sample rate in Hz.
func (s *Stream) SampleRate() int { return s.sampleRate }

// SetSampleRate overrides the reported sample rate. It does not
// resample; it exists for consumers that clock the output themselves.
func (s *Stream) SetSampleRate(rate int) { s.sampleRate = rate }

// BitsPerSample is fixed at 16.
func (s *Stream) BitsPerSample() int { return 16 }

// ChannelCount returns the channel count of the decoded output.
func (s *Stream) ChannelCount() int { return s.channels }

// FrameBytes returns the byte length of one decoded frame across all
// channels.
func (s *Stream) FrameBytes() int { return s.frameBytes }
