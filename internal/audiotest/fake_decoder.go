// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"errors"

	"github.com/ik5/mp3stream/decoder"
	"github.com/ik5/mp3stream/utils"
)

// Sync marker of the fake compressed format.
const (
	SyncA = 0xF5
	SyncB = 0x5A
)

// ErrBadFrame is returned by the fake decoder for undecodable input.
var ErrBadFrame = errors.New("audiotest: bad frame")

// FakeDecoder implements decoder.FrameDecoder over a synthetic
// compressed format, so engine tests control geometry, frame count
// and failure timing exactly.
//
// A compressed frame is FrameSize bytes: the two sync marker bytes, a
// sequence byte, and filler. Decoding frame seq produces PCM whose
// every int16 sample equals seq+1, which makes decoded buffers
// identifiable frame-for-frame and distinct from priming silence.
type FakeDecoder struct {
	Rate            int
	Channels        int
	SamplesPerFrame int // per channel
	FrameSize       int // compressed bytes per frame

	// FailAfter, when >= 0, makes Decode fail once that many frames
	// have decoded successfully.
	FailAfter int

	// Bookkeeping for assertions.
	DecodeCalls int
	Resets      int
	Closed      bool

	decoded int
}

// NewFakeDecoder returns a fake with the default geometry used across
// the engine tests: 44.1 kHz stereo, 32 samples per channel per
// frame, 24 compressed bytes per frame.
func NewFakeDecoder() *FakeDecoder {
	return &FakeDecoder{
		Rate:            44100,
		Channels:        2,
		SamplesPerFrame: 32,
		FrameSize:       24,
		FailAfter:       -1,
	}
}

func (d *FakeDecoder) FindSync(buf []byte) (int, bool) {
	i := bytes.Index(buf, []byte{SyncA, SyncB})
	if i < 0 {
		return 0, false
	}
	return i, true
}

func (d *FakeDecoder) ProbeFrameInfo(buf []byte) (decoder.FrameInfo, error) {
	if len(buf) < 2 || buf[0] != SyncA || buf[1] != SyncB {
		return decoder.FrameInfo{}, ErrBadFrame
	}
	return decoder.FrameInfo{
		SampleRate:    d.Rate,
		Channels:      d.Channels,
		OutputSamples: d.SamplesPerFrame * d.Channels,
	}, nil
}

func (d *FakeDecoder) Decode(src, pcm []byte) (int, error) {
	d.DecodeCalls++

	if d.FailAfter >= 0 && d.decoded >= d.FailAfter {
		return 0, ErrBadFrame
	}
	if len(src) < d.FrameSize || src[0] != SyncA || src[1] != SyncB {
		return 0, ErrBadFrame
	}

	seq := src[2]
	for i := 0; i+2 <= len(pcm); i += 2 {
		utils.PutInt16LE(pcm[i:], int16(seq)+1)
	}

	d.decoded++
	return d.FrameSize, nil
}

func (d *FakeDecoder) Reset() {
	d.Resets++
	d.decoded = 0
}

func (d *FakeDecoder) Close() error {
	d.Closed = true
	return nil
}

// BuildStream renders a compressed stream of frames numbered 0..n-1
// for the decoder's geometry, prefixed by garbage. The garbage must
// not contain the sync marker.
func (d *FakeDecoder) BuildStream(frames int, garbage []byte) []byte {
	out := make([]byte, 0, len(garbage)+frames*d.FrameSize)
	out = append(out, garbage...)
	for seq := 0; seq < frames; seq++ {
		frame := make([]byte, d.FrameSize)
		frame[0] = SyncA
		frame[1] = SyncB
		frame[2] = byte(seq)
		for i := 3; i < len(frame); i++ {
			frame[i] = 0x11
		}
		out = append(out, frame...)
	}
	return out
}

// Garbage returns n bytes that can never match the sync marker.
func Garbage(n int) []byte {
	g := make([]byte, n)
	for i := range g {
		g[i] = 0x22
	}
	return g
}
