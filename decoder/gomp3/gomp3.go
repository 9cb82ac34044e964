// SPDX-License-Identifier: EPL-2.0

package gomp3

import (
	"fmt"
	"io"

	mp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/mp3stream/decoder"
)

// mp3Stream is an interface for mp3.Decoder to allow testing.
type mp3Stream interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// Decoder is a decoder.FrameDecoder backed by hajimehoshi/go-mp3.
// Sync search and header probing are done with a pure-Go header scan;
// the PCM decode itself is delegated to go-mp3, fed one input window
// at a time.
type Decoder struct {
	feed *feedReader
	dec  mp3Stream
}

// New returns a ready Decoder.
func New() *Decoder {
	return &Decoder{feed: &feedReader{}}
}

func (d *Decoder) FindSync(buf []byte) (int, bool) {
	return findSyncWord(buf)
}

// ProbeFrameInfo parses the frame header at the start of buf.
//
// go-mp3 always emits 2-channel interleaved PCM (mono sources are
// duplicated to both channels), so the reported geometry is always
// stereo regardless of the header's mode bits.
func (d *Decoder) ProbeFrameInfo(buf []byte) (decoder.FrameInfo, error) {
	h, err := parseFrameHeader(buf)
	if err != nil {
		return decoder.FrameInfo{}, err
	}
	return decoder.FrameInfo{
		SampleRate:    h.sampleRate,
		Channels:      2,
		OutputSamples: h.samplesPerFrame * 2,
	}, nil
}

// Decode decodes one frame from the start of src into pcm and reports
// how many src bytes go-mp3 pulled. The underlying go-mp3 decoder is
// created lazily on the first call so that it parses the stream from
// the first located sync word.
func (d *Decoder) Decode(src, pcm []byte) (int, error) {
	d.feed.load(src)

	if d.dec == nil {
		dec, err := mp3.NewDecoder(d.feed)
		if err != nil {
			return d.feed.consumed(), fmt.Errorf("%w", err)
		}
		d.dec = dec
	}

	if _, err := io.ReadFull(d.dec, pcm); err != nil {
		return d.feed.consumed(), fmt.Errorf("%w", err)
	}
	return d.feed.consumed(), nil
}

// Reset discards the go-mp3 decoder so the next Decode re-parses from
// the stream start. Required after the compressed source is rewound:
// go-mp3 latches end-of-stream and carries a bit reservoir across
// reads.
func (d *Decoder) Reset() {
	d.dec = nil
	d.feed.load(nil)
}

func (d *Decoder) Close() error {
	d.dec = nil
	d.feed = nil
	return nil
}

// feedReader adapts the engine's push-style byte windows to go-mp3's
// pull Reader. load points it at the window for the current Decode
// call; consumed reports how many bytes go-mp3 pulled from it.
type feedReader struct {
	buf []byte
	off int
}

func (r *feedReader) load(buf []byte) {
	r.buf = buf
	r.off = 0
}

func (r *feedReader) consumed() int { return r.off }

func (r *feedReader) Read(p []byte) (int, error) {
	if r.off >= len(r.buf) {
		return 0, io.EOF
	}
	n := copy(p, r.buf[r.off:])
	r.off += n
	return n, nil
}
