// SPDX-License-Identifier: EPL-2.0

package decoder

// FrameInfo describes the geometry of a single compressed audio frame.
type FrameInfo struct {
	// SampleRate of the decoded PCM in Hz.
	SampleRate int
	// Channels in the decoded output (1=mono, 2=stereo).
	Channels int
	// OutputSamples is the total int16 sample count one frame decodes
	// to, across all channels.
	OutputSamples int
}

// FrameDecoder is the frame-level decode capability consumed by the
// stream engine. Implementations own whatever codec state they need
// (bit reservoirs, lookahead) and are driven one frame at a time from
// a bounded byte window.
type FrameDecoder interface {
	// FindSync scans buf for the start of a valid frame and returns
	// its byte offset. ok is false when no sync pattern is present.
	FindSync(buf []byte) (offset int, ok bool)

	// ProbeFrameInfo parses the frame header at the start of buf
	// without producing audio.
	ProbeFrameInfo(buf []byte) (FrameInfo, error)

	// Decode consumes one frame from the start of src and writes its
	// interleaved int16 little-endian PCM into pcm. It returns the
	// count of src bytes consumed. A non-nil error means the current
	// frame is undecodable; it is not an I/O failure.
	Decode(src, pcm []byte) (consumed int, err error)

	// Reset discards all internal codec state, as after a rewind of
	// the compressed stream.
	Reset()

	// Close releases the decoder. The decoder must not be used after
	// Close.
	Close() error
}
