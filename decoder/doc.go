// SPDX-License-Identifier: EPL-2.0

// Package decoder defines the frame-decoder capability the stream
// engine is built against.
//
// The engine never touches codec internals; it hands the decoder a
// bounded byte window and asks it to find a sync word, probe a frame
// header, or decode exactly one frame of PCM. Any codec that can
// answer those questions can drive the engine:
//
//	type FrameDecoder interface {
//	    FindSync(buf []byte) (offset int, ok bool)
//	    ProbeFrameInfo(buf []byte) (FrameInfo, error)
//	    Decode(src, pcm []byte) (consumed int, err error)
//	    Reset()
//	    Close() error
//	}
//
// The production MP3 backend lives in decoder/gomp3. Tests substitute
// a fake implementation (see internal/audiotest).
//
// # Contract notes
//
// Decode consumes bytes only from the front of src and reports how
// many it took; the engine advances its input cursor by exactly that
// amount. A Decode error marks the current frame undecodable but says
// nothing about the underlying file; I/O failures never travel
// through this interface.
//
// Reset exists because the compressed stream can be rewound under the
// decoder (see stream.ResetBuffer); implementations must drop bit
// reservoirs, lookahead and end-of-stream latches.
package decoder
