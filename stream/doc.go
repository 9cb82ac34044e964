// SPDX-License-Identifier: EPL-2.0

// Package stream implements a streaming, double-buffered frame decode
// engine for pull-based audio output.
//
// The engine is built for memory-constrained playback: it keeps a
// single fixed-size region of compressed bytes, refills it from the
// source only when it drops below half full, hunts for frame sync
// words through garbage and across refill boundaries, and decodes one
// frame at a time into two alternating PCM buffers.
//
// # The buffer protocol
//
// The output consumer drives everything through GetBuffer:
//
//	s, err := stream.New(file, gomp3.New(), nil)
//	if err != nil {
//	    // handle error
//	}
//	defer s.Close()
//
//	for {
//	    buf, res, err := s.GetBuffer(false, 0)
//	    if res != stream.ResultMoreData {
//	        break
//	    }
//	    play(buf) // int16 little-endian interleaved PCM
//	}
//
// Every call returns a buffer that is already valid; the decode of
// the next frame happens into the other buffer, so the worst case
// cost of one call is bounded by one source read plus one frame
// decode. That makes GetBuffer suitable for soft-real-time output
// callbacks, though a slow storage read can still stall it.
//
// # Per-channel consumption
//
// Consumers that pull each channel separately pass singleChannel=true
// and a channel index. The engine counts buffers per channel against
// the number of frames decoded; whichever channel first catches up
// drives the swap, and the lagging channel keeps reading the previous
// frame's data. Exactly one frame is decoded per frame-worth of
// consumption no matter how the per-channel calls interleave.
//
// # End of stream and faults
//
// A clean end of stream surfaces as ResultDone on the call that would
// have needed the next frame, and on every call after that. A decoder
// fault also surfaces as ResultDone and latches: no further frames
// are attempted until ResetBuffer. Read failures surface as
// ResultError with the wrapped I/O error on that call only.
//
// ResetBuffer rewinds the source and resynchronizes; a stream whose
// underlying file is intact is always playable again afterwards.
//
// # Concurrency
//
// A Stream is a single logical thread of control. Nothing locks
// internally; callers must not run GetBuffer concurrently with
// itself, ResetBuffer or Close.
package stream
