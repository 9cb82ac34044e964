// SPDX-License-Identifier: EPL-2.0

// Package mp3stream provides a streaming, double-buffered MP3 decode
// engine for memory-constrained playback.
//
// The engine pulls compressed bytes from a file in small chunks,
// hunts for valid frame boundaries in a noisy byte stream, decodes
// one frame at a time, and hands decoded PCM to the consumer through
// a pull-based double-buffer protocol. Total working memory is one
// 4 KiB input region plus two one-frame PCM buffers, independent of
// stream length.
//
// # Quick start
//
// The root package wires the engine to its go-mp3 backend:
//
//	f, err := os.Open("song.mp3")
//	if err != nil {
//	    panic(err)
//	}
//	defer f.Close()
//
//	s, err := mp3stream.New(f)
//	if err != nil {
//	    panic(err)
//	}
//	defer s.Close()
//
//	fmt.Println(s.SampleRate(), s.ChannelCount()) // e.g. 44100 2
//
//	for {
//	    buf, res, err := s.GetBuffer(false, 0)
//	    if err != nil {
//	        panic(err)
//	    }
//	    play(buf) // interleaved signed 16-bit little-endian PCM
//	    if res != stream.ResultMoreData {
//	        break
//	    }
//	}
//
// Or convert a file in one call:
//
//	mp3stream.DecodeToWAV(in, out)
//
// # Packages
//
//   - stream: the engine core (input refill, sync recovery, the
//     double-buffer state machine, lifecycle)
//   - decoder: the injected frame-decoder capability
//   - decoder/gomp3: production backend on hajimehoshi/go-mp3
//   - sink: reference consumers (WAV export via go-audio)
//   - utils: int16 PCM byte helpers
//
// # Scope
//
// The engine plays one stream at a time from its start. Playlists,
// timestamp seeking, VBR duration estimation and sample-rate
// conversion are out of scope; rewinding to the start (looping) is
// supported via ResetBuffer.
package mp3stream
