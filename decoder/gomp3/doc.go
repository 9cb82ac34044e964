// SPDX-License-Identifier: EPL-2.0

// Package gomp3 is the production MP3 backend for the stream engine.
//
// This package uses github.com/hajimehoshi/go-mp3 for the frame
// decode itself and a small pure-Go header scanner for sync search
// and geometry probing, so the engine can resynchronize inside noisy
// byte windows without handing the codec anything but whole frames.
//
// # Usage
//
//	dec := gomp3.New()
//	s, err := stream.New(file, dec, nil)
//
// The stream engine owns the decoder after construction and closes it
// on teardown.
//
// # Output format
//
//   - Sample format: signed 16-bit little-endian, interleaved
//   - Channels: always 2 (go-mp3 duplicates mono sources)
//   - Sample rate: from the first frame header (MPEG-1, MPEG-2 and
//     MPEG-2.5 Layer III rates)
//
// # Limitations
//
//   - Layer III only; free-format bitrates are not recognized
//   - Geometry is fixed by the first frame; streams that switch MPEG
//     version mid-file will misbehave
package gomp3
