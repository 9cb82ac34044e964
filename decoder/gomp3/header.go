// SPDX-License-Identifier: EPL-2.0

package gomp3

import "errors"

var errNoFrameHeader = errors.New("no valid MP3 frame header")

// MPEG version field values (header bits 19-20).
const (
	version2_5 = 0
	version2   = 2
	version1   = 3
)

// layerIII is the layer field value for Layer III (header bits 17-18).
const layerIII = 1

// sampleRates is indexed by [version][sample-rate index].
var sampleRates = [4][3]int{
	version2_5: {11025, 12000, 8000},
	version2:   {22050, 24000, 16000},
	version1:   {44100, 48000, 32000},
}

type frameHeader struct {
	version         int
	sampleRate      int
	channels        int
	samplesPerFrame int
}

// parseFrameHeader validates and parses the 4-byte Layer III frame
// header at the start of buf.
func parseFrameHeader(buf []byte) (frameHeader, error) {
	if len(buf) < 4 {
		return frameHeader{}, errNoFrameHeader
	}
	// 11 set bits of frame sync.
	if buf[0] != 0xFF || buf[1]&0xE0 != 0xE0 {
		return frameHeader{}, errNoFrameHeader
	}

	version := int(buf[1]>>3) & 3
	layer := int(buf[1]>>1) & 3
	if version == 1 || layer != layerIII {
		return frameHeader{}, errNoFrameHeader
	}

	bitrateIndex := int(buf[2] >> 4)
	if bitrateIndex == 0 || bitrateIndex == 15 {
		// Free-format and invalid bitrates are not supported.
		return frameHeader{}, errNoFrameHeader
	}

	rateIndex := int(buf[2]>>2) & 3
	if rateIndex == 3 {
		return frameHeader{}, errNoFrameHeader
	}

	h := frameHeader{
		version:    version,
		sampleRate: sampleRates[version][rateIndex],
		channels:   2,
	}
	if buf[3]>>6 == 3 { // mono mode
		h.channels = 1
	}

	// Layer III: 1152 samples per frame for MPEG-1, half that for
	// MPEG-2 and MPEG-2.5.
	h.samplesPerFrame = 1152
	if version != version1 {
		h.samplesPerFrame = 576
	}

	return h, nil
}

// findSyncWord scans buf for the first offset holding a valid frame
// header. A candidate within the last 3 bytes cannot be validated and
// is not reported; the engine's retained tail carries it into the
// next scan.
func findSyncWord(buf []byte) (int, bool) {
	for i := 0; i+4 <= len(buf); i++ {
		if buf[i] != 0xFF || buf[i+1]&0xE0 != 0xE0 {
			continue
		}
		if _, err := parseFrameHeader(buf[i:]); err == nil {
			return i, true
		}
	}
	return 0, false
}
