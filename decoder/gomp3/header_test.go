// SPDX-License-Identifier: EPL-2.0

package gomp3

import "testing"

func TestParseFrameHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		header     []byte
		rate       int
		channels   int
		samples    int
		wantErr    bool
	}{
		{
			name:     "MPEG1 44.1kHz stereo 128kbit",
			header:   []byte{0xFF, 0xFB, 0x90, 0x00},
			rate:     44100,
			channels: 2,
			samples:  1152,
		},
		{
			name:     "MPEG1 48kHz joint stereo",
			header:   []byte{0xFF, 0xFB, 0x94, 0x40},
			rate:     48000,
			channels: 2,
			samples:  1152,
		},
		{
			name:     "MPEG1 mono",
			header:   []byte{0xFF, 0xFB, 0x90, 0xC0},
			rate:     44100,
			channels: 1,
			samples:  1152,
		},
		{
			name:     "MPEG2 22.05kHz",
			header:   []byte{0xFF, 0xF3, 0x90, 0x00},
			rate:     22050,
			channels: 2,
			samples:  576,
		},
		{
			name:     "MPEG2.5 11.025kHz",
			header:   []byte{0xFF, 0xE3, 0x90, 0x00},
			rate:     11025,
			channels: 2,
			samples:  576,
		},
		{
			name:    "too short",
			header:  []byte{0xFF, 0xFB, 0x90},
			wantErr: true,
		},
		{
			name:    "no sync bits",
			header:  []byte{0xFE, 0xFB, 0x90, 0x00},
			wantErr: true,
		},
		{
			name:    "partial sync bits",
			header:  []byte{0xFF, 0x1B, 0x90, 0x00},
			wantErr: true,
		},
		{
			name:    "reserved version",
			header:  []byte{0xFF, 0xEB, 0x90, 0x00},
			wantErr: true,
		},
		{
			name:    "layer II rejected",
			header:  []byte{0xFF, 0xFD, 0x90, 0x00},
			wantErr: true,
		},
		{
			name:    "free-format bitrate rejected",
			header:  []byte{0xFF, 0xFB, 0x00, 0x00},
			wantErr: true,
		},
		{
			name:    "invalid bitrate index",
			header:  []byte{0xFF, 0xFB, 0xF0, 0x00},
			wantErr: true,
		},
		{
			name:    "invalid sample rate index",
			header:  []byte{0xFF, 0xFB, 0x9C, 0x00},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, err := parseFrameHeader(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseFrameHeader(% x) = %+v, want error", tt.header, h)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFrameHeader(% x) error = %v", tt.header, err)
			}
			if h.sampleRate != tt.rate {
				t.Errorf("sampleRate = %d, want %d", h.sampleRate, tt.rate)
			}
			if h.channels != tt.channels {
				t.Errorf("channels = %d, want %d", h.channels, tt.channels)
			}
			if h.samplesPerFrame != tt.samples {
				t.Errorf("samplesPerFrame = %d, want %d", h.samplesPerFrame, tt.samples)
			}
		})
	}
}

func TestFindSyncWord(t *testing.T) {
	t.Parallel()

	valid := []byte{0xFF, 0xFB, 0x90, 0x00}

	t.Run("at start", func(t *testing.T) {
		t.Parallel()
		off, ok := findSyncWord(valid)
		if !ok || off != 0 {
			t.Errorf("findSyncWord = %d, %v; want 0, true", off, ok)
		}
	})

	t.Run("after garbage", func(t *testing.T) {
		t.Parallel()
		buf := append(make([]byte, 37), valid...)
		off, ok := findSyncWord(buf)
		if !ok || off != 37 {
			t.Errorf("findSyncWord = %d, %v; want 37, true", off, ok)
		}
	})

	t.Run("false sync skipped", func(t *testing.T) {
		t.Parallel()
		// 0xFF 0xFB with an invalid bitrate is not a frame; the real
		// header follows it.
		buf := append([]byte{0xFF, 0xFB, 0xF0, 0x00}, valid...)
		off, ok := findSyncWord(buf)
		if !ok || off != 4 {
			t.Errorf("findSyncWord = %d, %v; want 4, true", off, ok)
		}
	})

	t.Run("unverifiable tail candidate withheld", func(t *testing.T) {
		t.Parallel()
		// A header starting within the last 3 bytes cannot be
		// validated and must not be reported; the engine's retained
		// tail re-presents it after the next refill.
		buf := append(make([]byte, 10), 0xFF, 0xFB)
		if off, ok := findSyncWord(buf); ok {
			t.Errorf("findSyncWord reported unverifiable offset %d", off)
		}
	})

	t.Run("none", func(t *testing.T) {
		t.Parallel()
		if _, ok := findSyncWord(make([]byte, 64)); ok {
			t.Error("findSyncWord found sync in zeros")
		}
	})
}
