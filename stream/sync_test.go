// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"errors"
	"testing"

	"github.com/ik5/mp3stream/internal/audiotest"
)

func newSyncStream(data []byte, size int, dec *audiotest.FakeDecoder) (*Stream, *audiotest.ScriptedFile) {
	f := audiotest.NewScriptedFile(data)
	return &Stream{
		file:        f,
		dec:         dec,
		inbuf:       make([]byte, size),
		inbufOffset: size,
	}, f
}

func TestFindSyncImmediate(t *testing.T) {
	t.Parallel()

	dec := audiotest.NewFakeDecoder()
	s, _ := newSyncStream(dec.BuildStream(2, nil), 64, dec)

	ok, err := s.findSync()
	if err != nil {
		t.Fatalf("findSync() error = %v", err)
	}
	if !ok {
		t.Fatal("findSync() = false, want true")
	}
	w := s.window()
	if w[0] != audiotest.SyncA || w[1] != audiotest.SyncB {
		t.Errorf("window starts %#x %#x, want sync marker", w[0], w[1])
	}
}

func TestFindSyncThroughLeadingGarbage(t *testing.T) {
	t.Parallel()

	const garbage = 200
	dec := audiotest.NewFakeDecoder()
	s, f := newSyncStream(dec.BuildStream(2, audiotest.Garbage(garbage)), 64, dec)

	ok, err := s.findSync()
	if err != nil {
		t.Fatalf("findSync() error = %v", err)
	}
	if !ok {
		t.Fatal("findSync() = false, want true")
	}
	w := s.window()
	if w[0] != audiotest.SyncA || w[1] != audiotest.SyncB {
		t.Errorf("window starts %#x %#x, want sync marker", w[0], w[1])
	}

	// Each failed scan discards capacity-16 bytes, so the search must
	// finish within ceil(garbage/(64-16)) refill rounds plus the
	// initial fill and the post-hit refill.
	const maxReads = garbage/(64-16) + 1 + 3
	if f.Reads > maxReads {
		t.Errorf("Reads = %d, want <= %d", f.Reads, maxReads)
	}
}

func TestFindSyncMarkerStraddlesRefill(t *testing.T) {
	t.Parallel()

	// 63 garbage bytes put the marker's first byte at the final
	// position of the first 64-byte window; the retained 16-byte tail
	// must carry it across the refill.
	dec := audiotest.NewFakeDecoder()
	s, _ := newSyncStream(dec.BuildStream(1, audiotest.Garbage(63)), 64, dec)

	ok, err := s.findSync()
	if err != nil {
		t.Fatalf("findSync() error = %v", err)
	}
	if !ok {
		t.Fatal("findSync() = false, want true")
	}
	w := s.window()
	if w[0] != audiotest.SyncA || w[1] != audiotest.SyncB {
		t.Errorf("window starts %#x %#x, want sync marker", w[0], w[1])
	}
}

func TestFindSyncGarbageOnly(t *testing.T) {
	t.Parallel()

	dec := audiotest.NewFakeDecoder()
	s, _ := newSyncStream(audiotest.Garbage(150), 64, dec)

	ok, err := s.findSync()
	if err != nil {
		t.Fatalf("findSync() error = %v", err)
	}
	if ok {
		t.Error("findSync() = true in a stream with no sync marker")
	}
	if !s.eof {
		t.Error("eof not reached after exhausting the stream")
	}
}

func TestFindSyncEmptyStream(t *testing.T) {
	t.Parallel()

	dec := audiotest.NewFakeDecoder()
	s, _ := newSyncStream(nil, 64, dec)

	ok, err := s.findSync()
	if err != nil {
		t.Fatalf("findSync() error = %v", err)
	}
	if ok {
		t.Error("findSync() = true on an empty stream")
	}
}

func TestFindSyncReadFailure(t *testing.T) {
	t.Parallel()

	dec := audiotest.NewFakeDecoder()
	s, f := newSyncStream(dec.BuildStream(2, audiotest.Garbage(200)), 64, dec)
	f.FailAt = 80

	_, err := s.findSync()
	if !errors.Is(err, audiotest.ErrInjected) {
		t.Fatalf("findSync() error = %v, want wrapped ErrInjected", err)
	}
}
