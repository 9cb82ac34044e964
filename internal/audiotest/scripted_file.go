// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"fmt"
	"io"
)

// ErrInjected is the failure ScriptedFile injects when configured to.
var ErrInjected = errors.New("audiotest: injected read failure")

// ScriptedFile is an io.ReadSeeker over an in-memory byte stream with
// controllable read behavior: short reads, injected failures, and
// call counting. It only supports rewinding to the start, which is
// the only seek the engine performs.
type ScriptedFile struct {
	Data []byte

	// MaxChunk caps the bytes served per Read call (0 = no cap),
	// simulating sources that return short reads.
	MaxChunk int
	// FailAt injects ErrInjected once the read position reaches that
	// byte offset. Negative disables it.
	FailAt int

	Reads int
	Seeks int

	pos int
}

// NewScriptedFile wraps data with failure injection disabled.
func NewScriptedFile(data []byte) *ScriptedFile {
	return &ScriptedFile{Data: data, FailAt: -1}
}

func (f *ScriptedFile) Read(p []byte) (int, error) {
	f.Reads++

	if f.FailAt >= 0 && f.pos >= f.FailAt {
		return 0, ErrInjected
	}
	if f.pos >= len(f.Data) {
		return 0, io.EOF
	}

	end := len(f.Data)
	if f.FailAt >= 0 && f.FailAt < end {
		end = f.FailAt
	}

	avail := f.Data[f.pos:end]
	if f.MaxChunk > 0 && len(avail) > f.MaxChunk {
		avail = avail[:f.MaxChunk]
	}

	n := copy(p, avail)
	f.pos += n
	return n, nil
}

func (f *ScriptedFile) Seek(offset int64, whence int) (int64, error) {
	f.Seeks++

	if offset != 0 || whence != io.SeekStart {
		return 0, fmt.Errorf("audiotest: unsupported seek(%d, %d)", offset, whence)
	}
	f.pos = 0
	return 0, nil
}
