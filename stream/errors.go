// SPDX-License-Identifier: EPL-2.0

package stream

import "errors"

var (
	// ErrMalformedStream reports that no valid frame could be parsed
	// while constructing the stream.
	ErrMalformedStream = errors.New("no valid audio frame found")
	// ErrClosed reports use of a stream after Close.
	ErrClosed = errors.New("stream is closed")
)
