// SPDX-License-Identifier: EPL-2.0

package utils

import "encoding/binary"

// PutInt16LE writes sample little-endian at dst[0:2].
func PutInt16LE(dst []byte, sample int16) {
	binary.LittleEndian.PutUint16(dst, uint16(sample))
}

// Int16LE reads the little-endian sample at src[0:2].
func Int16LE(src []byte) int16 {
	return int16(binary.LittleEndian.Uint16(src))
}

// PCM16LEToInt widens little-endian int16 PCM bytes into dst and
// returns the count of samples written. Extra capacity in either
// slice is left alone; an odd trailing byte in src is ignored.
func PCM16LEToInt(dst []int, src []byte) int {
	n := min(len(dst), len(src)/2)
	for i := 0; i < n; i++ {
		dst[i] = int(Int16LE(src[2*i:]))
	}
	return n
}
