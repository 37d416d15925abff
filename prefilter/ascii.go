package prefilter

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// highBitMask has the high bit of every byte set; a nonzero AND with it
// means at least one byte in the word is non-ASCII.
const highBitMask = 0x8080808080808080

// isASCII reports whether data contains no byte >= 0x80. Processors wide
// enough to benefit from word-at-a-time scanning (detected via
// cpu.X86.HasAVX2) use an 8-bytes-at-a-time check; others fall back to a
// scalar byte loop.
func isASCII(data []byte) bool {
	if cpu.X86.HasAVX2 {
		return isASCIIWide(data)
	}
	return isASCIIScalar(data)
}

// IsASCIIString reports whether s contains no byte >= 0x80, so that rune
// offsets and byte offsets into s coincide. Pattern.SearchIn uses this to
// decide whether the Aho-Corasick prefilter (which indexes by byte) can
// be trusted to report rune-aligned candidate positions.
func IsASCIIString(s string) bool {
	return isASCII([]byte(s))
}

func isASCIIScalar(data []byte) bool {
	for _, b := range data {
		if b >= 0x80 {
			return false
		}
	}
	return true
}

func isASCIIWide(data []byte) bool {
	for len(data) >= 8 {
		word := binary.LittleEndian.Uint64(data)
		if word&highBitMask != 0 {
			return false
		}
		data = data[8:]
	}
	return isASCIIScalar(data)
}
