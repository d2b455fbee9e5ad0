// Package hash provides the content fingerprint used to identify corpora.
package hash

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Sum64 computes the xxHash64 of data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Hex formats a fingerprint as 16 lowercase hex digits.
func Hex(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}
