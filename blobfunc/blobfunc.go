package blobfunc

import (
	"bytes"
	"hash/crc32"

	"github.com/cespare/xxhash/v2"
)

// HashFunc - Given a key it generates a 32 bit hash value.
// The function must be consistent, i.e. keys considered equal by the accompanying
// EqualsFunc must generate equal hash values.
type HashFunc func(key []byte) uint32

// CompareFunc - Given two keys it returns a negative number if a sorts before b,
// zero if they are equal and a positive number if a sorts after b.
// The function must implement a total order over all keys handed to a container.
type CompareFunc func(a, b []byte) int

// EqualsFunc - Given two keys it returns whether they are to be considered equal.
// Where both a HashFunc and an EqualsFunc are in use they must agree, i.e. equal
// keys must generate equal hash values.
type EqualsFunc func(a, b []byte) bool

// FreeFunc - Optional destructor invoked exactly once per element when the element
// is removed from its container or when the container is torn down. Absence means
// the container performs no cleanup beyond releasing its own storage.
type FreeFunc func(element []byte)

// HashBytes - Default hash function, generates a content hash over the key bytes
// using xxhash folded down to 32 bits.
func HashBytes(key []byte) uint32 {
	h := xxhash.Sum64(key)
	return uint32(h>>32) ^ uint32(h)
}

// HashCRC32 - Alternative hash function using crc32.ChecksumIEEE over the key bytes.
func HashCRC32(key []byte) uint32 {
	return crc32.ChecksumIEEE(key)
}

// EqualsBytes - Default equality function, returns true if a and b are equal both
// in size and contents.
func EqualsBytes(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// CompareBytes - Compares a and b lexicographically byte by byte.
func CompareBytes(a, b []byte) int {
	return bytes.Compare(a, b)
}

// CompareString - Compares a and b as raw string bytes.
// Identical to CompareBytes, provided for readability at call sites storing strings.
func CompareString(a, b []byte) int {
	return bytes.Compare(a, b)
}
