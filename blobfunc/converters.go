package blobfunc

import (
	"encoding/binary"
	"math"
)

// Int32Bytes - Converts an int32 to its 4 byte little endian representation
func Int32Bytes(v int32) (buf []byte) {
	buf = make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(v))

	return
}

// BytesInt32 - Converts a 4 byte little endian representation back to an int32
func BytesInt32(buf []byte) int32 {
	return int32(binary.LittleEndian.Uint32(buf))
}

// Int64Bytes - Converts an int64 to its 8 byte little endian representation
func Int64Bytes(v int64) (buf []byte) {
	buf = make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, uint64(v))

	return
}

// BytesInt64 - Converts an 8 byte little endian representation back to an int64
func BytesInt64(buf []byte) int64 {
	return int64(binary.LittleEndian.Uint64(buf))
}

// Float64Bytes - Converts a float64 to its 8 byte little endian IEEE 754 representation
func Float64Bytes(v float64) (buf []byte) {
	buf = make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, math.Float64bits(v))

	return
}

// BytesFloat64 - Converts an 8 byte little endian IEEE 754 representation back to a float64
func BytesFloat64(buf []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(buf))
}

// CompareInt32 - Compares a and b as 4 byte little endian int32 values
func CompareInt32(a, b []byte) int {
	av, bv := BytesInt32(a), BytesInt32(b)
	if av < bv {
		return -1
	}
	if av > bv {
		return 1
	}

	return 0
}

// CompareInt64 - Compares a and b as 8 byte little endian int64 values
func CompareInt64(a, b []byte) int {
	av, bv := BytesInt64(a), BytesInt64(b)
	if av < bv {
		return -1
	}
	if av > bv {
		return 1
	}

	return 0
}

// CompareUint64 - Compares a and b as 8 byte little endian uint64 values
func CompareUint64(a, b []byte) int {
	av := binary.LittleEndian.Uint64(a)
	bv := binary.LittleEndian.Uint64(b)
	if av < bv {
		return -1
	}
	if av > bv {
		return 1
	}

	return 0
}

// CompareFloat64 - Compares a and b as 8 byte little endian IEEE 754 float64 values
func CompareFloat64(a, b []byte) int {
	av, bv := BytesFloat64(a), BytesFloat64(b)
	if av < bv {
		return -1
	}
	if av > bv {
		return 1
	}

	return 0
}
