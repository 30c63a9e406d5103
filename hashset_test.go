package collections

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gostonefire/collections/blobfunc"
	"github.com/gostonefire/collections/crt"
)

func newIntHashSet(t *testing.T, keys ...int32) *HashSet {
	hashSet, err := NewHashSet(HashSetConf{KeyLength: 4})
	require.NoError(t, err, "creates hash set")

	for _, k := range keys {
		err = hashSet.Insert(blobfunc.Int32Bytes(k))
		require.NoError(t, err, "inserts key")
	}

	return hashSet
}

func setAsInts(s *HashSet) map[int32]bool {
	got := map[int32]bool{}
	s.ForEach(func(key []byte) {
		got[blobfunc.BytesInt32(key)] = true
	})

	return got
}

func TestHashSet_Insert(t *testing.T) {
	t.Run("rejects duplicates keeping distinct keys", func(t *testing.T) {
		// Prepare
		hashSet := newIntHashSet(t)

		// Execute
		duplicates := 0
		for _, k := range []int32{5, 3, 8, 3, 1, 5, 9} {
			if err := hashSet.Insert(blobfunc.Int32Bytes(k)); err != nil {
				assert.True(t, errors.Is(err, crt.DuplicateKey{}), "duplicate rejected")
				duplicates++
			}
		}

		// Check
		assert.Equal(t, 2, duplicates, "two duplicates rejected")
		assert.Equal(t, 5, hashSet.Size(), "five distinct keys")
		for _, k := range []int32{5, 3, 8, 1, 9} {
			assert.True(t, hashSet.Contains(blobfunc.Int32Bytes(k)), "key %d present", k)
		}
		assert.False(t, hashSet.Contains(blobfunc.Int32Bytes(7)), "absent key not present")
	})
}

func TestHashSet_Remove(t *testing.T) {
	t.Run("removes present keys and reports missing ones", func(t *testing.T) {
		// Prepare
		hashSet := newIntHashSet(t, 1, 2, 3)

		// Execute
		err := hashSet.Remove(blobfunc.Int32Bytes(2))

		// Check
		assert.NoError(t, err, "removes key")
		assert.Equal(t, 2, hashSet.Size(), "correct size")
		assert.False(t, hashSet.Contains(blobfunc.Int32Bytes(2)), "removed key gone")

		err = hashSet.Remove(blobfunc.Int32Bytes(2))
		assert.True(t, errors.Is(err, crt.NotFound{}), "missing key reported")
	})
}

func TestHashSet_Algebra(t *testing.T) {
	t.Run("union holds keys of both operands", func(t *testing.T) {
		// Prepare
		a := newIntHashSet(t, 1, 2, 3)
		b := newIntHashSet(t, 3, 4, 5)

		// Execute
		result, err := a.Union(b)

		// Check
		assert.NoError(t, err, "builds union")
		assert.Equal(t, map[int32]bool{1: true, 2: true, 3: true, 4: true, 5: true}, setAsInts(result), "correct union")
		assert.Equal(t, 3, a.Size(), "left operand untouched")
		assert.Equal(t, 3, b.Size(), "right operand untouched")
	})

	t.Run("intersection holds keys present in both operands", func(t *testing.T) {
		// Prepare
		a := newIntHashSet(t, 1, 2, 3, 4)
		b := newIntHashSet(t, 3, 4, 5)

		// Execute
		result, err := a.Intersection(b)

		// Check
		assert.NoError(t, err, "builds intersection")
		assert.Equal(t, map[int32]bool{3: true, 4: true}, setAsInts(result), "correct intersection")
	})

	t.Run("difference holds keys only in the left operand", func(t *testing.T) {
		// Prepare
		a := newIntHashSet(t, 1, 2, 3)
		b := newIntHashSet(t, 3, 4)

		// Execute
		result, err := a.Difference(b)

		// Check
		assert.NoError(t, err, "builds difference")
		assert.Equal(t, map[int32]bool{1: true, 2: true}, setAsInts(result), "correct difference")
	})

	t.Run("operations with an empty set", func(t *testing.T) {
		// Prepare
		a := newIntHashSet(t, 1, 2)
		empty := newIntHashSet(t)

		// Execute
		union, errUnion := a.Union(empty)
		intersection, errIntersection := a.Intersection(empty)

		// Check
		assert.NoError(t, errUnion, "builds union")
		assert.NoError(t, errIntersection, "builds intersection")
		assert.Equal(t, 2, union.Size(), "union equals the non empty operand")
		assert.True(t, intersection.IsEmpty(), "intersection is empty")
	})
}

func TestHashSetIterator(t *testing.T) {
	t.Run("produces every key once and removes on request", func(t *testing.T) {
		// Prepare
		hashSet := newIntHashSet(t)
		for k := int32(0); k < 20; k++ {
			err := hashSet.Insert(blobfunc.Int32Bytes(k))
			require.NoError(t, err, "inserts key")
		}

		// Execute: remove keys below ten through the iterator
		iter := hashSet.Iterator()
		produced := 0
		for iter.HasNext() {
			key, err := iter.Next()
			require.NoError(t, err, "produces next key")
			produced++
			if blobfunc.BytesInt32(key) < 10 {
				err = iter.Remove()
				assert.NoError(t, err, "removes key through iterator")
			}
		}

		// Check
		assert.Equal(t, 20, produced, "every key produced despite removals")
		assert.Equal(t, 10, hashSet.Size(), "low keys removed")
		for k := int32(0); k < 20; k++ {
			assert.Equal(t, k >= 10, hashSet.Contains(blobfunc.Int32Bytes(k)), "membership matches threshold")
		}
	})

	t.Run("fails after a modification behind the iterator", func(t *testing.T) {
		// Prepare
		hashSet := newIntHashSet(t, 1, 2, 3)

		iter := hashSet.Iterator()
		_, err := iter.Next()
		require.NoError(t, err, "produces first key")

		// Execute
		err = hashSet.Insert(blobfunc.Int32Bytes(99))
		require.NoError(t, err, "inserts key behind the iterator")

		_, err = iter.Next()

		// Check
		assert.True(t, errors.Is(err, crt.StaleIterator{}), "stale iterator reported")
	})
}
