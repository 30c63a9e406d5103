package collections

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gostonefire/collections/blobfunc"
	"github.com/gostonefire/collections/crt"
)

func newIntLinkedHashSet(t *testing.T, keys ...int32) *LinkedHashSet {
	hashSet, err := NewLinkedHashSet(LinkedHashSetConf{KeyLength: 4})
	require.NoError(t, err, "creates linked hash set")

	for _, k := range keys {
		err = hashSet.Insert(blobfunc.Int32Bytes(k))
		require.NoError(t, err, "inserts key")
	}

	return hashSet
}

func TestLinkedHashSet_InsertionOrder(t *testing.T) {
	t.Run("iteration and endpoints follow insertion order", func(t *testing.T) {
		// Prepare
		hashSet := newIntLinkedHashSet(t, 5, 3, 8, 1)

		// Execute
		firstKey, errFirst := hashSet.GetFirst()
		lastKey, errLast := hashSet.GetLast()

		// Check
		assert.NoError(t, errFirst, "first found")
		assert.Equal(t, int32(5), blobfunc.BytesInt32(firstKey), "correct first key")
		assert.NoError(t, errLast, "last found")
		assert.Equal(t, int32(1), blobfunc.BytesInt32(lastKey), "correct last key")

		var got []int32
		hashSet.ForEach(func(key []byte) {
			got = append(got, blobfunc.BytesInt32(key))
		})
		assert.Equal(t, []int32{5, 3, 8, 1}, got, "keys in insertion order")
	})

	t.Run("rejects duplicates without disturbing order", func(t *testing.T) {
		// Prepare
		hashSet := newIntLinkedHashSet(t, 5, 3, 8)

		// Execute
		err := hashSet.Insert(blobfunc.Int32Bytes(3))

		// Check
		assert.True(t, errors.Is(err, crt.DuplicateKey{}), "duplicate rejected")
		assert.Equal(t, 3, hashSet.Size(), "size unchanged")

		var got []int32
		hashSet.ForEach(func(key []byte) {
			got = append(got, blobfunc.BytesInt32(key))
		})
		assert.Equal(t, []int32{5, 3, 8}, got, "order unchanged")
	})
}

func TestLinkedHashSet_Remove(t *testing.T) {
	t.Run("removing endpoints updates both anchors", func(t *testing.T) {
		// Prepare
		hashSet := newIntLinkedHashSet(t, 1, 2, 3)

		// Execute
		err := hashSet.Remove(blobfunc.Int32Bytes(1))
		require.NoError(t, err, "removes head key")
		err = hashSet.Remove(blobfunc.Int32Bytes(3))
		require.NoError(t, err, "removes tail key")

		// Check
		firstKey, err := hashSet.GetFirst()
		assert.NoError(t, err, "first found")
		assert.Equal(t, int32(2), blobfunc.BytesInt32(firstKey), "head anchor updated")

		lastKey, err := hashSet.GetLast()
		assert.NoError(t, err, "last found")
		assert.Equal(t, int32(2), blobfunc.BytesInt32(lastKey), "tail anchor updated")
	})

	t.Run("fails on missing key", func(t *testing.T) {
		// Prepare
		hashSet := newIntLinkedHashSet(t, 1)

		// Execute
		err := hashSet.Remove(blobfunc.Int32Bytes(42))

		// Check
		assert.True(t, errors.Is(err, crt.NotFound{}), "missing key reported")
	})
}

func TestLinkedHashSetIterator(t *testing.T) {
	t.Run("produces keys in insertion order and removes on request", func(t *testing.T) {
		// Prepare
		hashSet := newIntLinkedHashSet(t, 10, 20, 30, 40)

		// Execute: remove 20 through the iterator
		var got []int32
		iter := hashSet.Iterator()
		for iter.HasNext() {
			key, err := iter.Next()
			require.NoError(t, err, "produces next key")
			k := blobfunc.BytesInt32(key)
			got = append(got, k)
			if k == 20 {
				err = iter.Remove()
				assert.NoError(t, err, "removes key through iterator")
			}
		}

		// Check
		assert.Equal(t, []int32{10, 20, 30, 40}, got, "every key produced in order")
		assert.Equal(t, 3, hashSet.Size(), "one key removed")
		assert.False(t, hashSet.Contains(blobfunc.Int32Bytes(20)), "removed key gone")

		keys := hashSet.Keys()
		require.Equal(t, 3, len(keys), "three keys remain")
		for i, want := range []int32{10, 30, 40} {
			assert.Equal(t, want, blobfunc.BytesInt32(keys[i]), "remaining order intact")
		}
	})

	t.Run("fails after a modification behind the iterator", func(t *testing.T) {
		// Prepare
		hashSet := newIntLinkedHashSet(t, 1, 2)

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
