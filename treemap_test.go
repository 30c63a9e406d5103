package collections

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gostonefire/collections/blobfunc"
	"github.com/gostonefire/collections/crt"
)

func newIntTreeMap(t *testing.T) *TreeMap {
	treeMap, err := NewTreeMap(TreeMapConf{KeyLength: 4, ValueLength: 4, CompareFunc: blobfunc.CompareInt32})
	require.NoError(t, err, "creates tree map")

	return treeMap
}

func TestNewTreeMap(t *testing.T) {
	t.Run("rejects zero value length", func(t *testing.T) {
		// Execute
		_, err := NewTreeMap(TreeMapConf{KeyLength: 4, ValueLength: 0, CompareFunc: blobfunc.CompareInt32})

		// Check
		assert.Error(t, err, "zero value length rejected")
	})

	t.Run("rejects missing comparator", func(t *testing.T) {
		// Execute
		_, err := NewTreeMap(TreeMapConf{KeyLength: 4, ValueLength: 4})

		// Check
		assert.Error(t, err, "missing comparator rejected")
	})
}

func TestTreeMap_SortedOrder(t *testing.T) {
	t.Run("min, max and iteration follow the comparator", func(t *testing.T) {
		// Prepare
		treeMap := newIntTreeMap(t)
		for _, k := range []int32{5, 3, 8, 1, 9} {
			err := treeMap.Put(blobfunc.Int32Bytes(k), blobfunc.Int32Bytes(k*10))
			require.NoError(t, err, "inserts entry")
		}

		// Execute
		minKey, minValue, errMin := treeMap.GetMin()
		maxKey, maxValue, errMax := treeMap.GetMax()

		// Check
		assert.NoError(t, errMin, "min found")
		assert.Equal(t, int32(1), blobfunc.BytesInt32(minKey), "correct min key")
		assert.Equal(t, int32(10), blobfunc.BytesInt32(minValue), "correct min value")

		assert.NoError(t, errMax, "max found")
		assert.Equal(t, int32(9), blobfunc.BytesInt32(maxKey), "correct max key")
		assert.Equal(t, int32(90), blobfunc.BytesInt32(maxValue), "correct max value")

		var gotKeys, gotValues []int32
		iter := treeMap.Iterator()
		for iter.HasNext() {
			key, value, err := iter.Next()
			require.NoError(t, err, "produces next entry")
			gotKeys = append(gotKeys, blobfunc.BytesInt32(key))
			gotValues = append(gotValues, blobfunc.BytesInt32(value))
		}
		assert.Equal(t, []int32{1, 3, 5, 8, 9}, gotKeys, "keys in ascending order")
		assert.Equal(t, []int32{10, 30, 50, 80, 90}, gotValues, "values follow keys")
	})
}

func TestTreeMap_PutGetRemove(t *testing.T) {
	t.Run("updates value of existing key in place", func(t *testing.T) {
		// Prepare
		treeMap := newIntTreeMap(t)
		err := treeMap.Put(blobfunc.Int32Bytes(5), blobfunc.Int32Bytes(50))
		require.NoError(t, err, "inserts entry")

		// Execute
		err = treeMap.Put(blobfunc.Int32Bytes(5), blobfunc.Int32Bytes(55))

		// Check
		assert.NoError(t, err, "updates entry")
		assert.Equal(t, 1, treeMap.Size(), "size unchanged")

		value, err := treeMap.Get(blobfunc.Int32Bytes(5))
		assert.NoError(t, err, "finds entry")
		assert.Equal(t, int32(55), blobfunc.BytesInt32(value), "value updated")
	})

	t.Run("removes entries and reports missing keys", func(t *testing.T) {
		// Prepare
		treeMap := newIntTreeMap(t)
		for _, k := range []int32{5, 3, 8} {
			err := treeMap.Put(blobfunc.Int32Bytes(k), blobfunc.Int32Bytes(k))
			require.NoError(t, err, "inserts entry")
		}

		// Execute
		err := treeMap.Remove(blobfunc.Int32Bytes(3))

		// Check
		assert.NoError(t, err, "removes entry")
		assert.Equal(t, 2, treeMap.Size(), "correct size")
		assert.False(t, treeMap.Contains(blobfunc.Int32Bytes(3)), "removed key gone")

		_, err = treeMap.Get(blobfunc.Int32Bytes(3))
		assert.True(t, errors.Is(err, crt.NotFound{}), "missing key reported on get")

		err = treeMap.Remove(blobfunc.Int32Bytes(3))
		assert.True(t, errors.Is(err, crt.NotFound{}), "missing key reported on remove")
	})

	t.Run("rejects wrong key length", func(t *testing.T) {
		// Prepare
		treeMap := newIntTreeMap(t)

		// Execute
		err := treeMap.Put([]byte{1, 2}, blobfunc.Int32Bytes(1))

		// Check
		assert.Error(t, err, "wrong key length rejected")
	})

	t.Run("fails min and max on empty map", func(t *testing.T) {
		// Prepare
		treeMap := newIntTreeMap(t)

		// Execute
		_, _, errMin := treeMap.GetMin()
		_, _, errMax := treeMap.GetMax()

		// Check
		assert.True(t, errors.Is(errMin, crt.EmptyContainer{}), "empty map min reported")
		assert.True(t, errors.Is(errMax, crt.EmptyContainer{}), "empty map max reported")
	})
}

func TestTreeMap_KeysValues(t *testing.T) {
	t.Run("returns snapshots in ascending key order", func(t *testing.T) {
		// Prepare
		treeMap := newIntTreeMap(t)
		for _, k := range []int32{2, 1, 3} {
			err := treeMap.Put(blobfunc.Int32Bytes(k), blobfunc.Int32Bytes(k*100))
			require.NoError(t, err, "inserts entry")
		}

		// Execute
		keys := treeMap.Keys()
		values := treeMap.Values()

		// Check
		require.Equal(t, 3, len(keys), "three keys")
		require.Equal(t, 3, len(values), "three values")
		for i, want := range []int32{1, 2, 3} {
			assert.Equal(t, want, blobfunc.BytesInt32(keys[i]), "key in order")
			assert.Equal(t, want*100, blobfunc.BytesInt32(values[i]), "value follows key")
		}
	})
}

func TestTreeMapIterator_Stale(t *testing.T) {
	t.Run("fails after a modification behind the iterator", func(t *testing.T) {
		// Prepare
		treeMap := newIntTreeMap(t)
		for _, k := range []int32{1, 2, 3} {
			err := treeMap.Put(blobfunc.Int32Bytes(k), blobfunc.Int32Bytes(k))
			require.NoError(t, err, "inserts entry")
		}

		iter := treeMap.Iterator()
		_, _, err := iter.Next()
		require.NoError(t, err, "produces first entry")

		// Execute
		err = treeMap.Remove(blobfunc.Int32Bytes(3))
		require.NoError(t, err, "removes entry behind the iterator")

		_, _, err = iter.Next()

		// Check
		assert.True(t, errors.Is(err, crt.StaleIterator{}), "stale iterator reported")
	})
}

func TestTreeMap_Free(t *testing.T) {
	t.Run("is idempotent and blocks further use", func(t *testing.T) {
		// Prepare
		freed := 0
		treeMap, err := NewTreeMap(TreeMapConf{
			KeyLength:   4,
			ValueLength: 4,
			CompareFunc: blobfunc.CompareInt32,
			FreeKey:     func([]byte) { freed++ },
		})
		require.NoError(t, err, "creates tree map")
		err = treeMap.Put(blobfunc.Int32Bytes(1), blobfunc.Int32Bytes(1))
		require.NoError(t, err, "inserts entry")

		// Execute
		treeMap.Free()
		treeMap.Free()

		// Check
		assert.Equal(t, 1, freed, "key freed exactly once")
		err = treeMap.Put(blobfunc.Int32Bytes(2), blobfunc.Int32Bytes(2))
		assert.Error(t, err, "use after free rejected")
	})
}
