package collections

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gostonefire/collections/blobfunc"
	"github.com/gostonefire/collections/crt"
)

func newIntHashMap(t *testing.T, initialCapacity int) *HashMap {
	hashMap, err := NewHashMap(HashMapConf{KeyLength: 4, ValueLength: 8, InitialCapacity: initialCapacity})
	require.NoError(t, err, "creates hash map")

	return hashMap
}

func TestNewHashMap(t *testing.T) {
	t.Run("rejects zero value length", func(t *testing.T) {
		// Execute
		_, err := NewHashMap(HashMapConf{KeyLength: 4, ValueLength: 0})

		// Check
		assert.Error(t, err, "zero value length rejected")
	})

	t.Run("rejects zero key length", func(t *testing.T) {
		// Execute
		_, err := NewHashMap(HashMapConf{KeyLength: 0, ValueLength: 8})

		// Check
		assert.Error(t, err, "zero key length rejected")
	})
}

func TestHashMap_PutGetRemove(t *testing.T) {
	t.Run("round trips entries", func(t *testing.T) {
		// Prepare
		hashMap := newIntHashMap(t, 0)

		// Execute
		for k := int32(0); k < 100; k++ {
			err := hashMap.Put(blobfunc.Int32Bytes(k), blobfunc.Int64Bytes(int64(k)*1000))
			assert.NoError(t, err, "inserts entry")
		}

		// Check
		assert.Equal(t, 100, hashMap.Size(), "correct size")
		for k := int32(0); k < 100; k++ {
			value, err := hashMap.Get(blobfunc.Int32Bytes(k))
			assert.NoError(t, err, "finds entry")
			assert.Equal(t, int64(k)*1000, blobfunc.BytesInt64(value), "correct value")
		}
	})

	t.Run("updates value of existing key without growing size", func(t *testing.T) {
		// Prepare
		hashMap := newIntHashMap(t, 0)
		err := hashMap.Put(blobfunc.Int32Bytes(1), blobfunc.Int64Bytes(10))
		require.NoError(t, err, "inserts entry")

		// Execute
		err = hashMap.Put(blobfunc.Int32Bytes(1), blobfunc.Int64Bytes(11))

		// Check
		assert.NoError(t, err, "updates entry")
		assert.Equal(t, 1, hashMap.Size(), "size unchanged")

		value, err := hashMap.Get(blobfunc.Int32Bytes(1))
		assert.NoError(t, err, "finds entry")
		assert.Equal(t, int64(11), blobfunc.BytesInt64(value), "value updated")
	})

	t.Run("removes entries and reports missing keys", func(t *testing.T) {
		// Prepare
		hashMap := newIntHashMap(t, 0)
		err := hashMap.Put(blobfunc.Int32Bytes(1), blobfunc.Int64Bytes(10))
		require.NoError(t, err, "inserts entry")

		// Execute
		err = hashMap.Remove(blobfunc.Int32Bytes(1))

		// Check
		assert.NoError(t, err, "removes entry")
		assert.True(t, hashMap.IsEmpty(), "map is empty")

		_, err = hashMap.Get(blobfunc.Int32Bytes(1))
		assert.True(t, errors.Is(err, crt.NotFound{}), "missing key reported on get")

		err = hashMap.Remove(blobfunc.Int32Bytes(1))
		assert.True(t, errors.Is(err, crt.NotFound{}), "missing key reported on remove")
	})

	t.Run("rejects wrong key and value lengths", func(t *testing.T) {
		// Prepare
		hashMap := newIntHashMap(t, 0)

		// Execute / Check
		err := hashMap.Put([]byte{1, 2}, blobfunc.Int64Bytes(1))
		assert.Error(t, err, "wrong key length rejected")

		err = hashMap.Put(blobfunc.Int32Bytes(1), []byte{1, 2})
		assert.Error(t, err, "wrong value length rejected")
	})
}

func TestHashMap_Rehash(t *testing.T) {
	t.Run("doubles bucket count when the load factor is exceeded", func(t *testing.T) {
		// Prepare
		hashMap := newIntHashMap(t, 16)
		require.Equal(t, 16, hashMap.Capacity(), "starts at requested capacity")

		// Execute: twenty distinct keys, the thirteenth pushes 13/16 past 0.75
		for k := int32(0); k < 20; k++ {
			err := hashMap.Put(blobfunc.Int32Bytes(k), blobfunc.Int64Bytes(int64(k)))
			require.NoError(t, err, "inserts entry")
			if hashMap.Size() == 12 {
				assert.Equal(t, 16, hashMap.Capacity(), "no growth at the load factor boundary")
			}
			if hashMap.Size() == 13 {
				assert.Equal(t, 32, hashMap.Capacity(), "capacity doubled above the load factor")
			}
		}

		// Check
		assert.Equal(t, 20, hashMap.Size(), "all entries stored")
		for k := int32(0); k < 20; k++ {
			value, err := hashMap.Get(blobfunc.Int32Bytes(k))
			assert.NoError(t, err, "finds entry after growth")
			assert.Equal(t, int64(k), blobfunc.BytesInt64(value), "correct value after growth")
		}
	})
}

func TestHashMap_KeysValuesForEach(t *testing.T) {
	t.Run("snapshots cover every entry exactly once", func(t *testing.T) {
		// Prepare
		hashMap := newIntHashMap(t, 0)
		for k := int32(0); k < 50; k++ {
			err := hashMap.Put(blobfunc.Int32Bytes(k), blobfunc.Int64Bytes(int64(k)*2))
			require.NoError(t, err, "inserts entry")
		}

		// Execute
		keys := hashMap.Keys()
		values := hashMap.Values()

		visited := map[int32]int64{}
		hashMap.ForEach(func(key, value []byte) {
			visited[blobfunc.BytesInt32(key)] = blobfunc.BytesInt64(value)
		})

		// Check
		assert.Equal(t, 50, len(keys), "every key present")
		assert.Equal(t, 50, len(values), "every value present")
		assert.Equal(t, 50, len(visited), "every entry visited")
		for k, v := range visited {
			assert.Equal(t, int64(k)*2, v, "visited value matches key")
		}
	})
}

func TestHashMap_Stat(t *testing.T) {
	t.Run("reports entries, buckets and distribution", func(t *testing.T) {
		// Prepare
		hashMap := newIntHashMap(t, 64)
		for k := int32(0); k < 40; k++ {
			err := hashMap.Put(blobfunc.Int32Bytes(k), blobfunc.Int64Bytes(int64(k)))
			require.NoError(t, err, "inserts entry")
		}

		// Execute
		stat := hashMap.Stat(true)
		statNoDist := hashMap.Stat(false)

		// Check
		assert.Equal(t, 40, stat.Entries, "correct entry count")
		assert.Equal(t, hashMap.Capacity(), stat.Buckets, "correct bucket count")
		assert.Equal(t, stat.Buckets, len(stat.BucketDistribution), "one slot per bucket")

		total := 0
		for _, count := range stat.BucketDistribution {
			total += count
			assert.LessOrEqual(t, count, stat.LongestChain, "no chain exceeds the longest")
		}
		assert.Equal(t, stat.Entries, total, "distribution sums to entries")
		assert.Nil(t, statNoDist.BucketDistribution, "distribution omitted on request")
	})
}

func TestHashMapIterator(t *testing.T) {
	t.Run("produces every entry once and removes on request", func(t *testing.T) {
		// Prepare
		hashMap := newIntHashMap(t, 0)
		for k := int32(0); k < 30; k++ {
			err := hashMap.Put(blobfunc.Int32Bytes(k), blobfunc.Int64Bytes(int64(k)))
			require.NoError(t, err, "inserts entry")
		}

		// Execute: remove every even key through the iterator
		iter := hashMap.Iterator()
		produced := 0
		for iter.HasNext() {
			key, _, err := iter.Next()
			require.NoError(t, err, "produces next entry")
			produced++
			if blobfunc.BytesInt32(key)%2 == 0 {
				err = iter.Remove()
				assert.NoError(t, err, "removes entry through iterator")
			}
		}

		// Check
		assert.Equal(t, 30, produced, "every entry produced despite removals")
		assert.Equal(t, 15, hashMap.Size(), "even keys removed")
		for k := int32(0); k < 30; k++ {
			assert.Equal(t, k%2 == 1, hashMap.Contains(blobfunc.Int32Bytes(k)), "membership matches parity")
		}
	})

	t.Run("fails remove before next and twice in a row", func(t *testing.T) {
		// Prepare
		hashMap := newIntHashMap(t, 0)
		err := hashMap.Put(blobfunc.Int32Bytes(1), blobfunc.Int64Bytes(1))
		require.NoError(t, err, "inserts entry")

		iter := hashMap.Iterator()

		// Execute / Check
		err = iter.Remove()
		assert.True(t, errors.Is(err, crt.IteratorState{}), "remove before next rejected")

		_, _, err = iter.Next()
		require.NoError(t, err, "produces entry")

		err = iter.Remove()
		assert.NoError(t, err, "first remove accepted")

		err = iter.Remove()
		assert.True(t, errors.Is(err, crt.IteratorState{}), "second remove rejected")
	})

	t.Run("fails after a modification behind the iterator", func(t *testing.T) {
		// Prepare
		hashMap := newIntHashMap(t, 0)
		for k := int32(0); k < 3; k++ {
			err := hashMap.Put(blobfunc.Int32Bytes(k), blobfunc.Int64Bytes(int64(k)))
			require.NoError(t, err, "inserts entry")
		}

		iter := hashMap.Iterator()
		_, _, err := iter.Next()
		require.NoError(t, err, "produces first entry")

		// Execute
		err = hashMap.Put(blobfunc.Int32Bytes(99), blobfunc.Int64Bytes(99))
		require.NoError(t, err, "inserts entry behind the iterator")

		_, _, err = iter.Next()

		// Check
		assert.True(t, errors.Is(err, crt.StaleIterator{}), "stale iterator reported")
	})
}

func TestHashMap_Free(t *testing.T) {
	t.Run("is idempotent and blocks further use", func(t *testing.T) {
		// Prepare
		freedKeys := 0
		freedValues := 0
		hashMap, err := NewHashMap(HashMapConf{
			KeyLength:   4,
			ValueLength: 8,
			FreeKey:     func([]byte) { freedKeys++ },
			FreeValue:   func([]byte) { freedValues++ },
		})
		require.NoError(t, err, "creates hash map")

		for k := int32(0); k < 5; k++ {
			err = hashMap.Put(blobfunc.Int32Bytes(k), blobfunc.Int64Bytes(int64(k)))
			require.NoError(t, err, "inserts entry")
		}

		// Execute
		hashMap.Free()
		hashMap.Free()

		// Check
		assert.Equal(t, 5, freedKeys, "every key freed exactly once")
		assert.Equal(t, 5, freedValues, "every value freed exactly once")

		err = hashMap.Put(blobfunc.Int32Bytes(9), blobfunc.Int64Bytes(9))
		assert.Error(t, err, "use after free rejected")
		assert.False(t, hashMap.Contains(blobfunc.Int32Bytes(1)), "contains false after free")
	})
}
