package collections

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gostonefire/collections/blobfunc"
	"github.com/gostonefire/collections/crt"
)

func TestListQueue(t *testing.T) {
	t.Run("dequeues in enqueue order", func(t *testing.T) {
		// Prepare
		queue, err := NewListQueue(4, nil)
		require.NoError(t, err, "creates list queue")

		// Execute
		for _, e := range []int32{1, 2, 3} {
			require.NoError(t, queue.Enqueue(blobfunc.Int32Bytes(e)), "enqueues element")
		}

		// Check
		front, err := queue.Peek()
		assert.NoError(t, err, "peeks front")
		assert.Equal(t, int32(1), blobfunc.BytesInt32(front), "correct front")

		for _, want := range []int32{1, 2, 3} {
			element, err := queue.Dequeue()
			assert.NoError(t, err, "dequeues element")
			assert.Equal(t, want, blobfunc.BytesInt32(element), "FIFO order")
		}
		assert.True(t, queue.IsEmpty(), "queue is empty")

		_, err = queue.Dequeue()
		assert.True(t, errors.Is(err, crt.EmptyContainer{}), "empty dequeue reported")
	})

	t.Run("iterates front to back with removal", func(t *testing.T) {
		// Prepare
		queue, err := NewListQueue(4, nil)
		require.NoError(t, err, "creates list queue")
		for _, e := range []int32{1, 2, 3, 4} {
			require.NoError(t, queue.Enqueue(blobfunc.Int32Bytes(e)), "enqueues element")
		}

		// Execute
		var got []int32
		iter := queue.Iterator()
		for iter.HasNext() {
			element, err := iter.Next()
			require.NoError(t, err, "produces next element")
			e := blobfunc.BytesInt32(element)
			got = append(got, e)
			if e%2 == 0 {
				require.NoError(t, iter.Remove(), "removes element through iterator")
			}
		}

		// Check
		assert.Equal(t, []int32{1, 2, 3, 4}, got, "front to back order")
		assert.Equal(t, 2, queue.Size(), "even elements removed")

		element, err := queue.Dequeue()
		assert.NoError(t, err, "dequeues element")
		assert.Equal(t, int32(1), blobfunc.BytesInt32(element), "front intact after removals")
	})
}
