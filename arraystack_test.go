package collections

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gostonefire/collections/blobfunc"
	"github.com/gostonefire/collections/crt"
)

func TestArrayStack(t *testing.T) {
	t.Run("pops in reverse push order", func(t *testing.T) {
		// Prepare
		stack, err := NewArrayStack(4, 0, nil)
		require.NoError(t, err, "creates array stack")

		// Execute
		for _, e := range []int32{1, 2, 3} {
			require.NoError(t, stack.Push(blobfunc.Int32Bytes(e)), "pushes element")
		}

		// Check
		top, err := stack.Peek()
		assert.NoError(t, err, "peeks top")
		assert.Equal(t, int32(3), blobfunc.BytesInt32(top), "correct top")
		assert.Equal(t, 3, stack.Size(), "peek does not remove")

		for _, want := range []int32{3, 2, 1} {
			element, err := stack.Pop()
			assert.NoError(t, err, "pops element")
			assert.Equal(t, want, blobfunc.BytesInt32(element), "LIFO order")
		}
		assert.True(t, stack.IsEmpty(), "stack is empty")
	})

	t.Run("fails pop and peek on empty stack", func(t *testing.T) {
		// Prepare
		stack, err := NewArrayStack(4, 0, nil)
		require.NoError(t, err, "creates array stack")

		// Execute / Check
		_, err = stack.Pop()
		assert.True(t, errors.Is(err, crt.EmptyContainer{}), "empty pop reported")
		_, err = stack.Peek()
		assert.True(t, errors.Is(err, crt.EmptyContainer{}), "empty peek reported")
	})

	t.Run("iterates bottom to top with removal", func(t *testing.T) {
		// Prepare
		stack, err := NewArrayStack(4, 0, nil)
		require.NoError(t, err, "creates array stack")
		for _, e := range []int32{1, 2, 3} {
			require.NoError(t, stack.Push(blobfunc.Int32Bytes(e)), "pushes element")
		}

		// Execute
		var got []int32
		iter := stack.Iterator()
		for iter.HasNext() {
			element, err := iter.Next()
			require.NoError(t, err, "produces next element")
			e := blobfunc.BytesInt32(element)
			got = append(got, e)
			if e == 2 {
				require.NoError(t, iter.Remove(), "removes element through iterator")
			}
		}

		// Check
		assert.Equal(t, []int32{1, 2, 3}, got, "bottom to top order")
		assert.Equal(t, 2, stack.Size(), "one element removed")

		top, err := stack.Pop()
		assert.NoError(t, err, "pops element")
		assert.Equal(t, int32(3), blobfunc.BytesInt32(top), "top unaffected by mid stack removal")
	})
}
