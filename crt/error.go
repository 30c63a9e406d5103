package crt

// NotFound - Custom error to inform that no element matching the given key was found
type NotFound struct {
	msg string
}

// Error - Used to notify that no matching element was found
func (E NotFound) Error() string {
	if E.msg == "" {
		return "key not found"
	}
	return E.msg
}

// Is - Allows errors.Is matching against a zero value NotFound
func (E NotFound) Is(err error) bool {
	_, ok := err.(NotFound)
	return ok
}

// DuplicateKey - Custom error to inform that the key to insert is already present
type DuplicateKey struct {
	msg string
}

// Error - Used to notify that the key already exists
func (E DuplicateKey) Error() string {
	if E.msg == "" {
		return "key already exists"
	}
	return E.msg
}

// Is - Allows errors.Is matching against a zero value DuplicateKey
func (E DuplicateKey) Is(err error) bool {
	_, ok := err.(DuplicateKey)
	return ok
}

// OutOfBounds - Custom error to inform that a given index is outside the valid range
type OutOfBounds struct {
	msg string
}

// Error - Used to notify that an index is out of bounds
func (E OutOfBounds) Error() string {
	if E.msg == "" {
		return "index out of bounds"
	}
	return E.msg
}

// Is - Allows errors.Is matching against a zero value OutOfBounds
func (E OutOfBounds) Is(err error) bool {
	_, ok := err.(OutOfBounds)
	return ok
}

// EmptyContainer - Custom error to inform that the operation needs at least one element present
type EmptyContainer struct {
	msg string
}

// Error - Used to notify that the container is empty
func (E EmptyContainer) Error() string {
	if E.msg == "" {
		return "container is empty"
	}
	return E.msg
}

// Is - Allows errors.Is matching against a zero value EmptyContainer
func (E EmptyContainer) Is(err error) bool {
	_, ok := err.(EmptyContainer)
	return ok
}

// BufferFull - Custom error to inform that a fixed capacity buffer can't take more elements
type BufferFull struct {
	msg string
}

// Error - Used to notify that the buffer is full
func (E BufferFull) Error() string {
	if E.msg == "" {
		return "buffer is full"
	}
	return E.msg
}

// Is - Allows errors.Is matching against a zero value BufferFull
func (E BufferFull) Is(err error) bool {
	_, ok := err.(BufferFull)
	return ok
}

// IteratorExhausted - Custom error to inform that the iterator has produced its last element
type IteratorExhausted struct {
	msg string
}

// Error - Used to notify that the iterator has no more elements
func (E IteratorExhausted) Error() string {
	if E.msg == "" {
		return "iterator is exhausted"
	}
	return E.msg
}

// Is - Allows errors.Is matching against a zero value IteratorExhausted
func (E IteratorExhausted) Is(err error) bool {
	_, ok := err.(IteratorExhausted)
	return ok
}

// IteratorState - Custom error to inform that Remove was called with no element pending removal
type IteratorState struct {
	msg string
}

// Error - Used to notify that there is no last returned element to remove
func (E IteratorState) Error() string {
	if E.msg == "" {
		return "no element to remove, Next has not been called"
	}
	return E.msg
}

// Is - Allows errors.Is matching against a zero value IteratorState
func (E IteratorState) Is(err error) bool {
	_, ok := err.(IteratorState)
	return ok
}

// StaleIterator - Custom error to inform that the container was structurally modified behind the iterator
type StaleIterator struct {
	msg string
}

// Error - Used to notify that the iterator no longer reflects the container
func (E StaleIterator) Error() string {
	if E.msg == "" {
		return "container modified during iteration"
	}
	return E.msg
}

// Is - Allows errors.Is matching against a zero value StaleIterator
func (E StaleIterator) Is(err error) bool {
	_, ok := err.(StaleIterator)
	return ok
}
