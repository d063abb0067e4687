package ansisenor

import (
	"errors"
	"sync"
)

// ErrSealed is returned by Buffer.Append once the buffer has been sealed.
var ErrSealed = errors.New("capture buffer is sealed")

// Buffer is an append-only accumulator for captured child output. Both
// drain goroutines feed a single Buffer; Seal makes it immutable and hands
// back the accumulated bytes. There is no size limit.
type Buffer struct {
	mu     sync.Mutex
	data   []byte
	sealed bool
}

// Append copies chunk onto the end of the buffer.
func (b *Buffer) Append(chunk []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sealed {
		return ErrSealed
	}
	b.data = append(b.data, chunk...)
	return nil
}

// Seal transitions the buffer to read-only and returns its contents. It is
// idempotent.
func (b *Buffer) Seal() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sealed = true
	return b.data
}

// Len reports the number of bytes accumulated so far.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}
