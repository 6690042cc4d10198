package buffer

import (
	"fmt"
	"unsafe"

	"github.com/cwbudde/algo-noisegen/dsp/core"
)

// Alignment is the byte alignment of every buffer base address and row.
const Alignment = 32

// maxBytes caps a single allocation. Requests beyond it fail with an
// AllocationError instead of reaching the runtime, whose out-of-memory
// condition is not recoverable.
var maxBytes int64 = 1 << 36

// Element is the set of sample and noise storage types.
type Element interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~float32
}

// SizeOf returns the storage size of T in bytes.
func SizeOf[T Element]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Stride returns the row stride in elements for a row of width elements,
// padded to Alignment bytes.
func Stride[T Element](width int) int {
	size := SizeOf[T]()
	return core.RoundUp(width*size, Alignment) / size
}

// Alloc returns a zeroed slice of n elements whose first element is
// Alignment-byte aligned.
func Alloc[T Element](n int) (s []T, err error) {
	size := SizeOf[T]()
	bytes := int64(n) * int64(size)

	switch {
	case n < 0:
		return nil, &AllocationError{Bytes: bytes, Err: errNegativeSize}
	case int64(n) > maxBytes/int64(size):
		return nil, &AllocationError{Bytes: bytes, Err: errTooLarge}
	case n == 0:
		return []T{}, nil
	}

	defer func() {
		if r := recover(); r != nil {
			s = nil
			err = &AllocationError{Bytes: bytes, Err: fmt.Errorf("%v", r)}
		}
	}()

	raw := make([]T, n+Alignment/size)
	pad := 0
	if mis := int(uintptr(unsafe.Pointer(unsafe.SliceData(raw))) % Alignment); mis != 0 {
		pad = (Alignment - mis) / size
	}

	return raw[pad : pad+n : pad+n], nil
}

// IsAligned reports whether the first element of s sits on an Alignment
// boundary. Empty slices are considered aligned.
func IsAligned[T Element](s []T) bool {
	if len(s) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(s)))%Alignment == 0
}

// Buffer is a row-major 2D sample buffer with an aligned, padded stride.
type Buffer[T Element] struct {
	data   []T
	width  int
	height int
	stride int
}

// New allocates a zeroed width x height buffer.
func New[T Element](width, height int) (*Buffer[T], error) {
	if width < 0 || height < 0 {
		return nil, &AllocationError{Err: errNegativeSize}
	}

	stride := Stride[T](width)
	if height > 0 && int64(stride) > maxBytes/int64(height) {
		return nil, &AllocationError{Bytes: int64(stride) * int64(height) * int64(SizeOf[T]()), Err: errTooLarge}
	}

	data, err := Alloc[T](stride * height)
	if err != nil {
		return nil, err
	}

	return &Buffer[T]{data: data, width: width, height: height, stride: stride}, nil
}

// Samples returns the whole backing slice, padding included.
func (b *Buffer[T]) Samples() []T { return b.data }

// Row returns row y including its padding (Stride elements).
func (b *Buffer[T]) Row(y int) []T {
	off := y * b.stride
	return b.data[off : off+b.stride : off+b.stride]
}

// Width returns the logical row width in elements.
func (b *Buffer[T]) Width() int { return b.width }

// Height returns the number of rows.
func (b *Buffer[T]) Height() int { return b.height }

// Stride returns the padded row length in elements.
func (b *Buffer[T]) Stride() int { return b.stride }

// Zero clears every element, padding included.
func (b *Buffer[T]) Zero() { clear(b.data) }

// Release drops the backing storage. The buffer must not be used afterwards.
func (b *Buffer[T]) Release() {
	b.data = nil
	b.width, b.height, b.stride = 0, 0, 0
}
