// Package buffer provides 32-byte aligned, stride-padded sample buffers.
//
// Every row of a [Buffer] starts on a 32-byte boundary so that fixed-width
// vector kernels can process whole chunks without straddling an alignment
// boundary. The stride is padded in bytes, so the stride in elements depends
// on the element size: a 100-sample row is padded to 128 int8, 112 int16 or
// 104 float32 elements.
//
// Allocation failures are reported as [*AllocationError] values that match
// [ErrAllocation] with errors.Is.
package buffer
