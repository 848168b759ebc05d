// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package membuf

import (
	"math"
	"unsafe"
)

// cacheLine is the assumed cache line size for allocation alignment.
const cacheLine = 64

// Region is a fixed-size contiguous memory range with defined ownership.
//
// A Region either owns its memory (created by [Allocate] or [MapAnonymous]/
// [MapFile]) or borrows it (created by [Wrap] or [WrapPointer]). Owned memory
// is released exactly once by [Region.Close]; borrowed memory is never
// released by the Region and the caller must guarantee it outlives the Region.
//
// A Region never resizes; its length is fixed at construction and is always
// greater than zero.
//
// All typed accessors operate at byte offsets in host byte order, which is
// little-endian on every platform this module supports. The layout is
// byte-exact, so a Region over a memory-mapped file or shared-memory segment
// can be read by another process mapping the same bytes.
//
// Plain Region operations carry no cross-thread ordering guarantees. For
// cross-thread signaling use [Region.Atomic].
type Region struct {
	base    unsafe.Pointer
	mem     []byte
	owned   bool
	checked bool
	closed  bool
	release func() error
}

// Allocate creates a Region over freshly allocated heap memory of n bytes,
// aligned to a cache line boundary. The Region owns the memory.
// Returns ErrInvalidCapacity if n <= 0.
func Allocate(n int, opts ...Option) (*Region, error) {
	if n <= 0 {
		return nil, ErrInvalidCapacity
	}

	buf := make([]byte, n+cacheLine)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	pad := int((-addr) & (cacheLine - 1))
	mem := buf[pad : pad+n : pad+n]

	r := newRegion(mem, opts)
	r.owned = true
	return r, nil
}

// Wrap creates a Region borrowing the memory of b. The caller must guarantee
// b's backing array outlives the Region; the Region never releases it.
// Panics if b is empty.
func Wrap(b []byte, opts ...Option) *Region {
	if len(b) == 0 {
		panic("membuf: region length must be > 0")
	}
	return newRegion(b, opts)
}

// WrapPointer creates a Region borrowing n bytes starting at p. The caller
// must guarantee the memory outlives the Region and is not moved by the
// garbage collector (externally allocated or mapped memory).
// Panics if p is nil or n <= 0.
func WrapPointer(p unsafe.Pointer, n int, opts ...Option) *Region {
	if p == nil || n <= 0 {
		panic("membuf: region length must be > 0")
	}
	return newRegion(unsafe.Slice((*byte)(p), n), opts)
}

func newRegion(mem []byte, opts []Option) *Region {
	o := Options{boundsCheck: true}
	for _, opt := range opts {
		opt(&o)
	}
	return &Region{
		base:    unsafe.Pointer(unsafe.SliceData(mem)),
		mem:     mem,
		checked: o.boundsCheck,
	}
}

// Len returns the region length in bytes.
func (r *Region) Len() int {
	return len(r.mem)
}

// Bytes returns the region's memory as a byte slice.
// The slice aliases the region; writes through it are plain writes.
func (r *Region) Bytes() []byte {
	return r.mem
}

// Close releases owned memory exactly once. Closing a borrowed Region or
// closing twice is a no-op. The Region must not be used after Close.
func (r *Region) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if r.release != nil {
		return r.release()
	}
	r.mem = nil
	return nil
}

// inBounds reports whether [off, off+n) lies inside the region.
func (r *Region) inBounds(off, n int) bool {
	return uint(off) <= uint(len(r.mem)) && uint(n) <= uint(len(r.mem)-off)
}

// GetUint8 reads the byte at off.
func (r *Region) GetUint8(off int) (uint8, error) {
	if r.checked && !r.inBounds(off, 1) {
		return 0, ErrOutOfBounds
	}
	return *(*uint8)(unsafe.Add(r.base, off)), nil
}

// PutUint8 writes v at off.
func (r *Region) PutUint8(off int, v uint8) error {
	if r.checked && !r.inBounds(off, 1) {
		return ErrOutOfBounds
	}
	*(*uint8)(unsafe.Add(r.base, off)) = v
	return nil
}

// GetInt8 reads the signed byte at off.
func (r *Region) GetInt8(off int) (int8, error) {
	v, err := r.GetUint8(off)
	return int8(v), err
}

// PutInt8 writes v at off.
func (r *Region) PutInt8(off int, v int8) error {
	return r.PutUint8(off, uint8(v))
}

// GetUint16 reads the 16-bit value at off.
func (r *Region) GetUint16(off int) (uint16, error) {
	if r.checked && !r.inBounds(off, 2) {
		return 0, ErrOutOfBounds
	}
	return *(*uint16)(unsafe.Add(r.base, off)), nil
}

// PutUint16 writes v at off.
func (r *Region) PutUint16(off int, v uint16) error {
	if r.checked && !r.inBounds(off, 2) {
		return ErrOutOfBounds
	}
	*(*uint16)(unsafe.Add(r.base, off)) = v
	return nil
}

// GetInt16 reads the signed 16-bit value at off.
func (r *Region) GetInt16(off int) (int16, error) {
	v, err := r.GetUint16(off)
	return int16(v), err
}

// PutInt16 writes v at off.
func (r *Region) PutInt16(off int, v int16) error {
	return r.PutUint16(off, uint16(v))
}

// GetUint32 reads the 32-bit value at off.
func (r *Region) GetUint32(off int) (uint32, error) {
	if r.checked && !r.inBounds(off, 4) {
		return 0, ErrOutOfBounds
	}
	return *(*uint32)(unsafe.Add(r.base, off)), nil
}

// PutUint32 writes v at off.
func (r *Region) PutUint32(off int, v uint32) error {
	if r.checked && !r.inBounds(off, 4) {
		return ErrOutOfBounds
	}
	*(*uint32)(unsafe.Add(r.base, off)) = v
	return nil
}

// GetInt32 reads the signed 32-bit value at off.
func (r *Region) GetInt32(off int) (int32, error) {
	v, err := r.GetUint32(off)
	return int32(v), err
}

// PutInt32 writes v at off.
func (r *Region) PutInt32(off int, v int32) error {
	return r.PutUint32(off, uint32(v))
}

// GetUint64 reads the 64-bit value at off.
func (r *Region) GetUint64(off int) (uint64, error) {
	if r.checked && !r.inBounds(off, 8) {
		return 0, ErrOutOfBounds
	}
	return *(*uint64)(unsafe.Add(r.base, off)), nil
}

// PutUint64 writes v at off.
func (r *Region) PutUint64(off int, v uint64) error {
	if r.checked && !r.inBounds(off, 8) {
		return ErrOutOfBounds
	}
	*(*uint64)(unsafe.Add(r.base, off)) = v
	return nil
}

// GetInt64 reads the signed 64-bit value at off.
func (r *Region) GetInt64(off int) (int64, error) {
	v, err := r.GetUint64(off)
	return int64(v), err
}

// PutInt64 writes v at off.
func (r *Region) PutInt64(off int, v int64) error {
	return r.PutUint64(off, uint64(v))
}

// GetFloat32 reads the 32-bit float at off.
func (r *Region) GetFloat32(off int) (float32, error) {
	v, err := r.GetUint32(off)
	return math.Float32frombits(v), err
}

// PutFloat32 writes v at off.
func (r *Region) PutFloat32(off int, v float32) error {
	return r.PutUint32(off, math.Float32bits(v))
}

// GetFloat64 reads the 64-bit float at off.
func (r *Region) GetFloat64(off int) (float64, error) {
	v, err := r.GetUint64(off)
	return math.Float64frombits(v), err
}

// PutFloat64 writes v at off.
func (r *Region) PutFloat64(off int, v float64) error {
	return r.PutUint64(off, math.Float64bits(v))
}

// GetBytes copies len(dst) bytes starting at off into dst.
func (r *Region) GetBytes(off int, dst []byte) error {
	if r.checked && !r.inBounds(off, len(dst)) {
		return ErrOutOfBounds
	}
	copy(dst, unsafe.Slice((*byte)(unsafe.Add(r.base, off)), len(dst)))
	return nil
}

// PutBytes copies src into the region starting at off.
// The copy is overlap-safe: src may alias the region's own memory.
func (r *Region) PutBytes(off int, src []byte) error {
	if r.checked && !r.inBounds(off, len(src)) {
		return ErrOutOfBounds
	}
	copy(unsafe.Slice((*byte)(unsafe.Add(r.base, off)), len(src)), src)
	return nil
}

// Fill sets n bytes starting at off to v.
func (r *Region) Fill(off, n int, v byte) error {
	if r.checked && !r.inBounds(off, n) {
		return ErrOutOfBounds
	}
	b := unsafe.Slice((*byte)(unsafe.Add(r.base, off)), n)
	for i := range b {
		b[i] = v
	}
	return nil
}

// isPowerOfTwo reports whether v is a positive power of two.
func isPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}
