// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package membuf

import (
	"unsafe"

	"code.hybscloud.com/atomix"
)

// AtomicRegion is a capability view over a Region's memory that exposes
// operations with explicit memory-ordering contracts. It adds no allocation
// and addresses exactly the same byte range as the Region it was created
// from; plain and atomic accesses may be mixed on the same region, which is
// precisely how the ring publishes messages (plain payload writes followed
// by a release-store of the cursor).
//
// Operand widths are 32 and 64 bits. Every operation checks bounds and
// requires offset % operandSize == 0 (ErrMisaligned otherwise); these checks
// are per-call and cannot be disabled.
//
// Ordering contracts:
//
//	Load/Store          volatile: single-copy atomic, sequentially
//	                    consistent for that location, no cross-location
//	                    ordering implied
//	StoreRelease        all plain writes by this thread before the call are
//	                    visible to any thread whose subsequent Load of this
//	                    location observes the new value
//	Add                 atomic read-modify-write, returns the previous value
//	CompareAndSet       strong CAS, no spurious failure
type AtomicRegion struct {
	r *Region
}

// Atomic creates the atomic view of the region. Returns ErrMisaligned if
// the region's base address is not 8-byte aligned: Go's 64-bit atomics
// require address alignment, so an arbitrary Wrap'd slice may not qualify.
// Regions from Allocate, MapAnonymous, and MapFile always do.
func (r *Region) Atomic() (*AtomicRegion, error) {
	if uintptr(r.base)&7 != 0 {
		return nil, ErrMisaligned
	}
	return &AtomicRegion{r: r}, nil
}

// check validates bounds and natural alignment for an n-byte operand.
func (a *AtomicRegion) check(off, n int) error {
	if !a.r.inBounds(off, n) {
		return ErrOutOfBounds
	}
	if off&(n-1) != 0 {
		return ErrMisaligned
	}
	return nil
}

func (a *AtomicRegion) uint64At(off int) *atomix.Uint64 {
	return (*atomix.Uint64)(unsafe.Add(a.r.base, off))
}

func (a *AtomicRegion) int64At(off int) *atomix.Int64 {
	return (*atomix.Int64)(unsafe.Add(a.r.base, off))
}

func (a *AtomicRegion) int32At(off int) *atomix.Int32 {
	return (*atomix.Int32)(unsafe.Add(a.r.base, off))
}

// LoadUint64 volatile-reads the 64-bit value at off.
func (a *AtomicRegion) LoadUint64(off int) (uint64, error) {
	if err := a.check(off, 8); err != nil {
		return 0, err
	}
	return a.uint64At(off).Load(), nil
}

// StoreUint64 volatile-writes v at off.
func (a *AtomicRegion) StoreUint64(off int, v uint64) error {
	if err := a.check(off, 8); err != nil {
		return err
	}
	a.uint64At(off).Store(v)
	return nil
}

// StoreReleaseUint64 release-stores v at off. This is the publish
// operation: plain writes issued before it become visible to any thread
// that observes the new value with LoadUint64.
func (a *AtomicRegion) StoreReleaseUint64(off int, v uint64) error {
	if err := a.check(off, 8); err != nil {
		return err
	}
	a.uint64At(off).StoreRelease(v)
	return nil
}

// AddUint64 atomically adds delta to the value at off and returns the
// previous value.
func (a *AtomicRegion) AddUint64(off int, delta uint64) (uint64, error) {
	if err := a.check(off, 8); err != nil {
		return 0, err
	}
	return a.uint64At(off).Add(delta) - delta, nil
}

// CompareAndSetUint64 atomically replaces the value at off with next if it
// equals expected. Reports whether the exchange occurred.
func (a *AtomicRegion) CompareAndSetUint64(off int, expected, next uint64) (bool, error) {
	if err := a.check(off, 8); err != nil {
		return false, err
	}
	return a.uint64At(off).CompareAndSwap(expected, next), nil
}

// LoadInt64 volatile-reads the signed 64-bit value at off.
func (a *AtomicRegion) LoadInt64(off int) (int64, error) {
	if err := a.check(off, 8); err != nil {
		return 0, err
	}
	return a.int64At(off).Load(), nil
}

// StoreInt64 volatile-writes v at off.
func (a *AtomicRegion) StoreInt64(off int, v int64) error {
	if err := a.check(off, 8); err != nil {
		return err
	}
	a.int64At(off).Store(v)
	return nil
}

// StoreReleaseInt64 release-stores v at off.
func (a *AtomicRegion) StoreReleaseInt64(off int, v int64) error {
	if err := a.check(off, 8); err != nil {
		return err
	}
	a.int64At(off).StoreRelease(v)
	return nil
}

// AddInt64 atomically adds delta to the value at off and returns the
// previous value.
func (a *AtomicRegion) AddInt64(off int, delta int64) (int64, error) {
	if err := a.check(off, 8); err != nil {
		return 0, err
	}
	return a.int64At(off).Add(delta) - delta, nil
}

// CompareAndSetInt64 atomically replaces the value at off with next if it
// equals expected. Reports whether the exchange occurred.
func (a *AtomicRegion) CompareAndSetInt64(off int, expected, next int64) (bool, error) {
	if err := a.check(off, 8); err != nil {
		return false, err
	}
	return a.int64At(off).CompareAndSwap(expected, next), nil
}

// LoadInt32 volatile-reads the signed 32-bit value at off.
func (a *AtomicRegion) LoadInt32(off int) (int32, error) {
	if err := a.check(off, 4); err != nil {
		return 0, err
	}
	return a.int32At(off).Load(), nil
}

// StoreInt32 volatile-writes v at off.
func (a *AtomicRegion) StoreInt32(off int, v int32) error {
	if err := a.check(off, 4); err != nil {
		return err
	}
	a.int32At(off).Store(v)
	return nil
}

// StoreReleaseInt32 release-stores v at off.
func (a *AtomicRegion) StoreReleaseInt32(off int, v int32) error {
	if err := a.check(off, 4); err != nil {
		return err
	}
	a.int32At(off).StoreRelease(v)
	return nil
}

// AddInt32 atomically adds delta to the value at off and returns the
// previous value.
func (a *AtomicRegion) AddInt32(off int, delta int32) (int32, error) {
	if err := a.check(off, 4); err != nil {
		return 0, err
	}
	return a.int32At(off).Add(delta) - delta, nil
}

// CompareAndSetInt32 atomically replaces the value at off with next if it
// equals expected. Reports whether the exchange occurred.
func (a *AtomicRegion) CompareAndSetInt32(off int, expected, next int32) (bool, error) {
	if err := a.check(off, 4); err != nil {
		return false, err
	}
	return a.int32At(off).CompareAndSwap(expected, next), nil
}

// LoadUint32 volatile-reads the 32-bit value at off.
func (a *AtomicRegion) LoadUint32(off int) (uint32, error) {
	v, err := a.LoadInt32(off)
	return uint32(v), err
}

// StoreUint32 volatile-writes v at off.
func (a *AtomicRegion) StoreUint32(off int, v uint32) error {
	return a.StoreInt32(off, int32(v))
}

// StoreReleaseUint32 release-stores v at off.
func (a *AtomicRegion) StoreReleaseUint32(off int, v uint32) error {
	return a.StoreReleaseInt32(off, int32(v))
}

// AddUint32 atomically adds delta to the value at off and returns the
// previous value. Two's complement makes the signed carrier exact.
func (a *AtomicRegion) AddUint32(off int, delta uint32) (uint32, error) {
	v, err := a.AddInt32(off, int32(delta))
	return uint32(v), err
}

// CompareAndSetUint32 atomically replaces the value at off with next if it
// equals expected. Reports whether the exchange occurred.
func (a *AtomicRegion) CompareAndSetUint32(off int, expected, next uint32) (bool, error) {
	return a.CompareAndSetInt32(off, int32(expected), int32(next))
}
