// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package membuf provides zero-copy memory regions with atomic access
// semantics and a lock-free single-producer single-consumer message ring
// built on them.
//
// The package layers three components, each depending only on the one below:
//
//   - [Region]: a fixed contiguous memory range (heap, wrapped slice, raw
//     pointer, or memory mapping) with typed get/put at byte offsets, bulk
//     copy/fill, and ASCII numeric parse/format. Plain operations, no
//     cross-thread ordering.
//   - [AtomicRegion]: a view over the same bytes exposing volatile loads and
//     stores, release-stores, fetch-add, and compare-and-set with explicit
//     memory-ordering contracts.
//   - [Producer]/[Consumer]: the two endpoints of an SPSC message ring whose
//     cursors live in the region header and whose payload slots are written
//     with plain operations, published by a single release-store.
//
// # Quick Start
//
//	region, err := membuf.Allocate(membuf.RingSize(1024, 64))
//	if err != nil {
//	    // handle
//	}
//	defer region.Close()
//
//	prod, cons, err := membuf.NewRing(region, 1024, 64)
//	if err != nil {
//	    // handle
//	}
//
//	// Producer goroutine
//	err = prod.TryPublish([]byte("tick:EURUSD:1.0842"))
//	if membuf.IsWouldBlock(err) {
//	    // ring full - apply backpressure
//	}
//
//	// Consumer goroutine
//	buf := make([]byte, 60)
//	n, err := cons.TryConsume(buf)
//	if err == nil {
//	    process(buf[:n])
//	}
//
// # Memory Layout
//
// A ring occupies its region byte-exactly, so a region backed by [MapFile]
// over a shared file is a cross-process channel:
//
//	offset 0         head cursor (u64, consumer, monotonic)
//	offset 8         tail cursor (u64, producer, monotonic)
//	offset 16        slot 0: length prefix (u32) + payload
//	offset 16 + k*s  slot k (stride s, fixed, never split across the wrap)
//
// Typed region accessors use host byte order, little-endian on every
// platform this module supports.
//
// # Ownership
//
// A Region either owns its memory ([Allocate], [MapAnonymous], [MapFile]) or
// borrows it ([Wrap], [WrapPointer]). [Region.Close] releases owned memory
// exactly once and never touches borrowed memory; the caller of Wrap
// guarantees the memory outlives the Region. AtomicRegion and the ring
// endpoints borrow their Region and add no allocation of their own.
//
// # Bounds Policy
//
// Every plain accessor checks bounds and returns [ErrOutOfBounds] on
// overrun. Construction with [NoBoundsCheck] selects the unchecked operation
// set with identical signatures; the bounds contract then becomes
// caller-enforced and violations are undefined behavior. Atomic operations
// always check bounds and alignment.
//
// # Memory Ordering
//
// Atomic operations map onto [code.hybscloud.com/atomix] primitives:
//
//	volatile load      atomix Load        single-copy atomic, per-location
//	volatile store     atomix Store       single-copy atomic, per-location
//	release store      atomix StoreRelease prior plain writes visible to an
//	                                      acquiring observer of the value
//	fetch-add          atomix Add         returns the previous value
//	compare-and-set    atomix CompareAndSwap strong, no spurious failure
//
// The ring's sole synchronization is the release-store of a cursor after
// the slot write, paired with an acquire-load of that cursor before the
// slot read. No locks, no fences beyond that pair.
//
// # Error Handling
//
// Contract violations are explicit errors: [ErrOutOfBounds],
// [ErrMisaligned], [ErrInvalidFormat], [ErrInvalidLength],
// [ErrInvalidCapacity]. Ring fullness and emptiness are not failures but
// back-pressure, reported as [ErrWouldBlock] sourced from
// [code.hybscloud.com/iox] for ecosystem consistency:
//
//	backoff := iox.Backoff{}
//	for {
//	    err := prod.TryPublish(payload)
//	    if err == nil {
//	        backoff.Reset()
//	        break
//	    }
//	    if !membuf.IsWouldBlock(err) {
//	        return err // contract violation
//	    }
//	    backoff.Wait()
//	}
//
// Neither endpoint ever blocks; idle strategy is the caller's policy.
//
// # Thread Safety
//
// Region and AtomicRegion methods are as safe as their contracts state:
// plain operations are unsynchronized, atomic operations are safe from any
// number of goroutines. The ring is strictly one producer goroutine and one
// consumer goroutine; NewRing returns exactly one handle for each role and
// the handles are not duplicable. Violating the SPSC contract, whether two
// goroutines publishing or two consuming, is undefined behavior including
// data corruption, and is not detected.
//
// # Race Detection
//
// Go's race detector tracks explicit synchronization primitives but cannot
// observe the happens-before relationship the cursor release/acquire pair
// establishes over plain slot writes. Ring stress tests are therefore
// skipped under the race detector via [RaceEnabled]; the protocol is
// verified by checksum stress tests without it.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic primitives with
// explicit memory ordering, [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/spin] for CPU pause in contended retry loops, and
// golang.org/x/sys for memory mappings on unix platforms.
package membuf
