// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package membuf

import "code.hybscloud.com/atomix"

// Ring layout inside the backing region, byte-exact for cross-process use:
//
//	offset 0   head cursor (u64, consumer, monotonic)
//	offset 8   tail cursor (u64, producer, monotonic)
//	offset 16  slot 0: length prefix (u32) + payload, slotStride bytes
//	16 + k*s   slot k
//
// Slots are fixed-stride and never split across the wrap boundary; slot k
// for sequence seq lives at 16 + (seq & mask) * slotStride.
const (
	ringHeadOffset = 0
	ringTailOffset = 8

	// RingHeaderSize is the byte size of the ring header holding the two
	// cursors. Slot 0 starts at this offset.
	RingHeaderSize = 16

	lengthPrefixSize = 4
)

// RingSize returns the region length in bytes required for a ring with
// capacitySlots slots of slotStride bytes each.
func RingSize(capacitySlots, slotStride int) int {
	return RingHeaderSize + capacitySlots*slotStride
}

// ring is the geometry shared by the two endpoint handles.
type ring struct {
	region *Region
	head   *atomix.Uint64
	tail   *atomix.Uint64
	mask   uint64
	stride int
	max    int
}

// Producer is the publishing endpoint of an SPSC ring.
//
// A Producer is a single-owner capability: exactly one goroutine may call
// TryPublish, and NewRing hands out exactly one Producer per ring. Using it
// from more than one goroutine concurrently is undefined behavior, not a
// detected error.
type Producer struct {
	_ pad
	ring
	cachedHead uint64
	_          pad
}

// Consumer is the receiving endpoint of an SPSC ring.
//
// A Consumer is a single-owner capability: exactly one goroutine may call
// TryConsume/TryConsumeWith, and NewRing hands out exactly one Consumer per
// ring. Using it from more than one goroutine concurrently is undefined
// behavior, not a detected error.
type Consumer struct {
	_ pad
	ring
	cachedTail uint64
	_          pad
}

// NewRing creates an SPSC message ring over the region and returns its two
// endpoint handles. The handles are distinct, non-duplicable capabilities:
// obtaining a second producer or consumer for the same ring requires calling
// NewRing again, which re-wraps the same cursors and therefore breaks the
// SPSC contract.
//
// capacitySlots must be a power of two (index computation uses a bitmask),
// slotStride must hold at least the 4-byte length prefix plus one payload
// byte, and the region must hold the full layout; ErrInvalidCapacity
// otherwise. The region base must be 8-byte aligned for the cursor atomics
// (ErrMisaligned otherwise).
//
// The cursors and slots are plain bytes in the region: a ring over a mapped
// file or shared-memory segment is usable across processes, with the
// producer handle in one process and the consumer handle in the other.
//
// The ring does not zero the region. For a fresh ring the header must start
// at zero; Allocate and MapAnonymous return zeroed memory, a recycled
// region needs an explicit Fill.
func NewRing(r *Region, capacitySlots, slotStride int) (*Producer, *Consumer, error) {
	if r == nil {
		panic("membuf: nil region")
	}
	if !isPowerOfTwo(capacitySlots) {
		return nil, nil, ErrInvalidCapacity
	}
	if slotStride < lengthPrefixSize+1 {
		return nil, nil, ErrInvalidCapacity
	}
	if r.Len() < RingSize(capacitySlots, slotStride) {
		return nil, nil, ErrInvalidCapacity
	}

	a, err := r.Atomic()
	if err != nil {
		return nil, nil, err
	}

	// Fixed offsets validated by the geometry checks above.
	g := ring{
		region: r,
		head:   a.uint64At(ringHeadOffset),
		tail:   a.uint64At(ringTailOffset),
		mask:   uint64(capacitySlots - 1),
		stride: slotStride,
		max:    slotStride - lengthPrefixSize,
	}
	return &Producer{ring: g}, &Consumer{ring: g}, nil
}

// Capacity returns the number of message slots.
func (g *ring) Capacity() int {
	return int(g.mask + 1)
}

// MaxPayload returns the largest payload length a slot can hold.
func (g *ring) MaxPayload() int {
	return g.max
}

// slotOffset returns the byte offset of the slot for sequence seq.
func (g *ring) slotOffset(seq uint64) int {
	return RingHeaderSize + int(seq&g.mask)*g.stride
}

// TryPublish writes payload into the next slot and publishes it
// (producer goroutine only). Never blocks.
//
// Returns ErrInvalidLength, before touching any memory, if the payload
// exceeds MaxPayload. Returns ErrWouldBlock if the ring is full; the
// consumer freeing one slot makes the next TryPublish succeed.
//
// The payload and its length prefix are written with plain operations,
// since the consumer cannot reach the slot yet. The single release-store of
// the advanced tail cursor is the publish point that makes them visible.
func (p *Producer) TryPublish(payload []byte) error {
	if len(payload) > p.max {
		return ErrInvalidLength
	}

	tail := p.tail.LoadRelaxed()
	if tail-p.cachedHead > p.mask {
		p.cachedHead = p.head.LoadAcquire()
		if tail-p.cachedHead > p.mask {
			return ErrWouldBlock
		}
	}

	// In bounds by the geometry checks in NewRing.
	off := p.slotOffset(tail)
	_ = p.region.PutUint32(off, uint32(len(payload)))
	_ = p.region.PutBytes(off+lengthPrefixSize, payload)

	p.tail.StoreRelease(tail + 1)
	return nil
}

// TryConsume copies the next message's payload into dst and frees its slot
// (consumer goroutine only). Never blocks. Returns the payload length.
//
// Returns ErrWouldBlock if the ring is empty. Returns ErrInvalidLength,
// leaving the message in place, if dst is shorter than the payload.
func (c *Consumer) TryConsume(dst []byte) (int, error) {
	head := c.head.LoadRelaxed()
	if head >= c.cachedTail {
		c.cachedTail = c.tail.LoadAcquire()
		if head >= c.cachedTail {
			return 0, ErrWouldBlock
		}
	}

	off := c.slotOffset(head)
	length, _ := c.region.GetUint32(off)
	n := int(length)
	if n > len(dst) {
		return 0, ErrInvalidLength
	}
	_ = c.region.GetBytes(off+lengthPrefixSize, dst[:n])

	c.head.StoreRelease(head + 1)
	return n, nil
}

// TryConsumeWith invokes fn with the next message's payload in place, then
// frees the slot (consumer goroutine only). Never blocks.
//
// The payload slice aliases the slot and is valid only until fn returns;
// fn must not retain it. Returns ErrWouldBlock if the ring is empty.
func (c *Consumer) TryConsumeWith(fn func(payload []byte)) error {
	head := c.head.LoadRelaxed()
	if head >= c.cachedTail {
		c.cachedTail = c.tail.LoadAcquire()
		if head >= c.cachedTail {
			return ErrWouldBlock
		}
	}

	off := c.slotOffset(head)
	length, _ := c.region.GetUint32(off)
	data := off + lengthPrefixSize
	fn(c.region.mem[data : data+int(length)])

	c.head.StoreRelease(head + 1)
	return nil
}

// pad is cache line padding to prevent false sharing.
type pad [cacheLine]byte
