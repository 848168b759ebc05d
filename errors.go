// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package membuf

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrOutOfBounds indicates an access that would read or write past the
// end of a region. The target memory is untouched when this is returned.
var ErrOutOfBounds = errors.New("membuf: access out of bounds")

// ErrMisaligned indicates an atomic operation at an offset that is not a
// multiple of the operand size, or an atomic view over a region whose base
// address is not 8-byte aligned.
var ErrMisaligned = errors.New("membuf: misaligned atomic access")

// ErrInvalidFormat indicates an ASCII parse or format contract violation:
// a non-digit byte, an empty range, a value that overflows, or a byte
// outside printable 7-bit ASCII in a string operation.
var ErrInvalidFormat = errors.New("membuf: invalid ascii format")

// ErrInvalidLength indicates a ring payload longer than the slot can hold,
// or a destination buffer too small for a consumed payload. Nothing is
// written to the ring when this is returned.
var ErrInvalidLength = errors.New("membuf: invalid payload length")

// ErrInvalidCapacity indicates ring geometry that cannot work: a slot count
// that is not a power of two, a slot stride too small for the length prefix,
// or a region too small for the requested layout.
var ErrInvalidCapacity = errors.New("membuf: invalid capacity")

// ErrWouldBlock indicates a ring operation cannot proceed immediately.
//
// For TryPublish: the ring is full (backpressure)
// For TryConsume: the ring is empty (no data available)
//
// ErrWouldBlock is a control flow signal, not a failure. The caller should
// retry the operation later (with backoff or yield) rather than propagating
// the error.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil or ErrWouldBlock.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
