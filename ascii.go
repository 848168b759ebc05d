// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package membuf

// maxIntASCII is the longest formatted int64: sign plus 19 digits.
const maxIntASCII = 20

// ParseIntASCII interprets n bytes starting at off as an ASCII decimal
// integer with an optional leading '-'. Returns ErrInvalidFormat on an
// empty range, a non-digit byte, a bare sign, or overflow of int64.
func (r *Region) ParseIntASCII(off, n int) (int64, error) {
	if r.checked && !r.inBounds(off, n) {
		return 0, ErrOutOfBounds
	}
	if n == 0 {
		return 0, ErrInvalidFormat
	}

	b := r.mem[off : off+n]
	negative := b[0] == '-'
	if negative {
		b = b[1:]
		if len(b) == 0 {
			return 0, ErrInvalidFormat
		}
	}

	v, err := parseNatural(b)
	if err != nil {
		return 0, err
	}
	if negative {
		return -int64(v), nil
	}
	if v > uint64(1<<63-1) {
		return 0, ErrInvalidFormat
	}
	return int64(v), nil
}

// ParseNaturalASCII interprets n bytes starting at off as an unsigned ASCII
// decimal integer. No sign byte is accepted.
func (r *Region) ParseNaturalASCII(off, n int) (int64, error) {
	if r.checked && !r.inBounds(off, n) {
		return 0, ErrOutOfBounds
	}
	if n == 0 {
		return 0, ErrInvalidFormat
	}
	v, err := parseNatural(r.mem[off : off+n])
	if err != nil {
		return 0, err
	}
	if v > uint64(1<<63-1) {
		return 0, ErrInvalidFormat
	}
	return int64(v), nil
}

// parseNatural accumulates decimal digits with overflow detection.
// Magnitudes up to -math.MinInt64 are representable in the uint64 result.
func parseNatural(b []byte) (uint64, error) {
	var v uint64
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, ErrInvalidFormat
		}
		d := uint64(c - '0')
		if v > (1<<63-d)/10 {
			return 0, ErrInvalidFormat
		}
		v = v*10 + d
	}
	return v, nil
}

// PutIntASCII formats v as ASCII decimal digits with an optional leading '-'
// starting at off. Returns the number of bytes written.
func (r *Region) PutIntASCII(off int, v int64) (int, error) {
	var tmp [maxIntASCII]byte
	i := len(tmp)

	var mag uint64
	negative := v < 0
	if negative {
		mag = uint64(-(v + 1)) + 1
	} else {
		mag = uint64(v)
	}

	for {
		i--
		tmp[i] = '0' + byte(mag%10)
		mag /= 10
		if mag == 0 {
			break
		}
	}
	if negative {
		i--
		tmp[i] = '-'
	}

	if err := r.PutBytes(off, tmp[i:]); err != nil {
		return 0, err
	}
	return len(tmp) - i, nil
}

// PutPaddedIntASCII formats non-negative v as exactly n zero-padded ASCII
// decimal digits starting at off. Returns ErrInvalidFormat if v is negative
// or does not fit in n digits.
func (r *Region) PutPaddedIntASCII(off, n int, v int64) error {
	if v < 0 || n <= 0 {
		return ErrInvalidFormat
	}
	if r.checked && !r.inBounds(off, n) {
		return ErrOutOfBounds
	}

	mag := uint64(v)
	digits := 1
	for x := mag; x >= 10; x /= 10 {
		digits++
	}
	if digits > n {
		return ErrInvalidFormat
	}

	for i := n - 1; i >= 0; i-- {
		r.mem[off+i] = '0' + byte(mag%10)
		mag /= 10
	}
	return nil
}

// GetStringASCII reads n bytes starting at off as a string. Every byte must
// be printable 7-bit ASCII (0x20..0x7E); ErrInvalidFormat otherwise. The
// printable-only policy is deliberate: this accessor exists for wire fields
// like symbols and tags, where a control byte means a framing bug.
func (r *Region) GetStringASCII(off, n int) (string, error) {
	if r.checked && !r.inBounds(off, n) {
		return "", ErrOutOfBounds
	}
	b := r.mem[off : off+n]
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			return "", ErrInvalidFormat
		}
	}
	return string(b), nil
}

// PutStringASCII writes s starting at off, enforcing the same printable
// 7-bit ASCII policy as GetStringASCII. Returns the number of bytes written;
// nothing is written when any byte is rejected.
func (r *Region) PutStringASCII(off int, s string) (int, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return 0, ErrInvalidFormat
		}
	}
	if err := r.PutBytes(off, []byte(s)); err != nil {
		return 0, err
	}
	return len(s), nil
}
