// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package membuf_test

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"code.hybscloud.com/membuf"
)

// =============================================================================
// ASCII - Integer Round Trips
// =============================================================================

func TestIntASCIIRoundTrip(t *testing.T) {
	r, err := membuf.Allocate(32)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	defer r.Close()

	for _, v := range []int64{0, -1, 1, 42, -42, 2147483647, -2147483648,
		math.MaxInt64, math.MinInt64} {
		n, err := r.PutIntASCII(0, v)
		if err != nil {
			t.Fatalf("PutIntASCII(%d): %v", v, err)
		}
		if want := len(strconv.FormatInt(v, 10)); n != want {
			t.Fatalf("PutIntASCII(%d): wrote %d bytes, want %d", v, n, want)
		}
		got, err := r.ParseIntASCII(0, n)
		if err != nil {
			t.Fatalf("ParseIntASCII(%d): %v", v, err)
		}
		if got != v {
			t.Fatalf("round trip: got %d, want %d", got, v)
		}
	}
}

func TestParseIntASCIIFullWidth(t *testing.T) {
	// An all-digit string of exactly the region's available width.
	r := membuf.Wrap([]byte("918273645"))
	defer r.Close()

	got, err := r.ParseIntASCII(0, r.Len())
	if err != nil {
		t.Fatalf("ParseIntASCII: %v", err)
	}
	if got != 918273645 {
		t.Fatalf("ParseIntASCII: got %d, want 918273645", got)
	}
}

func TestParseIntASCIIInvalid(t *testing.T) {
	r := membuf.Wrap([]byte("12a4 -x -"))
	defer r.Close()

	cases := []struct {
		name string
		off  int
		n    int
	}{
		{"non-digit byte", 0, 4},
		{"embedded space", 3, 2},
		{"bare sign", 8, 1},
		{"sign then non-digit", 5, 2},
		{"empty range", 0, 0},
	}
	for _, tc := range cases {
		if _, err := r.ParseIntASCII(tc.off, tc.n); !errors.Is(err, membuf.ErrInvalidFormat) {
			t.Fatalf("%s: got %v, want ErrInvalidFormat", tc.name, err)
		}
	}

	if _, err := r.ParseIntASCII(4, 8); !errors.Is(err, membuf.ErrOutOfBounds) {
		t.Fatalf("overrun: got %v, want ErrOutOfBounds", err)
	}
}

func TestParseIntASCIIOverflow(t *testing.T) {
	r, err := membuf.Allocate(32)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	defer r.Close()

	// One past MaxInt64 overflows; MinInt64 itself parses.
	for _, tc := range []struct {
		s  string
		ok bool
	}{
		{"9223372036854775807", true},
		{"9223372036854775808", false},
		{"-9223372036854775808", true},
		{"-9223372036854775809", false},
		{"99999999999999999999", false},
	} {
		if err := r.PutBytes(0, []byte(tc.s)); err != nil {
			t.Fatalf("PutBytes(%q): %v", tc.s, err)
		}
		_, err := r.ParseIntASCII(0, len(tc.s))
		if tc.ok && err != nil {
			t.Fatalf("ParseIntASCII(%q): %v", tc.s, err)
		}
		if !tc.ok && !errors.Is(err, membuf.ErrInvalidFormat) {
			t.Fatalf("ParseIntASCII(%q): got %v, want ErrInvalidFormat", tc.s, err)
		}
	}
}

func TestParseNaturalASCII(t *testing.T) {
	r := membuf.Wrap([]byte("00123-45"))
	defer r.Close()

	got, err := r.ParseNaturalASCII(0, 5)
	if err != nil {
		t.Fatalf("ParseNaturalASCII: %v", err)
	}
	if got != 123 {
		t.Fatalf("ParseNaturalASCII: got %d, want 123", got)
	}

	// Natural numbers take no sign byte.
	if _, err := r.ParseNaturalASCII(5, 3); !errors.Is(err, membuf.ErrInvalidFormat) {
		t.Fatalf("signed input: got %v, want ErrInvalidFormat", err)
	}
}

func TestPutPaddedIntASCII(t *testing.T) {
	r, err := membuf.Allocate(16)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	defer r.Close()

	if err := r.PutPaddedIntASCII(0, 6, 1234); err != nil {
		t.Fatalf("PutPaddedIntASCII: %v", err)
	}
	if got, _ := r.GetStringASCII(0, 6); got != "001234" {
		t.Fatalf("padded: got %q, want %q", got, "001234")
	}

	if err := r.PutPaddedIntASCII(0, 3, 1234); !errors.Is(err, membuf.ErrInvalidFormat) {
		t.Fatalf("too wide: got %v, want ErrInvalidFormat", err)
	}
	if err := r.PutPaddedIntASCII(0, 3, -1); !errors.Is(err, membuf.ErrInvalidFormat) {
		t.Fatalf("negative: got %v, want ErrInvalidFormat", err)
	}
}

// =============================================================================
// ASCII - Strings
// =============================================================================

func TestStringASCII(t *testing.T) {
	r, err := membuf.Allocate(32)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	defer r.Close()

	n, err := r.PutStringASCII(0, "EURUSD ~1.08")
	if err != nil {
		t.Fatalf("PutStringASCII: %v", err)
	}
	got, err := r.GetStringASCII(0, n)
	if err != nil {
		t.Fatalf("GetStringASCII: %v", err)
	}
	if got != "EURUSD ~1.08" {
		t.Fatalf("round trip: got %q", got)
	}
}

func TestStringASCIIPolicy(t *testing.T) {
	r, err := membuf.Allocate(32)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	defer r.Close()

	// Only printable 7-bit ASCII passes; control bytes and high bytes fail.
	if _, err := r.PutStringASCII(0, "tab\tseparated"); !errors.Is(err, membuf.ErrInvalidFormat) {
		t.Fatalf("control byte: got %v, want ErrInvalidFormat", err)
	}
	if _, err := r.PutStringASCII(0, "caf\xc3\xa9"); !errors.Is(err, membuf.ErrInvalidFormat) {
		t.Fatalf("high byte: got %v, want ErrInvalidFormat", err)
	}

	if err := r.PutUint8(4, 0x01); err != nil {
		t.Fatalf("PutUint8: %v", err)
	}
	if err := r.Fill(0, 4, 'a'); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if _, err := r.GetStringASCII(0, 5); !errors.Is(err, membuf.ErrInvalidFormat) {
		t.Fatalf("control byte read: got %v, want ErrInvalidFormat", err)
	}
	if got, err := r.GetStringASCII(0, 4); err != nil || got != "aaaa" {
		t.Fatalf("printable read: got %q, %v", got, err)
	}
}
