// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package membuf

// Options configures region construction.
type Options struct {
	// boundsCheck selects the checked operation set. Default true.
	boundsCheck bool
}

// Option configures a Region at construction time.
type Option func(*Options)

// NoBoundsCheck selects the unchecked operation set for the region.
//
// Unchecked regions skip the per-call bounds check on every typed and bulk
// accessor. The operation signatures are identical to the checked set, but
// the bounds contract becomes caller-enforced: an access outside the region
// is undefined behavior, not an error.
//
// Atomic operations are unaffected: they keep their bounds and alignment
// checks in both modes, since a stray atomic access corrupts silently.
//
// Use this only on hot paths where offsets are proven in range by
// construction, e.g. ring slot access behind a validated geometry.
func NoBoundsCheck() Option {
	return func(o *Options) {
		o.boundsCheck = false
	}
}
