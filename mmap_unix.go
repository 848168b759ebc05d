// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build unix

package membuf

import (
	"os"

	"golang.org/x/sys/unix"
)

// MapFile maps the first n bytes of f into memory with MAP_SHARED and wraps
// the mapping in an owned Region; Close unmaps it exactly once. The file
// itself stays open and owned by the caller.
//
// Two processes mapping the same file observe the same bytes, which makes a
// ring over a MapFile region a cross-process channel. Page-aligned mappings
// always satisfy the 8-byte base alignment the atomic view requires.
//
// Returns ErrInvalidCapacity if n <= 0.
func MapFile(f *os.File, n int, opts ...Option) (*Region, error) {
	if n <= 0 {
		return nil, ErrInvalidCapacity
	}

	mem, err := unix.Mmap(int(f.Fd()), 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}

	r := newRegion(mem, opts)
	r.owned = true
	r.release = func() error {
		return unix.Munmap(mem)
	}
	return r, nil
}

// MapAnonymous maps n bytes of zeroed anonymous memory and wraps the mapping
// in an owned Region; Close unmaps it exactly once. Unlike Allocate, the
// memory lives outside the Go heap and is never moved by the collector.
//
// Returns ErrInvalidCapacity if n <= 0.
func MapAnonymous(n int, opts ...Option) (*Region, error) {
	if n <= 0 {
		return nil, ErrInvalidCapacity
	}

	mem, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}

	r := newRegion(mem, opts)
	r.owned = true
	r.release = func() error {
		return unix.Munmap(mem)
	}
	return r, nil
}
