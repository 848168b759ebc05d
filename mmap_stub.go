// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !unix

package membuf

import (
	"errors"
	"os"
)

var errMapUnsupported = errors.New("membuf: memory mapping unsupported on this platform")

// MapFile is unsupported on this platform. Use Allocate or Wrap instead.
func MapFile(f *os.File, n int, opts ...Option) (*Region, error) {
	return nil, errMapUnsupported
}

// MapAnonymous is unsupported on this platform. Use Allocate instead.
func MapAnonymous(n int, opts ...Option) (*Region, error) {
	return nil, errMapUnsupported
}
