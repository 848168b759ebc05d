// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package membuf

// RaceEnabled is true when the race detector is active.
// Used by tests to skip ring stress tests: the detector cannot observe the
// happens-before edge the cursor release-store/acquire-load pair establishes
// over the plain slot writes, and reports false positives.
const RaceEnabled = true
