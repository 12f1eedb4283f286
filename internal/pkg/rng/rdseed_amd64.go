// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rng

import (
	"github.com/klauspost/cpuid/v2"
)

func hasRDSEED() bool {
	return cpuid.CPU.Supports(cpuid.RDSEED)
}

// rdseed64 executes RDSEED once, ok is the carry flag.
func rdseed64() (v uint64, ok bool)
