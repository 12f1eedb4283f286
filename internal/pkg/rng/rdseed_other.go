// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

//go:build !amd64

package rng

func hasRDSEED() bool {
	return false
}

func rdseed64() (uint64, bool) {
	return 0, false
}
