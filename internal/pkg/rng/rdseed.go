// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rng

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/siderolabs/go-retry/retry"
)

var errRDSEEDUnderflow = errors.New("rdseed returned no entropy")

// RDSEEDRetryTimeout bounds the retries when the CPU entropy conditioner is drained.
var RDSEEDRetryTimeout = 100 * time.Millisecond

// RDSEEDAvailable reports whether the CPU supports the RDSEED instruction.
func RDSEEDAvailable() bool {
	return hasRDSEED()
}

// ReadRDSEED reads SeedSize bytes with the RDSEED instruction.
func ReadRDSEED() ([SeedSize]byte, error) {
	var out [SeedSize]byte

	if !hasRDSEED() {
		return out, ErrUnsupported
	}

	for i := range SeedSize / 8 {
		var v uint64

		err := retry.Constant(RDSEEDRetryTimeout, retry.WithUnits(time.Millisecond)).Retry(func() error {
			var ok bool

			if v, ok = rdseed64(); !ok {
				return retry.ExpectedError(errRDSEEDUnderflow)
			}

			return nil
		})
		if err != nil {
			return out, fmt.Errorf("error reading rdseed: %w", err)
		}

		binary.LittleEndian.PutUint64(out[i*8:], v)
	}

	return out, nil
}
