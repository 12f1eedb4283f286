// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rng

import (
	"fmt"

	"github.com/prometheus/procfs"
	"github.com/siderolabs/go-pointer"
)

// ReadPoolStats returns kernel random pool statistics from /proc/sys/kernel/random.
func ReadPoolStats() (PoolStats, error) {
	fs, err := procfs.NewDefaultFS()
	if err != nil {
		return PoolStats{}, err
	}

	random, err := fs.KernelRandom()
	if err != nil {
		return PoolStats{}, fmt.Errorf("error reading kernel random: %w", err)
	}

	return PoolStats{
		Size:      pointer.SafeDeref(random.PoolSize),
		Available: pointer.SafeDeref(random.EntropyAvaliable),
	}, nil
}
