// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package rng provides access to hardware and OS entropy sources.
//
// Every source comes as an availability probe, which never consumes entropy,
// and a read function returning SeedSize bytes.
package rng

import "errors"

// SeedSize is the number of bytes returned by every read function.
const SeedSize = 16

// ErrUnsupported is returned by sources which can't work on this platform.
var ErrUnsupported = errors.New("entropy source is not supported on this platform")
