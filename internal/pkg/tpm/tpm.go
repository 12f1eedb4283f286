// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package tpm

import "errors"

// ErrNotAvailable is returned when the host has no usable TPM 2.0.
var ErrNotAvailable = errors.New("TPM device is not available")
