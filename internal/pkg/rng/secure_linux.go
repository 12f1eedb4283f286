// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rng

import (
	"errors"
	"fmt"

	"github.com/google/go-tpm/tpm2"
	"go.uber.org/zap"

	"github.com/siderolabs/go-seeder/internal/pkg/tpm"
)

// SecureServiceAvailable reports whether a TPM 2.0 device can be opened by this process.
func SecureServiceAvailable() bool {
	return tpm.Available()
}

// ReadSecureService reads SeedSize bytes from the TPM random number generator.
func ReadSecureService(logger *zap.Logger) ([SeedSize]byte, error) {
	var out [SeedSize]byte

	t, err := tpm.Open()
	if err != nil {
		return out, err
	}

	defer t.Close() //nolint:errcheck

	caps, err := tpm2.GetCapability{
		Capability:    tpm2.TPMCapTPMProperties,
		Property:      uint32(tpm2.TPMPTManufacturer),
		PropertyCount: 1,
	}.Execute(t)
	if err != nil {
		return out, fmt.Errorf("error getting TPM capabilities: %w", err)
	}

	props, err := caps.CapabilityData.Data.TPMProperties()
	if err != nil {
		return out, fmt.Errorf("error getting properties: %w", err)
	}

	if len(props.TPMProperty) > 0 {
		logger.Debug("reading seed from the TPM", zap.String("manufacturer", fmt.Sprintf("%08x", props.TPMProperty[0].Value)))
	}

	for filled := 0; filled < SeedSize; {
		resp, err := tpm2.GetRandom{
			BytesRequested: uint16(SeedSize - filled),
		}.Execute(t)
		if err != nil {
			return out, fmt.Errorf("error getting random data from the TPM: %w", err)
		}

		if len(resp.RandomBytes.Buffer) == 0 {
			return out, errors.New("received zero random bytes from the TPM")
		}

		filled += copy(out[filled:], resp.RandomBytes.Buffer)
	}

	return out, t.Close()
}
