// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package seeder

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSourceAvailable is returned when no enabled source is available.
	ErrNoSourceAvailable = errors.New("no entropy source available")
	// ErrSourceFailed wraps failures of a selected source.
	ErrSourceFailed = errors.New("entropy source failed")
	// ErrSourceExists is returned when registering a duplicate source name.
	ErrSourceExists = errors.New("source already registered")
	// ErrInvalidDescriptor is returned when registering an incomplete descriptor.
	ErrInvalidDescriptor = errors.New("invalid source descriptor")
)

// Mode selects the remediation message of a failed selection.
type Mode int

// Modes.
const (
	// ModeLibrary is used when the caller builds the source set and can enable more sources.
	ModeLibrary Mode = iota
	// ModeEmbedded is used when the caller cannot change the source set.
	ModeEmbedded
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeLibrary:
		return "library"
	case ModeEmbedded:
		return "embedded"
	default:
		return "unknown"
	}
}

// ParseMode parses the String representation of a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "library":
		return ModeLibrary, nil
	case "embedded":
		return ModeEmbedded, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", s)
	}
}

// Remediation messages of NoSourceError.
const (
	MessageEnableFeature = "unable to instantiate a seeder, make sure to enable a seeder feature like " +
		string(SourceDeviceFile) + " for example on unix platforms"
	MessageNoCompatible        = "no compatible seeder for current machine found"
	MessageRestrictedNoSources = "no compatible seeder found, consider changing browser or dev environment"
)

// NoSourceError is returned when every candidate source is unavailable.
type NoSourceError struct {
	Message string
	Probed  []SourceName
	Mode    Mode
	Target  Target
}

// Error implements error.
func (e *NoSourceError) Error() string {
	return e.Message
}

// Unwrap returns ErrNoSourceAvailable.
func (e *NoSourceError) Unwrap() error {
	return ErrNoSourceAvailable
}

func newNoSourceError(mode Mode, target Target, probed []SourceName) *NoSourceError {
	msg := MessageEnableFeature

	switch {
	case target == TargetRestricted:
		msg = MessageRestrictedNoSources
	case mode == ModeEmbedded:
		msg = MessageNoCompatible
	}

	return &NoSourceError{
		Message: msg,
		Probed:  probed,
		Mode:    mode,
		Target:  target,
	}
}
