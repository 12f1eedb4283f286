// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package seeder

import (
	"runtime"
)

// SourceName is the logical name of an entropy source.
type SourceName string

// Known entropy sources.
const (
	SourceDeterministic SourceName = "deterministic"
	SourceRDSEED        SourceName = "rdseed"
	SourceSecureService SourceName = "secure-service"
	SourceDeviceFile    SourceName = "device-file"
	SourceHostRandom    SourceName = "host-random"
)

// Priorities of the built-in sources, lower value wins.
const (
	PriorityDeterministic = 10
	PriorityRDSEED        = 20
	PrioritySecureService = 30
	PriorityDeviceFile    = 40
	PriorityHostRandom    = 50
)

// Target is the kind of runtime the process is running on.
type Target int

// Targets.
const (
	// TargetNative is a regular OS process with access to hardware and OS entropy.
	TargetNative Target = iota
	// TargetRestricted is a sandboxed runtime (js/wasm, wasip1) where only the host API is meaningful.
	TargetRestricted
)

// String implements fmt.Stringer.
func (t Target) String() string {
	switch t {
	case TargetNative:
		return "native"
	case TargetRestricted:
		return "restricted"
	default:
		return "unknown"
	}
}

// CurrentTarget detects the target of the running binary.
func CurrentTarget() Target {
	switch runtime.GOOS {
	case "js", "wasip1":
		return TargetRestricted
	default:
		return TargetNative
	}
}

// Feature gates a source on or off for a build.
type Feature int

// Features.
const (
	FeatureDeterministic Feature = iota
	FeatureRDSEED
	FeatureSecureService
	FeatureDeviceFile
	FeatureHostRandom
)

// Features is the set of enabled sources.
//
// Host-provided randomness is not gated, it is the only source of the restricted target.
type Features struct {
	Deterministic bool
	RDSEED        bool
	SecureService bool
	DeviceFile    bool
}

// DefaultFeatures enables every entropy-backed source and leaves the deterministic one off.
func DefaultFeatures() Features {
	return Features{
		RDSEED:        true,
		SecureService: true,
		DeviceFile:    true,
	}
}

// Enabled reports whether the feature is on.
func (f Features) Enabled(feature Feature) bool {
	switch feature {
	case FeatureDeterministic:
		return f.Deterministic
	case FeatureRDSEED:
		return f.RDSEED
	case FeatureSecureService:
		return f.SecureService
	case FeatureDeviceFile:
		return f.DeviceFile
	case FeatureHostRandom:
		return true
	default:
		return false
	}
}

// Handle produces seeds from the source it was opened for.
//
// Handles are owned by the caller, concurrent use safety is up to the source.
type Handle interface {
	// Source returns the name of the source backing this handle.
	Source() SourceName
	// Seed returns a fresh seed, possibly blocking on a slow source.
	Seed() (Seed, error)
}

// Descriptor describes a source without instantiating it.
type Descriptor struct {
	// Probe reports whether the source can be used on this host right now.
	//
	// Probe must not consume entropy and must not have side effects.
	Probe func() bool
	// Open creates a Handle, it is called only for the selected source.
	Open func() (Handle, error)

	Name     SourceName
	Priority int
	Target   Target
	Feature  Feature
}

type funcHandle struct {
	read func() (Seed, error)
	name SourceName
}

func (h *funcHandle) Source() SourceName {
	return h.name
}

func (h *funcHandle) Seed() (Seed, error) {
	return h.read()
}

// HandleFunc adapts a function to the Handle interface.
func HandleFunc(name SourceName, read func() (Seed, error)) Handle {
	return &funcHandle{name: name, read: read}
}
