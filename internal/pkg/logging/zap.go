// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package logging builds the zap loggers of the seeder tools.
package logging

import (
	"io"

	"github.com/mattn/go-isatty"
	"github.com/siderolabs/gen/xslices"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Destination is a writer receiving console encoded entries enabled by level.
type Destination struct {
	writer  io.Writer
	level   zapcore.LevelEnabler
	encoder zapcore.EncoderConfig
}

// EncoderOption tweaks the encoder of a destination.
type EncoderOption func(config *zapcore.EncoderConfig)

// WithoutTimestamp drops the time field.
func WithoutTimestamp() EncoderOption {
	return func(config *zapcore.EncoderConfig) {
		config.EncodeTime = nil
	}
}

// WithColoredLevels prints levels with ANSI colors.
func WithColoredLevels() EncoderOption {
	return func(config *zapcore.EncoderConfig) {
		config.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
}

// NewDestination returns a destination writing to writer.
func NewDestination(writer io.Writer, level zapcore.LevelEnabler, options ...EncoderOption) *Destination {
	encoder := zap.NewDevelopmentEncoderConfig()
	encoder.ConsoleSeparator = " "
	encoder.StacktraceKey = "error"

	for _, option := range options {
		option(&encoder)
	}

	return &Destination{
		writer:  writer,
		level:   level,
		encoder: encoder,
	}
}

func (d *Destination) core() zapcore.Core {
	return zapcore.NewCore(zapcore.NewConsoleEncoder(d.encoder), zapcore.AddSync(d.writer), d.level)
}

// New returns a logger fanning out entries to every destination.
func New(dests ...*Destination) *zap.Logger {
	if len(dests) == 0 {
		panic("at least one destination must be defined")
	}

	return zap.New(zapcore.NewTee(xslices.Map(dests, (*Destination).core)...))
}

// Level is warn for command line tools, debug when requested.
func Level(debug bool) zapcore.Level {
	if debug {
		return zapcore.DebugLevel
	}

	return zapcore.WarnLevel
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })

	return ok && isatty.IsTerminal(f.Fd())
}

// CommandLogger returns the logger of a command line tool writing to w.
//
// Levels are colored only on terminals.
func CommandLogger(w io.Writer, component string, debug bool) *zap.Logger {
	var options []EncoderOption

	if IsTerminal(w) {
		options = append(options, WithColoredLevels())
	}

	return New(NewDestination(w, Level(debug), options...)).With(Component(component))
}

// Component tags entries with the component name.
func Component(name string) zapcore.Field {
	return zap.String("component", name)
}
