// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package version defines version information.
package version

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
)

var (
	// Name is set at build time.
	Name = "seedctl"
	// Tag is set at build time.
	Tag = "undefined"
	// SHA is set at build time.
	SHA = "undefined"
)

// Info is the verbose version information.
type Info struct {
	Tag       string
	SHA       string
	GoVersion string
	OS        string
	Arch      string
	Target    string
}

const versionTemplate = `	Tag:         {{ .Tag }}
	SHA:         {{ .SHA }}
	Go version:  {{ .GoVersion }}
	OS/Arch:     {{ .OS }}/{{ .Arch }}
	Target:      {{ .Target }}
`

// New returns the version information of the running binary.
func New(target string) Info {
	return Info{
		Tag:       Tag,
		SHA:       SHA,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		Target:    target,
	}
}

// WriteLong writes verbose version to io.Writer.
func WriteLong(w io.Writer, v Info) error {
	tmpl, err := template.New("version").Parse(versionTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, v)
}

// Short returns the short version string consist of name and tag.
func Short() string {
	return fmt.Sprintf("%s %s", Name, Tag)
}
