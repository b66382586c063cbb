/*
Copyright © 2025 Jorge C. Riveros
SPDX-License-Identifier: Apache-2.0
*/

// Package version parses controller software versions. Controllers report
// versions as "major.minor(maintenance)", for example "5.2(1g)"; image
// names use the dotted form "5.2.1g". Both spellings parse to the same
// value.
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrEmptyVersion   = errors.New("version string is empty")
	ErrInvalidVersion = errors.New("version string is not a controller version")
)

// Version is a controller software version. Maintenance carries the release
// letter ("1g") and is compared lexically after major and minor.
type Version struct {
	Major       int    `json:"major"`
	Minor       int    `json:"minor"`
	Maintenance string `json:"maintenance,omitempty"`
}

// Parse reads a controller version in either reported or dotted form.
func Parse(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Version{}, ErrEmptyVersion
	}

	rest := s
	var maintenance string
	if i := strings.IndexByte(rest, '('); i >= 0 {
		j := strings.IndexByte(rest, ')')
		if j < i {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
		}
		maintenance = rest[i+1 : j]
		rest = rest[:i]
	}

	parts := strings.Split(rest, ".")
	if len(parts) > 3 {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}
	if len(parts) == 3 {
		if maintenance != "" {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
		}
		maintenance = parts[2]
		parts = parts[:2]
	}

	v := Version{Maintenance: maintenance}
	var err error
	if v.Major, err = strconv.Atoi(parts[0]); err != nil || v.Major < 0 {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}
	if len(parts) > 1 {
		if v.Minor, err = strconv.Atoi(parts[1]); err != nil || v.Minor < 0 {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
		}
	}
	return v, nil
}

// String renders the reported form, "5.2(1g)".
func (v Version) String() string {
	if v.Maintenance == "" {
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	}
	return fmt.Sprintf("%d.%d(%s)", v.Major, v.Minor, v.Maintenance)
}

// Compare orders two versions. It returns -1, 0, or 1.
func (v Version) Compare(o Version) int {
	if v.Major != o.Major {
		return sign(v.Major - o.Major)
	}
	if v.Minor != o.Minor {
		return sign(v.Minor - o.Minor)
	}
	return strings.Compare(v.Maintenance, o.Maintenance)
}

// AtLeast reports whether the version is major.minor or newer.
func (v Version) AtLeast(major, minor int) bool {
	return v.Compare(Version{Major: major, Minor: minor}) >= 0
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
