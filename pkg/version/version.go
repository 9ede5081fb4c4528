// Package version reports the wifimgr release and parses release strings.
package version

import (
	"fmt"
	"runtime/debug"
	"strconv"
	"strings"
)

// Current is the release implemented by this build. Overridden at link time
// with -ldflags "-X github.com/sandbot-io/wifimgr/pkg/version.Current=1.2".
var Current = "1.0"

// Release is a parsed "major.minor" release.
type Release struct {
	Major uint16
	Minor uint16
}

// Parse parses a "major.minor" release string.
func Parse(s string) (Release, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return Release{}, fmt.Errorf("invalid version %q: expected major.minor", s)
	}

	major, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil || parts[0] == "" {
		return Release{}, fmt.Errorf("invalid version %q: bad major component", s)
	}

	minor, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil || parts[1] == "" {
		return Release{}, fmt.Errorf("invalid version %q: bad minor component", s)
	}

	return Release{Major: uint16(major), Minor: uint16(minor)}, nil
}

// String returns the release as "major.minor".
func (r Release) String() string {
	return fmt.Sprintf("%d.%d", r.Major, r.Minor)
}

// Full returns Current followed by the VCS revision when the binary
// carries build info, e.g. "1.0 (3f2a9c1)".
func Full() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Current
	}
	return withRevision(Current, info.Settings)
}

func withRevision(release string, settings []debug.BuildSetting) string {
	var rev string
	dirty := false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return release
	}
	if len(rev) > 7 {
		rev = rev[:7]
	}
	if dirty {
		rev += "-dirty"
	}
	return release + " (" + rev + ")"
}
