// Package richfield carries the module's release metadata. The widget itself
// lives in the field and emotes packages; the root package only embeds the
// VERSION file so binaries can report which release they were built from.
package richfield

import (
	_ "embed"
	"regexp"
	"strings"
)

// SemVer 2.0.0, no leading v.
var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the embedded release number, e.g. "0.1.0".
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version prefixed with "v", matching the git tag.
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v is a valid SemVer 2.0.0 string.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

// VersionIsSemver reports whether the embedded release number parses as
// SemVer. A failure means the VERSION file was edited badly.
func VersionIsSemver() bool {
	return IsSemver(Version())
}
