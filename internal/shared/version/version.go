// Package version reports the build version stamped in at link time.
//
//	go build -ldflags "-X bulletin/internal/shared/version.Version=1.4.0 -X bulletin/internal/shared/version.Commit=abc123"
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

var (
	Version = "dev"
	Commit  = "unknown"
)

// Info is the build metadata exposed by the health endpoint and the CLI.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Release bool   `json:"release"`
}

// Get returns the current build metadata.
func Get() Info {
	v := Normalize(Version)
	return Info{
		Version: v,
		Commit:  Commit,
		Release: IsRelease(v),
	}
}

// Normalize ensures version string has "v" prefix for semver compatibility.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3", "dev" -> "dev"
func Normalize(version string) string {
	version = strings.TrimSpace(version)
	if version == "" || version == "dev" {
		return version
	}
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// IsRelease reports whether version is a valid semver without a prerelease suffix.
func IsRelease(version string) bool {
	v := Normalize(version)
	return semver.IsValid(v) && semver.Prerelease(v) == ""
}

// HasNewerVersion checks if latestVersion is newer than currentVersion using semver.
func HasNewerVersion(currentVersion, latestVersion string) bool {
	if latestVersion == "" {
		return false
	}

	// Dev builds always lag behind a published release
	if currentVersion == "" || currentVersion == "dev" {
		return true
	}

	current := Normalize(currentVersion)
	latest := Normalize(latestVersion)

	if !semver.IsValid(current) {
		return true
	}
	if !semver.IsValid(latest) {
		return false
	}

	return semver.Compare(current, latest) < 0
}
