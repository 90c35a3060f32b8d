// Package version provides version information for traefik-validator.
package version

import (
	"fmt"

	"github.com/blang/semver/v4"
)

// Version is the current version of the binary.
// Set via -ldflags "-X github.com/traefik-tools/go-traefik-validator/pkg/version.Version=..."
var Version = "dev"

// SupportedTraefik is the Traefik release the bundled schema endpoints
// target.
const SupportedTraefik = "3.3.3"

// FullString returns the version line printed by --version, including the
// supported Traefik release.
func FullString() string {
	return fmt.Sprintf("%s (supports Traefik v%s)", Version, SupportedTraefik)
}

// SupportsTraefik reports whether the given Traefik release is covered by
// the bundled schema endpoints: same major and minor, any patch.
func SupportsTraefik(v string) (bool, error) {
	target, err := semver.Parse(SupportedTraefik)
	if err != nil {
		return false, err
	}
	parsed, err := semver.ParseTolerant(v)
	if err != nil {
		return false, fmt.Errorf("parsing Traefik version: %w", err)
	}
	return parsed.Major == target.Major && parsed.Minor == target.Minor, nil
}
