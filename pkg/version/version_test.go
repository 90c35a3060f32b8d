package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullString(t *testing.T) {
	assert.Contains(t, FullString(), "Traefik v"+SupportedTraefik)
}

func TestSupportsTraefik(t *testing.T) {
	tests := []struct {
		version  string
		expected bool
	}{
		{"3.3.3", true},
		{"3.3.0", true},
		{"v3.3.1", true},
		{"3.2.0", false},
		{"2.11.0", false},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			ok, err := SupportsTraefik(tt.version)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
		})
	}

	_, err := SupportsTraefik("not-a-version")
	require.Error(t, err)
}
