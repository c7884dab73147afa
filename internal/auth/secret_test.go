package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestVerifier_Verify(t *testing.T) {
	logger := zap.NewNop()

	tests := []struct {
		name     string
		secret   string
		provided string
		expected bool
	}{
		{
			name:     "matching secrets",
			secret:   "super-secret-value",
			provided: "super-secret-value",
			expected: true,
		},
		{
			name:     "equal length mismatch",
			secret:   "super-secret-value",
			provided: "super-secret-vslue",
			expected: false,
		},
		{
			name:     "different byte length",
			secret:   "super-secret-value",
			provided: "short",
			expected: false,
		},
		{
			name:     "provided empty with configured secret",
			secret:   "super-secret-value",
			provided: "",
			expected: false,
		},
		{
			name:     "unconfigured secret disables authentication",
			secret:   "",
			provided: "anything-at-all",
			expected: true,
		},
		{
			name:     "unconfigured secret accepts empty",
			secret:   "",
			provided: "",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewVerifier(tt.secret, logger)
			assert.Equal(t, tt.expected, v.Verify(tt.provided))
		})
	}
}

func TestVerifier_Enabled(t *testing.T) {
	logger := zap.NewNop()

	assert.True(t, NewVerifier("secret", logger).Enabled())
	assert.False(t, NewVerifier("", logger).Enabled())
}
