package auth

import (
	"crypto/subtle"

	"go.uber.org/zap"
)

// Verifier checks the shared secret carried by inbound webhook requests.
// An empty configured secret disables verification entirely; that condition
// is logged once at construction so it cannot go unnoticed in production.
type Verifier struct {
	secret   string
	disabled bool
}

func NewVerifier(secret string, logger *zap.Logger) *Verifier {
	v := &Verifier{secret: secret, disabled: secret == ""}
	if v.disabled {
		logger.Warn("Webhook secret is not configured - webhook authentication is DISABLED",
			zap.String("risk", "any caller can push connection events"))
	}
	return v
}

// Verify reports whether the provided secret matches the configured one.
// The comparison is constant time and never short-circuits on an early byte
// mismatch. Secrets of different byte length always fail.
func (v *Verifier) Verify(provided string) bool {
	if v.disabled {
		return true
	}
	if len(provided) != len(v.secret) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(provided), []byte(v.secret)) == 1
}

// Enabled reports whether a secret is configured.
func (v *Verifier) Enabled() bool {
	return !v.disabled
}
