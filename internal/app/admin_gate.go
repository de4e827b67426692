package app

import (
	"crypto/sha256"
	"crypto/subtle"
)

// AdminGate checks a caller credential against the configured shared secret.
type AdminGate struct {
	digest     [sha256.Size]byte
	configured bool
}

// NewAdminGate builds a gate. An empty secret yields a gate that denies everyone.
func NewAdminGate(secret string) *AdminGate {
	return &AdminGate{
		digest:     sha256.Sum256([]byte(secret)),
		configured: secret != "",
	}
}

// Verify compares digests so the comparison time does not depend on where the
// inputs differ or on their lengths.
func (g *AdminGate) Verify(credential string) bool {
	if g == nil || !g.configured {
		return false
	}
	got := sha256.Sum256([]byte(credential))
	return subtle.ConstantTimeCompare(got[:], g.digest[:]) == 1
}

func (g *AdminGate) Authorize(credential string) error {
	if !g.Verify(credential) {
		return ErrUnauthorized
	}
	return nil
}
