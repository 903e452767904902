package session

import (
	"fmt"
	"log"     // decode failures are logged, never surfaced to the UI
	"strings" // for splitting the roles claim
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT parsing (signature left to the backend)
)

// rolePrefix is the Spring-style prefix the backend attaches to role
// claims, e.g. "ROLE_GESTIONNAIRE".
const rolePrefix = "ROLE_"

// defaultDisplayName is used when the credential carries no name claim.
const defaultDisplayName = "Utilisateur"

// Decode parses the raw credential without verifying its signature.  The
// client holds no signing secret; it only reads the claims the backend
// put there.  Tampering is the backend's problem: every request carries
// the raw token and is re-verified server-side.
func Decode(raw string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("decode credential: %w", err)
	}
	return claims, nil
}

// Derive materializes a Session from a raw credential.  A malformed
// credential derives to nil: the failure is logged and treated as "no
// session" rather than an error the caller must handle.
func Derive(raw string) *Session {
	claims, err := Decode(raw)
	if err != nil {
		log.Printf("session: %v", err)
		return nil
	}

	s := &Session{
		Email:       stringClaim(claims, "sub"),
		Role:        extractRole(claims),
		DisplayName: extractDisplayName(claims),
	}
	if s.Email == "" {
		s.Email = stringClaim(claims, "email")
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		s.ExpiresAt = exp.Time
	}
	return s
}

// Expired reports whether the raw credential is past its expiry.  Two
// deliberate asymmetries carried over from the system this replaces:
// a credential that fails to decode counts as expired, while a credential
// with no expiry claim at all counts as never expiring.
func Expired(raw string) bool {
	claims, err := Decode(raw)
	if err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Time.Unix() < time.Now().Unix()
}

// extractRole pulls the application role out of the claims.  The backend
// stores roles as a comma-separated "roles" claim with ROLE_ prefixes;
// the first one wins.  Older token shapes used a bare "role" claim or an
// "authorities" array, so those are tried in turn.
func extractRole(claims jwt.MapClaims) Role {
	if roles := stringClaim(claims, "roles"); roles != "" {
		first := strings.TrimSpace(strings.SplitN(roles, ",", 2)[0])
		return Role(strings.TrimPrefix(first, rolePrefix))
	}
	if role := stringClaim(claims, "role"); role != "" {
		return Role(strings.TrimPrefix(role, rolePrefix))
	}
	if auths, ok := claims["authorities"].([]interface{}); ok && len(auths) > 0 {
		if first, ok := auths[0].(string); ok {
			return Role(strings.TrimPrefix(first, rolePrefix))
		}
	}
	return ""
}

// extractDisplayName tries the name claim under each alias the backend
// has used, falling back to a literal placeholder.
func extractDisplayName(claims jwt.MapClaims) string {
	for _, key := range []string{"fullName", "name", "full_name"} {
		if v := stringClaim(claims, key); v != "" {
			return v
		}
	}
	return defaultDisplayName
}

// stringClaim returns a claim as a string, or "" when absent or not a
// string.
func stringClaim(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)
	return v
}
