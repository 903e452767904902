package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "session-test-secret"

// mintToken signs an HS256 token carrying the given claims, the same
// shape the backend issues.
func mintToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestDerive_RolesClaimFirstWins(t *testing.T) {
	raw := mintToken(t, jwt.MapClaims{
		"sub":      "manager@univ.fr",
		"roles":    "ROLE_GESTIONNAIRE,ROLE_ENSEIGNANT",
		"fullName": "Marie Dupont",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	s := Derive(raw)
	if s == nil {
		t.Fatal("expected a session, got nil")
	}
	if s.Email != "manager@univ.fr" {
		t.Errorf("Email: got %q", s.Email)
	}
	if s.Role != RoleGestionnaire {
		t.Errorf("Role: got %q, want %q", s.Role, RoleGestionnaire)
	}
	if s.DisplayName != "Marie Dupont" {
		t.Errorf("DisplayName: got %q", s.DisplayName)
	}
	if s.ExpiresAt.IsZero() {
		t.Error("ExpiresAt: expected non-zero expiry")
	}
}

func TestDerive_RoleFallbacks(t *testing.T) {
	cases := []struct {
		name   string
		claims jwt.MapClaims
		want   Role
	}{
		{"bare role claim", jwt.MapClaims{"sub": "a@b.fr", "role": "ENSEIGNANT"}, RoleEnseignant},
		{"prefixed role claim", jwt.MapClaims{"sub": "a@b.fr", "role": "ROLE_ETUDIANT"}, RoleEtudiant},
		{"authorities array", jwt.MapClaims{"sub": "a@b.fr", "authorities": []interface{}{"ROLE_ETUDIANT"}}, RoleEtudiant},
		{"no role at all", jwt.MapClaims{"sub": "a@b.fr"}, Role("")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Derive(mintToken(t, tc.claims))
			if s == nil {
				t.Fatal("expected a session, got nil")
			}
			if s.Role != tc.want {
				t.Errorf("Role: got %q, want %q", s.Role, tc.want)
			}
		})
	}
}

func TestDerive_DisplayNameFallbacks(t *testing.T) {
	cases := []struct {
		name   string
		claims jwt.MapClaims
		want   string
	}{
		{"fullName", jwt.MapClaims{"sub": "a@b.fr", "fullName": "Alice"}, "Alice"},
		{"name alias", jwt.MapClaims{"sub": "a@b.fr", "name": "Bob"}, "Bob"},
		{"snake alias", jwt.MapClaims{"sub": "a@b.fr", "full_name": "Chloe"}, "Chloe"},
		{"placeholder", jwt.MapClaims{"sub": "a@b.fr"}, "Utilisateur"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Derive(mintToken(t, tc.claims))
			if s == nil {
				t.Fatal("expected a session, got nil")
			}
			if s.DisplayName != tc.want {
				t.Errorf("DisplayName: got %q, want %q", s.DisplayName, tc.want)
			}
		})
	}
}

func TestDerive_EmailFallback(t *testing.T) {
	s := Derive(mintToken(t, jwt.MapClaims{"email": "fallback@univ.fr"}))
	if s == nil {
		t.Fatal("expected a session, got nil")
	}
	if s.Email != "fallback@univ.fr" {
		t.Errorf("Email: got %q", s.Email)
	}
}

func TestDerive_MalformedReturnsNil(t *testing.T) {
	if s := Derive("not.a.token"); s != nil {
		t.Fatalf("expected nil session, got %+v", s)
	}
}

func TestExpired(t *testing.T) {
	cases := []struct {
		name string
		raw  func(t *testing.T) string
		want bool
	}{
		{"malformed counts as expired", func(t *testing.T) string { return "garbage" }, true},
		{"no exp claim never expires", func(t *testing.T) string {
			return mintToken(t, jwt.MapClaims{"sub": "a@b.fr"})
		}, false},
		{"past exp", func(t *testing.T) string {
			return mintToken(t, jwt.MapClaims{"sub": "a@b.fr", "exp": time.Now().Add(-time.Minute).Unix()})
		}, true},
		{"future exp", func(t *testing.T) string {
			return mintToken(t, jwt.MapClaims{"sub": "a@b.fr", "exp": time.Now().Add(time.Hour).Unix()})
		}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Expired(tc.raw(t)); got != tc.want {
				t.Errorf("Expired: got %v, want %v", got, tc.want)
			}
		})
	}
}
