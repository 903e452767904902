package session // package session derives and manages the client-side identity

import "time"

// Role is the application role carried in the credential's roles claim,
// without the ROLE_ prefix.
type Role string

// Roles known to the backend.  GESTIONNAIRE is the privileged facilities
// manager; ENSEIGNANT may book rooms; ETUDIANT is read-only.
const (
	RoleGestionnaire Role = "GESTIONNAIRE"
	RoleEnseignant   Role = "ENSEIGNANT"
	RoleEtudiant     Role = "ETUDIANT"
)

// Known reports whether the role is one of the backend's fixed set.
func (r Role) Known() bool {
	switch r {
	case RoleGestionnaire, RoleEnseignant, RoleEtudiant:
		return true
	}
	return false
}

// Session is the identity view materialized from a credential.  It is
// never mutated in place: a new credential produces a freshly derived
// Session, and clearing the credential drops it.
//
// Fields:
//  Email       – subject of the credential.
//  Role        – first role claim, ROLE_ prefix stripped.
//  DisplayName – full name claim, or the literal placeholder
//                "Utilisateur" when the credential carries none.
//  ExpiresAt   – expiry instant; zero when the credential never expires.
type Session struct {
	Email       string
	Role        Role
	DisplayName string
	ExpiresAt   time.Time
}
