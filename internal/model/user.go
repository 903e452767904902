package model

// UserProfile is the backend's view of an account, returned by
// GET /users/me and by the privileged user-management listing.
//
// Fields:
//  ID       – numeric account identifier.
//  Email    – unique login email.
//  FullName – display name shown in the UI.
//  Role     – role name without the ROLE_ prefix
//             (GESTIONNAIRE, ENSEIGNANT or ETUDIANT).
type UserProfile struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// Credentials is the payload for POST /auth/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the payload for POST /auth/signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

// ProfileUpdate is the payload for PATCH /users/me.  A successful update
// re-issues the credential, which must be committed to the session store.
type ProfileUpdate struct {
	FullName string `json:"fullName"`
}

// TokenResponse is the body returned by login, signup and profile update.
type TokenResponse struct {
	Token string `json:"token"`
}
