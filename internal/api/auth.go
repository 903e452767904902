package api // package api provides typed wrappers around the backend's REST surface

import (
	"context"

	"github.com/iliesb/campus-admin-client/internal/gateway"
	"github.com/iliesb/campus-admin-client/internal/model"
)

// Auth covers credential issuance and the account profile.  Login,
// signup and profile update all return a freshly issued token which the
// caller must commit to the session manager; the backend never mutates
// an existing credential in place.
type Auth struct {
	gw *gateway.Client
}

// NewAuth binds the auth endpoints to a gateway client.
func NewAuth(gw *gateway.Client) *Auth { return &Auth{gw: gw} }

// Login exchanges credentials for a bearer token.
func (a *Auth) Login(ctx context.Context, email, password string) (string, error) {
	var resp model.TokenResponse
	err := a.gw.PostJSON(ctx, "/auth/login", model.Credentials{Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Signup registers a new account and returns its first token.
func (a *Auth) Signup(ctx context.Context, email, password, fullName string) (string, error) {
	var resp model.TokenResponse
	req := model.SignupRequest{Email: email, Password: password, FullName: fullName}
	if err := a.gw.PostJSON(ctx, "/auth/signup", req, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// UpdateProfile changes the display name.  The backend re-issues the
// credential so the embedded fullName claim stays current; the returned
// token must be re-committed.
func (a *Auth) UpdateProfile(ctx context.Context, fullName string) (string, error) {
	var resp model.TokenResponse
	if err := a.gw.PatchJSON(ctx, "/users/me", model.ProfileUpdate{FullName: fullName}, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// CurrentUser fetches the authenticated account's profile.
func (a *Auth) CurrentUser(ctx context.Context) (model.UserProfile, error) {
	var profile model.UserProfile
	err := a.gw.GetJSON(ctx, "/users/me", nil, &profile)
	return profile, err
}
