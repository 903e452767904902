package api

import (
	"context"
	"strconv"

	"github.com/iliesb/campus-admin-client/internal/gateway"
	"github.com/iliesb/campus-admin-client/internal/model"
)

// Users covers the privileged account-management endpoints under
// /admin/users.
type Users struct {
	gw *gateway.Client
}

// NewUsers binds the user-management endpoints to a gateway client.
func NewUsers(gw *gateway.Client) *Users { return &Users{gw: gw} }

// List returns every account known to the backend.
func (u *Users) List(ctx context.Context) ([]model.UserProfile, error) {
	var list []model.UserProfile
	err := u.gw.GetJSON(ctx, "/admin/users", nil, &list)
	return list, err
}

// roleUpdate is the PATCH body for a role change.
type roleUpdate struct {
	Role string `json:"role"`
}

// SetRole changes an account's role.  The backend validates the role
// name against its fixed set and answers 400 for unknown values.
func (u *Users) SetRole(ctx context.Context, id int, role string) error {
	return u.gw.PatchJSON(ctx, "/admin/users/"+strconv.Itoa(id)+"/role", roleUpdate{Role: role}, nil)
}

// Remove deletes an account by identifier.
func (u *Users) Remove(ctx context.Context, id int) error {
	return u.gw.Delete(ctx, "/admin/users/"+strconv.Itoa(id))
}
