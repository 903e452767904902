package api

import (
	"context"

	"github.com/iliesb/campus-admin-client/internal/gateway"
	"github.com/iliesb/campus-admin-client/internal/model"
)

// PublicData serves the unauthenticated read projections under
// /api/data: the field subsets exposed to the map and to the booking
// autocomplete.
type PublicData struct {
	gw *gateway.Client
}

// NewPublicData binds the public data endpoints to a gateway client.
func NewPublicData(gw *gateway.Client) *PublicData { return &PublicData{gw: gw} }

// Batiments lists the buildings with their map projection fields.
func (p *PublicData) Batiments(ctx context.Context) ([]model.BatimentInfo, error) {
	var list []model.BatimentInfo
	err := p.gw.GetJSON(ctx, "/api/data/batiments", nil, &list)
	return list, err
}

// Salles lists the rooms available for booking autocomplete.
func (p *PublicData) Salles(ctx context.Context) ([]model.SalleInfo, error) {
	var list []model.SalleInfo
	err := p.gw.GetJSON(ctx, "/api/data/salles", nil, &list)
	return list, err
}

// Composantes lists the university components.
func (p *PublicData) Composantes(ctx context.Context) ([]model.ComposanteInfo, error) {
	var list []model.ComposanteInfo
	err := p.gw.GetJSON(ctx, "/api/data/composantes", nil, &list)
	return list, err
}

// AdminData serves the privileged full-field projections under
// /admin/data.  Every call requires the GESTIONNAIRE role; the backend
// answers 403 otherwise.
type AdminData struct {
	gw *gateway.Client
}

// NewAdminData binds the admin data endpoints to a gateway client.
func NewAdminData(gw *gateway.Client) *AdminData { return &AdminData{gw: gw} }

// Batiments lists buildings with all fields and relations.
func (a *AdminData) Batiments(ctx context.Context) ([]model.Batiment, error) {
	var list []model.Batiment
	err := a.gw.GetJSON(ctx, "/admin/data/batiments", nil, &list)
	return list, err
}

// Campus lists campuses with their university relation.
func (a *AdminData) Campus(ctx context.Context) ([]model.Campus, error) {
	var list []model.Campus
	err := a.gw.GetJSON(ctx, "/admin/data/campus", nil, &list)
	return list, err
}

// Salles lists rooms with all fields and their building relation.
func (a *AdminData) Salles(ctx context.Context) ([]model.Salle, error) {
	var list []model.Salle
	err := a.gw.GetJSON(ctx, "/admin/data/salles", nil, &list)
	return list, err
}

// Composantes lists components with their building relations.
func (a *AdminData) Composantes(ctx context.Context) ([]model.Composante, error) {
	var list []model.Composante
	err := a.gw.GetJSON(ctx, "/admin/data/composantes", nil, &list)
	return list, err
}

// Universites lists universities with all fields.
func (a *AdminData) Universites(ctx context.Context) ([]model.Universite, error) {
	var list []model.Universite
	err := a.gw.GetJSON(ctx, "/admin/data/universites", nil, &list)
	return list, err
}
