package api

import (
	"context"

	"github.com/iliesb/campus-admin-client/internal/gateway"
	"github.com/iliesb/campus-admin-client/internal/model"
)

// Facilities covers the privileged CRUD surface for the five facility
// entities.  Each entity is addressed by its natural key (building code,
// campus name, room number, component acronym, university name); the
// backend enforces the GESTIONNAIRE role on every mutation.
type Facilities struct {
	gw *gateway.Client
}

// NewFacilities binds the facility CRUD endpoints to a gateway client.
func NewFacilities(gw *gateway.Client) *Facilities { return &Facilities{gw: gw} }

// CreateBatiment creates a building.
func (f *Facilities) CreateBatiment(ctx context.Context, req model.BatimentRequest) error {
	return f.gw.PostJSON(ctx, "/batiments", req, nil)
}

// UpdateBatiment patches the building identified by code.
func (f *Facilities) UpdateBatiment(ctx context.Context, code string, req model.BatimentRequest) error {
	return f.gw.PatchJSON(ctx, "/batiments/"+code, req, nil)
}

// DeleteBatiment removes the building identified by code.
func (f *Facilities) DeleteBatiment(ctx context.Context, code string) error {
	return f.gw.Delete(ctx, "/batiments/"+code)
}

// CreateCampus creates a campus.
func (f *Facilities) CreateCampus(ctx context.Context, req model.CampusRequest) error {
	return f.gw.PostJSON(ctx, "/campus", req, nil)
}

// UpdateCampus patches the campus identified by name.
func (f *Facilities) UpdateCampus(ctx context.Context, nom string, req model.CampusRequest) error {
	return f.gw.PatchJSON(ctx, "/campus/"+nom, req, nil)
}

// DeleteCampus removes the campus identified by name.
func (f *Facilities) DeleteCampus(ctx context.Context, nom string) error {
	return f.gw.Delete(ctx, "/campus/"+nom)
}

// CreateSalle creates a room.
func (f *Facilities) CreateSalle(ctx context.Context, req model.SalleRequest) error {
	return f.gw.PostJSON(ctx, "/salles", req, nil)
}

// UpdateSalle patches the room identified by number.
func (f *Facilities) UpdateSalle(ctx context.Context, num string, req model.SalleRequest) error {
	return f.gw.PatchJSON(ctx, "/salles/"+num, req, nil)
}

// DeleteSalle removes the room identified by number.
func (f *Facilities) DeleteSalle(ctx context.Context, num string) error {
	return f.gw.Delete(ctx, "/salles/"+num)
}

// CreateComposante creates a component.
func (f *Facilities) CreateComposante(ctx context.Context, req model.ComposanteRequest) error {
	return f.gw.PostJSON(ctx, "/composantes", req, nil)
}

// UpdateComposante patches the component identified by acronym.
func (f *Facilities) UpdateComposante(ctx context.Context, acronyme string, req model.ComposanteRequest) error {
	return f.gw.PatchJSON(ctx, "/composantes/"+acronyme, req, nil)
}

// DeleteComposante removes the component identified by acronym.
func (f *Facilities) DeleteComposante(ctx context.Context, acronyme string) error {
	return f.gw.Delete(ctx, "/composantes/"+acronyme)
}

// CreateUniversite creates a university.
func (f *Facilities) CreateUniversite(ctx context.Context, req model.UniversiteRequest) error {
	return f.gw.PostJSON(ctx, "/universites", req, nil)
}

// UpdateUniversite patches the university identified by name.
func (f *Facilities) UpdateUniversite(ctx context.Context, nom string, req model.UniversiteRequest) error {
	return f.gw.PatchJSON(ctx, "/universites/"+nom, req, nil)
}

// DeleteUniversite removes the university identified by name.
func (f *Facilities) DeleteUniversite(ctx context.Context, nom string) error {
	return f.gw.Delete(ctx, "/universites/"+nom)
}
