package api

import (
	"context"
	"strconv"

	"github.com/iliesb/campus-admin-client/internal/gateway"
	"github.com/iliesb/campus-admin-client/internal/model"
)

// Reservations covers the booking endpoints.  All conflict and
// time-ordering validation lives server-side; these wrappers only move
// bytes.
type Reservations struct {
	gw *gateway.Client
}

// NewReservations binds the reservation endpoints to a gateway client.
func NewReservations(gw *gateway.Client) *Reservations { return &Reservations{gw: gw} }

// Create submits a booking and returns the created record.
func (r *Reservations) Create(ctx context.Context, req model.ReservationRequest) (model.Reservation, error) {
	var created model.Reservation
	err := r.gw.PostJSON(ctx, "/reservations", req, &created)
	return created, err
}

// Mine lists the bookings owned by the authenticated subject.
func (r *Reservations) Mine(ctx context.Context) ([]model.Reservation, error) {
	var list []model.Reservation
	err := r.gw.GetJSON(ctx, "/reservations/mes-reservations", nil, &list)
	return list, err
}

// All lists every booking in the system.  GESTIONNAIRE only.
func (r *Reservations) All(ctx context.Context) ([]model.Reservation, error) {
	var list []model.Reservation
	err := r.gw.GetJSON(ctx, "/reservations", nil, &list)
	return list, err
}

// Remove deletes a booking by identifier.  Irreversible; callers are
// expected to confirm destructive intent first.
func (r *Reservations) Remove(ctx context.Context, id int64) error {
	return r.gw.Delete(ctx, "/reservations/"+strconv.FormatInt(id, 10))
}
