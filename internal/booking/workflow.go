package booking // package booking implements the reservation workflow over the backend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iliesb/campus-admin-client/internal/api"
	"github.com/iliesb/campus-admin-client/internal/model"
)

// ErrMissingField is wrapped by Create when a required field is absent.
// Presence is the only validation the client performs; time ordering,
// double-booking and capacity are the backend's to enforce.
var ErrMissingField = errors.New("booking: missing required field")

// Workflow manages the authenticated subject's reservations.  The
// visible collection is always refreshed by a full re-fetch after every
// mutation; nothing is cached between calls and created records are
// never merged locally.  The last listing is retained only to feed the
// local date filter.
type Workflow struct {
	reservations *api.Reservations

	listing   []model.Reservation
	filterDay *time.Time
}

// NewWorkflow builds a Workflow over the reservation endpoints.
func NewWorkflow(reservations *api.Reservations) *Workflow {
	return &Workflow{reservations: reservations}
}

// List fetches the subject's reservations from the backend.  Always a
// fresh fetch; the result replaces the retained listing.
func (w *Workflow) List(ctx context.Context) ([]model.Reservation, error) {
	list, err := w.reservations.Mine(ctx)
	if err != nil {
		return nil, err
	}
	w.listing = list
	return list, nil
}

// ListAll fetches every booking in the system, not just the subject's
// own.  GESTIONNAIRE only.  It does not touch the retained listing or
// the date filter, which scope the "mine" view exclusively.
func (w *Workflow) ListAll(ctx context.Context) ([]model.Reservation, error) {
	return w.reservations.All(ctx)
}

// Create submits a booking after checking that every required field is
// present.  The caller is expected to re-run List to observe the new
// state rather than merging the returned record locally.
func (w *Workflow) Create(ctx context.Context, req model.ReservationRequest) (model.Reservation, error) {
	var missing []string
	if strings.TrimSpace(req.SalleNum) == "" {
		missing = append(missing, "salleNum")
	}
	if strings.TrimSpace(req.Matiere) == "" {
		missing = append(missing, "matiere")
	}
	if req.DateDebut.IsZero() {
		missing = append(missing, "dateDebut")
	}
	if req.DateFin.IsZero() {
		missing = append(missing, "dateFin")
	}
	if len(missing) > 0 {
		return model.Reservation{}, fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	return w.reservations.Create(ctx, req)
}

// Remove deletes a booking by identifier.  Irreversible: the caller must
// confirm destructive intent before calling.  On success the caller
// re-runs List.
func (w *Workflow) Remove(ctx context.Context, id int64) error {
	return w.reservations.Remove(ctx, id)
}

// SetFilterDay restricts the visible collection to reservations starting
// on the given local calendar day.  Purely local state; the retained
// listing and the server are untouched.
func (w *Workflow) SetFilterDay(day time.Time) {
	d := day
	w.filterDay = &d
}

// ClearFilterDay restores the full view instantly, without a refetch.
func (w *Workflow) ClearFilterDay() { w.filterDay = nil }

// Visible returns the last listing through the current date filter.
func (w *Workflow) Visible() []model.Reservation {
	if w.filterDay == nil {
		return w.listing
	}
	return FilterByDay(w.listing, *w.filterDay)
}

// FilterByDay returns the reservations whose start instant falls on the
// same local calendar day as day.  The input slice is left untouched.
func FilterByDay(list []model.Reservation, day time.Time) []model.Reservation {
	var out []model.Reservation
	for _, r := range list {
		if model.SameLocalDay(r.DateDebut.Time, day) {
			out = append(out, r)
		}
	}
	return out
}
