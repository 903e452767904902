package mapsel

import (
	"context"
	"errors"
	"fmt"

	"github.com/iliesb/campus-admin-client/internal/api"
	"github.com/iliesb/campus-admin-client/internal/model"
)

// ErrSelectionIncomplete is returned by ComputeDistance outside the
// two-selected state.
var ErrSelectionIncomplete = errors.New("mapsel: exactly two buildings must be selected")

// ErrUnknownBuilding is returned by Pick for a code that is not in the
// pickable set, either because it does not exist or because the building
// has no coordinates.
var ErrUnknownBuilding = errors.New("mapsel: unknown or ungeolocated building")

// Workflow drives the map screen's selection and distance computation.
// It loads the public building collection, keeps only geolocated
// buildings pickable, and computes the distance for the selected pair on
// demand.  The distance result is derived state: any selection change
// discards it, and it is never cached across changes.
type Workflow struct {
	data     *api.PublicData
	distance *api.Distance

	selection    Selection
	pickable     map[string]model.BatimentInfo
	buildings    []model.BatimentInfo
	ungeolocated int
	result       *model.DistanceResult
}

// NewWorkflow builds a Workflow over the public data and distance
// endpoints.
func NewWorkflow(data *api.PublicData, distance *api.Distance) *Workflow {
	return &Workflow{data: data, distance: distance, pickable: map[string]model.BatimentInfo{}}
}

// Load fetches the building collection and partitions it into the
// pickable geolocated set and an ungeolocated count.  Buildings without
// coordinates never participate in selection but are still reported so
// the caller can surface them.
func (w *Workflow) Load(ctx context.Context) error {
	all, err := w.data.Batiments(ctx)
	if err != nil {
		return fmt.Errorf("load buildings: %w", err)
	}
	w.buildings = w.buildings[:0]
	w.pickable = make(map[string]model.BatimentInfo, len(all))
	w.ungeolocated = 0
	for _, b := range all {
		if !b.Geolocated() {
			w.ungeolocated++
			continue
		}
		w.buildings = append(w.buildings, b)
		w.pickable[b.Code] = b
	}
	return nil
}

// Buildings returns the pickable, geolocated buildings.
func (w *Workflow) Buildings() []model.BatimentInfo { return w.buildings }

// Ungeolocated returns how many loaded buildings lack coordinates.
func (w *Workflow) Ungeolocated() int { return w.ungeolocated }

// Pick toggles the building with the given code in the selection.  Any
// previously computed distance is discarded, whatever the outcome of the
// toggle.
func (w *Workflow) Pick(code string) error {
	b, ok := w.pickable[code]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownBuilding, code)
	}
	w.selection.Pick(b)
	w.result = nil
	return nil
}

// ClearSelection empties the selection and discards any distance result.
func (w *Workflow) ClearSelection() {
	w.selection.Clear()
	w.result = nil
}

// Selected returns the current selection in pick order.
func (w *Workflow) Selected() []model.BatimentInfo { return w.selection.Members() }

// Ready reports whether a distance can be computed.
func (w *Workflow) Ready() bool { return w.selection.Ready() }

// ComputeDistance measures the selected pair.  It never mutates the
// selection: on failure the two picks stay selected so the measurement
// can simply be retried.
func (w *Workflow) ComputeDistance(ctx context.Context) (model.DistanceResult, error) {
	if !w.selection.Ready() {
		return model.DistanceResult{}, ErrSelectionIncomplete
	}
	codes := w.selection.Codes()
	result, err := w.distance.Between(ctx, codes[0], codes[1])
	if err != nil {
		return model.DistanceResult{}, err
	}
	w.result = &result
	return result, nil
}

// Result returns the last computed distance, or nil when none is
// current (never computed, or invalidated by a selection change).
func (w *Workflow) Result() *model.DistanceResult { return w.result }
