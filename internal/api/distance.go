package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/iliesb/campus-admin-client/internal/gateway"
	"github.com/iliesb/campus-admin-client/internal/model"
)

// Distance covers the building-pair distance endpoints.
type Distance struct {
	gw *gateway.Client
}

// NewDistance binds the distance endpoints to a gateway client.
func NewDistance(gw *gateway.Client) *Distance { return &Distance{gw: gw} }

// Between computes the great-circle distance between two buildings
// identified by code.  The backend answers 404 when a code is unknown
// and 400 when either building lacks coordinates.
func (d *Distance) Between(ctx context.Context, code1, code2 string) (model.DistanceResult, error) {
	query := url.Values{}
	query.Set("code1", code1)
	query.Set("code2", code2)
	var result model.DistanceResult
	err := d.gw.GetJSON(ctx, "/distance/between", query, &result)
	return result, err
}

// Calculate computes the distance between two raw coordinate pairs,
// bypassing the building registry.
func (d *Distance) Calculate(ctx context.Context, lat1, lon1, lat2, lon2 float64) (model.DistanceInfo, error) {
	query := url.Values{}
	query.Set("lat1", strconv.FormatFloat(lat1, 'f', -1, 64))
	query.Set("lon1", strconv.FormatFloat(lon1, 'f', -1, 64))
	query.Set("lat2", strconv.FormatFloat(lat2, 'f', -1, 64))
	query.Set("lon2", strconv.FormatFloat(lon2, 'f', -1, 64))
	var info model.DistanceInfo
	err := d.gw.GetJSON(ctx, "/distance/calculate", query, &info)
	return info, err
}
