// Package routing provides the route estimator adapter: an optional OSRM
// provider fronted by a Redis estimate cache, with the deterministic formula
// as the always-available fallback. Callers see one ports.RouteEstimator and
// never learn which path answered.
package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/services"
)

const metersPerMile = 1609.344

// OSRMClient performs route lookups against an OSRM HTTP server.
// OSRM answers distance and duration; fuel and toll estimates are derived
// from the road distance with the same cost constants the formula uses.
type OSRMClient struct {
	endpoint string
	client   *http.Client
	formula  services.FormulaEstimator
}

// NewOSRMClient creates a client for the given OSRM endpoint. The timeout
// bounds the whole HTTP exchange so a slow provider can never stall a
// candidate search.
func NewOSRMClient(endpoint string, timeout time.Duration) *OSRMClient {
	return &OSRMClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		formula:  services.NewFormulaEstimator(),
	}
}

// Route queries OSRM between the two points and returns a full estimate.
func (o *OSRMClient) Route(ctx context.Context, origin, destination kernel.GeoPoint) (kernel.RouteEstimate, error) {
	// OSRM route query: /route/v1/driving/{lon1},{lat1};{lon2},{lat2}?overview=false
	url := fmt.Sprintf("%s/route/v1/driving/%.6f,%.6f;%.6f,%.6f?overview=false",
		o.endpoint, origin.Lon(), origin.Lat(), destination.Lon(), destination.Lat())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return kernel.RouteEstimate{}, err
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return kernel.RouteEstimate{}, err
	}
	defer resp.Body.Close()

	var out struct {
		Routes []struct {
			DistanceMeters  float64 `json:"distance"`
			DurationSeconds float64 `json:"duration"`
		} `json:"routes"`
		Code string `json:"code"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return kernel.RouteEstimate{}, err
	}
	if out.Code != "Ok" || len(out.Routes) == 0 {
		return kernel.RouteEstimate{}, fmt.Errorf("osrm no route: %v", out.Code)
	}

	roadMiles := out.Routes[0].DistanceMeters / metersPerMile

	return kernel.RouteEstimate{
		DistanceMiles: roadMiles,
		DurationHours: out.Routes[0].DurationSeconds / 3600,
		FuelCost:      o.formula.FuelCost(roadMiles),
		TollCost:      o.formula.TollCost(roadMiles),
	}, nil
}
