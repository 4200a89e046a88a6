package kernel

import (
	"errors"
	"fmt"
	"math"

	"freightmatch/internal/pkg/errs"
	"freightmatch/internal/pkg/guard"
)

const (
	// GeoPointMinLatitude is the minimum valid latitude in decimal degrees.
	GeoPointMinLatitude float64 = -90
	// GeoPointMaxLatitude is the maximum valid latitude in decimal degrees.
	GeoPointMaxLatitude float64 = 90
	// GeoPointMinLongitude is the minimum valid longitude in decimal degrees.
	GeoPointMinLongitude float64 = -180
	// GeoPointMaxLongitude is the maximum valid longitude in decimal degrees.
	GeoPointMaxLongitude float64 = 180

	// earthRadiusMiles is the mean Earth radius in statute miles, used by the
	// haversine great-circle distance.
	earthRadiusMiles = 3958.8
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly initialized GeoPoint.
// GeoPoints must be created using the NewGeoPoint constructor to ensure validity.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a geographic position as a latitude/longitude pair in
// decimal degrees. GeoPoint is an immutable value object that ensures
// coordinates are always within valid bounds. The zero value of GeoPoint is
// invalid and will fail validation - use the constructor to create instances.
//
// GeoPoint positions carriers, pickup stops, delivery stops, and tracking
// events. Distances between points are great-circle distances in statute
// miles; the route estimator inflates them into road-distance estimates.
//
// Example:
//
//	atlanta, err := kernel.NewGeoPoint(33.7490, -84.3880)
//	if err != nil {
//	    // Handle validation error
//	}
//	miami, _ := kernel.NewGeoPoint(25.7617, -80.1918)
//	miles, _ := atlanta.DistanceMilesTo(miami)
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lon   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with the given latitude and longitude in
// decimal degrees.
//
// Parameters:
//   - lat: latitude, must be within [-90, 90]
//   - lon: longitude, must be within [-180, 180]
//
// Returns:
//   - GeoPoint: a validated geographic position
//   - error: ValueIsOutOfRangeError naming the offending coordinate
func NewGeoPoint(lat float64, lon float64) (GeoPoint, error) {
	point := GeoPoint{guard: guard.NewConstructorGuard()}

	if err := errors.Join(point.setLat(lat), point.setLon(lon)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks that the GeoPoint was properly constructed.
// Returns ErrGeoPointIsNotConstructed for zero-value instances.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude in decimal degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lon returns the longitude in decimal degrees.
func (p GeoPoint) Lon() float64 {
	return p.lon
}

// String returns a human-readable "(lat, lon)" representation, useful for
// logging and error messages.
func (p GeoPoint) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", p.lat, p.lon)
}

// IsEqual compares two GeoPoints for exact coordinate equality.
//
// Returns:
//   - bool: true when both points hold identical coordinates
//   - error: validation error if either point was not properly constructed
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.lat == other.lat && p.lon == other.lon, nil
}

// DistanceMilesTo returns the great-circle (haversine) distance to another
// point in statute miles. The distance between a point and itself is zero.
//
// Returns:
//   - float64: distance in statute miles
//   - error: validation error if either point was not properly constructed
func (p GeoPoint) DistanceMilesTo(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := p.lat * math.Pi / 180
	lat2 := other.lat * math.Pi / 180
	dLat := (other.lat - p.lat) * math.Pi / 180
	dLon := (other.lon - p.lon) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c, nil
}

// setLat sets the latitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Although mixing receiver types is generally not recommended, in this case we use pointer
// receivers for these private setters to enable self-encapsulated validation of business
// requirements during object construction.
func (p *GeoPoint) setLat(lat float64) error {
	if lat < GeoPointMinLatitude || lat > GeoPointMaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", lat, GeoPointMinLatitude, GeoPointMaxLatitude)
	}

	p.lat = lat
	return nil
}

// setLon sets the longitude with validation.
func (p *GeoPoint) setLon(lon float64) error {
	if lon < GeoPointMinLongitude || lon > GeoPointMaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", lon, GeoPointMinLongitude, GeoPointMaxLongitude)
	}

	p.lon = lon
	return nil
}
