// Package spatial implements the interchange codec's Point value kind: a
// coordinate tuple tagged with a spatial reference system identifier (SRID).
package spatial

import "github.com/nascanti/interchange/errs"

// Well-known SRIDs the codec's constructors recognize.
const (
	SRIDWGS84_2D    = 4326
	SRIDWGS84_3D    = 4979
	SRIDCartesian2D = 7203
	SRIDCartesian3D = 9157
)

// Point is an SRID-tagged coordinate tuple of 2 or 3 dimensions.
type Point struct {
	SRID   int64
	Coords []float64
}

// New constructs a Point, rejecting any dimension count other than 2 or 3.
func New(srid int64, coords ...float64) (Point, error) {
	if len(coords) != 2 && len(coords) != 3 {
		return Point{}, errs.ErrPointDimension
	}

	cp := make([]float64, len(coords))
	copy(cp, coords)

	return Point{SRID: srid, Coords: cp}, nil
}

// WGS84 constructs a 2D geographic point (longitude, latitude) in the WGS84
// reference system.
func WGS84(longitude, latitude float64) Point {
	return Point{SRID: SRIDWGS84_2D, Coords: []float64{longitude, latitude}}
}

// WGS843D constructs a 3D geographic point (longitude, latitude, height) in
// the WGS84 reference system.
func WGS843D(longitude, latitude, height float64) Point {
	return Point{SRID: SRIDWGS84_3D, Coords: []float64{longitude, latitude, height}}
}

// Cartesian constructs a 2D Cartesian point (x, y).
func Cartesian(x, y float64) Point {
	return Point{SRID: SRIDCartesian2D, Coords: []float64{x, y}}
}

// Cartesian3D constructs a 3D Cartesian point (x, y, z).
func Cartesian3D(x, y, z float64) Point {
	return Point{SRID: SRIDCartesian3D, Coords: []float64{x, y, z}}
}

// Is3D reports whether p carries three coordinates.
func (p Point) Is3D() bool { return len(p.Coords) == 3 }

// X, Y and Z return the point's first, second and third coordinates. Z
// panics if p is not 3D; callers should check Is3D first.
func (p Point) X() float64 { return p.Coords[0] }
func (p Point) Y() float64 { return p.Coords[1] }
func (p Point) Z() float64 { return p.Coords[2] }

// Equal reports whether p and other carry the same SRID and coordinates.
func (p Point) Equal(other Point) bool {
	if p.SRID != other.SRID || len(p.Coords) != len(other.Coords) {
		return false
	}
	for i, c := range p.Coords {
		if c != other.Coords[i] {
			return false
		}
	}

	return true
}
