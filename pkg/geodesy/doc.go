// Package geodesy provides typed geodetic coordinates and the geometry algebra
// built on them.
//
// The coordinate reference system (CRS) is part of every type. Point, Vector,
// BoundingBox and the geometry types are parameterized by their coordinate
// tuple, so a geographic point cannot be added to a geocentric vector and a
// bounding box of one CRS cannot be merged with another. Conversions between
// reference systems are explicit Converter values.
//
// # Reference Systems
//
// Three WGS 84 systems are built in:
//
//	Coordinate2D          EPSG:4326  (latitude, longitude) in degrees
//	Coordinate3D          EPSG:4979  (latitude, longitude, ellipsoidal height)
//	GeocentricCoordinate  EPSG:4978  (X, Y, Z) in metres
//
// Components are named float types (Latitude, Longitude, Altitude, Meters),
// so mixing axes or units is a compile error. Angular components may hold
// out-of-range values; Valid wraps them back into range.
//
// # Basic Usage
//
//	a := geodesy.Point2D(42.0, -71.0)
//	b := geodesy.Point2D(42.5, -70.5)
//	v := b.Sub(a)          // Vector[Coordinate2D]
//	mid := a.Add(v.Divide(2))
//
//	ls, err := geodesy.NewLineString(a, mid, b)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	box, _ := ls.BoundingBox()
//
// # Bounding Boxes and the Antimeridian
//
// GeographicBoundingBox (and the BoundingBox method of every shape) returns
// the narrowest box containing the points, measuring longitude across ±180°
// when that is shorter:
//
//	box, _ := geodesy.BoundingBoxOf(
//	    geodesy.Point2D(-65, 175),
//	    geodesy.Point2D(-70, -170),
//	)
//	box.West()                // 175
//	box.East()                // -170
//	box.CrossesAntimeridian() // true
//
// NaiveBoundingBox ignores wraparound and is only correct for data known not
// to straddle the antimeridian. Union, Contains, Intersects and Parts all
// understand crossing boxes.
//
// # Conversions
//
//	conv := geodesy.GeographicToGeocentric{}
//	ecef := conv.Apply(geodesy.Coordinate3D{Latitude: 45, Longitude: 90, Altitude: 100})
//	back := conv.Unapply(ecef)
//
// Compose chains converters; Geographic2DToGeocentric is the composition of
// Geographic3DTo2D (inverted) and GeographicToGeocentric.
//
// # Curves and Areas
//
// LineString.Bezier fits a cubic spline through the points. SignedArea,
// IsClockwise, Centroid and CenterOfMass are planar computations on the
// first two axes. Winding is measured with the first axis horizontal, so for
// geographic rings "clockwise" refers to the (latitude, longitude) plane and
// appears counter-clockwise on a north-up map.
//
// # Caching and Indexing
//
// Nothing in the package caches implicitly. BoundsCache memoizes boxes by
// shape hash and Index answers intersection and nearest queries over many
// shapes; both are safe for concurrent use and are configured through
// CacheOptions and IndexOptions, which can be loaded from YAML with
// LoadOptions. NewCacheCollector exports cache statistics to Prometheus.
//
// # Error Handling
//
// Constructors return typed errors (ErrTooFewPoints, ErrRingNotClosed) that
// match ErrInvalidGeometry with errors.Is. Runtime-tagged values report
// ErrCRSMismatch. Must* constructors and Bezier with out-of-range arguments
// panic; they are meant for programmer-controlled inputs.
package geodesy
