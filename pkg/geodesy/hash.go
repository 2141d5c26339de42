package geodesy

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Shape kinds mixed into identity hashes so that, for example, a Line and a
// two-point LineString over the same points hash differently.
const (
	kindPoint              = "Point"
	kindLine               = "Line"
	kindLineString         = "LineString"
	kindLinearRing         = "LinearRing"
	kindMultiPoint         = "MultiPoint"
	kindMultiLine          = "MultiLine"
	kindPolygon            = "Polygon"
	kindBoundingBox        = "BoundingBox"
	kindGeometryCollection = "GeometryCollection"
)

// Hashable is a shape with an identity hash.
type Hashable interface {
	Hash() uint64
}

// hashPoints hashes the shape kind, the CRS identifier and the raw component
// bits of every point.
func hashPoints[C Coordinates[C]](kind string, points []Point[C]) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(kind)
	_, _ = d.WriteString(string(crsOf[C]().ID))
	writePoints(d, points)
	return d.Sum64()
}

func writePoints[C Coordinates[C]](d *xxhash.Digest, points []Point[C]) {
	var buf [8]byte
	dim := crsOf[C]().Dimension()
	for _, p := range points {
		v := p.vec()
		for i := 0; i < dim; i++ {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v[i]))
			_, _ = d.Write(buf[:])
		}
	}
}

// hashParts combines child hashes under a kind tag.
func hashParts(kind string, crs CRSID, parts []uint64) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(kind)
	_, _ = d.WriteString(string(crs))

	var buf [8]byte
	for _, h := range parts {
		binary.LittleEndian.PutUint64(buf[:], h)
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
