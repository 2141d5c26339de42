package geodesy

import (
	"math"
	"testing"
)

func TestLongitudeValid(t *testing.T) {
	tests := []struct {
		in, want Longitude
	}{
		{0, 0},
		{180, 180},
		{-180, -180},
		{190, -170},
		{-190, 170},
		{370, 10},
		{540, 180},
		{725, 5},
	}

	for _, tt := range tests {
		if got := tt.in.Valid(); got != tt.want {
			t.Errorf("Longitude(%v).Valid() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLatitudeValid(t *testing.T) {
	tests := []struct {
		in, want Latitude
	}{
		{0, 0},
		{90, 90},
		{-90, -90},
		{91, -89},
		{-100, 80},
		{200, 20},
	}

	for _, tt := range tests {
		if got := tt.in.Valid(); got != tt.want {
			t.Errorf("Latitude(%v).Valid() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestComponentIdempotence(t *testing.T) {
	for _, v := range []float64{-721, -360, -181, -90.5, -1, 0, 1, 45, 179.9, 180, 181, 359, 1000} {
		lon := Longitude(v)
		if once, twice := lon.Valid(), lon.Valid().Valid(); once != twice {
			t.Errorf("Longitude(%v): Valid() = %v, Valid().Valid() = %v", v, once, twice)
		}
		if once, twice := lon.Valid().Positive(), lon.Valid().Positive().Positive(); once != twice {
			t.Errorf("Longitude(%v): Positive() not idempotent: %v vs %v", v, once, twice)
		}

		lat := Latitude(v)
		if once, twice := lat.Valid(), lat.Valid().Valid(); once != twice {
			t.Errorf("Latitude(%v): Valid() = %v, Valid().Valid() = %v", v, once, twice)
		}
	}
}

func TestLongitudePositive(t *testing.T) {
	tests := []struct {
		in, want Longitude
	}{
		{0, 0},
		{-1, 359},
		{-180, 180},
		{170, 170},
	}

	for _, tt := range tests {
		if got := tt.in.Positive(); got != tt.want {
			t.Errorf("Longitude(%v).Positive() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLinearComponentsUnchanged(t *testing.T) {
	if got := Altitude(-12000).Valid(); got != -12000 {
		t.Errorf("Altitude.Valid() = %v, want -12000", got)
	}
	if got := Meters(1e9).Valid(); got != 1e9 {
		t.Errorf("Meters.Valid() = %v, want 1e9", got)
	}
}

func TestUnitConversion(t *testing.T) {
	if got := Degrees(180).Radians(); float64(got) != math.Pi {
		t.Errorf("Degrees(180).Radians() = %v, want π", got)
	}
	if got := Degrees(90).Radians(); float64(got) != math.Pi/2 {
		t.Errorf("Degrees(90).Radians() = %v, want π/2", got)
	}
	if got := Radians(math.Pi).Degrees(); got != 180 {
		t.Errorf("Radians(π).Degrees() = %v, want 180", got)
	}
	if got := Latitude(45).Radians(); float64(got) != math.Pi/4 {
		t.Errorf("Latitude(45).Radians() = %v, want π/4", got)
	}
	if got := Radians(1).Angle().Radians(); got != 1 {
		t.Errorf("Radians(1).Angle() = %v, want 1", got)
	}
}

func TestUnitString(t *testing.T) {
	tests := []struct {
		unit   Unit
		name   string
		symbol string
	}{
		{UnitDegree, "degree", "°"},
		{UnitRadian, "radian", "rad"},
		{UnitMeter, "metre", "m"},
		{Unit(0), "unknown", ""},
	}

	for _, tt := range tests {
		if got := tt.unit.String(); got != tt.name {
			t.Errorf("Unit(%d).String() = %q, want %q", tt.unit, got, tt.name)
		}
		if got := tt.unit.Symbol(); got != tt.symbol {
			t.Errorf("Unit(%d).Symbol() = %q, want %q", tt.unit, got, tt.symbol)
		}
	}
}

func TestCRSDescriptors(t *testing.T) {
	tests := []struct {
		crs  *CRS
		id   CRSID
		dim  int
		got  *CRS
		kind CRSKind
	}{
		{Geographic2D, IDGeographic2D, 2, Coordinate2D{}.CRS(), KindGeographic2D},
		{Geographic3D, IDGeographic3D, 3, Coordinate3D{}.CRS(), KindGeographic3D},
		{Geocentric, IDGeocentric, 3, GeocentricCoordinate{}.CRS(), KindGeocentric},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			if tt.crs.ID != tt.id {
				t.Errorf("ID = %s, want %s", tt.crs.ID, tt.id)
			}
			if tt.crs.Dimension() != tt.dim {
				t.Errorf("Dimension() = %d, want %d", tt.crs.Dimension(), tt.dim)
			}
			if tt.got != tt.crs {
				t.Errorf("coordinate CRS() = %v, want %v", tt.got, tt.crs)
			}
			if tt.crs.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.crs.Kind, tt.kind)
			}
		})
	}
}

func TestEllipsoidParameters(t *testing.T) {
	if got := float64(WGS84.SemiMinorAxis()); math.Abs(got-6356752.314245) > 1e-6 {
		t.Errorf("WGS84.SemiMinorAxis() = %v, want 6356752.314245", got)
	}
	if got := WGS84.EccentricitySquared(); math.Abs(got-0.00669437999014) > 1e-14 {
		t.Errorf("WGS84.EccentricitySquared() = %v, want 0.00669437999014", got)
	}
	if got := WGS84.SecondEccentricitySquared(); math.Abs(got-0.00673949674228) > 1e-14 {
		t.Errorf("WGS84.SecondEccentricitySquared() = %v, want 0.00673949674228", got)
	}
	if got := WGS84.PrimeVerticalRadius(0); got != WGS84.SemiMajorAxis {
		t.Errorf("WGS84.PrimeVerticalRadius(0) = %v, want a", got)
	}
	if WGS84.EccentricitySquared() == GRS80.EccentricitySquared() {
		t.Errorf("WGS84 and GRS80 should differ in flattening")
	}
}
