// Calculate some geometries, lengths, centroids and angles

package geom

import (
	"math"

	"github.com/andrew-torda/pdbmakepatch/pdb/cmmn"
	"gonum.org/v1/gonum/floats"
)

type Error string

func (e Error) Error() string { return string(e) }

// Dist2 gives the distance squared between two points.
func Dist2(x1, x2 cmmn.Xyz) float64 {
	dx, dy, dz := x1.X-x2.X, x1.Y-x2.Y, x1.Z-x2.Z
	return dx*dx + dy*dy + dz*dz
}

// Dist gives the distance between two points.
func Dist(x1, x2 cmmn.Xyz) float64 { return math.Sqrt(Dist2(x1, x2)) }

// Diff gets the difference of two vectors, pointing from start to end.
func Diff(start, end cmmn.Xyz) (diff cmmn.Xyz) {
	diff.X = end.X - start.X
	diff.Y = end.Y - start.Y
	diff.Z = end.Z - start.Z
	return diff
}

// Centroid sums the points and divides by divisor. Callers normally
// pass len(pts), but some want a fixed divisor whatever the number of
// points.
func Centroid(pts []cmmn.Xyz, divisor float64) (cen cmmn.Xyz) {
	for _, p := range pts {
		cen.X += p.X
		cen.Y += p.Y
		cen.Z += p.Z
	}
	cen.X /= divisor
	cen.Y /= divisor
	cen.Z /= divisor
	return cen
}

// CosAngle returns the cosine of the angle between two vectors.
// If either has zero length, the result is NaN and every comparison
// with it is false.
func CosAngle(u, v cmmn.Xyz) float64 {
	us, vs := u.Slice(), v.Slice()
	return floats.Dot(us, vs) / (floats.Norm(us, 2) * floats.Norm(vs, 2))
}

// VecAngle gives the angle in radians between two vectors.
func VecAngle(u, v cmmn.Xyz) (float64, error) {
	cosalpha := CosAngle(u, v)
	if cosalpha > 1 && cosalpha < 1.01 { // numerical noise
		return 0.0, nil
	}
	if cosalpha < -1 && cosalpha > -1.01 {
		return math.Pi, nil
	}
	if math.IsNaN(cosalpha) || cosalpha < -1 || cosalpha > 1 {
		return math.NaN(), Error("Broken angle")
	}
	return math.Acos(cosalpha), nil
}
