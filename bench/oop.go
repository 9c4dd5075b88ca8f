package bench

import "io"

const (
	pointCount   = 500_000
	point3DCount = 500_000
	isaCount     = 200_000
)

// Metric is the dispatch interface shared by Point and Point3D. All
// DistanceSq calls in this category go through a Metric value so the
// override resolves dynamically.
type Metric interface {
	DistanceSq() int64
}

// Planar is the Point capability: anything usable where a 2D point is
// expected. Point3D satisfies it through its embedded Point.
type Planar interface {
	XY() (int64, int64)
}

// Point is the base variant.
type Point struct {
	X, Y int64
}

func (p *Point) DistanceSq() int64 {
	return p.X*p.X + p.Y*p.Y
}

func (p *Point) XY() (int64, int64) {
	return p.X, p.Y
}

// Point3D specializes Point with a third coordinate and overrides
// DistanceSq to include it.
type Point3D struct {
	Point
	Z int64
}

func (p *Point3D) DistanceSq() int64 {
	return p.X*p.X + p.Y*p.Y + p.Z*p.Z
}

// RunOOP exercises object construction, dynamic method dispatch through
// an overriding variant, and runtime capability checks.
func RunOOP(w io.Writer) error {
	if err := emit(w, "point sum", pointSum(pointCount)); err != nil {
		return err
	}

	if err := emit(w, "point3d sum", point3DSum(point3DCount)); err != nil {
		return err
	}

	return emit(w, "isa checks", isaChecks(isaCount))
}

func pointSum(n int) int64 {
	var sum int64

	for i := 0; i < n; i++ {
		var m Metric = &Point{X: int64(i % 100), Y: int64((i + 1) % 100)}
		sum += m.DistanceSq()
	}

	return sum
}

func point3DSum(n int) int64 {
	var sum int64

	for j := 0; j < n; j++ {
		var m Metric = &Point3D{
			Point: Point{X: int64(j % 100), Y: int64((j + 1) % 100)},
			Z:     int64((j + 2) % 100),
		}
		sum += m.DistanceSq()
	}

	return sum
}

// isaChecks constructs Point3D values and counts how many satisfy the
// Point capability. The assertion runs against the interface value, not
// the concrete type, so each iteration performs a real runtime check.
func isaChecks(n int) int {
	count := 0

	for k := 0; k < n; k++ {
		var m Metric = &Point3D{Point: Point{X: 1, Y: 2}, Z: 3}
		if _, ok := m.(Planar); ok {
			count++
		}
	}

	return count
}
