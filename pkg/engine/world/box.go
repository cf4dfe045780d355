package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Box is an axis-aligned bounding box
type Box struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Contains returns true if p lies inside or on the box
func (b Box) Contains(p mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// ClosestPoint returns the point of the box nearest to p
func (b Box) ClosestPoint(p mgl32.Vec3) mgl32.Vec3 {
	var c mgl32.Vec3
	for i := 0; i < 3; i++ {
		c[i] = mgl32.Clamp(p[i], b.Min[i], b.Max[i])
	}
	return c
}

// IntersectsSphere returns true if the sphere touches the box
func (b Box) IntersectsSphere(center mgl32.Vec3, radius float32) bool {
	d := b.ClosestPoint(center).Sub(center)
	return d.Dot(d) <= radius*radius
}

// IntersectRay returns the distance along dir at which the ray enters the box.
// dir must be normalised. A ray starting inside the box does not hit it.
func (b Box) IntersectRay(origin, dir mgl32.Vec3) (float32, bool) {
	tMin := float32(math.Inf(-1))
	tMax := float32(math.Inf(1))

	for i := 0; i < 3; i++ {
		if mgl32.Abs(dir[i]) < 1e-8 {
			// Parallel to this slab: must already be within it
			if origin[i] < b.Min[i] || origin[i] > b.Max[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / dir[i]
		t1 := (b.Min[i] - origin[i]) * inv
		t2 := (b.Max[i] - origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, false
		}
	}

	if tMin < 0 {
		return 0, false
	}
	return tMin, true
}
