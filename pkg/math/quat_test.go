package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
	if q.ToMat4() != Identity() {
		t.Error("Identity quaternion should produce identity matrix")
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := float32(math.Sqrt(float64(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)))
	if math.Abs(float64(length-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}

	if (Quat{}).Normalize() != QuatIdentity() {
		t.Error("Zero quaternion should normalize to identity")
	}
}

func TestQuatFromRotationRoundTrip(t *testing.T) {
	axes := []Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, Vec3{1, 1, 0}.Normalize()}
	angles := []float32{0.3, float32(math.Pi / 2), float32(math.Pi) - 0.01}

	for _, axis := range axes {
		for _, angle := range angles {
			q := QuatFromAxisAngle(axis, angle)
			m := q.ToMat4()
			r := [9]float32{
				m.At(0, 0), m.At(0, 1), m.At(0, 2),
				m.At(1, 0), m.At(1, 1), m.At(1, 2),
				m.At(2, 0), m.At(2, 1), m.At(2, 2),
			}
			got := QuatFromRotation(r)
			if d := abs(got.Dot(q)); abs(d-1) > 1e-4 {
				t.Errorf("axis %v angle %v: got %+v, want %+v", axis, angle, got, q)
			}
		}
	}
}
