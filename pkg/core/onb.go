package core

import "math"

// ONB is an orthonormal basis with W aligned to a chosen direction
type ONB struct {
	U, V, W Vec3
}

// NewONB builds a basis whose W axis is the normalized direction w
func NewONB(w Vec3) ONB {
	unitW := w.Normalize()

	// Pick a helper axis that is not parallel to w
	var a Vec3
	if math.Abs(unitW.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	} else {
		a = NewVec3(1, 0, 0)
	}

	v := unitW.Cross(a).Normalize()
	u := unitW.Cross(v)

	return ONB{U: u, V: v, W: unitW}
}

// Local transforms local coordinates (a.X along U, a.Y along V, a.Z along W) to world space
func (o ONB) Local(a Vec3) Vec3 {
	return o.U.Multiply(a.X).Add(o.V.Multiply(a.Y)).Add(o.W.Multiply(a.Z))
}
