package vgcore

import "math"

// Transform is a 2D affine transformation in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// giving x' = A*x + B*y + C, y' = D*x + E*y + F. Only 2D affine transforms
// are supported; perspective/3D transforms are out of scope for this
// library (consumers needing 3D placement compose it themselves before
// handing flattened 2D coordinates to Canvas).
type Transform struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{A: 1, B: 0, C: 0, D: 0, E: 1, F: 0}
}

// TranslateTransform returns a translation by (x, y).
func TranslateTransform(x, y float64) Transform {
	return Transform{A: 1, B: 0, C: x, D: 0, E: 1, F: y}
}

// ScaleTransform returns a scale by (x, y).
func ScaleTransform(x, y float64) Transform {
	return Transform{A: x, B: 0, C: 0, D: 0, E: y, F: 0}
}

// RotateTransform returns a rotation by angle radians about the origin.
func RotateTransform(angle float64) Transform {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Transform{A: cos, B: -sin, C: 0, D: sin, E: cos, F: 0}
}

// SkewTransform returns a shear transform.
func SkewTransform(x, y float64) Transform {
	return Transform{A: 1, B: x, C: 0, D: y, E: 1, F: 0}
}

// Translate returns m with an additional translation applied after m.
func (m Transform) Translate(x, y float64) Transform {
	return m.Multiply(TranslateTransform(x, y))
}

// Scale returns m with an additional scale applied after m.
func (m Transform) Scale(x, y float64) Transform {
	return m.Multiply(ScaleTransform(x, y))
}

// Rotate returns m with an additional rotation applied after m.
func (m Transform) Rotate(angle float64) Transform {
	return m.Multiply(RotateTransform(angle))
}

// Multiply composes m * other, so that applying the result to a point is
// equivalent to first applying other, then m.
func (m Transform) Multiply(other Transform) Transform {
	return Transform{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transform to a position, including translation.
func (m Transform) TransformPoint(p Point) Point {
	return Point{X: m.A*p.X + m.B*p.Y + m.C, Y: m.D*p.X + m.E*p.Y + m.F}
}

// TransformVector applies the transform to a direction, ignoring translation.
func (m Transform) TransformVector(v Vec2) Vec2 {
	return Vec2{X: m.A*v.X + m.B*v.Y, Y: m.D*v.X + m.E*v.Y}
}

// Invert returns the inverse transform, or the identity if m is singular
// (determinant below 1e-10 in magnitude).
func (m Transform) Invert() Transform {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-10 {
		return Identity()
	}
	invDet := 1.0 / det
	return Transform{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}
}

// IsIdentity reports whether m is exactly the identity transform.
func (m Transform) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 && m.D == 0 && m.E == 1 && m.F == 0
}

// IsTranslation reports whether m performs translation only.
func (m Transform) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}

// ScaleFactor estimates the average scale m applies to lengths, used to
// size the antialiasing fringe width and the flattening tolerance in
// device space: both are specified in local units but a 1px fringe must
// stay ~1 device pixel wide regardless of the current transform.
// Matches the teacher's Context.matrix.ScaleFactor() derivation: the
// geometric mean of the transformed basis vectors' lengths.
func (m Transform) ScaleFactor() float64 {
	sx := math.Hypot(m.A, m.D)
	sy := math.Hypot(m.B, m.E)
	return math.Sqrt(sx * sy)
}
