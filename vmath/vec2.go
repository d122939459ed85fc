package vmath

import "math"

// Vec2 is a float64 2D vector used for all playfield positions and velocities
// Value type: every method except the *Assign variants returns a new vector
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{x, y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// --- Component-wise ---

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// Div divides component-wise; a zero component yields ±Inf or NaN per IEEE-754
func (v Vec2) Div(o Vec2) Vec2 { return Vec2{v.X / o.X, v.Y / o.Y} }

// --- Vector-left scalar forms ---

func (v Vec2) AddScalar(s float64) Vec2 { return Vec2{v.X + s, v.Y + s} }
func (v Vec2) SubScalar(s float64) Vec2 { return Vec2{v.X - s, v.Y - s} }
func (v Vec2) Scale(s float64) Vec2     { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) DivScalar(s float64) Vec2 { return Vec2{v.X / s, v.Y / s} }

// --- Scalar-left forms ---

// ScalarAdd returns s + v, identical to v.AddScalar(s)
func ScalarAdd(s float64, v Vec2) Vec2 { return v.AddScalar(s) }

// ScalarMul returns s * v, identical to v.Scale(s)
func ScalarMul(s float64, v Vec2) Vec2 { return v.Scale(s) }

// ScalarSub returns (s - v.X, s - v.Y)
func ScalarSub(s float64, v Vec2) Vec2 { return Vec2{s - v.X, s - v.Y} }

// ScalarDiv returns (s / v.X, s / v.Y)
func ScalarDiv(s float64, v Vec2) Vec2 { return Vec2{s / v.X, s / v.Y} }

// --- In-place variants, mutate only the receiver ---

func (v *Vec2) AddAssign(o Vec2) { v.X += o.X; v.Y += o.Y }
func (v *Vec2) SubAssign(o Vec2) { v.X -= o.X; v.Y -= o.Y }
func (v *Vec2) MulAssign(o Vec2) { v.X *= o.X; v.Y *= o.Y }
func (v *Vec2) DivAssign(o Vec2) { v.X /= o.X; v.Y /= o.Y }

func (v *Vec2) ScaleAssign(s float64)     { v.X *= s; v.Y *= s }
func (v *Vec2) DivScalarAssign(s float64) { v.X /= s; v.Y /= s }

// --- Products and magnitude ---

// Dot returns v.X*o.X + v.Y*o.Y
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the 3D cross product
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// LengthSq returns squared magnitude without sqrt
func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Length() float64 {
	return math.Sqrt(v.LengthSq())
}

// Normalized returns the unit vector, zero-safe: a zero vector is returned unchanged
func (v Vec2) Normalized() Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vec2{v.X / l, v.Y / l}
}

func (v Vec2) Neg() Vec2 { return Vec2{-v.X, -v.Y} }

// Lerp returns v + (o - v) * t
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// --- Comparison ---

// Equal is exact float comparison, NaN never equals itself
func (v Vec2) Equal(o Vec2) bool {
	return v.X == o.X && v.Y == o.Y
}

// Less orders vectors by squared length
func (v Vec2) Less(o Vec2) bool {
	return v.LengthSq() < o.LengthSq()
}

// Compare orders by squared length, returning -1, 0 or +1
// Usable with slices.SortFunc
func Compare(a, b Vec2) int {
	la, lb := a.LengthSq(), b.LengthSq()
	switch {
	case la < lb:
		return -1
	case la > lb:
		return 1
	}
	return 0
}
