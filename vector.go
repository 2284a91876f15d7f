package grove

import "math"

// Vector2D is a 2D vector used for positions, offsets, scales, and directions.
// The coordinate system has Y increasing downward.
type Vector2D struct {
	X, Y float64
}

// Named directions. Treat these as constants.
var (
	VectorUp    = Vector2D{0, -1}
	VectorDown  = Vector2D{0, 1}
	VectorLeft  = Vector2D{-1, 0}
	VectorRight = Vector2D{1, 0}
	VectorOne   = Vector2D{1, 1}
	VectorZero  = Vector2D{0, 0}
)

// Magnitude returns the length of v.
func (v Vector2D) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize scales v in place to unit length. The zero vector is left unchanged.
func (v *Vector2D) Normalize() {
	if v.X == 0 && v.Y == 0 {
		return
	}
	k := v.Magnitude()
	v.X /= k
	v.Y /= k
}

// Normalized returns a unit-length copy of v.
func (v Vector2D) Normalized() Vector2D {
	v.Normalize()
	return v
}

// Scale multiplies both components of v by factor in place.
func (v *Vector2D) Scale(factor float64) {
	v.X *= factor
	v.Y *= factor
}

// Scaled returns v multiplied by factor.
func (v Vector2D) Scaled(factor float64) Vector2D {
	return Vector2D{v.X * factor, v.Y * factor}
}

// Add returns v + o.
func (v Vector2D) Add(o Vector2D) Vector2D {
	return Vector2D{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2D) Sub(o Vector2D) Vector2D {
	return Vector2D{v.X - o.X, v.Y - o.Y}
}
