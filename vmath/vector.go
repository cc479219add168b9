package vmath

// Vec2 is a 2D float vector in world units (origin top-left, y down)
type Vec2 struct {
	X, Y float64
}

// Zero returns the zero vector
func Zero() Vec2 {
	return Vec2{}
}

// NewVec2 returns Vec2{x, y}
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// ReflectAxisY returns velocity reflected off a horizontal wall (top/bottom edge)
func (v Vec2) ReflectAxisY() Vec2 {
	return Vec2{X: v.X, Y: -v.Y}
}
