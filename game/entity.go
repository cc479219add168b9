package game

import (
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/vmath"
)

// Entity is a rectangular body whose size comes from its texture
// Paddles keep zero velocity and are moved directly by input, the ball integrates its velocity
type Entity struct {
	Texture  engine.Texture
	Position vmath.Vec2 // top-left corner
	Velocity vmath.Vec2 // added to Position once per tick
}

// NewEntity creates an entity at rest
func NewEntity(texture engine.Texture, position vmath.Vec2) Entity {
	return NewEntityWithVelocity(texture, position, vmath.Zero())
}

// NewEntityWithVelocity creates a moving entity
func NewEntityWithVelocity(texture engine.Texture, position, velocity vmath.Vec2) Entity {
	return Entity{
		Texture:  texture,
		Position: position,
		Velocity: velocity,
	}
}

func (e *Entity) Width() float64 {
	return float64(e.Texture.Width())
}

func (e *Entity) Height() float64 {
	return float64(e.Texture.Height())
}

// Bounds is recomputed on every call since position changes each tick
func (e *Entity) Bounds() vmath.Rect {
	return vmath.NewRect(e.Position.X, e.Position.Y, e.Width(), e.Height())
}

// Centre returns the centre of the entity's bounding box
func (e *Entity) Centre() vmath.Vec2 {
	return e.Bounds().Centre()
}
