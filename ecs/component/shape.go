package component

// ShapeClass selects the collision geometry and density of a dynamic body.
type ShapeClass string

const (
	// ShapeBall is the primary round body (the player ball). Heavy.
	ShapeBall ShapeClass = "ball"
	// ShapeLink is a hook-chain link. Light, so the chain doesn't drag
	// the ball down.
	ShapeLink ShapeClass = "link"
	// ShapeBox is a generic rectangular body.
	ShapeBox ShapeClass = "box"
)

// Shape describes a dynamic object's collision geometry. Radius is used
// by ball and link shapes; Width/Height by boxes.
type Shape struct {
	Class  ShapeClass `yaml:"class"`
	Radius float64    `yaml:"radius"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
}

var ShapeComponent = NewComponent[Shape]()
