package component

// MoveDirection is horizontal movement intent.
type MoveDirection int

const (
	MoveNone MoveDirection = iota
	MoveLeft
	MoveRight
)

// PlayerController is decoded input for one controllable entity.
// Input decoding itself lives in the game shell; systems only read this.
type PlayerController struct {
	Moving   MoveDirection
	Jump     bool
	Shifting bool

	Hooking bool
	HookX   float64
	HookY   float64
}

var PlayerControllerComponent = NewComponent[PlayerController]()
