package component

// Room marks an entity as an isolated simulation domain. One room owns
// exactly one physics space; rooms never share bodies or collide with
// each other. The room's rectangle is given by its Size component.
type Room struct{}

var RoomComponent = NewComponent[Room]()

// Size is a rectangular extent in world units. On a room it defines
// the boundary walls (0,0)-(Width,Height); on a terrain object it
// defines the static collision box.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

var SizeComponent = NewComponent[Size]()

// InRoom places an object inside a room. It is a weak back-reference
// (never ownership): the room entity decides which physics space backs
// the object. Every simulated object carries exactly one InRoom.
type InRoom struct {
	RoomEntity uint64 `yaml:"room_entity"` // ecs.Entity is uint64
}

var InRoomComponent = NewComponent[InRoom]()
