package component

// Shifter lets an entity phase between interconnected rooms at the same
// position. The shift systems fill TargetRoom each tick and flip
// Shifting when the controller commits; the bridge then reaps the body
// in the old room and lazily recreates it in the new one.
type Shifter struct {
	TargetRoom uint64 // ecs.Entity is uint64; 0 = no target
	Shifting   bool
	Sensing    bool
}

var ShifterComponent = NewComponent[Shifter]()
