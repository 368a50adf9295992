package component

// CollisionSet aggregates contact information for one entity per tick.
// NormalX/NormalY accumulate the normals of every contact touching the
// entity this tick; Colliding is the per-tick flag. LastNormalX/Y and
// TimeSinceCollision persist the most recent contact so gameplay can
// implement grace-period mechanics (jump buffering) without re-querying
// the engine.
type CollisionSet struct {
	Colliding bool
	NormalX   float64
	NormalY   float64

	LastNormalX        float64
	LastNormalY        float64
	TimeSinceCollision float64
}

var CollisionSetComponent = NewComponent[CollisionSet]()
