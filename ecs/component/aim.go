package component

// Aim holds aiming intent and the bridge's resolved result. TowardX/Y is
// authored by input; AtEntity and AtPointX/Y are derived by the raycast
// resolver every tick and cleared when nothing is hit or the direction
// is zero.
type Aim struct {
	Aiming  bool
	TowardX float64
	TowardY float64

	AtEntity uint64 // ecs.Entity is uint64; 0 = no target
	AtPointX float64
	AtPointY float64
}

var AimComponent = NewComponent[Aim]()
