package component

// Force carries gameplay forces into the bridge. Continuous is re-applied
// by the bridge's per-room force generator every tick, so gameplay logic
// must re-set it each frame rather than accumulate. Impulse is folded
// straight into the body's velocity; the bridge does not clear it, so
// writers must zero it each frame to avoid re-application.
type Force struct {
	ContinuousX float64 `yaml:"continuous_x"`
	ContinuousY float64 `yaml:"continuous_y"`
	ImpulseX    float64 `yaml:"impulse_x"`
	ImpulseY    float64 `yaml:"impulse_y"`
}

var ForceComponent = NewComponent[Force]()
