package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/hookshift/ecs"
	"github.com/milk9111/hookshift/ecs/component"
)

// Scene is the serialized form of a gameplay world: rooms with their
// terrain and objects. The physics bridge holds no persisted state of
// its own; after Apply, all simulation handles are rebuilt lazily from
// these components on the next tick.
type Scene struct {
	Rooms []RoomSpec `yaml:"rooms"`
}

type RoomSpec struct {
	Name    string        `yaml:"name"`
	Size    SizeSpec      `yaml:"size"`
	Terrain []TerrainSpec `yaml:"terrain,omitempty"`
	Objects []ObjectSpec  `yaml:"objects,omitempty"`
}

type SizeSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type TerrainSpec struct {
	Position Vec      `yaml:"position"`
	Size     SizeSpec `yaml:"size"`
}

type ObjectSpec struct {
	Name     string        `yaml:"name,omitempty"`
	Shape    ShapeSpec     `yaml:"shape"`
	Position Vec           `yaml:"position"`
	Velocity Vec           `yaml:"velocity,omitempty"`
	Player   bool          `yaml:"player,omitempty"`
	Shifter  bool          `yaml:"shifter,omitempty"`
	Behavior *BehaviorSpec `yaml:"behavior,omitempty"`
}

type ShapeSpec struct {
	Class  string  `yaml:"class"`
	Radius float64 `yaml:"radius,omitempty"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

type BehaviorSpec struct {
	Name   string `yaml:"name,omitempty"`
	Source string `yaml:"source"`
}

// Load reads a scene from a YAML file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: load %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes scene YAML.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scene: unmarshal: %w", err)
	}
	return &s, nil
}

// Save writes the scene as YAML.
func (s *Scene) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("scene: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("scene: save %s: %w", path, err)
	}
	return nil
}

// Apply builds entities for every room, terrain piece, and object.
func (s *Scene) Apply(w *ecs.World) error {
	if s == nil || w == nil {
		return fmt.Errorf("scene: apply: nil scene or world")
	}
	for _, room := range s.Rooms {
		roomEnt := ecs.CreateEntity(w)
		if err := ecs.Add(w, roomEnt, component.RoomComponent.Kind(), &component.Room{}); err != nil {
			return fmt.Errorf("scene: room %s: %w", room.Name, err)
		}
		if err := ecs.Add(w, roomEnt, component.SizeComponent.Kind(), &component.Size{Width: room.Size.Width, Height: room.Size.Height}); err != nil {
			return fmt.Errorf("scene: room %s size: %w", room.Name, err)
		}

		for i, t := range room.Terrain {
			e := ecs.CreateEntity(w)
			if err := applyTerrain(w, e, roomEnt, t); err != nil {
				return fmt.Errorf("scene: room %s terrain %d: %w", room.Name, i, err)
			}
		}
		for _, obj := range room.Objects {
			e := ecs.CreateEntity(w)
			if err := applyObject(w, e, roomEnt, obj); err != nil {
				return fmt.Errorf("scene: room %s object %s: %w", room.Name, obj.Name, err)
			}
		}
	}
	return nil
}

func applyTerrain(w *ecs.World, e, roomEnt ecs.Entity, t TerrainSpec) error {
	if err := ecs.Add(w, e, component.InRoomComponent.Kind(), &component.InRoom{RoomEntity: roomEnt.Ref()}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.PositionComponent.Kind(), &component.Position{X: t.Position.X, Y: t.Position.Y}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.SizeComponent.Kind(), &component.Size{Width: t.Size.Width, Height: t.Size.Height})
}

func applyObject(w *ecs.World, e, roomEnt ecs.Entity, obj ObjectSpec) error {
	if err := ecs.Add(w, e, component.InRoomComponent.Kind(), &component.InRoom{RoomEntity: roomEnt.Ref()}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.PositionComponent.Kind(), &component.Position{X: obj.Position.X, Y: obj.Position.Y}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{X: obj.Velocity.X, Y: obj.Velocity.Y}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.ShapeComponent.Kind(), &component.Shape{
		Class:  component.ShapeClass(obj.Shape.Class),
		Radius: obj.Shape.Radius,
		Width:  obj.Shape.Width,
		Height: obj.Shape.Height,
	}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.ForceComponent.Kind(), &component.Force{}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.CollisionSetComponent.Kind(), &component.CollisionSet{}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.AimComponent.Kind(), &component.Aim{}); err != nil {
		return err
	}
	if obj.Player {
		if err := ecs.Add(w, e, component.PlayerControllerComponent.Kind(), &component.PlayerController{}); err != nil {
			return err
		}
	}
	if obj.Shifter {
		if err := ecs.Add(w, e, component.ShifterComponent.Kind(), &component.Shifter{}); err != nil {
			return err
		}
	}
	if obj.Behavior != nil {
		if err := ecs.Add(w, e, component.BehaviorComponent.Kind(), &component.Behavior{Name: obj.Behavior.Name, Source: obj.Behavior.Source}); err != nil {
			return err
		}
	}
	return nil
}

// Capture snapshots the gameplay-visible component state back into a
// scene. Hook-chain links are transient and excluded.
func Capture(w *ecs.World) *Scene {
	s := &Scene{}
	if w == nil {
		return s
	}

	ecs.ForEach2(w, component.RoomComponent.Kind(), component.SizeComponent.Kind(), func(roomEnt ecs.Entity, _ *component.Room, size *component.Size) {
		room := RoomSpec{
			Name: "room_" + roomEnt.String(),
			Size: SizeSpec{Width: size.Width, Height: size.Height},
		}

		ecs.ForEach2(w, component.InRoomComponent.Kind(), component.PositionComponent.Kind(), func(e ecs.Entity, inRoom *component.InRoom, pos *component.Position) {
			if ecs.FromRef(inRoom.RoomEntity) != roomEnt {
				return
			}
			if shape, ok := ecs.Get(w, e, component.ShapeComponent.Kind()); ok {
				if shape.Class == component.ShapeLink {
					return
				}
				obj := ObjectSpec{
					Position: Vec{X: pos.X, Y: pos.Y},
					Shape:    ShapeSpec{Class: string(shape.Class), Radius: shape.Radius, Width: shape.Width, Height: shape.Height},
					Player:   ecs.Has(w, e, component.PlayerControllerComponent.Kind()),
					Shifter:  ecs.Has(w, e, component.ShifterComponent.Kind()),
				}
				if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
					obj.Velocity = Vec{X: vel.X, Y: vel.Y}
				}
				if behavior, ok := ecs.Get(w, e, component.BehaviorComponent.Kind()); ok {
					obj.Behavior = &BehaviorSpec{Name: behavior.Name, Source: behavior.Source}
				}
				room.Objects = append(room.Objects, obj)
				return
			}
			if size, ok := ecs.Get(w, e, component.SizeComponent.Kind()); ok {
				room.Terrain = append(room.Terrain, TerrainSpec{
					Position: Vec{X: pos.X, Y: pos.Y},
					Size:     SizeSpec{Width: size.Width, Height: size.Height},
				})
			}
		})

		s.Rooms = append(s.Rooms, room)
	})

	return s
}

// Clear destroys every entity. Callers owning simulation state (the
// physics system) must reset alongside.
func Clear(w *ecs.World) {
	for _, e := range ecs.Entities(w) {
		ecs.DestroyEntity(w, e)
	}
}
