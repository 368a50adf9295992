package scene

import (
	"path/filepath"
	"testing"

	"github.com/milk9111/hookshift/ecs"
	"github.com/milk9111/hookshift/ecs/component"
)

const testScene = `
rooms:
  - name: main
    size: {width: 320, height: 180}
    terrain:
      - position: {x: 20, y: 150}
        size: {width: 120, height: 8}
    objects:
      - name: player
        shape: {class: ball, radius: 6}
        position: {x: 60, y: 100}
        player: true
        shifter: true
      - name: crate
        shape: {class: box, width: 12, height: 12}
        position: {x: 100, y: 60}
        velocity: {x: 5, y: 0}
  - name: annex
    size: {width: 160, height: 180}
`

func TestParseAndApply(t *testing.T) {
	sc, err := Parse([]byte(testScene))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(sc.Rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(sc.Rooms))
	}

	w := ecs.NewWorld()
	if err := sc.Apply(w); err != nil {
		t.Fatalf("apply: %v", err)
	}

	rooms := 0
	ecs.ForEach(w, component.RoomComponent.Kind(), func(ecs.Entity, *component.Room) { rooms++ })
	if rooms != 2 {
		t.Fatalf("expected 2 room entities, got %d", rooms)
	}

	player, ok := ecs.First(w, component.PlayerControllerComponent.Kind())
	if !ok {
		t.Fatal("expected a player entity")
	}
	for _, check := range []struct {
		name string
		has  bool
	}{
		{"force", ecs.Has(w, player, component.ForceComponent.Kind())},
		{"collision_set", ecs.Has(w, player, component.CollisionSetComponent.Kind())},
		{"aim", ecs.Has(w, player, component.AimComponent.Kind())},
		{"shifter", ecs.Has(w, player, component.ShifterComponent.Kind())},
		{"in_room", ecs.Has(w, player, component.InRoomComponent.Kind())},
	} {
		if !check.has {
			t.Fatalf("player is missing the %s component", check.name)
		}
	}

	crate := findShapeClass(w, component.ShapeBox)
	if !crate.Valid() {
		t.Fatal("expected the crate entity")
	}
	vel, _ := ecs.Get(w, crate, component.VelocityComponent.Kind())
	if vel.X != 5 {
		t.Fatalf("crate velocity lost in apply, got %f", vel.X)
	}
}

func findShapeClass(w *ecs.World, class component.ShapeClass) ecs.Entity {
	var found ecs.Entity
	ecs.ForEach(w, component.ShapeComponent.Kind(), func(e ecs.Entity, s *component.Shape) {
		if s.Class == class {
			found = e
		}
	})
	return found
}

func TestCaptureRoundTrip(t *testing.T) {
	sc, err := Parse([]byte(testScene))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	w := ecs.NewWorld()
	if err := sc.Apply(w); err != nil {
		t.Fatalf("apply: %v", err)
	}

	captured := Capture(w)
	if len(captured.Rooms) != 2 {
		t.Fatalf("expected 2 captured rooms, got %d", len(captured.Rooms))
	}

	var main RoomSpec
	for _, r := range captured.Rooms {
		if len(r.Objects) > 0 {
			main = r
		}
	}
	if len(main.Objects) != 2 {
		t.Fatalf("expected 2 captured objects, got %d", len(main.Objects))
	}
	if len(main.Terrain) != 1 {
		t.Fatalf("expected 1 captured terrain piece, got %d", len(main.Terrain))
	}

	players := 0
	for _, obj := range main.Objects {
		if obj.Player {
			players++
			if !obj.Shifter {
				t.Fatal("captured player lost its shifter flag")
			}
		}
	}
	if players != 1 {
		t.Fatalf("expected 1 captured player, got %d", players)
	}

	// A captured scene applies cleanly into a fresh world.
	w2 := ecs.NewWorld()
	if err := captured.Apply(w2); err != nil {
		t.Fatalf("re-apply: %v", err)
	}
	if _, ok := ecs.First(w2, component.PlayerControllerComponent.Kind()); !ok {
		t.Fatal("re-applied scene lost the player")
	}
}

func TestCaptureExcludesChainLinks(t *testing.T) {
	w := ecs.NewWorld()
	room := ecs.CreateEntity(w)
	if err := ecs.Add(w, room, component.RoomComponent.Kind(), &component.Room{}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, room, component.SizeComponent.Kind(), &component.Size{Width: 100, Height: 100}); err != nil {
		t.Fatal(err)
	}

	link := ecs.CreateEntity(w)
	if err := ecs.Add(w, link, component.InRoomComponent.Kind(), &component.InRoom{RoomEntity: room.Ref()}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, link, component.PositionComponent.Kind(), &component.Position{X: 10, Y: 10}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, link, component.ShapeComponent.Kind(), &component.Shape{Class: component.ShapeLink, Radius: 3}); err != nil {
		t.Fatal(err)
	}

	captured := Capture(w)
	if len(captured.Rooms) != 1 {
		t.Fatalf("expected 1 room, got %d", len(captured.Rooms))
	}
	if len(captured.Rooms[0].Objects) != 0 {
		t.Fatalf("chain links must not be captured, got %d objects", len(captured.Rooms[0].Objects))
	}
}

func TestSaveLoad(t *testing.T) {
	sc, err := Parse([]byte(testScene))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := sc.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded.Rooms) != len(sc.Rooms) {
		t.Fatalf("room count changed through save/load: %d vs %d", len(loaded.Rooms), len(sc.Rooms))
	}
	if loaded.Rooms[0].Size.Width != 320 {
		t.Fatalf("room size lost: %f", loaded.Rooms[0].Size.Width)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestParseBadYAML(t *testing.T) {
	if _, err := Parse([]byte("rooms: [nope")); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestDefaultSceneParses(t *testing.T) {
	sc, err := Default()
	if err != nil {
		t.Fatalf("default scene: %v", err)
	}
	if len(sc.Rooms) == 0 {
		t.Fatal("default scene has no rooms")
	}

	w := ecs.NewWorld()
	if err := sc.Apply(w); err != nil {
		t.Fatalf("default scene apply: %v", err)
	}
	if _, ok := ecs.First(w, component.PlayerControllerComponent.Kind()); !ok {
		t.Fatal("default scene has no player")
	}
}

func TestClear(t *testing.T) {
	sc, err := Parse([]byte(testScene))
	if err != nil {
		t.Fatal(err)
	}
	w := ecs.NewWorld()
	if err := sc.Apply(w); err != nil {
		t.Fatal(err)
	}
	if len(ecs.Entities(w)) == 0 {
		t.Fatal("apply created nothing")
	}

	Clear(w)
	if got := len(ecs.Entities(w)); got != 0 {
		t.Fatalf("expected empty world after clear, got %d entities", got)
	}
}
