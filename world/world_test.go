package world

import (
	"testing"

	"github.com/lixenwraith/shapebox/shape"
	"github.com/lixenwraith/shapebox/vmath"
)

func newTestWorld() *World {
	return New(DefaultConfig())
}

func TestSpawnAssignsUniqueEntities(t *testing.T) {
	w := newTestWorld()
	e1 := w.Spawn(shape.Ball, vmath.V3FromFloat(0, 4, 14), vmath.FromFloat(0.7))
	e2 := w.Spawn(shape.Cube, vmath.V3FromFloat(1, 4, 14), vmath.FromFloat(0.7))

	if e1 == 0 || e2 == 0 {
		t.Errorf("Entity handles must be nonzero")
	}
	if e1 == e2 {
		t.Errorf("Expected unique handles, got %d twice", e1)
	}
	if w.Count() != 2 {
		t.Errorf("Expected 2 bodies, got %d", w.Count())
	}
}

func TestGravityPullsDown(t *testing.T) {
	w := newTestWorld()
	e := w.Spawn(shape.Ball, vmath.V3FromFloat(0, 4, 14), vmath.FromFloat(0.7))

	w.Step(vmath.FromFloat(0.1))

	pos, ok := w.Position(e)
	if !ok {
		t.Fatalf("Body vanished")
	}
	if vmath.ToFloat(pos.Y) >= 4.0 {
		t.Errorf("Expected fall below 4.0, got %v", vmath.ToFloat(pos.Y))
	}
}

func TestGroundContactBounces(t *testing.T) {
	w := newTestWorld()
	e := w.Spawn(shape.Ball, vmath.V3FromFloat(0, 4, 14), vmath.FromFloat(0.7))

	dt := vmath.FromFloat(1.0 / 30.0)
	clearance := 0.5
	for i := 0; i < 300; i++ {
		w.Step(dt)
		pos, _ := w.Position(e)
		if vmath.ToFloat(pos.Y) < clearance-0.01 {
			t.Fatalf("Step %d: body below ground clearance: %v", i, vmath.ToFloat(pos.Y))
		}
	}

	if w.DrainBounces() == 0 {
		t.Errorf("Expected at least one bounce over 10 seconds")
	}
}

func TestDespawnProducesNotification(t *testing.T) {
	w := newTestWorld()
	e := w.Spawn(shape.Cone, vmath.V3FromFloat(0, 4, 14), vmath.FromFloat(0.7))

	w.Despawn(e)

	if w.Count() != 0 {
		t.Errorf("Expected empty world, got %d bodies", w.Count())
	}
	removed := w.DrainRemoved()
	if len(removed) != 1 || removed[0] != e {
		t.Errorf("Expected removal notification for %d, got %v", e, removed)
	}
	// Drain empties the queue
	if len(w.DrainRemoved()) != 0 {
		t.Errorf("Expected drained queue")
	}
}

func TestDespawnUnknownIsNoOp(t *testing.T) {
	w := newTestWorld()
	w.Spawn(shape.Ball, vmath.V3FromFloat(0, 4, 14), vmath.FromFloat(0.7))

	w.Despawn(Entity(9999))

	if w.Count() != 1 {
		t.Errorf("Expected untouched world, got %d bodies", w.Count())
	}
	if len(w.DrainRemoved()) != 0 {
		t.Errorf("Expected no notification for unknown entity")
	}
}

func TestMovedNotifications(t *testing.T) {
	w := newTestWorld()
	e := w.Spawn(shape.Ball, vmath.V3FromFloat(0, 4, 14), vmath.FromFloat(0.7))

	w.Step(vmath.FromFloat(0.05))

	moved := w.DrainMoved()
	found := false
	for _, m := range moved {
		if m == e {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected transform notification for falling body")
	}
	if len(w.DrainMoved()) != 0 {
		t.Errorf("Expected drained moved queue")
	}
}

func TestTags(t *testing.T) {
	w := newTestWorld()
	e := w.Spawn(shape.Cube, vmath.V3FromFloat(0, 4, 14), vmath.FromFloat(0.7))

	tag := Tag{ID: 7, Name: "Cube 7", Kind: shape.Cube, CreatedAt: 1.25}
	w.SetTag(e, tag)

	got, ok := w.TagOf(e)
	if !ok || got != tag {
		t.Errorf("Expected tag %+v, got %+v ok=%v", tag, got, ok)
	}

	w.Despawn(e)
	if _, ok := w.TagOf(e); ok {
		t.Errorf("Expected tag removed with body")
	}

	// Tagging a dead entity is a no-op
	w.SetTag(e, tag)
	if _, ok := w.TagOf(e); ok {
		t.Errorf("Expected no tag on dead entity")
	}
}

func TestPairwiseCollisionSeparates(t *testing.T) {
	w := newTestWorld()
	// Two balls overlapping at rest height
	e1 := w.Spawn(shape.Ball, vmath.V3FromFloat(0, 2, 14), vmath.FromFloat(0.7))
	e2 := w.Spawn(shape.Ball, vmath.V3FromFloat(0.3, 2, 14), vmath.FromFloat(0.7))

	w.Step(vmath.FromFloat(1.0 / 30.0))

	p1, _ := w.Position(e1)
	p2, _ := w.Position(e2)
	dist := vmath.ToFloat(vmath.V3Mag(vmath.V3Sub(p2, p1)))
	if dist < 0.99 {
		t.Errorf("Expected separation to ~1.0 (sum of radii), got %v", dist)
	}
}

func TestElapsedAccumulates(t *testing.T) {
	w := newTestWorld()
	dt := vmath.FromFloat(0.5)
	w.Step(dt)
	w.Step(dt)
	if got := w.Elapsed(); got < 0.99 || got > 1.01 {
		t.Errorf("Expected elapsed ~1.0, got %v", got)
	}
}
