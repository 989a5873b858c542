// Package world simulates the hosting engine: it owns rigid bodies,
// integrates motion, and reports destruction and transform changes
// through drain-style notification queues. The object registry never
// touches bodies directly; it correlates through Entity handles.
package world

import (
	"github.com/lixenwraith/shapebox/constants"
	"github.com/lixenwraith/shapebox/physics"
	"github.com/lixenwraith/shapebox/shape"
	"github.com/lixenwraith/shapebox/vmath"
)

// Entity is an opaque handle into the world. Zero is never assigned
type Entity uint64

// Body is one simulated rigid body. All values Q32.32
type Body struct {
	Pos, Vel    vmath.Vec3
	Mass        int64
	Restitution int64
	Kind        shape.Kind
	boundRadius int64
	clearance   int64
}

// Tag is the identity component attached back onto a spawned entity by
// the lifecycle glue, for later correlation
type Tag struct {
	ID        uint32
	Name      string
	Kind      shape.Kind
	CreatedAt float64
}

// Config holds world tuning in plain float64; converted once at New
type Config struct {
	Gravity     float64
	GroundY     float64
	BoundsX     float64
	BoundsZ     float64
	CameraZ     float64
	RestCutoff  float64
	DefaultMass float64
}

// DefaultConfig mirrors the constants package tuning
func DefaultConfig() Config {
	return Config{
		Gravity:     constants.Gravity,
		GroundY:     constants.GroundY,
		BoundsX:     constants.BoundsX,
		BoundsZ:     constants.BoundsZ,
		CameraZ:     constants.CameraZ,
		RestCutoff:  constants.RestVelocityCutoff,
		DefaultMass: 1.0,
	}
}

// World is single-writer: only the game loop mutates it, per tick.
// No internal locking
type World struct {
	nextEntity Entity
	order      []Entity // insertion order, drives deterministic stepping
	bodies     map[Entity]*Body
	tags       map[Entity]Tag

	gravity     int64
	groundY     int64
	boundsX     int64
	boundsZMin  int64
	boundsZMax  int64
	restCutoff  int64
	defaultMass int64

	elapsed int64 // Q32.32 sim seconds

	removed []Entity
	moved   []Entity
	bounces int
}

func New(cfg Config) *World {
	return &World{
		nextEntity:  1,
		bodies:      make(map[Entity]*Body),
		tags:        make(map[Entity]Tag),
		gravity:     vmath.FromFloat(cfg.Gravity),
		groundY:     vmath.FromFloat(cfg.GroundY),
		boundsX:     vmath.FromFloat(cfg.BoundsX),
		boundsZMin:  vmath.FromFloat(cfg.CameraZ - cfg.BoundsZ),
		boundsZMax:  vmath.FromFloat(cfg.CameraZ + cfg.BoundsZ),
		restCutoff:  vmath.FromFloat(cfg.RestCutoff),
		defaultMass: vmath.FromFloat(cfg.DefaultMass),
	}
}

// Spawn instantiates a dynamic body of the given kind. Never fails;
// geometry comes from the shape catalog
func (w *World) Spawn(kind shape.Kind, pos vmath.Vec3, restitution int64) Entity {
	e := w.nextEntity
	w.nextEntity++

	w.bodies[e] = &Body{
		Pos:         pos,
		Mass:        w.defaultMass,
		Restitution: restitution,
		Kind:        kind,
		boundRadius: kind.BoundingRadius(),
		clearance:   kind.GroundClearance(),
	}
	w.order = append(w.order, e)
	return e
}

// Despawn destroys a body and queues a removal notification.
// Unknown entities are a no-op (notifications may race with state)
func (w *World) Despawn(e Entity) {
	if _, ok := w.bodies[e]; !ok {
		return
	}
	delete(w.bodies, e)
	delete(w.tags, e)
	for i, o := range w.order {
		if o == e {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	w.removed = append(w.removed, e)
}

// SetTag attaches the identity tag to a live entity
func (w *World) SetTag(e Entity, t Tag) {
	if _, ok := w.bodies[e]; ok {
		w.tags[e] = t
	}
}

// TagOf returns the identity tag, if the entity is live and tagged
func (w *World) TagOf(e Entity) (Tag, bool) {
	t, ok := w.tags[e]
	return t, ok
}

// BodyOf returns a copy of the body state
func (w *World) BodyOf(e Entity) (Body, bool) {
	b, ok := w.bodies[e]
	if !ok {
		return Body{}, false
	}
	return *b, true
}

// Position returns the current body position
func (w *World) Position(e Entity) (vmath.Vec3, bool) {
	b, ok := w.bodies[e]
	if !ok {
		return vmath.Vec3{}, false
	}
	return b.Pos, true
}

// SetVelocity overrides a body velocity (initial scene, tests)
func (w *World) SetVelocity(e Entity, vel vmath.Vec3) {
	if b, ok := w.bodies[e]; ok {
		b.Vel = vel
	}
}

// Entities returns live entities in spawn order
func (w *World) Entities() []Entity {
	out := make([]Entity, len(w.order))
	copy(out, w.order)
	return out
}

func (w *World) Count() int { return len(w.order) }

// Elapsed returns simulation time in seconds
func (w *World) Elapsed() float64 { return vmath.ToFloat(w.elapsed) }

// GroundY returns the ground plane height in world units
func (w *World) GroundY() float64 { return vmath.ToFloat(w.groundY) }

// Step advances the simulation by dt (Q32.32 seconds): integrate
// gravity, resolve ground and boundary contacts, then pairwise
// bounding-sphere collisions. Bodies that moved are queued as
// transform-change notifications
func (w *World) Step(dt int64) {
	w.elapsed += dt

	for _, e := range w.order {
		b := w.bodies[e]
		before := b.Pos

		b.Vel.Y += vmath.Mul(w.gravity, dt)
		b.Pos = vmath.V3Add(b.Pos, vmath.V3Scale(b.Vel, dt))

		floor := w.groundY + b.clearance
		if physics.ReflectFloor(&b.Pos.Y, &b.Vel.Y, floor, b.Restitution, w.restCutoff) {
			if vmath.Abs(b.Vel.Y) > w.restCutoff {
				w.bounces++
			}
		}
		physics.ReflectAxis3D(&b.Pos.X, &b.Vel.X, -w.boundsX, w.boundsX, b.Restitution)
		physics.ReflectAxis3D(&b.Pos.Z, &b.Vel.Z, w.boundsZMin, w.boundsZMax, b.Restitution)

		if b.Pos != before {
			w.moved = append(w.moved, e)
		}
	}

	// Pairwise collisions in spawn order
	for i := 0; i < len(w.order); i++ {
		for j := i + 1; j < len(w.order); j++ {
			a := w.bodies[w.order[i]]
			b := w.bodies[w.order[j]]

			delta := vmath.V3Sub(b.Pos, a.Pos)
			minDist := a.boundRadius + b.boundRadius
			if vmath.V3MagSq(delta) >= vmath.Mul(minDist, minDist) {
				continue
			}

			moved := physics.SeparateOverlap3D(&a.Pos, &b.Pos, a.boundRadius, b.boundRadius, a.Mass, b.Mass)
			// Pair restitution: the softer body dominates
			e := a.Restitution
			if b.Restitution < e {
				e = b.Restitution
			}
			if physics.ElasticCollision3D(&a.Pos, &b.Pos, &a.Vel, &b.Vel, a.Mass, b.Mass, e) {
				w.bounces++
				moved = true
			}
			if moved {
				w.moved = append(w.moved, w.order[i], w.order[j])
			}
		}
	}
}

// DrainRemoved returns entities destroyed since the last drain
func (w *World) DrainRemoved() []Entity {
	out := w.removed
	w.removed = nil
	return out
}

// DrainMoved returns entities whose transform changed since the last
// drain, deduplicated, in first-movement order
func (w *World) DrainMoved() []Entity {
	if len(w.moved) == 0 {
		return nil
	}
	seen := make(map[Entity]struct{}, len(w.moved))
	out := make([]Entity, 0, len(w.moved))
	for _, e := range w.moved {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	w.moved = w.moved[:0]
	return out
}

// DrainBounces returns the contact count since the last drain (audio cue)
func (w *World) DrainBounces() int {
	n := w.bounces
	w.bounces = 0
	return n
}
