// Package object tracks spawned bodies by id, name, and kind. The
// registry holds back-references into the world but never owns bodies:
// eviction happens only through removal notifications relayed by the
// game loop
package object

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lixenwraith/shapebox/shape"
	"github.com/lixenwraith/shapebox/vmath"
	"github.com/lixenwraith/shapebox/world"
)

// Object is one tracked body
type Object struct {
	ID        uint32
	Name      string
	Entity    world.Entity
	Kind      shape.Kind
	Position  vmath.Vec3 // cached, refreshed on transform notifications
	CreatedAt float64    // sim seconds
}

// Registry keeps objects in spawn order with a monotonic id counter.
// The counter never resets or decrements, so ids are never reused.
// Linear scans are the committed design at interactive object counts;
// id- and entity-keyed maps would be a drop-in swap if that changes.
// Single-writer: mutated only from the game loop
type Registry struct {
	objects []Object
	nextID  uint32
	log     *zap.Logger
}

func NewRegistry(log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{log: log}
}

// Add tracks a freshly spawned entity and returns the assigned id.
// customName empty means the "<Label> <id>" fallback. Never fails
func (r *Registry) Add(entity world.Entity, kind shape.Kind, pos vmath.Vec3, customName string, timestamp float64) uint32 {
	id := r.nextID
	r.nextID++

	name := customName
	if name == "" {
		name = fmt.Sprintf("%s %d", kind.Label(), id)
	}

	r.objects = append(r.objects, Object{
		ID:        id,
		Name:      name,
		Entity:    entity,
		Kind:      kind,
		Position:  pos,
		CreatedAt: timestamp,
	})

	r.log.Info("added object",
		zap.String("name", name),
		zap.Uint32("id", id),
		zap.Float64("x", vmath.ToFloat(pos.X)),
		zap.Float64("y", vmath.ToFloat(pos.Y)),
		zap.Float64("z", vmath.ToFloat(pos.Z)),
	)
	return id
}

// Remove evicts the object referencing entity and returns it.
// Misses return ok=false and leave the registry untouched; callers
// must tolerate repeated or unmatched removal notifications
func (r *Registry) Remove(entity world.Entity) (Object, bool) {
	for i, obj := range r.objects {
		if obj.Entity == entity {
			r.objects = append(r.objects[:i], r.objects[i+1:]...)
			r.log.Info("removed object",
				zap.String("name", obj.Name),
				zap.Uint32("id", obj.ID),
			)
			return obj, true
		}
	}
	return Object{}, false
}

// FindByEntity returns the object referencing entity
func (r *Registry) FindByEntity(entity world.Entity) (Object, bool) {
	for _, obj := range r.objects {
		if obj.Entity == entity {
			return obj, true
		}
	}
	return Object{}, false
}

// FindByID returns the object with the given id
func (r *Registry) FindByID(id uint32) (Object, bool) {
	for _, obj := range r.objects {
		if obj.ID == id {
			return obj, true
		}
	}
	return Object{}, false
}

// OfKind returns all objects of one kind in spawn order
func (r *Registry) OfKind(kind shape.Kind) []Object {
	var out []Object
	for _, obj := range r.objects {
		if obj.Kind == kind {
			out = append(out, obj)
		}
	}
	return out
}

// Summaries returns one formatted line per object in spawn order
func (r *Registry) Summaries() []string {
	out := make([]string, 0, len(r.objects))
	for _, obj := range r.objects {
		out = append(out, fmt.Sprintf("%s (ID: %d, Type: %s)", obj.Name, obj.ID, obj.Kind.Label()))
	}
	return out
}

// UpdatePosition refreshes the cached position; no-op on miss
func (r *Registry) UpdatePosition(entity world.Entity, pos vmath.Vec3) {
	for i := range r.objects {
		if r.objects[i].Entity == entity {
			r.objects[i].Position = pos
			return
		}
	}
}

// Newest returns the most recently added object
func (r *Registry) Newest() (Object, bool) {
	if len(r.objects) == 0 {
		return Object{}, false
	}
	return r.objects[len(r.objects)-1], true
}

// Len returns the live object count
func (r *Registry) Len() int { return len(r.objects) }
