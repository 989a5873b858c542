package events

import (
	"github.com/lixenwraith/shapebox/shape"
	"github.com/lixenwraith/shapebox/vmath"
)

// SpawnRequestPayload carries one spawn intent. Consumed exactly once by
// the spawn drain on the tick it is dequeued; never persisted
type SpawnRequestPayload struct {
	Position   vmath.Vec3
	Kind       shape.Kind
	CustomName string // empty = fallback name "<Label> <id>"
}
