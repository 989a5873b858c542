package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/shapebox/audio"
	"github.com/lixenwraith/shapebox/events"
	"github.com/lixenwraith/shapebox/world"
)

// processEvents drains the queue fully, in FIFO order. Spawn requests
// interleave with selection commands exactly as enqueued
func (g *Game) processEvents() {
	for _, ev := range g.queue.Consume() {
		switch ev.Type {
		case events.TypeSpawnRequest:
			payload, ok := ev.Payload.(*events.SpawnRequestPayload)
			if !ok {
				g.log.Warn("spawn request with bad payload", zap.Int64("frame", ev.Frame))
				continue
			}
			g.spawn(payload)

		case events.TypeCycleShape:
			kind := g.selection.Cycle()
			g.log.Info("selected shape", zap.String("shape", kind.Label()))

		case events.TypeListDump:
			g.log.Info("current objects")
			for _, line := range g.registry.Summaries() {
				g.log.Info("  " + line)
			}
			g.log.Info("total objects", zap.Int("count", g.registry.Len()))

		case events.TypeDespawnLast:
			if obj, ok := g.registry.Newest(); ok {
				g.world.Despawn(obj.Entity)
				g.playSound(audio.SoundDespawn)
			}

		case events.TypeReset:
			g.reset()

		case events.TypePauseToggle:
			g.paused = !g.paused

		case events.TypeQuit:
			g.running = false
		}
	}
}

// spawn fulfills one request: instantiate the body, register it, and
// tag the entity with its assigned identity
func (g *Game) spawn(req *events.SpawnRequestPayload) {
	entity := g.world.Spawn(req.Kind, req.Position, g.restitution)

	now := g.world.Elapsed()
	id := g.registry.Add(entity, req.Kind, req.Position, req.CustomName, now)

	obj, _ := g.registry.FindByID(id)
	g.world.SetTag(entity, world.Tag{
		ID:        id,
		Name:      obj.Name,
		Kind:      req.Kind,
		CreatedAt: now,
	})

	g.playSound(audio.SoundSpawn)
}

// reset despawns every body and rebuilds the initial scene. Registry
// eviction rides the normal removal notifications; ids keep increasing
func (g *Game) reset() {
	for _, e := range g.world.Entities() {
		g.world.Despawn(e)
	}
	g.setupScene()
	g.paused = false
	g.log.Info("scene reset")
}

// syncRemovals relays destruction notifications into the registry.
// Misses are expected (untracked bodies, repeated notifications)
func (g *Game) syncRemovals() {
	for _, e := range g.world.DrainRemoved() {
		g.registry.Remove(e)
	}
}

// syncPositions refreshes cached positions for tracked bodies that moved
func (g *Game) syncPositions() {
	for _, e := range g.world.DrainMoved() {
		if pos, ok := g.world.Position(e); ok {
			g.registry.UpdatePosition(e, pos)
		}
	}
}
