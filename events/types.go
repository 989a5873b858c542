package events

import (
	"time"
)

// Type identifies a sandbox event
type Type int

const (
	// TypeSpawnRequest asks the lifecycle glue to create a body
	// Producer: input handler (Space) or any caller with queue access
	// Consumer: engine spawn drain | Payload: *SpawnRequestPayload
	TypeSpawnRequest Type = iota

	// TypeCycleShape advances the spawn selection
	// Producer: input handler (Tab)
	// Consumer: engine selection step | Payload: nil
	TypeCycleShape

	// TypeListDump logs the full registry listing and count
	// Producer: input handler (L) | Payload: nil
	TypeListDump

	// TypeDespawnLast destroys the most recently registered body
	// Producer: input handler (d) | Payload: nil
	TypeDespawnLast

	// TypeReset despawns all registered bodies (ids keep increasing)
	// Producer: input handler (r) | Payload: nil
	TypeReset

	// TypePauseToggle freezes/unfreezes the simulation step
	// Producer: input handler (p) | Payload: nil
	TypePauseToggle

	// TypeQuit ends the game loop
	// Producer: input handler (q/Escape/Ctrl-C) | Payload: nil
	TypeQuit
)

// Event is one queued sandbox event. Events are produced by the input
// handler and consumed once by the game loop on the tick after production
type Event struct {
	Type      Type
	Payload   any
	Frame     int64
	Timestamp time.Time
}
