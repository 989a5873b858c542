package engine

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shapebox/events"
	"github.com/lixenwraith/shapebox/vmath"
)

// handleTerminalEvent translates raw terminal events into queue events.
// Runs on the tick goroutine, so reading the selection here is safe
func (g *Game) handleTerminalEvent(ev tcell.Event) {
	switch tev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventKey:
		g.handleKey(tev)
	}
}

func (g *Game) handleKey(ev *tcell.EventKey) {
	switch {
	case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
		g.pushEvent(events.TypeSpawnRequest, &events.SpawnRequestPayload{
			Position: vmath.Vec3{
				X: g.rng.Range(g.spawnExtent),
				Y: g.spawnHeight,
				Z: g.cameraZ + g.rng.Range(g.spawnExtent),
			},
			Kind: g.selection.Current(),
		})

	case ev.Key() == tcell.KeyTab:
		g.pushEvent(events.TypeCycleShape, nil)

	case ev.Key() == tcell.KeyRune && (ev.Rune() == 'l' || ev.Rune() == 'L'):
		g.pushEvent(events.TypeListDump, nil)

	case ev.Key() == tcell.KeyRune && ev.Rune() == 'd':
		g.pushEvent(events.TypeDespawnLast, nil)

	case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
		g.pushEvent(events.TypeReset, nil)

	case ev.Key() == tcell.KeyRune && ev.Rune() == 'p':
		g.pushEvent(events.TypePauseToggle, nil)

	case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
		g.pushEvent(events.TypeQuit, nil)

	case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
		g.pushEvent(events.TypeQuit, nil)
	}
}

func (g *Game) pushEvent(t events.Type, payload any) {
	g.queue.Push(events.Event{
		Type:      t,
		Payload:   payload,
		Frame:     g.frame,
		Timestamp: time.Now(),
	})
}
