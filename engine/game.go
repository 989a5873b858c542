// Package engine drives the sandbox: it polls input, drains the event
// queue, steps the world, and relays the world's removal and transform
// notifications into the object registry. One tick runs those stages in
// fixed order on a single goroutine
package engine

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/shapebox/audio"
	"github.com/lixenwraith/shapebox/config"
	"github.com/lixenwraith/shapebox/constants"
	"github.com/lixenwraith/shapebox/events"
	"github.com/lixenwraith/shapebox/object"
	"github.com/lixenwraith/shapebox/shape"
	"github.com/lixenwraith/shapebox/vmath"
	"github.com/lixenwraith/shapebox/world"
)

// Game owns all mutable sandbox state. Components are held and passed
// by reference from here; nothing is package-global
type Game struct {
	screen    tcell.Screen
	world     *world.World
	registry  *object.Registry
	selection *shape.Selection
	queue     *events.Queue
	player    *audio.Player
	log       *zap.Logger
	cfg       *config.Config
	rng       *vmath.FastRand

	// Q32.32 tuning derived from config
	restitution int64
	spawnHeight int64
	spawnExtent int64
	cameraZ     int64

	frame   int64
	paused  bool
	running bool
}

func New(screen tcell.Screen, cfg *config.Config, log *zap.Logger, player *audio.Player) *Game {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}

	wcfg := world.DefaultConfig()
	wcfg.Gravity = cfg.Sim.Gravity
	wcfg.BoundsX = cfg.Sim.BoundsX
	wcfg.BoundsZ = cfg.Sim.BoundsZ

	g := &Game{
		screen:      screen,
		world:       world.New(wcfg),
		registry:    object.NewRegistry(log),
		selection:   shape.NewSelection(),
		queue:       events.NewQueue(),
		player:      player,
		log:         log,
		cfg:         cfg,
		rng:         vmath.NewFastRand(uint64(time.Now().UnixNano())),
		restitution: vmath.FromFloat(cfg.Sim.Restitution),
		spawnHeight: vmath.FromFloat(cfg.Sim.SpawnHeight),
		spawnExtent: vmath.FromFloat(cfg.Sim.SpawnExtent),
		cameraZ:     vmath.FromFloat(constants.CameraZ),
	}

	g.setupScene()
	return g
}

// setupScene drops the initial bouncing ball. It is deliberately not
// registered: only event-driven spawns are tracked
func (g *Game) setupScene() {
	g.world.Spawn(shape.Ball, vmath.Vec3{
		Y: g.spawnHeight,
		Z: g.cameraZ,
	}, g.restitution)
}

// Queue exposes the spawn request queue for external producers
func (g *Game) Queue() *events.Queue { return g.queue }

// Run is the blocking game loop: a poller goroutine forwards terminal
// events into a channel, the ticker drains it each tick so all state
// mutation stays on this goroutine
func (g *Game) Run() error {
	inputCh := make(chan tcell.Event, constants.InputChannelSize)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(inputCh)
				return
			}
			select {
			case inputCh <- ev:
			default:
				// Tick loop stalled, drop rather than block the poller
			}
		}
	}()

	interval := time.Second / time.Duration(g.cfg.Display.FPS)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTick := time.Now()
	g.running = true

	for g.running {
		<-ticker.C

	drainInput:
		for {
			select {
			case ev, ok := <-inputCh:
				if !ok {
					g.running = false
					break drainInput
				}
				g.handleTerminalEvent(ev)
			default:
				break drainInput
			}
		}

		now := time.Now()
		delta := now.Sub(lastTick)
		lastTick = now
		if delta > constants.MaxTickDelta {
			delta = constants.MaxTickDelta
		}

		g.tick(vmath.FromFloat(delta.Seconds()))
	}

	return nil
}

// tick runs one cycle: queued events first (selection and spawn intents
// in FIFO order), then the physics step, then notification sync, then
// rendering
func (g *Game) tick(dt int64) {
	g.frame++

	g.processEvents()

	if !g.paused {
		g.world.Step(dt)
	}

	g.syncRemovals()
	g.syncPositions()

	if g.world.DrainBounces() > 0 {
		g.playSound(audio.SoundBounce)
	}

	if g.screen != nil {
		g.render()
	}
}

func (g *Game) playSound(s audio.SoundType) {
	if g.player != nil {
		g.player.Play(s)
	}
}
