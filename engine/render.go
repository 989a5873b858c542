package engine

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shapebox/shape"
	"github.com/lixenwraith/shapebox/vmath"
)

const hudRows = 2

// Per-kind glyph and color for the terminal view
var kindRunes = [shape.KindCount]rune{
	shape.Ball:     '●',
	shape.Cube:     '■',
	shape.Capsule:  '◉',
	shape.Cylinder: '▮',
	shape.Cone:     '▲',
}

var kindColors = [shape.KindCount]tcell.Color{
	shape.Ball:     tcell.NewRGBColor(40, 180, 255),
	shape.Cube:     tcell.NewRGBColor(255, 60, 120),
	shape.Capsule:  tcell.NewRGBColor(120, 255, 80),
	shape.Cylinder: tcell.NewRGBColor(255, 200, 50),
	shape.Cone:     tcell.NewRGBColor(200, 120, 255),
}

type projected struct {
	cx, cy, radius float64
	depth          float64
	kind           shape.Kind
}

// project maps a world position to screen cells. Perspective divide by
// depth; x doubled for the 1:2 terminal cell aspect
func (g *Game) project(pos vmath.Vec3, radius int64, width, viewH int) projected {
	x := vmath.ToFloat(pos.X)
	y := vmath.ToFloat(pos.Y)
	z := vmath.ToFloat(pos.Z)
	r := vmath.ToFloat(radius)
	f := g.cfg.Display.FocalLength

	denom := z + f
	if denom < 0.5 {
		denom = 0.5
	}
	invZ := f / denom

	scale := float64(viewH) * 0.13
	groundRow := float64(viewH) - 2

	return projected{
		cx:     float64(width)/2.0 + x*invZ*scale*2.0,
		cy:     groundRow - y*invZ*scale,
		radius: r * invZ * scale,
		depth:  z,
	}
}

func (g *Game) render() {
	width, height := g.screen.Size()
	viewH := height - hudRows
	if viewH < 1 {
		return
	}

	g.screen.Clear()
	g.renderGround(width, viewH)

	// Project all bodies, then painter's algorithm far to near
	entities := g.world.Entities()
	projs := make([]projected, 0, len(entities))
	for _, e := range entities {
		body, ok := g.world.BodyOf(e)
		if !ok {
			continue
		}
		p := g.project(body.Pos, body.Kind.BoundingRadius(), width, viewH)
		p.kind = body.Kind
		projs = append(projs, p)
	}
	sort.Slice(projs, func(i, j int) bool {
		return projs[i].depth > projs[j].depth
	})

	for _, p := range projs {
		g.renderBody(p, width, viewH)
	}

	g.renderHUD(width, height)
	g.screen.Show()
}

// renderGround draws a dim depth grid on the ground plane
func (g *Game) renderGround(width, viewH int) {
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(70, 80, 70))

	bx := g.cfg.Sim.BoundsX
	bz := g.cfg.Sim.BoundsZ
	groundY := vmath.FromFloat(g.world.GroundY())

	for zf := -bz; zf <= bz; zf += 2.0 {
		for xf := -bx; xf <= bx; xf += 1.0 {
			pos := vmath.Vec3{
				X: vmath.FromFloat(xf),
				Y: groundY,
				Z: g.cameraZ + vmath.FromFloat(zf),
			}
			p := g.project(pos, 0, width, viewH)
			sx, sy := int(p.cx), int(p.cy)
			if sx >= 0 && sx < width && sy >= 0 && sy < viewH {
				g.screen.SetContent(sx, sy, '·', nil, style)
			}
		}
	}
}

// renderBody fills the projected ellipse of the body with its kind glyph
func (g *Game) renderBody(p projected, width, viewH int) {
	if p.radius < 0.3 {
		p.radius = 0.3
	}

	style := tcell.StyleDefault.Foreground(kindColors[p.kind])
	glyph := kindRunes[p.kind]

	rx := p.radius * 2.0 // Cell aspect
	ry := p.radius

	minX := int(p.cx - rx)
	maxX := int(p.cx + rx)
	minY := int(p.cy - ry)
	maxY := int(p.cy + ry)

	drawn := false
	for sy := minY; sy <= maxY; sy++ {
		if sy < 0 || sy >= viewH {
			continue
		}
		for sx := minX; sx <= maxX; sx++ {
			if sx < 0 || sx >= width {
				continue
			}
			nx := (float64(sx) + 0.5 - p.cx) / rx
			ny := (float64(sy) + 0.5 - p.cy) / ry
			if nx*nx+ny*ny > 1.0 {
				continue
			}
			g.screen.SetContent(sx, sy, glyph, nil, style)
			drawn = true
		}
	}

	// Distant bodies still get a single cell
	if !drawn {
		sx, sy := int(p.cx), int(p.cy)
		if sx >= 0 && sx < width && sy >= 0 && sy < viewH {
			g.screen.SetContent(sx, sy, glyph, nil, style)
		}
	}
}

func (g *Game) renderHUD(width, height int) {
	statusY := height - 2
	controlY := height - 1

	status := fmt.Sprintf(" Shape: %-8s  Objects: %d  t=%.1fs",
		g.selection.Current().Label(), g.registry.Len(), g.world.Elapsed())
	if g.paused {
		status += "  [PAUSED]"
	}
	g.writeLine(0, statusY, width, status,
		tcell.StyleDefault.Foreground(tcell.NewRGBColor(220, 220, 230)))

	g.writeLine(0, controlY, width,
		" space:spawn  tab:shape  d:despawn  r:reset  l:list  p:pause  q:quit",
		tcell.StyleDefault.Foreground(tcell.NewRGBColor(100, 100, 110)))
}

func (g *Game) writeLine(x, y, width int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= width {
			return
		}
		g.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
