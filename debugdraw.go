package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
)

// drawSpace renders every shape in a room's space at the given screen offset.
func drawSpace(screen *ebiten.Image, space *cp.Space, offsetX, offsetY float64) {
	if screen == nil || space == nil {
		return
	}
	cp.DrawSpace(space, &spaceDrawer{screen: screen, offsetX: offsetX, offsetY: offsetY})
}

func drawAimLine(screen *ebiten.Image, x0, y0, x1, y1 float64, hit bool) {
	c := color.RGBA{R: 255, G: 255, B: 255, A: 120}
	if hit {
		c = color.RGBA{R: 255, G: 80, B: 80, A: 255}
	}
	ebitenutil.DrawLine(screen, x0, y0, x1, y1, c)
	if hit {
		const l = 4.0
		ebitenutil.DrawLine(screen, x1-l, y1, x1+l, y1, c)
		ebitenutil.DrawLine(screen, x1, y1-l, x1, y1+l, c)
	}
}

type spaceDrawer struct {
	screen  *ebiten.Image
	offsetX float64
	offsetY float64
}

func (d *spaceDrawer) at(v cp.Vector) cp.Vector {
	return cp.Vector{X: v.X + d.offsetX, Y: v.Y + d.offsetY}
}

func (d *spaceDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if d.screen == nil {
		return
	}
	pos = d.at(pos)
	c := fcolorToRGBA(outline)
	steps := 20
	prev := cp.Vector{X: pos.X + radius, Y: pos.Y}
	for i := 1; i <= steps; i++ {
		th := float64(i) * (2 * math.Pi / float64(steps))
		cur := cp.Vector{X: pos.X + math.Cos(th)*radius, Y: pos.Y + math.Sin(th)*radius}
		ebitenutil.DrawLine(d.screen, prev.X, prev.Y, cur.X, cur.Y, c)
		prev = cur
	}
	// draw angle indicator
	ax := pos.X + math.Cos(angle)*radius
	ay := pos.Y + math.Sin(angle)*radius
	ebitenutil.DrawLine(d.screen, pos.X, pos.Y, ax, ay, c)
}

func (d *spaceDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	if d.screen == nil {
		return
	}
	a = d.at(a)
	b = d.at(b)
	ebitenutil.DrawLine(d.screen, a.X, a.Y, b.X, b.Y, fcolorToRGBA(fill))
}

func (d *spaceDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if d.screen == nil {
		return
	}
	oa := d.at(a)
	ob := d.at(b)
	ebitenutil.DrawLine(d.screen, oa.X, oa.Y, ob.X, ob.Y, fcolorToRGBA(outline))
	if radius > 0 {
		d.DrawCircle(a, 0, radius, outline, fill, data)
		d.DrawCircle(b, 0, radius, outline, fill, data)
	}
}

func (d *spaceDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if d.screen == nil || count == 0 {
		return
	}
	c := fcolorToRGBA(outline)
	for i := 0; i < count; i++ {
		j := (i + 1) % count
		a := d.at(verts[i])
		b := d.at(verts[j])
		ebitenutil.DrawLine(d.screen, a.X, a.Y, b.X, b.Y, c)
	}
	if radius > 0 {
		for i := 0; i < count; i++ {
			d.DrawCircle(verts[i], 0, radius, outline, fill, data)
		}
	}
}

func (d *spaceDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if d.screen == nil {
		return
	}
	pos = d.at(pos)
	c := fcolorToRGBA(fill)
	l := size / 2
	ebitenutil.DrawLine(d.screen, pos.X-l, pos.Y, pos.X+l, pos.Y, c)
	ebitenutil.DrawLine(d.screen, pos.X, pos.Y-l, pos.X, pos.Y+l, c)
}

func (d *spaceDrawer) Flags() uint {
	return cp.DRAW_SHAPES | cp.DRAW_CONSTRAINTS
}

func (d *spaceDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1.0, B: 0.2, A: 1.0}
}

func (d *spaceDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape == nil {
		return cp.FColor{R: 1, G: 1, B: 1, A: 1}
	}
	if shape.Sensor() {
		return cp.FColor{R: 1.0, G: 0.85, B: 0.2, A: 1.0}
	}
	if shape.Body() != nil && shape.Body().GetType() == cp.BODY_STATIC {
		return cp.FColor{R: 0.4, G: 0.7, B: 1.0, A: 1.0}
	}
	return cp.FColor{R: 0.9, G: 0.4, B: 0.9, A: 1.0}
}

func (d *spaceDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 0.7, G: 0.7, B: 0.7, A: 1.0}
}

func (d *spaceDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1.0, G: 0.1, B: 0.1, A: 1.0}
}

func (d *spaceDrawer) Data() interface{} {
	return nil
}

func fcolorToRGBA(c cp.FColor) color.RGBA {
	clamp := func(v float32) uint8 {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return uint8(v * 255)
	}
	return color.RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}
