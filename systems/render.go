package systems

import (
	"image/color"
	"math"

	"github.com/automoto/megaphone/components"
	cfg "github.com/automoto/megaphone/config"
	"github.com/automoto/megaphone/fonts"
	"github.com/automoto/megaphone/gamemath"
	"github.com/automoto/megaphone/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	whitePixel *ebiten.Image
	rectDrawOp = &ebiten.DrawImageOptions{}
)

func getWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// fillWorldRect draws r shifted by the camera.
func fillWorldRect(screen *ebiten.Image, r gamemath.Rect, camX float64, clr color.Color) {
	vector.FillRect(screen, float32(r.X-camX), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

// fillRotatedRect draws a w x h rect whose top-left is (x, y) relative to a
// pivot at (cx, cy), rotated by angle around the pivot.
func fillRotatedRect(screen *ebiten.Image, cx, cy, angle, x, y, w, h float64, clr color.Color) {
	rectDrawOp.GeoM.Reset()
	rectDrawOp.ColorScale.Reset()
	rectDrawOp.GeoM.Scale(w, h)
	rectDrawOp.GeoM.Translate(x, y)
	rectDrawOp.GeoM.Rotate(angle)
	rectDrawOp.GeoM.Translate(cx, cy)
	rectDrawOp.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(getWhitePixel(), rectDrawOp)
}

// drawPath fills (strokeWidth 0) or strokes a path in a single color.
func drawPath(screen *ebiten.Image, path *vector.Path, strokeWidth float32, clr color.RGBA) {
	var vs []ebiten.Vertex
	var is []uint16
	if strokeWidth > 0 {
		vs, is = path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: strokeWidth})
	} else {
		vs, is = path.AppendVerticesAndIndicesForFilling(nil, nil)
	}

	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	for i := range vs {
		vs[i].SrcX = 0
		vs[i].SrcY = 0
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	screen.DrawTriangles(vs, is, getWhitePixel(), &ebiten.DrawTrianglesOptions{})
}

// arcPath approximates an arc (or a full ellipse when rx != ry) with line
// segments. Angles are in radians, y pointing down.
func arcPath(cx, cy, rx, ry, from, to float64, segments int) *vector.Path {
	path := &vector.Path{}
	for i := 0; i <= segments; i++ {
		a := from + (to-from)*float64(i)/float64(segments)
		x := float32(cx + math.Cos(a)*rx)
		y := float32(cy + math.Sin(a)*ry)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	return path
}

func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Colors.Sky)
}

// DrawLevel draws platforms, then treadmills on top of them.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	camX := cameraX(ecs)

	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		fillWorldRect(screen, components.Object.Get(e).Rect(), camX, cfg.Colors.Platform)
	})
	tags.Treadmill.Each(ecs.World, func(e *donburi.Entry) {
		fillWorldRect(screen, components.Object.Get(e).Rect(), camX, cfg.Colors.Treadmill)
	})
}

func DrawCollectibles(ecs *ecs.ECS, screen *ebiten.Image) {
	camX := cameraX(ecs)
	face := fonts.Small.Get()

	tags.Collectible.Each(ecs.World, func(e *donburi.Entry) {
		r := components.Object.Get(e).Rect()
		fillWorldRect(screen, r, camX, cfg.Colors.Collectible)
		label := components.Collectible.Get(e).Label
		text.Draw(screen, label, face, int(r.X-camX-6), int(r.Y-6), cfg.Colors.Text)
	})
}

// DrawEnemies draws each enemy with a slow rocking wobble and a face.
func DrawEnemies(ecs *ecs.ECS, screen *ebiten.Image) {
	camX := cameraX(ecs)
	t := ElapsedTime(ecs)
	angle := math.Sin(math.Mod(t*1000/180, 2*math.Pi)) * 0.05

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		r := components.Object.Get(e).Rect()
		cx, cy := r.Center()
		cx -= camX

		fillRotatedRect(screen, cx, cy, angle, -r.W/2, -r.H/2, r.W, r.H, flashColor(e, cfg.Colors.Enemy))
		fillRotatedRect(screen, cx, cy, angle, -10, -8, 6, 6, cfg.Black)
		fillRotatedRect(screen, cx, cy, angle, 4, -8, 6, 6, cfg.Black)
		fillRotatedRect(screen, cx, cy, angle, -6, 6, 12, 3, cfg.Black)
	})
}

// DrawBoss draws the boss and its health bar in screen space.
func DrawBoss(ecs *ecs.ECS, screen *ebiten.Image) {
	camX := cameraX(ecs)

	tags.Boss.Each(ecs.World, func(e *donburi.Entry) {
		r := components.Object.Get(e).Rect()
		fillWorldRect(screen, r, camX, flashColor(e, cfg.Colors.Boss))

		x := float32(r.X - camX)
		y := float32(r.Y)
		w := float32(r.W)
		vector.FillRect(screen, x+8, y+10, 12, 8, cfg.Colors.BossEyes, false)
		vector.FillRect(screen, x+w-20, y+10, 12, 8, cfg.Colors.BossEyes, false)
		vector.FillRect(screen, x+20, y+34, 20, 6, cfg.Colors.BossMouth, false)

		drawBossBar(screen, components.Health.Get(e).Current, components.Boss.Get(e).MaxHP)
	})
}

func drawBossBar(screen *ebiten.Image, hp, maxHP int) {
	bar := cfg.Boss
	if hp > 0 {
		vector.FillRect(screen,
			float32(bar.BarX), float32(bar.BarY),
			float32(bar.BarSegment*float64(hp)), float32(bar.BarHeight),
			cfg.Colors.BossBar, false)
	}

	outline := bar.BarOutlineMax
	if maxHP > outline {
		outline = maxHP
	}
	vector.StrokeRect(screen,
		float32(bar.BarX), float32(bar.BarY),
		float32(bar.BarSegment*float64(outline)), float32(bar.BarHeight),
		1, cfg.Black, false)
}

// DrawPlayer draws the cartoon player: shadow, body, head, shouting mouth
// and, while charging, the megaphone with a growing arc.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	camX := cameraX(ecs)
	wobble := math.Sin(math.Mod(ElapsedTime(ecs)*1000/150, 2*math.Pi)) * 2

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if isFainted(e) {
			return
		}
		player := components.Player.Get(e)
		r := components.Object.Get(e).Rect()
		x := r.X - camX
		y := r.Y
		facingRight := player.Direction.X > 0

		shadow := arcPath(x+r.W/2, y+r.H+6, r.W*0.5, 6, 0, 2*math.Pi, 24)
		shadow.Close()
		drawPath(screen, shadow, 0, cfg.Colors.Shadow)

		vector.FillRect(screen, float32(x), float32(y), float32(r.W), float32(r.H), flashColor(e, cfg.Colors.Player), false)
		vector.FillRect(screen, float32(x+6), float32(y-16), 24, 20, cfg.Colors.PlayerHead, false)

		mouthX := x + 18
		if !facingRight {
			mouthX -= 8
		}
		vector.FillRect(screen, float32(mouthX), float32(y-4+wobble*0.2), 10, 8, cfg.Black, false)

		if player.Charge <= 0 {
			return
		}

		hx := x - 14
		arcX := hx
		from, to := math.Pi-0.7, math.Pi+0.7
		if facingRight {
			hx = x + r.W + 6
			arcX = hx + 12
			from, to = -0.7, 0.7
		}
		vector.FillRect(screen, float32(hx), float32(y+6), 12, 10, cfg.Colors.Megaphone, false)

		radius := 16 + player.Charge*20
		drawPath(screen, arcPath(arcX, y+10, radius, radius, from, to, 12), 2, cfg.Colors.ChargeArc)
	})
}
