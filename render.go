package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/brickfall/common"
	"github.com/milk9111/brickfall/ecs"
	"github.com/milk9111/brickfall/ecs/component"
	"github.com/milk9111/brickfall/hud"
	"github.com/milk9111/brickfall/scene"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var (
	skyColor   = color.NRGBA{R: 0x8e, G: 0xc9, B: 0xf0, A: 0xff}
	heartColor = color.NRGBA{R: 0xe0, G: 0x3a, B: 0x3a, A: 0xff}
	emptyHeart = color.NRGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xc0}
	hintPanel  = color.NRGBA{A: 0xa0}

	face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

	pixel = func() *ebiten.Image {
		img := ebiten.NewImage(1, 1)
		img.Fill(color.White)
		return img
	}()
)

// drawWorld draws every visible sprite as a box the size of its collider,
// scaled and rotated by its transform.
func drawWorld(screen *ebiten.Image, w *ecs.World, camX float64, debug bool) {
	screen.Fill(skyColor)

	ecs.ForEach3(w, component.SpriteComponent.Kind(), component.TransformComponent.Kind(), component.PhysicsBodyComponent.Kind(),
		func(_ ecs.Entity, sp *component.Sprite, t *component.Transform, body *component.PhysicsBody) {
			if sp.Hidden || sp.Alpha <= 0 {
				return
			}
			sx, sy := t.ScaleX, t.ScaleY
			if sx == 0 {
				sx = 1
			}
			if sy == 0 {
				sy = 1
			}
			bw, bh := body.Width*sx, body.Height*sy
			// Squashed sprites keep their feet on the ground.
			feet := (body.Height - bh) / 2

			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(bw, bh)
			op.GeoM.Translate(-bw/2, -bh/2)
			op.GeoM.Rotate(t.Rotation)
			op.GeoM.Translate(t.X-camX, t.Y+feet)
			fill := sp.Color
			if sp.Tinted {
				fill = sp.Tint
			}
			op.ColorScale.ScaleWithColor(fill)
			op.ColorScale.ScaleAlpha(float32(sp.Alpha))
			screen.DrawImage(pixel, op)
		})

	if !debug {
		return
	}
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		left, top, _, _ := body.Bounds(*t)
		outline := colornames.Lime
		if body.Sensor || body.CollisionDisabled {
			outline = colornames.Orange
		}
		vector.StrokeRect(screen, float32(left-camX), float32(top), float32(body.Width), float32(body.Height), 1, outline, false)
	})
}

func drawHUD(screen *ebiten.Image, h *hud.HUD) {
	const size, gap = 14, 6
	for i := 0; i < h.MaxHearts(); i++ {
		c := heartColor
		if i >= h.Hearts() {
			c = emptyHeart
		}
		vector.FillRect(screen, float32(12+i*(size+gap)), 12, size, size, c, false)
	}

	drawText(screen, fmt.Sprintf("SCORE %06d", h.Score()), common.BaseWidth-140, 24, colornames.White)
	drawText(screen, fmt.Sprintf("STARS %d", h.Stars()), common.BaseWidth-140, 42, colornames.Gold)

	if msg, ok := h.Hint(); ok {
		width := float64(len(msg)*7 + 24)
		x := (common.BaseWidth - width) / 2
		vector.FillRect(screen, float32(x), 60, float32(width), 26, hintPanel, false)
		drawText(screen, msg, x+12, 78, colornames.White)
	}
}

func drawVictory(screen *ebiten.Image, reg *scene.Director) {
	screen.Fill(colornames.Midnightblue)

	score, _ := reg.Get(scene.KeyLastScore)
	stars, _ := reg.Get(scene.KeyLastStars)
	seconds, _ := reg.Get(scene.KeyLastTime)

	lines := []string{
		"LEVEL CLEAR",
		"",
		fmt.Sprintf("Score  %d", score),
		fmt.Sprintf("Stars  %s", strings.Repeat("*", stars)),
		fmt.Sprintf("Time   %ds", seconds),
		"",
		"Press ENTER to play again",
	}
	y := float64(common.BaseHeight)/2 - float64(len(lines)*20)/2
	for _, line := range lines {
		x := (common.BaseWidth - float64(len(line)*7)) / 2
		drawText(screen, line, x, y, colornames.White)
		y += 20
	}
}

func drawDebug(screen *ebiten.Image, run *scene.Run, restarts int) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.1f  frame %d  restarts %d  outcome %s",
		ebiten.ActualFPS(), run.Frames, restarts, run.Session.Outcome()), 12, common.BaseHeight-20)
}

func drawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y-float64(basicfont.Face7x13.Ascent))
	op.ColorScale.ScaleWithColor(c)
	ebtext.Draw(screen, s, face, op)
}
