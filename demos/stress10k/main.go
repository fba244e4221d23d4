// stress10k runs 10,000 concurrent tweens, each gliding a dot to a random
// point and retargeting itself on completion. A stress test for the
// manager's update pass and pool churn: after warmup the steady state
// allocates nothing per frame.
package main

import (
	"image/color"
	"log"
	"math/rand/v2"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/aspen"
	"github.com/phanxgames/aspen/ease"
)

const (
	screenW = 1280
	screenH = 720
	count   = 10_000
)

type dot struct {
	x, y     float64
	settings *aspen.Settings
}

type game struct {
	manager *aspen.Manager
	dots    []dot
	img     *ebiten.Image
}

func newGame() *game {
	g := &game{
		manager: aspen.NewManager(),
		dots:    make([]dot, count),
		img:     ebiten.NewImage(2, 2),
	}
	g.img.Fill(color.RGBA{R: 0x9a, G: 0xd0, B: 0x6a, A: 0xff})

	for i := range g.dots {
		d := &g.dots[i]
		d.x = rand.Float64() * screenW
		d.y = rand.Float64() * screenH

		// Persist + Restart from onComplete keeps each tween and its
		// settings alive forever: zero churn after spawn.
		d.settings = aspen.NewSettings(aspen.Persist, ease.InOutQuad)
		g.retarget(d)
		tw := g.manager.Prop(d.settings)
		d.settings.SetOnComplete(func(*aspen.Tween) {
			g.retarget(d)
			_ = tw.Restart()
		})
	}
	return g
}

// retarget points the dot's goals at a fresh random destination.
func (g *game) retarget(d *dot) {
	d.settings.SetDuration(0.5 + rand.Float64()*2)
	d.settings.ClearGoals()
	d.settings.AddPropGoal(
		func() float64 { return d.x },
		rand.Float64()*screenW,
		func(v float64) { d.x = v },
	)
	d.settings.AddPropGoal(
		func() float64 { return d.y },
		rand.Float64()*screenH,
		func(v float64) { d.y = v },
	)
}

func (g *game) Update() error {
	g.manager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	for i := range g.dots {
		d := &g.dots[i]
		op.GeoM.Reset()
		op.GeoM.Translate(d.x, d.y)
		screen.DrawImage(g.img, op)
	}
	ebitenutil.DebugPrint(screen, "active: "+strconv.Itoa(g.manager.Len()))
}

func (g *game) Layout(w, h int) (int, int) { return screenW, screenH }

func main() {
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("Aspen — 10k Tweens")
	if err := ebiten.RunGame(newGame()); err != nil {
		log.Fatal(err)
	}
}
