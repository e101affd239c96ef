package main

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.design/x/clipboard"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/jewelwood/common"
	"github.com/milk9111/jewelwood/ecs"
	"github.com/milk9111/jewelwood/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	// pixelsPerUnit is the top-down zoom.
	pixelsPerUnit = 14.0
	maxDeltaTime  = 0.06
	playerSpeed   = 5.0
	turnSpeed     = 2.5
)

type Game struct {
	world      *ecs.World
	tuning     prefabs.Tuning
	tuningFile string
	watcher    *prefabs.Watcher
	seed       int64
	inventory  *inventoryUI
	labelFace  ebtext.Face

	last          time.Time
	clipboardInit bool
	clipboardOK   bool
}

func NewGame(world *ecs.World, tuning prefabs.Tuning, tuningFile string, watcher *prefabs.Watcher, seed int64) *Game {
	return &Game{
		world:      world,
		tuning:     tuning,
		tuningFile: tuningFile,
		watcher:    watcher,
		seed:       seed,
		inventory:  newInventoryUI(world.Inventory),
		labelFace:  ebtext.NewGoXFace(basicfont.Face7x13),
	}
}

func (g *Game) Update() error {
	now := time.Now()
	dt := 1.0 / 60
	if !g.last.IsZero() {
		dt = math.Min(now.Sub(g.last).Seconds(), maxDeltaTime)
	}
	g.last = now

	g.pollReload()
	g.handleInput(dt)
	g.world.Update(dt)
	if g.world.Inventory.Open {
		g.inventory.Update()
	}
	return nil
}

func (g *Game) handleInput(dt float64) {
	p := g.world.Player
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		p.Yaw += turnSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		p.Yaw -= turnSpeed * dt
	}

	fwd := p.Forward()
	right := common.V3(-fwd.Z, 0, fwd.X)
	var move common.Vec3
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		move = move.Add(fwd)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		move = move.Sub(fwd)
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		move = move.Add(right)
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		move = move.Sub(right)
	}
	p.Position = p.Position.Add(move.Normalize().Scale(playerSpeed * dt))

	p.Trigger = ebiten.IsKeyPressed(ebiten.KeySpace)

	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.world.Inventory.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyJ) && g.world.Inventory.UseJewel() {
		slog.Info("arena: jewel used", "left", g.world.Inventory.Jewels)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyRepro()
	}
}

// copyRepro puts the seed and session counters on the clipboard so a run can
// be replayed with -seed.
func (g *Game) copyRepro() {
	if !g.clipboardInit {
		g.clipboardInit = true
		if err := clipboard.Init(); err != nil {
			slog.Warn("arena: clipboard unavailable", "err", err)
		} else {
			g.clipboardOK = true
		}
	}
	if !g.clipboardOK {
		return
	}
	w := g.world
	text := fmt.Sprintf("-seed %d -tuning %s  # frame %d, enemies %d, jewels %d/%d",
		g.seed, g.tuningFile, w.Frame(), w.Targets.Len(), w.Inventory.Jewels, w.Inventory.MaxStack)
	clipboard.Write(clipboard.FmtText, []byte(text))
	slog.Info("arena: copied repro line", "text", text)
}

// pollReload applies tuning and script edits between frames.
func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if ok {
				slog.Warn("arena: watcher error", "err", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	next := g.tuning
	if prefabs.IsTuningFile(name) {
		t, err := prefabs.LoadTuningFile(g.tuningFile)
		if err != nil {
			slog.Warn("arena: tuning reload rejected", "file", name, "err", err)
			return
		}
		next = t
	}
	if err := g.world.ApplyTuning(next); err != nil {
		slog.Warn("arena: reload partially applied", "file", name, "err", err)
	}
	g.tuning = next
	slog.Info("arena: reloaded", "file", name)
}

// toScreen projects world XZ onto the screen around the player.
func (g *Game) toScreen(v common.Vec3) (float32, float32) {
	c := g.world.Player.Position
	x := baseWidth/2 + (v.X-c.X)*pixelsPerUnit
	y := baseHeight/2 + (v.Z-c.Z)*pixelsPerUnit
	return float32(x), float32(y)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)
	w := g.world

	for _, c := range w.Collectibles.All() {
		x, y := g.toScreen(c.Position)
		vector.FillCircle(screen, x, y, 4, colornames.Cyan, true)
	}

	for _, t := range w.Targets.Targets() {
		x, y := g.toScreen(t.Position)
		half := float32(pixelsPerUnit / 2)
		vector.FillRect(screen, x-half, y-half, 2*half, 2*half, colornames.Crimson, false)
		bar := float32(t.Health.Fraction()) * 2 * half
		vector.FillRect(screen, x-half, y-half-6, 2*half, 3, colornames.Black, false)
		vector.FillRect(screen, x-half, y-half-6, bar, 3, colornames.Lime, false)
	}

	for _, p := range w.Projectiles.Projectiles() {
		x, y := g.toScreen(p.Position)
		clr := colornames.Gold
		if p.Retired {
			clr = colornames.Gray
		}
		vector.FillCircle(screen, x, y, 2, clr, true)
	}

	px, py := g.toScreen(w.Player.Position)
	fx, fy := g.toScreen(w.Player.Position.Add(w.Player.Forward().Scale(1.5)))
	vector.FillCircle(screen, px, py, 6, colornames.Limegreen, true)
	vector.StrokeLine(screen, px, py, fx, fy, 2, colornames.White, true)

	for _, l := range w.Labels {
		x, y := g.toScreen(l.Position)
		// Height shows as an upward screen offset in the top-down view.
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(float64(x), float64(y)-l.Position.Y*pixelsPerUnit)
		op.ColorScale.ScaleWithColor(colornames.Gold)
		op.ColorScale.ScaleAlpha(float32(l.Alpha()))
		ebtext.Draw(screen, l.Text, g.labelFace, op)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f\nEnemies: %d    Projectiles: %d    Jewels on ground: %d",
		w.Frame(), ebiten.ActualFPS(), w.Targets.Len(), w.Projectiles.Len(), w.Collectibles.Len()))
	if w.Inventory.Open {
		g.inventory.ui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
