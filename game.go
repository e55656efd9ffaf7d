package main

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"strings"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/wraith/arena"
	"github.com/milk9111/wraith/common"
	"github.com/milk9111/wraith/config"
	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/ecs/component"
	"github.com/milk9111/wraith/prefabs"
	"github.com/milk9111/wraith/save"
)

const (
	baseWidth  = 1280
	baseHeight = 720
	worldScale = 0.35
	storeWait  = 2 * time.Second
)

type Game struct {
	frames int

	arena   *arena.Arena
	store   save.Store
	profile uuid.UUID

	paused      bool
	quit        bool
	pauseUI     *ebitenui.UI
	pauseStatus *widget.Text
	notice      string
}

func NewGame(cfg *config.Config, tables *prefabs.Tables, arenaFile string, store save.Store) (*Game, error) {
	a, err := arena.Load(tables, arenaFile, NewInputSystem())
	if err != nil {
		return nil, err
	}
	if cfg.Watch {
		if err := a.Watch(prefabs.DiskRoot()); err != nil {
			slog.Warn("hot reload disabled", "err", err)
		}
	}

	g := &Game{
		arena:   a,
		store:   store,
		profile: uuid.NewSHA1(uuid.NameSpaceURL, []byte("wraith:"+a.Name)),
	}
	g.pauseUI, g.pauseStatus = NewPauseUI(g)
	return g, nil
}

func (g *Game) Close() {
	_ = g.arena.Close()
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseStatus.Label = pauseSummary(g.arena.Status(), g.notice)
		g.pauseUI.Update()
		return nil
	}

	g.frames++
	g.arena.PollReload()
	g.arena.Step(1 / float64(ebiten.TPS()))
	return nil
}

func (g *Game) saveLoadout() {
	l, err := save.Capture(g.arena.World, g.arena.Player, g.profile)
	if err == nil {
		ctx, cancel := context.WithTimeout(context.Background(), storeWait)
		defer cancel()
		err = g.store.Save(ctx, l)
	}
	if err != nil {
		slog.Error("save loadout", "err", err)
		g.notice = "save failed: " + err.Error()
		return
	}
	g.notice = "loadout saved"
}

func (g *Game) loadLoadout() {
	ctx, cancel := context.WithTimeout(context.Background(), storeWait)
	defer cancel()
	l, err := g.store.Load(ctx, g.profile)
	if err == nil {
		err = save.Restore(g.arena.World, g.arena.Tables, g.arena.Player, l)
	}
	if err != nil {
		slog.Error("load loadout", "err", err)
		g.notice = "load failed: " + err.Error()
		return
	}
	g.notice = "loadout restored"
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x1b, G: 0x1d, B: 0x22, A: 0xff})

	origin := common.Vec3{}
	if t, ok := ecs.Get(g.arena.World, g.arena.Player, component.TransformComponent.Kind()); ok {
		origin = t.Location()
	}
	g.drawWorld(screen, origin)
	g.drawHUD(screen)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) project(origin, p common.Vec3) (float32, float32) {
	d := p.Sub(origin).Scale(worldScale)
	return float32(baseWidth/2 + d.X), float32(baseHeight/2 - d.Y)
}

func (g *Game) drawWorld(screen *ebiten.Image, origin common.Vec3) {
	w := g.arena.World
	ecs.ForEach(w, component.TransformComponent.Kind(), func(e ecs.Entity, t *component.Transform) {
		x, y := g.project(origin, t.Location())
		size := float32(10)
		clr := color.Color(colornames.Lightgrey)
		switch {
		case ecs.Has(w, e, component.PlayerTagComponent.Kind()):
			clr, size = colornames.Deepskyblue, 14
		case ecs.Has(w, e, component.EnemyComponent.Kind()):
			clr, size = colornames.Indianred, 18
			if enemy, _ := ecs.Get(w, e, component.EnemyComponent.Kind()); enemy.Stunned {
				clr = colornames.Gold
			}
		case ecs.Has(w, e, component.ItemComponent.Kind()):
			it, _ := ecs.Get(w, e, component.ItemComponent.Kind())
			if !it.Visible {
				return
			}
			clr, size = it.LightColor, 8
		case ecs.Has(w, e, component.TeleportedTagComponent.Kind()):
			clr = colornames.Mediumpurple
		}
		vector.FillRect(screen, x-size/2, y-size/2, size, size, clr, false)

		if volumes, ok := ecs.Get(w, e, component.OverlapComponent.Kind()); ok {
			for _, v := range *volumes {
				if !v.Enabled || v.Name == component.VolumeAgro {
					continue
				}
				r := float32(v.Radius * worldScale)
				cx, cy := g.project(origin, t.Location().Add(v.Offset.RotateYaw(t.Yaw)))
				vector.StrokeRect(screen, cx-r, cy-r, 2*r, 2*r, 1, color.RGBA{R: 255, G: 255, B: 255, A: 40}, false)
			}
		}
	})

	for _, b := range g.arena.Beams() {
		x0, y0 := g.project(origin, b.From)
		x1, y1 := g.project(origin, b.To)
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, colornames.Orange, true)
	}

	if cam, ok := ecs.Get(w, g.arena.Player, component.CameraComponent.Kind()); ok {
		x0, y0 := g.project(origin, origin)
		x1, y1 := g.project(origin, origin.Add(common.Forward(cam.Yaw, 0).Scale(200)))
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, colornames.Lightgrey, true)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	st := g.arena.Status()
	var b strings.Builder
	fmt.Fprintf(&b, "FPS %.0f  frame %d\n", ebiten.ActualFPS(), g.frames)
	fmt.Fprintf(&b, "HP %.0f/%.0f  state %s", st.Health, st.MaxHealth, st.State)
	if st.Stunned {
		b.WriteString("  STUNNED")
	}
	if st.Dead {
		b.WriteString("  DEAD")
	}
	fmt.Fprintf(&b, "\n%s %d/%d  carried %d\n", st.Weapon, st.Ammo, st.Magazine, st.Carried)
	for i, name := range st.Slots {
		marker := " "
		if i == st.Equipped {
			marker = "*"
		}
		fmt.Fprintf(&b, "[%d%s %s] ", i, marker, name)
	}
	if st.Highlighted != component.NoSlot {
		fmt.Fprintf(&b, " free slot %d", st.Highlighted)
	}
	fmt.Fprintf(&b, "\nspread %.2f  fov %.1f\n", st.Spread, st.FOV)
	if st.Looking != "" {
		fmt.Fprintf(&b, "E: pick up %s\n", st.Looking)
	}
	ebitenutil.DebugPrintAt(screen, b.String(), 8, 8)

	feed := g.arena.Feed()
	for i, line := range feed {
		ebitenutil.DebugPrintAt(screen, line, 8, baseHeight-16*(len(feed)-i)-8)
	}
	if g.notice != "" {
		ebitenutil.DebugPrintAt(screen, g.notice, baseWidth-320, 8)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
