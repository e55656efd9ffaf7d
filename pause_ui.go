package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/wraith/arena"
)

// NewPauseUI builds the centered pause menu. The returned text shows the
// loadout and the last save/load result; Game refreshes it while paused.
func NewPauseUI(g *Game) (*ebitenui.UI, *widget.Text) {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	title := widget.NewText(
		widget.TextOpts.Text("Paused", &face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
		widget.TextOpts.WidgetOpts(centered),
	)

	status := widget.NewText(
		widget.TextOpts.Text("", &face, color.NRGBA{R: 0xbb, G: 0xbb, B: 0xbb, A: 0xff}),
		widget.TextOpts.WidgetOpts(centered),
	)

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(centered),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(baseWidth/3, baseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(status)
	panel.AddChild(button("Resume", func() { g.paused = false }))
	panel.AddChild(button("Save loadout", g.saveLoadout))
	panel.AddChild(button("Load loadout", g.loadLoadout))
	panel.AddChild(button("Quit", func() { g.quit = true }))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}, status
}

// pauseSummary is one line per fact: weapon and ammo, then slots, then the
// notice when there is one.
func pauseSummary(st arena.Status, notice string) string {
	lines := []string{fmt.Sprintf("%s  %d/%d  (+%d)", st.Weapon, st.Ammo, st.Magazine, st.Carried)}
	slots := make([]string, len(st.Slots))
	for i, name := range st.Slots {
		if i == st.Equipped {
			name = "*" + name
		}
		slots[i] = name
	}
	lines = append(lines, strings.Join(slots, "  "))
	if notice != "" {
		lines = append(lines, notice)
	}
	return strings.Join(lines, "\n")
}
