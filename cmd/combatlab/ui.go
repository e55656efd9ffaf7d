package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/milk9111/wraith/arena"
	"github.com/milk9111/wraith/ecs"
	"github.com/milk9111/wraith/ecs/component"
	"github.com/milk9111/wraith/save"
)

const (
	tickRate  = time.Second / 30
	moveHold  = 6
	lookSpeed = 2.0
	storeWait = 2 * time.Second
)

type tickMsg time.Time

type noticeMsg string

// Model is the Bubble Tea model for the combat lab.
type Model struct {
	arena   *arena.Arena
	store   save.Store
	profile uuid.UUID

	feed viewport.Model
	help help.Model

	width  int
	height int
	ready  bool
	paused bool
	firing bool
	aiming bool

	moveX, moveY float64
	moveTicks    int
	look         float64
	notice       string
}

func New(a *arena.Arena, store save.Store) Model {
	return Model{
		arena:   a,
		store:   store,
		profile: uuid.NewSHA1(uuid.NameSpaceURL, []byte("wraith:"+a.Name)),
		help:    help.New(),
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickRate, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		feedHeight := max(m.height-14, 3)
		if !m.ready {
			m.feed = viewport.New(m.width, feedHeight)
			m.ready = true
		} else {
			m.feed.Width = m.width
			m.feed.Height = feedHeight
		}
		m.help.Width = m.width

	case tickMsg:
		if !m.paused {
			m.step()
		}
		if m.ready {
			m.feed.SetContent(styleFeed.Render(strings.Join(m.arena.Feed(), "\n")))
			m.feed.GotoBottom()
		}
		return m, tick()

	case noticeMsg:
		m.notice = string(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) input() *component.Input {
	in, _ := ecs.Get(m.arena.World, m.arena.Player, component.InputComponent.Kind())
	return in
}

func (m *Model) step() {
	if in := m.input(); in != nil {
		if m.moveTicks > 0 {
			m.moveTicks--
			in.MoveX, in.MoveY = m.moveX, m.moveY
		} else {
			in.MoveX, in.MoveY = 0, 0
		}
		in.LookYaw = m.look
	}
	m.look = 0
	m.arena.PollReload()
	m.arena.Step(tickRate.Seconds())
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	in := m.input()
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Pause):
		m.paused = !m.paused
	case key.Matches(msg, keys.Save):
		return m, m.saveLoadout()
	case key.Matches(msg, keys.Load):
		return m, m.loadLoadout()
	case in == nil:
	case key.Matches(msg, keys.Fire):
		m.firing = !m.firing
		if m.firing {
			in.FirePressed = true
		} else {
			in.FireReleased = true
		}
	case key.Matches(msg, keys.Aim):
		m.aiming = !m.aiming
		if m.aiming {
			in.AimPressed = true
		} else {
			in.AimReleased = true
		}
	case key.Matches(msg, keys.Select):
		in.SelectPressed = true
	case key.Matches(msg, keys.Reload):
		in.ReloadPressed = true
	case key.Matches(msg, keys.Slot):
		in.SlotKey = slotIndex(msg.String())
	case key.Matches(msg, keys.Move):
		m.moveX, m.moveY = 0, 0
		switch msg.String() {
		case "up":
			m.moveY = 1
		case "down":
			m.moveY = -1
		case "left":
			m.moveX = -1
		case "right":
			m.moveX = 1
		}
		m.moveTicks = moveHold
	case key.Matches(msg, keys.Look):
		if msg.String() == "h" {
			m.look = -lookSpeed
		} else {
			m.look = lookSpeed
		}
	}
	return m, nil
}

// saveLoadout captures on the UI goroutine and writes in a command so a
// slow store does not stall the frame loop.
func (m Model) saveLoadout() tea.Cmd {
	l, err := save.Capture(m.arena.World, m.arena.Player, m.profile)
	if err != nil {
		return func() tea.Msg { return noticeMsg("save failed: " + err.Error()) }
	}
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeWait)
		defer cancel()
		if err := store.Save(ctx, l); err != nil {
			return noticeMsg("save failed: " + err.Error())
		}
		return noticeMsg("loadout saved")
	}
}

func (m Model) loadLoadout() tea.Cmd {
	ctx, cancel := context.WithTimeout(context.Background(), storeWait)
	defer cancel()
	l, err := m.store.Load(ctx, m.profile)
	if err == nil {
		err = save.Restore(m.arena.World, m.arena.Tables, m.arena.Player, l)
	}
	if err != nil {
		return func() tea.Msg { return noticeMsg("load failed: " + err.Error()) }
	}
	return func() tea.Msg { return noticeMsg("loadout restored") }
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderStatusBar(),
		stylePanel.Width(max(m.width-2, 20)).Render(m.renderPlayer()),
		m.feed.View(),
		m.help.View(keys),
	)
}

func (m Model) renderStatusBar() string {
	title := styleTitle.Render(" wraith combat lab ")
	right := fmt.Sprintf(" %s | frame %d ", m.arena.Name, m.arena.World.Frame())
	if m.paused {
		right = " PAUSED" + right
	}
	if m.notice != "" {
		right = " " + m.notice + " |" + right
	}
	gap := max(m.width-lipgloss.Width(title)-lipgloss.Width(right), 0)
	return styleStatusBar.Render(title + strings.Repeat(" ", gap) + right)
}

func (m Model) renderPlayer() string {
	st := m.arena.Status()
	var b strings.Builder

	hp := fmt.Sprintf("HP %.0f/%.0f", st.Health, st.MaxHealth)
	if st.Health <= st.MaxHealth*0.25 {
		hp = styleWarn.Render(hp)
	}
	fmt.Fprintf(&b, "%s   state %s", hp, st.State)
	if st.Stunned {
		b.WriteString(styleWarn.Render("   STUNNED"))
	}
	if st.Dead {
		b.WriteString(styleWarn.Render("   DEAD"))
	}
	fmt.Fprintf(&b, "\nweapon %s  %d/%d  carried %d", st.Weapon, st.Ammo, st.Magazine, st.Carried)
	if m.firing {
		b.WriteString("  [firing]")
	}
	if m.aiming {
		b.WriteString("  [aiming]")
	}

	b.WriteString("\nslots ")
	for i, name := range st.Slots {
		label := fmt.Sprintf("%d:%s", i, name)
		switch {
		case i == st.Equipped:
			label = styleEquipped.Render(label)
		default:
			label = styleSlot.Render(label)
		}
		b.WriteString(label + "  ")
	}
	if st.Highlighted != component.NoSlot {
		b.WriteString(styleHighlight.Render(fmt.Sprintf("%d:free", st.Highlighted)))
	}
	fmt.Fprintf(&b, "\nspread %.2f  fov %.1f", st.Spread, st.FOV)
	if st.Looking != "" {
		fmt.Fprintf(&b, "\nlooking at %s (e to pick up)", st.Looking)
	}
	return b.String()
}
