/*
 * Copyright (C) 2023 by Jason Figge
 */

package termview

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"gungame/internal/game"
)

type cell struct {
	r     rune
	style tcell.Style
}

type fakeScreen struct {
	w, h  int
	cells map[[2]int]cell
	shows int
}

func newFakeScreen(w, h int) *fakeScreen {
	return &fakeScreen{w: w, h: h, cells: map[[2]int]cell{}}
}

func (f *fakeScreen) Size() (int, int) { return f.w, f.h }
func (f *fakeScreen) Clear()           { f.cells = map[[2]int]cell{} }
func (f *fakeScreen) Show()            { f.shows++ }

func (f *fakeScreen) SetContent(x, y int, r rune, _ []rune, style tcell.Style) {
	f.cells[[2]int{x, y}] = cell{r, style}
}

func (f *fakeScreen) row(y int) string {
	var b strings.Builder
	for x := 0; x < f.w; x++ {
		c, ok := f.cells[[2]int{x, y}]
		if !ok || c.r == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.r)
	}
	return b.String()
}

func newTestView(t *testing.T, w, h int, enemies ...game.Point) (*View, *fakeScreen) {
	t.Helper()
	cfg := game.DefaultConfig()
	cfg.Enemies = enemies
	session, err := game.NewSession(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	screen := newFakeScreen(w, h)
	return New(screen, session, nil, zerolog.Nop()), screen
}

func TestDrawShowsStatusLineAndPrompt(t *testing.T) {
	v, screen := newTestView(t, 120, 30)
	v.Draw()

	if screen.shows != 1 {
		t.Fatalf("Show called %d times", screen.shows)
	}
	status := screen.row(29)
	if !strings.Contains(status, "HEALTH 100") || !strings.Contains(status, "AMMO 30/30") {
		t.Fatalf("status line = %q", status)
	}
	found := false
	for y := 0; y < 29; y++ {
		if strings.Contains(screen.row(y), "Click or press Enter") {
			found = true
		}
	}
	if !found {
		t.Fatal("start prompt not drawn before the game starts")
	}
	if c := screen.cells[[2]int{60, 14}]; c.r != '+' {
		t.Fatalf("crosshair cell = %q", c.r)
	}
}

func TestDrawFillsEveryViewCell(t *testing.T) {
	v, screen := newTestView(t, 40, 20)
	v.Draw()
	for x := 0; x < 40; x++ {
		for y := 0; y < 19; y++ {
			if _, ok := screen.cells[[2]int{x, y}]; !ok {
				t.Fatalf("cell (%d,%d) not drawn", x, y)
			}
		}
	}
}

func TestDrawTinyScreen(t *testing.T) {
	v, screen := newTestView(t, 10, 1)
	v.Draw()
	if screen.shows != 1 || len(screen.cells) != 0 {
		t.Fatalf("tiny screen drew %d cells", len(screen.cells))
	}
}

func TestDrawEnemyInFront(t *testing.T) {
	v, screen := newTestView(t, 80, 25, game.Point{X: 500, Y: 300})
	v.Draw()
	if c := screen.cells[[2]int{40, 15}]; c.style != enemyStyle {
		t.Fatalf("centre cell is %q, want enemy", c.r)
	}
}

func TestTickStartsThenFires(t *testing.T) {
	v, screen := newTestView(t, 80, 25, game.Point{X: 500, Y: 300})
	now := time.Unix(100, 0)

	v.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), now)
	ev := v.Tick(now)
	if !ev.Started || ev.Shot.Fired {
		t.Fatalf("first click events = %+v", ev)
	}
	if !v.input.PointerLocked() {
		t.Fatal("mouse tracking not enabled on start")
	}

	now = now.Add(FrameInterval)
	v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), now)
	ev = v.Tick(now)
	if !ev.Shot.Fired || len(ev.Shot.Hits) != 1 {
		t.Fatalf("shot = %+v", ev.Shot)
	}
	if v.session.Ammo().Current != 29 {
		t.Fatalf("ammo = %d", v.session.Ammo().Current)
	}

	found := false
	for y := 0; y < 24; y++ {
		if strings.Contains(screen.row(y), "HIT!") {
			found = true
		}
	}
	if !found {
		t.Fatal("hit marker not drawn")
	}
}

func TestHandleEventQuit(t *testing.T) {
	v, _ := newTestView(t, 80, 25)
	if v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), time.Now()) {
		t.Fatal("q did not quit")
	}
}

func TestRunStopsOnQuitEvent(t *testing.T) {
	v, _ := newTestView(t, 80, 25)
	events := make(chan tcell.Event, 1)
	events <- tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)
	poll := func() tcell.Event {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return ev
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := v.Run(ctx, poll); err != nil {
		t.Fatalf("Run = %v", err)
	}
	close(events)
}

func TestRunStopsOnContext(t *testing.T) {
	v, _ := newTestView(t, 80, 25)
	block := make(chan struct{})
	defer close(block)
	poll := func() tcell.Event {
		<-block
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := v.Run(ctx, poll); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run = %v, want deadline exceeded", err)
	}
}

func TestShadeRune(t *testing.T) {
	if got := shadeRune(1); got != '█' {
		t.Fatalf("full brightness = %q", got)
	}
	if got := shadeRune(game.MinBrightness); got != '░' {
		t.Fatalf("minimum brightness = %q", got)
	}
}

func TestDrawOnSimulationScreen(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer sim.Fini()
	sim.SetSize(100, 30)

	cfg := game.DefaultConfig()
	session, err := game.NewSession(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	New(sim, session, nil, zerolog.Nop()).Draw()

	cells, w, h := sim.GetContents()
	if w != 100 || h != 30 {
		t.Fatalf("size = %dx%d", w, h)
	}
	var status strings.Builder
	for x := 0; x < w; x++ {
		if runes := cells[(h-1)*w+x].Runes; len(runes) > 0 {
			status.WriteRune(runes[0])
		}
	}
	if !strings.Contains(status.String(), "SCORE 0") {
		t.Fatalf("status line = %q", status.String())
	}
}
