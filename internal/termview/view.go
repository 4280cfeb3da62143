/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package termview renders a game session into a terminal with tcell. One
// terminal column is one ray and one row is two projected pixels.
package termview

import (
	"context"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"gungame/internal/audio"
	"gungame/internal/game"
)

const (
	FrameInterval = 16 * time.Millisecond
	PixelsPerRow  = 2
)

var (
	shadeRunes = []rune{'░', '▒', '▓', '█'}

	skyStyle    = tcell.StyleDefault.Background(rgb(game.SkyColor))
	floorStyle  = tcell.StyleDefault.Background(rgb(game.FloorColor))
	enemyStyle  = tcell.StyleDefault.Foreground(rgb(game.EnemyColor)).Background(rgb(game.EnemyColor))
	hitStyle    = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack).Bold(true)
	flashStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	crossStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Screen is the part of tcell.Screen the view draws to.
type Screen interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Clear()
	Show()
}

type View struct {
	screen   Screen
	session  *game.Session
	input    *game.Input
	controls *Controls
	sounds   *audio.SoundManager
	log      zerolog.Logger
}

func New(screen Screen, session *game.Session, sounds *audio.SoundManager, log zerolog.Logger) *View {
	input := &game.Input{}
	return &View{
		screen:   screen,
		session:  session,
		input:    input,
		controls: NewControls(input),
		sounds:   sounds,
		log:      log,
	}
}

// HandleEvent feeds one terminal event to the controls. It returns false
// when the player quits.
func (v *View) HandleEvent(ev tcell.Event, now time.Time) bool {
	if _, ok := ev.(*tcell.EventResize); ok {
		v.Draw()
		return true
	}
	return v.controls.HandleEvent(ev, now)
}

// Tick advances the session by one frame and redraws.
func (v *View) Tick(now time.Time) game.Events {
	v.controls.Expire(now)
	ev := v.session.Step(now, v.input.Snapshot())
	if ev.Started {
		// The terminal has no pointer lock; mouse tracking starts with the game.
		v.input.SetPointerLock(true)
	}
	if v.sounds != nil {
		v.sounds.Handle(ev)
	}
	if ev.Shot.Fired {
		v.log.Debug().Int("hits", len(ev.Shot.Hits)).Int("ammo", v.session.Ammo().Current).Msg("shot")
	}
	v.Draw()
	return ev
}

// Run polls events and ticks frames until ctx is done or the player quits.
func (v *View) Run(ctx context.Context, poll func() tcell.Event) error {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := poll()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !v.HandleEvent(ev, time.Now()) {
				return nil
			}
		case now := <-ticker.C:
			v.Tick(now)
		}
	}
}

// Draw renders the current session state. The bottom row is the status
// line.
func (v *View) Draw() {
	width, height := v.screen.Size()
	v.screen.Clear()
	viewRows := height - 1
	if width <= 0 || viewRows <= 0 {
		v.screen.Show()
		return
	}

	frame := v.session.Frame(width*game.StripWidth, viewRows*PixelsPerRow)
	v.drawWalls(frame, viewRows)
	v.drawEnemies(frame, width, viewRows)
	v.drawOverlays(width, viewRows)
	v.drawStatus(width, height-1)
	v.screen.Show()
}

func (v *View) drawWalls(frame game.Frame, viewRows int) {
	horizon := frame.Horizon()
	for col, strip := range frame.Strips {
		top := int(math.Floor(strip.Top / PixelsPerRow))
		bottom := int(math.Ceil((strip.Top + strip.Height) / PixelsPerRow))
		wall := tcell.StyleDefault.
			Foreground(tcell.NewRGBColor(int32(strip.Shade)*2, int32(strip.Shade)*2, int32(strip.Shade)*2)).
			Background(tcell.NewRGBColor(int32(strip.Shade), int32(strip.Shade), int32(strip.Shade)))
		glyph := shadeRune(strip.Brightness)
		for row := 0; row < viewRows; row++ {
			switch {
			case row >= top && row < bottom:
				v.screen.SetContent(col, row, glyph, nil, wall)
			case row*PixelsPerRow < horizon:
				v.screen.SetContent(col, row, ' ', nil, skyStyle)
			default:
				v.screen.SetContent(col, row, ' ', nil, floorStyle)
			}
		}
	}
}

func (v *View) drawEnemies(frame game.Frame, width, viewRows int) {
	for _, s := range frame.Sprites {
		left := int(math.Floor((s.CenterX - s.Width/2) / game.StripWidth))
		right := int(math.Ceil((s.CenterX + s.Width/2) / game.StripWidth))
		top := int(math.Floor(s.Top / PixelsPerRow))
		bottom := int(math.Ceil((s.Top + s.Height) / PixelsPerRow))
		for x := max(left, 0); x < min(right, width); x++ {
			for y := max(top, 0); y < min(bottom, viewRows); y++ {
				v.screen.SetContent(x, y, '█', nil, enemyStyle)
			}
		}
	}
}

func (v *View) drawOverlays(width, viewRows int) {
	cx, cy := width/2, viewRows/2
	v.screen.SetContent(cx, cy, '+', nil, crossStyle)

	if v.session.OverlayActive(game.MuzzleFlash) {
		for dx := -2; dx <= 2; dx++ {
			v.screen.SetContent(cx+dx, viewRows-1, '*', nil, flashStyle)
		}
		v.screen.SetContent(cx, viewRows-2, '*', nil, flashStyle)
	}
	if v.session.OverlayActive(game.HitMarker) {
		v.drawText(cx-2, viewRows*2/5, "HIT!", hitStyle, width)
	}
	if v.session.State() == game.NotStarted {
		msg := "Click or press Enter to start - WASD move, mouse or ,/. turn, R reload"
		v.drawText(max((width-len(msg))/2, 0), cy-2, msg, statusStyle, width)
	}
}

func (v *View) drawStatus(width, row int) {
	for x := 0; x < width; x++ {
		v.screen.SetContent(x, row, ' ', nil, statusStyle)
	}
	v.drawText(1, row, v.session.HUD().String(), statusStyle, width)
}

func (v *View) drawText(x, y int, text string, style tcell.Style, width int) {
	for _, r := range text {
		if x >= width {
			return
		}
		if x >= 0 {
			v.screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

func shadeRune(brightness float64) rune {
	i := int((brightness - game.MinBrightness) / (1 - game.MinBrightness) * float64(len(shadeRunes)))
	if i < 0 {
		i = 0
	}
	if i >= len(shadeRunes) {
		i = len(shadeRunes) - 1
	}
	return shadeRunes[i]
}

func rgb(color uint32) tcell.Color {
	return tcell.NewRGBColor(int32(color>>24&0xFF), int32(color>>16&0xFF), int32(color>>8&0xFF))
}
