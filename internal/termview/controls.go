/*
 * Copyright (C) 2023 by Jason Figge
 */

package termview

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"gungame/internal/game"
)

const (
	// Terminals report presses and auto-repeats but never releases, so a
	// press holds its key for this long.
	KeyHold = 150 * time.Millisecond

	TurnStep       = 25
	MouseCellWidth = 8
)

// Controls turns terminal events into game input.
type Controls struct {
	input   *game.Input
	expires [game.NumKeys]time.Time
	buttons tcell.ButtonMask
	mouseX  int
	tracked bool
}

func NewControls(input *game.Input) *Controls {
	return &Controls{input: input}
}

// HandleEvent records ev. It returns false when the player asked to quit.
func (c *Controls) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return c.handleKey(e, now)
	case *tcell.EventMouse:
		c.handleMouse(e)
	}
	return true
}

// Expire releases keys whose hold window has passed.
func (c *Controls) Expire(now time.Time) {
	for k, until := range c.expires {
		if !until.IsZero() && !now.Before(until) {
			c.input.SetKey(game.Key(k), false)
			c.expires[k] = time.Time{}
		}
	}
}

func (c *Controls) press(k game.Key, now time.Time) {
	c.input.SetKey(k, true)
	c.expires[k] = now.Add(KeyHold)
}

func (c *Controls) handleKey(e *tcell.EventKey, now time.Time) bool {
	switch e.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		c.press(game.KeyForward, now)
	case tcell.KeyDown:
		c.press(game.KeyBack, now)
	case tcell.KeyLeft:
		c.input.Look(-TurnStep)
	case tcell.KeyRight:
		c.input.Look(TurnStep)
	case tcell.KeyEnter:
		c.input.Click()
	case tcell.KeyRune:
		switch e.Rune() {
		case 'q', 'Q':
			return false
		case 'w', 'W':
			c.press(game.KeyForward, now)
		case 's', 'S':
			c.press(game.KeyBack, now)
		case 'a', 'A':
			c.press(game.KeyStrafeLeft, now)
		case 'd', 'D':
			c.press(game.KeyStrafeRight, now)
		case ',', '<':
			c.input.Look(-TurnStep)
		case '.', '>':
			c.input.Look(TurnStep)
		case 'r', 'R':
			c.input.Reload()
		case ' ':
			c.input.Click()
		}
	}
	return true
}

func (c *Controls) handleMouse(e *tcell.EventMouse) {
	x, _ := e.Position()
	if c.tracked && x != c.mouseX {
		c.input.Look(float64((x - c.mouseX) * MouseCellWidth))
	}
	c.mouseX, c.tracked = x, true

	buttons := e.Buttons()
	if buttons&tcell.Button1 != 0 && c.buttons&tcell.Button1 == 0 {
		c.input.Click()
	}
	c.buttons = buttons
}
