//go:build js && wasm

/*
 * Copyright (C) 2023 by Jason Figge
 */

// Command gunweb runs the game in a browser canvas.
package main

import (
	"fmt"
	"syscall/js"
	"time"

	"github.com/rs/zerolog"

	"gungame/internal/audio"
	"gungame/internal/game"
	"gungame/internal/logging"
)

const (
	canvasID = "gameCanvas"

	crosshairLen = 8
)

var movementKeys = map[string]game.Key{
	"KeyW": game.KeyForward,
	"KeyS": game.KeyBack,
	"KeyA": game.KeyStrafeLeft,
	"KeyD": game.KeyStrafeRight,
}

type webGame struct {
	session   *game.Session
	input     game.Input
	sounds    *audio.SoundManager
	log       zerolog.Logger
	window    js.Value
	document  js.Value
	canvas    js.Value
	ctx       js.Value
	hud       game.HUD
	callbacks []js.Func
	frame     js.Func

	instructions  js.Value
	overlayLayer  js.Value
	overlayCounts [2]int
}

func main() {
	log := logging.Console("gunweb", false)

	session, err := game.NewSession(game.DefaultConfig(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create session")
	}

	document := js.Global().Get("document")
	canvas := document.Call("getElementById", canvasID)
	for _, id := range []string{canvasID, "instructions", "overlays"} {
		if el := document.Call("getElementById", id); el.IsNull() || el.IsUndefined() {
			log.Fatal().Str("id", id).Msg("element not found")
		}
	}

	g := &webGame{
		session:  session,
		sounds:   audio.NewSoundManager(),
		log:      log,
		window:   js.Global(),
		document: document,
		canvas:   canvas,
		ctx:      canvas.Call("getContext", "2d"),
		hud:      game.HUD{Health: -1},

		instructions: document.Call("getElementById", "instructions"),
		overlayLayer: document.Call("getElementById", "overlays"),
	}
	g.bindViewport()
	g.bind()
	g.frame = js.FuncOf(func(js.Value, []js.Value) any {
		g.tick()
		js.Global().Call("requestAnimationFrame", g.frame)
		return nil
	})
	js.Global().Call("requestAnimationFrame", g.frame)

	select {}
}

func (g *webGame) on(target js.Value, event string, fn func(js.Value)) {
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		fn(args[0])
		return nil
	})
	g.callbacks = append(g.callbacks, cb)
	target.Call("addEventListener", event, cb)
}

// sizeCanvas matches the drawing buffer to the viewport, so one ray is cast
// per two device-independent pixels of the window.
func (g *webGame) sizeCanvas() {
	width, height := g.window.Get("innerWidth").Int(), g.window.Get("innerHeight").Int()
	g.canvas.Set("width", width)
	g.canvas.Set("height", height)
	g.log.Debug().Int("width", width).Int("height", height).Msg("canvas sized")
}

// bindViewport sizes the canvas now and again on every window resize.
func (g *webGame) bindViewport() {
	g.sizeCanvas()
	g.on(g.window, "resize", func(js.Value) {
		g.sizeCanvas()
	})
}

func (g *webGame) bind() {
	g.on(g.canvas, "mousedown", func(e js.Value) {
		if e.Get("button").Int() != 0 {
			return
		}
		if !g.input.PointerLocked() {
			g.canvas.Call("requestPointerLock")
		}
		if err := g.sounds.Initialize(); err != nil {
			g.log.Debug().Err(err).Msg("sound unavailable")
		}
		g.input.Click()
	})
	g.on(g.document, "pointerlockchange", func(js.Value) {
		locked := g.document.Get("pointerLockElement").Equal(g.canvas)
		g.input.SetPointerLock(locked)
		if !locked {
			g.input.ReleaseAll()
		}
	})
	g.on(g.document, "mousemove", func(e js.Value) {
		g.input.Look(e.Get("movementX").Float())
	})
	g.on(g.document, "keydown", func(e js.Value) {
		code := e.Get("code").String()
		if k, ok := movementKeys[code]; ok {
			g.input.SetKey(k, true)
			return
		}
		if code == "KeyR" && !e.Get("repeat").Bool() {
			g.input.Reload()
		}
	})
	g.on(g.document, "keyup", func(e js.Value) {
		if k, ok := movementKeys[e.Get("code").String()]; ok {
			g.input.SetKey(k, false)
		}
	})
}

func (g *webGame) tick() {
	ev := g.session.Step(time.Now(), g.input.Snapshot())
	g.sounds.Handle(ev)
	if ev.Started {
		g.log.Info().Str("session", g.session.ID).Msg("started")
		g.instructions.Get("classList").Call("add", "hidden")
	}
	g.draw()
	g.syncOverlays()
	if hud := g.session.HUD(); hud != g.hud {
		g.hud = hud
		g.setText("healthValue", hud.HealthText())
		g.setText("ammoValue", hud.AmmoText())
		g.setText("scoreValue", hud.ScoreText())
	}
}

func (g *webGame) draw() {
	width := g.canvas.Get("width").Int()
	height := g.canvas.Get("height").Int()
	frame := g.session.Frame(width, height)
	horizon := float64(frame.Horizon())

	g.fill(game.SkyColor, 0, 0, float64(width), horizon)
	g.fill(game.FloorColor, 0, horizon, float64(width), float64(height)-horizon)
	for _, s := range frame.Strips {
		g.ctx.Set("fillStyle", fmt.Sprintf("rgb(%d,%d,%d)", s.Shade, s.Shade, s.Shade))
		g.ctx.Call("fillRect", s.X, s.Top, s.Width, s.Height)
	}
	for _, s := range frame.Sprites {
		g.fill(game.EnemyColor, s.CenterX-s.Width/2, s.Top, s.Width, s.Height)
	}

	cx, cy := float64(width)/2, float64(height)/2
	g.ctx.Set("strokeStyle", "rgba(255,255,255,0.75)")
	g.ctx.Call("beginPath")
	g.ctx.Call("moveTo", cx-crosshairLen, cy)
	g.ctx.Call("lineTo", cx+crosshairLen, cy)
	g.ctx.Call("moveTo", cx, cy-crosshairLen)
	g.ctx.Call("lineTo", cx, cy+crosshairLen)
	g.ctx.Call("stroke")
}

// syncOverlays rebuilds the overlay elements whenever the set of live
// overlays changes. Each element carries its kind as the CSS class.
func (g *webGame) syncOverlays() {
	overlays := g.session.Overlays()
	var counts [2]int
	for _, o := range overlays {
		counts[o.Kind]++
	}
	if counts == g.overlayCounts {
		return
	}
	g.overlayCounts = counts
	g.overlayLayer.Set("innerHTML", "")
	for _, o := range overlays {
		el := g.document.Call("createElement", "div")
		el.Set("className", o.Kind.String())
		if o.Kind == game.HitMarker {
			el.Set("textContent", "HIT!")
		}
		g.overlayLayer.Call("appendChild", el)
	}
}

func (g *webGame) fill(color uint32, x, y, w, h float64) {
	g.ctx.Set("fillStyle", fmt.Sprintf("rgba(%d,%d,%d,%.3f)", color>>24&0xFF, color>>16&0xFF, color>>8&0xFF, float64(color&0xFF)/255))
	g.ctx.Call("fillRect", x, y, w, h)
}

func (g *webGame) setText(id, text string) {
	if el := g.document.Call("getElementById", id); !el.IsNull() && !el.IsUndefined() {
		el.Set("textContent", text)
	}
}
