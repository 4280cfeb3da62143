/*
 * Copyright (C) 2023 by Jason Figge
 */

package internal

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"github.com/veandco/go-sdl2/sdl"

	"gungame/internal/audio"
	"gungame/internal/game"
	"gungame/internal/graphics"
	"gungame/internal/graphics/fonts"
)

const (
	Crosshair  = uint32(0xFFFFFFC0)
	FlashColor = uint32(0xFFF2A040)
	FlashCore  = uint32(0xFFFFFFC0)
	HitColor   = uint32(0xFF3030FF)
	HUDColor   = uint32(0xFFFFFFFF)
	ShadeColor = uint32(0x00000090)

	HUDScale     = 3
	MarkerScale  = 6
	BannerScale  = 4
	CrosshairLen = 8
)

var movementKeys = []struct {
	code sdl.Scancode
	key  game.Key
}{
	{sdl.SCANCODE_W, game.KeyForward},
	{sdl.SCANCODE_S, game.KeyBack},
	{sdl.SCANCODE_A, game.KeyStrafeLeft},
	{sdl.SCANCODE_D, game.KeyStrafeRight},
}

// Controller connects an SDL window to a game session. Event callbacks only
// write to input; OnUpdate steps the session once per frame.
type Controller struct {
	graphics.BaseHandler
	graphics.CoreMethods
	session *game.Session
	input   game.Input
	sounds  *audio.SoundManager
	log     zerolog.Logger
	window  *sdl.Window
	width   int32
	height  int32
	hud     game.HUD
	now     func() time.Time
}

func NewController(session *game.Session, sounds *audio.SoundManager, log zerolog.Logger, width, height int32) *Controller {
	return &Controller{
		session: session,
		sounds:  sounds,
		log:     log,
		width:   width,
		height:  height,
		now:     time.Now,
	}
}

func (c *Controller) Init(canvas *graphics.Canvas) {
	c.window = canvas.Window()
	graphics.ErrorTrap(canvas.Renderer().SetDrawBlendMode(sdl.BLENDMODE_BLEND))
	if w, h, err := canvas.Renderer().GetOutputSize(); err == nil {
		c.width, c.height = w, h
	}
	c.AddDestroyer(func() { sdl.SetRelativeMouseMode(false) })
	c.updateTitle()
}

func (c *Controller) OnResize(width, height int32) {
	c.width, c.height = width, height
	c.log.Debug().Int32("width", width).Int32("height", height).Msg("resized")
}

func (c *Controller) Events(event sdl.Event) bool {
	processed := false
	switch e := event.(type) {
	case *sdl.MouseButtonEvent:
		processed = c.mouseButtonEvent(e)
	case *sdl.MouseMotionEvent:
		processed = c.mouseMotionEvent(e)
	case *sdl.KeyboardEvent:
		processed = c.keyboardEvent(e)
	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_FOCUS_LOST {
			c.input.ReleaseAll()
			c.setPointerLock(false)
			processed = true
		}
	}
	return processed
}

func (c *Controller) OnUpdate() {
	codes := sdl.GetKeyboardState()
	for _, m := range movementKeys {
		c.input.SetKey(m.key, int(m.code) < len(codes) && codes[m.code] == 1)
	}

	ev := c.session.Step(c.now(), c.input.Snapshot())
	c.sounds.Handle(ev)
	if ev.Started {
		c.log.Info().Str("session", c.session.ID).Msg("started")
	}
	if hud := c.session.HUD(); hud != c.hud {
		c.hud = hud
		c.updateTitle()
	}
}

func (c *Controller) OnDraw(renderer *sdl.Renderer) {
	graphics.ErrorTrap(c.Clear(renderer, 0x000000))
	frame := c.session.Frame(int(c.width), int(c.height))
	c.drawBackground(renderer, frame)
	c.drawWalls(renderer, frame)
	c.drawEnemies(renderer, frame)
	c.drawOverlays(renderer)
	c.drawHUD(renderer)
	if c.session.State() == game.NotStarted {
		c.drawInstructions(renderer)
	}
	graphics.ErrorTrap(c.WriteFrameRate(renderer, c.width-fonts.Width("FPS 000", 2)-8, 8))
}

func (c *Controller) drawBackground(renderer *sdl.Renderer, frame game.Frame) {
	horizon := int32(frame.Horizon())
	setColor(renderer, game.SkyColor)
	graphics.ErrorTrap(renderer.FillRect(&sdl.Rect{X: 0, Y: 0, W: c.width, H: horizon}))
	setColor(renderer, game.FloorColor)
	graphics.ErrorTrap(renderer.FillRect(&sdl.Rect{X: 0, Y: horizon, W: c.width, H: c.height - horizon}))
}

func (c *Controller) drawWalls(renderer *sdl.Renderer, frame game.Frame) {
	for _, strip := range frame.Strips {
		graphics.ErrorTrap(renderer.SetDrawColor(strip.Shade, strip.Shade, strip.Shade, 0xFF))
		graphics.ErrorTrap(renderer.FillRectF(stripRect(strip)))
	}
}

func (c *Controller) drawEnemies(renderer *sdl.Renderer, frame game.Frame) {
	setColor(renderer, game.EnemyColor)
	for _, sprite := range frame.Sprites {
		graphics.ErrorTrap(renderer.FillRectF(spriteRect(sprite)))
	}
}

func (c *Controller) drawOverlays(renderer *sdl.Renderer) {
	cx, cy := c.width/2, c.height/2

	setColor(renderer, Crosshair)
	graphics.ErrorTrap(renderer.DrawLine(cx-CrosshairLen, cy, cx+CrosshairLen, cy))
	graphics.ErrorTrap(renderer.DrawLine(cx, cy-CrosshairLen, cx, cy+CrosshairLen))

	if alpha := c.flashAlpha(c.now()); alpha > 0 {
		setColor(renderer, FlashColor&^0xFF|uint32(alpha))
		graphics.ErrorTrap(renderer.FillRect(&sdl.Rect{X: 0, Y: 0, W: c.width, H: c.height}))
		size := int32(math.Min(float64(c.width), float64(c.height)) / 6)
		setColor(renderer, FlashCore)
		graphics.ErrorTrap(renderer.FillRect(&sdl.Rect{X: cx - size/2, Y: c.height - size, W: size, H: size}))
	}
	if c.session.OverlayActive(game.HitMarker) {
		setColor(renderer, HitColor)
		text := "HIT!"
		x := cx - fonts.Width(text, MarkerScale)/2
		y := c.height*2/5 - fonts.Height(MarkerScale)/2
		graphics.ErrorTrap(fonts.Write(renderer, text, x, y, MarkerScale))
	}
}

// flashAlpha fades the muzzle flash tint out over the flash lifetime.
func (c *Controller) flashAlpha(now time.Time) uint8 {
	ttl := c.session.Config().Effects.MuzzleFlash
	if ttl <= 0 {
		return 0
	}
	var left time.Duration
	for _, o := range c.session.Overlays() {
		if o.Kind == game.MuzzleFlash && o.Expires.Sub(now) > left {
			left = o.Expires.Sub(now)
		}
	}
	if left <= 0 {
		return 0
	}
	left = min(left, ttl)
	return uint8(graphics.FMap(float32(left), 0, float32(ttl), 0, float32(FlashColor&0xFF)))
}

func (c *Controller) drawHUD(renderer *sdl.Renderer) {
	hud := c.session.HUD()
	text := fmt.Sprintf("HEALTH %s  AMMO %s  SCORE %s", hud.HealthText(), hud.AmmoText(), hud.ScoreText())
	y := c.height - fonts.Height(HUDScale) - 12
	setColor(renderer, ShadeColor)
	graphics.ErrorTrap(renderer.FillRect(&sdl.Rect{X: 0, Y: y - 8, W: fonts.Width(text, HUDScale) + 24, H: fonts.Height(HUDScale) + 20}))
	setColor(renderer, HUDColor)
	graphics.ErrorTrap(fonts.Write(renderer, text, 12, y, HUDScale))
}

func (c *Controller) drawInstructions(renderer *sdl.Renderer) {
	setColor(renderer, ShadeColor)
	graphics.ErrorTrap(renderer.FillRect(&sdl.Rect{X: 0, Y: 0, W: c.width, H: c.height}))
	setColor(renderer, HUDColor)
	lines := []string{"CLICK TO START", "WASD MOVE - MOUSE LOOK", "CLICK SHOOT - R RELOAD - M MUTE"}
	y := c.height/2 - int32(len(lines))*fonts.Height(BannerScale)
	for _, line := range lines {
		x := c.width/2 - fonts.Width(line, BannerScale)/2
		graphics.ErrorTrap(fonts.Write(renderer, line, x, y, BannerScale))
		y += fonts.Height(BannerScale) * 2
	}
}

func (c *Controller) updateTitle() {
	if c.window != nil {
		c.window.SetTitle("Gun Game - " + c.session.HUD().String())
	}
}

func (c *Controller) setPointerLock(locked bool) {
	sdl.SetRelativeMouseMode(locked)
	c.input.SetPointerLock(locked)
}

func (c *Controller) mouseButtonEvent(event *sdl.MouseButtonEvent) bool {
	if event.State != sdl.PRESSED || event.Button != sdl.BUTTON_LEFT {
		return false
	}
	if !c.input.PointerLocked() {
		c.setPointerLock(true)
	}
	c.input.Click()
	return true
}

func (c *Controller) mouseMotionEvent(event *sdl.MouseMotionEvent) bool {
	if event.XRel == 0 {
		return false
	}
	c.input.Look(float64(event.XRel))
	return true
}

func (c *Controller) keyboardEvent(event *sdl.KeyboardEvent) bool {
	if event.State != sdl.PRESSED {
		return false
	}
	switch event.Keysym.Scancode {
	case sdl.SCANCODE_Q:
		c.Quit()
	case sdl.SCANCODE_ESCAPE:
		c.setPointerLock(false)
	case sdl.SCANCODE_R:
		if event.Repeat == 0 {
			c.input.Reload()
		}
	case sdl.SCANCODE_M:
		if event.Repeat == 0 {
			c.sounds.SetMuted(!c.sounds.Muted())
		}
	default:
		return false
	}
	return true
}

func setColor(renderer *sdl.Renderer, color uint32) {
	graphics.ErrorTrap(renderer.SetDrawColor(uint8(color>>24), uint8(color>>16), uint8(color>>8), uint8(color)))
}

func stripRect(strip game.Strip) *sdl.FRect {
	return &sdl.FRect{
		X: float32(strip.X),
		Y: float32(strip.Top),
		W: float32(strip.Width),
		H: float32(strip.Height),
	}
}

func spriteRect(sprite game.Sprite) *sdl.FRect {
	return &sdl.FRect{
		X: float32(sprite.CenterX - sprite.Width/2),
		Y: float32(sprite.Top),
		W: float32(sprite.Width),
		H: float32(sprite.Height),
	}
}
