/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package graphics runs an SDL window and drives a Handler once per frame.
package graphics

import (
	"fmt"
	"runtime"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"gungame/internal/graphics/fonts"
)

func init() {
	// SDL must be driven from the thread that initialised it.
	runtime.LockOSThread()
}

// Handler receives the window's lifecycle callbacks. Embed BaseHandler and
// CoreMethods to pick up defaults for everything but OnUpdate and OnDraw.
type Handler interface {
	Init(canvas *Canvas)
	Events(event sdl.Event) bool
	OnResize(width, height int32)
	OnUpdate()
	OnDraw(renderer *sdl.Renderer)
	Running() bool
	Quit()
	Destroy()
}

type Canvas struct {
	window   *sdl.Window
	renderer *sdl.Renderer
}

func (c *Canvas) Window() *sdl.Window     { return c.window }
func (c *Canvas) Renderer() *sdl.Renderer { return c.renderer }

// BaseHandler provides no-op callbacks.
type BaseHandler struct{}

func (BaseHandler) Init(*Canvas)                 {}
func (BaseHandler) Events(sdl.Event) bool        { return false }
func (BaseHandler) OnResize(width, height int32) {}

// CoreMethods tracks the run state, cleanup hooks and frame rate.
type CoreMethods struct {
	stopped    bool
	destroyers []func()
	frames     int
	fps        int
	since      time.Time
}

func (c *CoreMethods) Running() bool { return !c.stopped }
func (c *CoreMethods) Quit()         { c.stopped = true }

// AddDestroyer registers fn to run when the window closes.
func (c *CoreMethods) AddDestroyer(fn func()) {
	c.destroyers = append(c.destroyers, fn)
}

func (c *CoreMethods) Destroy() {
	for i := len(c.destroyers) - 1; i >= 0; i-- {
		c.destroyers[i]()
	}
	c.destroyers = nil
}

// Clear fills the whole target with an 0xRRGGBB color.
func (c *CoreMethods) Clear(renderer *sdl.Renderer, color uint32) error {
	if err := renderer.SetDrawColor(uint8(color>>16), uint8(color>>8), uint8(color), 0xFF); err != nil {
		return err
	}
	return renderer.Clear()
}

// WriteFrameRate counts a frame and draws the frames per second measured
// over the last full second.
func (c *CoreMethods) WriteFrameRate(renderer *sdl.Renderer, x, y int32) error {
	now := time.Now()
	if c.since.IsZero() {
		c.since = now
	}
	c.frames++
	if elapsed := now.Sub(c.since); elapsed >= time.Second {
		c.fps = int(float64(c.frames) / elapsed.Seconds())
		c.frames = 0
		c.since = now
	}
	if err := renderer.SetDrawColor(0xFF, 0xFF, 0xFF, 0xC0); err != nil {
		return err
	}
	return fonts.Write(renderer, fmt.Sprintf("FPS %d", c.fps), x, y, 2)
}

// Open creates the window and runs the frame loop until the handler quits
// or the window is closed.
func Open(title string, width, height int32, handler Handler) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height,
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer renderer.Destroy()

	handler.Init(&Canvas{window: window, renderer: renderer})
	defer handler.Destroy()

	for handler.Running() {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				handler.Quit()
			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
					handler.OnResize(e.Data1, e.Data2)
				}
			}
			handler.Events(event)
		}
		handler.OnUpdate()
		handler.OnDraw(renderer)
		renderer.Present()
	}
	return nil
}

// ErrorTrap panics on SDL calls that only fail when the renderer is gone.
func ErrorTrap(err error) {
	if err != nil {
		panic(err)
	}
}

// FMap linearly maps value from [start1, stop1] onto [start2, stop2].
func FMap(value, start1, stop1, start2, stop2 float32) float32 {
	if stop1 == start1 {
		return start2
	}
	return start2 + (stop2-start2)*((value-start1)/(stop1-start1))
}
