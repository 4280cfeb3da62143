/*
 * Copyright (C) 2023 by Jason Figge
 */

package game

import (
	"math"
	"testing"
)

func TestRenderFrameStrips(t *testing.T) {
	m := DefaultMap()
	p := Player{X: 400, Y: 300}
	cam := DefaultCamera()
	f := RenderFrame(p, m, nil, 640, 480, cam)
	if len(f.Strips) != 320 {
		t.Fatalf("strips = %d, want 320", len(f.Strips))
	}
	if f.Horizon() != 240 {
		t.Fatalf("horizon = %d, want 240", f.Horizon())
	}
	for i, s := range f.Strips {
		if s.X != i*StripWidth || s.Width != StripWidth {
			t.Fatalf("strip %d at x=%d width=%d", i, s.X, s.Width)
		}
		if s.Distance < 0 || s.Distance > cam.ViewDistance {
			t.Fatalf("strip %d distance %v out of range", i, s.Distance)
		}
		want := ProjectedHeight(m.CellSize(), 480, s.Distance)
		if math.Abs(s.Height-want) > 1e-9 {
			t.Fatalf("strip %d height %v, want %v", i, s.Height, want)
		}
		if math.Abs(s.Top-(480-s.Height)/2) > 1e-9 {
			t.Fatalf("strip %d not centred on the horizon", i)
		}
		if s.Brightness < MinBrightness || s.Brightness > 1 {
			t.Fatalf("strip %d brightness %v", i, s.Brightness)
		}
		if s.Shade != uint8(math.Floor(100*s.Brightness)) {
			t.Fatalf("strip %d shade %d for brightness %v", i, s.Shade, s.Brightness)
		}
	}
}

func TestRenderFrameFirstRay(t *testing.T) {
	m := DefaultMap()
	p := Player{X: 75, Y: 75, Angle: math.Pi}
	f := RenderFrame(p, m, nil, 2, 100, DefaultCamera())
	if len(f.Strips) != 1 {
		t.Fatalf("strips = %d, want 1", len(f.Strips))
	}
	s := f.Strips[0]
	want := CastRay(75, 75, p.Angle-DefaultCamera().FOV/2, m, DefaultViewDistance, DefaultRayStep)
	if s.Distance != want {
		t.Fatalf("distance = %v, want %v", s.Distance, want)
	}
}

func TestRenderFrameOddWidthCoversLastColumn(t *testing.T) {
	m := DefaultMap()
	p := Player{X: 400, Y: 300}
	cam := DefaultCamera()
	f := RenderFrame(p, m, nil, 1201, 600, cam)
	if len(f.Strips) != 601 {
		t.Fatalf("strips = %d, want 601", len(f.Strips))
	}
	last := f.Strips[len(f.Strips)-1]
	if last.X != 1200 {
		t.Fatalf("last strip x = %d, want 1200", last.X)
	}
	step := cam.FOV / 600.5
	want := CastRay(p.X, p.Y, p.Angle-cam.FOV/2+600*step, m, cam.ViewDistance, cam.RayStep)
	if last.Distance != want {
		t.Fatalf("last strip distance = %v, want %v", last.Distance, want)
	}

	even := RenderFrame(p, m, nil, 1200, 600, cam)
	if len(even.Strips) != 600 || even.Strips[599].X != 1198 {
		t.Fatalf("even width: %d strips, last at %d", len(even.Strips), even.Strips[len(even.Strips)-1].X)
	}
}

func TestBrightness(t *testing.T) {
	tests := []struct {
		distance float64
		want     float64
	}{
		{0, 1},
		{400, 0.5},
		{560, 0.3},
		{800, 0.3},
	}
	for _, tt := range tests {
		if got := Brightness(tt.distance, 800); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Brightness(%v) = %v, want %v", tt.distance, got, tt.want)
		}
	}
}

func TestProjectedHeightAtZeroDistance(t *testing.T) {
	h := ProjectedHeight(50, 600, 0)
	if math.IsInf(h, 0) || math.IsNaN(h) || h <= 0 {
		t.Fatalf("ProjectedHeight at zero distance = %v", h)
	}
}

func TestRenderFrameProjectsEnemies(t *testing.T) {
	m := DefaultMap()
	p := Player{X: 400, Y: 300}
	ahead := NewEnemy(500, 300)
	farther := NewEnemy(700, 310)
	behind := NewEnemy(300, 300)
	dead := NewEnemy(450, 300)
	dead.Alive = false

	f := RenderFrame(p, m, []*Enemy{ahead, behind, dead, farther}, 800, 600, DefaultCamera())
	if len(f.Sprites) != 2 {
		t.Fatalf("sprites = %d, want 2", len(f.Sprites))
	}
	if f.Sprites[0].Enemy != 3 || f.Sprites[1].Enemy != 0 {
		t.Fatalf("sprites not ordered farthest first: %+v", f.Sprites)
	}
	s := f.Sprites[1]
	if s.CenterX != 400 {
		t.Fatalf("centre x = %v, want 400", s.CenterX)
	}
	if s.Height != 300 || s.Width != 150 {
		t.Fatalf("size = %vx%v, want 150x300", s.Width, s.Height)
	}
	if s.Top != 150 {
		t.Fatalf("top = %v, want 150", s.Top)
	}
}

func TestRenderFrameEnemyScreenOffset(t *testing.T) {
	m := DefaultMap()
	p := Player{X: 400, Y: 300}
	cam := DefaultCamera()
	offset := cam.FOV / 4
	e := NewEnemy(400+100*math.Cos(offset), 300+100*math.Sin(offset))
	f := RenderFrame(p, m, []*Enemy{e}, 800, 600, cam)
	if len(f.Sprites) != 1 {
		t.Fatalf("sprites = %d, want 1", len(f.Sprites))
	}
	if math.Abs(f.Sprites[0].CenterX-600) > 1e-6 {
		t.Fatalf("centre x = %v, want 600", f.Sprites[0].CenterX)
	}
}

func TestRenderFrameEmptyViewport(t *testing.T) {
	f := RenderFrame(Player{X: 400, Y: 300}, DefaultMap(), []*Enemy{NewEnemy(500, 300)}, 0, 600, DefaultCamera())
	if len(f.Strips) != 0 || len(f.Sprites) != 0 {
		t.Fatalf("empty viewport produced %d strips and %d sprites", len(f.Strips), len(f.Sprites))
	}
}
