/*
 * Copyright (C) 2023 by Jason Figge
 */

package game

import (
	"math"
	"sort"
)

const (
	SkyColor   = uint32(0x87CEEBFF)
	FloorColor = uint32(0x654321FF)
	EnemyColor = uint32(0xFF0000FF)

	StripWidth    = 2
	MinBrightness = 0.3
	WallShade     = 100

	minDistance = 1e-3
)

// Camera holds the projection parameters shared by every frame.
type Camera struct {
	FOV          float64
	ViewDistance float64
	RayStep      float64
}

func DefaultCamera() Camera {
	return Camera{FOV: math.Pi / 3, ViewDistance: DefaultViewDistance, RayStep: DefaultRayStep}
}

// Strip is one vertical wall slice.
type Strip struct {
	X          int
	Width      int
	Top        float64
	Height     float64
	Distance   float64
	Brightness float64
	Shade      uint8
}

// Sprite is an enemy projected onto the screen.
type Sprite struct {
	Enemy    int
	CenterX  float64
	Top      float64
	Width    float64
	Height   float64
	Distance float64
}

// Frame is a drawable description of one rendered view. Frontends paint the
// sky and floor halves, then strips, then sprites in slice order.
type Frame struct {
	Width   int
	Height  int
	Strips  []Strip
	Sprites []Sprite
}

// Horizon is the screen row dividing sky from floor.
func (f Frame) Horizon() int { return f.Height / 2 }

// RenderFrame projects the map and enemies as seen by p. One ray is cast
// for every StripWidth pixel columns, rounding up. Sprites are sorted farthest first and
// are never clipped against walls.
func RenderFrame(p Player, m *Map, enemies []*Enemy, width, height int, cam Camera) Frame {
	f := Frame{Width: width, Height: height}
	if width <= 0 || height <= 0 {
		return f
	}
	f.Strips = castStrips(p, m, width, height, cam)
	f.Sprites = projectEnemies(p, m, enemies, width, height, cam)
	return f
}

func castStrips(p Player, m *Map, width, height int, cam Camera) []Strip {
	// An odd width gets one extra ray so the last pixel column is covered;
	// the angle step still spreads the field of view over width/2 rays.
	rays := (width + StripWidth - 1) / StripWidth
	strips := make([]Strip, rays)
	angleStep := cam.FOV / (float64(width) / StripWidth)
	for i := 0; i < rays; i++ {
		angle := p.Angle - cam.FOV/2 + float64(i)*angleStep
		distance := CastRay(p.X, p.Y, angle, m, cam.ViewDistance, cam.RayStep)
		wallHeight := ProjectedHeight(m.CellSize(), height, distance)
		brightness := Brightness(distance, cam.ViewDistance)
		strips[i] = Strip{
			X:          i * StripWidth,
			Width:      StripWidth,
			Top:        (float64(height) - wallHeight) / 2,
			Height:     wallHeight,
			Distance:   distance,
			Brightness: brightness,
			Shade:      uint8(math.Floor(WallShade * brightness)),
		}
	}
	return strips
}

func projectEnemies(p Player, m *Map, enemies []*Enemy, width, height int, cam Camera) []Sprite {
	var sprites []Sprite
	for i, e := range enemies {
		if e == nil || !e.Alive {
			continue
		}
		distance, offset := p.Bearing(e.X, e.Y)
		if math.Abs(offset) >= cam.FOV/2 {
			continue
		}
		size := ProjectedHeight(m.CellSize(), height, distance)
		sprites = append(sprites, Sprite{
			Enemy:    i,
			CenterX:  (offset/cam.FOV + 0.5) * float64(width),
			Top:      (float64(height) - size) / 2,
			Width:    size / 2,
			Height:   size,
			Distance: distance,
		})
	}
	sort.SliceStable(sprites, func(a, b int) bool {
		return sprites[a].Distance > sprites[b].Distance
	})
	return sprites
}

// ProjectedHeight is the on-screen height of a cell-sized object at distance.
func ProjectedHeight(cellSize float64, screenHeight int, distance float64) float64 {
	if distance < minDistance {
		distance = minDistance
	}
	return cellSize * float64(screenHeight) / distance
}

// Brightness fades linearly with distance down to MinBrightness.
func Brightness(distance, viewDistance float64) float64 {
	if viewDistance <= 0 {
		return MinBrightness
	}
	return math.Max(MinBrightness, 1-distance/viewDistance)
}
