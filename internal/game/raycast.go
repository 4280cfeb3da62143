/*
 * Copyright (C) 2023 by Jason Figge
 */

package game

import "math"

const (
	DefaultRayStep      = 1
	DefaultViewDistance = 800
)

// CastRay marches from (ox, oy) along angle in fixed steps and returns the
// first marched distance whose sample point is inside a wall, or
// maxDistance when nothing is hit. The result is never refined below the
// step size.
func CastRay(ox, oy, angle float64, m *Map, maxDistance, step float64) float64 {
	if step <= 0 {
		step = DefaultRayStep
	}
	if maxDistance <= 0 {
		return 0
	}
	dx, dy := math.Cos(angle), math.Sin(angle)
	for distance := 0.0; distance < maxDistance; distance += step {
		if m.IsWall(ox+dx*distance, oy+dy*distance) {
			return distance
		}
	}
	return maxDistance
}
