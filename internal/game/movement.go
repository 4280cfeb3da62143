/*
 * Copyright (C) 2023 by Jason Figge
 */

package game

import "math"

// ResolveMovement applies the held movement keys to p and returns the new
// player. Each held key contributes a full speed step, so two keys held
// together move further than one. X is committed before Y and each axis is
// only committed when the resulting point is open, which lets the player
// slide along walls.
func ResolveMovement(in Snapshot, p Player, m *Map) Player {
	newX, newY := p.X, p.Y
	if in.Pressed(KeyForward) {
		newX += math.Cos(p.Angle) * p.Speed
		newY += math.Sin(p.Angle) * p.Speed
	}
	if in.Pressed(KeyBack) {
		newX -= math.Cos(p.Angle) * p.Speed
		newY -= math.Sin(p.Angle) * p.Speed
	}
	if in.Pressed(KeyStrafeLeft) {
		newX += math.Cos(p.Angle-math.Pi/2) * p.Speed
		newY += math.Sin(p.Angle-math.Pi/2) * p.Speed
	}
	if in.Pressed(KeyStrafeRight) {
		newX += math.Cos(p.Angle+math.Pi/2) * p.Speed
		newY += math.Sin(p.Angle+math.Pi/2) * p.Speed
	}

	if !m.IsWall(newX, p.Y) {
		p.X = newX
	}
	if !m.IsWall(p.X, newY) {
		p.Y = newY
	}
	return p
}
