/*
 * Copyright (C) 2023 by Jason Figge
 */

package game

import "math"

const (
	PlayerStartX     = 400
	PlayerStartY     = 300
	PlayerSpeed      = 3
	EnemyStartHealth = 3
)

type Player struct {
	X, Y  float64
	Angle float64
	Speed float64
}

// Turn rotates the player by delta radians.
func (p *Player) Turn(delta float64) {
	p.Angle += delta
}

// Bearing returns the distance to (x, y) and the signed angle between the
// player's facing direction and that point, normalized to [-pi, pi].
func (p Player) Bearing(x, y float64) (distance, offset float64) {
	dx := x - p.X
	dy := y - p.Y
	distance = math.Sqrt(dx*dx + dy*dy)
	offset = NormalizeAngle(math.Atan2(dy, dx) - p.Angle)
	return distance, offset
}

type Enemy struct {
	X, Y   float64
	Health int
	Alive  bool
}

func NewEnemy(x, y float64) *Enemy {
	return &Enemy{X: x, Y: y, Health: EnemyStartHealth, Alive: true}
}

// Damage removes n health points and reports whether this call killed the
// enemy. Dead enemies ignore further damage.
func (e *Enemy) Damage(n int) bool {
	if !e.Alive {
		return false
	}
	e.Health -= n
	if e.Health <= 0 {
		e.Alive = false
		return true
	}
	return false
}

// NormalizeAngle wraps a into [-pi, pi].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
