/*
 * Copyright (C) 2023 by Jason Figge
 */

package game

import "math"

const (
	DefaultMaxAmmo   = 30
	DefaultRange     = 500
	DefaultAccuracy  = 0.1
	DefaultKillScore = 100
)

type Ammo struct {
	Current int
	Max     int
}

func (a Ammo) Empty() bool { return a.Current <= 0 }

// Weapon describes the hit-scan test applied by Shoot.
type Weapon struct {
	Range     float64
	Accuracy  float64
	KillScore int
}

func DefaultWeapon() Weapon {
	return Weapon{Range: DefaultRange, Accuracy: DefaultAccuracy, KillScore: DefaultKillScore}
}

// Hit records one enemy struck by a shot.
type Hit struct {
	Enemy    *Enemy
	Index    int
	Distance float64
	Killed   bool
}

// ShotResult is everything a single trigger pull changed.
type ShotResult struct {
	Fired bool
	Hits  []Hit
	Score int
}

func (r ShotResult) Kills() int {
	n := 0
	for _, h := range r.Hits {
		if h.Killed {
			n++
		}
	}
	return n
}

// Shoot fires one round. With no ammo nothing changes. Otherwise every
// living enemy inside the weapon's range and angular cone loses one health
// point; walls do not block the shot and one round may hit several enemies.
func Shoot(p Player, enemies []*Enemy, ammo Ammo, w Weapon) (Ammo, ShotResult) {
	var result ShotResult
	if ammo.Empty() {
		return ammo, result
	}
	ammo.Current--
	result.Fired = true

	for i, e := range enemies {
		if e == nil || !e.Alive {
			continue
		}
		distance, offset := p.Bearing(e.X, e.Y)
		if distance < w.Range && math.Abs(offset) < w.Accuracy {
			killed := e.Damage(1)
			if killed {
				result.Score += w.KillScore
			}
			result.Hits = append(result.Hits, Hit{Enemy: e, Index: i, Distance: distance, Killed: killed})
		}
	}
	return ammo, result
}

// Reload refills the magazine regardless of how many rounds are left.
func Reload(ammo Ammo) Ammo {
	ammo.Current = ammo.Max
	return ammo
}
