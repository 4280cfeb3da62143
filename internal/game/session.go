/*
 * Copyright (C) 2023 by Jason Figge
 */

package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type State int

const (
	NotStarted State = iota
	Started
)

func (s State) String() string {
	if s == Started {
		return "started"
	}
	return "not-started"
}

// Events reports what a single Step changed, for sound and logging.
type Events struct {
	Started  bool
	Reloaded bool
	DryFire  bool
	Shot     ShotResult
}

// Session owns all mutable game state. It is driven by one frame loop and
// is not safe for concurrent use; frontends feed it through Input.
type Session struct {
	ID string

	cfg      Config
	world    *Map
	camera   Camera
	weapon   Weapon
	player   Player
	enemies  []*Enemy
	ammo     Ammo
	score    int
	health   int
	state    State
	overlays Overlays
	log      zerolog.Logger
}

func NewSession(cfg Config, log zerolog.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	world, err := cfg.BuildMap()
	if err != nil {
		return nil, fmt.Errorf("build map: %w", err)
	}
	s := &Session{
		ID:     uuid.NewString(),
		cfg:    cfg,
		world:  world,
		camera: cfg.BuildCamera(),
		weapon: cfg.BuildWeapon(),
		player: Player{
			X:     cfg.Player.Start.X,
			Y:     cfg.Player.Start.Y,
			Angle: cfg.Player.Angle,
			Speed: cfg.Player.Speed,
		},
		ammo:   Ammo{Current: cfg.Weapon.MaxAmmo, Max: cfg.Weapon.MaxAmmo},
		health: cfg.Health,
	}
	for _, p := range cfg.Enemies {
		s.enemies = append(s.enemies, NewEnemy(p.X, p.Y))
	}
	s.log = log.With().Str("session", s.ID).Logger()
	return s, nil
}

func (s *Session) Config() Config    { return s.cfg }
func (s *Session) State() State      { return s.state }
func (s *Session) Player() Player    { return s.player }
func (s *Session) Map() *Map         { return s.world }
func (s *Session) Camera() Camera    { return s.camera }
func (s *Session) Ammo() Ammo        { return s.ammo }
func (s *Session) Score() int        { return s.score }
func (s *Session) Enemies() []*Enemy { return s.enemies }

func (s *Session) HUD() HUD {
	return HUD{Health: s.health, Ammo: s.ammo.Current, MaxAmmo: s.ammo.Max, Score: s.score}
}

func (s *Session) Overlays() []Overlay              { return s.overlays.Entries() }
func (s *Session) OverlayActive(k OverlayKind) bool { return s.overlays.Active(k) }

// Start moves the session to Started. It reports false when the session
// had already started.
func (s *Session) Start() bool {
	if s.state == Started {
		return false
	}
	s.state = Started
	s.log.Info().Msg("game started")
	return true
}

// Step advances the session by one frame.
func (s *Session) Step(now time.Time, in Snapshot) Events {
	var ev Events
	defer s.overlays.Prune(now)

	fire := false
	if in.Click {
		if s.state == NotStarted {
			ev.Started = s.Start()
		} else {
			fire = true
		}
	}
	if s.state != Started {
		return ev
	}

	if in.PointerLocked && in.LookDX != 0 {
		s.player.Turn(in.LookDX * s.cfg.MouseSensitivity)
	}
	s.player = ResolveMovement(in, s.player, s.world)

	if in.Reload {
		ev.Reloaded = s.Reload()
	}
	if fire {
		if s.ammo.Empty() {
			ev.DryFire = true
		} else {
			ev.Shot = s.Shoot(now)
		}
	}
	return ev
}

// Shoot fires one round and schedules the matching overlays.
func (s *Session) Shoot(now time.Time) ShotResult {
	var result ShotResult
	s.ammo, result = Shoot(s.player, s.enemies, s.ammo, s.weapon)
	if !result.Fired {
		return result
	}
	s.overlays.Add(MuzzleFlash, now, s.cfg.Effects.MuzzleFlash)
	for _, h := range result.Hits {
		s.overlays.Add(HitMarker, now, s.cfg.Effects.HitMarker)
		if h.Killed {
			s.log.Info().Int("enemy", h.Index).Float64("distance", h.Distance).Msg("enemy killed")
		}
	}
	s.score += result.Score
	return result
}

// Reload refills ammo. It only has an effect once the game has started.
func (s *Session) Reload() bool {
	if s.state != Started {
		return false
	}
	s.ammo = Reload(s.ammo)
	s.log.Debug().Int("ammo", s.ammo.Current).Msg("reloaded")
	return true
}

func (s *Session) Frame(width, height int) Frame {
	return RenderFrame(s.player, s.world, s.enemies, width, height, s.camera)
}
