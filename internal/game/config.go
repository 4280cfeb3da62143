/*
 * Copyright (C) 2023 by Jason Figge
 */

package game

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultHealth           = 100
	DefaultFOVDegrees       = 60
	DefaultMouseSensitivity = 0.002
)

var ErrInvalidConfig = errors.New("invalid config")

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type PlayerConfig struct {
	Start Point   `yaml:"start"`
	Angle float64 `yaml:"angle"`
	Speed float64 `yaml:"speed"`
}

type CameraConfig struct {
	FOVDegrees   float64 `yaml:"fov_degrees"`
	ViewDistance float64 `yaml:"view_distance"`
	RayStep      float64 `yaml:"ray_step"`
}

type MapConfig struct {
	CellSize float64 `yaml:"cell_size"`
	Rows     [][]int `yaml:"rows"`
}

type WeaponConfig struct {
	MaxAmmo   int     `yaml:"max_ammo"`
	Range     float64 `yaml:"range"`
	Accuracy  float64 `yaml:"accuracy"`
	KillScore int     `yaml:"kill_score"`
}

type EffectsConfig struct {
	MuzzleFlash time.Duration `yaml:"muzzle_flash"`
	HitMarker   time.Duration `yaml:"hit_marker"`
}

// Config holds every tunable of a session. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	Player           PlayerConfig  `yaml:"player"`
	Camera           CameraConfig  `yaml:"camera"`
	Map              MapConfig     `yaml:"map"`
	Enemies          []Point       `yaml:"enemies"`
	Weapon           WeaponConfig  `yaml:"weapon"`
	Effects          EffectsConfig `yaml:"effects"`
	Health           int           `yaml:"health"`
	MouseSensitivity float64       `yaml:"mouse_sensitivity"`
}

func DefaultConfig() Config {
	return Config{
		Player: PlayerConfig{
			Start: Point{X: PlayerStartX, Y: PlayerStartY},
			Speed: PlayerSpeed,
		},
		Camera: CameraConfig{
			FOVDegrees:   DefaultFOVDegrees,
			ViewDistance: DefaultViewDistance,
			RayStep:      DefaultRayStep,
		},
		Map: MapConfig{
			CellSize: DefaultCellSize,
			Rows:     DefaultRows(),
		},
		Enemies: []Point{
			{X: 200, Y: 200},
			{X: 600, Y: 400},
			{X: 300, Y: 500},
			{X: 700, Y: 200},
		},
		Weapon: WeaponConfig{
			MaxAmmo:   DefaultMaxAmmo,
			Range:     DefaultRange,
			Accuracy:  DefaultAccuracy,
			KillScore: DefaultKillScore,
		},
		Effects: EffectsConfig{
			MuzzleFlash: DefaultFlashDuration,
			HitMarker:   DefaultMarkerDuration,
		},
		Health:           DefaultHealth,
		MouseSensitivity: DefaultMouseSensitivity,
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path returns
// the defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML over the defaults and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Player.Speed <= 0:
		return fmt.Errorf("%w: player speed must be positive", ErrInvalidConfig)
	case c.Camera.FOVDegrees <= 0 || c.Camera.FOVDegrees >= 180:
		return fmt.Errorf("%w: fov_degrees must be in (0, 180)", ErrInvalidConfig)
	case c.Camera.ViewDistance <= 0:
		return fmt.Errorf("%w: view_distance must be positive", ErrInvalidConfig)
	case c.Camera.RayStep <= 0:
		return fmt.Errorf("%w: ray_step must be positive", ErrInvalidConfig)
	case c.Weapon.MaxAmmo < 0:
		return fmt.Errorf("%w: max_ammo must not be negative", ErrInvalidConfig)
	case c.Weapon.Range <= 0 || c.Weapon.Accuracy <= 0:
		return fmt.Errorf("%w: weapon range and accuracy must be positive", ErrInvalidConfig)
	case c.Effects.MuzzleFlash < 0 || c.Effects.HitMarker < 0:
		return fmt.Errorf("%w: effect durations must not be negative", ErrInvalidConfig)
	}
	m, err := c.BuildMap()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if m.IsWall(c.Player.Start.X, c.Player.Start.Y) {
		return fmt.Errorf("%w: player starts inside a wall at (%v, %v)", ErrInvalidConfig, c.Player.Start.X, c.Player.Start.Y)
	}
	return nil
}

func (c Config) BuildMap() (*Map, error) {
	return NewMap(c.Map.Rows, c.Map.CellSize)
}

func (c Config) BuildCamera() Camera {
	return Camera{
		FOV:          c.Camera.FOVDegrees * math.Pi / 180,
		ViewDistance: c.Camera.ViewDistance,
		RayStep:      c.Camera.RayStep,
	}
}

func (c Config) BuildWeapon() Weapon {
	return Weapon{Range: c.Weapon.Range, Accuracy: c.Weapon.Accuracy, KillScore: c.Weapon.KillScore}
}
