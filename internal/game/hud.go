/*
 * Copyright (C) 2023 by Jason Figge
 */

package game

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var hudPrinter = message.NewPrinter(language.English)

// HUD is the set of numeric readouts shown beside the view.
type HUD struct {
	Health  int
	Ammo    int
	MaxAmmo int
	Score   int
}

// The readouts feed numeric fields and are plain digits.
func (h HUD) HealthText() string { return strconv.Itoa(h.Health) }
func (h HUD) AmmoText() string   { return strconv.Itoa(h.Ammo) }
func (h HUD) ScoreText() string  { return strconv.Itoa(h.Score) }

// String renders all readouts on one status line, with grouped digits.
func (h HUD) String() string {
	return hudPrinter.Sprintf("HEALTH %d  AMMO %d/%d  SCORE %d", h.Health, h.Ammo, h.MaxAmmo, h.Score)
}
