/*
 * Copyright (C) 2023 by Jason Figge
 */

package game

import "time"

type OverlayKind int

const (
	MuzzleFlash OverlayKind = iota
	HitMarker
)

const (
	DefaultFlashDuration  = 100 * time.Millisecond
	DefaultMarkerDuration = 500 * time.Millisecond
)

func (k OverlayKind) String() string {
	switch k {
	case MuzzleFlash:
		return "muzzle-flash"
	case HitMarker:
		return "hit-marker"
	}
	return "unknown"
}

type Overlay struct {
	Kind    OverlayKind
	Expires time.Time
}

// Overlays is a list of short-lived visual effects. Entries are removed by
// Prune once their expiry has passed.
type Overlays struct {
	entries []Overlay
}

func (o *Overlays) Add(kind OverlayKind, now time.Time, ttl time.Duration) {
	o.entries = append(o.entries, Overlay{Kind: kind, Expires: now.Add(ttl)})
}

// Prune drops every entry that has expired at now.
func (o *Overlays) Prune(now time.Time) {
	kept := o.entries[:0]
	for _, e := range o.entries {
		if now.Before(e.Expires) {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(o.entries); i++ {
		o.entries[i] = Overlay{}
	}
	o.entries = kept
}

func (o *Overlays) Active(kind OverlayKind) bool {
	return o.Count(kind) > 0
}

func (o *Overlays) Count(kind OverlayKind) int {
	n := 0
	for _, e := range o.entries {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func (o *Overlays) Len() int { return len(o.entries) }

// Entries returns a copy of the live entries.
func (o *Overlays) Entries() []Overlay {
	return append([]Overlay(nil), o.entries...)
}
