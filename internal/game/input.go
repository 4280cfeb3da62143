/*
 * Copyright (C) 2023 by Jason Figge
 */

package game

import "sync"

type Key int

const (
	KeyForward Key = iota
	KeyBack
	KeyStrafeLeft
	KeyStrafeRight
	keyCount
)

// NumKeys is the number of movement keys.
const NumKeys = int(keyCount)

// Input is the only state event handlers write to. The frame loop reads
// it once per frame through Snapshot.
type Input struct {
	mu     sync.Mutex
	held   [keyCount]bool
	lookDX float64
	click  bool
	reload bool
	locked bool
}

// Snapshot is the input observed by one frame.
type Snapshot struct {
	Held          [keyCount]bool
	LookDX        float64
	Click         bool
	Reload        bool
	PointerLocked bool
}

func (s Snapshot) Pressed(k Key) bool {
	return k >= 0 && k < keyCount && s.Held[k]
}

func (in *Input) SetKey(k Key, down bool) {
	if k < 0 || k >= keyCount {
		return
	}
	in.mu.Lock()
	in.held[k] = down
	in.mu.Unlock()
}

// Look accumulates a horizontal pointer delta. Deltas are dropped while
// the pointer is not locked.
func (in *Input) Look(dx float64) {
	in.mu.Lock()
	if in.locked {
		in.lookDX += dx
	}
	in.mu.Unlock()
}

func (in *Input) Click() {
	in.mu.Lock()
	in.click = true
	in.mu.Unlock()
}

func (in *Input) Reload() {
	in.mu.Lock()
	in.reload = true
	in.mu.Unlock()
}

func (in *Input) SetPointerLock(locked bool) {
	in.mu.Lock()
	in.locked = locked
	if !locked {
		in.lookDX = 0
	}
	in.mu.Unlock()
}

func (in *Input) PointerLocked() bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.locked
}

// ReleaseAll clears held keys, used when the frontend loses focus.
func (in *Input) ReleaseAll() {
	in.mu.Lock()
	in.held = [keyCount]bool{}
	in.mu.Unlock()
}

// Snapshot returns the current input and consumes one-shot requests and
// the accumulated look delta.
func (in *Input) Snapshot() Snapshot {
	in.mu.Lock()
	defer in.mu.Unlock()
	s := Snapshot{
		Held:          in.held,
		LookDX:        in.lookDX,
		Click:         in.click,
		Reload:        in.reload,
		PointerLocked: in.locked,
	}
	in.lookDX = 0
	in.click = false
	in.reload = false
	return s
}
