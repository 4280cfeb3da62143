/*
 * Copyright (C) 2023 by Jason Figge
 */

package graphics

import "testing"

func TestFMap(t *testing.T) {
	tests := []struct {
		value, start1, stop1, start2, stop2, want float32
	}{
		{0, 0, 100, 255, 0, 255},
		{50, 0, 100, 255, 0, 127.5},
		{100, 0, 100, 255, 0, 0},
		{150, 0, 100, 255, 0, -127.5},
		{5, 5, 5, 10, 20, 10},
	}
	for _, tt := range tests {
		if got := FMap(tt.value, tt.start1, tt.stop1, tt.start2, tt.stop2); got != tt.want {
			t.Errorf("FMap(%v, %v, %v, %v, %v) = %v, want %v", tt.value, tt.start1, tt.stop1, tt.start2, tt.stop2, got, tt.want)
		}
	}
}

func TestCoreMethodsLifecycle(t *testing.T) {
	var c CoreMethods
	if !c.Running() {
		t.Fatal("new handler should be running")
	}
	var order []int
	c.AddDestroyer(func() { order = append(order, 1) })
	c.AddDestroyer(func() { order = append(order, 2) })
	c.Quit()
	if c.Running() {
		t.Fatal("handler still running after Quit")
	}
	c.Destroy()
	c.Destroy()
	if len(order) != 2 || order[0] != 2 || order[1] != 1 {
		t.Fatalf("destroyers ran in order %v, want [2 1]", order)
	}
}

func TestErrorTrap(t *testing.T) {
	ErrorTrap(nil)
	defer func() {
		if recover() == nil {
			t.Fatal("ErrorTrap did not panic on error")
		}
	}()
	ErrorTrap(errTest{})
}

type errTest struct{}

func (errTest) Error() string { return "test" }
