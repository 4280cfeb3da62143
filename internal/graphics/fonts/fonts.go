/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package fonts draws text with a built-in 3x5 bitmap font, so the HUD
// needs no font files on disk.
package fonts

import (
	"unicode"

	"github.com/veandco/go-sdl2/sdl"
)

const (
	GlyphWidth  = 3
	GlyphHeight = 5
	Spacing     = 1
)

// Each row holds three pixels, most significant bit on the left.
var glyphs = map[rune][GlyphHeight]uint8{
	'0': {7, 5, 5, 5, 7}, '1': {2, 6, 2, 2, 7}, '2': {7, 1, 7, 4, 7}, '3': {7, 1, 7, 1, 7},
	'4': {5, 5, 7, 1, 1}, '5': {7, 4, 7, 1, 7}, '6': {7, 4, 7, 5, 7}, '7': {7, 1, 1, 1, 1},
	'8': {7, 5, 7, 5, 7}, '9': {7, 5, 7, 1, 7},
	'A': {2, 5, 7, 5, 5}, 'B': {6, 5, 6, 5, 6}, 'C': {3, 4, 4, 4, 3}, 'D': {6, 5, 5, 5, 6},
	'E': {7, 4, 6, 4, 7}, 'F': {7, 4, 6, 4, 4}, 'G': {3, 4, 5, 5, 3}, 'H': {5, 5, 7, 5, 5},
	'I': {7, 2, 2, 2, 7}, 'J': {1, 1, 1, 5, 2}, 'K': {5, 5, 6, 5, 5}, 'L': {4, 4, 4, 4, 7},
	'M': {5, 7, 7, 5, 5}, 'N': {6, 5, 5, 5, 5}, 'O': {2, 5, 5, 5, 2}, 'P': {6, 5, 6, 4, 4},
	'Q': {2, 5, 5, 6, 3}, 'R': {6, 5, 6, 5, 5}, 'S': {3, 4, 2, 1, 6}, 'T': {7, 2, 2, 2, 2},
	'U': {5, 5, 5, 5, 7}, 'V': {5, 5, 5, 5, 2}, 'W': {5, 5, 7, 7, 5}, 'X': {5, 5, 2, 5, 5},
	'Y': {5, 5, 2, 2, 2}, 'Z': {7, 1, 2, 4, 7},
	' ': {0, 0, 0, 0, 0}, '!': {2, 2, 2, 0, 2}, '/': {1, 1, 2, 4, 4}, ':': {0, 2, 0, 2, 0},
	',': {0, 0, 0, 2, 4}, '.': {0, 0, 0, 0, 2}, '-': {0, 0, 7, 0, 0},
}

// Glyph returns the bitmap for r. Lower case letters use the upper case
// glyphs; unknown runes report false.
func Glyph(r rune) ([GlyphHeight]uint8, bool) {
	g, ok := glyphs[unicode.ToUpper(r)]
	return g, ok
}

// Width is the width in pixels of text drawn at scale.
func Width(text string, scale int32) int32 {
	n := int32(len([]rune(text)))
	if n == 0 {
		return 0
	}
	return (n*(GlyphWidth+Spacing) - Spacing) * scale
}

func Height(scale int32) int32 {
	return GlyphHeight * scale
}

// Pixels lists the filled pixel rectangles for text with its top left
// corner at (x, y). Unknown runes are drawn as blanks.
func Pixels(text string, x, y, scale int32) []sdl.Rect {
	var rects []sdl.Rect
	cx := x
	for _, r := range text {
		if g, ok := Glyph(r); ok {
			for row := int32(0); row < GlyphHeight; row++ {
				for col := int32(0); col < GlyphWidth; col++ {
					if g[row]&(1<<(GlyphWidth-1-col)) != 0 {
						rects = append(rects, sdl.Rect{X: cx + col*scale, Y: y + row*scale, W: scale, H: scale})
					}
				}
			}
		}
		cx += (GlyphWidth + Spacing) * scale
	}
	return rects
}

// Write draws text in the renderer's current draw color.
func Write(renderer *sdl.Renderer, text string, x, y, scale int32) error {
	rects := Pixels(text, x, y, scale)
	if len(rects) == 0 {
		return nil
	}
	return renderer.FillRects(rects)
}
