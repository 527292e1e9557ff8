// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collage

import (
	"image"
	"image/draw"
	"testing"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

// testImage returns a uniformly filled image of the given size.
func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), colors.Uniform(colors.Blue), image.Point{}, draw.Src)
	return img
}

func TestItemGeometry(t *testing.T) {
	it := NewItem(testImage(50, 50), math32.Vec2(100, 200), math32.Vec2(50, 40))

	assert.Equal(t, math32.B2(100, 200, 150, 240), it.Bounds())
	assert.Equal(t, math32.B2(140, 230, 150, 240), it.handleRect(10))
	assert.Equal(t, math32.B2(130, 200, 150, 220), it.closeRect(20))

	assert.True(t, it.Bounds().ContainsPoint(math32.Vec2(100, 200)))
	assert.False(t, it.Bounds().ContainsPoint(math32.Vec2(99, 200)))
	assert.True(t, it.handleRect(10).ContainsPoint(math32.Vec2(145, 235)))
	assert.True(t, it.closeRect(20).ContainsPoint(math32.Vec2(145, 205)))
}

func TestItemAffordanceOverlap(t *testing.T) {
	// on a small item the close button and resize handle regions can
	// overlap; both must still report containment independently
	it := NewItem(testImage(15, 15), math32.Vector2{}, math32.Vec2(15, 15))
	p := math32.Vec2(10, 10)
	assert.True(t, it.closeRect(20).ContainsPoint(p))
	assert.True(t, it.handleRect(10).ContainsPoint(p))
	assert.True(t, it.Bounds().ContainsPoint(p))
}
